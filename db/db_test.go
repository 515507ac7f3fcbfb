package db_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/geom"
)

func coord(x, y int64) geom.Coord64 { return geom.Coord64{X: x, Y: y} }

func margins(top, bottom, left, right int64) geom.Margins64 {
	return geom.Margins64{Top: top, Bottom: bottom, Left: left, Right: right}
}

var _ = Describe("CellLib", func() {
	It("bootstraps the four pseudo-cells with zero area and size", func() {
		lib := db.NewCellLib()

		for _, name := range []string{db.NetconCellName, db.InPinCellName, db.OutPinCellName, db.IOPinCellName} {
			cell, err := lib.Cells.AtName(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(cell.SizeX).To(BeZero())
			Expect(cell.SizeY).To(BeZero())
			Expect(cell.AreaUM2).To(BeZero())
		}
	})

	It("re-creates the pseudo-cells on Clear even after custom cells are added", func() {
		lib := db.NewCellLib()
		_, err := lib.Add(db.NewCell("INV_X1"))
		Expect(err).NotTo(HaveOccurred())

		lib.Clear()

		_, err = lib.Cells.AtName("INV_X1")
		Expect(err).To(HaveOccurred())

		_, err = lib.Cells.AtName(db.NetconCellName)
		Expect(err).NotTo(HaveOccurred())
	})
})

var _ = Describe("Netlist connect", func() {
	It("is idempotent", func() {
		nl := db.NewNetlist()
		insKey, err := nl.AddInstance(db.NewInstance("u1", db.InstCell, 0, 2))
		Expect(err).NotTo(HaveOccurred())
		netKey, err := nl.AddNet(&db.Net{Name: "n1"})
		Expect(err).NotTo(HaveOccurred())

		Expect(nl.Connect(insKey, 0, netKey)).To(Succeed())
		Expect(nl.Connect(insKey, 0, netKey)).To(Succeed())

		n, err := nl.Nets.AtKey(netKey)
		Expect(err).NotTo(HaveOccurred())
		Expect(n.Connections).To(HaveLen(1))

		ins, err := nl.Instances.AtKey(insKey)
		Expect(err).NotTo(HaveOccurred())
		Expect(ins.PinNets[0]).To(Equal(netKey))
	})

	It("fails on an invalid instance or net handle", func() {
		nl := db.NewNetlist()
		netKey, _ := nl.AddNet(&db.Net{Name: "n1"})
		Expect(nl.Connect(999, 0, netKey)).To(HaveOccurred())

		insKey, _ := nl.AddInstance(db.NewInstance("u1", db.InstCell, 0, 1))
		Expect(nl.Connect(insKey, 0, 999)).To(HaveOccurred())
	})
})

var _ = Describe("Module.AddInstance", func() {
	It("fails on a black-box cell", func() {
		blackBox := db.NewCell("BB")
		_, err := blackBox.AddInstance(db.NewInstance("u1", db.InstCell, 0, 0))
		Expect(err).To(HaveOccurred())
	})

	It("fails on an empty instance name", func() {
		module := db.NewCell("TOP")
		module.Netlist = db.NewNetlist()
		_, err := module.AddInstance(db.NewInstance("", db.InstCell, 0, 0))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Floorplan", func() {
	It("derives the core rect from IO margins", func() {
		fp := db.Floorplan{
			CoreSize:  coord(10000, 2000),
			IO2Core:   margins(100, 100, 100, 100),
			IOMargins: margins(50, 50, 50, 50),
		}
		rect := fp.CoreRect()
		Expect(rect.LL.X).To(BeEquivalentTo(150))
		Expect(rect.LL.Y).To(BeEquivalentTo(150))
		Expect(rect.Width()).To(BeEquivalentTo(10000))
	})
})

var _ = Describe("Design.SetTopModule", func() {
	It("returns false for a nonexistent module", func() {
		d := db.NewDesign("chip")
		Expect(d.SetTopModule("nope")).To(BeFalse())
	})

	It("selects an existing module", func() {
		d := db.NewDesign("chip")
		top := db.NewCell("TOP")
		top.Netlist = db.NewNetlist()
		_, err := d.CellLib.Add(top)
		Expect(err).NotTo(HaveOccurred())

		Expect(d.SetTopModule("TOP")).To(BeTrue())
		got, ok := d.TopModule()
		Expect(ok).To(BeTrue())
		Expect(got.Name).To(Equal("TOP"))
	})
})
