package netutil_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/geom"
	"github.com/sarchlab/zeonplace/netutil"
)

func buildS1() (*db.Design, *db.Cell) {
	d := db.NewDesign("chip")
	d.Floorplan.CoreSize = geom.Coord64{X: 10000, Y: 2000}

	inv := db.NewCell("INV_X1")
	inv.SizeX, inv.SizeY = 200, 2000
	_ = inv.AddPin(db.PinInfo{Name: "A", Direction: db.Input})
	_ = inv.AddPin(db.PinInfo{Name: "Y", Direction: db.Output})
	invKey, _ := d.CellLib.Add(inv)

	top := db.NewCell("TOP")
	top.Netlist = db.NewNetlist()
	_, _ = d.CellLib.Add(top)
	d.SetTopModule("TOP")

	u1Key, _ := top.AddInstance(db.NewInstance("u1", db.InstCell, invKey, len(inv.Pins)))
	u2Key, _ := top.AddInstance(db.NewInstance("u2", db.InstCell, invKey, len(inv.Pins)))

	u1, _ := top.Netlist.Instances.AtKey(u1Key)
	u1.Position = geom.Coord64{X: 0, Y: 0}
	u1.Status = db.Placed
	u2, _ := top.Netlist.Instances.AtKey(u2Key)
	u2.Position = geom.Coord64{X: 200, Y: 0}
	u2.Status = db.Placed

	netKey, _ := top.Netlist.AddNet(&db.Net{Name: "n1"})
	_ = top.Netlist.Connect(u1Key, 1, netKey)
	_ = top.Netlist.Connect(u2Key, 0, netKey)

	return d, top
}

var _ = Describe("CalcHPWL", func() {
	It("matches the S1 fixture's expected 200nm", func() {
		d, top := buildS1()
		Expect(netutil.CalcHPWL(d, top)).To(BeEquivalentTo(200))
	})

	It("ignores nets with fewer than two connections", func() {
		d, top := buildS1()
		_, _ = top.Netlist.AddNet(&db.Net{Name: "floating"})
		// same HPWL as before, the floating net contributes nothing
		Expect(netutil.CalcHPWL(d, top)).To(BeEquivalentTo(200))
	})
})

var _ = Describe("CalcTotalCellArea", func() {
	It("sums placed instance footprints in square micrometers", func() {
		d, top := buildS1()
		// two 200x2000nm cells = 2 * 0.4 um^2 = 0.8 um^2
		Expect(netutil.CalcTotalCellArea(d, top)).To(BeNumerically("~", 0.8, 1e-9))
	})
})

var _ = Describe("WritePlacementFile", func() {
	It("writes one line per placed instance", func() {
		d, top := buildS1()
		var buf strings.Builder
		Expect(netutil.WritePlacementFile(&buf, d, top)).To(Succeed())

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		Expect(lines).To(HaveLen(2))
		Expect(lines[0]).To(Equal("0 0 200 2000"))
	})
})
