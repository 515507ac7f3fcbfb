package lefdef_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/geom"
	"github.com/sarchlab/zeonplace/io/lefdef"
)

var _ = Describe("LEF round trip", func() {
	It("preserves sites, layers and macro geometry/pins", func() {
		tech := &db.TechLib{
			Sites:  []db.Site{{Name: "core", Class: db.SiteCore, Width: 200, Height: 2000}},
			Layers: []db.Layer{{Name: "M1", Type: db.LayerRouting, WidthNM: 140, PitchNM: 400}},
		}
		lib := db.NewCellLib()
		inv := db.NewCell("INV_X1")
		inv.SizeX, inv.SizeY = 200, 2000
		_ = inv.AddPin(db.PinInfo{Name: "A", Direction: db.Input})
		_ = inv.AddPin(db.PinInfo{Name: "Y", Direction: db.Output})
		_, _ = lib.Add(inv)

		var buf strings.Builder
		Expect(lefdef.WriteLEF(&buf, tech, lib)).To(Succeed())

		gotTech := &db.TechLib{}
		gotLib := db.NewCellLib()
		Expect(lefdef.ReadLEF(strings.NewReader(buf.String()), gotTech, gotLib)).To(Succeed())

		Expect(gotTech.Sites).To(HaveLen(1))
		Expect(gotTech.Sites[0].Width).To(BeEquivalentTo(200))
		Expect(gotTech.Sites[0].Height).To(BeEquivalentTo(2000))
		Expect(gotTech.Layers).To(HaveLen(1))
		Expect(gotTech.Layers[0].WidthNM).To(BeEquivalentTo(140))

		got, err := gotLib.Cells.AtName("INV_X1")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.SizeX).To(BeEquivalentTo(200))
		Expect(got.SizeY).To(BeEquivalentTo(2000))
		Expect(got.Pins).To(HaveLen(2))
		Expect(got.Pins[0].Direction).To(Equal(db.Input))
		Expect(got.Pins[1].Direction).To(Equal(db.Output))
	})
})

var allOrientations = []geom.Orientation{
	geom.R0, geom.R90, geom.R180, geom.R270, geom.MX, geom.MX90, geom.MY, geom.MY90,
}

var _ = Describe("DEF round trip", func() {
	It("preserves position, orientation and fixed/placed status for every orientation", func() {
		d := db.NewDesign("chip")
		d.Floorplan.CoreSize = geom.Coord64{X: 10000, Y: 10000}

		inv := db.NewCell("INV_X1")
		inv.SizeX, inv.SizeY = 200, 2000
		invKey, _ := d.CellLib.Add(inv)

		top := db.NewCell("TOP")
		top.Netlist = db.NewNetlist()
		_, _ = d.CellLib.Add(top)
		d.SetTopModule("TOP")

		for i, o := range allOrientations {
			key, _ := top.AddInstance(db.NewInstance(instNameFor(i), db.InstCell, invKey, 0))
			ins, _ := top.Netlist.Instances.AtKey(key)
			ins.Position = geom.Coord64{X: int64(i) * 300, Y: 100}
			ins.Orientation = o
			if i%2 == 0 {
				ins.Status = db.PlacedAndFixed
			} else {
				ins.Status = db.Placed
			}
		}

		var buf strings.Builder
		Expect(lefdef.WriteDEF(&buf, d, top)).To(Succeed())

		// scramble every instance before reading back, to prove ReadDEF
		// actually restores state rather than finding it already correct.
		for i := range allOrientations {
			key, _ := top.Netlist.Instances.KeyOf(instNameFor(i))
			ins, _ := top.Netlist.Instances.AtKey(key)
			ins.Position = geom.Coord64{}
			ins.Orientation = geom.R0
			ins.Status = db.Unplaced
		}

		Expect(lefdef.ReadDEF(strings.NewReader(buf.String()), top)).To(Succeed())

		for i, o := range allOrientations {
			key, _ := top.Netlist.Instances.KeyOf(instNameFor(i))
			ins, _ := top.Netlist.Instances.AtKey(key)
			Expect(ins.Orientation).To(Equal(o), "orientation for %s", instNameFor(i))
			Expect(ins.Position).To(Equal(geom.Coord64{X: int64(i) * 300, Y: 100}))
			if i%2 == 0 {
				Expect(ins.Status).To(Equal(db.PlacedAndFixed))
			} else {
				Expect(ins.Status).To(Equal(db.Placed))
			}
		}
	})
})

func instNameFor(i int) string {
	return "o" + string(rune('0'+i))
}
