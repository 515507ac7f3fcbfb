package legalizer_test

import (
	"fmt"

	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/geom"
)

func instName(i int) string { return fmt.Sprintf("u%d", i) }

// newOverlappingRowDesign builds a single-row floorplan with n 200x2000nm
// cells all pre-placed (by the upstream placer) at overlapping x
// positions 10*i, ready for legalizer.Legalize to spread across the row's
// 200nm site grid.
func newOverlappingRowDesign(n int) (*db.Design, *db.Cell) {
	d := db.NewDesign("chip")
	d.Floorplan.CoreSize = geom.Coord64{X: int64(n) * 200, Y: 2000}
	d.Floorplan.MinCellSize = geom.Coord64{X: 200, Y: 2000}
	d.Floorplan.Rows = []db.Row{
		{Type: db.RowNormal, Rect: geom.NewRect64(geom.Coord64{X: 0, Y: 0}, int64(n)*200, 2000)},
	}

	inv := db.NewCell("INV_X1")
	inv.SizeX, inv.SizeY = 200, 2000
	invKey, _ := d.CellLib.Add(inv)

	top := db.NewCell("TOP")
	top.Netlist = db.NewNetlist()
	_, _ = d.CellLib.Add(top)
	d.SetTopModule("TOP")

	for i := 0; i < n; i++ {
		key, _ := top.AddInstance(db.NewInstance(instName(i), db.InstCell, invKey, 0))
		ins, _ := top.Netlist.Instances.AtKey(key)
		ins.Position = geom.Coord64{X: int64(i) * 10, Y: 0}
		ins.Status = db.Placed
	}

	return d, top
}
