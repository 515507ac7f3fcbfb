package db

import "github.com/sarchlab/zeonplace/geom"

// RowType distinguishes a row's cell orientation.
type RowType int

const (
	RowNormal RowType = iota
	RowFlipY
)

// Row is one horizontal placement track inside the core.
type Row struct {
	Type RowType
	Rect geom.Rect64
}

// Orientation returns the orientation new cells placed into this row
// should take: R0 for a NORMAL row, MX (flipped in Y) for FLIPY.
func (r Row) Orientation() geom.Orientation {
	if r.Type == RowFlipY {
		return geom.MX
	}
	return geom.R0
}

// Region is a placeable sub-rectangle of the core with its own halo,
// minimum site size, and ordered row list.
type Region struct {
	Rect        geom.Rect64
	Halo        geom.Margins64
	MinCellSize geom.Coord64
	Rows        []Row
}

// Floorplan describes the full die: core area, IO margins, and rows.
type Floorplan struct {
	CoreSize    geom.Coord64 // width (X), height (Y)
	IO2Core     geom.Margins64
	IOMargins   geom.Margins64
	MinCellSize geom.Coord64
	CornerSize  geom.Coord64
	Rows        []Row
}

// CoreRect returns the core area's absolute rectangle, per spec:
// lower_left = (io_margins.left + io2core.left, io_margins.bottom + io2core.bottom).
func (f Floorplan) CoreRect() geom.Rect64 {
	ll := geom.Coord64{
		X: f.IOMargins.Left + f.IO2Core.Left,
		Y: f.IOMargins.Bottom + f.IO2Core.Bottom,
	}
	return geom.NewRect64(ll, f.CoreSize.X, f.CoreSize.Y)
}

// DieSize returns the overall die size:
// dieSize = coreSize + io2core(l+r, t+b) + io(l+r, t+b).
func (f Floorplan) DieSize() geom.Coord64 {
	return geom.Coord64{
		X: f.CoreSize.X + f.IO2Core.Left + f.IO2Core.Right + f.IOMargins.Left + f.IOMargins.Right,
		Y: f.CoreSize.Y + f.IO2Core.Top + f.IO2Core.Bottom + f.IOMargins.Top + f.IOMargins.Bottom,
	}
}

// HasRows reports whether the floorplan has at least one row, a
// precondition for both placement and legalization.
func (f Floorplan) HasRows() bool { return len(f.Rows) > 0 }
