// Package netutil implements the small utilities layered on top of the
// chip database that the rest of the pipeline needs: half-perimeter
// wirelength, total cell area, and the plain-text placement dump.
package netutil

import (
	"fmt"
	"io"

	"github.com/sarchlab/zeonplace/container"
	"github.com/sarchlab/zeonplace/db"
)

// CalcHPWL returns the sum, over every net in top's netlist, of the
// half-perimeter of the bounding box of that net's pin centers. Nets
// with fewer than two connections contribute zero.
func CalcHPWL(design *db.Design, top *db.Cell) int64 {
	var total int64

	top.Netlist.Nets.Each(func(_ container.Key, n *db.Net) bool {
		if len(n.Connections) < 2 {
			return true
		}

		var minX, maxX, minY, maxY int64
		first := true

		for _, conn := range n.Connections {
			ins, err := top.Netlist.Instances.AtKey(conn.Instance)
			if err != nil {
				continue
			}
			cell, err := design.CellLib.Cells.AtKey(ins.Cell)
			if err != nil || conn.PinIndex >= len(cell.Pins) {
				continue
			}
			pin := cell.Pins[conn.PinIndex]
			px := ins.Position.X + pin.Offset.X
			py := ins.Position.Y + pin.Offset.Y

			if first {
				minX, maxX, minY, maxY = px, px, py, py
				first = false
				continue
			}
			if px < minX {
				minX = px
			}
			if px > maxX {
				maxX = px
			}
			if py < minY {
				minY = py
			}
			if py > maxY {
				maxY = py
			}
		}

		if !first {
			total += (maxX - minX) + (maxY - minY)
		}
		return true
	})

	return total
}

// CalcTotalCellArea sums, in square micrometers, the footprint of every
// PLACED or fixed instance in top's netlist (width*height converted from
// nm^2 to um^2).
func CalcTotalCellArea(design *db.Design, top *db.Cell) float64 {
	var totalNM2 int64
	top.Netlist.Instances.Each(func(_ container.Key, ins *db.Instance) bool {
		if !ins.IsPlaced() {
			return true
		}
		cell, err := design.CellLib.Cells.AtKey(ins.Cell)
		if err != nil {
			return true
		}
		totalNM2 += cell.SizeX * cell.SizeY
		return true
	})
	return float64(totalNM2) / 1e6 // nm^2 -> um^2 (1 um = 1000 nm)
}

// WritePlacementFile writes one line "x y w h" per PLACED or fixed
// instance in top's netlist.
func WritePlacementFile(w io.Writer, design *db.Design, top *db.Cell) error {
	var writeErr error
	top.Netlist.Instances.Each(func(_ container.Key, ins *db.Instance) bool {
		if !ins.IsPlaced() {
			return true
		}
		cell, err := design.CellLib.Cells.AtKey(ins.Cell)
		if err != nil {
			return true
		}
		_, writeErr = fmt.Fprintf(w, "%d %d %d %d\n", ins.Position.X, ins.Position.Y, cell.SizeX, cell.SizeY)
		return writeErr == nil
	})
	return writeErr
}
