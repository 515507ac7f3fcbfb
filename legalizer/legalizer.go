// Package legalizer implements the Abacus-style row legalizer: given
// instances the quadratic placer has already spread out (possibly
// overlapping), it assigns each a non-overlapping, row-aligned,
// site-grid-snapped position while minimizing total weighted L1
// displacement, via cluster-collapse per row and a best-row search per
// cell.
package legalizer

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/sarchlab/zeonplace/container"
	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/geom"
)

// Infeasible is the sentinel row cost for a candidate placement that
// leaves the row horizontally; it compares larger than any real
// displacement cost the legalizer can produce.
const Infeasible = math.MaxFloat64

// IsInfeasible reports whether a row cost is the Infeasible sentinel.
func IsInfeasible(cost float64) bool { return cost == Infeasible }

// CellRecord is the legalizer's per-instance working state.
type CellRecord struct {
	Instance    container.Key
	Global      geom.Coord64 // pre-legalization position
	Size        geom.Coord64 // width, height
	Weight      float64
	Legal       geom.Coord64 // output
	Orientation geom.Orientation // output
}

// ErrNoRows is returned when the floorplan has no rows to legalize into.
var ErrNoRows = errors.New("legalizer: floorplan has no rows")

// LegalizationFailedError reports that a cell's best row still produced
// an infeasible (out-of-row) placement: the legalizer surfaces this
// explicitly rather than silently dropping the cell.
type LegalizationFailedError struct {
	Cell container.Key
}

func (e *LegalizationFailedError) Error() string {
	return fmt.Sprintf("legalizer: no row could legally place instance key %d", uint32(e.Cell))
}

// Legalize gathers every movable PLACED instance in top's netlist, sorts
// it by ascending global x (ties broken by insertion-order key for
// determinism), and assigns it to the row minimizing weighted L1
// displacement cost. On success, every legalized instance's Position,
// Orientation and Status (-> Placed) are written back; on failure the
// database is left untouched.
func Legalize(design *db.Design, top *db.Cell) error {
	fp := design.Floorplan
	if !fp.HasRows() {
		return ErrNoRows
	}
	siteGrid := fp.MinCellSize.X
	if siteGrid <= 0 {
		return fmt.Errorf("legalizer: floorplan minimum cell width must be positive")
	}

	cells, instances, err := gatherCells(design, top)
	if err != nil {
		return err
	}
	sortCells(cells)

	rowCells := make([][]CellRecord, len(fp.Rows))

	for _, cell := range cells {
		bestRow := -1
		bestCost := Infeasible
		var bestLegal []CellRecord

		for ri, row := range fp.Rows {
			trial := append(append([]CellRecord(nil), rowCells[ri]...), cell)
			placeOneRow(trial, row, siteGrid)
			cost := rowCost(trial, row)
			if cost < bestCost {
				bestCost = cost
				bestRow = ri
				bestLegal = trial
			}
		}

		if bestRow == -1 || IsInfeasible(bestCost) {
			return &LegalizationFailedError{Cell: cell.Instance}
		}

		rowCells[bestRow] = bestLegal
	}

	for ri, row := range fp.Rows {
		orient := row.Orientation()
		for _, cell := range rowCells[ri] {
			ins := instances[cell.Instance]
			ins.Position = cell.Legal
			ins.Orientation = orient
			ins.Status = db.Placed
		}
	}

	return nil
}

func gatherCells(design *db.Design, top *db.Cell) ([]CellRecord, map[container.Key]*db.Instance, error) {
	var cells []CellRecord
	instances := make(map[container.Key]*db.Instance)

	var gatherErr error
	top.Netlist.Instances.Each(func(key container.Key, ins *db.Instance) bool {
		if ins.IsFixed() || ins.Status != db.Placed {
			return true
		}
		cell, err := design.CellLib.Cells.AtKey(ins.Cell)
		if err != nil {
			gatherErr = fmt.Errorf("legalizer: instance %q: %w", ins.Name, err)
			return false
		}
		instances[key] = ins
		cells = append(cells, CellRecord{
			Instance: key,
			Global:   ins.Position,
			Size:     geom.Coord64{X: cell.SizeX, Y: cell.SizeY},
			Weight:   1.0,
		})
		return true
	})

	return cells, instances, gatherErr
}

// sortCells orders ascending by global x, breaking ties by instance key
// (insertion order) so repeated runs over identical input are
// reproducible.
func sortCells(cells []CellRecord) {
	sort.SliceStable(cells, func(i, j int) bool {
		if cells[i].Global.X != cells[j].Global.X {
			return cells[i].Global.X < cells[j].Global.X
		}
		return cells[i].Instance < cells[j].Instance
	})
}
