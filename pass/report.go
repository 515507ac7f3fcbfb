package pass

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/zeonplace/container"
	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/netutil"
)

// PassResult records one pass's outcome for the utilization report and
// run history.
type PassResult struct {
	Name       string
	Success    bool
	Err        error
	Duration   time.Duration
	RSSBytes   uint64
	HPWLAfter  int64
}

// Report is the driver's cumulative run summary: a banner-separated,
// multi-stage text report (load summary -> per-phase results ->
// summary), using a section-separator and checkmark-prefixed style.
type Report struct {
	DesignName string
	Passes     []PassResult
}

// WriteReport renders the full report in a banner style.
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "ZEONPLACE PASS REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\nDesign: %s\n", r.DesignName)

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "PASS RESULTS")
	fmt.Fprintln(w, separator)

	allOK := true
	for _, p := range r.Passes {
		if p.Success {
			fmt.Fprintf(w, "✓ %-12s %8s  hpwl=%d\n", p.Name, p.Duration, p.HPWLAfter)
		} else {
			allOK = false
			fmt.Fprintf(w, "⚠ %-12s FAILED: %v\n", p.Name, p.Err)
		}
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, separator)
	if allOK {
		fmt.Fprintln(w, "✓ ALL PASSES SUCCEEDED")
	} else {
		fmt.Fprintln(w, "⚠ ONE OR MORE PASSES FAILED")
	}
	fmt.Fprintln(w)
}

// RowStat summarizes one floorplan row's cell occupancy.
type RowStat struct {
	Index       int
	WidthNM     int64
	OccupiedNM  int64
	CellCount   int
}

// Utilization returns RowStat.Utilization, the fraction of the row's
// width occupied by placed cells.
func (s RowStat) Utilization() float64 {
	if s.WidthNM == 0 {
		return 0
	}
	return float64(s.OccupiedNM) / float64(s.WidthNM)
}

// RowOccupancy computes one RowStat per floorplan row, by bucketing each
// PLACED instance into the row matching its y coordinate.
func RowOccupancy(design *db.Design, top *db.Cell) []RowStat {
	rows := design.Floorplan.Rows
	stats := make([]RowStat, len(rows))
	for i, row := range rows {
		stats[i] = RowStat{Index: i, WidthNM: row.Rect.Width()}
	}

	top.Netlist.Instances.Each(func(_ container.Key, ins *db.Instance) bool {
		if !ins.IsPlaced() {
			return true
		}
		cell, err := design.CellLib.Cells.AtKey(ins.Cell)
		if err != nil {
			return true
		}
		for i, row := range rows {
			if ins.Position.Y == row.Rect.LL.Y {
				stats[i].OccupiedNM += cell.SizeX
				stats[i].CellCount++
				break
			}
		}
		return true
	})

	return stats
}

// RenderUtilizationTable formats RowOccupancy's output as an aligned
// text table via jedib0t/go-pretty.
func RenderUtilizationTable(w io.Writer, stats []RowStat) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Row", "Width (nm)", "Occupied (nm)", "Cells", "Utilization"})
	for _, s := range stats {
		t.AppendRow(table.Row{s.Index, s.WidthNM, s.OccupiedNM, s.CellCount, fmt.Sprintf("%.1f%%", s.Utilization()*100)})
	}
	t.Render()
}

// TotalHPWL is a small convenience wrapper so callers building a
// PassResult don't need to import netutil directly.
func TotalHPWL(design *db.Design, top *db.Cell) int64 {
	return netutil.CalcHPWL(design, top)
}
