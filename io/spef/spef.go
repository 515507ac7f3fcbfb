// Package spef writes Standard Parasitic Exchange Format files
// describing a design's net connectivity and a manhattan-distance
// resistance estimate. There is no SPEF reader: SPEF is an output-only
// format here.
package spef

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sarchlab/zeonplace/container"
	"github.com/sarchlab/zeonplace/db"
)

// RPerSq is the default sheet resistance (ohms per square) used to turn
// a manhattan pin-to-pin distance into an estimated wire resistance.
const RPerSq = 0.08

// TrackWidthNM is the default wire width (nanometers) used in the same
// resistance estimate.
const TrackWidthNM = 300.0

// Write emits a full SPEF file for top's netlist: the IEEE header, unit
// declarations, a *PORTS section (the design's top-level port pins), and
// one *D_NET block per multi-pin net with *CONN and *RES sections.
func Write(w io.Writer, design *db.Design, top *db.Cell, date string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "*SPEF \"IEEE 1481-2009\"\n")
	fmt.Fprintf(bw, "*DESIGN %q\n", design.Name)
	fmt.Fprintf(bw, "*DATE %q\n", date)
	fmt.Fprintf(bw, "*VENDOR \"zeonplace\"\n")
	fmt.Fprintf(bw, "*PROGRAM \"zeonplace\"\n")
	fmt.Fprintf(bw, "*T_UNIT 1 NS\n")
	fmt.Fprintf(bw, "*C_UNIT 1 PF\n")
	fmt.Fprintf(bw, "*R_UNIT 1 OHM\n")
	fmt.Fprintf(bw, "*L_UNIT 1 HENRY\n")

	writePorts(bw, design, top)

	var writeErr error
	top.Netlist.Nets.Each(func(_ container.Key, n *db.Net) bool {
		if len(n.Connections) < 2 {
			return true
		}
		if err := writeNet(bw, design, top, n); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	if writeErr != nil {
		return writeErr
	}

	return bw.Flush()
}

func writePorts(bw *bufio.Writer, design *db.Design, top *db.Cell) {
	fmt.Fprintf(bw, "*PORTS\n")
	top.Netlist.Instances.Each(func(_ container.Key, ins *db.Instance) bool {
		if ins.Type != db.InstPin {
			return true
		}
		cell, err := design.CellLib.Cells.AtKey(ins.Cell)
		if err != nil || len(cell.Pins) == 0 {
			return true
		}
		fmt.Fprintf(bw, "*%s %s\n", ins.Name, directionCode(portDirection(cell.Pins[0].Direction)))
		return true
	})
}

// portDirection mirrors a port pin's internal pin direction to the
// direction seen from outside the module: the __INPIN pseudo-cell's pin
// drives the internal net (OUTPUT internally) but the port itself is an
// INPUT from outside, and symmetrically for __OUTPIN; __IOPIN stays
// bidirectional either way.
func portDirection(internal db.IODirection) db.IODirection {
	switch internal {
	case db.Output:
		return db.Input
	case db.Input:
		return db.Output
	default:
		return internal
	}
}

func directionCode(d db.IODirection) string {
	switch d {
	case db.Input:
		return "I"
	case db.Output:
		return "O"
	case db.IO:
		return "B"
	default:
		return "B"
	}
}

func writeNet(bw *bufio.Writer, design *db.Design, top *db.Cell, n *db.Net) error {
	loadCap := totalLoadCapPF(design, top, n)
	fmt.Fprintf(bw, "*D_NET %s %g\n", n.Name, loadCap)
	fmt.Fprintf(bw, "*CONN\n")

	labels := make([]string, 0, len(n.Connections))
	positions := make([]struct{ x, y int64 }, 0, len(n.Connections))

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

		var label string
		if ins.Type == db.InstPin {
			fmt.Fprintf(bw, "*P %s %s\n", ins.Name, directionCode(pin.Direction))
			label = ins.Name
		} else {
			fmt.Fprintf(bw, "*I %s:%s %s\n", ins.Name, pin.Name, directionCode(pin.Direction))
			label = ins.Name + ":" + pin.Name
		}

		labels = append(labels, label)
		positions = append(positions, struct{ x, y int64 }{
			x: ins.Position.X + pin.Offset.X,
			y: ins.Position.Y + pin.Offset.Y,
		})
	}

	if len(labels) > 1 {
		fmt.Fprintf(bw, "*RES\n")
		for i := 1; i < len(labels); i++ {
			dx := positions[i].x - positions[0].x
			if dx < 0 {
				dx = -dx
			}
			dy := positions[i].y - positions[0].y
			if dy < 0 {
				dy = -dy
			}
			lengthNM := float64(dx + dy)
			squares := lengthNM / TrackWidthNM
			resistance := squares * RPerSq
			fmt.Fprintf(bw, "%d %s:%s %g\n", i, labels[0], labels[i], resistance)
		}
	}

	fmt.Fprintf(bw, "*END\n")
	return nil
}

func totalLoadCapPF(design *db.Design, top *db.Cell, n *db.Net) float64 {
	var total float64
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
		if pin.IsInput() {
			total += pin.InputCap
		}
	}
	return total
}
