package lefdef

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/sarchlab/zeonplace/container"
	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/geom"
)

// WriteDEF writes a DESIGN/COMPONENTS/END DESIGN block listing every
// cell-type instance in top's netlist, in nanometer DEF units (DISTANCE
// UNITS scaled 1:1 since the whole model is already nanometer-integer).
// A placed or fixed instance is written with its status, position and
// orientation; an unplaced one is written without a location.
func WriteDEF(w io.Writer, design *db.Design, top *db.Cell) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "VERSION 5.4 ;\n")
	fmt.Fprintf(bw, "DESIGN %s ;\n", design.Name)
	fmt.Fprintf(bw, "UNITS DISTANCE MICRONS 1000 ;\n")

	die := design.Floorplan.DieSize()
	fmt.Fprintf(bw, "DIEAREA ( 0 0 ) ( %d %d ) ;\n", die.X, die.Y)

	type component struct {
		key container.Key
		ins *db.Instance
	}
	var components []component
	top.Netlist.Instances.Each(func(key container.Key, ins *db.Instance) bool {
		components = append(components, component{key: key, ins: ins})
		return true
	})
	sort.Slice(components, func(i, j int) bool { return components[i].key < components[j].key })

	fmt.Fprintf(bw, "COMPONENTS %d ;\n", top.Netlist.Instances.Len())
	for _, c := range components {
		ins := c.ins
		if ins.Type != db.InstCell {
			continue
		}
		cell, err := design.CellLib.Cells.AtKey(ins.Cell)
		if err != nil {
			continue
		}
		if !ins.IsPlaced() {
			fmt.Fprintf(bw, "  - %s %s ;\n", ins.Name, cell.Name)
			continue
		}
		status := "PLACED"
		if ins.IsFixed() {
			status = "FIXED"
		}
		fmt.Fprintf(bw, "  - %s %s + %s ( %d %d ) %s ;\n",
			ins.Name, cell.Name, status, ins.Position.X, ins.Position.Y,
			orientationToDEF[ins.Orientation])
	}
	fmt.Fprintf(bw, "END COMPONENTS\n")
	fmt.Fprintf(bw, "END DESIGN\n")

	return bw.Flush()
}

// ReadDEF parses a COMPONENTS block written by WriteDEF, setting each
// named instance's Position, Orientation and Status. Instances not
// present in top's netlist are skipped.
func ReadDEF(r io.Reader, top *db.Cell) error {
	sc := bufio.NewScanner(r)
	inComponents := false

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "COMPONENTS"):
			inComponents = true
			continue
		case line == "END COMPONENTS":
			inComponents = false
			continue
		}
		if !inComponents || !strings.HasPrefix(line, "-") {
			continue
		}

		line = strings.TrimSuffix(strings.TrimSpace(line), ";")
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		instName := fields[1]

		key, ok := top.Netlist.Instances.KeyOf(instName)
		if !ok {
			continue
		}
		ins, err := top.Netlist.Instances.AtKey(key)
		if err != nil {
			continue
		}

		plusIdx := indexOf(fields, "+")
		if plusIdx < 0 || plusIdx+1 >= len(fields) {
			ins.Status = db.Unplaced
			continue
		}
		status := fields[plusIdx+1]

		lp := indexOf(fields, "(")
		rp := indexOf(fields, ")")
		if lp < 0 || rp < 0 || rp != lp+3 {
			return fmt.Errorf("lefdef: malformed COMPONENTS location for %q", instName)
		}
		x, err := strconv.ParseInt(fields[lp+1], 10, 64)
		if err != nil {
			return fmt.Errorf("lefdef: bad x for %q: %w", instName, err)
		}
		y, err := strconv.ParseInt(fields[lp+2], 10, 64)
		if err != nil {
			return fmt.Errorf("lefdef: bad y for %q: %w", instName, err)
		}
		orientTok := fields[rp+1]

		ins.Position = geom.Coord64{X: x, Y: y}
		orient, ok := defToOrientation[orientTok]
		if !ok {
			return fmt.Errorf("lefdef: unknown orientation token %q for %q", orientTok, instName)
		}
		ins.Orientation = orient

		if status == "FIXED" {
			ins.Status = db.PlacedAndFixed
		} else {
			ins.Status = db.Placed
		}
	}

	return sc.Err()
}

func indexOf(fields []string, target string) int {
	for i, f := range fields {
		if f == target {
			return i
		}
	}
	return -1
}
