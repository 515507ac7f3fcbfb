package lefdef

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/zeonplace/container"
	"github.com/sarchlab/zeonplace/db"
)

const lefMicronsPerDBU = 1000.0 // DATABASE MICRONS 1000 -> 1nm/DBU

// WriteLEF writes techLib's sites and layers and every non-module cell in
// cellLib as LEF MACRO statements, except the four built-in pseudo-cells,
// which every CellLib already holds.
func WriteLEF(w io.Writer, tech *db.TechLib, lib *db.CellLib) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "VERSION 5.8 ;\n")
	fmt.Fprintf(bw, "DATABASE MICRONS %d ;\n", int64(lefMicronsPerDBU))

	for _, s := range tech.Sites {
		fmt.Fprintf(bw, "SITE %s\n", s.Name)
		fmt.Fprintf(bw, "  CLASS %s ;\n", siteClassToken(s.Class))
		fmt.Fprintf(bw, "  SIZE %s BY %s ;\n", microns(s.Width), microns(s.Height))
		fmt.Fprintf(bw, "END %s\n", s.Name)
	}

	for _, l := range tech.Layers {
		fmt.Fprintf(bw, "LAYER %s\n", l.Name)
		fmt.Fprintf(bw, "  TYPE %s ;\n", layerTypeToken(l.Type))
		fmt.Fprintf(bw, "  WIDTH %s ;\n", microns(l.WidthNM))
		fmt.Fprintf(bw, "  PITCH %s ;\n", microns(l.PitchNM))
		fmt.Fprintf(bw, "END %s\n", l.Name)
	}

	lib.Cells.Each(func(_ container.Key, c *db.Cell) bool {
		if c.IsModule() {
			return true
		}
		switch c.Name {
		case db.NetconCellName, db.InPinCellName, db.OutPinCellName, db.IOPinCellName:
			return true
		}
		fmt.Fprintf(bw, "MACRO %s\n", c.Name)
		fmt.Fprintf(bw, "  CLASS %s ;\n", cellClassToken(c.Class))
		fmt.Fprintf(bw, "  SIZE %s BY %s ;\n", microns(c.SizeX), microns(c.SizeY))
		for _, p := range c.Pins {
			fmt.Fprintf(bw, "  PIN %s\n", p.Name)
			fmt.Fprintf(bw, "    DIRECTION %s ;\n", pinDirToken(p.Direction))
			fmt.Fprintf(bw, "  END %s\n", p.Name)
		}
		fmt.Fprintf(bw, "END %s\n", c.Name)
		return true
	})

	return bw.Flush()
}

func microns(nm int64) string {
	return strconv.FormatFloat(float64(nm)/lefMicronsPerDBU, 'f', -1, 64)
}

func parseMicrons(s string) (int64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(f * lefMicronsPerDBU), nil
}

func siteClassToken(c db.SiteClass) string {
	if c == db.SitePad {
		return "PAD"
	}
	return "CORE"
}

func layerTypeToken(t db.LayerType) string {
	switch t {
	case db.LayerRouting:
		return "ROUTING"
	case db.LayerCut:
		return "CUT"
	case db.LayerMasterslice:
		return "MASTERSLICE"
	case db.LayerOverlap:
		return "OVERLAP"
	default:
		return "ROUTING"
	}
}

func cellClassToken(c db.CellClass) string {
	switch c {
	case db.ClassCover:
		return "COVER"
	case db.ClassRing:
		return "RING"
	case db.ClassPad:
		return "PAD"
	case db.ClassEndcap:
		return "ENDCAP"
	case db.ClassBlock:
		return "BLOCK"
	default:
		return "CORE"
	}
}

func pinDirToken(d db.IODirection) string {
	switch d {
	case db.Output, db.OutputTri:
		return "OUTPUT"
	case db.IO:
		return "INOUT"
	case db.Power, db.Ground:
		return "INOUT"
	default:
		return "INPUT"
	}
}

func pinDirFromToken(s string) db.IODirection {
	switch s {
	case "OUTPUT":
		return db.Output
	case "INOUT":
		return db.IO
	default:
		return db.Input
	}
}

// ReadLEF parses a LEF stream written by WriteLEF (SITE, LAYER and MACRO
// blocks) into tech and the MACRO cells appended to lib.
func ReadLEF(r io.Reader, tech *db.TechLib, lib *db.CellLib) error {
	sc := bufio.NewScanner(r)
	var cur *db.Cell
	var site *db.Site
	var layer *db.Layer

	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(sc.Text()), ";"))
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "DATABASE":
			// DATABASE MICRONS <n> -- fixed at 1000 by convention, ignored.
		case "SITE":
			s := db.Site{Name: fields[1]}
			site = &s
		case "LAYER":
			l := db.Layer{Name: fields[1]}
			layer = &l
		case "CLASS":
			switch {
			case site != nil && cur == nil:
				if fields[1] == "PAD" {
					site.Class = db.SitePad
				}
			case cur != nil:
				cur.Class = cellClassFromToken(fields[1])
			}
		case "SIZE":
			w, err := parseMicrons(fields[1])
			if err != nil {
				return fmt.Errorf("lefdef: bad SIZE width %q: %w", fields[1], err)
			}
			h, err := parseMicrons(fields[3])
			if err != nil {
				return fmt.Errorf("lefdef: bad SIZE height %q: %w", fields[3], err)
			}
			switch {
			case site != nil && cur == nil:
				site.Width, site.Height = w, h
			case cur != nil:
				cur.SizeX, cur.SizeY = w, h
			}
		case "TYPE":
			if layer != nil {
				layer.Type = layerTypeFromToken(fields[1])
			}
		case "WIDTH":
			if layer != nil {
				width, err := parseMicrons(fields[1])
				if err != nil {
					return err
				}
				layer.WidthNM = width
			}
		case "PITCH":
			if layer != nil {
				p, err := parseMicrons(fields[1])
				if err != nil {
					return err
				}
				layer.PitchNM = p
			}
		case "MACRO":
			cur = db.NewCell(fields[1])
		case "PIN":
			_ = cur.AddPin(db.PinInfo{Name: fields[1]})
		case "DIRECTION":
			if cur != nil && len(cur.Pins) > 0 {
				cur.Pins[len(cur.Pins)-1].Direction = pinDirFromToken(fields[1])
			}
		case "END":
			switch {
			case cur != nil && len(fields) > 1 && fields[1] == cur.Name:
				if _, err := lib.Add(cur); err != nil {
					return fmt.Errorf("lefdef: adding macro %q: %w", cur.Name, err)
				}
				cur = nil
			case site != nil:
				tech.Sites = append(tech.Sites, *site)
				site = nil
			case layer != nil:
				tech.Layers = append(tech.Layers, *layer)
				layer = nil
			}
		}
	}

	return sc.Err()
}

func layerTypeFromToken(s string) db.LayerType {
	switch s {
	case "ROUTING":
		return db.LayerRouting
	case "CUT":
		return db.LayerCut
	case "MASTERSLICE":
		return db.LayerMasterslice
	case "OVERLAP":
		return db.LayerOverlap
	default:
		return db.LayerUndefined
	}
}

func cellClassFromToken(s string) db.CellClass {
	switch s {
	case "COVER":
		return db.ClassCover
	case "RING":
		return db.ClassRing
	case "PAD":
		return db.ClassPad
	case "ENDCAP":
		return db.ClassEndcap
	case "BLOCK":
		return db.ClassBlock
	default:
		return db.ClassCore
	}
}
