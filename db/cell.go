package db

import (
	"fmt"

	"github.com/sarchlab/zeonplace/container"
	"github.com/sarchlab/zeonplace/geom"
)

// SymmetryFlags is a bitfield of the symmetries a cell's layout admits.
type SymmetryFlags int

const (
	SymX SymmetryFlags = 1 << iota
	SymY
	SymR90
)

// CellClass classifies a Cell the way a LEF MACRO CLASS statement does.
type CellClass int

const (
	ClassCore CellClass = iota
	ClassCover
	ClassRing
	ClassPad
	ClassEndcap
	ClassBlock
)

// Built-in pseudo-cell names, bootstrapped by CellLib.Clear.
const (
	NetconCellName = "__NETCON"
	InPinCellName  = "__INPIN"
	OutPinCellName = "__OUTPIN"
	IOPinCellName  = "__IOPIN"
)

// Cell is an archetype: a standard cell, pad, block, or (if Netlist is
// non-nil) a hierarchical Module. Cells own their pins and per-layer
// obstruction geometry; pin names are unique within a cell.
type Cell struct {
	Name             string
	SizeX, SizeY     int64 // nm
	PlacementOffset  geom.Coord64
	AreaUM2          float64
	LeakagePowerW    float64
	Symmetry         SymmetryFlags
	Class            CellClass
	Subclass         string
	Site             string
	Pins             []PinInfo
	pinIndexByName   map[string]int
	Obstructions     []LayerGeom
	IsAbstract       bool
	Netlist          *Netlist // non-nil iff this Cell is a Module
}

// NewCell creates an empty cell ready to accept pins via AddPin.
func NewCell(name string) *Cell {
	return &Cell{Name: name, pinIndexByName: make(map[string]int)}
}

// IsModule reports whether the cell owns a netlist (even an empty one).
func (c *Cell) IsModule() bool { return c.Netlist != nil }

// IsBlackBox reports whether the cell is a module with no netlist body,
// i.e. it is not a module at all, it's a pure LEF/abstract leaf.
func (c *Cell) IsBlackBox() bool { return c.Netlist == nil }

// AddPin appends a pin, failing if the name is already used on this cell.
func (c *Cell) AddPin(p PinInfo) error {
	if c.pinIndexByName == nil {
		c.pinIndexByName = make(map[string]int)
	}
	if _, exists := c.pinIndexByName[p.Name]; exists {
		return fmt.Errorf("db: cell %q already has a pin named %q", c.Name, p.Name)
	}
	c.pinIndexByName[p.Name] = len(c.Pins)
	c.Pins = append(c.Pins, p)
	return nil
}

// PinIndex returns the ordinal index of the pin named name.
func (c *Cell) PinIndex(name string) (int, bool) {
	i, ok := c.pinIndexByName[name]
	return i, ok
}

// Size returns the cell's footprint as a rectangle anchored at the origin.
func (c *Cell) Size() geom.Rect64 {
	return geom.NewRect64(geom.Coord64{}, c.SizeX, c.SizeY)
}

// AddInstance adds ins to this module's netlist. It fails if the cell is
// a black box (no netlist) or the instance name is empty.
func (c *Cell) AddInstance(ins *Instance) (container.Key, error) {
	if c.Netlist == nil {
		return 0, fmt.Errorf("db: cannot add instance to black-box cell %q", c.Name)
	}
	return c.Netlist.AddInstance(ins)
}
