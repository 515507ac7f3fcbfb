package db

import "github.com/sarchlab/zeonplace/container"

// Design bundles everything one place-and-legalize pass operates on: the
// cell/module library, the technology description, the floorplan, and
// which module is the current top.
type Design struct {
	Name      string
	CellLib   *CellLib
	TechLib   *TechLib
	Floorplan *Floorplan

	topModule    container.Key
	hasTopModule bool
}

// NewDesign creates an empty design with a bootstrapped CellLib.
func NewDesign(name string) *Design {
	return &Design{
		Name:      name,
		CellLib:   NewCellLib(),
		TechLib:   &TechLib{},
		Floorplan: &Floorplan{},
	}
}

// SetTopModule selects the module named name for subsequent passes. It
// returns false if no such module exists.
func (d *Design) SetTopModule(name string) bool {
	key, ok := d.CellLib.Cells.KeyOf(name)
	if !ok {
		return false
	}
	cell, err := d.CellLib.Cells.AtKey(key)
	if err != nil || !cell.IsModule() {
		return false
	}
	d.topModule = key
	d.hasTopModule = true
	return true
}

// TopModule returns the current top module, or ok=false if none is set.
func (d *Design) TopModule() (*Cell, bool) {
	if !d.hasTopModule {
		return nil, false
	}
	cell, err := d.CellLib.Cells.AtKey(d.topModule)
	if err != nil {
		return nil, false
	}
	return cell, true
}
