package db

import "github.com/sarchlab/zeonplace/geom"

// IODirection classifies a pin's signal direction.
type IODirection int

const (
	Unknown IODirection = iota
	Input
	Output
	OutputTri
	IO
	Analog
	Power
	Ground
)

// LayerGeom is a pin or obstruction shape on one routing layer.
type LayerGeom struct {
	Layer string
	Rects []geom.Rect64
}

// PinInfo describes one pin on a Cell.
type PinInfo struct {
	Name             string
	Direction        IODirection
	IsClock          bool
	Offset           geom.Coord64
	InputCap         float64
	MaxOutputCap     float64
	MaxFanout        int
	LogicFunction    string
	TriStateFunction string
	Geometry         []LayerGeom
}

// IsInput reports whether the pin can be driven from outside the cell.
func (p PinInfo) IsInput() bool {
	return p.Direction == Input || p.Direction == IO
}

// IsOutput reports whether the pin can drive outside the cell.
func (p PinInfo) IsOutput() bool {
	return p.Direction == Output || p.Direction == OutputTri || p.Direction == IO
}

// IsPGPin reports whether the pin is a power or ground supply pin.
func (p PinInfo) IsPGPin() bool {
	return p.Direction == Power || p.Direction == Ground
}
