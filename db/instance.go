package db

import (
	"github.com/sarchlab/zeonplace/container"
	"github.com/sarchlab/zeonplace/geom"
)

// InstanceType discriminates what kind of entity an Instance realizes.
type InstanceType int

const (
	InstAbstract InstanceType = iota
	InstCell
	InstModule
	InstPin
	InstNetcon
)

// PlacementStatus tracks where an Instance stands in the place/legalize
// pipeline.
type PlacementStatus int

const (
	Undefined PlacementStatus = iota
	Ignore
	Unplaced
	Placed
	PlacedAndFixed
)

// Instance is one occurrence of a Cell (or Module) archetype within a
// Netlist.
type Instance struct {
	Name        string
	Type        InstanceType
	Cell        container.Key // NoKey for archetype-less PIN/NETCON placeholders
	Position    geom.Coord64  // lower-left
	Orientation geom.Orientation
	Status      PlacementStatus
	// PinNets[i] is the net connected to the cell's i-th pin, or
	// container.NoKey if that pin is unconnected. Sized to the
	// archetype cell's pin count.
	PinNets []container.Key
}

// NewInstance creates an instance with numPins unconnected pin slots.
func NewInstance(name string, typ InstanceType, cell container.Key, numPins int) *Instance {
	nets := make([]container.Key, numPins)
	for i := range nets {
		nets[i] = container.NoKey
	}
	return &Instance{Name: name, Type: typ, Cell: cell, PinNets: nets}
}

// IsFixed reports whether the instance is placed and locked.
func (i *Instance) IsFixed() bool { return i.Status == PlacedAndFixed }

// IsPlaced reports whether the instance currently holds a valid position.
func (i *Instance) IsPlaced() bool {
	return i.Status == Placed || i.Status == PlacedAndFixed
}

// SetCenter positions the instance so that its rect (given its size)
// is centered on center, rounding to the nearest integer nanometer.
func (i *Instance) SetCenter(center geom.Coord64, sizeX, sizeY int64) {
	i.Position = geom.Coord64{X: center.X - sizeX/2, Y: center.Y - sizeY/2}
}

// Center returns the instance's rectangle center given its archetype size.
func (i *Instance) Center(sizeX, sizeY int64) geom.Coord64 {
	return geom.Coord64{X: i.Position.X + sizeX/2, Y: i.Position.Y + sizeY/2}
}

// Rect returns the instance's placed footprint given its archetype size,
// accounting for the orientation's effect on width/height swap (90-degree
// rotations swap X and Y extents).
func (i *Instance) Rect(sizeX, sizeY int64) geom.Rect64 {
	w, h := sizeX, sizeY
	switch i.Orientation {
	case geom.R90, geom.R270, geom.MX90, geom.MY90:
		w, h = sizeY, sizeX
	}
	return geom.NewRect64(i.Position, w, h)
}
