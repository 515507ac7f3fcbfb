// Package config builds a run configuration for one zeonplace invocation:
// floorplan dimensions, solver tuning, and the ordered pass script.
package config

import (
	"fmt"

	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/geom"
	"github.com/sarchlab/zeonplace/placer"
)

// FloorplanConfig mirrors db.Floorplan's fields in plain nanometer
// integers, the unit every size in this package is expressed in.
type FloorplanConfig struct {
	CoreWidthNM, CoreHeightNM       int64
	MinCellWidthNM, MinCellHeightNM int64
	IOMarginLeft, IOMarginRight     int64
	IOMarginTop, IOMarginBottom     int64
	IO2CoreLeft, IO2CoreRight       int64
	IO2CoreTop, IO2CoreBottom       int64
}

// ApplyTo writes f into design's floorplan, leaving rows untouched --
// rows come from the technology's site grid, not this run config.
func (f FloorplanConfig) ApplyTo(design *db.Design) {
	design.Floorplan.CoreSize = geom.Coord64{X: f.CoreWidthNM, Y: f.CoreHeightNM}
	design.Floorplan.MinCellSize = geom.Coord64{X: f.MinCellWidthNM, Y: f.MinCellHeightNM}
	design.Floorplan.IOMargins = geom.Margins64{
		Left: f.IOMarginLeft, Right: f.IOMarginRight,
		Top: f.IOMarginTop, Bottom: f.IOMarginBottom,
	}
	design.Floorplan.IO2Core = geom.Margins64{
		Left: f.IO2CoreLeft, Right: f.IO2CoreRight,
		Top: f.IO2CoreTop, Bottom: f.IO2CoreBottom,
	}
}

// SolverConfig tunes the placer's bisection and conjugate-gradient
// solver, the knobs placer.Options exposes.
type SolverConfig struct {
	NetModel     string // "star" or "b2b"
	MaxLevels    int
	MinInstances int
	Tol          float64
	MaxIters     int
}

// ToPlacerOptions validates and converts s into placer.Options. An
// unrecognized NetModel returns an error instead of panicking, since a
// bad run config must not crash the process (see pass.RequireNamed for
// the same rule applied to pass arguments).
func (s SolverConfig) ToPlacerOptions() (placer.Options, error) {
	opts := placer.DefaultOptions()

	switch s.NetModel {
	case "", "star":
		opts.NetModel = placer.NetModelStar
	case "b2b":
		opts.NetModel = placer.NetModelB2B
	default:
		return placer.Options{}, fmt.Errorf("config: unrecognized net_model %q (want star|b2b)", s.NetModel)
	}

	if s.MaxLevels > 0 {
		opts.MaxLevels = s.MaxLevels
	}
	if s.MinInstances > 0 {
		opts.MinInstances = s.MinInstances
	}
	opts.CG.Tol = s.Tol
	opts.CG.MaxIters = s.MaxIters

	return opts, nil
}

// RunConfig is the fully resolved configuration for one driver run.
type RunConfig struct {
	Name      string
	Floorplan FloorplanConfig
	Solver    SolverConfig
	Passes    []string
	History   string // sqlite3 path; empty disables run-history persistence
	DebugAddr string // e.g. ":8080"; empty disables the debug server
}

// Builder assembles a RunConfig using a chained value-receiver WithX
// setter idiom, ending in a final Build(name).
type Builder struct {
	floorplan FloorplanConfig
	solver    SolverConfig
	passes    []string
	history   string
	debugAddr string
}

// WithFloorplan sets the floorplan dimensions.
func (b Builder) WithFloorplan(f FloorplanConfig) Builder {
	b.floorplan = f
	return b
}

// WithSolver sets the placer/legalizer solver tuning.
func (b Builder) WithSolver(s SolverConfig) Builder {
	b.solver = s
	return b
}

// WithPasses sets the ordered pass script.
func (b Builder) WithPasses(passes []string) Builder {
	b.passes = append([]string(nil), passes...)
	return b
}

// WithHistory sets the SQLite run-history path. An empty path disables
// history persistence.
func (b Builder) WithHistory(path string) Builder {
	b.history = path
	return b
}

// WithDebugAddr sets the debug HTTP server's listen address. An empty
// address disables the server.
func (b Builder) WithDebugAddr(addr string) Builder {
	b.debugAddr = addr
	return b
}

// Build finalizes the RunConfig under name.
func (b Builder) Build(name string) *RunConfig {
	return &RunConfig{
		Name:      name,
		Floorplan: b.floorplan,
		Solver:    b.solver,
		Passes:    b.passes,
		History:   b.history,
		DebugAddr: b.debugAddr,
	}
}
