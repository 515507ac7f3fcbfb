// Package placer implements the recursive-bisection quadratic placer:
// it builds a bound-to-bound net model over the top module's netlist,
// solves two independent sparse linear systems per sub-region with the
// sparse package's conjugate-gradient solver, and recurses until every
// region holds few enough instances to stop, snapping final centers to
// integer nanometers and handing off to the legalizer.
package placer

import (
	"errors"

	"github.com/sarchlab/zeonplace/sparse"
)

// NetModel selects which pairwise-weight net model the B2B formulation
// uses. Both are implemented because the source material is ambiguous
// about which one is "the" bound-to-bound model (see DESIGN.md).
type NetModel int

const (
	// NetModelStar connects every unordered pair of a net's pins with
	// weight 1/(k-1), exactly as the 1/(k-1) formula is stated.
	NetModelStar NetModel = iota
	// NetModelB2B connects every pin only to the net's two x-extremal
	// "bound" pins, each edge still weighted 1/(k-1), giving a net with
	// k pins O(k) edges instead of O(k^2).
	NetModelB2B
)

// Options tunes one placement run.
type Options struct {
	NetModel     NetModel
	MaxLevels    int
	MinInstances int
	CG           sparse.Options
}

// DefaultOptions returns reasonable defaults: star net model, 6 levels
// of bisection, and a leaf size of 1 instance.
func DefaultOptions() Options {
	return Options{
		NetModel:     NetModelStar,
		MaxLevels:    6,
		MinInstances: 1,
	}
}

// ErrOverUtilization is returned when the total movable cell area
// exceeds the placeable region's area.
var ErrOverUtilization = errors.New("placer: region area smaller than cell area")

// ErrInvalidState is returned when a placement precondition is not met
// (no rows, zero minimum cell size, unfixed top-level pins).
var ErrInvalidState = errors.New("placer: invalid state")
