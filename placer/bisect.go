package placer

import (
	"fmt"
	"sort"

	"github.com/sarchlab/zeonplace/container"
	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/geom"
	"github.com/sarchlab/zeonplace/sparse"
	"github.com/sarchlab/zeonplace/zplog"
)

type fpoint struct{ x, y float64 }

// region is one node of the bisection queue.
type region struct {
	rect    geom.Rect64
	level   int
	members []container.Key // movable instances assigned to this region
}

// Place runs the full recursive-bisection quadratic placement of top's
// netlist within design's floorplan core area, and writes final integer
// positions back onto every movable instance (status becomes Placed).
// Preconditions: the floorplan must have a non-zero minimum cell size
// and at least one row, every top-level PIN instance must already be
// PLACED_AND_FIXED, and total movable area must not exceed the core area.
func Place(design *db.Design, top *db.Cell, opts Options, log *zplog.Logger) error {
	fp := design.Floorplan
	if fp.MinCellSize.X <= 0 || fp.MinCellSize.Y <= 0 || !fp.HasRows() {
		return fmt.Errorf("%w: floorplan has no rows or zero minimum cell size", ErrInvalidState)
	}

	if err := checkPinsFixed(top); err != nil {
		return err
	}

	snap, err := BuildSnapshot(design, top, log)
	if err != nil {
		return err
	}

	core := fp.CoreRect()
	if snap.TotalMovableArea() > core.Width()*core.Height() {
		return ErrOverUtilization
	}

	pos := make([]fpoint, len(snap.Movable))
	center := core.Center()
	for i := range pos {
		pos[i] = fpoint{x: float64(center.X), y: float64(center.Y)}
	}

	queue := []*region{{rect: core, level: 0, members: allMovableKeys(snap)}}

	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]

		if len(r.members) == 0 {
			continue
		}

		solveRegion(snap, r, pos, opts, log)

		if r.level < opts.MaxLevels && len(r.members) >= opts.MinInstances {
			children := split(snap, r, pos)
			queue = append(queue, children...)
		}
	}

	for i, m := range snap.Movable {
		center := geom.Coord64{X: round(pos[i].x), Y: round(pos[i].y)}
		ins, err := top.Netlist.Instances.AtKey(m.Key)
		if err != nil {
			continue
		}
		ins.SetCenter(center, m.SizeX, m.SizeY)
		ins.Status = db.Placed
	}

	return nil
}

func allMovableKeys(snap *Snapshot) []container.Key {
	keys := make([]container.Key, len(snap.Movable))
	for i, m := range snap.Movable {
		keys[i] = m.Key
	}
	return keys
}

func checkPinsFixed(top *db.Cell) error {
	var err error
	top.Netlist.Instances.Each(func(_ container.Key, ins *db.Instance) bool {
		if ins.Type == db.InstPin && !ins.IsFixed() {
			err = fmt.Errorf("%w: top-level pin %q is not PLACED_AND_FIXED", ErrInvalidState, ins.Name)
			return false
		}
		return true
	})
	return err
}

func round(f float64) int64 {
	if f >= 0 {
		return int64(f + 0.5)
	}
	return -int64(-f + 0.5)
}

// solveRegion builds and solves the two independent linear systems for
// r, writing results back into pos for r's members (clamped to r.rect).
func solveRegion(snap *Snapshot, r *region, pos []fpoint, opts Options, log *zplog.Logger) {
	n := len(r.members)
	inRegion := make(map[container.Key]int, n)
	for i, k := range r.members {
		inRegion[k] = i
	}

	a := sparse.NewMatrix(n, 4)
	bx := make([]float64, n)
	by := make([]float64, n)
	x0 := make([]float64, n)
	y0 := make([]float64, n)
	for k, idx := range inRegion {
		p := pointOf(snap, k, pos)
		x0[idx], y0[idx] = p.x, p.y
	}

	for _, net := range snap.Nets {
		pins := resolvePins(snap, net, pos)
		if opts.NetModel == NetModelB2B {
			sort.Slice(pins, func(i, j int) bool { return pins[i].pos.x < pins[j].pos.x })
		}
		for _, e := range netEdges(len(pins), opts.NetModel) {
			addEdge(a, bx, by, r.rect, inRegion, pins[e.a], pins[e.b], e.weight)
		}
	}

	xs, xStatus := sparse.Solve(a, bx, x0, opts.CG)
	ys, yStatus := sparse.Solve(a, by, y0, opts.CG)
	if log != nil && (xStatus == sparse.Breakdown || yStatus == sparse.Breakdown) {
		log.Warningf("placer: CG breakdown in a region with %d members", n)
	}

	for k, idx := range inRegion {
		p := geom.Coord64{X: int64(xs[idx]), Y: int64(ys[idx])}
		clamped := r.rect.Clamp(p)
		setPos(pos, snap, k, fpoint{x: float64(clamped.X), y: float64(clamped.Y)})
	}
}

type resolvedPin struct {
	instance container.Key
	pos      fpoint
	inRegion bool
}

func resolvePins(snap *Snapshot, net netInfo, pos []fpoint) []resolvedPin {
	pins := make([]resolvedPin, 0, len(net.Pins))
	for _, p := range net.Pins {
		base := pointOf(snap, p.Instance, pos)
		abs := fpoint{x: base.x + float64(p.Offset.X), y: base.y + float64(p.Offset.Y)}
		_, movable := snap.MovableIndex(p.Instance)
		pins = append(pins, resolvedPin{instance: p.Instance, pos: abs, inRegion: movable})
	}
	return pins
}

func pointOf(snap *Snapshot, key container.Key, pos []fpoint) fpoint {
	if idx, ok := snap.MovableIndex(key); ok {
		return pos[idx]
	}
	if fx, ok := snap.Fixed[key]; ok {
		return fpoint{x: float64(fx.Position.X), y: float64(fx.Position.Y)}
	}
	return fpoint{}
}

func setPos(pos []fpoint, snap *Snapshot, key container.Key, p fpoint) {
	if idx, ok := snap.MovableIndex(key); ok {
		pos[idx] = p
	}
}

// addEdge applies one weighted pairwise term of a net's quadratic cost
// to the region's linear system: movable-in-region pairs modify the
// off-diagonal (stored in the upper triangle) and both diagonals; any pin that is fixed or
// movable-but-outside-the-region is a pseudo-terminal, clamped onto the
// region rectangle and contributing only to the diagonal and
// right-hand side.
func addEdge(a *sparse.Matrix, bx, by []float64, rect geom.Rect64, inRegion map[container.Key]int, p1, p2 resolvedPin, w float64) {
	i1, in1 := inRegion[p1.instance]
	i2, in2 := inRegion[p2.instance]

	switch {
	case in1 && in2:
		a.Add(i1, i1, w)
		a.Add(i2, i2, w)
		if i1 < i2 {
			a.Add(i1, i2, -w)
		} else {
			a.Add(i2, i1, -w)
		}
	case in1 && !in2:
		clamped := rect.Clamp(geom.Coord64{X: int64(p2.pos.x), Y: int64(p2.pos.y)})
		a.Add(i1, i1, w)
		bx[i1] += w * float64(clamped.X)
		by[i1] += w * float64(clamped.Y)
	case in2 && !in1:
		clamped := rect.Clamp(geom.Coord64{X: int64(p1.pos.x), Y: int64(p1.pos.y)})
		a.Add(i2, i2, w)
		bx[i2] += w * float64(clamped.X)
		by[i2] += w * float64(clamped.Y)
	default:
		// Both endpoints are outside this region: irrelevant here.
	}
}

// split divides r into two children by cut direction: even levels cut
// vertically (on X), odd levels cut horizontally (on Y); members are
// sorted on the cut axis and split at the midpoint index, and each
// child's members are relocated to its rectangle's center as the
// initial guess for its own solve.
func split(snap *Snapshot, r *region, pos []fpoint) []*region {
	vertical := r.level%2 == 0

	sorted := append([]container.Key(nil), r.members...)
	sort.Slice(sorted, func(i, j int) bool {
		pi, pj := pointOf(snap, sorted[i], pos), pointOf(snap, sorted[j], pos)
		var ci, cj float64
		if vertical {
			ci, cj = pi.x, pj.x
		} else {
			ci, cj = pi.y, pj.y
		}
		if ci != cj {
			return ci < cj
		}
		return sorted[i] < sorted[j]
	})

	mid := len(sorted) / 2
	left := sorted[:mid]
	right := sorted[mid:]

	var leftRect, rightRect geom.Rect64
	center := r.rect.Center()
	if vertical {
		leftRect = geom.NewRect64(r.rect.LL, center.X-r.rect.LL.X, r.rect.Height())
		rightRect = geom.Rect64{LL: geom.Coord64{X: center.X, Y: r.rect.LL.Y}, UR: r.rect.UR}
	} else {
		leftRect = geom.NewRect64(r.rect.LL, r.rect.Width(), center.Y-r.rect.LL.Y)
		rightRect = geom.Rect64{LL: geom.Coord64{X: r.rect.LL.X, Y: center.Y}, UR: r.rect.UR}
	}

	relocate(snap, left, pos, leftRect.Center())
	relocate(snap, right, pos, rightRect.Center())

	return []*region{
		{rect: leftRect, level: r.level + 1, members: left},
		{rect: rightRect, level: r.level + 1, members: right},
	}
}

func relocate(snap *Snapshot, members []container.Key, pos []fpoint, center geom.Coord64) {
	for _, k := range members {
		setPos(pos, snap, k, fpoint{x: float64(center.X), y: float64(center.Y)})
	}
}
