package legalizer

import (
	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/geom"
)

// cluster is the Abacus cluster-collapse working state for a contiguous
// run of cells within one row. firstIdx/lastIdx index into the row's
// cell slice (in ascending-x order). xL is the cluster's resolved left
// edge, valid only after collapse has run.
type cluster struct {
	firstIdx, lastIdx int
	W                 float64 // total weight
	Wd                float64 // total width
	q                 float64 // weighted offset accumulator
	xL                float64 // resolved left edge (post-collapse)
}

func (c *cluster) rightEdge() float64 { return c.xL + c.Wd }

// placeOneRow runs the Abacus cluster-collapse pass over cells (already
// sorted ascending by global x) against row, snapping each cell's target
// x to the site grid and writing the resulting legal positions back into
// cells[i].Legal. It does not check row membership; callers are expected
// to pass only the cells under consideration for this row.
func placeOneRow(cells []CellRecord, row db.Row, siteGrid int64) {
	var clusters []*cluster

	for i := range cells {
		target := snapToSiteGrid(cells[i].Global.X, row.Rect.LL.X, row.Rect.UR.X, siteGrid)

		if len(clusters) == 0 || clusters[len(clusters)-1].rightEdge() <= target {
			clusters = append(clusters, &cluster{
				firstIdx: i,
				lastIdx:  i,
				W:        cells[i].Weight,
				Wd:       float64(cells[i].Size.X),
				q:        cells[i].Weight * target,
			})
			collapse(clusters, len(clusters)-1, row)
			continue
		}

		last := clusters[len(clusters)-1]
		last.q += cells[i].Weight * (target - last.Wd)
		last.W += cells[i].Weight
		last.Wd += float64(cells[i].Size.X)
		last.lastIdx = i
		clusters = collapseAndMerge(clusters, len(clusters)-1, row)
	}

	for _, c := range clusters {
		x := c.xL
		if x < float64(row.Rect.LL.X) {
			x = float64(row.Rect.LL.X)
		}
		for i := c.firstIdx; i <= c.lastIdx; i++ {
			cells[i].Legal = geom.Coord64{X: int64(x), Y: row.Rect.LL.Y}
			x += float64(cells[i].Size.X)
		}
	}
}

// snapToSiteGrid rounds x to the nearest multiple of siteGrid relative to
// rowLeft. If the nearest-rounded result would fall past rowRight, it
// rounds down instead.
func snapToSiteGrid(x, rowLeft, rowRight, siteGrid int64) float64 {
	rel := x - rowLeft
	nearest := float64(((rel + siteGrid/2) / siteGrid) * siteGrid)
	if rowLeft+int64(nearest) > rowRight {
		nearest = float64((rel / siteGrid) * siteGrid)
	}
	return float64(rowLeft) + nearest
}

// collapse resolves clusters[idx]'s optimal left edge (x* = q/W, clamped
// to the row), storing it into xL.
func collapse(clusters []*cluster, idx int, row db.Row) {
	c := clusters[idx]
	x := c.q / c.W
	minX := float64(row.Rect.LL.X)
	maxX := float64(row.Rect.UR.X) - c.Wd
	if x < minX {
		x = minX
	}
	if x > maxX {
		x = maxX
	}
	c.xL = x
}

// collapseAndMerge resolves clusters[idx] and, while it overlaps its
// left neighbor, merges the two and re-resolves, per the Abacus
// cluster-collapse recursion. It returns the (possibly shortened)
// cluster list.
func collapseAndMerge(clusters []*cluster, idx int, row db.Row) []*cluster {
	collapse(clusters, idx, row)

	for idx > 0 {
		prev := clusters[idx-1]
		cur := clusters[idx]
		if prev.rightEdge() <= cur.xL {
			break
		}

		prev.q += cur.q - cur.W*prev.Wd
		prev.W += cur.W
		prev.Wd += cur.Wd
		prev.lastIdx = cur.lastIdx

		clusters = append(clusters[:idx], clusters[idx+1:]...)
		idx--
		collapse(clusters, idx, row)
	}

	return clusters
}

// rowCost sums each cell's weighted L1 displacement between its global
// and legal position. It returns Infeasible if any cell's legal footprint
// would fall outside the row horizontally.
func rowCost(cells []CellRecord, row db.Row) float64 {
	var total float64
	for _, c := range cells {
		if c.Legal.X < row.Rect.LL.X || c.Legal.X+c.Size.X > row.Rect.UR.X {
			return Infeasible
		}
		dx := c.Legal.X - c.Global.X
		if dx < 0 {
			dx = -dx
		}
		dy := c.Legal.Y - c.Global.Y
		if dy < 0 {
			dy = -dy
		}
		total += c.Weight * float64(dx+dy)
	}
	return total
}
