package placer

// edge is one pairwise weighted term of a net's quadratic cost.
type edge struct {
	a, b   int // indices into the net's pin list
	weight float64
}

// netEdges returns the pairwise edges for a net with the given number of
// non-power/ground pins, according to model. Nets with fewer than 2 pins
// produce no edges (callers should warn and skip separately).
func netEdges(numPins int, model NetModel) []edge {
	if numPins < 2 {
		return nil
	}
	w := 1.0 / float64(numPins-1)

	switch model {
	case NetModelB2B:
		return b2bEdges(numPins, w)
	default:
		return starEdges(numPins, w)
	}
}

// starEdges connects every unordered pair of pins, per the 1/(k-1)
// formula applied literally.
func starEdges(numPins int, w float64) []edge {
	edges := make([]edge, 0, numPins*(numPins-1)/2)
	for i := 0; i < numPins; i++ {
		for j := i + 1; j < numPins; j++ {
			edges = append(edges, edge{a: i, b: j, weight: w})
		}
	}
	return edges
}

// b2bEdges implements true bound-to-bound: pin 0 and pin numPins-1 are
// taken as the net's two bound (extremal) pins by the caller's pin
// ordering (callers sort pins by x before calling so that index 0 / last
// are the x-extremes), and every other pin connects only to those two.
func b2bEdges(numPins int, w float64) []edge {
	if numPins == 2 {
		return []edge{{a: 0, b: 1, weight: w}}
	}
	lo, hi := 0, numPins-1
	edges := make([]edge, 0, 2*(numPins-2)+1)
	edges = append(edges, edge{a: lo, b: hi, weight: w})
	for i := 1; i < hi; i++ {
		edges = append(edges, edge{a: lo, b: i, weight: w})
		edges = append(edges, edge{a: hi, b: i, weight: w})
	}
	return edges
}
