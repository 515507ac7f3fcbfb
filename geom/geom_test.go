package geom_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/zeonplace/geom"
)

var _ = Describe("Orientation", func() {
	It("round-trips a point through four 90-degree rotations", func() {
		p := geom.Coord64{X: 3, Y: 7}
		got := p
		for i := 0; i < 4; i++ {
			got = geom.R90.Rotate(got)
		}
		Expect(got).To(Equal(p))
	})

	It("computes R90 exactly", func() {
		Expect(geom.R90.Rotate(geom.Coord64{X: 2, Y: 5})).To(Equal(geom.Coord64{X: -5, Y: 2}))
	})

	It("computes R180 exactly", func() {
		Expect(geom.R180.Rotate(geom.Coord64{X: 2, Y: 5})).To(Equal(geom.Coord64{X: -2, Y: -5}))
	})

	It("computes R270 exactly", func() {
		Expect(geom.R270.Rotate(geom.Coord64{X: 2, Y: 5})).To(Equal(geom.Coord64{X: 5, Y: -2}))
	})
})

var _ = Describe("Rect64", func() {
	r := geom.NewRect64(geom.Coord64{X: 0, Y: 0}, 1000, 200)

	It("clamps points outside the rectangle to its boundary", func() {
		Expect(r.Clamp(geom.Coord64{X: -5, Y: 50})).To(Equal(geom.Coord64{X: 0, Y: 50}))
		Expect(r.Clamp(geom.Coord64{X: 5000, Y: 50})).To(Equal(geom.Coord64{X: 1000, Y: 50}))
	})

	It("reports containment inclusive of the boundary", func() {
		Expect(r.Contains(geom.Coord64{X: 1000, Y: 200})).To(BeTrue())
		Expect(r.Contains(geom.Coord64{X: 1001, Y: 200})).To(BeFalse())
	})

	It("detects overlap between two rectangles", func() {
		other := geom.NewRect64(geom.Coord64{X: 500, Y: 0}, 1000, 200)
		Expect(r.Overlaps(other)).To(BeTrue())

		disjoint := geom.NewRect64(geom.Coord64{X: 2000, Y: 0}, 100, 100)
		Expect(r.Overlaps(disjoint)).To(BeFalse())
	})
})
