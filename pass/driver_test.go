package pass_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/zeonplace/pass"
)

var _ = Describe("Driver", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	It("runs a script of passes in order and records a success report", func() {
		design, top := newOverlappingRowDesign(4)

		d := pass.NewDriver()
		d.ReportWriter = out

		report, err := d.Run(design, top, []string{"legalize"})
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Passes).To(HaveLen(1))
		Expect(report.Passes[0].Name).To(Equal("legalize"))
		Expect(report.Passes[0].Success).To(BeTrue())
		Expect(d.RunID().String()).NotTo(BeEmpty())
	})

	It("stops at the first failing pass by default", func() {
		design, top := newOverlappingRowDesign(4)
		design.Floorplan.Rows = nil // legalize now has nowhere to place cells

		d := pass.NewDriver()
		d.ReportWriter = out

		report, err := d.Run(design, top, []string{"legalize", "legalize"})
		Expect(err).To(HaveOccurred())
		Expect(report.Passes).To(HaveLen(1))
		Expect(report.Passes[0].Success).To(BeFalse())
	})

	It("continues past a failing pass when ContinueOnFailure is set", func() {
		design, top := newOverlappingRowDesign(4)
		design.Floorplan.Rows = nil

		d := pass.NewDriver()
		d.ReportWriter = out
		d.ContinueOnFailure = true

		report, err := d.Run(design, top, []string{"legalize", "nonexistent-pass"})
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Passes).To(HaveLen(2))
		Expect(report.Passes[0].Success).To(BeFalse())
		Expect(report.Passes[1].Success).To(BeFalse())
	})

	It("rejects an unparseable script line via its pass result", func() {
		design, top := newOverlappingRowDesign(2)

		d := pass.NewDriver()
		d.ReportWriter = out
		d.ContinueOnFailure = true

		report, _ := d.Run(design, top, []string{"   "})
		Expect(report.Passes).To(HaveLen(1))
		Expect(report.Passes[0].Success).To(BeFalse())
	})
})
