package pass_test

import (
	"bytes"
	"errors"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/zeonplace/pass"
	"github.com/sarchlab/zeonplace/zplog"
)

var _ = Describe("Driver against a mocked pass", func() {
	var (
		mockCtrl *gomock.Controller
		mockA    *MockPass
		mockB    *MockPass
		registry *pass.Registry
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockA = NewMockPass(mockCtrl)
		mockB = NewMockPass(mockCtrl)

		registry = pass.NewRegistry()
		registry.Register("a", func(pass.Invocation) (pass.Pass, error) { return mockA, nil })
		registry.Register("b", func(pass.Invocation) (pass.Pass, error) { return mockB, nil })
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("runs every scripted pass in order when each succeeds", func() {
		mockA.EXPECT().Name().Return("a").AnyTimes()
		mockA.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		mockB.EXPECT().Name().Return("b").AnyTimes()
		mockB.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		design, top := newOverlappingRowDesign(1)
		d := &pass.Driver{Registry: registry, Log: zplog.Default(), ReportWriter: &bytes.Buffer{}}

		report, err := d.Run(design, top, []string{"a", "b"})
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Passes).To(HaveLen(2))
		Expect(report.Passes[0].Name).To(Equal("a"))
		Expect(report.Passes[1].Name).To(Equal("b"))
	})

	It("never invokes the second pass once the first fails", func() {
		mockA.EXPECT().Name().Return("a").AnyTimes()
		mockA.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("pass a failed"))
		mockB.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		design, top := newOverlappingRowDesign(1)
		d := &pass.Driver{Registry: registry, Log: zplog.Default(), ReportWriter: &bytes.Buffer{}}

		_, err := d.Run(design, top, []string{"a", "b"})
		Expect(err).To(HaveOccurred())
	})
})
