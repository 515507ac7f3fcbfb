package pass_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/zeonplace/pass"
)

var _ = Describe("Monitor", func() {
	It("attaches to the current process and samples a non-negative RSS", func() {
		m, err := pass.NewMonitor()
		Expect(err).NotTo(HaveOccurred())

		rss := m.SampleRSS()
		Expect(rss).To(BeNumerically(">=", 0))
	})
})
