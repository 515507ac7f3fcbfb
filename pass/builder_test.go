package pass_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/zeonplace/pass"
)

var _ = Describe("ParseLine", func() {
	It("splits a bare pass name with no arguments", func() {
		inv, err := pass.ParseLine("legalize")
		Expect(err).NotTo(HaveOccurred())
		Expect(inv.Name).To(Equal("legalize"))
		Expect(inv.Named).To(BeEmpty())
		Expect(inv.Positional).To(BeEmpty())
	})

	It("collects -key value pairs as named arguments", func() {
		inv, err := pass.ParseLine("place -net_model b2b -max_levels 3")
		Expect(err).NotTo(HaveOccurred())
		Expect(inv.Name).To(Equal("place"))
		Expect(inv.Named).To(HaveKeyWithValue("net_model", "b2b"))
		Expect(inv.Named).To(HaveKeyWithValue("max_levels", "3"))
	})

	It("collects bare tokens as positional arguments", func() {
		inv, err := pass.ParseLine("place foo bar -tol 0.01")
		Expect(err).NotTo(HaveOccurred())
		Expect(inv.Positional).To(Equal([]string{"foo", "bar"}))
		Expect(inv.Named).To(HaveKeyWithValue("tol", "0.01"))
	})

	It("rejects a trailing -key with no value", func() {
		_, err := pass.ParseLine("place -net_model")
		Expect(err).To(HaveOccurred())
	})

	It("rejects an empty line", func() {
		_, err := pass.ParseLine("   ")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("RequireNamed", func() {
	It("passes when every key is present", func() {
		inv, _ := pass.ParseLine("place -net_model b2b")
		Expect(pass.RequireNamed("place", inv, "net_model")).NotTo(HaveOccurred())
	})

	It("reports the first missing key", func() {
		inv, _ := pass.ParseLine("place")
		err := pass.RequireNamed("place", inv, "net_model")
		Expect(err).To(HaveOccurred())

		var missing *pass.ErrMissingNamedArg
		Expect(err).To(BeAssignableToTypeOf(missing))
	})
})

var _ = Describe("Registry", func() {
	It("builds a registered pass by name", func() {
		r := pass.NewDefaultRegistry()
		p, err := r.Build("legalize")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Name()).To(Equal("legalize"))
	})

	It("rejects an unregistered pass name", func() {
		r := pass.NewDefaultRegistry()
		_, err := r.Build("nonexistent")
		Expect(err).To(HaveOccurred())
	})

	It("rejects an invalid net_model value for place", func() {
		r := pass.NewDefaultRegistry()
		_, err := r.Build("place -net_model hexagonal")
		Expect(err).To(HaveOccurred())
	})

	It("overrides default options from named arguments", func() {
		r := pass.NewDefaultRegistry()
		p, err := r.Build("place -net_model star -max_levels 2 -min_instances 1 -tol 0.05")
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Name()).To(Equal("place"))
	})
})
