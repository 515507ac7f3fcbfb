package pass_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/zeonplace/pass"
)

var _ = Describe("Server", func() {
	It("serves /status with the latest snapshot", func() {
		design, top := newOverlappingRowDesign(2)
		s := pass.NewServer(design, top)
		runID := pass.NewRunID()
		s.Update(runID, &pass.Report{DesignName: "chip", Passes: []pass.PassResult{{Name: "legalize", Success: true}}})

		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))

		var body map[string]interface{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body["design_name"]).To(Equal("chip"))
		Expect(body["run_id"]).To(Equal(runID.String()))
	})

	It("serves /report as the banner-style text report", func() {
		design, top := newOverlappingRowDesign(2)
		s := pass.NewServer(design, top)
		s.Update(pass.NewRunID(), &pass.Report{DesignName: "chip", Passes: []pass.PassResult{{Name: "legalize", Success: true}}})

		req := httptest.NewRequest(http.MethodGet, "/report", nil)
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("ZEONPLACE PASS REPORT"))
	})

	It("serves /design/{name}/hpwl for the bound design", func() {
		design, top := newOverlappingRowDesign(2)
		s := pass.NewServer(design, top)

		req := httptest.NewRequest(http.MethodGet, "/design/chip/hpwl", nil)
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))

		var body map[string]int64
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body).To(HaveKey("hpwl"))
	})

	It("404s for an unknown design name", func() {
		design, top := newOverlappingRowDesign(2)
		s := pass.NewServer(design, top)

		req := httptest.NewRequest(http.MethodGet, "/design/nonexistent/hpwl", nil)
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})
})
