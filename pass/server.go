package pass

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/sarchlab/zeonplace/db"
)

// Server exposes a running Driver's progress over HTTP for a human or
// script to poll mid-run. It only ever reads a snapshot copied out
// under mu; it never mutates the chip database.
type Server struct {
	mu       sync.RWMutex
	snapshot statusSnapshot
	design   *db.Design
	top      *db.Cell
}

type statusSnapshot struct {
	RunID      string       `json:"run_id"`
	DesignName string       `json:"design_name"`
	Passes     []PassResult `json:"passes"`
}

// NewServer creates a Server bound to design/top for its HPWL endpoint.
func NewServer(design *db.Design, top *db.Cell) *Server {
	return &Server{design: design, top: top}
}

// Update replaces the published status snapshot; call it after each
// pass completes.
func (s *Server) Update(runID RunID, report *Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = statusSnapshot{
		RunID:      runID.String(),
		DesignName: report.DesignName,
		Passes:     append([]PassResult(nil), report.Passes...),
	}
}

// Router builds the /status, /report and /design/{name}/hpwl mux.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/report", s.handleReport).Methods(http.MethodGet)
	r.HandleFunc("/design/{name}/hpwl", s.handleHPWL).Methods(http.MethodGet)
	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(snap)
}

func (s *Server) handleReport(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	passes := append([]PassResult(nil), s.snapshot.Passes...)
	name := s.snapshot.DesignName
	s.mu.RUnlock()

	report := &Report{DesignName: name, Passes: passes}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	report.WriteReport(w)
}

func (s *Server) handleHPWL(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name != s.design.Name {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int64{"hpwl": TotalHPWL(s.design, s.top)})
}
