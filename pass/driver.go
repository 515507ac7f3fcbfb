package pass

import (
	"io"
	"os"
	"time"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/zplog"
)

// Driver orders a script of passes against one design: it stops at the
// first failing pass unless ContinueOnFailure is set, and after every
// pass (success or failure) appends one PassResult to the accumulated
// Report.
type Driver struct {
	Registry          *Registry
	Log               *zplog.Logger
	ReportWriter      io.Writer // where the exit hook writes an unfinished run's report; NewDriver sets os.Stdout
	ContinueOnFailure bool
	History           *History // optional, nil disables run-history persistence
	Monitor           *Monitor // optional, nil disables RSS sampling
	DebugServer       *Server  // optional, nil disables the debug HTTP server

	report  Report
	flushed bool
	runID   RunID
}

// RunID returns the identifier minted for the most recent Run call.
func (d *Driver) RunID() RunID { return d.runID }

// NewDriver creates a Driver with the built-in place/legalize passes
// registered and a default logger.
func NewDriver() *Driver {
	return &Driver{
		Registry:     NewDefaultRegistry(),
		Log:          zplog.Default(),
		ReportWriter: os.Stdout,
	}
}

// Run executes script (one pass invocation per line) against design's
// current top module, returning the accumulated report. It registers an
// atexit hook that writes the report accumulated so far to ReportWriter
// if the process exits through atexit while Run is still running; once
// Run has returned, the hook writes nothing.
func (d *Driver) Run(design *db.Design, top *db.Cell, script []string) (*Report, error) {
	d.report = Report{DesignName: design.Name}
	d.flushed = false
	d.runID = NewRunID()

	atexit.Register(d.flushOnExit)

	for _, line := range script {
		result := d.runOne(design, top, line)
		d.report.Passes = append(d.report.Passes, result)

		if d.History != nil {
			_ = d.History.Record(d.runID, design.Name, result)
		}
		if d.DebugServer != nil {
			d.DebugServer.Update(d.runID, &d.report)
		}

		if !result.Success && !d.ContinueOnFailure {
			d.flushed = true
			return &d.report, result.Err
		}
	}

	d.flushed = true
	return &d.report, nil
}

func (d *Driver) flushOnExit() {
	if d.flushed || d.ReportWriter == nil {
		return
	}
	d.report.WriteReport(d.ReportWriter)
}

func (d *Driver) runOne(design *db.Design, top *db.Cell, line string) PassResult {
	start := time.Now()

	p, err := d.Registry.Build(line)
	if err != nil {
		return PassResult{Name: line, Success: false, Err: err, Duration: time.Since(start)}
	}

	err = p.Run(design, top, d.Log)
	result := PassResult{
		Name:      p.Name(),
		Success:   err == nil,
		Err:       err,
		Duration:  time.Since(start),
		HPWLAfter: TotalHPWL(design, top),
	}
	if d.Monitor != nil {
		result.RSSBytes = d.Monitor.SampleRSS()
	}
	return result
}
