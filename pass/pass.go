// Package pass implements a CLI-style pass model: a registry of named
// passes, each built by a factory from one parsed script line (named and
// positional arguments), and an ordered driver that runs a script of them
// against one design, stopping at the first failure unless configured
// to continue, and recording one PassResult per pass.
//
// Registry.Build parses a script line and calls the factory registered
// under the line's pass name.
package pass

import (
	"fmt"

	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/zplog"
)

// Pass is one phase of the driver pipeline.
type Pass interface {
	// Name identifies the pass in logs, reports and run history.
	Name() string
	// Run executes the pass against design's current top module.
	Run(design *db.Design, top *db.Cell, log *zplog.Logger) error
}

// ErrMissingNamedArg is returned by RequireNamed when a pass's required
// named parameter was not supplied.
type ErrMissingNamedArg struct {
	Pass string
	Key  string
}

func (e *ErrMissingNamedArg) Error() string {
	return fmt.Sprintf("pass %q: missing required named argument %q", e.Pass, e.Key)
}
