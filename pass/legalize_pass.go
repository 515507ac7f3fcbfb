package pass

import (
	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/legalizer"
	"github.com/sarchlab/zeonplace/zplog"
)

// legalizePass wraps legalizer.Legalize as a registered pass. It takes
// no arguments.
type legalizePass struct{}

func (p *legalizePass) Name() string { return "legalize" }

func (p *legalizePass) Run(design *db.Design, top *db.Cell, _ *zplog.Logger) error {
	return legalizer.Legalize(design, top)
}

func newLegalizePass(_ Invocation) (Pass, error) {
	return &legalizePass{}, nil
}
