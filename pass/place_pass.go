package pass

import (
	"fmt"
	"strconv"

	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/placer"
	"github.com/sarchlab/zeonplace/zplog"
)

// placePass wraps placer.Place as a registered pass. No named argument
// is required; -net_model, -max_levels, -min_instances and -tol
// override placer.DefaultOptions() when present.
type placePass struct {
	opts placer.Options
}

func (p *placePass) Name() string { return "place" }

func (p *placePass) Run(design *db.Design, top *db.Cell, log *zplog.Logger) error {
	return placer.Place(design, top, p.opts, log)
}

func newPlacePass(inv Invocation) (Pass, error) {
	opts := placer.DefaultOptions()

	if v, ok := inv.Named["net_model"]; ok {
		switch v {
		case "star":
			opts.NetModel = placer.NetModelStar
		case "b2b":
			opts.NetModel = placer.NetModelB2B
		default:
			return nil, fmt.Errorf("pass %q: invalid net_model %q (want star|b2b)", "place", v)
		}
	}
	if v, ok := inv.Named["max_levels"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		opts.MaxLevels = n
	}
	if v, ok := inv.Named["min_instances"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		opts.MinInstances = n
	}
	if v, ok := inv.Named["tol"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		opts.CG.Tol = f
	}

	return &placePass{opts: opts}, nil
}
