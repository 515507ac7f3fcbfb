package pass

import "github.com/rs/xid"

// RunID is a sortable, globally unique external identifier for one
// driver run, minted with rs/xid. It is distinct from (and never a
// substitute for) container.Key, which must remain a small monotonic
// uint32 per the chip database's identity model.
type RunID struct{ id xid.ID }

// NewRunID mints a fresh run identifier.
func NewRunID() RunID { return RunID{id: xid.New()} }

// String returns the canonical base32 text form.
func (r RunID) String() string { return r.id.String() }
