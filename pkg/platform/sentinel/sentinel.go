package sentinel

import "errors"

// Sentinel errors for store-level facts. The model and solver stores return
// these (optionally wrapped) so callers can branch with errors.Is instead of
// string matching.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in the model store
// - ErrUntracked: perimeter has no solver registry entry
// - ErrMissingGeometry: a constraint references geometry the solver has not materialized
// - ErrUnknownKey: no constraint is registered under the given canonical key
// - ErrInvalidState: operation not valid in the current lifecycle state
var (
	ErrNotFound        = errors.New("not found")
	ErrUntracked       = errors.New("untracked")
	ErrMissingGeometry = errors.New("missing geometry")
	ErrUnknownKey      = errors.New("unknown constraint key")
	ErrInvalidState    = errors.New("invalid state")
)
