package sentinel

import "errors"

// Sentinel errors for lookup facts. Lower layers return these (usually wrapped in
// a richer error type) so transport code can translate them without knowing the
// concrete type.
//
// For validation failures on caller input use pkg/domain-errors directly.
var (
	ErrNotFound = errors.New("not found")
)
