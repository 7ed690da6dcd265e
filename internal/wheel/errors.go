package wheel

import "errors"

// ErrInvalidConfiguration is returned when an option set cannot form a
// valid wheel: fewer than two options, a weight below the minimum, or a
// non-positive total weight. It is raised at partition-build time, before
// any spin is attempted.
var ErrInvalidConfiguration = errors.New("invalid wheel configuration")
