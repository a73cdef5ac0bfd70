package metrics

import "errors"

// ErrDegenerateRegion is returned when a metric requires a property a
// region cannot provide — e.g. perimeter of a zero-area region.
var ErrDegenerateRegion = errors.New("metrics: degenerate region")
