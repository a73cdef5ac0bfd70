package persist

import "errors"

// ErrUnsupportedVersion is returned when decoding a node-link document whose
// directed/multigraph flags don't match the one combination this core
// produces (directed=false, multigraph=false).
var ErrUnsupportedVersion = errors.New("persist: unsupported node-link document shape")
