package network

import "errors"

// ErrNoNucleation indicates tubeness had no pixel reaching NucThresh: the
// image yields zero nucleation points (spec.md §7 Extraction, §8 boundary
// case "empty image").
var ErrNoNucleation = errors.New("network: no nucleation point found")

// ErrBadParams indicates a non-positive growth parameter was supplied.
var ErrBadParams = errors.New("network: growth parameters must be positive")
