package preprocess

import "errors"

// ErrZeroDynamicRange indicates an input with no intensity variation; per
// spec.md §4.1 this short-circuits to an all-zero output rather than
// propagating a division by zero.
var ErrZeroDynamicRange = errors.New("preprocess: zero dynamic range")

// ErrNonFinite indicates a non-finite input pixel, rejected outright.
var ErrNonFinite = errors.New("preprocess: non-finite pixel value")
