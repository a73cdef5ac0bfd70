package fibre

import "errors"

// ErrEmptyGraph is returned when Assign is given a graph with no nodes.
var ErrEmptyGraph = errors.New("fibre: empty graph")
