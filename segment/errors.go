package segment

import "errors"

// ErrKMeansNotConverged is returned when the BD-filter k-means pipeline
// exhausts its iteration budget without stabilising cluster assignments.
var ErrKMeansNotConverged = errors.New("segment: k-means failed to converge")
