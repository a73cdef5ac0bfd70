// File: events.go
// Event is the single message type flowing over the runner's one MPSC
// channel (spec.md §4.9/§5: "a single MPSC channel for progress/failure
// events; ordering is per-worker FIFO, not global").
package runner

import "github.com/fibrenet/pyfibre-go/model"

// EventKind distinguishes a successful per-image completion from a failure.
type EventKind int

const (
	EventCompleted EventKind = iota
	EventFailed
)

// Event is emitted by a worker once per image, whether it succeeded or
// failed.
type Event struct {
	Kind   EventKind
	Path   string
	Result ImageResult // valid only when Kind == EventCompleted
	Err    error       // valid only when Kind == EventFailed
}

// Loader produces an ImageStack for one path. Multi-page TIFF decoding is
// an external-collaborator concern (spec.md §6); the runner only consumes
// whatever Loader returns. A Loader failure is always reported as a fatal
// model.KindIO event.
type Loader func(path string) (*model.ImageStack, error)
