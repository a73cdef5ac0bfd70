// File: pool.go
// Worker dispatch (spec.md §4.9): up to Workers goroutines, each owns a
// disjoint contiguous slice of the path list, processes images one at a
// time, and emits exactly one Event per image on a shared buffered
// channel. Workers never suspend internally (spec.md §5 Suspension
// points) and poll ctx.Err() between images for cancellation (spec.md §5
// Cancellation), mirroring the teacher's flow.Dinic ctx.Err() checks
// between BFS phases.
package runner

import (
	"context"
	"sync"

	"github.com/fibrenet/pyfibre-go/model"
	"github.com/rs/zerolog/log"
)

// dispatch splits paths into up to n contiguous, roughly equal slices; n
// workers, n <= len(paths).
func dispatch(paths []string, n int) [][]string {
	if n > len(paths) {
		n = len(paths)
	}
	if n <= 0 {
		return nil
	}
	slices := make([][]string, n)
	for i := range slices {
		slices[i] = paths[i*len(paths)/n : (i+1)*len(paths)/n]
	}
	return slices
}

// runWorkers launches one goroutine per slice of dispatch(paths, workers)
// and returns the shared event channel, closed once every worker has
// returned.
func runWorkers(ctx context.Context, slices [][]string, cfg Config, load Loader) <-chan Event {
	events := make(chan Event, len(slices)*2+1)
	var wg sync.WaitGroup
	for _, slice := range slices {
		wg.Add(1)
		go func(paths []string) {
			defer wg.Done()
			runSlice(ctx, paths, cfg, load, events)
		}(slice)
	}
	go func() {
		wg.Wait()
		close(events)
	}()
	return events
}

// runSlice processes one worker's disjoint image slice, abandoning any
// remaining images the moment ctx is cancelled (spec.md §5: "in-flight
// images are abandoned, no partial results").
func runSlice(ctx context.Context, paths []string, cfg Config, load Loader, events chan<- Event) {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return
		}

		stack, err := load(path)
		if err != nil {
			events <- Event{Kind: EventFailed, Path: path, Err: model.NewKindError(model.KindIO, err)}
			continue
		}

		result, err := Analyze(path, stack, cfg)
		if err != nil {
			log.Warn().Str("path", path).Err(err).Msg("runner: image failed")
			events <- Event{Kind: EventFailed, Path: path, Err: err}
			continue
		}
		events <- Event{Kind: EventCompleted, Path: path, Result: result}
	}
}
