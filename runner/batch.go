// File: batch.go
// Supervisor (spec.md §4.9/§5): aggregates the worker pool's event stream,
// waking at least every 500ms to drive a progress callback even when no
// event has arrived, and assembles the three batch tables by
// row-concatenating every completed image's rows in event-arrival order.
package runner

import (
	"context"
	"time"
)

const progressWake = 500 * time.Millisecond

// Progress is a point-in-time snapshot handed to the optional progress
// callback on every wake.
type Progress struct {
	Completed int
	Failed    int
	Total     int
}

// ProgressFunc receives a Progress snapshot; it is never called
// concurrently with itself.
type ProgressFunc func(Progress)

// Batch is the supervisor's final aggregate: every completed image's
// result, plus the subset of events that failed.
type Batch struct {
	Results  []ImageResult
	Failures []Event
}

// Run dispatches paths across cfg.workerCount() workers via load, and
// aggregates their events until every image has reported or ctx is
// cancelled. onProgress may be nil. Cancelling ctx abandons any in-flight
// images; Run returns as soon as the worker pool drains.
func Run(ctx context.Context, paths []string, cfg Config, load Loader, onProgress ProgressFunc) Batch {
	total := len(paths)
	slices := dispatch(paths, cfg.workerCount())
	events := runWorkers(ctx, slices, cfg, load)

	var batch Batch
	ticker := time.NewTicker(progressWake)
	defer ticker.Stop()

	report := func() {
		if onProgress != nil {
			onProgress(Progress{Completed: len(batch.Results), Failed: len(batch.Failures), Total: total})
		}
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				report()
				return batch
			}
			switch ev.Kind {
			case EventCompleted:
				batch.Results = append(batch.Results, ev.Result)
			case EventFailed:
				batch.Failures = append(batch.Failures, ev)
			}
		case <-ticker.C:
			report()
		case <-ctx.Done():
			report()
			// Drain until workers observe cancellation and close events,
			// so no goroutine is left writing to a channel nobody reads.
			for range events {
			}
			return batch
		}
	}
}
