package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fibrenet/pyfibre-go/metrics"
	"github.com/fibrenet/pyfibre-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_DistributesContiguousSlices(t *testing.T) {
	paths := []string{"a", "b", "c", "d", "e"}
	slices := dispatch(paths, 2)
	require.Len(t, slices, 2)

	var total int
	for _, s := range slices {
		total += len(s)
	}
	assert.Equal(t, 5, total)
}

func TestDispatch_WorkersExceedingPathsShrinksToPathCount(t *testing.T) {
	slices := dispatch([]string{"a", "b"}, 5)
	assert.Len(t, slices, 2)
}

func TestDispatch_EmptyPaths_NoSlices(t *testing.T) {
	assert.Nil(t, dispatch(nil, 4))
}

// flatImageStack returns a tiny uniform-intensity SHG-only stack: uniform
// intensity means tubeness is zero everywhere, so network.Extractor.Run
// yields ErrNoNucleation and Analyze degrades to an empty, still-successful
// ImageResult.
func flatImageStack() *model.ImageStack {
	s := model.NewImageStack(12, 12)
	ch := make([]float64, 12*12)
	for i := range ch {
		ch[i] = 0.5
	}
	s.Channels[model.RoleSHG] = ch
	return s
}

// TestRun_TwoWorkers_ThreeCompletionsOneFailure exercises spec.md §4.9/§5's
// worked example directly: a batch of 4 images across 2 workers, 3 of
// which load successfully (and degrade to empty networks) and one of
// which fails to load.
func TestRun_TwoWorkers_ThreeCompletionsOneFailure(t *testing.T) {
	paths := []string{"ok-1", "ok-2", "bad", "ok-3"}
	load := func(path string) (*model.ImageStack, error) {
		if path == "bad" {
			return nil, errors.New("disk read failure")
		}
		return flatImageStack(), nil
	}

	var progressCalls int
	onProgress := func(Progress) { progressCalls++ }

	cfg := DefaultConfig()
	cfg.Workers = 2

	batch := Run(context.Background(), paths, cfg, load, onProgress)

	assert.Len(t, batch.Results, 3)
	require.Len(t, batch.Failures, 1)
	assert.Equal(t, "bad", batch.Failures[0].Path)
	assert.True(t, errors.As(batch.Failures[0].Err, new(*model.KindError)))
	assert.GreaterOrEqual(t, progressCalls, 1)
}

func TestRun_ContextCancelled_ReturnsWithoutHanging(t *testing.T) {
	paths := make([]string, 50)
	for i := range paths {
		paths[i] = "p"
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before Run even starts dispatching

	load := func(path string) (*model.ImageStack, error) { return flatImageStack(), nil }

	done := make(chan Batch, 1)
	go func() {
		done <- Run(ctx, paths, DefaultConfig(), load, nil)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return promptly after ctx cancellation")
	}
}

func TestAssemble_ConcatenatesRowsAcrossImages(t *testing.T) {
	batch := Batch{
		Results: []ImageResult{
			{Path: "img1", FibreRows: []metrics.FibreStats{{Waviness: 1}, {Waviness: 0.8}}},
			{Path: "img2", FibreRows: []metrics.FibreStats{{Waviness: 0.9}}},
		},
	}

	tables := Assemble(batch)
	require.Len(t, tables.Global, 2)
	require.Len(t, tables.Fibre, 3)
	assert.Equal(t, "img1", tables.Fibre[0].Path)
	assert.Equal(t, "img1", tables.Fibre[1].Path)
	assert.Equal(t, "img2", tables.Fibre[2].Path)
}
