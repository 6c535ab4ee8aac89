package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-museum-raytracer/pkg/core"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile       *Tile
	PixelStats [][]PixelStats // Shared pixel stats array to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileID  int
	Samples int
	Error   error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	renderer    *TileRenderer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool of numWorkers workers able to queue maxTasks
// tiles without blocking. numWorkers <= 0 uses the CPU count.
func NewWorkerPool(renderer *TileRenderer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		renderer:    renderer,
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
		numWorkers:  numWorkers,
	}
}

// Start launches the workers. Tasks submitted after ctx is cancelled are
// answered with ctx.Err() instead of being rendered.
func (wp *WorkerPool) Start(ctx context.Context) {
	for range wp.numWorkers {
		wp.wg.Add(1)
		go wp.run(ctx)
	}
}

// Stop closes the task queue and waits for the workers to drain it
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run(ctx context.Context) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		if err := ctx.Err(); err != nil {
			wp.resultQueue <- TileResult{TileID: task.Tile.ID, Error: err}
			continue
		}

		// Tiles have non-overlapping bounds, so writing the shared array is safe
		sampler := core.NewRandomSampler(task.Tile.Random)
		samples := wp.renderer.RenderTileBounds(task.Tile.Bounds, task.PixelStats, sampler)

		wp.resultQueue <- TileResult{TileID: task.Tile.ID, Samples: samples}
	}
}
