package render

import (
	"math"

	"raydelve/internal/config"
	"raydelve/internal/dungeon"
	"raydelve/internal/threading"
)

// Engine composes frames. It holds only read-only configuration and a
// worker pool; no state survives from one frame to the next, so a frame
// is a pure function of (grid, snapshot, pose).
type Engine struct {
	cfg  *config.Config
	pool *threading.WorkerPool
}

// NewEngine creates an engine with a CPU-sized worker pool for the
// per-column cast pass.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		cfg:  cfg,
		pool: threading.NewWorkerPool(0),
	}
}

// Close releases the worker pool.
func (e *Engine) Close() {
	e.pool.Stop()
}

// ComposeFrame renders one complete frame: per-column rays and wall
// slices, depth-occluded sprites, and the minimap. The sequence mirrors
// how adapters composite: floor/ceiling fill is implied by empty slice
// regions, walls next, sprites far to near, minimap on top. It performs
// no I/O and never mutates its inputs.
//
// Per-column casting is embarrassingly parallel: each column reads only
// the shared read-only grid and pose and writes its own output slot, so
// wide viewports are split across the worker pool.
func (e *Engine) ComposeFrame(grid *dungeon.Grid, snap dungeon.Snapshot, pose Pose) Frame {
	viewportW := e.cfg.GetViewportWidth()
	viewportH := e.cfg.GetViewportHeight()

	frame := Frame{Width: viewportW, Height: viewportH}
	if viewportW <= 0 || viewportH <= 0 || grid == nil || grid.Empty() {
		frame.Minimap = Minimap{Heading: headingOctant(pose.Angle)}
		return frame
	}

	fov := e.cfg.GetCameraFOV()
	columns := make([]RayResult, viewportW)
	depths := make([]float64, viewportW)
	slices := make([]WallSlice, viewportW)

	castColumn := func(i int) {
		offset := (float64(i)/float64(viewportW))*fov - fov/2
		res := e.Cast(grid, pose.X, pose.Y, pose.Angle+offset)
		if res.Hit() {
			// Project ray length onto the view plane so flat walls render
			// flat; skipping this bows wall heights at the FOV edges.
			res.Distance *= math.Cos(offset)
		}
		columns[i] = res
		depths[i] = res.Distance
		slices[i] = e.Project(res)
	}

	if viewportW >= e.cfg.Graphics.ParallelThreshold {
		e.pool.ParallelFor(0, viewportW, castColumn)
	} else {
		for i := 0; i < viewportW; i++ {
			castColumn(i)
		}
	}

	frame.Columns = columns
	frame.Slices = slices
	frame.Sprites = e.Place(snap, pose, depths)
	frame.Minimap = e.ProjectMinimap(grid, snap, pose)
	return frame
}
