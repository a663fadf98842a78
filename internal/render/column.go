package render

import (
	"raydelve/internal/dungeon"
	"raydelve/internal/mathutil"
)

// minProjectionDist floors any distance used as a divisor so a viewer
// standing inside a wall cell still produces a finite slice.
const minProjectionDist = 0.1

// Project converts one ray result into a vertical wall slice. Height is
// inversely proportional to perpendicular distance, clipped to the
// viewport and vertically centered. Beyond the visibility cutoff the
// column renders as empty floor and ceiling only, which bounds per-frame
// cost and drops indistinct far silhouettes.
func (e *Engine) Project(res RayResult) WallSlice {
	viewportH := e.cfg.GetViewportHeight()
	empty := WallSlice{
		Top:    viewportH / 2,
		Bottom: viewportH / 2,
		Shade:  len(e.cfg.Graphics.ShadeBuckets),
		Side:   res.Side,
	}
	if !res.Hit() || res.Distance >= e.cfg.GetVisibilityCutoff() {
		return empty
	}

	dist := res.Distance
	if dist < minProjectionDist {
		dist = minProjectionDist
	}
	height := mathutil.ClampInt(
		int(e.cfg.Graphics.WallHeightScale*float64(viewportH)/dist), 1, viewportH)

	slice := WallSlice{
		Shade: e.shadeLevel(dist),
		Side:  res.Side,
	}
	if res.Kind == dungeon.CellStairs {
		// Stairs read as a short structure anchored to the floor with an
		// alternating two-pattern band instead of a solid wall.
		height = int(float64(height) * e.cfg.Graphics.StairsHeightScale)
		if height < 1 {
			height = 1
		}
		slice.Pattern = PatternStairs
		slice.Bottom = viewportH - e.cfg.Graphics.FloorMargin
		slice.Top = slice.Bottom - height
	} else {
		slice.Pattern = PatternSolid
		slice.Top = (viewportH - height) / 2
		slice.Bottom = slice.Top + height
	}

	if slice.Top < 0 {
		slice.Top = 0
	}
	if slice.Bottom > viewportH {
		slice.Bottom = viewportH
	}
	if slice.Bottom < slice.Top {
		slice.Bottom = slice.Top
	}
	return slice
}

// shadeLevel maps a distance to an index into the configured bucket
// table: nearer walls get lower levels, which adapters draw denser and
// brighter.
func (e *Engine) shadeLevel(dist float64) int {
	buckets := e.cfg.Graphics.ShadeBuckets
	for i, bound := range buckets {
		if dist < bound {
			return i
		}
	}
	return len(buckets) - 1
}
