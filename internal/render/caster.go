package render

import (
	"math"

	"raydelve/internal/dungeon"
)

// Cast traces a single ray from (originX, originY) along bearing and
// returns the first blocking cell. It uses DDA grid traversal: track the
// distance to the next grid-line crossing on each axis and always advance
// along whichever crosses sooner. The reported distance is measured along
// the ray; the compositor projects it onto the view plane per column so
// composed frames carry perpendicular distances.
//
// Out-of-bounds coordinates read as wall, so a ray leaving the grid hits
// the boundary rather than erroring; an origin already outside the grid
// degrades to a wall at distance zero.
func (e *Engine) Cast(grid *dungeon.Grid, originX, originY, bearing float64) RayResult {
	maxDepth := e.cfg.GetMaxDepth()
	miss := RayResult{Distance: maxDepth, Kind: dungeon.CellFloor}

	mapX := int(math.Floor(originX))
	mapY := int(math.Floor(originY))
	if !grid.InBounds(mapX, mapY) {
		return RayResult{Distance: 0, Kind: dungeon.CellWall}
	}

	rayDirX := math.Cos(bearing)
	rayDirY := math.Sin(bearing)

	// Distance the ray travels to cross one grid line on each axis. A
	// degenerate direction component gets an effectively infinite step
	// instead of dividing by zero.
	var deltaDistX, deltaDistY float64
	if rayDirX == 0 {
		deltaDistX = 1e30
	} else {
		deltaDistX = math.Abs(1 / rayDirX)
	}
	if rayDirY == 0 {
		deltaDistY = 1e30
	} else {
		deltaDistY = math.Abs(1 / rayDirY)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if rayDirX < 0 {
		stepX = -1
		sideDistX = (originX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - originX) * deltaDistX
	}
	if rayDirY < 0 {
		stepY = -1
		sideDistY = (originY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - originY) * deltaDistY
	}

	side := 0
	for {
		if math.Min(sideDistX, sideDistY) > maxDepth {
			return miss
		}
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = 0
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = 1
		}

		kind := grid.At(mapX, mapY)
		if !kind.Blocking() {
			continue
		}

		var perpDist float64
		if side == 0 {
			perpDist = (float64(mapX) - originX + (1-float64(stepX))/2) / rayDirX
		} else {
			perpDist = (float64(mapY) - originY + (1-float64(stepY))/2) / rayDirY
		}
		if perpDist < 0 {
			perpDist = 0
		}
		if perpDist > maxDepth {
			return miss
		}
		return RayResult{Distance: perpDist, Kind: kind, Side: side}
	}
}
