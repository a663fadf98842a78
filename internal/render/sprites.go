package render

import (
	"math"
	"sort"

	"raydelve/internal/dungeon"
	"raydelve/internal/mathutil"
)

// Place projects every live entity and item into screen space. For each
// object it computes the bearing relative to the viewer's heading, culls
// anything outside the field of view, maps bearing linearly to a screen
// column, sizes the sprite inversely to distance, and discards sprites
// hidden behind the wall already cast for their column. Survivors are
// ordered far to near so later draws legitimately overwrite earlier ones
// (painter's algorithm; the sprites are plain colored regions, so no
// per-pixel depth buffer is needed).
func (e *Engine) Place(snap dungeon.Snapshot, pose Pose, columnDepths []float64) []SpriteDraw {
	var sprites []SpriteDraw
	for _, ent := range snap.Entities {
		if !ent.Alive {
			continue
		}
		if s, ok := e.placeOne(ent.X, ent.Y, ent.Key, pose, columnDepths); ok {
			sprites = append(sprites, s)
		}
	}
	for _, item := range snap.Items {
		if s, ok := e.placeOne(item.X, item.Y, item.Key, pose, columnDepths); ok {
			sprites = append(sprites, s)
		}
	}

	// Far to near; stable so equal distances keep snapshot order and the
	// frame stays deterministic.
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].Distance > sprites[j].Distance
	})
	return sprites
}

func (e *Engine) placeOne(cellX, cellY int, key string, pose Pose, columnDepths []float64) (SpriteDraw, bool) {
	viewportW := e.cfg.GetViewportWidth()
	viewportH := e.cfg.GetViewportHeight()
	fov := e.cfg.GetCameraFOV()

	// Objects project from their cell center.
	dx := float64(cellX) + 0.5 - pose.X
	dy := float64(cellY) + 0.5 - pose.Y
	dist := math.Hypot(dx, dy)
	if dist > e.cfg.GetMaxDepth() {
		return SpriteDraw{}, false
	}

	bearing := normalizeAngle(math.Atan2(dy, dx) - pose.Angle)
	if math.Abs(bearing) > fov/2 {
		return SpriteDraw{}, false
	}

	// Linear bearing-to-column mapping: bearing 0 lands on the viewport
	// center, +fov/2 on the right edge.
	screenX := int((bearing/(fov/2) + 1) * float64(viewportW) / 2)

	visual := e.cfg.GetVisual(key)
	sized := dist
	if sized < minProjectionDist {
		sized = minProjectionDist
	}
	height := int(e.cfg.Graphics.WallHeightScale * float64(viewportH) / sized * visual.HeightScale)
	if height < e.cfg.Graphics.SpriteMinHeight {
		return SpriteDraw{}, false // too small to matter
	}
	if height > viewportH {
		height = viewportH
	}
	width := height

	// Occlusion: compare against the wall distance already cast for this
	// sprite's center column.
	if len(columnDepths) > 0 {
		col := mathutil.ClampInt(screenX, 0, len(columnDepths)-1)
		if dist > columnDepths[col] {
			return SpriteDraw{}, false
		}
	}

	var top int
	if visual.Category == "item" {
		// Items sit low, anchored just above the floor margin.
		top = viewportH - height - e.cfg.Graphics.FloorMargin
	} else {
		top = (viewportH - height) / 2
	}
	if top < 0 {
		top = 0
	}

	return SpriteDraw{
		X:        screenX - width/2,
		Y:        top,
		W:        width,
		H:        height,
		Distance: dist,
		Key:      key,
		Visual:   visual,
	}, true
}

// normalizeAngle wraps an angle into (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
