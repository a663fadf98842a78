package render

import (
	"math"

	"raydelve/internal/dungeon"
)

// ProjectMinimap produces an orthographic windowSize x windowSize snapshot
// of the grid centered on the viewer's integer cell. It reads the same
// grid and object snapshot as the raycast pass but performs no casting.
// Entities and items override terrain marks; the viewer cell is always
// marked, with the heading octant carried alongside so adapters can draw
// a direction glyph.
func (e *Engine) ProjectMinimap(grid *dungeon.Grid, snap dungeon.Snapshot, pose Pose) Minimap {
	n := e.cfg.Minimap.WindowSize
	if n <= 0 || grid == nil || grid.Empty() {
		return Minimap{Heading: headingOctant(pose.Angle)}
	}

	centerX := int(math.Floor(pose.X))
	centerY := int(math.Floor(pose.Y))
	half := n / 2

	cells := make([][]Mark, n)
	for row := 0; row < n; row++ {
		cells[row] = make([]Mark, n)
		for col := 0; col < n; col++ {
			wx := centerX - half + col
			wy := centerY - half + row
			if !grid.InBounds(wx, wy) {
				cells[row][col] = MarkVoid
				continue
			}
			switch grid.At(wx, wy) {
			case dungeon.CellWall:
				cells[row][col] = MarkWall
			case dungeon.CellDoor:
				cells[row][col] = MarkDoor
			case dungeon.CellStairs:
				cells[row][col] = MarkStairs
			default:
				cells[row][col] = MarkFloor
			}
		}
	}

	mark := func(wx, wy int, m Mark) {
		col := wx - centerX + half
		row := wy - centerY + half
		if row < 0 || row >= n || col < 0 || col >= n {
			return
		}
		cells[row][col] = m
	}

	for _, item := range snap.Items {
		mark(item.X, item.Y, MarkItem)
	}
	for _, ent := range snap.Entities {
		if !ent.Alive {
			continue
		}
		if e.cfg.GetVisual(ent.Key).Hostile {
			mark(ent.X, ent.Y, MarkHostile)
		} else {
			mark(ent.X, ent.Y, MarkFriendly)
		}
	}
	mark(centerX, centerY, MarkViewer)

	return Minimap{Cells: cells, Heading: headingOctant(pose.Angle)}
}

// headingOctant buckets an angle into 8 directions, index 0 facing east
// and advancing clockwise on screen (y grows downward).
func headingOctant(angle float64) int {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return int((a+math.Pi/8)/(math.Pi/4)) % 8
}
