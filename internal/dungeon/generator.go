package dungeon

import (
	"math/rand"

	"raydelve/internal/config"
	"raydelve/internal/mathutil"
)

// Level is a generated dungeon floor: the grid plus everything on it and
// the spawn cell for the viewer.
type Level struct {
	Grid     *Grid
	Snapshot Snapshot
	SpawnX   int
	SpawnY   int
	Depth    int
}

type room struct {
	x, y, w, h int
}

func (r room) center() (int, int) {
	return r.x + r.w/2, r.y + r.h/2
}

// Generator carves dungeon floors: random rooms joined by L-shaped
// corridors, a door where a corridor meets a room wall, stairs in the last
// room, monsters and items scattered through the middle rooms.
type Generator struct {
	cfg *config.Config
	rng *rand.Rand
}

// NewGenerator creates a generator with its own seeded RNG so level layout
// is reproducible for a given seed.
func NewGenerator(cfg *config.Config, seed int64) *Generator {
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Generate carves a new floor at the given depth.
func (gen *Generator) Generate(depth int) *Level {
	d := gen.cfg.Dungeon
	g := NewGrid(d.Width, d.Height)

	numRooms := gen.between(d.RoomsMin, d.RoomsMax)
	rooms := make([]room, 0, numRooms)
	for i := 0; i < numRooms; i++ {
		w := gen.between(d.RoomSizeMin, d.RoomSizeMax)
		h := gen.between(d.RoomSizeMin, (d.RoomSizeMin+d.RoomSizeMax)/2)
		if w >= d.Width-2 || h >= d.Height-2 {
			continue
		}
		r := room{
			x: 1 + gen.rng.Intn(d.Width-w-1),
			y: 1 + gen.rng.Intn(d.Height-h-1),
			w: w,
			h: h,
		}
		gen.carveRoom(g, r)
		rooms = append(rooms, r)
	}
	if len(rooms) == 0 {
		// Degenerate config; carve a single open chamber so the level is
		// still renderable.
		r := room{x: 1, y: 1, w: mathutil.IntMax(d.Width-2, 1), h: mathutil.IntMax(d.Height-2, 1)}
		gen.carveRoom(g, r)
		rooms = append(rooms, r)
	}

	for i := 0; i+1 < len(rooms); i++ {
		gen.carveCorridor(g, rooms[i], rooms[i+1])
	}

	lvl := &Level{Grid: g, Depth: depth}
	lvl.SpawnX, lvl.SpawnY = rooms[0].center()

	sx, sy := rooms[len(rooms)-1].center()
	g.Set(sx, sy, CellStairs)

	gen.placeDoors(g)
	gen.populate(lvl, rooms)
	return lvl
}

func (gen *Generator) carveRoom(g *Grid, r room) {
	for dy := 0; dy < r.h; dy++ {
		for dx := 0; dx < r.w; dx++ {
			g.Set(r.x+dx, r.y+dy, CellFloor)
		}
	}
}

// carveCorridor joins two room centers with a horizontal then vertical run.
func (gen *Generator) carveCorridor(g *Grid, a, b room) {
	ax, ay := a.center()
	bx, by := b.center()
	for x := mathutil.IntMin(ax, bx); x <= mathutil.IntMax(ax, bx); x++ {
		if g.At(x, ay) == CellWall {
			g.Set(x, ay, CellFloor)
		}
	}
	for y := mathutil.IntMin(ay, by); y <= mathutil.IntMax(ay, by); y++ {
		if g.At(bx, y) == CellWall {
			g.Set(bx, y, CellFloor)
		}
	}
}

// placeDoors turns floor cells that sit in a one-cell gap between walls
// into doors, approximating corridor mouths.
func (gen *Generator) placeDoors(g *Grid) {
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if g.At(x, y) != CellFloor {
				continue
			}
			horizGap := g.At(x-1, y) == CellWall && g.At(x+1, y) == CellWall &&
				g.At(x, y-1) == CellFloor && g.At(x, y+1) == CellFloor
			vertGap := g.At(x, y-1) == CellWall && g.At(x, y+1) == CellWall &&
				g.At(x-1, y) == CellFloor && g.At(x+1, y) == CellFloor
			if (horizGap || vertGap) && gen.rng.Float64() < 0.3 {
				g.Set(x, y, CellDoor)
			}
		}
	}
}

func (gen *Generator) populate(lvl *Level, rooms []room) {
	d := gen.cfg.Dungeon
	if len(rooms) <= 2 {
		return
	}
	mid := rooms[1 : len(rooms)-1]

	monsterKeys := []string{"goblin", "orc"}
	itemKeys := []string{"potion", "weapon", "gold", "shield", "spellbook"}

	numMonsters := gen.between(d.MonstersMin, d.MonstersMax)
	for i := 0; i < numMonsters; i++ {
		r := mid[gen.rng.Intn(len(mid))]
		x, y, ok := gen.floorCellIn(lvl.Grid, r)
		if !ok {
			continue
		}
		lvl.Snapshot.Entities = append(lvl.Snapshot.Entities, Entity{
			X: x, Y: y,
			Key:   monsterKeys[gen.rng.Intn(len(monsterKeys))],
			Alive: true,
		})
	}

	numItems := gen.between(d.ItemsMin, d.ItemsMax)
	for i := 0; i < numItems; i++ {
		r := mid[gen.rng.Intn(len(mid))]
		x, y, ok := gen.floorCellIn(lvl.Grid, r)
		if !ok {
			continue
		}
		lvl.Snapshot.Items = append(lvl.Snapshot.Items, Item{
			X: x, Y: y,
			Key: itemKeys[gen.rng.Intn(len(itemKeys))],
		})
	}

	// A boss guards the stairs room on every third floor.
	if lvl.Depth > 0 && lvl.Depth%3 == 0 {
		r := rooms[len(rooms)-1]
		if x, y, ok := gen.floorCellIn(lvl.Grid, r); ok {
			lvl.Snapshot.Entities = append(lvl.Snapshot.Entities, Entity{
				X: x, Y: y, Key: "boss", Alive: true,
			})
		}
	}
}

// floorCellIn picks a random interior floor cell of a room.
func (gen *Generator) floorCellIn(g *Grid, r room) (int, int, bool) {
	if r.w < 3 || r.h < 3 {
		return 0, 0, false
	}
	for attempt := 0; attempt < 8; attempt++ {
		x := r.x + 1 + gen.rng.Intn(r.w-2)
		y := r.y + 1 + gen.rng.Intn(r.h-2)
		if g.At(x, y) == CellFloor {
			return x, y, true
		}
	}
	return 0, 0, false
}

func (gen *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + gen.rng.Intn(hi-lo+1)
}

