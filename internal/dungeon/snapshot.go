package dungeon

// Entity is a live object on the grid: a monster or an NPC. Position is in
// cell coordinates; sprites project from the cell center.
type Entity struct {
	X, Y  int
	Key   string // type key into the visual table, e.g. "goblin"
	Alive bool
}

// Item lies on the floor waiting to be picked up.
type Item struct {
	X, Y int
	Key  string
}

// Snapshot is the per-frame view of everything on a level besides the
// grid itself. The renderer reads it and never writes back.
type Snapshot struct {
	Entities []Entity
	Items    []Item
}

// LiveEntities returns the entities with Alive set, preserving order.
func (s Snapshot) LiveEntities() []Entity {
	out := make([]Entity, 0, len(s.Entities))
	for _, e := range s.Entities {
		if e.Alive {
			out = append(out, e)
		}
	}
	return out
}
