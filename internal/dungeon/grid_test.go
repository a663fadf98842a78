package dungeon

import "testing"

func TestParseMap_RoundTrip(t *testing.T) {
	text := `#####
#.+.#
#.>.#
#####`
	g := ParseMap(text)
	if g.Width != 5 || g.Height != 4 {
		t.Fatalf("expected 5x4 grid, got %dx%d", g.Width, g.Height)
	}
	if g.String() != text {
		t.Errorf("round trip mismatch:\n%s\nwant:\n%s", g.String(), text)
	}
}

func TestParseMap_CellKinds(t *testing.T) {
	g := ParseMap(`#.+> `)

	testCases := []struct {
		x    int
		want CellKind
	}{
		{0, CellWall},
		{1, CellFloor},
		{2, CellDoor},
		{3, CellStairs},
		{4, CellFloor}, // unknown letters read as floor
	}
	for _, tc := range testCases {
		if got := g.At(tc.x, 0); got != tc.want {
			t.Errorf("cell %d = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestParseMap_RaggedRowsPadWithWalls(t *testing.T) {
	g := ParseMap("....\n..")
	if g.Width != 4 || g.Height != 2 {
		t.Fatalf("expected 4x2 grid, got %dx%d", g.Width, g.Height)
	}
	if g.At(3, 1) != CellWall {
		t.Errorf("short row should pad with walls, got %v", g.At(3, 1))
	}
	if g.At(1, 1) != CellFloor {
		t.Errorf("present cells should parse, got %v", g.At(1, 1))
	}
}

func TestGrid_OutOfBoundsReadsAsWall(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, CellFloor)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		if got := g.At(p[0], p[1]); got != CellWall {
			t.Errorf("At(%d, %d) = %v, want CellWall", p[0], p[1], got)
		}
	}

	// Out-of-bounds writes are dropped, not panics.
	g.Set(-1, -1, CellFloor)
	g.Set(5, 5, CellFloor)
	if g.At(1, 1) != CellFloor {
		t.Errorf("in-bounds cell clobbered by OOB writes")
	}
}

func TestCellKind_BlockingAndWalkable(t *testing.T) {
	testCases := []struct {
		kind     CellKind
		blocking bool
		walkable bool
	}{
		{CellFloor, false, true},
		{CellWall, true, false},
		{CellDoor, false, true},
		{CellStairs, true, true}, // stairs stop rays but can be stepped on
	}
	for _, tc := range testCases {
		if got := tc.kind.Blocking(); got != tc.blocking {
			t.Errorf("%v.Blocking() = %v, want %v", tc.kind, got, tc.blocking)
		}
		if got := tc.kind.Walkable(); got != tc.walkable {
			t.Errorf("%v.Walkable() = %v, want %v", tc.kind, got, tc.walkable)
		}
	}
}

func TestGrid_Empty(t *testing.T) {
	if !NewGrid(0, 5).Empty() || !NewGrid(5, 0).Empty() {
		t.Errorf("zero-dimension grids should be empty")
	}
	if NewGrid(1, 1).Empty() {
		t.Errorf("1x1 grid should not be empty")
	}
}

func TestSnapshot_LiveEntities(t *testing.T) {
	s := Snapshot{Entities: []Entity{
		{X: 1, Y: 1, Key: "goblin", Alive: true},
		{X: 2, Y: 2, Key: "orc", Alive: false},
		{X: 3, Y: 3, Key: "boss", Alive: true},
	}}
	live := s.LiveEntities()
	if len(live) != 2 || live[0].Key != "goblin" || live[1].Key != "boss" {
		t.Errorf("unexpected live set %+v", live)
	}
}
