package gridworld_test

import (
	"testing"

	"github.com/roshanshariff/protovalue/gridworld"
)

// deactivate is a test helper for painting cells inactive.
func deactivate(t *testing.T, g *gridworld.Grid, cells ...[2]int) {
	t.Helper()
	for _, xy := range cells {
		if err := g.SetActive(xy[0], xy[1], false); err != nil {
			t.Fatalf("SetActive(%d,%d) error: %v", xy[0], xy[1], err)
		}
	}
}

// TestActiveComponents_AllActive expects a single component spanning the grid.
func TestActiveComponents_AllActive(t *testing.T) {
	g, err := gridworld.New(3, 3, gridworld.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	comps := g.ActiveComponents()
	if len(comps) != 1 {
		t.Fatalf("components = %d; want 1", len(comps))
	}
	if len(comps[0]) != 9 {
		t.Errorf("component size = %d; want 9", len(comps[0]))
	}
}

// TestActiveComponents_Split deactivates the middle column of a 3×2 grid,
// splitting the active set into two components under Conn4.
func TestActiveComponents_Split(t *testing.T) {
	g, err := gridworld.New(3, 2, gridworld.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	deactivate(t, g, [2]int{1, 0}, [2]int{1, 1})

	comps := g.ActiveComponents()
	if len(comps) != 2 {
		t.Fatalf("components = %d; want 2", len(comps))
	}
	for i, comp := range comps {
		if len(comp) != 2 {
			t.Errorf("component %d size = %d; want 2", i, len(comp))
		}
	}
}

// TestActiveComponents_Conn8 verifies that diagonal contact joins regions
// under Conn8 but not under Conn4.
func TestActiveComponents_Conn8(t *testing.T) {
	// Active pattern:
	//   x .
	//   . x
	paint := func(conn gridworld.Connectivity) [][]int {
		opts := gridworld.DefaultOptions()
		opts.Conn = conn
		g, err := gridworld.New(2, 2, opts)
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		deactivate(t, g, [2]int{1, 0}, [2]int{0, 1})
		return g.ActiveComponents()
	}

	if comps := paint(gridworld.Conn4); len(comps) != 2 {
		t.Errorf("Conn4 components = %d; want 2", len(comps))
	}
	if comps := paint(gridworld.Conn8); len(comps) != 1 {
		t.Errorf("Conn8 components = %d; want 1", len(comps))
	}
}

// TestActiveComponents_NoneActive expects no components on an empty active set.
func TestActiveComponents_NoneActive(t *testing.T) {
	g, err := gridworld.New(2, 2, gridworld.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	g.SetAll(false)

	if comps := g.ActiveComponents(); len(comps) != 0 {
		t.Errorf("components = %d; want 0", len(comps))
	}
}
