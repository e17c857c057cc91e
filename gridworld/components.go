package gridworld

// ActiveComponents finds all contiguous regions of active cells,
// according to the grid's connectivity. Returns a slice of components;
// each component is a slice of row-major cell indices in BFS discovery
// order, and components appear in row-major order of their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ActiveComponents() [][]int {
	seen := make([]bool, len(g.active))
	var comps [][]int

	for i0, a := range g.active {
		if !a || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			ux, uy := g.Coordinate(u)
			for _, d := range g.offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.Index(vx, vy)
				if !g.active[vi] || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
