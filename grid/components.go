package grid

// Components returns the 4-connected regions of open cells. Regions are
// ordered by their first cell in row-major order; cells within a region are
// listed in flood order from that cell.
//
// A perfect maze has exactly one component.
//
// Time:   O(W·H).
// Memory: O(W·H) for the seen flags and output.
func (g *Grid) Components() [][]Coordinate {
	seen := make([][]bool, g.Height)
	for y := range seen {
		seen[y] = make([]bool, g.Width)
	}
	var comps [][]Coordinate

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] != Open || seen[y][x] {
				continue
			}
			seen[y][x] = true
			queue := []Coordinate{{X: x, Y: y}}
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range g.Neighbors(queue[qi]) {
					if !seen[n.Y][n.X] {
						seen[n.Y][n.X] = true
						queue = append(queue, n)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}
