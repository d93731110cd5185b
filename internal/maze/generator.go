package maze

// Source is the entropy a generator draws from. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Directions a pillar can grow its extra wall in, indexed by the value
// drawn from Source.Intn(4).
var pillarGrowth = [4]Position{
	{X: 0, Y: -1}, // up
	{X: 0, Y: 1},  // down
	{X: -1, Y: 0}, // left
	{X: 1, Y: 0},  // right
}

// Generate builds a size*size grid. It never fails; sizes below 1 are
// treated as 1.
//
// Exactly one rng.Intn(4) draw is made per inner pillar, in row-major
// order, so equal sources produce equal grids.
func Generate(size int, rng Source) *Grid {
	size = max(size, 1)
	g := newGrid(size)

	// Pillars on every odd/odd cell.
	for y := 1; y < size; y += 2 {
		for x := 1; x < size; x += 2 {
			g.cells[y][x] = Wall
		}
	}

	// Each inner pillar grows one neighbor wall, kept off the outer ring.
	for y := 1; y < size-1; y += 2 {
		for x := 1; x < size-1; x += 2 {
			d := pillarGrowth[rng.Intn(len(pillarGrowth))]
			n := Position{X: x + d.X, Y: y + d.Y}
			if inInner(n, size) {
				g.cells[n.Y][n.X] = Wall
			}
		}
	}

	g.cells[0][0] = Open
	g.cells[size-1][size-1] = Open
	return g
}

// inInner reports whether p lies in [1, size-2] on both axes.
func inInner(p Position, size int) bool {
	return p.X >= 1 && p.X <= size-2 && p.Y >= 1 && p.Y <= size-2
}
