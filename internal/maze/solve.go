package maze

// walkSteps mirror the moves a player can make: four orthogonal steps and
// the diagonal jump up-right.
var walkSteps = [5]Position{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}}

// Reachable reports whether a walker using orthogonal steps and the
// up-right jump can get from one open cell to another. It is a diagnostic
// for tooling; generation never consults it.
func (g *Grid) Reachable(from, to Position) bool {
	if !g.IsOpen(from) || !g.IsOpen(to) {
		return false
	}

	visited := make([]bool, g.size*g.size)
	queue := []Position{from}
	visited[from.Y*g.size+from.X] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			return true
		}
		for _, d := range walkSteps {
			next := cur.Add(d.X, d.Y)
			if !g.IsOpen(next) || visited[next.Y*g.size+next.X] {
				continue
			}
			visited[next.Y*g.size+next.X] = true
			queue = append(queue, next)
		}
	}
	return false
}
