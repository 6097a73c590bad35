package solve

import "github.com/jbrant/mccmaze/grid"

// walker encapsulates mutable BFS state over one grid. Cells are tracked by
// row-major index; depth and parent are slice-backed so path reconstruction
// allocates nothing per node.
type walker struct {
	g       *grid.Grid
	queue   []int
	visited []bool
	depth   []int
	parent  []int
}

// search runs BFS from `from`, stopping as soon as `to` is dequeued.
// Returns the walker holding depth/parent arrays, or ErrTargetUnreachable
// when the queue drains first.
func search(g *grid.Grid, from, to grid.Point) (*walker, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(from.X, from.Y) || !g.InBounds(to.X, to.Y) {
		return nil, ErrOutOfBounds
	}

	n := g.Width() * g.Height()
	w := &walker{
		g:       g,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		depth:   make([]int, n),
		parent:  make([]int, n),
	}
	for i := range w.parent {
		w.parent[i] = -1
	}

	start, target := g.Index(from.X, from.Y), g.Index(to.X, to.Y)
	w.visited[start] = true
	w.queue = append(w.queue, start)

	for head := 0; head < len(w.queue); head++ {
		u := w.queue[head]
		if u == target {
			return w, nil
		}
		ux, uy := g.Coordinate(u)
		for _, d := range grid.Directions {
			if !g.CanMove(ux, uy, d) {
				continue
			}
			dx, dy := d.Offset()
			v := g.Index(ux+dx, uy+dy)
			if w.visited[v] {
				continue
			}
			w.visited[v] = true
			w.depth[v] = w.depth[u] + 1
			w.parent[v] = u
			w.queue = append(w.queue, v)
		}
	}
	return nil, ErrTargetUnreachable
}

// pathTo reconstructs the start→dest cell sequence by walking the parent
// array backwards, then reversing in place.
func (w *walker) pathTo(dest grid.Point) []grid.Point {
	path := make([]grid.Point, 0, w.depth[w.g.Index(dest.X, dest.Y)]+1)
	for idx := w.g.Index(dest.X, dest.Y); idx >= 0; idx = w.parent[idx] {
		x, y := w.g.Coordinate(idx)
		path = append(path, grid.Point{X: x, Y: y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Distance returns the unscaled shortest-path cell distance from `from` to
// `to`, respecting wall flags.
func Distance(g *grid.Grid, from, to grid.Point) (int, error) {
	w, err := search(g, from, to)
	if err != nil {
		return 0, err
	}
	return w.depth[g.Index(to.X, to.Y)], nil
}

// Path returns the ordered shortest start→target cell sequence.
func Path(g *grid.Grid, from, to grid.Point) ([]grid.Point, error) {
	w, err := search(g, from, to)
	if err != nil {
		return nil, err
	}
	return w.pathTo(to), nil
}

// Solve runs the full pipeline on a finished maze grid: shortest distance,
// path extraction, and path-flag annotation. The grid's wall flags are
// never touched; only path annotation flags are written.
func Solve(g *grid.Grid, from, to grid.Point) (*Solution, error) {
	w, err := search(g, from, to)
	if err != nil {
		return nil, err
	}
	sol := &Solution{
		Distance: w.depth[g.Index(to.X, to.Y)],
		Path:     w.pathTo(to),
	}
	if err = AnnotatePath(g, sol.Path); err != nil {
		return nil, err
	}
	return sol, nil
}
