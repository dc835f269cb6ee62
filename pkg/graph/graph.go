package graph

// Graph is an undirected graph stored as an order×order adjacency matrix.
//
// The zero value is a graph of order 0. Use New to create a graph with vertices.
type Graph struct {
	matrix [][]bool
}

// New creates a graph with the given number of vertices and no edges.
// A negative order is treated as 0.
func New(order int) *Graph {
	if order < 0 {
		order = 0
	}
	m := make([][]bool, order)
	for i := range m {
		m[i] = make([]bool, order)
	}
	return &Graph{matrix: m}
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.matrix) }

// Adjacent reports whether an edge joins x and y.
func (g *Graph) Adjacent(x, y int) bool {
	return g.matrix[x][y]
}

// AddEdge joins x and y in both directions. Adding an existing edge is a no-op.
func (g *Graph) AddEdge(x, y int) {
	g.matrix[x][y] = true
	g.matrix[y][x] = true
}

// RemoveEdge removes the edge between x and y if present.
func (g *Graph) RemoveEdge(x, y int) {
	g.matrix[x][y] = false
	g.matrix[y][x] = false
}

// Neighbors returns the vertices adjacent to v in ascending order.
// The result is empty, never nil, for an isolated vertex.
func (g *Graph) Neighbors(v int) []int {
	row := g.matrix[v]
	out := make([]int, 0, g.Degree(v))
	for w, ok := range row {
		if ok {
			out = append(out, w)
		}
	}
	return out
}

// Degree returns the number of vertices adjacent to v.
func (g *Graph) Degree(v int) int {
	n := 0
	for _, ok := range g.matrix[v] {
		if ok {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of undirected edges. A self-loop counts once.
func (g *Graph) EdgeCount() int {
	n := 0
	for x := range g.matrix {
		for y := x; y < len(g.matrix); y++ {
			if g.matrix[x][y] {
				n++
			}
		}
	}
	return n
}
