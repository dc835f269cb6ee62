// Package graph provides an undirected graph over integer vertex indices,
// backed by an adjacency matrix.
//
// # Overview
//
// A [Graph] has a fixed order chosen at construction. Vertices are the
// integers 0..Order()-1 and carry no data of their own; callers that need
// named vertices (cities, hosts, packages) keep a parallel slice and use the
// slice index as the vertex number.
//
// Edges are undirected: [Graph.AddEdge] sets both directions at once and
// [Graph.RemoveEdge] clears both. Both operations are idempotent.
//
//	g := graph.New(3)
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//	g.Neighbors(1) // [0 2]
//
// # Bounds
//
// Vertex arguments are not range-checked beyond what slice indexing does.
// Passing an index outside 0..Order()-1 is a programming error and panics
// with an index-out-of-range runtime error.
//
// # Concurrency
//
// Graph is not safe for concurrent use without external synchronization.
package graph
