package graph

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		order int
		want  int
	}{
		{"Empty", 0, 0},
		{"Single", 1, 1},
		{"Several", 5, 5},
		{"NegativeClamped", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.order)
			if g.Order() != tt.want {
				t.Errorf("Order() = %d, want %d", g.Order(), tt.want)
			}
			if g.EdgeCount() != 0 {
				t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
			}
		})
	}
}

func TestAddEdge(t *testing.T) {
	g := New(4)
	g.AddEdge(0, 2)

	if !g.Adjacent(0, 2) || !g.Adjacent(2, 0) {
		t.Error("AddEdge(0, 2) should connect both directions")
	}
	if g.Adjacent(0, 1) {
		t.Error("Adjacent(0, 1) = true, want false")
	}

	// Idempotent
	g.AddEdge(2, 0)
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestRemoveEdge(t *testing.T) {
	g := New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	g.RemoveEdge(1, 0)
	if g.Adjacent(0, 1) || g.Adjacent(1, 0) {
		t.Error("RemoveEdge(1, 0) should clear both directions")
	}
	if !g.Adjacent(1, 2) {
		t.Error("RemoveEdge should not touch other edges")
	}

	// Removing a missing edge is a no-op
	g.RemoveEdge(0, 2)
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestNeighbors(t *testing.T) {
	g := New(5)
	g.AddEdge(2, 4)
	g.AddEdge(2, 0)
	g.AddEdge(2, 3)

	tests := []struct {
		name string
		v    int
		want []int
	}{
		{"Hub", 2, []int{0, 3, 4}},
		{"Leaf", 4, []int{2}},
		{"Isolated", 1, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Neighbors(tt.v)
			if got == nil {
				t.Fatal("Neighbors() returned nil")
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Neighbors(%d) = %v, want %v", tt.v, got, tt.want)
			}
			if g.Degree(tt.v) != len(tt.want) {
				t.Errorf("Degree(%d) = %d, want %d", tt.v, g.Degree(tt.v), len(tt.want))
			}
		})
	}
}

func TestOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Adjacent(0, 3) on order 3 should panic")
		}
	}()
	New(3).Adjacent(0, 3)
}

func TestGraphProperties(t *testing.T) {
	const order = 8

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("edges are symmetric", prop.ForAll(
		func(ops []int) bool {
			g := New(order)
			for i := 0; i+2 < len(ops); i += 3 {
				x, y := ops[i]%order, ops[i+1]%order
				if ops[i+2]%2 == 0 {
					g.AddEdge(x, y)
				} else {
					g.RemoveEdge(x, y)
				}
			}
			for x := 0; x < order; x++ {
				for y := 0; y < order; y++ {
					if g.Adjacent(x, y) != g.Adjacent(y, x) {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	properties.Property("neighbors are ascending and adjacent", prop.ForAll(
		func(pairs []int, v int) bool {
			g := New(order)
			for i := 0; i+1 < len(pairs); i += 2 {
				g.AddEdge(pairs[i]%order, pairs[i+1]%order)
			}
			ns := g.Neighbors(v)
			if !slices.IsSorted(ns) {
				return false
			}
			for _, w := range ns {
				if !g.Adjacent(v, w) {
					return false
				}
			}
			return len(ns) == g.Degree(v)
		},
		gen.SliceOf(gen.IntRange(0, 1000)),
		gen.IntRange(0, order-1),
	))

	properties.TestingRun(t)
}
