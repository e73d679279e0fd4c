package graph

import (
	"fmt"
	"math"
)

// Point is a node position in canvas coordinates.
type Point struct {
	X float64
	Y float64
}

// Edge is an undirected connection between two node indices, A < B.
type Edge struct {
	A int
	B int
}

// Adjacency holds one neighbor index list per node. Lists are rebuilt every
// frame; their backing arrays are reused across rebuilds.
type Adjacency [][]int

// Reset empties every neighbor list and sizes the adjacency for n nodes.
func (adj Adjacency) Reset(n int) Adjacency {
	if cap(adj) < n {
		grown := make(Adjacency, n)
		copy(grown, adj)
		adj = grown
	}
	adj = adj[:n]
	for i := range adj {
		adj[i] = adj[i][:0]
	}
	return adj
}

// Link records i and j as neighbors of each other.
func (adj Adjacency) Link(i, j int) {
	adj[i] = append(adj[i], j)
	adj[j] = append(adj[j], i)
}

// Active returns the indices of nodes with at least one neighbor.
func (adj Adjacency) Active() []int {
	active := []int{}
	for i, ns := range adj {
		if len(ns) > 0 {
			active = append(active, i)
		}
	}
	return active
}

// EdgeCount returns the number of undirected edges.
func (adj Adjacency) EdgeCount() int {
	total := 0
	for _, ns := range adj {
		total += len(ns)
	}
	return total / 2
}

// Proximity rebuilds adj for the n points returned by at, linking every
// unordered pair closer than threshold (exclusive). visit, if non-nil, is called
// once per edge in discovery order. This is O(n²); node counts stay in the low
// hundreds.
func Proximity(adj Adjacency, n int, at func(i int) Point, threshold float64, visit func(Edge)) Adjacency {
	adj = adj.Reset(n)
	for i := 0; i < n; i++ {
		pi := at(i)
		for j := i + 1; j < n; j++ {
			pj := at(j)
			if math.Hypot(pi.X-pj.X, pi.Y-pj.Y) < threshold {
				adj.Link(i, j)
				if visit != nil {
					visit(Edge{A: i, B: j})
				}
			}
		}
	}
	return adj
}

// Symmetric reports an error if any neighbor relation is one-sided, refers to
// itself, is out of range or is duplicated.
func Symmetric(adj Adjacency) error {
	for i, ns := range adj {
		seen := make(map[int]bool, len(ns))
		for _, j := range ns {
			if j < 0 || j >= len(adj) {
				return fmt.Errorf("node %d has out-of-range neighbor %d", i, j)
			}
			if j == i {
				return fmt.Errorf("node %d lists itself as neighbor", i)
			}
			if seen[j] {
				return fmt.Errorf("node %d lists neighbor %d twice", i, j)
			}
			seen[j] = true
			if !contains(adj[j], i) {
				return fmt.Errorf("node %d lists %d but not vice versa", i, j)
			}
		}
	}
	return nil
}

func contains(ns []int, v int) bool {
	for _, n := range ns {
		if n == v {
			return true
		}
	}
	return false
}
