package generation

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

var ErrNotSpanningTree = errors.New("edges do not form a spanning tree")

// VerifySpanningTree checks that edges connect all cellCount cells of a half grid of
// the given width without a cycle, and that every edge joins two adjacent cells.
func VerifySpanningTree(edges []maze.Edge, cellCount, width int) error {
	if len(edges) != cellCount-1 {
		return fmt.Errorf("%w: %d edges for %d cells", ErrNotSpanningTree, len(edges), cellCount)
	}

	links := make([][]int, cellCount)
	for _, e := range edges {
		if e.First < 0 || e.First >= cellCount || e.Second < 0 || e.Second >= cellCount {
			return fmt.Errorf("%w: edge %v out of range", ErrNotSpanningTree, e)
		}
		if !adjacent(e.First, e.Second, width) {
			return fmt.Errorf("%w: cells %d and %d are not adjacent", ErrNotSpanningTree, e.First, e.Second)
		}
		links[e.First] = append(links[e.First], e.Second)
		links[e.Second] = append(links[e.Second], e.First)
	}

	// With cellCount-1 edges, reaching every cell rules out a cycle.
	if reached := reachable(links); reached != cellCount {
		return fmt.Errorf("%w: %d of %d cells reachable from cell 0", ErrNotSpanningTree, reached, cellCount)
	}
	return nil
}

func reachable(links [][]int) int {
	if len(links) == 0 {
		return 0
	}

	seen := mapset.Of(0)
	q := queue.New[int]()
	q.Enqueue(0)
	for !q.Empty() {
		for _, n := range links[q.Dequeue()] {
			if !seen.Has(n) {
				seen.Put(n)
				q.Enqueue(n)
			}
		}
	}
	return seen.Size()
}

func adjacent(a, b, width int) bool {
	ra, ca := a/width, a%width
	rb, cb := b/width, b%width
	dr, dc := ra-rb, ca-cb
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// Tree returns the edges the generator for a would carve into a height x width maze,
// together with the number of alternating cells. It consumes src exactly like Generate.
func Tree(a Algorithm, src Source, height, width int) ([]maze.Edge, int, error) {
	if height < maze.SizeLowerBound || width < maze.SizeLowerBound {
		return nil, 0, maze.ErrInvalidSize
	}

	f, err := a.frontier()
	if err != nil {
		return nil, 0, err
	}

	graph := halfGrid(height, width, src)
	return spanningTree(graph, f), graph.Len(), nil
}
