/*
Package generation builds random mazes as spanning trees over the alternating-cell grid.

Rooms of a maze (odd row, odd column) form a half-resolution grid. Each room's neighbor
list is shuffled once, then a spanning tree is grown from room 0 using a FIFO frontier
(BFS) or a LIFO frontier (DFS). The tree's edges are carved into a maze.Maze.
*/
package generation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

var ErrUnknownAlgorithm = errors.New("unknown generation algorithm")

// Generator produces a fully carved maze of the given size.
type Generator interface {
	Generate(height, width int) (*maze.Maze, error)
}

// Algorithm selects the frontier used while growing the spanning tree.
type Algorithm int

const (
	BFS Algorithm = iota + 1
	DFS
)

// Algorithms lists the generation algorithms in menu order.
var Algorithms = []Algorithm{BFS, DFS}

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if strings.EqualFold(name, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// New returns the generator for the algorithm, drawing randomness from src.
func New(a Algorithm, src Source) (Generator, error) {
	switch a {
	case BFS:
		return NewBFS(src), nil
	case DFS:
		return NewDFS(src), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
	}
}

// BFSGenerator grows the spanning tree with a FIFO frontier, giving broad branching.
type BFSGenerator struct {
	random Source
}

// NewBFS creates a BFS generator. src must not be nil.
func NewBFS(src Source) *BFSGenerator {
	return &BFSGenerator{random: src}
}

// Generate implements Generator.
func (g *BFSGenerator) Generate(height, width int) (*maze.Maze, error) {
	return generate(height, width, g.random, newFIFO())
}

// DFSGenerator grows the spanning tree with a LIFO frontier, giving long corridors.
type DFSGenerator struct {
	random Source
}

// NewDFS creates a DFS generator. src must not be nil.
func NewDFS(src Source) *DFSGenerator {
	return &DFSGenerator{random: src}
}

// Generate implements Generator.
func (g *DFSGenerator) Generate(height, width int) (*maze.Maze, error) {
	return generate(height, width, g.random, newLIFO())
}

func generate(height, width int, src Source, f frontier) (*maze.Maze, error) {
	m, err := maze.New(height, width)
	if err != nil {
		return nil, err
	}

	graph := halfGrid(height, width, src)
	m.PutSpanningTree(spanningTree(graph, f), graph.Width())
	return m, nil
}

// halfGrid builds the shuffled alternating-cell graph behind a height x width maze.
func halfGrid(height, width int, src Source) *Graph {
	graph := NewGraph((width-1)/2, (height-1)/2)
	graph.ShuffleNeighbors(src)
	return graph
}

func (a Algorithm) frontier() (frontier, error) {
	switch a {
	case BFS:
		return newFIFO(), nil
	case DFS:
		return newLIFO(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
	}
}

// spanningTree grows a tree from cell 0 and returns its edges in discovery order.
//
// The current cell keeps extending the tree while it has unvisited neighbors; every
// newly reached cell is pushed and becomes current. Once the current cell is exhausted
// the frontier's next cell is removed and resumed from, until an exhausted cell meets
// an empty frontier.
func spanningTree(g *Graph, f frontier) []maze.Edge {
	edges := make([]maze.Edge, 0, g.Len()-1)

	cur := 0
	g.Visit(cur)
	f.push(cur)

	for {
		if next, ok := g.FirstUnvisitedNeighbor(cur); ok {
			g.Visit(next)
			edges = append(edges, maze.Edge{First: cur, Second: next})
			cur = next
			f.push(cur)
			continue
		}

		if f.empty() {
			return edges
		}
		cur = f.pop()
	}
}
