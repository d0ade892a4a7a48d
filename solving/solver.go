// Package solving finds corridor paths from a maze's entrance to its exit.
package solving

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

var (
	ErrNoPath           = errors.New("no path between entrance and exit")
	ErrUnknownAlgorithm = errors.New("unknown solving algorithm")
	ErrBlockedEndpoint  = errors.New("path endpoint is a wall or out of the maze")
)

// Solver returns the cells of a path from entrance to exit, both included.
// Every returned cell is a Passage marked as Escape.
type Solver interface {
	Solve(m *maze.Maze, entrance, exit maze.Cell) ([]maze.Cell, error)
}

// Algorithm selects a solver.
type Algorithm int

const (
	BFS Algorithm = iota + 1
	DFS
)

// Algorithms lists the solving algorithms in menu order.
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

// New returns the solver for the algorithm.
func New(a Algorithm) (Solver, error) {
	switch a {
	case BFS:
		return &BFSSolver{}, nil
	case DFS:
		return &DFSSolver{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
	}
}

type position struct {
	row int
	col int
}

var directions = []position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// open lists the passage neighbors of p.
func open(m *maze.Maze, p position) []position {
	result := make([]position, 0, len(directions))
	for _, d := range directions {
		n := position{row: p.row + d.row, col: p.col + d.col}
		if m.InBound(n.row, n.col) && !m.Cell(n.row, n.col).IsWall() {
			result = append(result, n)
		}
	}
	return result
}

func checkEndpoints(m *maze.Maze, cells ...maze.Cell) error {
	for _, c := range cells {
		if !m.InBound(c.Row, c.Col) || m.Cell(c.Row, c.Col).IsWall() {
			return fmt.Errorf("%w: (%d, %d)", ErrBlockedEndpoint, c.Row, c.Col)
		}
	}
	return nil
}

// escapePath converts positions into escape-marked passage cells.
func escapePath(path []position) []maze.Cell {
	cells := make([]maze.Cell, len(path))
	for i, p := range path {
		cells[i] = maze.Cell{Row: p.row, Col: p.col, Type: maze.Passage, Escape: true}
	}
	return cells
}

// BFSSolver finds a shortest path.
type BFSSolver struct{}

// Solve implements Solver.
func (s *BFSSolver) Solve(m *maze.Maze, entrance, exit maze.Cell) ([]maze.Cell, error) {
	if err := checkEndpoints(m, entrance, exit); err != nil {
		return nil, err
	}

	start := position{row: entrance.Row, col: entrance.Col}
	goal := position{row: exit.Row, col: exit.Col}

	cameFrom := make(map[position]position)
	visited := mapset.New[position]()
	visited.Put(start)
	frontier := queue.New[position]()
	frontier.Enqueue(start)

	for !frontier.Empty() {
		cur := frontier.Dequeue()

		if cur == goal {
			path := []position{cur}
			for cur != start {
				cur = cameFrom[cur]
				path = append(path, cur)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return escapePath(path), nil
		}

		for _, n := range open(m, cur) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			cameFrom[n] = cur
			frontier.Enqueue(n)
		}
	}

	return nil, ErrNoPath
}

// DFSSolver follows corridors depth first and backtracks from dead ends.
// The path it returns is simple but not necessarily shortest.
type DFSSolver struct{}

// Solve implements Solver.
func (s *DFSSolver) Solve(m *maze.Maze, entrance, exit maze.Cell) ([]maze.Cell, error) {
	if err := checkEndpoints(m, entrance, exit); err != nil {
		return nil, err
	}

	start := position{row: entrance.Row, col: entrance.Col}
	goal := position{row: exit.Row, col: exit.Col}

	visited := mapset.New[position]()
	visited.Put(start)
	path := []position{start}

	for len(path) > 0 {
		cur := path[len(path)-1]
		if cur == goal {
			return escapePath(path), nil
		}

		advanced := false
		for _, n := range open(m, cur) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			path = append(path, n)
			advanced = true
			break
		}

		if !advanced {
			path = path[:len(path)-1]
		}
	}

	return nil, ErrNoPath
}
