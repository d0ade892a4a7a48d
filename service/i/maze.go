package i

import (
	"github.com/beka-birhanu/vinom-maze/generation"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/solving"
)

// MazeService generates, solves and renders mazes for the console and the REST API.
type MazeService interface {
	// Generate builds a maze with the given algorithm. A zero seed is replaced by a fresh one;
	// the seed actually used is returned so the maze can be reproduced.
	Generate(alg generation.Algorithm, height, width int, seed int64) (*maze.Maze, int64, error)

	// Solve finds a path from the maze entrance to its exit.
	Solve(m *maze.Maze, alg solving.Algorithm) ([]maze.Cell, error)

	// Render formats the maze, drawing the path over it when one is given.
	Render(m *maze.Maze, path []maze.Cell) string
}
