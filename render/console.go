// Package render draws mazes as text, two characters per cell.
package render

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Glyphs used by the console renderer. Each is two runes wide.
const (
	WallGlyph    = "██"
	PassageGlyph = "  "
	PathGlyph    = "• "
)

// Renderer formats a maze, optionally with a solved path on top of it.
type Renderer interface {
	Render(m *maze.Maze) string
	RenderPath(m *maze.Maze, path []maze.Cell) string
}

// Console renders one text line per maze row.
type Console struct{}

// NewConsole creates a console renderer.
func NewConsole() *Console {
	return &Console{}
}

// Render implements Renderer.
func (c *Console) Render(m *maze.Maze) string {
	return draw(m, false)
}

// RenderPath implements Renderer. The path is stamped on a copy; m is left untouched.
func (c *Console) RenderPath(m *maze.Maze, path []maze.Cell) string {
	stamped := m.Clone()
	stamped.PutCells(path)
	return draw(stamped, true)
}

func draw(m *maze.Maze, showEscape bool) string {
	var sb strings.Builder
	sb.Grow(m.Height() * (m.Width()*len(WallGlyph) + 1))

	for _, row := range m.Grid() {
		for _, cell := range row {
			switch {
			case cell.IsWall():
				sb.WriteString(WallGlyph)
			case showEscape && cell.Escape:
				sb.WriteString(PathGlyph)
			default:
				sb.WriteString(PassageGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads rendered rows back into a maze. The first rune of every glyph decides the
// cell: the wall rune makes a Wall, anything else a Passage.
func Parse(text string) (*maze.Maze, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	wallRune := []rune(WallGlyph)[0]

	grid := make([][]maze.Cell, len(lines))
	for r, line := range lines {
		runes := []rune(line)
		if len(runes)%2 != 0 {
			return nil, fmt.Errorf("line %d: odd number of characters", r)
		}

		grid[r] = make([]maze.Cell, len(runes)/2)
		for c := range grid[r] {
			t := maze.Passage
			if runes[2*c] == wallRune {
				t = maze.Wall
			}
			grid[r][c] = maze.Cell{Row: r, Col: c, Type: t}
		}
	}

	return maze.FromGrid(grid)
}
