/*
Package maze provides the wall/passage grid that generated mazes are carved into.

A maze of height H and width W is a full-resolution grid. Cells at odd row and odd
column are rooms, cells with exactly one odd coordinate are gaps between rooms, and
cells at even row and even column are the wall skeleton. Generators carve a spanning
tree of rooms into the gaps with PutSpanningTree.
*/
package maze

import (
	"errors"
	"fmt"
)

// SizeLowerBound is the smallest height or width that holds a room plus an entrance and an exit.
const SizeLowerBound = 3

var ErrInvalidSize = errors.New("maze height and width must be at least 3")

// Maze is a rectangular grid of wall and passage cells with one entrance and one exit.
type Maze struct {
	height   int
	width    int
	grid     [][]Cell
	entrance Cell
	exit     Cell
}

// New builds the uncarved skeleton of a height x width maze.
// Every gap is a wall until a spanning tree is put into the maze.
func New(height, width int) (*Maze, error) {
	if height < SizeLowerBound || width < SizeLowerBound {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, height, width)
	}

	grid := make([][]Cell, height)
	for i := range grid {
		grid[i] = make([]Cell, width)
	}

	m := &Maze{
		height: height,
		width:  width,
		grid:   grid,
	}
	m.fillAlternately()
	m.fillGaps()
	m.makeEntranceAndExit()
	return m, nil
}

// FromGrid wraps an existing grid, stamping the entrance and exit onto it.
// The grid must be rectangular and at least SizeLowerBound in both directions.
func FromGrid(grid [][]Cell) (*Maze, error) {
	if len(grid) < SizeLowerBound || len(grid[0]) < SizeLowerBound {
		return nil, ErrInvalidSize
	}

	width := len(grid[0])
	for row := range grid {
		if len(grid[row]) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", row, len(grid[row]), width)
		}
	}

	m := &Maze{
		height: len(grid),
		width:  width,
		grid:   grid,
	}
	m.makeEntranceAndExit()
	return m, nil
}

func (m *Maze) putCell(row, col int, t CellType) {
	m.grid[row][col] = Cell{Row: row, Col: col, Type: t}
}

// fillAlternately opens every odd/odd room and walls everything else.
func (m *Maze) fillAlternately() {
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			if row&1 == 0 || col&1 == 0 {
				m.putCell(row, col, Wall)
			} else {
				m.putCell(row, col, Passage)
			}
		}
	}
}

// fillGaps walls the last row or column left over by an even dimension.
func (m *Maze) fillGaps() {
	if m.height%2 == 0 {
		for col := 0; col < m.width; col++ {
			m.putCell(m.height-1, col, Wall)
		}
	}
	if m.width%2 == 0 {
		for row := 0; row < m.height; row++ {
			m.putCell(row, m.width-1, Wall)
		}
	}
}

func (m *Maze) exitColumn() int {
	return m.width - SizeLowerBound + m.width%2
}

// makeEntranceAndExit opens (0, 1) and the bottom exit. An even height leaves a walled
// last row, so the exit is widened one row up and that upper cell is recorded as the exit.
func (m *Maze) makeEntranceAndExit() {
	m.putCell(0, 1, Passage)
	m.entrance = m.grid[0][1]

	col := m.exitColumn()
	m.putCell(m.height-1, col, Passage)
	m.exit = m.grid[m.height-1][col]

	if m.height%2 == 0 {
		m.putCell(m.height-2, col, Passage)
		m.exit = m.grid[m.height-2][col]
	}
}

// PutSpanningTree carves the gap between the two rooms of every edge.
// halfWidth is the width of the alternating-cell grid the edge ids index into.
func (m *Maze) PutSpanningTree(edges []Edge, halfWidth int) {
	for _, e := range edges {
		r1, c1 := e.First/halfWidth, e.First%halfWidth
		r2, c2 := e.Second/halfWidth, e.Second%halfWidth
		m.putCell(r1+r2+1, c1+c2+1, Passage)
	}
}

// PutCells overwrites grid cells at the positions the given cells carry.
func (m *Maze) PutCells(cells []Cell) {
	for _, c := range cells {
		m.grid[c.Row][c.Col] = c
	}
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Entrance returns the entrance cell, always (0, 1).
func (m *Maze) Entrance() Cell {
	return m.entrance
}

// Exit returns the exit cell.
func (m *Maze) Exit() Cell {
	return m.exit
}

// Grid exposes the rows of the maze. Callers must not modify it; use Clone first.
func (m *Maze) Grid() [][]Cell {
	return m.grid
}

// InBound checks if a position lies inside the grid.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// Cell returns the cell at the given position.
func (m *Maze) Cell(row, col int) Cell {
	return m.grid[row][col]
}

// Clone returns a deep copy that can be stamped without touching m.
func (m *Maze) Clone() *Maze {
	grid := make([][]Cell, m.height)
	for i := range m.grid {
		grid[i] = make([]Cell, m.width)
		copy(grid[i], m.grid[i])
	}
	return &Maze{
		height:   m.height,
		width:    m.width,
		grid:     grid,
		entrance: m.entrance,
		exit:     m.exit,
	}
}

// Equal reports whether both mazes have the same size, layout, entrance and exit.
func (m *Maze) Equal(other *Maze) bool {
	if other == nil || m.height != other.height || m.width != other.width {
		return false
	}
	if !m.entrance.Equal(other.entrance) || !m.exit.Equal(other.exit) {
		return false
	}
	for row := range m.grid {
		for col := range m.grid[row] {
			if !m.grid[row][col].Equal(other.grid[row][col]) {
				return false
			}
		}
	}
	return true
}
