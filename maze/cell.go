package maze

// CellType tells whether a grid cell blocks movement.
type CellType uint8

const (
	Wall CellType = iota
	Passage
)

// String returns the lowercase name of the cell type.
func (t CellType) String() string {
	if t == Passage {
		return "passage"
	}
	return "wall"
}

// Cell represents a single cell in a maze grid.
type Cell struct {
	Row    int      // Row index of the cell
	Col    int      // Column index of the cell
	Type   CellType // Wall or Passage
	Escape bool     // Escape marks a cell on a solved path; only set on rendering copies.
}

// IsWall returns true if the cell blocks movement.
func (c Cell) IsWall() bool {
	return c.Type == Wall
}

// Equal compares position and type. The escape marker is ignored.
func (c Cell) Equal(other Cell) bool {
	return c.Row == other.Row && c.Col == other.Col && c.Type == other.Type
}

// Edge connects two adjacent alternating cells by their ids.
type Edge struct {
	First  int
	Second int
}
