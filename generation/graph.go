package generation

// Source supplies the randomness for neighbor shuffling.
// *math/rand.Rand satisfies it.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

// AlternatingCell is one room of the half-resolution grid.
type AlternatingCell struct {
	ID        int   // row*width + column in the half grid
	Visited   bool  // set once during spanning tree construction
	Neighbors []int // ids of the in-bound up/down/left/right cells
}

// Graph owns every alternating cell of a width x height half grid.
type Graph struct {
	width  int
	height int
	cells  []AlternatingCell
}

// NewGraph links every cell to its in-bound up, down, left and right neighbors, in that order.
func NewGraph(width, height int) *Graph {
	cells := make([]AlternatingCell, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			id := row*width + col
			neighbors := make([]int, 0, 4)
			if row > 0 {
				neighbors = append(neighbors, id-width)
			}
			if row < height-1 {
				neighbors = append(neighbors, id+width)
			}
			if col > 0 {
				neighbors = append(neighbors, id-1)
			}
			if col < width-1 {
				neighbors = append(neighbors, id+1)
			}
			cells[id] = AlternatingCell{ID: id, Neighbors: neighbors}
		}
	}

	return &Graph{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// ShuffleNeighbors reorders each cell's neighbor list, in id order, using src.
func (g *Graph) ShuffleNeighbors(src Source) {
	for i := range g.cells {
		neighbors := g.cells[i].Neighbors
		src.Shuffle(len(neighbors), func(a, b int) {
			neighbors[a], neighbors[b] = neighbors[b], neighbors[a]
		})
	}
}

// Len returns the number of alternating cells.
func (g *Graph) Len() int {
	return len(g.cells)
}

// Width returns the width of the half grid.
func (g *Graph) Width() int {
	return g.width
}

// Cell returns a copy of the cell with the given id.
func (g *Graph) Cell(id int) AlternatingCell {
	return g.cells[id]
}

// Visit marks a cell visited.
func (g *Graph) Visit(id int) {
	g.cells[id].Visited = true
}

// FirstUnvisitedNeighbor returns the first neighbor, in shuffled order, not yet visited.
func (g *Graph) FirstUnvisitedNeighbor(id int) (int, bool) {
	for _, n := range g.cells[id].Neighbors {
		if !g.cells[n].Visited {
			return n, true
		}
	}
	return 0, false
}
