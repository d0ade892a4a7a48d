package generation

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keepOrder leaves neighbor lists in up/down/left/right order.
type keepOrder struct{}

func (keepOrder) Shuffle(int, func(i, j int)) {}

func layout(m *maze.Maze) []string {
	rows := make([]string, m.Height())
	for r, row := range m.Grid() {
		line := make([]byte, len(row))
		for c, cell := range row {
			if cell.IsWall() {
				line[c] = '#'
			} else {
				line[c] = '.'
			}
		}
		rows[r] = string(line)
	}
	return rows
}

// roomsConnected walks rooms through carved gaps and reports how many were reached
// and how many gaps were crossed.
func roomsConnected(m *maze.Maze) (rooms, reached, gaps int) {
	halfH, halfW := (m.Height()-1)/2, (m.Width()-1)/2
	rooms = halfH * halfW

	type pos struct{ r, c int }
	seen := map[pos]bool{{0, 0}: true}
	queue := []pos{{0, 0}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []pos{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			n := pos{p.r + d.r, p.c + d.c}
			if n.r < 0 || n.r >= halfH || n.c < 0 || n.c >= halfW {
				continue
			}
			if m.Cell(2*p.r+1+d.r, 2*p.c+1+d.c).IsWall() || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}

	for r := 0; r < halfH; r++ {
		for c := 0; c < halfW; c++ {
			if c+1 < halfW && !m.Cell(2*r+1, 2*c+2).IsWall() {
				gaps++
			}
			if r+1 < halfH && !m.Cell(2*r+2, 2*c+1).IsWall() {
				gaps++
			}
		}
	}
	return rooms, len(seen), gaps
}

func TestGraphNeighbors(t *testing.T) {
	g := NewGraph(3, 2)
	require.Equal(t, 6, g.Len())

	assert.Equal(t, []int{3, 1}, g.Cell(0).Neighbors)
	assert.Equal(t, []int{4, 0, 2}, g.Cell(1).Neighbors)
	assert.Equal(t, []int{1, 3, 5}, g.Cell(4).Neighbors)
	assert.Equal(t, []int{2, 4}, g.Cell(5).Neighbors)

	for id := 0; id < g.Len(); id++ {
		assert.Equal(t, id, g.Cell(id).ID)
		assert.False(t, g.Cell(id).Visited)
	}
}

func TestGraphShuffleIsDeterministic(t *testing.T) {
	a := NewGraph(6, 5)
	b := NewGraph(6, 5)
	a.ShuffleNeighbors(rand.New(rand.NewSource(7)))
	b.ShuffleNeighbors(rand.New(rand.NewSource(7)))

	for id := 0; id < a.Len(); id++ {
		assert.Equal(t, a.Cell(id).Neighbors, b.Cell(id).Neighbors)
		assert.ElementsMatch(t, NewGraph(6, 5).Cell(id).Neighbors, a.Cell(id).Neighbors)
	}
}

func TestFirstUnvisitedNeighbor(t *testing.T) {
	g := NewGraph(2, 2)

	n, ok := g.FirstUnvisitedNeighbor(0)
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	g.Visit(2)
	n, ok = g.FirstUnvisitedNeighbor(0)
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	g.Visit(1)
	_, ok = g.FirstUnvisitedNeighbor(0)
	assert.False(t, ok)
}

func TestGenerateGolden(t *testing.T) {
	for _, a := range Algorithms {
		t.Run(a.String(), func(t *testing.T) {
			gen, err := New(a, keepOrder{})
			require.NoError(t, err)

			m, err := gen.Generate(5, 5)
			require.NoError(t, err)
			assert.Equal(t, []string{
				"#.###",
				"#.#.#",
				"#.#.#",
				"#...#",
				"###.#",
			}, layout(m))
		})
	}
}

// Layouts below depend on math/rand's stream for each seed and on Shuffle being
// called once per cell, in id order, with the full neighbor count.
func TestGenerateSeededGolden(t *testing.T) {
	cases := []struct {
		alg           Algorithm
		height, width int
		seed          int64
		want          []string
	}{
		{BFS, 5, 5, 2, []string{
			"#.###",
			"#...#",
			"###.#",
			"#...#",
			"###.#",
		}},
		{DFS, 5, 5, 2, []string{
			"#.###",
			"#...#",
			"###.#",
			"#...#",
			"###.#",
		}},
		{BFS, 7, 9, 7, []string{
			"#.#######",
			"#.......#",
			"#.#######",
			"#.......#",
			"#######.#",
			"#.......#",
			"#######.#",
		}},
		{DFS, 7, 9, 7, []string{
			"#.#######",
			"#.#.....#",
			"#.#####.#",
			"#.......#",
			"#######.#",
			"#.......#",
			"#######.#",
		}},
		{BFS, 10, 20, 1, []string{
			"#.##################",
			"#...#.............##",
			"#.###.#.#####.######",
			"#.#...#.....#.#...##",
			"#.#.#######.#.#.#.##",
			"#...#.......#.#.#.##",
			"#####.#####.#.#.#.##",
			"#.....#.....#...#.##",
			"#################.##",
			"#################.##",
		}},
		{DFS, 10, 20, 1, []string{
			"#.##################",
			"#.#.....#.........##",
			"#.###.#.#####.###.##",
			"#.#...#.....#.#...##",
			"#.#.#######.###.#.##",
			"#...#.......#...#.##",
			"#####.#######.###.##",
			"#.............#...##",
			"#################.##",
			"#################.##",
		}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%dx%d/seed=%d", tc.alg, tc.height, tc.width, tc.seed), func(t *testing.T) {
			m, err := seeded(tc.alg, tc.seed).Generate(tc.height, tc.width)
			require.NoError(t, err)
			assert.Equal(t, tc.want, layout(m))
		})
	}
}

func TestSpanningTreeOrder(t *testing.T) {
	// 3x3 half grid:
	//   0 1 2
	//   3 4 5
	//   6 7 8
	// The walk 0-1-4-7-6-3 dead-ends at 3 with 2, 5 and 8 still unvisited.
	fixture := func() *Graph {
		g := NewGraph(3, 3)
		for id, neighbors := range [][]int{
			{1, 3}, {4, 2, 0}, {5, 1}, {0, 4, 6}, {7, 5, 3, 1}, {2, 8, 4}, {3, 7}, {6, 8, 4}, {5, 7},
		} {
			g.cells[id].Neighbors = neighbors
		}
		return g
	}

	t.Run("BFS resumes from the oldest frontier cell", func(t *testing.T) {
		edges := spanningTree(fixture(), newFIFO())
		assert.Equal(t, []maze.Edge{
			{First: 0, Second: 1}, {First: 1, Second: 4}, {First: 4, Second: 7}, {First: 7, Second: 6}, {First: 6, Second: 3}, {First: 1, Second: 2}, {First: 2, Second: 5}, {First: 5, Second: 8},
		}, edges)
		assert.NoError(t, VerifySpanningTree(edges, 9, 3))
	})

	t.Run("DFS resumes from the newest frontier cell", func(t *testing.T) {
		edges := spanningTree(fixture(), newLIFO())
		assert.Equal(t, []maze.Edge{
			{First: 0, Second: 1}, {First: 1, Second: 4}, {First: 4, Second: 7}, {First: 7, Second: 6}, {First: 6, Second: 3}, {First: 7, Second: 8}, {First: 8, Second: 5}, {First: 5, Second: 2},
		}, edges)
		assert.NoError(t, VerifySpanningTree(edges, 9, 3))
	})

	t.Run("every cell is visited once", func(t *testing.T) {
		g := NewGraph(7, 4)
		g.ShuffleNeighbors(rand.New(rand.NewSource(11)))
		edges := spanningTree(g, newFIFO())
		assert.Len(t, edges, g.Len()-1)
		for id := 0; id < g.Len(); id++ {
			assert.True(t, g.Cell(id).Visited)
		}
	})
}

func TestGenerateInvalidSize(t *testing.T) {
	for _, a := range Algorithms {
		gen, err := New(a, rand.New(rand.NewSource(1)))
		require.NoError(t, err)

		for _, size := range [][2]int{{2, 3}, {-2, 20}, {12, 2}} {
			m, err := gen.Generate(size[0], size[1])
			assert.ErrorIs(t, err, maze.ErrInvalidSize)
			assert.Nil(t, m)
		}
	}
}

func TestGenerateProperties(t *testing.T) {
	sizes := [][2]int{{3, 3}, {4, 4}, {5, 5}, {6, 9}, {9, 6}, {20, 20}, {21, 35}, {40, 17}}

	for _, a := range Algorithms {
		for _, size := range sizes {
			for seed := int64(1); seed <= 5; seed++ {
				height, width := size[0], size[1]

				first, err := seeded(a, seed).Generate(height, width)
				require.NoError(t, err)
				second, err := seeded(a, seed).Generate(height, width)
				require.NoError(t, err)
				assert.True(t, first.Equal(second), "%s %dx%d seed %d not deterministic", a, height, width, seed)

				rooms, reached, gaps := roomsConnected(first)
				assert.Equal(t, rooms, reached, "%s %dx%d seed %d disconnected", a, height, width, seed)
				assert.Equal(t, rooms-1, gaps, "%s %dx%d seed %d has a cycle", a, height, width, seed)

				assert.Equal(t, maze.Cell{Row: 0, Col: 1, Type: maze.Passage}, first.Entrance())
				exit := first.Exit()
				assert.Equal(t, maze.Passage, exit.Type)
				assert.Equal(t, width-maze.SizeLowerBound+width%2, exit.Col)
				if height%2 == 0 {
					assert.Equal(t, height-2, exit.Row)
					assert.Equal(t, maze.Passage, first.Cell(height-1, exit.Col).Type)
				} else {
					assert.Equal(t, height-1, exit.Row)
				}
			}
		}
	}
}

func TestBFSAndDFSDiffer(t *testing.T) {
	bfs, err := seeded(BFS, 42).Generate(31, 31)
	require.NoError(t, err)
	dfs, err := seeded(DFS, 42).Generate(31, 31)
	require.NoError(t, err)

	assert.False(t, bfs.Equal(dfs))
}

func TestGeneratorIsReentrant(t *testing.T) {
	gen := NewBFS(rand.New(rand.NewSource(3)))
	first, err := gen.Generate(11, 11)
	require.NoError(t, err)
	second, err := gen.Generate(11, 11)
	require.NoError(t, err)

	for _, m := range []*maze.Maze{first, second} {
		rooms, reached, gaps := roomsConnected(m)
		assert.Equal(t, rooms, reached)
		assert.Equal(t, rooms-1, gaps)
	}
}

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm("dfs")
	require.NoError(t, err)
	assert.Equal(t, DFS, a)

	_, err = ParseAlgorithm("prim")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = New(Algorithm(9), keepOrder{})
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

// seeded builds a freshly seeded generator.
func seeded(a Algorithm, seed int64) Generator {
	gen, _ := New(a, rand.New(rand.NewSource(seed)))
	return gen
}
