package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/generation"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/solving"
)

// DefaultMaxSize caps maze sides when Config.MaxSize is unset.
const DefaultMaxSize = 501

var ErrSizeTooLarge = errors.New("maze size exceeds the configured maximum")

// MazeService wires generators, solvers and the renderer together.
// Implements i.MazeService.
type MazeService struct {
	renderer    render.Renderer
	verifyTrees bool
	maxSize     int
	logger      logger.Logger
	seeds       *rand.Rand
	sync.Mutex  // guards seeds
}

// Config holds the dependencies of a MazeService.
type Config struct {
	Renderer    render.Renderer
	VerifyTrees bool          // re-check each spanning tree after generating
	Seed        int64         // seeds the per-maze seed sequence; 0 uses the clock
	MaxSize     int           // largest accepted height or width; 0 uses DefaultMaxSize
	Logger      logger.Logger // must not be nil
}

// NewMazeService creates a MazeService from the given configuration.
func NewMazeService(c *Config) (*MazeService, error) {
	if c.Logger == nil {
		return nil, errors.New("maze service needs a logger")
	}

	renderer := c.Renderer
	if renderer == nil {
		renderer = render.NewConsole()
	}

	maxSize := c.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &MazeService{
		renderer:    renderer,
		verifyTrees: c.VerifyTrees,
		maxSize:     maxSize,
		logger:      c.Logger,
		seeds:       rand.New(rand.NewSource(seed)),
	}, nil
}

// Generate implements i.MazeService.
func (s *MazeService) Generate(alg generation.Algorithm, height, width int, seed int64) (*maze.Maze, int64, error) {
	if height > s.maxSize || width > s.maxSize {
		err := fmt.Errorf("%w: got %dx%d, limit %d", ErrSizeTooLarge, height, width, s.maxSize)
		s.logger.Error(fmt.Sprintf("rejecting %s maze: %v", alg, err))
		return nil, 0, err
	}

	if seed == 0 {
		seed = s.nextSeed()
	}

	gen, err := generation.New(alg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, 0, err
	}

	m, err := gen.Generate(height, width)
	if err != nil {
		s.logger.Error(fmt.Sprintf("generating %dx%d %s maze: %v", height, width, alg, err))
		return nil, 0, err
	}

	if s.verifyTrees {
		if err := s.verify(alg, height, width, seed); err != nil {
			s.logger.Error(fmt.Sprintf("verifying %dx%d %s maze with seed %d: %v", height, width, alg, seed, err))
			return nil, 0, err
		}
	}

	s.logger.Info(fmt.Sprintf("generated %dx%d %s maze with seed %d", height, width, alg, seed))
	return m, seed, nil
}

// verify rebuilds the spanning tree from the same seed and checks its shape.
func (s *MazeService) verify(alg generation.Algorithm, height, width int, seed int64) error {
	edges, cells, err := generation.Tree(alg, rand.New(rand.NewSource(seed)), height, width)
	if err != nil {
		return err
	}
	return generation.VerifySpanningTree(edges, cells, (width-1)/2)
}

// Solve implements i.MazeService.
func (s *MazeService) Solve(m *maze.Maze, alg solving.Algorithm) ([]maze.Cell, error) {
	solver, err := solving.New(alg)
	if err != nil {
		return nil, err
	}

	path, err := solver.Solve(m, m.Entrance(), m.Exit())
	if err != nil {
		s.logger.Error(fmt.Sprintf("solving %dx%d maze with %s: %v", m.Height(), m.Width(), alg, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("solved %dx%d maze with %s in %d steps", m.Height(), m.Width(), alg, len(path)-1))
	return path, nil
}

// Render implements i.MazeService.
func (s *MazeService) Render(m *maze.Maze, path []maze.Cell) string {
	if len(path) == 0 {
		return s.renderer.Render(m)
	}
	return s.renderer.RenderPath(m, path)
}

func (s *MazeService) nextSeed() int64 {
	s.Lock()
	defer s.Unlock()

	for {
		if seed := s.seeds.Int63(); seed != 0 {
			return seed
		}
	}
}
