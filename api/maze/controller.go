package mazeapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/generation"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/beka-birhanu/vinom-maze/solving"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultGenerator = "bfs"
	defaultSolver    = "bfs"
)

// MazeController serves maze generation and solving.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze controller needs a maze service")
	}
	return &MazeController{mazeService: ms}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/mazes", mc.generate)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	route.GET("/mazes/solution", mc.solve)
}

// generate handles maze generation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, _, err := mc.build(request)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// solve handles requests for a maze together with its solution.
func (mc *MazeController) solve(ctx *gin.Context) {
	var request SolutionRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solverName := request.Solver
	if solverName == "" {
		solverName = defaultSolver
	}
	solver, err := solving.ParseAlgorithm(solverName)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, m, err := mc.build(request.MazeRequest)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	path, err := mc.mazeService.Solve(m, solver)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	response.Rows = rows(mc.mazeService.Render(m, path))
	steps := make([]CellResponse, len(path))
	for idx, c := range path {
		steps[idx] = cellResponse(c)
	}

	ctx.JSON(http.StatusOK, &SolutionResponse{
		MazeResponse: *response,
		Solver:       solver.String(),
		Steps:        len(path) - 1,
		Path:         steps,
	})
}

// build generates the requested maze and describes it.
func (mc *MazeController) build(request MazeRequest) (*MazeResponse, *maze.Maze, error) {
	name := request.Algorithm
	if name == "" {
		name = defaultGenerator
	}
	alg, err := generation.ParseAlgorithm(name)
	if err != nil {
		return nil, nil, err
	}

	m, seed, err := mc.mazeService.Generate(alg, request.Height, request.Width, request.Seed)
	if err != nil {
		return nil, nil, err
	}

	return &MazeResponse{
		ID:        uuid.New(),
		Algorithm: alg.String(),
		Height:    m.Height(),
		Width:     m.Width(),
		Seed:      seed,
		Entrance:  cellResponse(m.Entrance()),
		Exit:      cellResponse(m.Exit()),
		Rows:      rows(mc.mazeService.Render(m, nil)),
	}, m, nil
}

func cellResponse(c maze.Cell) CellResponse {
	return CellResponse{Row: c.Row, Col: c.Col}
}

func rows(rendered string) []string {
	return strings.Split(strings.TrimRight(rendered, "\n"), "\n")
}

// statusOf maps service errors to HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidSize),
		errors.Is(err, service.ErrSizeTooLarge),
		errors.Is(err, generation.ErrUnknownAlgorithm),
		errors.Is(err, solving.ErrUnknownAlgorithm):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
