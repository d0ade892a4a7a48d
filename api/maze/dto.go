// Package mazeapi exposes maze generation and solving over HTTP.
package mazeapi

import (
	"github.com/google/uuid"
)

// MazeRequest selects the maze to generate. A zero seed asks the server to pick one.
type MazeRequest struct {
	Algorithm string `form:"algorithm"`
	Height    int    `form:"height" binding:"required"`
	Width     int    `form:"width" binding:"required"`
	Seed      int64  `form:"seed"`
}

// SolutionRequest selects a maze and the solver to run on it.
type SolutionRequest struct {
	MazeRequest
	Solver string `form:"solver"`
}

// CellResponse is a grid position.
type CellResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MazeResponse describes a generated maze. Rows hold the rendered text, one entry per grid row.
type MazeResponse struct {
	ID        uuid.UUID    `json:"id"`
	Algorithm string       `json:"algorithm"`
	Height    int          `json:"height"`
	Width     int          `json:"width"`
	Seed      int64        `json:"seed"`
	Entrance  CellResponse `json:"entrance"`
	Exit      CellResponse `json:"exit"`
	Rows      []string     `json:"rows"`
}

// SolutionResponse is a maze together with its solved path.
type SolutionResponse struct {
	MazeResponse
	Solver string         `json:"solver"`
	Steps  int            `json:"steps"`
	Path   []CellResponse `json:"path"`
}
