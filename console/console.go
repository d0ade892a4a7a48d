// Package console runs the interactive generate-and-solve loop over a text stream.
package console

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vinom-maze/generation"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/beka-birhanu/vinom-maze/solving"
	"github.com/leonelquinteros/gotext"
)

var numberRegex = regexp.MustCompile(`^\d+$`)

type inputType int

const (
	selectGenerator inputType = iota
	enterMazeSize
	selectSolver
)

// Console reads menu choices from in and prints mazes to out.
type Console struct {
	scanner     *bufio.Scanner
	out         io.Writer
	mazeService i.MazeService
}

// New creates a Console over the given streams.
func New(in io.Reader, out io.Writer, ms i.MazeService) *Console {
	return &Console{
		scanner:     bufio.NewScanner(in),
		out:         out,
		mazeService: ms,
	}
}

// Run loops until the user enters 0 or the input ends.
func (c *Console) Run() {
	defer c.println(gotext.Get(farewellMessage))

	for {
		c.showAlgorithms(selectGeneratorMessage, generatorNames())
		input, ok := c.read(selectGenerator)
		if !ok {
			return
		}
		generator := generation.Algorithms[input[0]-1]

		c.println(gotext.Get(selectSizeMessage, maze.SizeLowerBound))
		c.println(gotext.Get(exitHintMessage))
		input, ok = c.read(enterMazeSize)
		if !ok {
			return
		}

		m, _, err := c.mazeService.Generate(generator, input[0], input[1], 0)
		if err != nil {
			c.println(gotext.Get(generationFailed, err))
			continue
		}
		c.println(c.mazeService.Render(m, nil))

		c.showAlgorithms(selectSolverMessage, solverNames())
		input, ok = c.read(selectSolver)
		if !ok {
			return
		}

		path, err := c.mazeService.Solve(m, solving.Algorithms[input[0]-1])
		if err != nil {
			c.println(gotext.Get(solvingFailed, err))
			continue
		}
		c.println(c.mazeService.Render(m, path))
	}
}

// read prompts until a valid line arrives. It returns false on exit or end of input.
// Sizes always come back as [height, width].
func (c *Console) read(t inputType) ([]int, bool) {
	for c.scanner.Scan() {
		numbers, valid := parseNumbers(c.scanner.Text())
		if !valid {
			c.println(gotext.Get(invalidInputMessage))
			continue
		}

		if len(numbers) == 1 && numbers[0] == 0 {
			return nil, false
		}

		switch t {
		case selectGenerator:
			if isChoice(numbers, len(generation.Algorithms)) {
				return numbers, true
			}
		case selectSolver:
			if isChoice(numbers, len(solving.Algorithms)) {
				return numbers, true
			}
		case enterMazeSize:
			if len(numbers) == 1 {
				numbers = []int{numbers[0], numbers[0]}
			}
			if numbers[0] >= maze.SizeLowerBound && numbers[1] >= maze.SizeLowerBound {
				return numbers, true
			}
		}
		c.println(gotext.Get(invalidInputMessage))
	}
	return nil, false
}

// parseNumbers accepts one or two space separated non-negative integers.
func parseNumbers(line string) ([]int, bool) {
	fields := strings.Split(strings.TrimSpace(line), " ")
	if len(fields) < 1 || len(fields) > 2 {
		return nil, false
	}

	numbers := make([]int, 0, len(fields))
	for _, f := range fields {
		if !numberRegex.MatchString(f) {
			return nil, false
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}
		numbers = append(numbers, n)
	}
	return numbers, true
}

func isChoice(numbers []int, options int) bool {
	return len(numbers) == 1 && numbers[0] >= 1 && numbers[0] <= options
}

func (c *Console) showAlgorithms(title string, names []string) {
	c.println(gotext.Get(title))
	for idx, name := range names {
		c.println(fmt.Sprintf("%d. %s", idx+1, name))
	}
	c.println(gotext.Get(exitHintMessage))
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func generatorNames() []string {
	names := make([]string, len(generation.Algorithms))
	for idx, a := range generation.Algorithms {
		names[idx] = a.String()
	}
	return names
}

func solverNames() []string {
	names := make([]string, len(solving.Algorithms))
	for idx, a := range solving.Algorithms {
		names[idx] = a.String()
	}
	return names
}
