package mars

import (
	"fmt"

	"go.uber.org/zap"
)

// Result is a robot's final state.
type Result struct {
	X, Y    int
	Heading Orientation
	Lost    bool
}

func (r Result) String() string {
	s := fmt.Sprintf("%d %d %s", r.X, r.Y, r.Heading)
	if r.Lost {
		s += " LOST"
	}
	return s
}

// Report is the outcome of one run: the grid with its accumulated scents
// and one Result per robot, in input order.
type Report struct {
	Grid    *Grid
	Results []Result
}

func (rp *Report) Lines() []string {
	out := make([]string, len(rp.Results))
	for i, r := range rp.Results {
		out[i] = r.String()
	}
	return out
}

// Simulate parses lines and runs every robot on one shared grid. Lines
// must already be trimmed with blanks removed: the grid line first, then
// position/instruction pairs.
func Simulate(lines []string, opts ...Option) (*Report, error) {
	o := newOptions(opts)
	if len(lines) == 0 {
		return nil, &ParseError{Line: 1, Field: "grid", Err: ErrEmptyInput}
	}
	spec, err := parseGridSpec(1, lines[0])
	if err != nil {
		return nil, err
	}
	grid := NewGrid(spec.MaxX, spec.MaxY)
	sim := NewSimulator(grid, WithLogger(o.log))
	o.log.Debug("grid ready", zap.Stringer("grid", grid))

	results := make([]Result, 0, (len(lines)-1)/2)
	for i := 1; i < len(lines); i += 2 {
		p, err := parsePlacement(i+1, lines[i], grid)
		if err != nil {
			return nil, err
		}
		if i+1 >= len(lines) {
			return nil, &ParseError{Line: i + 1, Field: "instructions", Input: lines[i], Err: ErrMissingInstructions}
		}
		r := sim.Run(NewRobot(p.X, p.Y, p.Heading), lines[i+1])
		results = append(results, Result{X: r.X, Y: r.Y, Heading: r.Heading, Lost: r.Lost})
	}
	return &Report{Grid: grid, Results: results}, nil
}

// Run is Simulate with each robot formatted as "x y O" or "x y O LOST".
func Run(lines []string, opts ...Option) ([]string, error) {
	rp, err := Simulate(lines, opts...)
	if err != nil {
		return nil, err
	}
	return rp.Lines(), nil
}
