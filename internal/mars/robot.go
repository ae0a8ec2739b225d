package mars

import "fmt"

// Orientation is a compass heading. Right turns cycle N -> E -> S -> W.
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West
)

func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	}
	return 0, fmt.Errorf("unknown orientation %q (want N, E, S or W)", s)
}

// Capture lets participle fill an Orientation field straight from a token.
func (o *Orientation) Capture(values []string) error {
	v, err := ParseOrientation(values[0])
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Right is the clockwise successor.
func (o Orientation) Right() Orientation {
	switch o {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// Left is the counter-clockwise predecessor.
func (o Orientation) Left() Orientation {
	switch o {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default:
		return North
	}
}

// Delta is the unit step taken by a forward move.
func (o Orientation) Delta() (dx, dy int) {
	switch o {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	default:
		return -1, 0
	}
}

func (o Orientation) String() string {
	switch o {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Robot represents robot position and heading on the grid

type Robot struct {
	X, Y    int
	Heading Orientation
	Lost    bool
}

func NewRobot(x, y int, heading Orientation) *Robot {
	return &Robot{X: x, Y: y, Heading: heading}
}

func (r *Robot) TurnLeft() {
	r.Heading = r.Heading.Left()
}

func (r *Robot) TurnRight() {
	r.Heading = r.Heading.Right()
}

// MoveForward steps one cell along the heading. A step off the grid from
// an unscented cell loses the robot and scents that cell; from a scented
// cell the step is ignored. Either way the robot keeps its last valid
// position.
func (r *Robot) MoveForward(g *Grid) {
	dx, dy := r.Heading.Delta()
	nx, ny := r.X+dx, r.Y+dy
	if g.InBounds(nx, ny) {
		r.X, r.Y = nx, ny
		return
	}
	if g.HasScent(r.X, r.Y) {
		return
	}
	g.LeaveScent(r.X, r.Y)
	r.Lost = true
}

func (r *Robot) Position() (int, int) {
	return r.X, r.Y
}

func (r *Robot) String() string {
	return fmt.Sprintf("%d %d %s", r.X, r.Y, r.Heading)
}
