package mars

import (
	"fmt"
	"slices"
)

// Grid is the rectangle (0,0)..(MaxX,MaxY) plus the scents left by lost
// robots. One Grid is shared by every robot of a run.
type Grid struct {
	MaxX, MaxY int
	scents     map[[2]int]bool
}

func NewGrid(maxX, maxY int) *Grid {
	return &Grid{MaxX: maxX, MaxY: maxY, scents: make(map[[2]int]bool)}
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x <= g.MaxX && y >= 0 && y <= g.MaxY
}

func (g *Grid) HasScent(x, y int) bool {
	return g.scents[[2]int{x, y}]
}

// LeaveScent marks (x,y) as the last cell a robot stood on before falling
// off. Marking the same cell twice is a no-op.
func (g *Grid) LeaveScent(x, y int) {
	g.scents[[2]int{x, y}] = true
}

// Scents returns the scented cells ordered by y, then x.
func (g *Grid) Scents() [][2]int {
	out := make([][2]int, 0, len(g.scents))
	for pos := range g.scents {
		out = append(out, pos)
	}
	slices.SortFunc(out, func(a, b [2]int) int {
		if a[1] != b[1] {
			return a[1] - b[1]
		}
		return a[0] - b[0]
	})
	return out
}

func (g *Grid) String() string {
	return fmt.Sprintf("%d %d", g.MaxX, g.MaxY)
}
