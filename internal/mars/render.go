package mars

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer draws a grid after a run: '.' empty, '*' scent and the heading
// letter of every robot that finished on the grid.
type Renderer struct {
	Empty lipgloss.Style
	Scent lipgloss.Style
	Robot lipgloss.Style
}

func NewRenderer() *Renderer {
	return &Renderer{
		Empty: lipgloss.NewStyle().Faint(true),
		Scent: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Robot: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// PlainRenderer renders without any terminal styling.
func PlainRenderer() *Renderer {
	return &Renderer{
		Empty: lipgloss.NewStyle(),
		Scent: lipgloss.NewStyle(),
		Robot: lipgloss.NewStyle(),
	}
}

// Render prints the top row (y = MaxY) first. A surviving robot hides a
// scent on the same cell; later robots hide earlier ones.
func (rn *Renderer) Render(g *Grid, results []Result) string {
	robots := make(map[[2]int]Orientation)
	for _, r := range results {
		if !r.Lost {
			robots[[2]int{r.X, r.Y}] = r.Heading
		}
	}
	var b strings.Builder
	for y := g.MaxY; y >= 0; y-- {
		for x := 0; x <= g.MaxX; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if h, ok := robots[[2]int{x, y}]; ok {
				b.WriteString(rn.Robot.Render(h.String()))
			} else if g.HasScent(x, y) {
				b.WriteString(rn.Scent.Render("*"))
			} else {
				b.WriteString(rn.Empty.Render("."))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render draws the report's grid with the default styles.
func (rp *Report) Render() string {
	return NewRenderer().Render(rp.Grid, rp.Results)
}
