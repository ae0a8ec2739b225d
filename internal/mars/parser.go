package mars

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	ErrEmptyInput          = errors.New("no grid line")
	ErrMissingInstructions = errors.New("position line has no instruction line")
)

// ParseError reports the input line that could not be read. Nothing is
// simulated when one is returned.
type ParseError struct {
	Line  int // 1-based
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// GridSpec is the first input line: "max_x max_y".
type GridSpec struct {
	MaxX int `parser:"@Int"`
	MaxY int `parser:"@Int"`
}

// Placement is a robot's starting line: "x y O".
type Placement struct {
	X       int         `parser:"@Int"`
	Y       int         `parser:"@Int"`
	Heading Orientation `parser:"@Letter"`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Letter", Pattern: `[A-Za-z]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var (
	gridParser = participle.MustBuild[GridSpec](
		participle.Lexer(lineLexer),
		participle.Elide("Whitespace"),
	)
	placementParser = participle.MustBuild[Placement](
		participle.Lexer(lineLexer),
		participle.Elide("Whitespace"),
	)
)

func parseGridSpec(line int, text string) (*GridSpec, error) {
	spec, err := gridParser.ParseString("", text)
	if err != nil {
		return nil, &ParseError{Line: line, Field: "grid", Input: text, Err: err}
	}
	return spec, nil
}

func parsePlacement(line int, text string, g *Grid) (*Placement, error) {
	p, err := placementParser.ParseString("", text)
	if err != nil {
		return nil, &ParseError{Line: line, Field: "position", Input: text, Err: err}
	}
	if !g.InBounds(p.X, p.Y) {
		return nil, &ParseError{
			Line:  line,
			Field: "position",
			Input: text,
			Err:   fmt.Errorf("(%d,%d) is outside grid 0 0 .. %s", p.X, p.Y, g),
		}
	}
	return p, nil
}
