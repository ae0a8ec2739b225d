package mars

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Instruction is a single decoded command character.
type Instruction uint8

const (
	Unrecognized Instruction = iota
	TurnLeft
	TurnRight
	MoveForward
)

func (i Instruction) String() string {
	switch i {
	case TurnLeft:
		return "L"
	case TurnRight:
		return "R"
	case MoveForward:
		return "F"
	}
	return "?"
}

var instructionLexer = mustInstructionLexer()

func mustInstructionLexer() *lexmachine.Lexer {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`L`), instrAction(TurnLeft))
	lx.Add([]byte(`R`), instrAction(TurnRight))
	lx.Add([]byte(`F`), instrAction(MoveForward))
	// anything else is kept as a no-op so positions stay aligned
	lx.Add([]byte(`[^LRF]`), instrAction(Unrecognized))
	if err := lx.Compile(); err != nil {
		panic(err)
	}
	return lx
}

func instrAction(kind Instruction) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return kind, nil
	}
}

// Lex decodes an instruction line. It never fails: bytes that are not
// L, R or F come back as Unrecognized.
func Lex(instructions string) []Instruction {
	out := make([]Instruction, 0, len(instructions))
	if instructions == "" {
		return out
	}
	scanner, err := instructionLexer.Scanner([]byte(instructions))
	if err != nil {
		for range instructions {
			out = append(out, Unrecognized)
		}
		return out
	}
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			scanner.TC = ui.FailTC
			out = append(out, Unrecognized)
			continue
		}
		if err != nil {
			break
		}
		out = append(out, tok.(Instruction))
	}
	return out
}
