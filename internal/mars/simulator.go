package mars

import "go.uber.org/zap"

// Simulator drives robots one after another over a shared grid.
type Simulator struct {
	Grid *Grid
	log  *zap.Logger
}

func NewSimulator(g *Grid, opts ...Option) *Simulator {
	return &Simulator{Grid: g, log: newOptions(opts).log}
}

// Execute runs instructions for r on g and returns r in its final state.
func Execute(r *Robot, instructions string, g *Grid) *Robot {
	return NewSimulator(g).Run(r, instructions)
}

// Run feeds every instruction to r in order. Once r is lost the rest of
// the line is skipped, turns included.
func (s *Simulator) Run(r *Robot, instructions string) *Robot {
	for i, ins := range Lex(instructions) {
		if r.Lost {
			break
		}
		s.step(r, ins, i)
	}
	s.log.Debug("robot finished",
		zap.Stringer("robot", r),
		zap.Bool("lost", r.Lost),
	)
	return r
}

func (s *Simulator) step(r *Robot, ins Instruction, at int) {
	switch ins {
	case TurnLeft:
		r.TurnLeft()
	case TurnRight:
		r.TurnRight()
	case MoveForward:
		x, y := r.Position()
		r.MoveForward(s.Grid)
		switch {
		case r.Lost:
			s.log.Debug("robot lost",
				zap.Int("x", x),
				zap.Int("y", y),
				zap.Stringer("heading", r.Heading),
				zap.Int("instruction", at),
			)
		case r.X == x && r.Y == y:
			s.log.Debug("move ignored at scent",
				zap.Int("x", x),
				zap.Int("y", y),
				zap.Stringer("heading", r.Heading),
				zap.Int("instruction", at),
			)
		}
	}
}
