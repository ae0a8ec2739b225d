package mars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestExecuteTurnAndMove(t *testing.T) {
	g := NewGrid(5, 3)
	// E, R -> S, F -> (1,0)
	r := Execute(NewRobot(1, 1, East), "RF", g)
	assert.Equal(t, "1 0 S", r.String())
	assert.False(t, r.Lost)
}

func TestExecuteForwardToEdge(t *testing.T) {
	g := NewGrid(5, 3)
	r := Execute(NewRobot(0, 0, North), "FFF", g)
	assert.Equal(t, "0 3 N", r.String())
	assert.False(t, r.Lost)
}

func TestExecuteUnknownCommandsIgnored(t *testing.T) {
	g := NewGrid(5, 3)
	r := Execute(NewRobot(2, 2, South), "FXAFL", g)
	assert.Equal(t, "2 0 E", r.String())
	assert.False(t, r.Lost)
}

func TestExecuteEmptyInstructions(t *testing.T) {
	g := NewGrid(5, 3)
	r := Execute(NewRobot(4, 2, West), "", g)
	assert.Equal(t, "4 2 W", r.String())
}

func TestExecuteLostRobotIsFrozen(t *testing.T) {
	g := NewGrid(5, 3)
	r := NewRobot(0, 3, North)
	got := Execute(r, "FRRFLLRF", g)
	require.Same(t, r, got)
	assert.True(t, r.Lost)
	assert.Equal(t, "0 3 N", r.String())
	assert.Equal(t, [][2]int{{0, 3}}, g.Scents())
}

func TestExecuteScentSavesLaterRobot(t *testing.T) {
	g := NewGrid(5, 3)
	first := Execute(NewRobot(0, 3, North), "F", g)
	require.True(t, first.Lost)
	require.True(t, g.HasScent(0, 3))

	second := Execute(NewRobot(0, 3, North), "F", g)
	assert.False(t, second.Lost)
	assert.Equal(t, "0 3 N", second.String())

	// the scent covers every heading out of the cell
	third := Execute(NewRobot(0, 3, West), "F", g)
	assert.False(t, third.Lost)
	assert.Equal(t, "0 3 W", third.String())
}

func TestSimulatorLogsEvents(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := NewGrid(1, 1)
	sim := NewSimulator(g, WithLogger(zap.New(core)))

	sim.Run(NewRobot(1, 1, East), "F")
	sim.Run(NewRobot(1, 1, East), "F")

	lost := logs.FilterMessage("robot lost").All()
	require.Len(t, lost, 1)
	assert.Equal(t, int64(1), lost[0].ContextMap()["x"])
	assert.Equal(t, 1, logs.FilterMessage("move ignored at scent").Len())
	assert.Equal(t, 2, logs.FilterMessage("robot finished").Len())
}
