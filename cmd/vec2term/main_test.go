package main

import (
	"flag"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"vector2d/vec2"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg, err := parseFlags([]string{"-mute"})
	require.NoError(t, err)
	return NewGame(screen, cfg)
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func char(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	require.Equal(t, config{tick: 16 * time.Millisecond, speed: 8}, cfg)

	_, err = parseFlags([]string{"-tick", "0s"})
	require.ErrorContains(t, err, "tick")

	_, err = parseFlags([]string{"-speed", "-3"})
	require.ErrorContains(t, err, "speed")

	_, err = parseFlags([]string{"-help"})
	require.True(t, errors.Is(err, flag.ErrHelp))
}

func TestCellMapping(t *testing.T) {
	g := newTestGame(t)

	require.Equal(t, vec2.New(0, 0), g.fromCell(0, 23))
	require.Equal(t, vec2.New(5, 44), g.fromCell(5, 1))

	for _, c := range [][2]int{{0, 1}, {79, 23}, {40, 12}, {3, 7}} {
		col, row := g.toCell(g.fromCell(c[0], c[1]))
		require.Equal(t, c, [2]int{col, row})
	}
}

func TestNewGamePlacesChaserInFarCorner(t *testing.T) {
	g := newTestGame(t)
	require.Equal(t, vec2.New(40, 22), g.player)
	require.Equal(t, vec2.New(0, 44), g.chaser)
}

func TestHandleInputMovesPlayer(t *testing.T) {
	g := newTestGame(t)
	start := g.player

	require.True(t, g.handleInput(key(tcell.KeyLeft)))
	require.True(t, g.handleInput(char('k')))
	require.Equal(t, vec2.Sum(start, vec2.New(-1, cellAspect)), g.player)

	col, row := g.toCell(g.player)
	require.Equal(t, 39, col)
	require.Equal(t, 11, row, "up moves one row toward the top")

	require.True(t, g.handleInput(key(tcell.KeyDown)))
	require.True(t, g.handleInput(char('l')))
	require.Equal(t, start, g.player)
}

func TestHandleInputClampsToPlayfield(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 100; i++ {
		g.handleInput(key(tcell.KeyUp))
		g.handleInput(key(tcell.KeyRight))
	}
	col, row := g.toCell(g.player)
	require.Equal(t, 79, col)
	require.Equal(t, 1, row, "row 0 is the status line")
}

func TestHandleInputQuit(t *testing.T) {
	g := newTestGame(t)
	require.False(t, g.handleInput(key(tcell.KeyEscape)))
	require.False(t, g.handleInput(key(tcell.KeyCtrlC)))
	require.False(t, g.handleInput(char('q')))
	require.True(t, g.handleInput(char('z')))
}

func TestTickChases(t *testing.T) {
	g := newTestGame(t)
	g.chaser = vec2.Sum(g.player, vec2.New(-20, 0))

	g.tick(0.5)
	require.Equal(t, vec2.Sum(g.player, vec2.New(-16, 0)), g.chaser)
	require.Zero(t, g.catches)
}

func TestTickScoresCatchAndRespawns(t *testing.T) {
	g := newTestGame(t)
	g.chaser = vec2.Sum(g.player, vec2.Right())

	g.tick(0)
	require.Equal(t, 1, g.catches)
	require.Equal(t, vec2.New(0, 44), g.chaser)
	require.False(t, g.caught)

	g.tick(0)
	require.Equal(t, 1, g.catches)
}

func TestResizeClampsActors(t *testing.T) {
	g := newTestGame(t)
	g.screen.(tcell.SimulationScreen).SetSize(40, 12)
	require.True(t, g.handleInput(tcell.NewEventResize(40, 12)))

	require.Equal(t, 40, g.width)
	require.Equal(t, 12, g.height)
	require.Equal(t, vec2.New(39, 20), g.player)
	require.Equal(t, vec2.New(0, 20), g.chaser)
}

func TestDraw(t *testing.T) {
	g := newTestGame(t)
	g.draw()

	col, row := g.toCell(g.player)
	r, _, _, _ := g.screen.GetContent(col, row)
	require.Equal(t, '@', r)

	col, row = g.toCell(g.chaser)
	r, _, _, _ = g.screen.GetContent(col, row)
	require.Equal(t, 'X', r)

	r, _, _, _ = g.screen.GetContent(1, 0)
	require.Equal(t, 'c', r)
}
