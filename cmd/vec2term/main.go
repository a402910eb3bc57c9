package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"vector2d/internal/chase"
	"vector2d/internal/logging"
	"vector2d/vec2"
)

const (
	// A terminal cell is about twice as tall as it is wide. World space uses
	// square units with y pointing up; one row spans cellAspect units.
	cellAspect  = 2
	catchRadius = 1.5
	trailDots   = 6
	sampleRate  = beep.SampleRate(44100)
)

var (
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	chaserStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	trailStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x66, 0x33, 0x33))
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

type Game struct {
	screen        tcell.Screen
	width, height int
	cfg           config

	player vec2.Vector2D
	chaser vec2.Vector2D
	caught bool

	catches int

	audioInit bool
}

func NewGame(screen tcell.Screen, cfg config) *Game {
	g := &Game{screen: screen, cfg: cfg}
	g.width, g.height = screen.Size()
	g.player = g.fromCell(g.width/2, g.height/2)
	g.chaser = chase.Farthest(g.player, g.corners()...)
	return g
}

func (g *Game) initAudio() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	g.audioInit = true
	return nil
}

func (g *Game) playCatchSound() {
	if !g.audioInit {
		return
	}
	sine, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		log.Printf("catch tone: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(80*time.Millisecond), sine))
}

// fromCell returns the world position of the centre of a playfield cell.
// Row 0 holds the status line.
func (g *Game) fromCell(col, row int) vec2.Vector2D {
	p := vec2.New(float32(col), float32(g.height-1-row))
	p.SetScaleVector(vec2.New(1, cellAspect))
	return p
}

func (g *Game) toCell(p vec2.Vector2D) (col, row int) {
	p.SetScaleVector(vec2.New(1, 1.0/cellAspect))
	col = int(math.Round(float64(p.X)))
	row = g.height - 1 - int(math.Round(float64(p.Y)))
	return col, row
}

func (g *Game) corners() []vec2.Vector2D {
	return []vec2.Vector2D{
		g.fromCell(0, 1),
		g.fromCell(g.width-1, 1),
		g.fromCell(0, g.height-1),
		g.fromCell(g.width-1, g.height-1),
	}
}

// clamp keeps p inside the playfield.
func (g *Game) clamp(p vec2.Vector2D) vec2.Vector2D {
	lo, hi := g.fromCell(0, g.height-1), g.fromCell(g.width-1, 1)
	p.X = min(max(p.X, lo.X), hi.X)
	p.Y = min(max(p.Y, lo.Y), hi.Y)
	return p
}

func (g *Game) movePlayer(dir vec2.Vector2D) {
	step := vec2.Product(dir, vec2.New(1, cellAspect))
	g.player = g.clamp(vec2.Sum(g.player, step))
}

// tick advances the chaser by dt seconds and scores a catch when it reaches
// the player. A caught chaser restarts from the corner farthest away.
func (g *Game) tick(dt float32) {
	g.chaser, _ = chase.Step(g.chaser, g.player, float32(g.cfg.speed)*dt)

	caught := vec2.Distance(g.chaser, g.player) <= catchRadius
	if caught && !g.caught {
		g.catches++
		log.Printf("caught at %v (%d)", g.player, g.catches)
		g.playCatchSound()
		g.chaser = chase.Farthest(g.player, g.corners()...)
		caught = vec2.Distance(g.chaser, g.player) <= catchRadius
	}
	g.caught = caught
}

func (g *Game) handleResize() {
	w, h := g.screen.Size()
	if w == g.width && h == g.height {
		return
	}
	// Keep both actors on the same cells relative to the bottom-left corner.
	g.width, g.height = w, h
	g.player = g.clamp(g.player)
	g.chaser = g.clamp(g.chaser)
}

func (g *Game) draw() {
	g.screen.Clear()

	for i := 1; i < trailDots; i++ {
		p := vec2.Lerp(g.chaser, g.player, float32(i)/trailDots)
		col, row := g.toCell(p)
		g.screen.SetContent(col, row, '·', nil, trailStyle)
	}

	col, row := g.toCell(g.chaser)
	g.screen.SetContent(col, row, 'X', nil, chaserStyle)
	col, row = g.toCell(g.player)
	g.screen.SetContent(col, row, '@', nil, playerStyle)

	status := fmt.Sprintf(" catches %d  distance %.1f  heading %v  arrows/hjkl move  esc quit ",
		g.catches, vec2.Distance(g.chaser, g.player), chase.Heading(g.chaser, g.player))
	runes := []rune(status)
	for x := 0; x < g.width; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		g.screen.SetContent(x, 0, r, nil, statusStyle)
	}

	g.screen.Show()
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.movePlayer(vec2.Left())
		case tcell.KeyRight:
			g.movePlayer(vec2.Right())
		case tcell.KeyUp:
			g.movePlayer(vec2.Up())
		case tcell.KeyDown:
			g.movePlayer(vec2.Down())
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'h':
				g.movePlayer(vec2.Left())
			case 'l':
				g.movePlayer(vec2.Right())
			case 'k':
				g.movePlayer(vec2.Up())
			case 'j':
				g.movePlayer(vec2.Down())
			case 'q':
				return false
			}
		}

	case *tcell.EventResize:
		g.handleResize()
	}

	return true
}

func (g *Game) run() {
	ticker := time.NewTicker(g.cfg.tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			g.tick(float32(now.Sub(last).Seconds()))
			last = now
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	if g.audioInit {
		speaker.Close()
	}
	g.screen.Fini()
}

func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(logging.DefaultDir, "vec2term", cfg.debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}

	game := NewGame(screen, cfg)
	defer game.cleanup()

	if !cfg.mute {
		if err := game.initAudio(); err != nil {
			// Non-fatal, the chase runs without sound
			log.Printf("audio disabled: %v", err)
		}
	}

	game.run()
	log.Printf("exit after %d catches", game.catches)
	return nil
}

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vec2term: %v\n", err)
		os.Exit(1)
	}
}
