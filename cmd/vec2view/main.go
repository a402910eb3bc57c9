package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"vector2d/internal/chase"
	"vector2d/internal/logging"
	"vector2d/vec2"
)

const (
	hoverRadius = 10 // px around an anchor that counts as hovering it
	touchRadius = 12 // px around an anchor that the follower must enter to blip
	sampleRate  = 48000

	// Lerp mode sweeps t past both ends of [0, 1] so the clamp is visible
	// as a pause at each anchor.
	sweepMin  = -0.25
	sweepMax  = 1.25
	sweepRate = 0.5 // t per second
)

// Game holds the entire app state.
type Game struct {
	W, H int

	Anchors    []vec2.Vector2D
	lastInside []bool // whether the follower was touching each anchor last frame
	hoverIdx   int    // -1 if none hovered

	follower vec2.Vector2D
	target   vec2.Vector2D
	heading  vec2.Vector2D
	arrived  bool
	speed    float32 // px/s

	lerpMode bool
	lerpT    float32
	lerpDir  float32

	audioCtx *audio.Context // nil when muted
}

func NewGame(cfg config) *Game {
	w, h := float32(cfg.width), float32(cfg.height)
	anchors := []vec2.Vector2D{
		vec2.New(w*0.25, h*0.5),
		vec2.New(w*0.75, h*0.5),
		vec2.New(w*0.5, h*0.25),
		vec2.New(w*0.5, h*0.75),
	}

	g := &Game{
		W: cfg.width, H: cfg.height,
		Anchors:    anchors,
		lastInside: make([]bool, len(anchors)),
		hoverIdx:   -1,
		follower:   vec2.New(w*0.5, h*0.5),
		heading:    vec2.Right(),
		speed:      float32(cfg.speed),
		lerpDir:    1,
	}
	g.target = g.follower
	if !cfg.mute {
		g.audioCtx = audio.NewContext(sampleRate)
	}
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := float32(1.0 / 60.0) // Ebiten Update is 60 FPS logic

	mx, my := ebiten.CursorPosition()
	cursor := vec2.New(float32(mx), float32(my))
	g.updateHover(cursor)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleAnchor(cursor)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.lerpMode = !g.lerpMode
		log.Printf("lerp mode %v", g.lerpMode)
	}

	// Up/Down adjust speed additively
	const accel = 240 // px/s^2
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.speed += accel * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.speed = max(0, g.speed-accel*dt)
	}

	g.advance(dt, cursor)
	return nil
}

// advance moves the follower one tick toward target, or along the anchor
// sweep in lerp mode, and fires blips for new arrivals and touches.
func (g *Game) advance(dt float32, target vec2.Vector2D) {
	g.target = target

	if g.lerpMode && len(g.Anchors) >= 2 {
		g.lerpT += g.lerpDir * sweepRate * dt
		switch {
		case g.lerpT > sweepMax:
			g.lerpT, g.lerpDir = sweepMax, -1
		case g.lerpT < sweepMin:
			g.lerpT, g.lerpDir = sweepMin, 1
		}
		prev := g.follower
		g.follower = vec2.Lerp(g.Anchors[0], g.Anchors[1], g.lerpT)
		if h := chase.Heading(prev, g.follower); !h.Equals(vec2.Zero()) {
			g.heading = h
		}
	} else {
		if h := chase.Heading(g.follower, target); !h.Equals(vec2.Zero()) {
			g.heading = h
		}
		pos, arrived := chase.Step(g.follower, target, g.speed*dt)
		if arrived && !g.arrived {
			log.Printf("follower reached %v", pos)
			g.playBlip(pos)
		}
		g.follower, g.arrived = pos, arrived
	}

	for i, a := range g.Anchors {
		inside := vec2.Distance(g.follower, a) <= touchRadius
		if inside && !g.lastInside[i] {
			g.playBlip(a)
		}
		g.lastInside[i] = inside
	}
}

func (g *Game) updateHover(cursor vec2.Vector2D) {
	g.hoverIdx = -1
	best := float32(hoverRadius)
	for i, a := range g.Anchors {
		if d := vec2.Distance(a, cursor); d <= best {
			best = d
			g.hoverIdx = i
		}
	}
}

// toggleAnchor removes the hovered anchor, or adds one at p when none is
// hovered.
func (g *Game) toggleAnchor(p vec2.Vector2D) {
	if g.hoverIdx >= 0 {
		idx := g.hoverIdx
		log.Printf("remove anchor %v", g.Anchors[idx])
		g.Anchors = append(g.Anchors[:idx], g.Anchors[idx+1:]...)
		g.lastInside = append(g.lastInside[:idx], g.lastInside[idx+1:]...)
		g.hoverIdx = -1
		return
	}
	log.Printf("add anchor %v", p)
	g.Anchors = append(g.Anchors, vec2.Copy(p))
	g.lastInside = append(g.lastInside, false)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x0D, 0x0D, 0x10, 0xFF})

	if g.lerpMode && len(g.Anchors) >= 2 {
		drawLine(screen, g.Anchors[0], g.Anchors[1], 1, color.RGBA{0x44, 0x44, 0x88, 0xFF})
	} else {
		drawLine(screen, g.follower, g.target, 1, color.RGBA{0x33, 0x55, 0x33, 0xFF})
	}

	for i, a := range g.Anchors {
		if i == g.hoverIdx {
			drawCross(screen, a, 8, color.RGBA{0xFF, 0xFF, 0x66, 0xFF})
		} else {
			drawCross(screen, a, 6, color.RGBA{0xFF, 0xEE, 0xAA, 0xFF})
		}
	}

	vector.StrokeCircle(screen, g.follower.X, g.follower.Y, 6, 1.5, color.RGBA{0x66, 0xCC, 0xFF, 0xFF}, true)
	drawArrow(screen, g.follower, g.heading, 24, color.RGBA{0x66, 0xCC, 0xFF, 0xFF})

	offset := vec2.Difference(g.target, g.follower)
	msg := "Mouse: move target, click add/remove anchor.  Space: lerp mode  "
	msg += "Up/Down: speed +/-  ESC: quit\n"
	msg += fmt.Sprintf("follower %v  target %v  speed %.0f px/s\n", g.follower, g.target, g.speed)
	msg += fmt.Sprintf("offset %v  |offset| %.2f  |offset|^2 %.1f  distance %.2f\n",
		offset, offset.Magnitude(), offset.SquaredMagnitude(), vec2.Distance(g.follower, g.target))
	msg += fmt.Sprintf("heading %v  dot(right) %.3f  dot(down) %.3f",
		g.heading, vec2.Dot(g.heading, vec2.Right()), vec2.Dot(g.heading, vec2.Down()))
	if g.lerpMode {
		msg += fmt.Sprintf("\nlerp t %.2f (clamped to [0, 1])", g.lerpT)
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.W, g.H
}

func drawLine(dst *ebiten.Image, a, b vec2.Vector2D, width float32, col color.Color) {
	vector.StrokeLine(dst, a.X, a.Y, b.X, b.Y, width, col, true)
}

func drawCross(dst *ebiten.Image, p vec2.Vector2D, size float32, col color.Color) {
	h := vec2.Scaled(vec2.Right(), size)
	v := vec2.Scaled(vec2.Up(), size)
	drawLine(dst, vec2.Difference(p, h), vec2.Sum(p, h), 1.5, col)
	drawLine(dst, vec2.Difference(p, v), vec2.Sum(p, v), 1.5, col)
}

// drawArrow draws a line of length size from p along the unit vector dir,
// with a two-stroke head.
func drawArrow(dst *ebiten.Image, p, dir vec2.Vector2D, size float32, col color.Color) {
	tip := vec2.Sum(p, vec2.Scaled(dir, size))
	back := vec2.Difference(tip, vec2.Scaled(dir, size/3))
	side := vec2.Scaled(dir.Perp(), size/5)
	drawLine(dst, p, tip, 1.5, col)
	drawLine(dst, tip, vec2.Sum(back, side), 1.5, col)
	drawLine(dst, tip, vec2.Difference(back, side), 1.5, col)
}

func (g *Game) playBlip(at vec2.Vector2D) {
	if g.audioCtx == nil {
		return
	}
	pcm := generateBlipPCM(sampleRate, 0.06, 880, panFor(at.X/float32(g.W)))
	// A new player per trigger lets blips overlap; ebiten stops it once finished.
	g.audioCtx.NewPlayerFromBytes(pcm).Play()
}

func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(logging.DefaultDir, "vec2view", cfg.debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	game := NewGame(cfg)
	ebiten.SetWindowSize(game.W, game.H)
	ebiten.SetWindowTitle("vec2view")
	log.Printf("starting %dx%d speed=%g mute=%v", cfg.width, cfg.height, cfg.speed, cfg.mute)
	return errors.Wrap(ebiten.RunGame(game), "run game")
}

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vec2view: %v\n", err)
		os.Exit(1)
	}
}
