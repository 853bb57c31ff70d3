package runner

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/jungle-runner/internal/config"
	"github.com/vovakirdan/jungle-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerBodyChar = '█'
	PlayerHeadChar = '◉'
	StoneChar      = '▆'
	LogChar        = '▬'
	HoleChar       = '▒'
	BananaChar     = ')'
	GroundTopChar  = '▀'
	GroundChar     = '░'
	SoilChar       = '▓'
)

// foliage is the repeating canopy pattern of each parallax layer, nearest first.
var foliage = [...]struct {
	pattern string
	color   core.Color
}{
	{"♣♣ ♠♣  ♣♠♠ ", core.ColorFoliageNear},
	{"♠  ♣♣♠   ♣ ", core.ColorFoliageMid},
	{" ^   ^^  ^ ", core.ColorFoliageFar},
}

// foliagePeriod is the world-unit width of one pattern glyph.
const foliagePeriod = 20.0

// Game binds a Session to the terminal platform: it seeds the random source,
// forwards commands and paints snapshots into a screen buffer.
type Game struct {
	cfg     config.RunnerConfig
	opts    []Option
	session *Session
	runtime core.RuntimeConfig
}

// New creates a runner game. Options are forwarded to every Session it creates.
func New(cfg config.RunnerConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg, opts: opts}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the identifier scores are stored under.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Jungle Runner"
}

// Reset discards the current session and starts a fresh one in Idle.
// A zero seed draws one from the clock.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := append([]Option{WithRand(rand.New(rand.NewSource(seed)))}, g.opts...)
	g.session = NewSession(g.cfg, opts...)
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Apply forwards a single command to the state machine.
func (g *Game) Apply(cmd core.Command) bool {
	return g.session.Apply(cmd)
}

// Step applies the commands queued in the frame, then ticks the session.
func (g *Game) Step(in *core.InputFrame, nowMs float64) TickResult {
	for _, cmd := range in.Drain() {
		g.session.Apply(cmd)
	}
	return g.session.Tick(TickInput{CurrentTimeMs: nowMs})
}

// Snapshot returns the current read-only view of the session.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Render draws the current snapshot to the screen, scaling world units to cells.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.session.Snapshot(), &g.cfg)
}

// viewport converts world coordinates to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, cfg *config.RunnerConfig) viewport {
	return viewport{
		sx: float64(dst.Width()) / cfg.Screen.Width,
		sy: float64(dst.Height()) / cfg.Screen.Height,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// cells maps a world rectangle to a cell rectangle at least one cell in size.
func (v viewport) cells(r core.RectF) core.Rect {
	x, y := v.col(r.X), v.row(r.Y)
	w := core.Max(v.col(r.Right())-x, 1)
	h := core.Max(v.row(r.Bottom())-y, 1)
	return core.NewRect(x, y, w, h)
}

// RenderSnapshot paints a snapshot. It never touches the simulation, so any
// observer holding a Snapshot can draw it.
func RenderSnapshot(dst *core.Screen, snap Snapshot, cfg *config.RunnerConfig) {
	dst.Clear()
	vp := newViewport(dst, cfg)

	for _, e := range snap.Entities {
		if b, ok := e.Body.(*BackgroundBody); ok {
			drawBackground(dst, vp, b, cfg)
		}
	}
	for _, e := range snap.Entities {
		if b, ok := e.Body.(*GroundBody); ok {
			drawGround(dst, vp, b, cfg)
		}
	}
	for _, e := range snap.Entities {
		switch b := e.Body.(type) {
		case *ObstacleBody:
			drawObstacle(dst, vp, b, cfg)
		case *CollectibleBody:
			drawBanana(dst, vp, b, cfg)
		}
	}
	for _, e := range snap.Entities {
		if b, ok := e.Body.(*PlayerBody); ok {
			drawPlayer(dst, vp, b, cfg)
		}
	}

	drawHUD(dst, snap)

	switch snap.State {
	case StateIdle:
		drawCenteredMessage(dst, "JUNGLE RUNNER",
			"Enter: start   Space: jump   S: slide",
			fmt.Sprintf("Best: %d", snap.HighScore))
	case StatePaused:
		drawCenteredMessage(dst, "PAUSED", "P: resume   H: home")
	case StateGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.HighScore),
			"R: restart   H: home")
	}
}

// drawBackground paints one canopy band. Tiles span twice the screen width so
// a tile wrapped back to 0 still covers the view.
func drawBackground(dst *core.Screen, vp viewport, b *BackgroundBody, cfg *config.RunnerConfig) {
	idx := core.Clamp(b.Layer-1, 0, len(foliage)-1)
	layer := foliage[idx]
	runes := []rune(layer.pattern)

	// Far layers sit higher on the screen.
	bandTop := cfg.GroundY() * (0.15 + 0.2*float64(len(foliage)-1-idx))
	row := vp.row(bandTop)
	width := cfg.Screen.Width * 2

	for c := 0; c < dst.Width(); c++ {
		wx := float64(c) / vp.sx
		offset := wx - b.Position.X
		if offset < 0 || offset >= width {
			continue
		}
		r := runes[int(offset/foliagePeriod)%len(runes)]
		if r != ' ' {
			dst.SetColored(c, row, r, layer.color)
		}
	}
}

func drawGround(dst *core.Screen, vp viewport, g *GroundBody, cfg *config.RunnerConfig) {
	top := vp.row(g.Position.Y)
	width := cfg.Screen.Width * 2

	for c := 0; c < dst.Width(); c++ {
		wx := float64(c) / vp.sx
		offset := wx - g.Position.X
		if offset < 0 || offset >= width {
			continue
		}
		dst.SetColored(c, top, GroundTopChar, core.ColorGround)
		fill := SoilChar
		if int(offset/foliagePeriod)%4 == 0 {
			fill = GroundChar
		}
		for y := top + 1; y < dst.Height(); y++ {
			dst.SetColored(c, y, fill, core.ColorGround)
		}
	}
}

func drawObstacle(dst *core.Screen, vp viewport, o *ObstacleBody, cfg *config.RunnerConfig) {
	r := vp.cells(ObstacleRect(o, cfg))
	switch o.Type {
	case ObstacleStone:
		dst.DrawRect(r, StoneChar, core.ColorStone)
	case ObstacleLog:
		dst.DrawRect(r, LogChar, core.ColorLog)
	case ObstacleHole:
		dst.DrawRect(r, HoleChar, core.ColorHole)
	}
}

func drawBanana(dst *core.Screen, vp viewport, c *CollectibleBody, cfg *config.RunnerConfig) {
	rect := CollectibleRect(c, cfg)
	rect.Y += c.AnimationPhase
	dst.DrawRect(vp.cells(rect), BananaChar, core.ColorBanana)
}

func drawPlayer(dst *core.Screen, vp viewport, p *PlayerBody, cfg *config.RunnerConfig) {
	r := vp.cells(PlayerRect(p, cfg))
	dst.DrawRect(r, PlayerBodyChar, core.ColorPlayer)
	if !p.IsSliding {
		dst.SetColored(r.X+r.W/2, r.Y, PlayerHeadChar, core.ColorPlayer)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorHUD)
	best := fmt.Sprintf(" Best: %d ", snap.HighScore)
	dst.DrawTextColored(dst.Width()-len(best)-2, 0, best, core.ColorHUD)
}

// drawCenteredMessage draws a message box in the center of the screen, with a
// rule between the title and the lines.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, title, core.ColorHUD)
	dst.DrawHLine(boxX+1, boxY+2, boxW-2, '─', core.ColorDefault)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorDefault)
	}
}
