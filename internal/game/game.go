// Package game adapts the Life engine to the frame-based frontends: it maps
// input actions onto the controller, paces generations and draws the grid
// into a character screen buffer.
package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// hudHeight is the number of screen rows reserved for the status line.
const hudHeight = 1

// Game implements a Game of Life session on a character screen.
type Game struct {
	cfg   config.LifeConfig
	ctrl  *life.Controller
	pacer *core.Pacer

	player  string
	screenW int
	screenH int
	planeW  int
	planeH  int

	frame     uint64
	startedAt time.Time
	lastTime  time.Time

	liveRune  rune
	liveColor core.Color
	gridColor core.Color
}

// New creates a game from a validated configuration.
func New(cfg config.LifeConfig) (*Game, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	rc := core.DefaultConfig()
	ctrl, err := life.NewController(cfg.Engine(), 0, 0)
	if err != nil {
		return nil, err
	}

	liveColor, _ := core.ParseColor(cfg.Display.LiveColor)
	gridColor, _ := core.ParseColor(cfg.Display.GridColor)

	g := &Game{
		cfg:       cfg,
		ctrl:      ctrl,
		pacer:     core.NewPacer(cfg.Timing.GenerationPeriod),
		liveRune:  cfg.Display.Rune(),
		liveColor: liveColor,
		gridColor: gridColor,
	}
	g.Reset(rc)
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "life"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Game of Life"
}

// Reset clears the grid and sizes the session for a new screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.player = cfg.Player
	if g.player == "" {
		g.player = core.DefaultConfig().Player
	}
	g.frame = 0
	g.startedAt = time.Time{}
	g.ctrl.Reset()
	g.pacer.Restart()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize changes the screen size in characters. Live cells are kept; the
// zoom center moves to the middle of the new grid area.
func (g *Game) Resize(width, height int) {
	g.screenW = max(width, 0)
	g.screenH = max(height, 0)
	rows := max(g.screenH-hudHeight, 0)
	g.ResizePlane(g.screenW*g.cfg.Display.PixelsPerColumn, rows*g.cfg.Display.PixelsPerRow)
}

// ResizePlane sets the pixel plane directly, for frontends that draw pixels
// themselves instead of rendering to a character screen.
func (g *Game) ResizePlane(width, height int) {
	g.planeW = max(width, 0)
	g.planeH = max(height, 0)
	g.ctrl.Resize(g.planeW, g.planeH)
}

// PixelAt converts a screen character position into the pixel it starts at.
func (g *Game) PixelAt(col, row int) (x, y int) {
	return col * g.cfg.Display.PixelsPerColumn, row * g.cfg.Display.PixelsPerRow
}

// Controller returns the underlying controller.
func (g *Game) Controller() *life.Controller {
	return g.ctrl
}

// Period returns the generation period.
func (g *Game) Period() time.Duration {
	return g.pacer.Period()
}

// Step processes one frame of input and advances a generation when one is due.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frame++
	now := input.Time
	if now.IsZero() {
		now = time.Now()
	}
	g.lastTime = now

	// Events are applied in arrival order: a click snaps at the block size
	// in force when it happened, and a click before Enter is still an edit.
	var finished *core.RunReport
	for _, ev := range input.Events {
		if report := g.apply(ev, now); report != nil {
			finished = report
		}
	}

	if g.ctrl.Phase() == life.PhaseRunning && g.pacer.Due(now) {
		g.ctrl.Step()
	}

	return core.StepResult{State: g.State(), Finished: finished}
}

// apply performs a single input event.
func (g *Game) apply(ev core.Event, now time.Time) *core.RunReport {
	switch ev.Action {
	case core.ActionReset:
		return g.reset(now)
	case core.ActionConfirm:
		if g.ctrl.Phase() == life.PhaseEditing {
			g.start(now)
			return nil
		}
		return g.reset(now)
	case core.ActionZoomIn:
		g.ctrl.Zoom(life.ZoomIn)
	case core.ActionZoomOut:
		g.ctrl.Zoom(life.ZoomOut)
	case core.ActionClick:
		// Clicks on the status line are not on the grid.
		if g.plane().Contains(ev.Pos.X, ev.Pos.Y) {
			g.ctrl.Toggle(life.Cell{X: ev.Pos.X, Y: ev.Pos.Y})
		}
	default:
		if dir, ok := panActions[ev.Action]; ok {
			g.ctrl.Pan(dir)
		}
	}
	return nil
}

// plane returns the pixel plane the grid occupies.
func (g *Game) plane() core.Rect {
	return core.NewRect(0, 0, g.planeW, g.planeH)
}

var panActions = map[core.Action]life.PanDirection{
	core.ActionPanLeft:  life.PanLeft,
	core.ActionPanRight: life.PanRight,
	core.ActionPanUp:    life.PanUp,
	core.ActionPanDown:  life.PanDown,
}

func (g *Game) start(now time.Time) {
	if !g.ctrl.Start() {
		return
	}
	g.startedAt = now
	g.pacer.Restart()
	g.pacer.Due(now) // arm: first generation one period from now
}

// reset returns to editing and reports the run it ended, if it produced at
// least one generation.
func (g *Game) reset(now time.Time) *core.RunReport {
	summary, ok := g.ctrl.Reset()
	g.pacer.Restart()
	startedAt := g.startedAt
	g.startedAt = time.Time{}
	if !ok || summary.Generations == 0 {
		return nil
	}
	return &core.RunReport{
		Player:            g.player,
		InitialPopulation: summary.InitialPopulation,
		Generations:       summary.Generations,
		PeakPopulation:    summary.PeakPopulation,
		FinalPopulation:   summary.FinalPopulation,
		Births:            summary.Births,
		Deaths:            summary.Deaths,
		StableAt:          summary.StableAt,
		Duration:          now.Sub(startedAt),
	}
}

// End finishes the session, typically on quit. It returns the report of the
// run in progress, or nil.
func (g *Game) End(now time.Time) *core.RunReport {
	if now.IsZero() {
		now = g.lastTime
	}
	return g.reset(now)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	stats := g.ctrl.Stats()
	return core.GameState{
		Running:    g.ctrl.Phase() == life.PhaseRunning,
		Generation: stats.Generation,
		Population: stats.Population,
		BlockSize:  g.ctrl.BlockSize(),
		StableAt:   stats.StableAt,
	}
}

// Render draws the grid and the status line to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() <= hudHeight {
		return
	}

	plane := core.NewRect(0, 0, dst.Width(), dst.Height()-hudHeight)
	ppc, ppr := g.cfg.Display.PixelsPerColumn, g.cfg.Display.PixelsPerRow
	block := g.ctrl.BlockSize()
	cellW, cellH := block/ppc, block/ppr

	if g.cfg.Display.Grid && cellW > 1 && cellH > 1 {
		g.renderGrid(dst, plane, cellW, cellH)
	}

	view := g.ctrl.Viewport()
	for c := range g.ctrl.Cells().All() {
		if !view.Visible(c) {
			continue
		}
		// Cells sit on block boundaries and blocks cover whole characters,
		// so the division is exact.
		r := core.NewRect(c.X/ppc, c.Y/ppr, cellW, cellH).Clip(plane)
		dst.DrawRect(r, g.liveRune, g.liveColor)
	}

	if g.ctrl.Phase() == life.PhaseEditing && g.ctrl.Cells().Len() == 0 {
		g.renderHint(dst, plane)
	}
	g.renderHUD(dst, plane.Bottom())
}

// renderGrid draws a dot at the top-left corner of every block.
func (g *Game) renderGrid(dst *core.Screen, plane core.Rect, cellW, cellH int) {
	for y := 0; y < plane.Bottom(); y += cellH {
		for x := 0; x < plane.Right(); x += cellW {
			dst.SetColor(x, y, '·', g.gridColor)
		}
	}
}

// renderHint draws a short usage box over an empty grid.
func (g *Game) renderHint(dst *core.Screen, plane core.Rect) {
	lines := []string{
		"Click cells to bring them to life",
		"Enter starts, Enter or R resets",
	}
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := core.NewRect((plane.W-w-4)/2, (plane.H-len(lines)-2)/2, w+4, len(lines)+2)
	if box.X < 0 || box.Y < 0 || box.Bottom() > plane.Bottom() {
		return
	}
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}

// renderHUD draws the status line at row y.
func (g *Game) renderHUD(dst *core.Screen, y int) {
	stats := g.ctrl.Stats()
	phase := g.ctrl.Phase()

	hint := "click: toggle  enter: run"
	color := core.ColorYellow
	if phase == life.PhaseRunning {
		hint = "enter/r: reset"
		color = core.ColorBrightGreen
	}

	status := phase.String()
	if stats.StableAt > 0 {
		status = fmt.Sprintf("Still since gen %d", stats.StableAt)
	}

	hud := fmt.Sprintf(" %s  Gen %d  Pop %d  Peak %d  Block %d  │ %s  m/p: zoom  arrows: pan  q: quit",
		status, stats.Generation, stats.Population, max(stats.PeakPopulation, stats.Population),
		g.ctrl.BlockSize(), hint)
	dst.DrawTextColor(0, y, hud, color)
}
