//go:build ebiten

package gui

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/game"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Window adapts a Life game to the ebiten.Game interface. One window pixel is
// one plane pixel.
type Window struct {
	game    *game.Game
	store   *storage.Store
	logger  *log.Logger
	palette Palette

	width  int
	height int
	state  core.GameState
}

func newWindow(g *game.Game, store *storage.Store, cfg config.LifeConfig, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		game:    g,
		store:   store,
		logger:  logger,
		palette: DefaultPalette(),
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
}

// Update polls input and advances the game by one frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := WindowInput{
		Enter:   inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Reset:   inpututil.IsKeyJustPressed(ebiten.KeyR),
		ZoomIn:  inpututil.IsKeyJustReleased(ebiten.KeyM) || inpututil.IsKeyJustReleased(ebiten.KeyMinus),
		ZoomOut: inpututil.IsKeyJustReleased(ebiten.KeyP) || inpututil.IsKeyJustReleased(ebiten.KeyEqual),
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:      ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Clicks = append(in.Clicks, core.Point{X: x, Y: y})
	}

	res := w.game.Step(in.Frame(time.Now()))
	w.state = res.State
	if res.Finished != nil {
		w.saveRun(*res.Finished)
	}
	return nil
}

// Draw renders the grid and the live cells.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(w.palette.Background)

	block := w.game.Controller().BlockSize()
	for _, x := range gridLines(w.width, block) {
		fillRect(screen, x, 0, 1, w.height, w.palette.Grid)
	}
	for _, y := range gridLines(w.height, block) {
		fillRect(screen, 0, y, w.width, 1, w.palette.Grid)
	}

	view := w.game.Controller().Viewport()
	for c := range w.game.Controller().Cells().All() {
		if view.Visible(c) {
			fillRect(screen, c.X, c.Y, block, block, w.palette.Live)
		}
	}

	status := life.PhaseEditing.String()
	switch {
	case w.state.StableAt > 0:
		status = fmt.Sprintf("still since gen %d", w.state.StableAt)
	case w.state.Running:
		status = life.PhaseRunning.String()
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  gen %d  pop %d  block %d",
		status, w.state.Generation, w.state.Population, block), 4, w.height-16)
}

// Layout returns the fixed logical screen size.
func (w *Window) Layout(int, int) (int, int) {
	return w.width, w.height
}

// finish records the run in progress, if any.
func (w *Window) finish() {
	if report := w.game.End(time.Now()); report != nil {
		w.saveRun(*report)
	}
}

// saveRun stores a finished run. Storage failures never stop the window.
func (w *Window) saveRun(report core.RunReport) {
	w.logger.Info("run finished",
		"generations", report.Generations,
		"peak", report.PeakPopulation,
		"stable_at", report.StableAt,
	)
	if w.store == nil {
		return
	}
	if _, err := w.store.SaveRun(report); err != nil {
		w.logger.Warn("could not save run", "error", err)
	}
}

func fillRect(dst *ebiten.Image, x, y, width, height int, clr color.Color) {
	r := image.Rect(x, y, x+width, y+height).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	dst.SubImage(r).(*ebiten.Image).Fill(clr)
}

// Run opens the window and blocks until it is closed.
func Run(g *game.Game, store *storage.Store, cfg config.LifeConfig, player string, logger *log.Logger) error {
	w := newWindow(g, store, cfg, logger)

	g.Reset(core.RuntimeConfig{TickRate: cfg.Timing.FrameRate, Player: player})
	g.ResizePlane(w.width, w.height)

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetTPS(cfg.Timing.FrameRate)

	err := ebiten.RunGame(w)
	w.finish()
	return err
}
