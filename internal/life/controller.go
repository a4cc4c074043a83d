package life

// Phase is the state of a Controller.
type Phase int

const (
	// PhaseEditing accepts cell toggles and ignores generation steps.
	PhaseEditing Phase = iota
	// PhaseRunning advances generations and ignores toggles.
	PhaseRunning
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "Editing"
	case PhaseRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// Stats tracks the progress of the current run.
type Stats struct {
	Generation        int
	Population        int
	InitialPopulation int
	PeakPopulation    int
	Births            int
	Deaths            int
	// StableAt is the first generation that changed nothing, or 0 while the
	// pattern is still evolving. Oscillators never settle.
	StableAt int
}

// RunSummary describes a finished run, from Start to Reset.
type RunSummary struct {
	InitialPopulation int
	Generations       int
	PeakPopulation    int
	FinalPopulation   int
	Births            int
	Deaths            int
	StableAt          int
}

// Controller drives one Life session: the live cells, the viewport over them
// and the Editing/Running state machine.
//
// A generation step never mutates the current set; it builds the next one and
// swaps it in, so a *CellSet obtained from Cells is never seen half-updated.
type Controller struct {
	cells *CellSet
	view  Viewport
	phase Phase
	stats Stats
}

// NewController creates a controller in the Editing phase with an empty grid.
func NewController(cfg Config, width, height int) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cells: NewCellSet(),
		view:  NewViewport(cfg, width, height),
		phase: PhaseEditing,
	}, nil
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Cells returns the current generation. Callers must not modify it.
func (c *Controller) Cells() *CellSet {
	return c.cells
}

// Viewport returns a copy of the current viewport state.
func (c *Controller) Viewport() Viewport {
	return c.view
}

// BlockSize returns the current block size.
func (c *Controller) BlockSize() int {
	return c.view.BlockSize()
}

// Stats returns the statistics of the current run.
func (c *Controller) Stats() Stats {
	s := c.stats
	s.Population = c.cells.Len()
	return s
}

// Start switches from Editing to Running. It reports false if already running.
func (c *Controller) Start() bool {
	if c.phase != PhaseEditing {
		return false
	}
	c.phase = PhaseRunning
	pop := c.cells.Len()
	c.stats = Stats{
		Population:        pop,
		InitialPopulation: pop,
		PeakPopulation:    pop,
	}
	return true
}

// Reset clears the grid, restores the default block size and returns to
// Editing. If a run was in progress its summary is returned with ok set.
func (c *Controller) Reset() (summary RunSummary, ok bool) {
	if c.phase == PhaseRunning {
		summary = RunSummary{
			InitialPopulation: c.stats.InitialPopulation,
			Generations:       c.stats.Generation,
			PeakPopulation:    c.stats.PeakPopulation,
			FinalPopulation:   c.cells.Len(),
			Births:            c.stats.Births,
			Deaths:            c.stats.Deaths,
			StableAt:          c.stats.StableAt,
		}
		ok = true
	}

	c.cells = NewCellSet()
	c.view.Reset()
	c.phase = PhaseEditing
	c.stats = Stats{}
	return summary, ok
}

// Toggle flips the cell under screen pixel p. Only valid while Editing; it
// reports false otherwise.
func (c *Controller) Toggle(p Cell) bool {
	if c.phase != PhaseEditing {
		return false
	}
	c.cells.Toggle(c.view.Snap(p))
	return true
}

// Step advances one generation. Only valid while Running; ok is false otherwise.
func (c *Controller) Step() (t Transition, ok bool) {
	if c.phase != PhaseRunning {
		return Transition{}, false
	}

	counts := CountNeighbors(c.cells, c.view.BlockSize())
	next, t := NextGeneration(c.cells, counts)
	c.cells = next

	c.stats.Generation++
	c.stats.Births += t.Births
	c.stats.Deaths += t.Deaths
	c.stats.PeakPopulation = max(c.stats.PeakPopulation, next.Len())
	if t.Stable() && c.stats.StableAt == 0 {
		c.stats.StableAt = c.stats.Generation
	}
	return t, true
}

// Zoom applies one zoom step, repositioning every live cell so the cell at the
// viewport center stays put. It reports false at a zoom bound.
func (c *Controller) Zoom(dir ZoomDirection) bool {
	cells, changed := c.view.Zoom(dir, c.cells)
	if changed {
		c.cells = cells
	}
	return changed
}

// Scroll translates every live cell by (dx, dy).
func (c *Controller) Scroll(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	c.cells = Scroll(c.cells, dx, dy)
}

// Pan scrolls the content by one block, opposite to dir.
func (c *Controller) Pan(dir PanDirection) {
	c.Scroll(c.view.PanDelta(dir))
}

// Resize updates the pixel plane dimensions used for the zoom center.
func (c *Controller) Resize(width, height int) {
	c.view.Resize(width, height)
}
