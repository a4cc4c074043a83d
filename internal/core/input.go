package core

import "time"

// Action represents a semantic input, abstracted from physical keys.
// Frontends translate their own key events into actions.
type Action int

const (
	ActionNone     Action = iota
	ActionConfirm         // Enter - start the run, or reset a running one
	ActionReset           // R - back to editing with an empty grid
	ActionZoomIn          // M, minus - halve the block size
	ActionZoomOut         // P, plus - double the block size
	ActionPanLeft         // Left arrow, H
	ActionPanRight        // Right arrow, L
	ActionPanUp           // Up arrow, K
	ActionPanDown         // Down arrow, J
	ActionQuit            // Q, Ctrl+C - exit
	ActionClick           // Pointer press, position in Event.Pos
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionReset:
		return "Reset"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionPanLeft:
		return "PanLeft"
	case ActionPanRight:
		return "PanRight"
	case ActionPanUp:
		return "PanUp"
	case ActionPanDown:
		return "PanDown"
	case ActionQuit:
		return "Quit"
	case ActionClick:
		return "Click"
	default:
		return "Unknown"
	}
}

// Event is one input in arrival order. Pos is only meaningful for clicks.
type Event struct {
	Action Action
	Pos    Point
}

// InputFrame collects the input gathered between two frames. Events keeps
// the arrival order; Actions answers "did this happen at all".
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Events holds every action and pointer press, oldest first. Click
	// positions are in pixel-plane coordinates.
	Events []Event

	// Time is the frame timestamp used for generation pacing.
	Time time.Time
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Events = append(f.Events, Event{Action: a})
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a pointer press at pixel (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Set(ActionClick)
	f.Events[len(f.Events)-1].Pos = Point{X: x, Y: y}
}

// Clicks returns the pointer presses of this frame, oldest first.
func (f InputFrame) Clicks() []Point {
	var clicks []Point
	for _, e := range f.Events {
		if e.Action == ActionClick {
			clicks = append(clicks, e.Pos)
		}
	}
	return clicks
}

// Clear resets all actions and events for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Events = f.Events[:0]
}
