package selection

import "fmt"

// State enumerates the selector states. Committed is terminal.
type State int

const (
	StateTracking State = iota
	StateCommitted
)

func (s State) String() string {
	switch s {
	case StateTracking:
		return "tracking"
	case StateCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// OutcomeKind distinguishes the terminal answers. The zero value is None so an
// interaction that ends without a commit reports a cancel.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeChosen
	OutcomeDeadCenter
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeChosen:
		return "chosen"
	case OutcomeDeadCenter:
		return "dead-center"
	default:
		return "unknown"
	}
}

// Outcome is the single externally observed result of an interaction.
type Outcome struct {
	Kind  OutcomeKind
	Index int // valid for OutcomeChosen only
}

// None is the cancel outcome.
var None = Outcome{}

// DeadCenter is the outcome of a primary click inside the inner radius.
var DeadCenter = Outcome{Kind: OutcomeDeadCenter}

// Chosen returns the outcome for segment i.
func Chosen(i int) Outcome { return Outcome{Kind: OutcomeChosen, Index: i} }

// Code is the process output value: i for Chosen(i), -1 for None and
// segments for DeadCenter.
func (o Outcome) Code(segments int) int {
	switch o.Kind {
	case OutcomeChosen:
		return o.Index
	case OutcomeDeadCenter:
		return segments
	default:
		return -1
	}
}

func (o Outcome) String() string {
	if o.Kind == OutcomeChosen {
		return fmt.Sprintf("chosen(%d)", o.Index)
	}
	return o.Kind.String()
}

// Viewport is the framebuffer size for the frame an event was polled in.
type Viewport struct {
	Width, Height int
}

// Cursor is a raw pointer sample, top-left origin, y down.
type Cursor struct {
	X, Y float64
}

// Event is one entry of a polled input batch.
type Event interface{ isEvent() }

// Primary is the main pointer button press.
type Primary struct {
	Cursor   Cursor
	Viewport Viewport
}

// Secondary is the alternate (cancel) pointer button press.
type Secondary struct{}

// Dismiss is the quit key or a window close request.
type Dismiss struct{}

func (Primary) isEvent()   {}
func (Secondary) isEvent() {}
func (Dismiss) isEvent()   {}

// Listener is called on each state transition with the committed outcome.
type Listener func(prev, next State, outcome Outcome)
