package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/noir/internal/toggle"
)

// Observer is notified after every drawn frame.
type Observer interface {
	OnFrame(f Frame)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(f Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

// Region is the canvas area the image is stretched into.
type Region struct {
	X, Y, Width, Height int
}

type Runner struct {
	state     *State
	canvas    Canvas
	region    Region
	observers []Observer
}

func NewRunner(st *State, canvas Canvas, region Region) *Runner {
	return &Runner{
		state:     st,
		canvas:    canvas,
		region:    region,
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// SetRegion changes where subsequent frames are drawn.
func (r *Runner) SetRegion(region Region) { r.region = region }

// Step runs a single frame: resolve the mode, draw, notify.
func (r *Runner) Step() Frame {
	f := r.state.Next()
	if r.canvas != nil {
		r.canvas.Draw(f.Buffer, r.region.X, r.region.Y, r.region.Width, r.region.Height)
	}
	for _, obs := range r.observers {
		obs.OnFrame(f)
	}
	return f
}

// Run steps up to frames times, or until ctx is done or more returns false.
// A nil more never stops the loop on its own. frames <= 0 means unbounded.
func (r *Runner) Run(ctx context.Context, frames int, more func() bool) (int, error) {
	if frames <= 0 && more == nil {
		if _, ok := ctx.Deadline(); !ok && ctx.Done() == nil {
			return 0, errors.New("session: unbounded run needs a stop condition")
		}
	}

	n := 0
	for frames <= 0 || n < frames {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}
		if more != nil && !more() {
			return n, nil
		}
		r.Step()
		n++
	}
	return n, nil
}

// Timeline records the frames at which the presented mode changed.
type Timeline struct {
	Modes   []toggle.Mode
	Toggles []uint64
}

func (t *Timeline) OnFrame(f Frame) {
	t.Modes = append(t.Modes, f.Mode)
	if f.Toggled {
		t.Toggles = append(t.Toggles, f.Index)
	}
}

func (t *Timeline) String() string {
	return fmt.Sprintf("%d frames, %d toggles", len(t.Modes), len(t.Toggles))
}
