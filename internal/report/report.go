// Package report summarises a headless toggle run for the terminal.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/noir/internal/pixel"
	"github.com/san-kum/noir/internal/session"
	"github.com/san-kum/noir/internal/toggle"
)

type Schedule struct {
	Period  int
	Variant toggle.Variant
	Frames  int
	Modes   []toggle.Mode
	Toggles []uint64
}

// Simulate runs a fresh scheduler for frames ticks without loading any image.
func Simulate(ctx context.Context, period int, variant toggle.Variant, frames int) (*Schedule, error) {
	if frames < 1 {
		return nil, fmt.Errorf("report: frame count must be positive, got %d", frames)
	}
	sched, err := toggle.New(period, variant)
	if err != nil {
		return nil, err
	}

	tl := &session.Timeline{}
	r := session.NewRunner(session.New(pixel.New(1, 1), sched, nil), nil, session.Region{})
	r.AddObserver(tl)
	if _, err := r.Run(ctx, frames, nil); err != nil {
		return nil, err
	}

	return &Schedule{
		Period:  period,
		Variant: variant,
		Frames:  frames,
		Modes:   tl.Modes,
		Toggles: tl.Toggles,
	}, nil
}

// Series maps every frame to 0 (color) or 1 (grayscale).
func (s *Schedule) Series() []float64 {
	out := make([]float64, len(s.Modes))
	for i, m := range s.Modes {
		if m == toggle.Grayscale {
			out[i] = 1
		}
	}
	return out
}

// Plot renders the mode over time, width columns wide.
func (s *Schedule) Plot(width int) string {
	if width < 1 {
		width = 70
	}
	return asciigraph.Plot(s.Series(),
		asciigraph.Height(4),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("mode over %d frames (0 color, 1 grayscale)", s.Frames)))
}

func (s *Schedule) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "period:  %d frames\n", s.Period)
	fmt.Fprintf(&sb, "variant: %s\n", s.Variant)
	fmt.Fprintf(&sb, "frames:  %d\n", s.Frames)
	fmt.Fprintf(&sb, "toggles: %d", len(s.Toggles))
	if len(s.Toggles) > 0 {
		parts := make([]string, 0, len(s.Toggles))
		for _, f := range s.Toggles {
			parts = append(parts, fmt.Sprint(f))
		}
		fmt.Fprintf(&sb, " at frames %s", strings.Join(parts, ", "))
	}
	sb.WriteString("\n")
	return sb.String()
}
