// Package toggle implements the frame-count driven color/grayscale switch.
package toggle

// Mode is the active presentation.
type Mode bool

const (
	Color     Mode = false
	Grayscale Mode = true
)

func (m Mode) String() string {
	if m == Grayscale {
		return "grayscale"
	}
	return "color"
}

// Scheduler flips between Color and Grayscale every period frames. It is not
// safe for concurrent use; a single frame loop owns it.
type Scheduler struct {
	period  int
	variant Variant
	counter int
	frames  uint64
	mode    Mode
}

// New validates period and returns a scheduler showing Color.
func New(period int, variant Variant) (*Scheduler, error) {
	if period <= 0 {
		return nil, &ConfigurationError{Field: "period", Value: period, Wrapped: ErrInvalidPeriod}
	}
	if _, ok := variantNames[variant]; !ok {
		return nil, &ConfigurationError{Field: "variant", Value: int(variant), Wrapped: ErrUnknownVariant}
	}
	return &Scheduler{period: period, variant: variant, mode: Color}, nil
}

func (s *Scheduler) Period() int      { return s.period }
func (s *Scheduler) Variant() Variant { return s.variant }
func (s *Scheduler) Mode() Mode       { return s.mode }

// Frames returns how many times Advance has been called.
func (s *Scheduler) Frames() uint64 { return s.frames }

// Advance moves the counter by one frame and reports whether the mode
// flipped.
func (s *Scheduler) Advance() bool {
	s.frames++

	switch s.variant {
	case Modulo:
		// counter stays reduced mod period, the flip condition is unchanged
		flip := s.counter == 0
		if flip {
			s.mode = !s.mode
		}
		s.counter = (s.counter + 1) % s.period
		return flip
	default:
		s.counter++
		if s.counter == s.period {
			s.mode = !s.mode
			s.counter = 0
			return true
		}
		return false
	}
}

// Frame resolves the mode to present for the current frame and advances the
// scheduler. Threshold draws before counting, so the first flip is visible
// on frame P. Modulo counts before drawing, so frame 0 is already flipped.
func (s *Scheduler) Frame() Mode {
	if s.variant == Modulo {
		s.Advance()
		return s.mode
	}
	m := s.mode
	s.Advance()
	return m
}
