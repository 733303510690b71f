package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/noir/internal/asset"
	"github.com/san-kum/noir/internal/config"
	"github.com/san-kum/noir/internal/pixel"
	"github.com/san-kum/noir/internal/toggle"
)

// Loader resolves an asset path into a buffer, e.g. asset.Load.
type Loader func(path string) (*pixel.Buffer, asset.Info, error)

// Canvas draws a buffer stretched into the given region.
type Canvas interface {
	Draw(buf *pixel.Buffer, x, y, width, height int)
}

// Frame is the outcome of one tick.
type Frame struct {
	Index   uint64
	Mode    toggle.Mode
	Buffer  *pixel.Buffer
	Toggled bool
}

type State struct {
	Original  *pixel.Buffer
	Grayscale *pixel.Buffer
	Toggle    *toggle.Scheduler

	tick uint64
	last toggle.Mode
	log  *zap.Logger
}

// Init loads the asset, derives its grayscale rendition and configures the
// scheduler. A nil logger disables logging.
func Init(cfg *config.Config, load Loader, log *zap.Logger) (*State, error) {
	if log == nil {
		log = zap.NewNop()
	}

	variant, err := toggle.ParseVariant(cfg.Toggle.Variant)
	if err != nil {
		return nil, err
	}
	sched, err := toggle.New(cfg.Toggle.Period, variant)
	if err != nil {
		return nil, err
	}

	orig, info, err := load(cfg.Asset)
	if err != nil {
		return nil, fmt.Errorf("unable to load image: %w", err)
	}
	if orig == nil {
		return nil, fmt.Errorf("unable to load image: %w",
			&asset.LoadError{Path: cfg.Asset, Wrapped: errors.New("loader returned no buffer")})
	}
	log.Info("Image loaded",
		zap.String("path", cfg.Asset),
		zap.String("format", info.Format),
		zap.Stringer("size", orig))

	return newState(orig, sched, log), nil
}

// New builds a state around an already loaded buffer. A nil buffer is
// treated as empty.
func New(orig *pixel.Buffer, sched *toggle.Scheduler, log *zap.Logger) *State {
	if orig == nil {
		orig = pixel.New(0, 0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return newState(orig, sched, log)
}

func newState(orig *pixel.Buffer, sched *toggle.Scheduler, log *zap.Logger) *State {
	gray := pixel.Convert(orig)
	if !gray.SameSize(orig) {
		panic(fmt.Sprintf("session: grayscale buffer %s does not match original %s", gray, orig))
	}
	if !pixel.IsGrayscale(gray) {
		panic("session: converted buffer has unequal color channels")
	}
	log.Debug("Grayscale derived", zap.Stringer("size", gray))
	log.Info("Toggle configured",
		zap.Int("period", sched.Period()),
		zap.Stringer("variant", sched.Variant()))

	return &State{
		Original:  orig,
		Grayscale: gray,
		Toggle:    sched,
		last:      sched.Mode(),
		log:       log,
	}
}

// Next advances one tick. The returned buffer is fixed for the whole frame.
func (s *State) Next() Frame {
	mode := s.Toggle.Frame()
	f := Frame{
		Index:   s.tick,
		Mode:    mode,
		Buffer:  s.Buffer(mode),
		Toggled: mode != s.last,
	}
	if f.Toggled {
		s.log.Debug("Mode toggled", zap.Uint64("frame", f.Index), zap.Stringer("mode", mode))
	}
	s.last = mode
	s.tick++
	return f
}

// Buffer returns the cached buffer for mode.
func (s *State) Buffer(mode toggle.Mode) *pixel.Buffer {
	if mode == toggle.Grayscale {
		return s.Grayscale
	}
	return s.Original
}

// Ticks returns the number of frames produced so far.
func (s *State) Ticks() uint64 { return s.tick }
