package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/san-kum/noir/internal/config"
	"github.com/san-kum/noir/internal/pixel"
	"github.com/san-kum/noir/internal/session"
)

var ColBg = rl.NewColor(10, 10, 10, 255)

type App struct {
	Config *config.Config
	State  *session.State
	Runner *session.Runner

	textures map[*pixel.Buffer]rl.Texture2D
	log      *zap.Logger
}

// initWindow opens the canvas at the configured size and frame rate.
func initWindow(cfg *config.Config) {
	rl.InitWindow(int32(cfg.Canvas.Width), int32(cfg.Canvas.Height), cfg.Title)
	rl.SetTargetFPS(int32(cfg.FPS))
}

// NewApp uploads both cached buffers as textures so no frame pays for an
// upload. It must be called after the window exists.
func NewApp(cfg *config.Config, st *session.State, log *zap.Logger) *App {
	app := &App{
		Config:   cfg,
		State:    st,
		textures: make(map[*pixel.Buffer]rl.Texture2D, 2),
		log:      log,
	}
	app.upload(st.Original)
	app.upload(st.Grayscale)

	app.Runner = session.NewRunner(st, app, session.Region{
		Width:  cfg.Canvas.Width,
		Height: cfg.Canvas.Height,
	})
	app.Runner.AddObserver(session.ObserverFunc(func(f session.Frame) {
		if f.Toggled {
			rl.SetWindowTitle(fmt.Sprintf("%s (%s)", cfg.Title, f.Mode))
		}
	}))
	return app
}

// Run blocks until the window is closed.
func Run(cfg *config.Config, st *session.State, log *zap.Logger) {
	initWindow(cfg)
	defer rl.CloseWindow()

	app := NewApp(cfg, st, log)
	defer app.Unload()

	app.RunLoop()
	log.Info("Window closed", zap.Uint64("frames", st.Ticks()))
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(ColBg)
		a.Runner.Step()
		rl.EndDrawing()
	}
}

func (a *App) Unload() {
	for buf, tex := range a.textures {
		rl.UnloadTexture(tex)
		delete(a.textures, buf)
	}
}
