package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/san-kum/noir/internal/pixel"
)

func (a *App) upload(buf *pixel.Buffer) rl.Texture2D {
	if tex, ok := a.textures[buf]; ok {
		return tex
	}
	img := rl.NewImageFromImage(buf.Image())
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	a.textures[buf] = tex
	a.log.Debug("Texture uploaded", zap.Stringer("size", buf), zap.Uint32("id", tex.ID))
	return tex
}

// Draw stretches buf over the given screen rectangle.
func (a *App) Draw(buf *pixel.Buffer, x, y, width, height int) {
	if buf.Empty() {
		return
	}
	tex := a.upload(buf)
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dst := rl.NewRectangle(float32(x), float32(y), float32(width), float32(height))
	rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
}
