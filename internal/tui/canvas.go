package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/noir/internal/asset"
	"github.com/san-kum/noir/internal/pixel"
)

// upperHalf shows the top pixel as foreground and the bottom one as
// background, so one cell carries two rows.
const upperHalf = "▀"

type cacheKey struct {
	buf           *pixel.Buffer
	width, height int
	theme         string
}

// Canvas renders buffers as colored half-block cells. Rendered frames are
// cached per buffer and theme for the current size only, since the session
// only ever draws two buffers.
type Canvas struct {
	theme         Theme
	cache         map[cacheKey]string
	width, height int
	out           string
}

func NewCanvas(theme Theme) *Canvas {
	return &Canvas{theme: theme, cache: make(map[cacheKey]string)}
}

func (c *Canvas) SetTheme(t Theme) { c.theme = t }

// Draw renders buf into width columns and height terminal rows. x and y are
// ignored: the preview always fills the view from its top left corner.
func (c *Canvas) Draw(buf *pixel.Buffer, x, y, width, height int) {
	if width != c.width || height != c.height {
		clear(c.cache)
		c.width, c.height = width, height
	}
	key := cacheKey{buf: buf, width: width, height: height, theme: c.theme.Name}
	if s, ok := c.cache[key]; ok {
		c.out = s
		return
	}
	c.out = c.render(buf, width, height)
	c.cache[key] = c.out
}

func (c *Canvas) String() string { return c.out }

func (c *Canvas) render(buf *pixel.Buffer, width, height int) string {
	if width < 1 || height < 1 || buf.Empty() {
		return ""
	}
	scaled := asset.Stretch(buf, width, height*2)
	bg := c.theme.backdrop()

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			top := hex(scaled.At(col, row*2), bg)
			bottom := hex(scaled.At(col, row*2+1), bg)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(upperHalf))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// hex composites c over bg and returns it as #rrggbb.
func hex(c color.NRGBA, bg colorful.Color) string {
	if c.A == 0 {
		return bg.Hex()
	}
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	if c.A == 255 {
		return fg.Hex()
	}
	return bg.BlendRgb(fg, float64(c.A)/255).Hex()
}
