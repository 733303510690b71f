package pixel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

type Buffer struct {
	img *image.NRGBA
}

// New returns a fully transparent black buffer. Negative dimensions are
// treated as zero.
func New(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// FromImage copies img into a new buffer anchored at the origin.
func FromImage(img image.Image) *Buffer {
	if img == nil {
		return New(0, 0)
	}
	return &Buffer{img: imaging.Clone(img)}
}

// FromSamples builds a buffer from row-major samples.
func FromSamples(width, height int, samples []color.NRGBA) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("pixel: negative dimensions %dx%d", width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("pixel: %d samples for %dx%d buffer", len(samples), width, height)
	}
	b := New(width, height)
	for i, c := range samples {
		off := i * 4
		b.img.Pix[off+0] = c.R
		b.img.Pix[off+1] = c.G
		b.img.Pix[off+2] = c.B
		b.img.Pix[off+3] = c.A
	}
	return b, nil
}

func (b *Buffer) Width() int  { return b.img.Rect.Dx() }
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

func (b *Buffer) Empty() bool { return b.Width() == 0 || b.Height() == 0 }

// SameSize reports whether both buffers have identical dimensions.
func (b *Buffer) SameSize(o *Buffer) bool {
	return b.Width() == o.Width() && b.Height() == o.Height()
}

// At returns the sample at (x, y). Out of range coordinates yield the zero
// sample.
func (b *Buffer) At(x, y int) color.NRGBA {
	return b.img.NRGBAAt(x, y)
}

// Samples returns a row-major copy of all samples.
func (b *Buffer) Samples() []color.NRGBA {
	w, h := b.Width(), b.Height()
	out := make([]color.NRGBA, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out = append(out, b.img.NRGBAAt(x, y))
		}
	}
	return out
}

// Image returns a copy of the buffer as a standard library image, suitable
// for handing to renderers that keep their own reference.
func (b *Buffer) Image() *image.NRGBA {
	return imaging.Clone(b.img)
}

// Equal reports whether both buffers have the same dimensions and samples.
func (b *Buffer) Equal(o *Buffer) bool {
	if !b.SameSize(o) {
		return false
	}
	w, h := b.Width(), b.Height()
	for y := 0; y < h; y++ {
		row := b.img.Pix[y*b.img.Stride : y*b.img.Stride+w*4]
		orow := o.img.Pix[y*o.img.Stride : y*o.img.Stride+w*4]
		for i := range row {
			if row[i] != orow[i] {
				return false
			}
		}
	}
	return true
}

func (b *Buffer) String() string {
	return fmt.Sprintf("%dx%d", b.Width(), b.Height())
}
