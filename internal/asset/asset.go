// Package asset loads the displayed image from disk into a pixel buffer.
package asset

import (
	"errors"
	"fmt"
	"os"

	// Decoders beyond the standard library set.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"

	"github.com/san-kum/noir/internal/pixel"
)

// ErrAssetLoad matches every LoadError.
var ErrAssetLoad = errors.New("asset: unable to load image")

// ErrNotImage indicates a readable file whose content is not a known image
// format.
var ErrNotImage = errors.New("asset: file is not an image")

// LoadError wraps the reason an image could not be loaded.
type LoadError struct {
	Path    string
	Wrapped error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrAssetLoad, e.Path, e.Wrapped)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrAssetLoad, e.Wrapped}
}

// Info describes a loaded asset.
type Info struct {
	Path   string
	Format string
	Width  int
	Height int
}

// headerSize is enough for every matcher filetype ships with.
const headerSize = 262

// Load decodes the image at path and describes it. EXIF orientation is
// applied so the buffer matches how viewers show the file. Every failure is a
// *LoadError.
func Load(path string) (*pixel.Buffer, Info, error) {
	info := Info{Path: path}

	format, err := sniff(path)
	if err != nil {
		return nil, info, &LoadError{Path: path, Wrapped: err}
	}
	info.Format = format

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, info, &LoadError{Path: path, Wrapped: err}
	}
	if img.Bounds().Empty() {
		return nil, info, &LoadError{Path: path, Wrapped: errors.New("image has no pixels")}
	}

	buf := pixel.FromImage(img)
	info.Width, info.Height = buf.Width(), buf.Height()
	return buf, info, nil
}

func sniff(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := f.Read(head)
	if n == 0 {
		if err == nil {
			err = errors.New("empty file")
		}
		return "", fmt.Errorf("%w: %w", ErrNotImage, err)
	}
	head = head[:n]

	if !filetype.IsImage(head) {
		return "", ErrNotImage
	}
	kind, err := filetype.Match(head)
	if err != nil {
		return "", err
	}
	if _, ok := decodable[kind.Extension]; !ok {
		return "", fmt.Errorf("%w: no decoder for %s", ErrNotImage, kind.MIME.Value)
	}
	return kind.Extension, nil
}

// decodable lists filetype extensions that have a registered image decoder.
var decodable = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"gif":  {},
	"bmp":  {},
	"tif":  {},
	"webp": {},
}

// Stretch resamples buf to exactly width × height, ignoring aspect ratio.
func Stretch(buf *pixel.Buffer, width, height int) *pixel.Buffer {
	if width < 1 || height < 1 || buf.Empty() {
		return pixel.New(width, height)
	}
	if buf.Width() == width && buf.Height() == height {
		return buf
	}
	return pixel.FromImage(imaging.Resize(buf.Image(), width, height, imaging.Linear))
}
