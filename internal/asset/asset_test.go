package asset

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/noir/internal/pixel"
)

func writePNG(t *testing.T, dir string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, "img.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func primaries() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 255})
	return img
}

func TestLoadPNG(t *testing.T) {
	path := writePNG(t, t.TempDir(), primaries())

	buf, info, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if info.Format != "png" {
		t.Errorf("expected png, got %q", info.Format)
	}
	if info.Width != 2 || info.Height != 2 {
		t.Errorf("expected 2x2, got %dx%d", info.Width, info.Height)
	}
	if got := buf.At(1, 0); got != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("pixel (1,0): got %v", got)
	}
}

func TestLoadThenConvert(t *testing.T) {
	path := writePNG(t, t.TempDir(), primaries())

	buf, _, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	gray := pixel.Convert(buf)

	want := []color.NRGBA{
		{85, 85, 85, 255}, {85, 85, 85, 255},
		{85, 85, 85, 255}, {255, 255, 255, 255},
	}
	got := gray.Samples()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pixel %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLoadJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(f, image.NewGray(image.Rect(0, 0, 8, 4)), nil); err != nil {
		t.Fatal(err)
	}
	f.Close()

	buf, info, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if info.Format != "jpg" || buf.Width() != 8 || buf.Height() != 4 {
		t.Errorf("unexpected result %+v", info)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	text := filepath.Join(dir, "notes.png")
	if err := os.WriteFile(text, []byte("definitely not a picture"), 0644); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(dir, "empty.png")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	truncated := filepath.Join(dir, "truncated.png")
	sig := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0}
	if err := os.WriteFile(truncated, sig, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		notImage bool
	}{
		{"missing", filepath.Join(dir, "nope.png"), false},
		{"directory", dir, false},
		{"text", text, true},
		{"empty", empty, true},
		{"truncated", truncated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, _, err := Load(tt.path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if buf != nil {
				t.Error("expected nil buffer")
			}
			if !errors.Is(err, ErrAssetLoad) {
				t.Errorf("expected ErrAssetLoad, got %v", err)
			}
			var le *LoadError
			if !errors.As(err, &le) || le.Path != tt.path {
				t.Errorf("expected LoadError for %s, got %#v", tt.path, err)
			}
			if tt.notImage && !errors.Is(err, ErrNotImage) {
				t.Errorf("expected ErrNotImage, got %v", err)
			}
		})
	}
}

func TestStretch(t *testing.T) {
	src := pixel.FromImage(primaries())

	out := Stretch(src, 9, 6)
	if out.Width() != 9 || out.Height() != 6 {
		t.Errorf("expected 9x6, got %s", out)
	}
	if same := Stretch(src, 2, 2); same != src {
		t.Error("expected identity stretch to return the input")
	}
	if empty := Stretch(src, 0, 3); !empty.Empty() {
		t.Errorf("expected empty buffer, got %s", empty)
	}
}
