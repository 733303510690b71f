package pixel

import "image"

// Convert returns a new buffer in which every sample's red, green and blue
// channels are replaced by their truncated integer mean. Alpha is copied as
// is. The input is never modified.
func Convert(in *Buffer) *Buffer {
	if in == nil {
		return New(0, 0)
	}
	w, h := in.Width(), in.Height()
	out := &Buffer{img: image.NewNRGBA(image.Rect(0, 0, w, h))}

	src, dst := in.img, out.img
	for y := 0; y < h; y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+w*4]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for i := 0; i < len(s); i += 4 {
			avg := uint8((int(s[i]) + int(s[i+1]) + int(s[i+2])) / 3)
			d[i+0] = avg
			d[i+1] = avg
			d[i+2] = avg
			d[i+3] = s[i+3]
		}
	}
	return out
}

// IsGrayscale reports whether every sample has R == G == B.
func IsGrayscale(b *Buffer) bool {
	w, h := b.Width(), b.Height()
	for y := 0; y < h; y++ {
		row := b.img.Pix[y*b.img.Stride : y*b.img.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			if row[i] != row[i+1] || row[i+1] != row[i+2] {
				return false
			}
		}
	}
	return true
}
