// Package pixel provides the immutable raster buffer shared by the loader,
// the grayscale converter and the draw collaborators.
//
//   - [Buffer]: width × height grid of non-premultiplied RGBA samples
//   - [Convert]: channel-averaging grayscale transform
//
// # Example
//
//	orig := pixel.FromImage(img)
//	gray := pixel.Convert(orig)
//
// Buffers have no exported mutators. Every constructor copies its input, so a
// Buffer never aliases memory owned by the caller or by another Buffer.
package pixel
