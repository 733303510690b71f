// Package session ties the cached buffers and the toggle scheduler into the
// per-frame update a host loop calls.
//
//   - [Init]: load the original once, derive the grayscale copy once
//   - [State.Next]: resolve the mode for one tick and pick the buffer to draw
//   - [Runner]: headless driver that feeds frames to a [Canvas] and observers
//
// # Example
//
//	st, err := session.Init(cfg, asset.Load, log)
//	for host.Open() {
//		f := st.Next()
//		canvas.Draw(f.Buffer, 0, 0, cfg.Canvas.Width, cfg.Canvas.Height)
//	}
//
// # Thread Safety
//
// State is owned by a single frame loop and is NOT thread-safe. The cached
// buffers themselves are immutable and may be shared freely.
package session
