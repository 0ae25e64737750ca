package snapshot

// WriteOption is a functional option for configuring WriteFrames.
type WriteOption func(*writer)

// WithWorkers sets the number of encoder workers.
//
// Parameters:
//   - workers: pool size, at least 1
//
// Returns:
//   - WriteOption: option function to apply
func WithWorkers(workers int) WriteOption {
	return func(w *writer) {
		w.workers = workers
	}
}

// WithSize sets the output frame width and height in pixels.
//
// Parameters:
//   - size: frame edge length
//
// Returns:
//   - WriteOption: option function to apply
func WithSize(size int) WriteOption {
	return func(w *writer) {
		w.size = size
	}
}

// WithSupersample sets the supersampling factor used by Render.
//
// Parameters:
//   - factor: supersampling factor
//
// Returns:
//   - WriteOption: option function to apply
func WithSupersample(factor int) WriteOption {
	return func(w *writer) {
		w.supersample = factor
	}
}

// WithStyle sets the frame colors.
//
// Parameters:
//   - style: background and line colors
//
// Returns:
//   - WriteOption: option function to apply
func WithStyle(style Style) WriteOption {
	return func(w *writer) {
		w.style = style
	}
}
