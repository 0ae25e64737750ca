package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-trackball/engine/replay"
	"github.com/HugoSmits86/nativewebp"
)

type writer struct {
	workers     int
	size        int
	supersample int
	style       Style
}

// WriteFrames renders every frame and encodes it to dir/frame_NNNNN.webp. Encoding runs on a worker
// pool; the call blocks until all frames are written.
//
// Parameters:
//   - dir: output directory, created if missing
//   - frames: the recording to write, typically from replay.Run
//   - options: functional options to configure size, supersampling, colors and worker count
//
// Returns:
//   - []string: the written file paths in frame order
//   - error: the first error encountered, if any
func WriteFrames(dir string, frames []replay.Frame, options ...WriteOption) ([]string, error) {
	w := &writer{
		workers:     4,
		size:        256,
		supersample: 2,
		style:       DefaultStyle,
	}
	for _, option := range options {
		option(w)
	}
	if w.workers < 1 {
		w.workers = 1
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	paths := make([]string, len(frames))
	errs := make([]error, len(frames))
	pool := worker.NewDynamicWorkerPool(w.workers, 256, 1*time.Second)

	var wg sync.WaitGroup
	for i := range frames {
		paths[i] = filepath.Join(dir, fmt.Sprintf("frame_%05d.webp", i))
		wg.Add(1)
		id := i
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				errs[id] = w.writeFrame(paths[id], frames[id])
				return nil, errs[id]
			},
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func (w *writer) writeFrame(path string, frame replay.Frame) error {
	img := Render(frame.Matrix, w.size, w.supersample, w.style)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("webp encode %s: %w", path, err)
	}
	return nil
}
