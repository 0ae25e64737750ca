package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/oxy-trackball/engine/replay"
	"github.com/Carmen-Shannon/oxy-trackball/engine/snapshot"
	"github.com/Carmen-Shannon/oxy-trackball/engine/trackball"
)

func main() {
	// CLI flags
	scriptPath := flag.String("script", "-", "Gesture script to replay (- for stdin)")
	friction := flag.Float64("friction", 0.125, "Fraction of velocity lost per tick (0..1)")
	startSpin := flag.Float64("start-spin", 0, "Initial spin velocity in radians per millisecond")
	outputDir := flag.String("out", "", "Write each frame as WebP into this directory")
	size := flag.Int("size", 256, "Output frame size in pixels")
	supersample := flag.Int("supersample", 2, "Supersampling factor for WebP frames")
	workers := flag.Int("workers", 0, "Number of encoder workers (default: NumCPU)")
	every := flag.Int("every", 1, "Print every Nth frame")
	flag.Parse()

	script, err := loadScript(*scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
		os.Exit(1)
	}

	frames := replay.Run(script, replay.WithTrackballOptions(
		trackball.WithFriction(*friction),
		trackball.WithStartSpin(*startSpin),
	))

	if *every < 1 {
		*every = 1
	}
	fmt.Printf("%6s %9s  %-12s %9s %9s %11s %11s %5s\n", "frame", "ms", "state", "spin", "tilt", "v_spin", "v_tilt", "idle")
	for i, f := range frames {
		if i%*every != 0 && i != len(frames)-1 {
			continue
		}
		fmt.Printf("%6d %9.1f  %-12s %+9.4f %+9.4f %+11.6f %+11.6f %5v\n",
			i, float64(f.Elapsed.Microseconds())/1000, f.State, f.Spin, f.Tilt, f.SpinVelocity, f.TiltVelocity, f.Idle)
	}

	if *outputDir == "" {
		return
	}

	numWorkers := *workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	paths, err := snapshot.WriteFrames(*outputDir, frames,
		snapshot.WithWorkers(numWorkers),
		snapshot.WithSize(*size),
		snapshot.WithSupersample(*supersample),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing frames: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d frames to %s\n", len(paths), *outputDir)
}

func loadScript(path string) (replay.Script, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return replay.Script{}, err
		}
		defer f.Close()
		r = f
	}
	return replay.Parse(r)
}
