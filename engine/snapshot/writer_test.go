package snapshot

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-trackball/engine/replay"
)

func TestWriteFrames(t *testing.T) {
	script, err := replay.Parse(strings.NewReader("down 0 0\nmove 40 10\nup 40 10\nwait 16 3"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	frames := replay.Run(script)

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := WriteFrames(dir, frames, WithWorkers(2), WithSize(32), WithSupersample(2))
	if err != nil {
		t.Fatalf("WriteFrames: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("len(paths) = %d, want 3", len(paths))
	}

	for i, p := range paths {
		if want := filepath.Join(dir, []string{"frame_00000.webp", "frame_00001.webp", "frame_00002.webp"}[i]); p != want {
			t.Fatalf("path %d = %q, want %q", i, p, want)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("read %s: %v", p, err)
		}
		if len(data) < 12 || !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WEBP")) {
			t.Fatalf("%s is not a WebP file", p)
		}
	}
}

func TestWriteFramesEmpty(t *testing.T) {
	paths, err := WriteFrames(t.TempDir(), nil)
	if err != nil || len(paths) != 0 {
		t.Fatalf("WriteFrames(nil) = %v, %v; want no paths and no error", paths, err)
	}
}
