package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// chime plays a short fading tone through the speaker.
type chime struct{}

func newChime() (*chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}
	return &chime{}, nil
}

func (c *chime) play() {
	speaker.Play(beep.Take(sampleRate.N(time.Millisecond*180), newTone(sampleRate, 660)))
}

func (c *chime) close() {
	speaker.Close()
}

// tone is a sine wave with a linear fade-in and exponential decay.
type tone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newTone(sr beep.SampleRate, freq float64) *tone {
	return &tone{sr: sr, freq: freq}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/0.01, 1.0) * math.Exp(-t*18)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}
