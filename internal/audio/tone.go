package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator is a sine tone gliding linearly from one frequency to
// another over a fixed duration, with a short fade in and an exponential tail.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	volume   float64
	pos      int
	total    int
	phase    float64
}

// NewSweepGenerator creates a sweep from `from` Hz to `to` Hz lasting d.
// The stream ends after d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration, volume float64) *SweepGenerator {
	return &SweepGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		volume: volume,
		total:  sr.N(d),
	}
}

// Frequency returns the instantaneous frequency at sample pos.
func (g *SweepGenerator) Frequency(pos int) float64 {
	if g.total == 0 {
		return g.to
	}
	p := math.Min(float64(pos)/float64(g.total), 1)
	return g.from + (g.to-g.from)*p
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		// Integrate the phase so the glide has no clicks.
		g.phase += 2 * math.Pi * g.Frequency(g.pos) / float64(g.sr)

		attack := math.Min(t/0.005, 1)
		release := math.Exp(-3 * float64(g.pos) / float64(g.total))
		sample := g.volume * attack * release * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
