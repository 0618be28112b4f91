package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ThrusterGenerator synthesizes a rocket rumble: low-passed noise over a
// slowly wobbling low tone.
type ThrusterGenerator struct {
	sr     beep.SampleRate
	pos    int
	cycle  int
	seed   int64
	smooth float64
}

// NewThrusterGenerator creates a thruster generator. The seed fixes the noise.
func NewThrusterGenerator(sr beep.SampleRate, seed int64) *ThrusterGenerator {
	return &ThrusterGenerator{
		sr:    sr,
		cycle: sr.N(400 * time.Millisecond),
		seed:  seed,
	}
}

func (g *ThrusterGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		g.smooth += 0.08 * (noise - g.smooth)

		wobble := float64(g.pos%g.cycle) / float64(g.cycle)
		tone := 0.25 * math.Sin(2*math.Pi*(55+10*math.Sin(2*math.Pi*wobble))*t)

		sample := 0.6*g.smooth + tone
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThrusterGenerator) Err() error {
	return nil
}
