package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestSweepGeneratorLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	gen := NewSweepGenerator(rate, 200, 400, 100*time.Millisecond, 0.5)

	total := 0
	buf := make([][2]float64, 300)
	for {
		n, ok := gen.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if want := rate.N(100 * time.Millisecond); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if err := gen.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestSweepGeneratorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	gen := NewSweepGenerator(rate, 440, 110, 50*time.Millisecond, volume)

	samples := make([][2]float64, 1000)
	n, ok := gen.Stream(samples)
	if !ok || n != 1000 {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}

	peak := 0.0
	for i := 0; i < n; i++ {
		if samples[i][0] != samples[i][1] {
			t.Fatalf("sample %d not mono", i)
		}
		peak = math.Max(peak, math.Abs(samples[i][0]))
	}
	if peak > volume {
		t.Errorf("peak %f exceeds volume %f", peak, volume)
	}
	if peak == 0 {
		t.Error("generator produced silence")
	}
}

func TestSweepFrequency(t *testing.T) {
	gen := NewSweepGenerator(beep.SampleRate(1000), 100, 300, time.Second, 1)

	tests := []struct {
		pos  int
		want float64
	}{
		{0, 100},
		{500, 200},
		{1000, 300},
		{5000, 300},
	}
	for _, tt := range tests {
		if got := gen.Frequency(tt.pos); got != tt.want {
			t.Errorf("Frequency(%d) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestUninitializedBoardIsSilent(t *testing.T) {
	sb := NewSoundBoard(nil)
	if sb.Enabled() {
		t.Fatal("new board reports enabled")
	}

	sb.PlayJump()
	sb.PlayCollect()
	sb.PlayGameOver()
	sb.Close()

	if sb.mixer.Len() != 0 {
		t.Errorf("mixer holds %d streamers without a speaker", sb.mixer.Len())
	}
}
