package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/jungle-runner/internal/core"
)

func TestGroundScrollWraps(t *testing.T) {
	cfg := testConfig()
	speed := cfg.Physics.GameSpeed

	for _, n := range []int{1, 100, 159, 160, 161, 400} {
		w := NewWorld(&cfg)
		for i := 0; i < n; i++ {
			Move(w.Store, &cfg, 0)
		}

		want := -math.Mod(speed*float64(n), cfg.Screen.Width)
		if want == 0 {
			want = 0 // avoid -0 in the message
		}
		if got := w.Store.Grounds()[0].Body.Position.X; got != want {
			t.Errorf("after %d ticks ground x = %v, want %v", n, got, want)
		}
	}
}

func TestParallaxSpeed(t *testing.T) {
	tests := []struct {
		layer int
		want  float64
	}{
		{1, 2.5},
		{2, 1.25},
		{0, 2.5},
	}
	for _, tt := range tests {
		if got := ParallaxSpeed(5, tt.layer); got != tt.want {
			t.Errorf("ParallaxSpeed(5, %d) = %v, want %v", tt.layer, got, tt.want)
		}
	}
	if ParallaxSpeed(5, 3) >= ParallaxSpeed(5, 2) {
		t.Error("higher layer is not slower")
	}
}

func TestBackgroundScrollsByLayer(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(&cfg)
	Move(w.Store, &cfg, 0)

	for _, b := range w.Store.Backgrounds() {
		start := 0.0
		if b.ID.Seq%2 == 1 {
			start = cfg.Screen.Width
		}
		want := start - ParallaxSpeed(cfg.Physics.GameSpeed, b.Body.Layer)
		if b.Body.Position.X != want {
			t.Errorf("%v (layer %d) x = %v, want %v", b.ID, b.Body.Layer, b.Body.Position.X, want)
		}
	}
}

func TestObstacleDespawn(t *testing.T) {
	cfg := testConfig()
	tests := []struct {
		name  string
		x     float64
		alive bool
	}{
		{"on screen", 100, true},
		{"lands exactly at -width", -cfg.Obstacles.Width + cfg.Physics.GameSpeed, true},
		{"passes -width", -cfg.Obstacles.Width + cfg.Physics.GameSpeed - 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			e := NewEntity(0, &ObstacleBody{Position: core.Vec2{X: tt.x}})
			s.Add(e)
			Move(s, &cfg, 0)
			if _, ok := s.Get(e.ID); ok != tt.alive {
				t.Errorf("alive = %v, want %v", ok, tt.alive)
			}
		})
	}
}

func TestCollectibleBobAndDespawn(t *testing.T) {
	cfg := testConfig()
	s := NewStore()
	keep := NewEntity(0, &CollectibleBody{Position: core.Vec2{X: 400, Y: 200}})
	gone := NewEntity(1, &CollectibleBody{Position: core.Vec2{X: -cfg.Collectibles.Size}})
	s.Add(keep)
	s.Add(gone)

	now := 314.0
	Move(s, &cfg, now)

	if _, ok := s.Get(gone.ID); ok {
		t.Error("off-screen collectible not removed")
	}
	e, ok := s.Get(keep.ID)
	if !ok {
		t.Fatal("on-screen collectible removed")
	}
	c := e.Body.(*CollectibleBody)
	if want := math.Sin(now/cfg.Collectibles.BobPeriodMs) * cfg.Collectibles.BobAmplitude; c.AnimationPhase != want {
		t.Errorf("phase = %v, want %v", c.AnimationPhase, want)
	}
	if c.Position.Y != 200 {
		t.Errorf("bobbing moved position.y to %v", c.Position.Y)
	}
	if c.Position.X != 400-cfg.Physics.GameSpeed {
		t.Errorf("x = %v", c.Position.X)
	}
}
