package runner

import (
	"testing"
)

func TestJumpFromGround(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(&cfg)
	p := mustPlayer(t, w.Store)
	rest := cfg.PlayerGroundY()

	if !Jump(p, &cfg) {
		t.Fatal("jump from ground rejected")
	}
	Integrate(w.Store, &cfg, 16)

	if want := cfg.Physics.JumpForce + cfg.Physics.Gravity; p.Velocity.Y != want {
		t.Errorf("velocity.y = %v, want %v", p.Velocity.Y, want)
	}
	if !p.IsJumping {
		t.Error("IsJumping cleared after one tick")
	}
	if p.Position.Y >= rest {
		t.Errorf("y = %v, want above rest %v", p.Position.Y, rest)
	}
}

func TestNoDoubleJump(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(&cfg)
	p := mustPlayer(t, w.Store)

	Jump(p, &cfg)
	Integrate(w.Store, &cfg, 16)
	before := p.Velocity

	if Jump(p, &cfg) {
		t.Fatal("second jump accepted while airborne")
	}
	if p.Velocity != before {
		t.Errorf("velocity changed from %v to %v", before, p.Velocity)
	}
}

func TestJumpLands(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(&cfg)
	p := mustPlayer(t, w.Store)

	Jump(p, &cfg)
	for i := 0; i < 200 && p.IsJumping; i++ {
		Integrate(w.Store, &cfg, 16)
		if p.Position.Y < 0 || p.Position.Y > cfg.PlayerGroundY() {
			t.Fatalf("tick %d: y = %v outside [0, %v]", i, p.Position.Y, cfg.PlayerGroundY())
		}
	}

	if p.IsJumping {
		t.Fatal("player never landed")
	}
	if p.Position.Y != cfg.PlayerGroundY() || p.Velocity.Y != 0 {
		t.Errorf("landed at y=%v vy=%v", p.Position.Y, p.Velocity.Y)
	}
}

func TestCeilingClamp(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(&cfg)
	p := mustPlayer(t, w.Store)
	p.Position.Y = 5
	p.Velocity.Y = -20

	Integrate(w.Store, &cfg, 16)

	if p.Position.Y != 0 || p.Velocity.Y != 0 {
		t.Errorf("y=%v vy=%v, want both 0", p.Position.Y, p.Velocity.Y)
	}
}

func TestSlideDecaysWithElapsedTime(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(&cfg)
	p := mustPlayer(t, w.Store)

	if !Slide(p, &cfg) {
		t.Fatal("slide rejected")
	}
	Integrate(w.Store, &cfg, 100)
	if p.SlideRemainingMs != 400 {
		t.Fatalf("remaining = %v, want 400", p.SlideRemainingMs)
	}

	if Slide(p, &cfg) {
		t.Fatal("slide accepted while sliding")
	}
	if p.SlideRemainingMs != 400 {
		t.Fatalf("repeated slide reset the timer to %v", p.SlideRemainingMs)
	}

	for i := 0; i < 4; i++ {
		Integrate(w.Store, &cfg, 100)
	}
	if p.IsSliding || p.SlideRemainingMs != 0 {
		t.Errorf("still sliding after full duration: remaining %v", p.SlideRemainingMs)
	}
}

func TestPlayerRectSliding(t *testing.T) {
	cfg := testConfig()
	p := &PlayerBody{}
	p.Position.X, p.Position.Y = cfg.Player.X, cfg.PlayerGroundY()

	if got := PlayerRect(p, &cfg).H; got != cfg.Player.Height {
		t.Errorf("standing height = %v", got)
	}
	Slide(p, &cfg)
	if got := PlayerRect(p, &cfg).H; got != cfg.Player.Height/2 {
		t.Errorf("sliding height = %v, want %v", got, cfg.Player.Height/2)
	}
}

func TestIntegrateWithoutPlayer(t *testing.T) {
	cfg := testConfig()
	Integrate(NewStore(), &cfg, 16)
}
