package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Push(CommandJump)
	f.Push(CommandNone)
	f.Push(CommandSlide)

	if !f.Has(CommandSlide) {
		t.Error("frame should contain slide")
	}

	got := f.Drain()
	if len(got) != 2 || got[0] != CommandJump || got[1] != CommandSlide {
		t.Errorf("Drain() = %v, expected [jump slide]", got)
	}
	if len(f.Drain()) != 0 {
		t.Error("frame should be empty after Drain")
	}
}
