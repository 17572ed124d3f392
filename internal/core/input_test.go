package core

import "testing"

func TestInputFramePressRelease(t *testing.T) {
	f := NewInputFrame()

	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionUp)
	f.Release(ActionRight)

	if !f.Has(ActionUp) || f.Released(ActionUp) {
		t.Error("ActionUp should be pressed, not released")
	}
	if f.Has(ActionRight) || !f.Released(ActionRight) {
		t.Error("ActionRight should be released, not pressed")
	}

	f.Clear()

	if !f.Empty() {
		t.Error("Clear should remove all edges")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionUp) || f.Released(ActionUp) {
		t.Error("zero frame should report nothing")
	}

	f.Set(ActionLeft)
	f.Release(ActionLeft)
	if !f.Has(ActionLeft) || !f.Released(ActionLeft) {
		t.Error("zero frame should lazily allocate on Set/Release")
	}
}

func TestActionString(t *testing.T) {
	if ActionUp.String() != "Up" || ActionRight.String() != "Right" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}
