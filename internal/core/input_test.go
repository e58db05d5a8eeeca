package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionJump) {
		t.Fatal("Zero frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionStart)
	if !f.Has(ActionJump) || !f.Has(ActionStart) {
		t.Error("Expected Jump and Start to be set")
	}
	if f.Has(ActionPause) {
		t.Error("Pause was never set")
	}
	if got := f.String(); got != "Start+Jump" {
		t.Errorf("String() = %q, expected Start+Jump", got)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Expected empty frame after Clear")
	}
}

func TestInputFrameIgnoresNone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)
	f.Set(Action(200))
	if !f.Empty() {
		t.Errorf("Expected empty frame, got %s", f)
	}
	if f.Has(Action(200)) {
		t.Error("Out-of-range action should never be set")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}
