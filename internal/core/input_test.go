package core

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirNone, 0, 0},
	}

	for _, tc := range tests {
		dx, dy := tc.dir.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%s.Delta() = (%d, %d), expected (%d, %d)", tc.dir, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestRotateNormalizes(t *testing.T) {
	if got := Rotate(5).Rotation; got != 1 {
		t.Errorf("Rotate(5).Rotation = %d, expected 1", got)
	}
	if got := Rotate(-3).Rotation; got != -1 {
		t.Errorf("Rotate(-3).Rotation = %d, expected -1", got)
	}
}

func TestIntentString(t *testing.T) {
	tests := []struct {
		in       Intent
		expected string
	}{
		{Move(DirUp), "move(up)"},
		{Release(DirLeft), "release(left)"},
		{Rotate(-1), "rotate(-1)"},
		{Shoot(), "shoot"},
		{Intent{}, "none"},
	}

	for _, tc := range tests {
		if got := tc.in.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestRuntimeConfigSourceDeterministic(t *testing.T) {
	a := RuntimeConfig{Seed: 7}.Source()
	b := RuntimeConfig{Seed: 7}.Source()
	for i := 0; i < 20; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed should produce the same sequence")
		}
	}
}
