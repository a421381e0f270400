package game

import "testing"

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		delta    Delta
		expected Position
	}{
		{"zero delta", Position{3, 4}, Delta{0, 0}, Position{3, 4}},
		{"right", Position{3, 4}, Delta{1, 0}, Position{4, 4}},
		{"up", Position{3, 4}, Delta{0, -1}, Position{3, 3}},
		{"leap down", Position{3, 4}, Delta{0, 2}, Position{3, 6}},
		{"negative crossing origin", Position{0, 0}, Delta{-2, -1}, Position{-2, -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.pos.Translate(tc.delta)
			if !got.Equals(tc.expected) {
				t.Errorf("Translate() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestEquals(t *testing.T) {
	if !(Position{2, 5}).Equals(Position{2, 5}) {
		t.Error("identical positions should be equal")
	}
	if (Position{2, 5}).Equals(Position{5, 2}) {
		t.Error("swapped coordinates should not be equal")
	}
}

func TestNear(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		leap     int
		expected bool
	}{
		{"same coordinate", 4, 4, 2, true},
		{"adjacent", 4, 5, 2, true},
		{"leap range", 4, 6, 2, true},
		{"leap range reversed", 6, 4, 2, true},
		{"just out of range", 4, 7, 2, false},
		{"far apart", 0, 7, 2, false},
		{"custom leap distance", 0, 3, 3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Near(tc.a, tc.b, tc.leap); got != tc.expected {
				t.Errorf("Near(%d, %d, %d) = %v, expected %v", tc.a, tc.b, tc.leap, got, tc.expected)
			}
		})
	}
}

func TestUnitDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Delta
	}{
		{DirUp, Delta{0, -1}},
		{DirRight, Delta{1, 0}},
		{DirDown, Delta{0, 1}},
		{DirLeft, Delta{-1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.UnitDelta(); got != tc.expected {
				t.Errorf("UnitDelta() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
