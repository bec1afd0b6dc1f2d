package led

import "testing"

func TestCalculateTaleBorder(t *testing.T) {
	tests := []struct {
		resX, want int
	}{
		{3840, 10},
		{1920, 5},
		{384, 1},
		{100, 0},
	}
	for _, tt := range tests {
		if got := CalculateTaleBorder(tt.resX); got != tt.want {
			t.Errorf("CalculateTaleBorder(%d) = %d, want %d", tt.resX, got, tt.want)
		}
	}
}

func TestNonGrouped(t *testing.T) {
	m := Matrix{
		{Key: 1},
		{Key: 2, Coordinate: Coordinate{GroupedLed: true}},
		{Key: 3},
	}
	got := m.NonGrouped()
	if len(got) != 2 || got[0].Key != 1 || got[1].Key != 3 {
		t.Errorf("NonGrouped = %+v, want keys 1 and 3", got)
	}
}

func TestBuildFullScreenMatrix(t *testing.T) {
	m := BuildFullScreenMatrix(1000, 500, 2, 2, 2, 2)
	if len(m) != 8 {
		t.Fatalf("expected 8 entries, got %d", len(m))
	}
	for i, e := range m {
		if e.Key != i+1 {
			t.Fatalf("entry %d has key %d, want sequential keys", i, e.Key)
		}
		if e.Width <= 0 || e.Height <= 0 {
			t.Fatalf("entry %d has empty tile: %+v", i, e)
		}
	}

	tests := []struct {
		name  string
		entry Entry
		want  Coordinate
	}{
		{"bottom first", m[0], Coordinate{X: 0, Y: 450, Width: 500, Height: 50}},
		{"bottom second", m[1], Coordinate{X: 500, Y: 450, Width: 500, Height: 50}},
		{"right first", m[2], Coordinate{X: 900, Y: 250, Width: 100, Height: 250}},
		{"top first", m[4], Coordinate{X: 500, Y: 0, Width: 500, Height: 50}},
		{"left first", m[6], Coordinate{X: 0, Y: 0, Width: 100, Height: 250}},
	}
	for _, tt := range tests {
		if tt.entry.Coordinate != tt.want {
			t.Errorf("%s = %+v, want %+v", tt.name, tt.entry.Coordinate, tt.want)
		}
	}
}

func TestBuildFullScreenMatrixSkipsEmptyEdges(t *testing.T) {
	m := BuildFullScreenMatrix(1000, 500, 4, 0, 0, 0)
	if len(m) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(m))
	}
	for _, e := range m {
		if e.Y != 450 {
			t.Errorf("entry %d not on the bottom edge: %+v", e.Key, e.Coordinate)
		}
	}
}
