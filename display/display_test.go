package display

import (
	"testing"

	"github.com/pkg/errors"
)

type fakeEnumerator struct {
	list []Info
	err  error
}

func (f fakeEnumerator) Enumerate() ([]Info, error) {
	return append([]Info(nil), f.list...), f.err
}

func threeDisplays() []Info {
	return []Info{
		{MinX: 0, MinY: 0, Width: 2560, Height: 1440, PrimaryDisplay: true},
		{MinX: 2560, MinY: 0, Width: 1920, Height: 1080, MonitorName: "DELL U2720Q"},
		{MinX: -1920, MinY: 0, Width: 1920, Height: 1080},
	}
}

func TestDisplayListSortedByDescendingMinX(t *testing.T) {
	m := NewManagerWith(fakeEnumerator{list: threeDisplays()}, nil)
	list := m.DisplayList()
	if len(list) != 3 {
		t.Fatalf("expected 3 displays, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].MinX < list[i].MinX {
			t.Errorf("list not sorted by descending MinX: %d before %d", list[i-1].MinX, list[i].MinX)
		}
	}
	if list[0].MinX != 2560 || list[2].MinX != -1920 {
		t.Errorf("unexpected order: first MinX %d, last MinX %d", list[0].MinX, list[2].MinX)
	}
}

func TestDisplayAtOutOfRange(t *testing.T) {
	m := NewManagerWith(fakeEnumerator{list: threeDisplays()}, nil)
	for _, index := range []int{-1, 3, 100} {
		if got := m.DisplayAt(index); got != nil {
			t.Errorf("DisplayAt(%d) = %+v, want nil", index, got)
		}
	}
	if got := m.DisplayAt(0); got == nil {
		t.Fatalf("DisplayAt(0) = nil, want a display")
	}
}

func TestPrimaryDisplay(t *testing.T) {
	m := NewManagerWith(fakeEnumerator{list: threeDisplays()}, nil)
	p := m.PrimaryDisplay()
	if p == nil || p.MinX != 0 {
		t.Fatalf("PrimaryDisplay = %+v, want the display at MinX 0", p)
	}

	m = NewManagerWith(fakeEnumerator{list: []Info{{MinX: 10}}}, nil)
	if p := m.PrimaryDisplay(); p != nil {
		t.Errorf("PrimaryDisplay = %+v, want nil when none is marked primary", p)
	}
}

func TestDisplayNameTable(t *testing.T) {
	tests := []struct {
		name  string
		count int
		index int
		want  string
	}{
		{"single main", 1, 0, "Main"},
		{"two right", 2, 0, "Right"},
		{"two left", 2, 1, "Left"},
		{"three right", 3, 0, "Right"},
		{"three center", 3, 1, "Center"},
		{"three left", 3, 2, "Left"},
		{"four leftmost", 4, 3, "Left"},
	}
	for _, tt := range tests {
		list := make([]Info, tt.count)
		for i := range list {
			list[i].MinX = (tt.count - i) * 1000
		}
		m := NewManagerWith(fakeEnumerator{list: list}, nil)
		if got := m.DisplayName(tt.index); got != tt.want {
			t.Errorf("%s: DisplayName(%d) = %q, want %q", tt.name, tt.index, got, tt.want)
		}
	}
}

func TestDisplayNameAppendsMonitorName(t *testing.T) {
	m := NewManagerWith(fakeEnumerator{list: threeDisplays()}, nil)
	// Sorted order puts the named display (MinX 2560) first.
	if got, want := m.DisplayName(0), "Right (DELL U2720Q)"; got != want {
		t.Errorf("DisplayName(0) = %q, want %q", got, want)
	}
	if got, want := m.DisplayName(1), "Center"; got != want {
		t.Errorf("DisplayName(1) = %q, want %q", got, want)
	}
}

func TestDisplayNameOutOfRange(t *testing.T) {
	m := NewManagerWith(fakeEnumerator{list: threeDisplays()}, nil)
	if got, want := m.DisplayName(5), "Screen 5"; got != want {
		t.Errorf("DisplayName(5) = %q, want %q", got, want)
	}
}

func TestEnumerationErrorYieldsEmptyList(t *testing.T) {
	m := NewManagerWith(fakeEnumerator{err: errors.New("no backend")}, nil)
	if n := m.DisplayNumber(); n != 0 {
		t.Errorf("DisplayNumber = %d, want 0", n)
	}
	if d := m.FirstInstanceDisplay(); d != nil {
		t.Errorf("FirstInstanceDisplay = %+v, want nil", d)
	}
	if got, want := m.DisplayName(0), "Screen 0"; got != want {
		t.Errorf("DisplayName(0) = %q, want %q", got, want)
	}
}
