// Package display enumerates attached displays and names them.
// Windows, Linux (X11) and a bounds-only fallback for other platforms are
// supported.
package display

import (
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Info describes one attached display. A fresh value is built on every
// enumeration; callers must treat it as immutable.
type Info struct {
	Width          int
	Height         int
	ScaleX         float64
	ScaleY         float64
	MinX           int
	MinY           int
	NativePeer     uintptr
	MonitorName    string
	PrimaryDisplay bool
}

// Enumerator is the platform capability that produces the raw display list.
// Tests inject fakes; production code uses the native enumerator.
type Enumerator interface {
	Enumerate() ([]Info, error)
}

// Manager queries displays through an Enumerator and applies the ordering
// and naming conventions shared by all callers.
type Manager struct {
	enum Enumerator
	log  *zap.Logger
}

// NewManager returns a Manager backed by the native enumerator for this
// platform.
func NewManager(log *zap.Logger) *Manager {
	return NewManagerWith(platformEnumerator(), log)
}

// NewManagerWith returns a Manager backed by a custom enumerator.
func NewManagerWith(enum Enumerator, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{enum: enum, log: log}
}

// DisplayNumber reports how many displays are attached.
func (m *Manager) DisplayNumber() int {
	return len(m.DisplayList())
}

// DisplayList re-queries the platform and returns the displays sorted by
// descending left-edge X, rightmost display first. The order backs the
// right/center/left naming convention.
func (m *Manager) DisplayList() []Info {
	list, err := m.enum.Enumerate()
	if err != nil {
		m.log.Warn("display enumeration failed", zap.Error(err))
		return nil
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].MinX > list[j].MinX
	})
	return list
}

// FirstInstanceDisplay returns the first display in list order, or nil when
// no display is attached.
func (m *Manager) FirstInstanceDisplay() *Info {
	return m.DisplayAt(0)
}

// PrimaryDisplay returns the display the OS marks as primary, or nil.
func (m *Manager) PrimaryDisplay() *Info {
	primaries := lo.Filter(m.DisplayList(), func(d Info, _ int) bool {
		return d.PrimaryDisplay
	})
	if len(primaries) == 0 {
		return nil
	}
	return &primaries[0]
}

// DisplayAt returns the display at index in list order. Out-of-range indexes
// yield nil, never a panic.
func (m *Manager) DisplayAt(index int) *Info {
	list := m.DisplayList()
	if index < 0 || index >= len(list) {
		return nil
	}
	return &list[index]
}

// Name templates. {0} is replaced with the hardware monitor name when the
// platform reported one, otherwise the parenthesized placeholder is dropped.
const (
	nameMain        = "Main ({0})"
	nameRight       = "Right ({0})"
	nameCenter      = "Center ({0})"
	nameLeft        = "Left ({0})"
	namePlaceholder = "{0}"
)

// DisplayName maps an index in list order to its human-readable name:
// a single display is "Main"; two displays are "Right"/"Left"; three or more
// are "Right"/"Center"/"Left". Out-of-range indexes yield "Screen <index>".
func (m *Manager) DisplayName(index int) string {
	list := m.DisplayList()
	if index < 0 || index >= len(list) {
		return "Screen " + strconv.Itoa(index)
	}
	name := displayLabel(len(list), index)
	if list[index].MonitorName != "" {
		return strings.Replace(name, namePlaceholder, list[index].MonitorName, 1)
	}
	return strings.Replace(name, " ("+namePlaceholder+")", "", 1)
}

func displayLabel(count, index int) string {
	switch {
	case count == 1:
		return nameMain
	case count == 2:
		if index == 0 {
			return nameRight
		}
		return nameLeft
	default:
		switch index {
		case 0:
			return nameRight
		case 1:
			return nameCenter
		default:
			return nameLeft
		}
	}
}

// LogDisplayInfo debug-logs every attached display.
func (m *Manager) LogDisplayInfo() {
	for _, d := range m.DisplayList() {
		m.log.Debug("display",
			zap.Int("width", d.Width),
			zap.Int("height", d.Height),
			zap.Float64("scaleX", d.ScaleX),
			zap.Float64("scaleY", d.ScaleY),
			zap.Int("minX", d.MinX),
			zap.Int("minY", d.MinY),
			zap.Uintptr("nativePeer", d.NativePeer),
			zap.String("monitorName", d.MonitorName),
			zap.Bool("primary", d.PrimaryDisplay),
		)
	}
}
