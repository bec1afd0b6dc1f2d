//go:build linux

package display

import (
	"github.com/godbus/dbus/v5"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"
)

type x11Enumerator struct{}

func platformEnumerator() Enumerator { return x11Enumerator{} }

// Enumerate walks the connected RandR outputs. Human-readable monitor names
// and per-monitor scale factors come from the Mutter display daemon when a
// session bus is reachable; otherwise the connector name and scale 1.0 are
// reported. _NET_WORKAREA is root-window-wide, not per CRTC, so the CRTC
// origin stands in for the work-area origin.
func (x11Enumerator) Enumerate() ([]Info, error) {
	x, err := xgb.NewConn()
	if err != nil {
		return nil, errors.Wrap(err, "connect to X server")
	}
	defer x.Close()
	if err := randr.Init(x); err != nil {
		return nil, errors.Wrap(err, "init randr")
	}
	root := xproto.Setup(x).DefaultScreen(x).Root
	res, err := randr.GetScreenResources(x, root).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "query screen resources")
	}
	primary, _ := randr.GetOutputPrimary(x, root).Reply()
	meta := mutterMonitorMeta()

	var list []Info
	for _, output := range res.Outputs {
		oi, err := randr.GetOutputInfo(x, output, 0).Reply()
		if err != nil {
			return nil, errors.Wrap(err, "query output info")
		}
		if oi.Connection != randr.ConnectionConnected || oi.Crtc == 0 {
			continue
		}
		ci, err := randr.GetCrtcInfo(x, oi.Crtc, 0).Reply()
		if err != nil {
			return nil, errors.Wrap(err, "query crtc info")
		}
		connector := string(oi.Name)
		info := Info{
			Width:          int(ci.Width),
			Height:         int(ci.Height),
			ScaleX:         1,
			ScaleY:         1,
			MinX:           int(ci.X),
			MinY:           int(ci.Y),
			NativePeer:     uintptr(output),
			MonitorName:    connector,
			PrimaryDisplay: primary != nil && primary.Output == output,
		}
		if m, ok := meta[connector]; ok {
			if m.displayName != "" {
				info.MonitorName = m.displayName
			}
			if m.scale > 0 {
				info.ScaleX = m.scale
				info.ScaleY = m.scale
			}
		}
		list = append(list, info)
	}
	return list, nil
}

// Wire types for org.gnome.Mutter.DisplayConfig.GetCurrentState.
type mutterMonitorID struct {
	Connector string
	Vendor    string
	Product   string
	Serial    string
}

type mutterMode struct {
	ID              string
	Width           int32
	Height          int32
	RefreshRate     float64
	PreferredScale  float64
	SupportedScales []float64
	Properties      map[string]dbus.Variant
}

type mutterMonitor struct {
	ID         mutterMonitorID
	Modes      []mutterMode
	Properties map[string]dbus.Variant
}

type mutterLogicalMonitor struct {
	X          int32
	Y          int32
	Scale      float64
	Transform  uint32
	Primary    bool
	Monitors   []mutterMonitorID
	Properties map[string]dbus.Variant
}

type monitorMeta struct {
	displayName string
	scale       float64
}

// mutterMonitorMeta asks the GNOME display daemon for per-connector display
// names and logical-monitor scales. A nil map means the session bus or the
// DisplayConfig interface is unavailable; callers degrade to connector names.
func mutterMonitorMeta() map[string]monitorMeta {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil
	}
	obj := conn.Object("org.gnome.Mutter.DisplayConfig", "/org/gnome/Mutter/DisplayConfig")
	call := obj.Call("org.gnome.Mutter.DisplayConfig.GetCurrentState", 0)
	if call.Err != nil {
		return nil
	}
	var (
		serial   uint32
		monitors []mutterMonitor
		logical  []mutterLogicalMonitor
		props    map[string]dbus.Variant
	)
	if err := call.Store(&serial, &monitors, &logical, &props); err != nil {
		return nil
	}
	meta := make(map[string]monitorMeta, len(monitors))
	for _, m := range monitors {
		var mm monitorMeta
		if v, ok := m.Properties["display-name"]; ok {
			_ = v.Store(&mm.displayName)
		}
		meta[m.ID.Connector] = mm
	}
	for _, lm := range logical {
		for _, id := range lm.Monitors {
			if mm, ok := meta[id.Connector]; ok {
				mm.scale = lm.Scale
				meta[id.Connector] = mm
			}
		}
	}
	return meta
}
