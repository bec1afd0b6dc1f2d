//go:build windows

package display

import (
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")
	dxva2  = windows.NewLazySystemDLL("dxva2.dll")

	procEnumDisplayMonitors             = user32.NewProc("EnumDisplayMonitors")
	procGetDpiForMonitor                = shcore.NewProc("GetDpiForMonitor")
	procGetNumberOfPhysicalMonitors     = dxva2.NewProc("GetNumberOfPhysicalMonitorsFromHMONITOR")
	procGetPhysicalMonitorsFromHMONITOR = dxva2.NewProc("GetPhysicalMonitorsFromHMONITOR")
	procDestroyPhysicalMonitors         = dxva2.NewProc("DestroyPhysicalMonitors")
)

// MDT_EFFECTIVE_DPI
const mdtEffectiveDPI = 0

const physicalMonitorDescriptionSize = 128

// PHYSICAL_MONITOR from physicalmonitorenumerationapi.h.
type physicalMonitor struct {
	handle      windows.Handle
	description [physicalMonitorDescriptionSize]uint16
}

type winEnumerator struct{}

func platformEnumerator() Enumerator { return winEnumerator{} }

// Enumerate collects geometry for every monitor, then runs a second
// enumeration pass that matches monitors to the collected entries by
// work-area origin and fills in the primary flag, the native HMONITOR value
// and the hardware monitor description.
func (winEnumerator) Enumerate() ([]Info, error) {
	list, err := enumerateGeometry()
	if err != nil {
		return nil, err
	}
	resolveMonitorDetails(list)
	return list, nil
}

func enumerateGeometry() ([]Info, error) {
	var list []Info
	callback := syscall.NewCallback(func(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
		var mi win.MONITORINFO
		mi.CbSize = uint32(unsafe.Sizeof(mi))
		if !win.GetMonitorInfo(hMonitor, &mi) {
			return 1
		}
		scale := monitorScale(hMonitor)
		list = append(list, Info{
			Width:  int(mi.RcMonitor.Right - mi.RcMonitor.Left),
			Height: int(mi.RcMonitor.Bottom - mi.RcMonitor.Top),
			ScaleX: scale,
			ScaleY: scale,
			MinX:   int(mi.RcWork.Left),
			MinY:   int(mi.RcWork.Top),
		})
		return 1
	})
	if !enumDisplayMonitors(0, nil, callback, 0) {
		return nil, errors.New("EnumDisplayMonitors failed")
	}
	return list, nil
}

func resolveMonitorDetails(list []Info) {
	callback := syscall.NewCallback(func(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
		var mi win.MONITORINFO
		mi.CbSize = uint32(unsafe.Sizeof(mi))
		if !win.GetMonitorInfo(hMonitor, &mi) {
			return 1
		}
		for i := range list {
			if int(mi.RcWork.Left) != list[i].MinX || int(mi.RcWork.Top) != list[i].MinY {
				continue
			}
			list[i].PrimaryDisplay = mi.DwFlags&win.MONITORINFOF_PRIMARY != 0
			list[i].NativePeer = uintptr(hMonitor)
			list[i].MonitorName = physicalMonitorDescription(hMonitor)
		}
		return 1
	})
	enumDisplayMonitors(0, nil, callback, 0)
}

func enumDisplayMonitors(hdc win.HDC, clip *win.RECT, lpfnEnum uintptr, dwData uintptr) bool {
	ret, _, _ := procEnumDisplayMonitors.Call(
		uintptr(hdc),
		uintptr(unsafe.Pointer(clip)),
		lpfnEnum,
		dwData,
	)
	return ret != 0
}

// physicalMonitorDescription reads the hardware-reported monitor name via the
// Dxva2 physical monitor API. An empty string means the name is unknown.
func physicalMonitorDescription(hMonitor win.HMONITOR) string {
	var count uint32
	ret, _, _ := procGetNumberOfPhysicalMonitors.Call(uintptr(hMonitor), uintptr(unsafe.Pointer(&count)))
	if ret == 0 || count == 0 {
		return ""
	}
	monitors := make([]physicalMonitor, count)
	ret, _, _ = procGetPhysicalMonitorsFromHMONITOR.Call(uintptr(hMonitor), uintptr(count), uintptr(unsafe.Pointer(&monitors[0])))
	if ret == 0 {
		return ""
	}
	defer procDestroyPhysicalMonitors.Call(uintptr(count), uintptr(unsafe.Pointer(&monitors[0])))
	return windows.UTF16ToString(monitors[len(monitors)-1].description[:])
}

// monitorScale reads the effective DPI and converts it to a scale factor.
// On systems without shcore (pre 8.1) it reports 1.0.
func monitorScale(hMonitor win.HMONITOR) float64 {
	if procGetDpiForMonitor.Find() != nil {
		return 1
	}
	var dpiX, dpiY uint32
	ret, _, _ := procGetDpiForMonitor.Call(
		uintptr(hMonitor),
		mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&dpiX)),
		uintptr(unsafe.Pointer(&dpiY)),
	)
	if ret != 0 || dpiX == 0 {
		return 1
	}
	return float64(dpiX) / 96
}
