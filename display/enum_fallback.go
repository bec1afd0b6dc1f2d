//go:build !windows && !linux

package display

import "github.com/kbinani/screenshot"

// boundsEnumerator reports display bounds only. Platforms served by this
// enumerator expose neither a hardware monitor name nor a per-monitor scale
// here, so those fields keep their "not found" zero values.
type boundsEnumerator struct{}

func platformEnumerator() Enumerator { return boundsEnumerator{} }

func (boundsEnumerator) Enumerate() ([]Info, error) {
	n := screenshot.NumActiveDisplays()
	list := make([]Info, 0, n)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		list = append(list, Info{
			Width:          b.Dx(),
			Height:         b.Dy(),
			ScaleX:         1,
			ScaleY:         1,
			MinX:           b.Min.X,
			MinY:           b.Min.Y,
			PrimaryDisplay: i == 0,
		})
	}
	return list, nil
}
