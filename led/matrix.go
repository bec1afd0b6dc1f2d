// Package led describes the LED coordinate matrix that maps strip positions
// onto screen regions.
package led

import "github.com/samber/lo"

// Coordinate is one LED tile rectangle in unscaled screen pixels.
type Coordinate struct {
	X          int  `yaml:"x"`
	Y          int  `yaml:"y"`
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	GroupedLed bool `yaml:"groupedLed,omitempty"`
}

// Entry binds a 1-based LED key to its coordinate.
type Entry struct {
	Key        int `yaml:"key"`
	Coordinate `yaml:",inline"`
}

// Matrix is the ordered LED coordinate matrix. Order matters: entries follow
// the physical strip from key 1 upward.
type Matrix []Entry

// NonGrouped returns the entries that are drawn individually. Grouped LEDs
// share the coordinate of their group leader and are skipped by the
// calibration pattern.
func (m Matrix) NonGrouped() Matrix {
	return lo.Filter(m, func(e Entry, _ int) bool { return !e.GroupedLed })
}

// CalculateTaleBorder returns the gap left around each tile so neighbouring
// tiles stay visually separated, proportional to the horizontal resolution.
func CalculateTaleBorder(screenResX int) int {
	return screenResX * 10 / 3840
}

// BuildFullScreenMatrix lays a frame of equal tiles around the screen edge,
// following the strip: bottom edge left to right, right edge upward, top edge
// right to left, left edge downward. Edge counts of zero skip that edge.
func BuildFullScreenMatrix(resX, resY, bottom, right, top, left int) Matrix {
	depthX := resX / 10
	depthY := resY / 10
	var m Matrix
	key := 0
	next := func(c Coordinate) {
		key++
		m = append(m, Entry{Key: key, Coordinate: c})
	}
	for i := 0; i < bottom; i++ {
		w := resX / bottom
		next(Coordinate{X: i * w, Y: resY - depthY, Width: w, Height: depthY})
	}
	for i := 0; i < right; i++ {
		h := resY / right
		next(Coordinate{X: resX - depthX, Y: resY - (i+1)*h, Width: depthX, Height: h})
	}
	for i := 0; i < top; i++ {
		w := resX / top
		next(Coordinate{X: resX - (i+1)*w, Y: 0, Width: w, Height: depthY})
	}
	for i := 0; i < left; i++ {
		h := resY / left
		next(Coordinate{X: 0, Y: i * h, Width: depthX, Height: h})
	}
	return m
}
