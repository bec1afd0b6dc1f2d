// Package testpattern computes and renders the LED calibration pattern: one
// numbered, color-coded tile per LED, laid out on a canvas scaled down from
// the configured screen resolution. Layout is pure math; rendering targets a
// plain image.RGBA so any surface can display the result.
package testpattern

import (
	"fmt"
	"image"
	"image/color"

	"github.com/pkg/errors"

	"github.com/lumistrip/lumistrip/config"
	"github.com/lumistrip/lumistrip/led"
)

// ErrEmptyMatrix is returned when the configuration carries no LED matrix to
// draw.
var ErrEmptyMatrix = errors.New("testpattern: led matrix is empty")

// Group palette, cycled per LED group. Index 0 is unused; groupIndex yields
// values in 1..3.
var palette = [4]color.RGBA{
	{},
	{R: 0xff, A: 0xff},
	{G: 0x80, A: 0xff},
	{B: 0xff, A: 0xff},
}

var (
	colorBackground = color.RGBA{A: 0xff}
	colorHighlight  = color.RGBA{R: 0xff, G: 0xa5, A: 0xff}
	colorLabel      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Tile is one LED cell of the calibration pattern, in canvas pixels.
type Tile struct {
	Key       int
	Number    int    // LED number after start offset and orientation
	Label     string // "#<Number>"
	Rect      image.Rectangle
	Palette   int // 1..3 group color index
	Color     color.RGBA
	Highlight bool // first or last LED of the strip
}

// Layout is the computed calibration pattern.
type Layout struct {
	Width        int
	Height       int
	TileDistance int
	Tiles        []Tile
}

const (
	baseTileDistance = 10
	referencePixels  = 3_686_400 // 2560x1440
)

// Build computes the calibration layout for the given configuration and LED
// matrix. Grouped LEDs are skipped; every geometric quantity is scaled down
// by the configured OS scaling percentage.
func Build(cfg *config.Config, matrix led.Matrix) (*Layout, error) {
	entries := matrix.NonGrouped()
	if len(entries) == 0 {
		return nil, ErrEmptyMatrix
	}
	scaling := cfg.OsScaling
	l := &Layout{
		Width:  scaleDown(cfg.ScreenResX, scaling),
		Height: scaleDown(cfg.ScreenResY, scaling),
	}
	l.TileDistance = tileDistance(l.Width, l.Height)

	ledCount := len(matrix)
	first, last := numberRange(cfg, entries, ledCount)
	border := led.CalculateTaleBorder(cfg.ScreenResX)
	for _, e := range entries {
		n := LedNumber(cfg, e.Key, ledCount)
		x := scaleDown(e.X, scaling)
		y := scaleDown(e.Y, scaling)
		w := scaleDown(e.Width, scaling)
		h := scaleDown(e.Height, scaling)
		p := groupIndex(e.Key, cfg.GroupBy)
		l.Tiles = append(l.Tiles, Tile{
			Key:       e.Key,
			Number:    n,
			Label:     fmt.Sprintf("#%d", n),
			Rect:      image.Rect(x+border, y+border, x+w, y+h),
			Palette:   p,
			Color:     palette[p],
			Highlight: n == first || n == last,
		})
	}
	return l, nil
}

// LedNumber maps a matrix key to the number shown on its tile, accounting
// for the configured start offset and strip orientation. Numbers wrap around
// the strip length, staying in 1..ledCount.
func LedNumber(cfg *config.Config, key, ledCount int) int {
	if cfg.Orientation == config.OrientationClockwise {
		n := ledCount - (key - 1) - cfg.LedStartOffset
		if n <= 0 {
			n += ledCount
		}
		return n
	}
	if key <= cfg.LedStartOffset {
		return ledCount - (cfg.LedStartOffset - key)
	}
	return key - cfg.LedStartOffset
}

// numberRange returns the smallest and largest LED numbers present among the
// drawn entries. Those two tiles are highlighted so the strip ends are easy
// to spot.
func numberRange(cfg *config.Config, entries led.Matrix, ledCount int) (first, last int) {
	first = ledCount + 1
	for _, e := range entries {
		n := LedNumber(cfg, e.Key, ledCount)
		if n < first {
			first = n
		}
		if n > last {
			last = n
		}
	}
	return first, last
}

// groupIndex cycles key/groupBy into the 1..3 palette range.
func groupIndex(key, groupBy int) int {
	if groupBy < 1 {
		groupBy = 1
	}
	g := (key / groupBy) % 3
	if g == 0 {
		g = 3
	}
	return g
}

// scaleDown converts a real pixel quantity to canvas pixels for the given OS
// scaling percentage. 100 means no scaling.
func scaleDown(value, osScaling int) int {
	return value * 100 / osScaling
}

// tileDistance shrinks the default tile spacing proportionally on canvases
// smaller than the reference resolution.
func tileDistance(width, height int) int {
	d := width * height * baseTileDistance / referencePixels
	if d > baseTileDistance {
		d = baseTileDistance
	}
	return d
}
