package pitch

import (
	"image/color"
	"sort"
)

// paletteEntry pairs a shot outcome with its fixed marker color. The
// slice order is also the legend order for known outcomes.
type paletteEntry struct {
	Result string
	Color  color.NRGBA
}

// resultPalette is the fixed outcome palette. Outcomes outside this
// table fall back to black.
var resultPalette = []paletteEntry{
	{"Goal", color.NRGBA{R: 255, G: 255, A: 255}},
	{"Missed Shot", color.NRGBA{R: 255, A: 255}},
	{"Blocked Shot", color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
	{"Saved Shot", color.NRGBA{B: 255, A: 255}},
	{"Shot On Post", color.NRGBA{R: 255, G: 165, A: 255}},
	{"Unknown", color.NRGBA{R: 128, B: 128, A: 255}},
}

// fallbackColor is used for any outcome value not in the palette.
var fallbackColor = color.NRGBA{A: 255}

// ColorFor returns the marker color for a shot outcome.
func ColorFor(result string) color.NRGBA {
	for _, e := range resultPalette {
		if e.Result == result {
			return e.Color
		}
	}
	return fallbackColor
}

// LegendResults returns the legend entries for the given set of
// outcomes actually present: known outcomes in palette order first,
// then any unrecognized outcomes sorted. Outcomes with zero matching
// shots never appear.
func LegendResults(present map[string]bool) []string {
	out := make([]string, 0, len(present))
	known := make(map[string]bool, len(resultPalette))
	for _, e := range resultPalette {
		known[e.Result] = true
		if present[e.Result] {
			out = append(out, e.Result)
		}
	}

	var extras []string
	for r := range present {
		if !known[r] {
			extras = append(extras, r)
		}
	}
	sort.Strings(extras)
	return append(out, extras...)
}
