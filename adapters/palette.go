package adapters

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// viridisControls are the viridis color ramp control points, evenly
// spaced over [0, 1].
var viridisControls = []string{"#440154", "#31688e", "#35b779", "#fde725"}

// viridisAnchors are the sample positions the matplotlib cycle uses.
func viridisAnchors() []float64 {
	return floats.Span(make([]float64, 5), 0.1, 0.9)
}

// sampleRamp linearly interpolates a hex color ramp at the given
// positions in [0, 1].
func sampleRamp(controls []string, positions []float64) []string {
	out := make([]string, len(positions))
	for i, t := range positions {
		out[i] = rampAt(controls, t)
	}
	return out
}

func rampAt(controls []string, t float64) string {
	if len(controls) == 0 {
		return "#000000"
	}
	if len(controls) == 1 {
		return controls[0]
	}
	t = math.Min(1, math.Max(0, t))
	scaled := t * float64(len(controls)-1)
	lo := int(math.Floor(scaled))
	if lo >= len(controls)-1 {
		lo = len(controls) - 2
	}
	frac := scaled - float64(lo)

	r1, g1, b1 := parseHex(controls[lo])
	r2, g2, b2 := parseHex(controls[lo+1])
	r := lerp(r1, r2, frac)
	g := lerp(g1, g2, frac)
	b := lerp(b1, b2, frac)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func parseHex(hex string) (r, g, b uint8) {
	var ri, gi, bi int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &ri, &gi, &bi); err != nil {
		return 0, 0, 0
	}
	return uint8(ri), uint8(gi), uint8(bi)
}
