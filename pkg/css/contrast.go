package css

import (
	"math"
	"strconv"
	"strings"
)

// WCAG contrast thresholds.
const (
	ThresholdNormalText = 4.5
	ThresholdLargeText  = 3.0
)

// Luminance returns the WCAG relative luminance of the color.
// Each sRGB channel is linearized piecewise (divide by 12.92 below
// 0.03928, otherwise gamma-expand with exponent 2.4 and offset 0.055)
// and the channels are combined with the 0.2126/0.7152/0.0722 weights.
func (c Color) Luminance() float64 {
	linear := func(channel uint8) float64 {
		v := float64(channel) / 255.0
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// always >= 1.0.
func ContrastRatio(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	lighter, darker := math.Max(la, lb), math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// ThresholdFor selects the contrast threshold for a piece of text.
// The default is 4.5:1; text qualifies for the 3.0:1 large-text
// exemption at >=24px (or >=18px bold) and >=18pt (or >=14pt bold).
// An unparseable or absent font size keeps the default.
func ThresholdFor(fontSize string, bold bool) float64 {
	size, unit, ok := parseFontSize(fontSize)
	if !ok {
		return ThresholdNormalText
	}
	switch unit {
	case "px":
		if size >= 24 || (size >= 18 && bold) {
			return ThresholdLargeText
		}
	case "pt":
		if size >= 18 || (size >= 14 && bold) {
			return ThresholdLargeText
		}
	}
	return ThresholdNormalText
}

// parseFontSize splits a declared size like "18pt" or "24px" into its
// numeric value and unit.
func parseFontSize(fontSize string) (float64, string, bool) {
	fontSize = strings.ToLower(strings.TrimSpace(fontSize))
	for _, unit := range []string{"px", "pt"} {
		if strings.HasSuffix(fontSize, unit) {
			num := strings.TrimSpace(strings.TrimSuffix(fontSize, unit))
			if size, err := strconv.ParseFloat(num, 64); err == nil {
				return size, unit, true
			}
			return 0, "", false
		}
	}
	return 0, "", false
}

// adjustStep is the per-channel intensity change used by the
// auto-correction search.
const adjustStep = 5

// maxAdjustSteps bounds the auto-correction search.
const maxAdjustSteps = 50

// AdjustForeground searches for a foreground color meeting the target
// contrast ratio against the background. The direction is chosen from
// the background's luminance: darken the foreground on a light
// background, lighten it on a dark one. The search moves every channel
// by a fixed step per iteration, recomputing the ratio each time, and
// returns the first color that meets the target. If no step within the
// bound succeeds, pure black (light background) or pure white (dark
// background) is returned as a guaranteed-safe fallback.
func AdjustForeground(fg, bg Color, target float64) Color {
	darken := bg.Luminance() > 0.5

	current := fg
	for i := 0; i < maxAdjustSteps; i++ {
		if ContrastRatio(current, bg) >= target {
			return current
		}
		if darken {
			current = Color{
				R: stepDown(current.R),
				G: stepDown(current.G),
				B: stepDown(current.B),
			}
		} else {
			current = Color{
				R: stepUp(current.R),
				G: stepUp(current.G),
				B: stepUp(current.B),
			}
		}
	}
	if ContrastRatio(current, bg) >= target {
		return current
	}
	if darken {
		return Color{0, 0, 0}
	}
	return Color{255, 255, 255}
}

func stepDown(channel uint8) uint8 {
	if channel < adjustStep {
		return 0
	}
	return channel - adjustStep
}

func stepUp(channel uint8) uint8 {
	if channel > 255-adjustStep {
		return 255
	}
	return channel + adjustStep
}
