package css

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	if l := (Color{0, 0, 0}).Luminance(); l != 0 {
		t.Errorf("black luminance: expected 0, got %f", l)
	}
	if l := (Color{255, 255, 255}).Luminance(); math.Abs(l-1.0) > 0.0001 {
		t.Errorf("white luminance: expected 1, got %f", l)
	}
	// Mid gray sits well below the 0.5 midpoint because of gamma.
	if l := (Color{128, 128, 128}).Luminance(); l < 0.2 || l > 0.25 {
		t.Errorf("gray luminance: expected ~0.216, got %f", l)
	}
}

func TestContrastRatio(t *testing.T) {
	black := Color{0, 0, 0}
	white := Color{255, 255, 255}
	if r := ContrastRatio(black, white); math.Abs(r-21.0) > 0.001 {
		t.Errorf("black on white: expected 21, got %f", r)
	}
	// Symmetric in its arguments.
	if ContrastRatio(black, white) != ContrastRatio(white, black) {
		t.Error("contrast ratio must not depend on argument order")
	}
	if r := ContrastRatio(white, white); math.Abs(r-1.0) > 0.001 {
		t.Errorf("white on white: expected 1, got %f", r)
	}
}

func TestThresholdFor(t *testing.T) {
	tests := []struct {
		fontSize string
		bold     bool
		expected float64
	}{
		{"", false, ThresholdNormalText},
		{"16px", false, ThresholdNormalText},
		{"24px", false, ThresholdLargeText},
		{"32px", false, ThresholdLargeText},
		{"18px", false, ThresholdNormalText},
		{"18px", true, ThresholdLargeText},
		{"18pt", false, ThresholdLargeText},
		{"14pt", false, ThresholdNormalText},
		{"14pt", true, ThresholdLargeText},
		{"1em", false, ThresholdNormalText},
	}
	for _, tc := range tests {
		if got := ThresholdFor(tc.fontSize, tc.bold); got != tc.expected {
			t.Errorf("ThresholdFor(%q, %v): expected %v, got %v", tc.fontSize, tc.bold, tc.expected, got)
		}
	}
}

func TestAdjustForeground(t *testing.T) {
	white := Color{255, 255, 255}
	tests := []struct {
		name string
		fg   Color
		bg   Color
	}{
		{"white on white", white, white},
		{"light gray on white", Color{200, 200, 200}, white},
		{"dark gray on black", Color{60, 60, 60}, Color{0, 0, 0}},
		{"red on white", Color{255, 0, 0}, white},
	}
	for _, tc := range tests {
		adjusted := AdjustForeground(tc.fg, tc.bg, 4.5)
		if r := ContrastRatio(adjusted, tc.bg); r < 4.5 {
			t.Errorf("%s: adjusted %s has ratio %.2f, expected >= 4.5", tc.name, adjusted.Hex(), r)
		}
	}
}

func TestAdjustForeground_Direction(t *testing.T) {
	// Light background darkens the text, dark background lightens it.
	white := Color{255, 255, 255}
	black := Color{0, 0, 0}
	onLight := AdjustForeground(Color{200, 200, 200}, white, 4.5)
	if onLight.Luminance() >= (Color{200, 200, 200}).Luminance() {
		t.Errorf("expected darker text on light background, got %s", onLight.Hex())
	}
	onDark := AdjustForeground(Color{60, 60, 60}, black, 4.5)
	if onDark.Luminance() <= (Color{60, 60, 60}).Luminance() {
		t.Errorf("expected lighter text on dark background, got %s", onDark.Hex())
	}
}

func TestAdjustForeground_AlreadyCompliant(t *testing.T) {
	black := Color{0, 0, 0}
	white := Color{255, 255, 255}
	if adjusted := AdjustForeground(black, white, 4.5); adjusted != black {
		t.Errorf("compliant color must be returned unchanged, got %s", adjusted.Hex())
	}
}
