package css

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB triple in [0,255] per channel.
type Color struct {
	R, G, B uint8
}

// ParseColor parses a CSS color token into a Color.
// Supported forms: 3- and 6-digit hex (with or without '#') and a small
// named-color table. Anything else, including "transparent" and
// "inherit", yields (zero, false), which signals the caller to skip
// the contrast check rather than fail it.
func ParseColor(token string) (Color, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" || token == "transparent" || token == "inherit" {
		return Color{}, false
	}

	namedColors := map[string]Color{
		"white":  {255, 255, 255},
		"black":  {0, 0, 0},
		"red":    {255, 0, 0},
		"blue":   {0, 0, 255},
		"green":  {0, 128, 0},
		"yellow": {255, 255, 0},
		"gray":   {128, 128, 128},
		"grey":   {128, 128, 128},
		"purple": {128, 0, 128},
		"orange": {255, 165, 0},
	}
	if color, ok := namedColors[token]; ok {
		return color, true
	}

	hex := strings.TrimPrefix(token, "#")
	switch len(hex) {
	case 3:
		// Expand #abc to #aabbcc
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
		// Already full form
	default:
		return Color{}, false
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, true
}

// Hex returns the color in lowercase #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
