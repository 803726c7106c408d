package css

import "strings"

// Style holds the declarations of one inline style attribute.
type Style struct {
	properties map[string]string
}

// NewStyle creates an empty style.
func NewStyle() *Style {
	return &Style{properties: make(map[string]string)}
}

// Get returns a declared property value.
func (s *Style) Get(property string) (string, bool) {
	value, ok := s.properties[property]
	return value, ok
}

// Set declares a property value.
func (s *Style) Set(property, value string) {
	s.properties[property] = value
}

// ParseInline parses a style attribute value into a Style.
// Declarations are split on ';', property names are lowercased, and
// malformed declarations are dropped.
func ParseInline(styleAttr string) *Style {
	style := NewStyle()
	for _, decl := range strings.Split(styleAttr, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		property := strings.TrimSpace(strings.ToLower(parts[0]))
		value := strings.TrimSpace(parts[1])
		style.Set(property, value)
	}
	return style
}

// BackgroundColorToken extracts the color token from a `background`
// shorthand value, or "" if no token parses as a color.
func BackgroundColorToken(shorthand string) string {
	for _, token := range strings.Fields(shorthand) {
		if _, ok := ParseColor(token); ok {
			return token
		}
	}
	return ""
}
