// Package style provides the style value types attached to render nodes
// and YAML stylesheet loading.
package style

// FontWeight selects between normal and bold text.
type FontWeight string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
)

// Style is an immutable bundle of visual properties attached to a node.
// The zero value carries no properties.
type Style struct {
	// Color is the foreground (text) color.
	Color Color `yaml:"color,omitempty"`
	// Background is the fill color.
	Background Color `yaml:"background,omitempty"`
	// FontSize is the logical font size. Zero means inherited/default.
	FontSize float64 `yaml:"fontSize,omitempty"`
	// FontWeight selects the font weight. Empty means inherited/default.
	FontWeight FontWeight `yaml:"fontWeight,omitempty"`
	// Padding is the uniform padding in logical pixels.
	Padding float64 `yaml:"padding,omitempty"`
}

// IsZero reports whether the style carries no properties.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Merge returns a copy of s with any properties set on other overriding
// those of s. Zero-valued properties of other are ignored.
func (s Style) Merge(other Style) Style {
	if other.Color != 0 {
		s.Color = other.Color
	}
	if other.Background != 0 {
		s.Background = other.Background
	}
	if other.FontSize != 0 {
		s.FontSize = other.FontSize
	}
	if other.FontWeight != "" {
		s.FontWeight = other.FontWeight
	}
	if other.Padding != 0 {
		s.Padding = other.Padding
	}
	return s
}
