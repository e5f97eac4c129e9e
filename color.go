package rose

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the color.Color interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// Color converts RGBA to a non-premultiplied standard color.
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(math.Round(c.R * 255))),
		G: uint8(clamp255(math.Round(c.G * 255))),
		B: uint8(clamp255(math.Round(c.B * 255))),
		A: uint8(clamp255(math.Round(c.A * 255))),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGB255 creates an opaque color from components in the 0-255 domain.
// Out-of-range components are clamped.
func RGB255(r, g, b float64) RGBA {
	return RGB(clamp255(r)/255, clamp255(g)/255, clamp255(b)/255)
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RRGGBB", "RRGGBBAA", with or without '#'.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return RGBA{R: 0, G: 0, B: 0, A: 1}
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Hex returns the color as a CSS "#rrggbb" string, ignoring alpha.
func (c RGBA) Hex() string {
	n := c.Color()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Fixed chart colors.
var (
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}

	wedgeStroke    = Hex("#667eea")
	selectedStroke = Hex("#ff6b6b")
	gridStroke     = Hex("#dddddd")
	meanColor      = Hex("#ff4081")
	activeHour     = Hex("#555555")
	inactiveHour   = Hex("#999999")
	titleColor     = Hex("#444444")
	mutedText      = Hex("#666666")
)

// Scheme is a wedge color scheme.
type Scheme uint8

const (
	// SchemeBlues is the default cool/blue scheme.
	SchemeBlues Scheme = iota
	SchemePurples
	SchemeGreens
	SchemeOranges
)

// Schemes lists every scheme in display order.
var Schemes = []Scheme{SchemeBlues, SchemePurples, SchemeGreens, SchemeOranges}

// String returns the scheme name accepted by ParseScheme.
func (s Scheme) String() string {
	switch s {
	case SchemeBlues:
		return "blues"
	case SchemePurples:
		return "purples"
	case SchemeGreens:
		return "greens"
	case SchemeOranges:
		return "oranges"
	default:
		return fmt.Sprintf("Scheme(%d)", uint8(s))
	}
}

// ParseScheme converts a scheme name to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	for _, s := range Schemes {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Base returns the scheme color for intensity i in the 0-255 domain.
func (s Scheme) Base(i int) RGBA {
	f := float64(i)
	switch s {
	case SchemePurples:
		return RGB255(255-f, 255-f*0.6, 255)
	case SchemeGreens:
		return RGB255(255-f*0.7, 255, 255-f*0.7)
	case SchemeOranges:
		return RGB255(255, 255-f*0.6, 255-f*0.8)
	default:
		return RGB255(255-f, 255-f, 255)
	}
}

// Highlight returns the saturated fill used for the selected wedge.
func (s Scheme) Highlight() RGBA {
	switch s {
	case SchemePurples:
		return Hex("#9c27b0")
	case SchemeGreens:
		return Hex("#4caf50")
	case SchemeOranges:
		return Hex("#ff5722")
	default:
		return Hex("#2196f3")
	}
}

// Intensity maps a count to a color intensity in [30, 220].
// A zero maxCount is treated as 1, as in Layout.
func Intensity(count, maxCount uint) int {
	if maxCount == 0 {
		maxCount = 1
	}
	i := int(math.Floor(50 + float64(count)/float64(maxCount)*180))
	return min(max(i, 30), 220)
}
