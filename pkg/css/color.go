package css

import "strings"

// Color is a palette name or a raw CSS color value. The zero value is unset.
type Color struct {
	name string
	raw  string
}

// Palette entries. Each renders as a theme class (text-primary, bg-primary).
var (
	Primary       = Color{name: "primary"}
	Secondary     = Color{name: "secondary"}
	Success       = Color{name: "success"}
	Danger        = Color{name: "danger"}
	Warning       = Color{name: "warning"}
	Info          = Color{name: "info"}
	Light         = Color{name: "light"}
	Dark          = Color{name: "dark"}
	Body          = Color{name: "body"}
	BodySecondary = Color{name: "body-secondary"}
	BodyTertiary  = Color{name: "body-tertiary"}
	BodyEmphasis  = Color{name: "body-emphasis"}
	Muted         = Color{name: "muted"}
	White         = Color{name: "white"}
	Black         = Color{name: "black"}
	Transparent   = Color{name: "transparent"}
)

var palette = []Color{
	Primary, Secondary, Success, Danger, Warning, Info, Light, Dark,
	Body, BodySecondary, BodyTertiary, BodyEmphasis, Muted, White, Black, Transparent,
}

// Palette returns the named colors in declaration order.
func Palette() []Color {
	out := make([]Color, len(palette))
	copy(out, palette)
	return out
}

// RawColor wraps an arbitrary CSS color such as "#abcdef" or "rgb(0 0 0)".
func RawColor(v string) Color {
	return Color{raw: strings.TrimSpace(v)}
}

// ParseColor returns the palette entry named by s, or a raw color otherwise.
func ParseColor(s string) Color {
	s = strings.TrimSpace(s)
	for _, c := range palette {
		if strings.EqualFold(c.name, s) {
			return c
		}
	}
	return RawColor(s)
}

// IsSet reports whether the color holds a palette name or a raw value.
func (c Color) IsSet() bool { return c.name != "" || c.raw != "" }

// IsNamed reports whether the color is a palette entry.
func (c Color) IsNamed() bool { return c.name != "" }

func (c Color) String() string {
	if c.name != "" {
		return c.name
	}
	return c.raw
}

// TextClass renders text-{name} for palette colors and "" otherwise.
func (c Color) TextClass() string { return c.class("text-") }

// BackgroundClass renders bg-{name} for palette colors and "" otherwise.
func (c Color) BackgroundClass() string { return c.class("bg-") }

// TextStyle renders "color: v" for raw colors and "" otherwise.
func (c Color) TextStyle() string { return c.style("color") }

// BackgroundStyle renders "background-color: v" for raw colors and "" otherwise.
func (c Color) BackgroundStyle() string { return c.style("background-color") }

func (c Color) class(prefix string) string {
	if c.name == "" {
		return ""
	}
	return prefix + c.name
}

func (c Color) style(property string) string {
	if c.name != "" || c.raw == "" {
		return ""
	}
	return property + ": " + c.raw
}
