package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/quark/pkg/css"
)

// swatchColors maps palette names to terminal colours.
var swatchColors = map[string]lipgloss.Color{
	"primary":        "#0D6EFD",
	"secondary":      "#6C757D",
	"success":        "#198754",
	"danger":         "#DC3545",
	"warning":        "#FFC107",
	"info":           "#0DCAF0",
	"light":          "#F8F9FA",
	"dark":           "#212529",
	"body":           "#212529",
	"body-secondary": "#595C5F",
	"body-tertiary":  "#8A8D90",
	"body-emphasis":  "#000000",
	"muted":          "#6C757D",
	"white":          "#FFFFFF",
	"black":          "#000000",
}

var swatchLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Swatch renders a colour block followed by label and the colour's value.
// Colours the terminal cannot show, such as transparent or rgb(), get the
// label only.
type Swatch struct {
	label string
	color css.Color
}

// NewSwatch creates a swatch for c.
func NewSwatch(label string, c css.Color) Swatch {
	return Swatch{label: label, color: c}
}

// TerminalColor resolves the colour to a lipgloss colour.
func (s Swatch) TerminalColor() (lipgloss.Color, bool) {
	if s.color.IsNamed() {
		tc, ok := swatchColors[s.color.String()]
		return tc, ok
	}
	raw := s.color.String()
	if strings.HasPrefix(raw, "#") && (len(raw) == 4 || len(raw) == 7) {
		return lipgloss.Color(raw), true
	}
	return "", false
}

func (s Swatch) View() string {
	if !s.color.IsSet() {
		return ""
	}
	text := swatchLabel.Render(s.label + " " + s.color.String())
	tc, ok := s.TerminalColor()
	if !ok {
		return "   " + text
	}
	return lipgloss.NewStyle().Background(tc).Render("  ") + " " + text
}
