package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// SlotUsage renders how many of a component's styling slots are filled.
type SlotUsage struct {
	bar   progress.Model
	total int
}

// NewSlotUsage creates a usage bar for the given slot count.
func NewSlotUsage(total int) SlotUsage {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return SlotUsage{bar: bar, total: total}
}

// View renders the bar for the provided number of filled slots.
func (s SlotUsage) View(used int) string {
	ratio := 0.0
	if s.total > 0 {
		ratio = math.Min(1.0, float64(used)/float64(s.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d slots", used, s.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", s.bar.ViewAs(ratio))
}
