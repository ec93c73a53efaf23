package tui

import (
	"bytes"
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/quark/internal/expr"
	"github.com/alexisbeaulieu97/quark/internal/logger"
	"github.com/alexisbeaulieu97/quark/internal/tui/components"
	"github.com/alexisbeaulieu97/quark/pkg/component"
	"github.com/alexisbeaulieu97/quark/pkg/css"
)

const historyLimit = 8

// Preview is the rendering of the current input.
type Preview struct {
	Class string
	Style string
	HTML  string
	Attrs *component.Attributes
	Used  int
	Err   error

	TextColor       css.Color
	BackgroundColor css.Color
}

// Model contains the Bubbletea state for the expression playground.
type Model struct {
	input    textinput.Model
	help     help.Model
	keys     keyMap
	history  components.History
	recall   int
	preview  Preview
	showHTML bool
	quitting bool
	log      *logger.Logger
}

// NewModel constructs a playground seeded with initial input.
func NewModel(initial string, log *logger.Logger) Model {
	in := textinput.New()
	in.Placeholder = "Margin.S3.FromTop.OnTablet Display.Flex"
	in.Prompt = "› "
	in.CharLimit = 512
	in.Width = 60
	in.SetValue(initial)
	in.Focus()

	m := Model{
		input:   in,
		help:    help.New(),
		keys:    defaultKeys,
		history: components.NewHistory(historyLimit),
		recall:  -1,
		log:     log,
	}
	m.preview = evaluate(in.Value())
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Preview returns the rendering of the current input.
func (m Model) Preview() Preview { return m.preview }

// Input returns the current input text.
func (m Model) Input() string { return m.input.Value() }

// History returns the submitted lines.
func (m Model) History() components.History { return m.history }

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.quitting }

// evaluate renders input on a fresh component.
func evaluate(input string) Preview {
	c := &component.Component{}
	if err := expr.Apply(c, input); err != nil {
		return Preview{Err: err}
	}

	attrs := c.BuildAttributes()
	used := 0
	for _, name := range component.SlotOrder() {
		if _, ok := c.Slot(name); ok {
			used++
		}
	}
	if c.TextColor.IsSet() {
		used++
	}
	if c.BackgroundColor.IsSet() {
		used++
	}

	var buf bytes.Buffer
	if err := (component.Element{Component: c}).Render(context.Background(), &buf); err != nil {
		return Preview{Err: err}
	}

	return Preview{
		Class: attrs.String("class"),
		Style: attrs.String("style"),
		HTML:  buf.String(),
		Attrs: attrs,
		Used:  used,

		TextColor:       c.TextColor,
		BackgroundColor: c.BackgroundColor,
	}
}

func totalSlots() int {
	return len(component.SlotOrder()) + 2
}
