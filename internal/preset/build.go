package preset

import (
	"fmt"

	"github.com/alexisbeaulieu97/quark/internal/expr"
	"github.com/alexisbeaulieu97/quark/internal/logger"
	"github.com/alexisbeaulieu97/quark/pkg/component"
	"github.com/alexisbeaulieu97/quark/pkg/css"
)

// Built pairs an entry with the component assembled from it.
type Built struct {
	Entry     Entry
	Component *component.Component
}

// Element wraps the component for markup rendering, with Text as its only child.
func (b Built) Element() component.Element {
	el := component.Element{Tag: b.Entry.TagOrDefault(), Component: b.Component}
	if b.Entry.Text != "" {
		el.Children = append(el.Children, component.Text(b.Entry.Text))
	}
	return el
}

// Component assembles a single entry.
func (e Entry) Component() (*component.Component, error) {
	c := &component.Component{
		ID:        e.ID,
		Class:     e.Class,
		Style:     e.Style,
		Title:     e.Title,
		Role:      e.Role,
		AriaLabel: e.AriaLabel,
		Hidden:    e.Hidden,
		TabIndex:  e.TabIndex,
	}
	if e.TextColor != "" {
		c.TextColor = css.ParseColor(e.TextColor)
	}
	if e.BackgroundColor != "" {
		c.BackgroundColor = css.ParseColor(e.BackgroundColor)
	}
	if len(e.Attributes) > 0 {
		c.Attributes = make(map[string]any, len(e.Attributes))
		for k, v := range e.Attributes {
			c.Attributes[k] = v
		}
	}
	for i, style := range e.Styles {
		if err := expr.Apply(c, style); err != nil {
			return nil, fmt.Errorf("component %s: styles[%d]: %w", e.ID, i, err)
		}
	}
	return c, nil
}

// Build assembles every entry in document order.
func (p *Preset) Build(log *logger.Logger) ([]Built, error) {
	log = log.WithFields(map[string]any{"preset": p.Name})

	out := make([]Built, 0, len(p.Components))
	for _, entry := range p.Components {
		c, err := entry.Component()
		if err != nil {
			log.Error(err, "component build failed")
			return nil, err
		}
		log.With("component", entry.ID).Debug("component built")
		out = append(out, Built{Entry: entry, Component: c})
	}
	return out, nil
}
