// Package component aggregates styling slots, scalar attributes and event
// handlers into the attribute set of a rendered element.
package component

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/quark/pkg/css"
)

// Component is the base of every styled element. Each slot is optional; an
// unset slot, or one that renders empty, contributes nothing.
type Component struct {
	ID              string
	Title           string
	TabIndex        *int
	Hidden          bool
	Role            string
	AriaLabel       string
	AriaDescribedBy string

	// Class and Style seed the class and style attributes ahead of any slot.
	Class string
	Style string
	// Attributes are caller overrides applied after everything else. Nil
	// values are ignored.
	Attributes map[string]any

	TextColor       css.Color
	BackgroundColor css.Color

	Margin         css.Utility
	Padding        css.Utility
	Width          css.Utility
	Height         css.Utility
	Display        css.Utility
	Flex           css.Utility
	Gap            css.Utility
	Border         css.Utility
	Opacity        css.Utility
	ZIndex         css.Utility
	PointerEvents  css.Utility
	UserSelect     css.Utility
	TextTransform  css.Utility
	FontWeight     css.Utility
	FontStyle      css.Utility
	LineHeight     css.Utility
	TextWrap       css.Utility
	TextBreak      css.Utility
	TextSize       css.Utility
	TextOverflow   css.Utility
	Position       css.Utility
	PositionOffset css.Utility
	Overflow       css.Utility
	OverflowX      css.Utility
	OverflowY      css.Utility
	ObjectFit      css.Utility
	TextAlignment  css.Utility
	TextDecoration css.Utility
	VerticalAlign  css.Utility
	Float          css.Utility
	Visibility     css.Utility
	BoxShadow      css.Utility

	OnClick        EventCallback
	OnDoubleClick  EventCallback
	OnMouseOver    EventCallback
	OnMouseOut     EventCallback
	OnKeyDown      EventCallback
	OnFocus        EventCallback
	OnBlur         EventCallback
	OnElementReady EventCallback

	// OnDispose runs once, on the first Close.
	OnDispose func() error

	closed bool
}

const (
	SlotTextColor       = "text-color"
	SlotBackgroundColor = "background-color"
)

type slotRef struct {
	name string
	ref  *css.Utility
}

// slots lists the styling slots in emission order.
func (c *Component) slots() []slotRef {
	return []slotRef{
		{"margin", &c.Margin},
		{"padding", &c.Padding},
		{"width", &c.Width},
		{"height", &c.Height},
		{"display", &c.Display},
		{"flex", &c.Flex},
		{"gap", &c.Gap},
		{"border", &c.Border},
		{"opacity", &c.Opacity},
		{"z-index", &c.ZIndex},
		{"pointer-events", &c.PointerEvents},
		{"user-select", &c.UserSelect},
		{"text-transform", &c.TextTransform},
		{"font-weight", &c.FontWeight},
		{"font-style", &c.FontStyle},
		{"line-height", &c.LineHeight},
		{"text-wrap", &c.TextWrap},
		{"text-break", &c.TextBreak},
		{"text-size", &c.TextSize},
		{"text-overflow", &c.TextOverflow},
		{"position", &c.Position},
		{"position-offset", &c.PositionOffset},
		{"overflow", &c.Overflow},
		{"overflow-x", &c.OverflowX},
		{"overflow-y", &c.OverflowY},
		{"object-fit", &c.ObjectFit},
		{"text-alignment", &c.TextAlignment},
		{"text-decoration", &c.TextDecoration},
		{"vertical-align", &c.VerticalAlign},
		{"float", &c.Float},
		{"visibility", &c.Visibility},
		{"box-shadow", &c.BoxShadow},
	}
}

// SlotOrder returns the styling slot names in the order BuildAttributes
// emits them.
func SlotOrder() []string {
	var c Component
	refs := c.slots()
	names := make([]string, len(refs))
	for i, s := range refs {
		names[i] = s.name
	}
	return names
}

// SetSlot assigns u to the named styling slot. It reports false for unknown names.
func (c *Component) SetSlot(name string, u css.Utility) bool {
	for _, s := range c.slots() {
		if s.name == name {
			*s.ref = u
			return true
		}
	}
	return false
}

// Slot returns the value held by the named styling slot.
func (c *Component) Slot(name string) (css.Utility, bool) {
	for _, s := range c.slots() {
		if s.name == name {
			return *s.ref, *s.ref != nil
		}
	}
	return nil, false
}

// SetColor assigns a color slot (SlotTextColor or SlotBackgroundColor).
func (c *Component) SetColor(name string, color css.Color) bool {
	switch name {
	case SlotTextColor:
		c.TextColor = color
	case SlotBackgroundColor:
		c.BackgroundColor = color
	default:
		return false
	}
	return true
}

var eventAttributes = []struct {
	name string
	get  func(*Component) EventCallback
}{
	{"onclick", func(c *Component) EventCallback { return c.OnClick }},
	{"ondblclick", func(c *Component) EventCallback { return c.OnDoubleClick }},
	{"onmouseover", func(c *Component) EventCallback { return c.OnMouseOver }},
	{"onmouseout", func(c *Component) EventCallback { return c.OnMouseOut }},
	{"onkeydown", func(c *Component) EventCallback { return c.OnKeyDown }},
	{"onfocus", func(c *Component) EventCallback { return c.OnFocus }},
	{"onblur", func(c *Component) EventCallback { return c.OnBlur }},
}

type buffer struct {
	buf bytes.Buffer
	sep string
}

func (b *buffer) append(s string) {
	if s == "" {
		return
	}
	if b.buf.Len() > 0 {
		b.buf.WriteString(b.sep)
	}
	b.buf.WriteString(s)
}

// Buffers that grew past this are left to the garbage collector.
const maxPooledBuffer = 4 << 10

var bufferPool = sync.Pool{
	New: func() any { return new(buffer) },
}

func acquireBuffer(sep string) *buffer {
	b := bufferPool.Get().(*buffer)
	b.buf.Reset()
	b.sep = sep
	return b
}

func releaseBuffer(b *buffer) {
	if b.buf.Cap() > maxPooledBuffer {
		return
	}
	b.buf.Reset()
	bufferPool.Put(b)
}

func cleanClass(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func cleanStyle(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "; ")
}

// BuildAttributes renders the component into its ordered attribute set.
// Scalars come first, then event handlers and caller overrides; class and
// style are finalized last when non-empty.
func (c *Component) BuildAttributes() *Attributes {
	classes := acquireBuffer(" ")
	defer releaseBuffer(classes)
	styles := acquireBuffer("; ")
	defer releaseBuffer(styles)

	attrs := NewAttributes()
	classes.append(cleanClass(c.Class))
	styles.append(cleanStyle(c.Style))

	if c.ID != "" {
		attrs.Set("id", c.ID)
	}
	if c.Title != "" {
		attrs.Set("title", c.Title)
	}
	if c.TabIndex != nil {
		attrs.Set("tabindex", *c.TabIndex)
	}
	if c.Hidden {
		attrs.Set("hidden", true)
	}
	if c.Role != "" {
		attrs.Set("role", c.Role)
	}
	if c.AriaLabel != "" {
		attrs.Set("aria-label", c.AriaLabel)
	}
	if c.AriaDescribedBy != "" {
		attrs.Set("aria-describedby", c.AriaDescribedBy)
	}

	classes.append(c.TextColor.TextClass())
	styles.append(c.TextColor.TextStyle())
	classes.append(c.BackgroundColor.BackgroundClass())
	styles.append(c.BackgroundColor.BackgroundStyle())

	for _, s := range c.slots() {
		route(*s.ref, classes, styles)
	}

	for _, ev := range eventAttributes {
		if cb := ev.get(c); cb.HasDelegate() {
			attrs.Set(ev.name, cb)
		}
	}

	c.applyOverrides(attrs, classes, styles)

	if classes.buf.Len() > 0 {
		attrs.Set("class", classes.buf.String())
	}
	if styles.buf.Len() > 0 {
		attrs.Set("style", styles.buf.String())
	}
	return attrs
}

// route sends a slot's output to the class or style buffer.
func route(u css.Utility, classes, styles *buffer) {
	if u == nil {
		return
	}
	if m, ok := u.(css.Moded); ok {
		if m.Mode() == css.ModeStyle {
			styles.append(u.ToStyle())
			return
		}
		if cls := u.ToClass(); cls != "" {
			classes.append(cls)
			return
		}
		styles.append(u.ToStyle())
		return
	}
	if st := u.ToStyle(); st != "" {
		styles.append(st)
		return
	}
	classes.append(u.ToClass())
}

func (c *Component) applyOverrides(attrs *Attributes, classes, styles *buffer) {
	if len(c.Attributes) == 0 {
		return
	}
	keys := make([]string, 0, len(c.Attributes))
	for k := range c.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := c.Attributes[k]
		if v == nil {
			continue
		}
		switch k {
		case "class":
			classes.append(cleanClass(fmt.Sprint(v)))
			continue
		case "style":
			styles.append(cleanStyle(fmt.Sprint(v)))
			continue
		}
		if cb, ok := v.(EventCallback); ok {
			if existing, found := attrs.Get(k); found {
				if prev, isEvent := existing.(EventCallback); isEvent {
					attrs.Set(k, Compose(prev, cb))
					continue
				}
			}
		}
		attrs.Set(k, v)
	}
}

// AfterRender notifies OnElementReady on the first render only.
func (c *Component) AfterRender(ctx context.Context, firstRender bool, ref any) error {
	if !firstRender {
		return nil
	}
	return c.OnElementReady.Invoke(ctx, ref)
}

// Close runs OnDispose once. Later calls are no-ops.
func (c *Component) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.OnDispose == nil {
		return nil
	}
	return c.OnDispose()
}
