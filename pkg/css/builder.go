package css

import (
	"slices"
	"strings"
)

// Rule is one (value, side, breakpoint) tuple held by a builder.
type Rule[T comparable] struct {
	Value      T
	Side       Side
	Breakpoint Breakpoint
}

// Mode selects whether a builder's output lands in the class or the style attribute.
type Mode int

const (
	ModeClass Mode = iota
	ModeStyle
)

// Utility is anything that can render to a class string and a style string.
type Utility interface {
	ToClass() string
	ToStyle() string
}

// Moded is implemented by utilities that carry an explicit render mode.
type Moded interface {
	Mode() Mode
}

// Builder accumulates rules for a single concern.
//
// Builders mutate in place: every fluent method updates the receiver and
// returns it, so a chain expression owns the builder it produces. Use Clone
// to branch from an intermediate state.
type Builder[T comparable] struct {
	concern *Concern[T]
	rules   []Rule[T]
	mode    Mode
}

// Add appends a new rule for v on all sides with no breakpoint.
func (b *Builder[T]) Add(v T) *Builder[T] {
	b.rules = append(b.rules, Rule[T]{Value: v})
	return b
}

// On sets the breakpoint of the most recent rule. On an empty builder it
// seeds a rule holding the concern's default value.
func (b *Builder[T]) On(bp Breakpoint) *Builder[T] {
	if len(b.rules) == 0 {
		b.rules = append(b.rules, Rule[T]{Value: b.fallback(), Breakpoint: bp})
		return b
	}
	b.rules[len(b.rules)-1].Breakpoint = bp
	return b
}

// OnPhone is On(Phone). Phone adds no token, so the rule applies everywhere.
func (b *Builder[T]) OnPhone() *Builder[T] { return b.On(Phone) }

// OnMobile is On(Mobile): sm.
func (b *Builder[T]) OnMobile() *Builder[T] { return b.On(Mobile) }

// OnTablet is On(Tablet): md.
func (b *Builder[T]) OnTablet() *Builder[T] { return b.On(Tablet) }

// OnLaptop is On(Laptop): lg.
func (b *Builder[T]) OnLaptop() *Builder[T] { return b.On(Laptop) }

// OnDesktop is On(Desktop): xl.
func (b *Builder[T]) OnDesktop() *Builder[T] { return b.On(Desktop) }

// OnWide is On(Wide): xxl.
func (b *Builder[T]) OnWide() *Builder[T] { return b.On(Wide) }

// side narrows the most recent rule when it still targets all sides and
// appends a copy of it otherwise.
func (b *Builder[T]) side(s Side) {
	if len(b.rules) == 0 {
		b.rules = append(b.rules, Rule[T]{Value: b.fallback(), Side: s})
		return
	}
	last := &b.rules[len(b.rules)-1]
	if last.Side == SideAll {
		last.Side = s
		return
	}
	b.rules = append(b.rules, Rule[T]{Value: last.Value, Side: s, Breakpoint: last.Breakpoint})
}

func (b *Builder[T]) fallback() T {
	if b.concern == nil {
		var zero T
		return zero
	}
	return b.concern.fallback
}

// AsStyle routes the builder's output to the style attribute.
func (b *Builder[T]) AsStyle() *Builder[T] {
	b.mode = ModeStyle
	return b
}

// AsClass routes the builder's output to the class attribute (the default).
func (b *Builder[T]) AsClass() *Builder[T] {
	b.mode = ModeClass
	return b
}

// Mode reports where the output is routed. A nil builder reports ModeClass.
func (b *Builder[T]) Mode() Mode {
	if b == nil {
		return ModeClass
	}
	return b.mode
}

// Concern returns the table the builder renders with.
func (b *Builder[T]) Concern() *Concern[T] {
	if b == nil {
		return nil
	}
	return b.concern
}

// Rules returns a copy of the accumulated rules.
func (b *Builder[T]) Rules() []Rule[T] {
	if b == nil {
		return nil
	}
	return slices.Clone(b.rules)
}

// Len is the number of accumulated rules.
func (b *Builder[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.rules)
}

// IsEmpty reports whether the builder holds no rules.
func (b *Builder[T]) IsEmpty() bool {
	return b.Len() == 0
}

// Clone returns an independent copy.
func (b *Builder[T]) Clone() *Builder[T] {
	if b == nil {
		return nil
	}
	return &Builder[T]{concern: b.concern, rules: slices.Clone(b.rules), mode: b.mode}
}

// ToClass renders the rules as space-separated utility classes in rule order.
// Values without a class mapping contribute nothing.
func (b *Builder[T]) ToClass() string {
	if b.IsEmpty() || b.concern == nil {
		return ""
	}
	classes := make([]string, 0, len(b.rules))
	for _, r := range b.rules {
		cls := b.concern.class(r)
		if cls == "" || slices.Contains(classes, cls) {
			continue
		}
		classes = append(classes, cls)
	}
	return strings.Join(classes, " ")
}

// ToStyle renders the rules as "; "-joined declarations without a trailing semicolon.
func (b *Builder[T]) ToStyle() string {
	if b.IsEmpty() || b.concern == nil {
		return ""
	}
	decls := make([]string, 0, len(b.rules))
	for _, r := range b.rules {
		decls = append(decls, b.concern.style(r)...)
	}
	return strings.Join(decls, "; ")
}

// String renders according to the builder's mode.
func (b *Builder[T]) String() string {
	if b.Mode() == ModeStyle {
		return b.ToStyle()
	}
	return b.ToClass()
}
