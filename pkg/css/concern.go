package css

import (
	"strings"
)

// Placement controls where a breakpoint token is spliced into a class fragment.
type Placement int

const (
	// PlacePrefix renders {bp}-{class}: md-mt-2, md-d-flex.
	PlacePrefix Placement = iota
	// PlaceInfix inserts the token after the first hyphen (opacity-md-50) and
	// falls back to a prefix when the fragment has none (md-visible).
	PlaceInfix
)

func (p Placement) apply(class, token string) string {
	if token == "" {
		return class
	}
	if p == PlaceInfix {
		if i := strings.IndexByte(class, '-'); i > 0 {
			return class[:i+1] + token + class[i:]
		}
	}
	return token + "-" + class
}

// Token is one row of a concern's closed value table.
type Token[T comparable] struct {
	// Step is the fluent name used by chain expressions, e.g. "InlineBlock".
	Step  string
	Value T
	// Class is the utility class fragment; empty for style-only values.
	Class string
	// Style holds the declarations for the value ("display: flex"). For
	// concerns with a side axis it holds the bare value ("1rem") instead and
	// the property is derived from the rule's side.
	Style string
}

type sideSpec struct {
	property string
	suffix   string
}

func (s sideSpec) declarations(side Side, value string) []string {
	props := side.Properties()
	if len(props) == 0 {
		return []string{s.property + s.suffix + ": " + value}
	}
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, s.property+"-"+p+s.suffix+": "+value)
	}
	return out
}

// Concern is the static table for one CSS concern: its values, how each
// renders, where breakpoints go and which value a bare breakpoint seeds.
type Concern[T comparable] struct {
	name      string
	placement Placement
	fallback  T
	tokens    []Token[T]
	index     map[T]int
	sides     *sideSpec
}

func newConcern[T comparable](name string, placement Placement, fallback T, tokens []Token[T]) *Concern[T] {
	c := &Concern[T]{
		name:      name,
		placement: placement,
		fallback:  fallback,
		tokens:    tokens,
		index:     make(map[T]int, len(tokens)),
	}
	for i, tok := range tokens {
		if _, exists := c.index[tok.Value]; !exists {
			c.index[tok.Value] = i
		}
	}
	return c
}

func (c *Concern[T]) withSides(property, suffix string) *Concern[T] {
	c.sides = &sideSpec{property: property, suffix: suffix}
	return c
}

// New starts a builder holding a single rule for v.
func (c *Concern[T]) New(v T) *Builder[T] {
	return &Builder[T]{concern: c, rules: []Rule[T]{{Value: v}}}
}

// Start returns a builder with no rules. Chaining a breakpoint or side onto
// it seeds the concern's default value.
func (c *Concern[T]) Start() *Builder[T] {
	return &Builder[T]{concern: c}
}

// Name is the slot name of the concern, e.g. "margin" or "overflow-x".
func (c *Concern[T]) Name() string { return c.name }

// Placement reports where breakpoint tokens are spliced.
func (c *Concern[T]) Placement() Placement { return c.placement }

// Default is the value seeded when a breakpoint is chained onto an empty builder.
func (c *Concern[T]) Default() T { return c.fallback }

// Sided reports whether the concern has a box-side axis.
func (c *Concern[T]) Sided() bool { return c.sides != nil }

// Tokens returns a copy of the value table in declaration order.
func (c *Concern[T]) Tokens() []Token[T] {
	out := make([]Token[T], len(c.tokens))
	copy(out, c.tokens)
	return out
}

// Lookup finds a value by its step name, case-insensitively.
func (c *Concern[T]) Lookup(step string) (T, bool) {
	for _, tok := range c.tokens {
		if strings.EqualFold(tok.Step, step) {
			return tok.Value, true
		}
	}
	var zero T
	return zero, false
}

func (c *Concern[T]) token(v T) (Token[T], bool) {
	i, ok := c.index[v]
	if !ok {
		return Token[T]{}, false
	}
	return c.tokens[i], true
}

func (c *Concern[T]) class(r Rule[T]) string {
	tok, ok := c.token(r.Value)
	if !ok || tok.Class == "" {
		return ""
	}
	class := tok.Class
	if c.sides != nil && r.Side != SideAll {
		if i := strings.IndexByte(class, '-'); i > 0 {
			class = class[:i] + r.Side.Infix() + class[i:]
		}
	}
	return c.placement.apply(class, r.Breakpoint.Token())
}

func (c *Concern[T]) style(r Rule[T]) []string {
	tok, ok := c.token(r.Value)
	if !ok || tok.Style == "" {
		return nil
	}
	if c.sides != nil {
		return c.sides.declarations(r.Side, tok.Style)
	}
	return []string{tok.Style}
}
