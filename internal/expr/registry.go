package expr

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/quark/pkg/component"
	"github.com/alexisbeaulieu97/quark/pkg/css"
	quarkerrors "github.com/alexisbeaulieu97/quark/pkg/errors"
)

// Chain receives the steps of one expression after the concern name.
type Chain interface {
	// Step applies a value, side, breakpoint or mode step. It reports false
	// when the step means nothing to this concern.
	Step(name string) bool
	Utility() css.Utility
}

// Factory describes a concern reachable from chain expressions.
type Factory struct {
	// Slot is the component slot the built value lands in.
	Slot string
	// Steps lists the value steps, for help output.
	Steps []string
	// New starts an empty chain. Nil for color factories.
	New func() Chain
	// Color marks factories whose single argument is a color.
	Color bool
}

type entry struct {
	name    string
	factory Factory
}

var (
	registryMu sync.RWMutex
	registry   = builtins()
)

// Register adds a factory under name. Names are matched case-insensitively.
func Register(name string, f Factory) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return quarkerrors.NewRegistryError(name, fmt.Errorf("name is empty"))
	}
	if f.New == nil && !f.Color {
		return quarkerrors.NewRegistryError(name, fmt.Errorf("factory has no constructor"))
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[key]; exists {
		return quarkerrors.NewRegistryError(name, fmt.Errorf("concern already registered"))
	}
	registry[key] = entry{name: name, factory: f}
	return nil
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	e, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return e.factory, ok
}

// Names returns the registered concern names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

// Reset drops custom registrations and restores the built-in concerns (for tests).
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = builtins()
}

func builtins() map[string]entry {
	factories := []struct {
		name string
		f    Factory
	}{
		{"Margin", SpacingFactory(css.MarginConcern)},
		{"Padding", SpacingFactory(css.PaddingConcern)},
		{"Border", SpacingFactory(css.BorderConcern)},
		{"Gap", ConcernFactory(css.GapConcern)},
		{"Width", ConcernFactory(css.WidthConcern)},
		{"Height", ConcernFactory(css.HeightConcern)},
		{"Display", ConcernFactory(css.DisplayConcern)},
		{"Flex", ConcernFactory(css.FlexConcern)},
		{"Opacity", ConcernFactory(css.OpacityConcern)},
		{"ZIndex", ConcernFactory(css.ZIndexConcern)},
		{"PointerEvents", ConcernFactory(css.PointerEventsConcern)},
		{"UserSelect", ConcernFactory(css.UserSelectConcern)},
		{"TextTransform", ConcernFactory(css.TextTransformConcern)},
		{"FontWeight", ConcernFactory(css.FontWeightConcern)},
		{"FontStyle", ConcernFactory(css.FontStyleConcern)},
		{"LineHeight", ConcernFactory(css.LineHeightConcern)},
		{"TextWrap", ConcernFactory(css.TextWrapConcern)},
		{"TextBreak", ConcernFactory(css.TextBreakConcern)},
		{"TextSize", ConcernFactory(css.TextSizeConcern)},
		{"TextOverflow", ConcernFactory(css.TextOverflowConcern)},
		{"Position", ConcernFactory(css.PositionConcern)},
		{"PositionOffset", ConcernFactory(css.PositionOffsetConcern)},
		{"Overflow", ConcernFactory(css.OverflowConcern)},
		{"OverflowX", ConcernFactory(css.OverflowXConcern)},
		{"OverflowY", ConcernFactory(css.OverflowYConcern)},
		{"ObjectFit", ConcernFactory(css.ObjectFitConcern)},
		{"TextAlignment", ConcernFactory(css.TextAlignConcern)},
		{"TextDecoration", ConcernFactory(css.TextDecorationConcern)},
		{"VerticalAlign", ConcernFactory(css.VerticalAlignConcern)},
		{"Float", ConcernFactory(css.FloatConcern)},
		{"Visibility", ConcernFactory(css.VisibilityConcern)},
		{"BoxShadow", ConcernFactory(css.BoxShadowConcern)},
		{"TextColor", ColorFactory(component.SlotTextColor)},
		{"BackgroundColor", ColorFactory(component.SlotBackgroundColor)},
	}

	out := make(map[string]entry, len(factories))
	for _, item := range factories {
		out[strings.ToLower(item.name)] = entry{name: item.name, factory: item.f}
	}
	return out
}

func stepNames[T comparable](c *css.Concern[T]) []string {
	tokens := c.Tokens()
	steps := make([]string, len(tokens))
	for i, tok := range tokens {
		steps[i] = tok.Step
	}
	return steps
}

// ConcernFactory exposes a keyword concern: steps are its values, breakpoints
// and AsStyle/AsClass.
func ConcernFactory[T comparable](c *css.Concern[T]) Factory {
	return Factory{
		Slot:  c.Name(),
		Steps: stepNames(c),
		New: func() Chain {
			return &concernChain[T]{concern: c, b: c.Start()}
		},
	}
}

// SpacingFactory exposes a sided spacing concern, adding side steps such as
// FromTop and OnX.
func SpacingFactory(c *css.Concern[css.Size]) Factory {
	return Factory{
		Slot:  c.Name(),
		Steps: stepNames(c),
		New: func() Chain {
			return &spacingChain{concern: c, b: css.Spacing(c)}
		},
	}
}

// ColorFactory exposes a color slot. The whole remainder of the expression
// is the color, so raw values may contain dots.
func ColorFactory(slot string) Factory {
	palette := css.Palette()
	steps := make([]string, len(palette))
	for i, c := range palette {
		steps[i] = c.String()
	}
	return Factory{Slot: slot, Steps: steps, Color: true}
}

type concernChain[T comparable] struct {
	concern *css.Concern[T]
	b       *css.Builder[T]
}

func (c *concernChain[T]) Step(name string) bool {
	if v, ok := c.concern.Lookup(name); ok {
		c.b.Add(v)
		return true
	}
	if bp, ok := css.ParseBreakpoint(name); ok {
		c.b.On(bp)
		return true
	}
	switch strings.ToLower(name) {
	case "asstyle":
		c.b.AsStyle()
	case "asclass":
		c.b.AsClass()
	default:
		return false
	}
	return true
}

func (c *concernChain[T]) Utility() css.Utility { return c.b }

type spacingChain struct {
	concern *css.Concern[css.Size]
	b       *css.SpacingBuilder
}

func (c *spacingChain) Step(name string) bool {
	if v, ok := c.concern.Lookup(name); ok {
		c.b.Size(v)
		return true
	}
	if side, ok := css.ParseSide(name); ok {
		c.b.Side(side)
		return true
	}
	if bp, ok := css.ParseBreakpoint(name); ok {
		c.b.On(bp)
		return true
	}
	switch strings.ToLower(name) {
	case "asstyle":
		c.b.AsStyle()
	case "asclass":
		c.b.AsClass()
	default:
		return false
	}
	return true
}

func (c *spacingChain) Utility() css.Utility { return c.b }
