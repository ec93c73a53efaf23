// Package expr evaluates dotted chain expressions such as
// "Margin.S3.FromTop.OnTablet" into css builders.
package expr

import (
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/quark/pkg/component"
	"github.com/alexisbeaulieu97/quark/pkg/css"
	quarkerrors "github.com/alexisbeaulieu97/quark/pkg/errors"
)

// Result is one evaluated expression.
type Result struct {
	Expr string
	Slot string
	// Value is set for styling slots, Color for color slots.
	Value css.Utility
	Color css.Color
}

// IsColor reports whether the result targets a color slot.
func (r Result) IsColor() bool {
	return r.Slot == component.SlotTextColor || r.Slot == component.SlotBackgroundColor
}

// ToClass renders the result on its own.
func (r Result) ToClass() string {
	if r.IsColor() {
		if r.Slot == component.SlotTextColor {
			return r.Color.TextClass()
		}
		return r.Color.BackgroundClass()
	}
	if r.Value == nil {
		return ""
	}
	return r.Value.ToClass()
}

// ToStyle renders the result on its own.
func (r Result) ToStyle() string {
	if r.IsColor() {
		if r.Slot == component.SlotTextColor {
			return r.Color.TextStyle()
		}
		return r.Color.BackgroundStyle()
	}
	if r.Value == nil {
		return ""
	}
	return r.Value.ToStyle()
}

// Apply stores the result in its slot on c.
func (r Result) Apply(c *component.Component) bool {
	if r.IsColor() {
		return c.SetColor(r.Slot, r.Color)
	}
	return c.SetSlot(r.Slot, r.Value)
}

// Evaluate builds a single expression. Identifiers are case-insensitive.
func Evaluate(expression string) (Result, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return Result{}, quarkerrors.NewExpressionError(expression, "", -1, "empty expression")
	}

	head, rest, _ := strings.Cut(expression, ".")
	factory, ok := Lookup(head)
	if !ok {
		return Result{}, quarkerrors.NewExpressionError(expression, head, 0, "unknown concern")
	}
	result := Result{Expr: expression, Slot: factory.Slot}

	if factory.Color {
		if strings.TrimSpace(rest) == "" {
			return Result{}, quarkerrors.NewExpressionError(expression, head, 0, "missing color")
		}
		// A colour is a single step; dots are only allowed inside rgb(...) and friends.
		if i := indexOutsideParens(rest, '.'); i >= 0 {
			step, _, _ := strings.Cut(rest[i+1:], ".")
			return Result{}, quarkerrors.NewExpressionError(expression, step, 2, "unknown step for "+head)
		}
		result.Color = css.ParseColor(rest)
		return result, nil
	}

	if rest == "" {
		return Result{}, quarkerrors.NewExpressionError(expression, head, 0, "missing value")
	}

	chain := factory.New()
	for i, step := range strings.Split(rest, ".") {
		step = strings.TrimSpace(step)
		if step == "" {
			return Result{}, quarkerrors.NewExpressionError(expression, step, i+1, "empty step")
		}
		if !chain.Step(step) {
			return Result{}, quarkerrors.NewExpressionError(expression, step, i+1, "unknown step for "+head)
		}
	}
	result.Value = chain.Utility()
	return result, nil
}

// Parse evaluates whitespace-separated expressions in order. Whitespace
// inside parentheses does not separate, so TextColor.rgb(0 0 0) is one
// expression.
func Parse(input string) ([]Result, error) {
	fields := Split(input)
	results := make([]Result, 0, len(fields))
	for _, f := range fields {
		r, err := Evaluate(f)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Apply evaluates input and stores every result on c. A later expression for
// the same slot replaces an earlier one.
func Apply(c *component.Component, input string) error {
	results, err := Parse(input)
	if err != nil {
		return err
	}
	for _, r := range results {
		r.Apply(c)
	}
	return nil
}

// Split breaks input into expressions at whitespace outside parentheses.
func Split(input string) []string {
	var (
		fields []string
		depth  int
		start  = -1
	)
	for i, r := range input {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case unicode.IsSpace(r) && depth == 0:
			if start >= 0 {
				fields = append(fields, input[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, input[start:])
	}
	return fields
}

func indexOutsideParens(s string, b byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case b:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
