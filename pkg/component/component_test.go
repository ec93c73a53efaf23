package component

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/quark/pkg/css"
)

func TestBuildAttributesRawClassComesFirst(t *testing.T) {
	t.Parallel()

	c := &Component{Class: "extra", Display: css.Display(css.DisplayFlex)}
	attrs := c.BuildAttributes()

	assert.Equal(t, "extra d-flex", attrs.String("class"))
	_, hasStyle := attrs.Get("style")
	assert.False(t, hasStyle)
}

func TestBuildAttributesColors(t *testing.T) {
	t.Parallel()

	named := (&Component{TextColor: css.ParseColor("primary")}).BuildAttributes()
	assert.Equal(t, "text-primary", named.String("class"))
	_, hasStyle := named.Get("style")
	assert.False(t, hasStyle)

	raw := (&Component{TextColor: css.ParseColor("#abcdef")}).BuildAttributes()
	assert.Equal(t, "color: #abcdef", raw.String("style"))
	_, hasClass := raw.Get("class")
	assert.False(t, hasClass)

	both := (&Component{TextColor: css.White, BackgroundColor: css.Dark}).BuildAttributes()
	assert.Equal(t, "text-white bg-dark", both.String("class"))
}

func TestBuildAttributesFullComposition(t *testing.T) {
	t.Parallel()

	c := &Component{
		ID:              "hero",
		Class:           "extra",
		Style:           "color: red;",
		BackgroundColor: css.ParseColor("#abcdef"),
		TextColor:       css.Primary,
		Margin:          css.Margin(css.S3).FromTop().OnTablet(),
		Display:         css.Display(css.DisplayFlex),
		Opacity:         css.Opacity(css.Opacity50).AsStyle(),
	}
	attrs := c.BuildAttributes()

	assert.Equal(t, []string{"id", "class", "style"}, attrs.Keys())
	assert.Equal(t, "extra text-primary md-mt-3 d-flex", attrs.String("class"))
	assert.Equal(t, "color: red; background-color: #abcdef; opacity: 0.5", attrs.String("style"))
}

func TestBuildAttributesScalarOrder(t *testing.T) {
	t.Parallel()

	tab := 2
	c := &Component{
		AriaDescribedBy: "help",
		AriaLabel:       "Close",
		Role:            "button",
		Hidden:          true,
		TabIndex:        &tab,
		Title:           "Close dialog",
		ID:              "close",
	}
	attrs := c.BuildAttributes()

	assert.Equal(t, []string{"id", "title", "tabindex", "hidden", "role", "aria-label", "aria-describedby"}, attrs.Keys())
	v, _ := attrs.Get("tabindex")
	assert.Equal(t, 2, v)
	h, _ := attrs.Get("hidden")
	assert.Equal(t, true, h)
}

func TestBuildAttributesEmptyComponent(t *testing.T) {
	t.Parallel()

	attrs := (&Component{}).BuildAttributes()
	assert.Equal(t, 0, attrs.Len())
}

func TestBuildAttributesRouting(t *testing.T) {
	t.Parallel()

	var nilMargin *css.SpacingBuilder
	c := &Component{
		Margin:        nilMargin,
		Padding:       css.Padding(css.S1).AsStyle(),
		TextAlignment: css.TextAlign(css.TextAlignValue(css.Inherit)),
		BoxShadow:     css.BoxShadow(css.ShadowSm).AsStyle(),
		Float:         css.Raw("clearfix"),
		Visibility:    css.Raw("visibility: collapse"),
		TextBreak:     css.TextBreak(css.BreakDisabled),
	}
	attrs := c.BuildAttributes()

	assert.Equal(t, "clearfix", attrs.String("class"))
	assert.Equal(t, "padding: 0.25rem; text-align: inherit; visibility: collapse", attrs.String("style"))
}

func TestBuildAttributesSlotOrder(t *testing.T) {
	t.Parallel()

	c := &Component{
		BoxShadow: css.BoxShadow(css.ShadowLg),
		Display:   css.Display(css.DisplayGrid),
		Width:     css.Width(css.Dim100),
		Margin:    css.Margin(css.SizeAuto),
		ZIndex:    css.ZIndex(css.Z3),
	}
	assert.Equal(t, "m-auto w-100 d-grid z-3 shadow-lg", c.BuildAttributes().String("class"))
}

func TestBuildAttributesOverrides(t *testing.T) {
	t.Parallel()

	c := &Component{
		ID:      "generated",
		Class:   "base",
		Display: css.Display(css.DisplayBlock),
		Attributes: map[string]any{
			"style":     "margin: 0",
			"id":        "caller",
			"class":     "caller-class",
			"data-test": "hero",
		},
	}
	attrs := c.BuildAttributes()

	assert.Equal(t, []string{"id", "data-test", "class", "style"}, attrs.Keys())
	assert.Equal(t, "caller", attrs.String("id"))
	assert.Equal(t, "base d-block caller-class", attrs.String("class"))
	assert.Equal(t, "margin: 0", attrs.String("style"))
	assert.Equal(t, "hero", attrs.String("data-test"))
}

func TestBuildAttributesIgnoresNilOverrides(t *testing.T) {
	t.Parallel()

	c := &Component{
		ID:      "hero",
		Class:   "extra",
		Display: css.Display(css.DisplayFlex),
		Attributes: map[string]any{
			"class": nil,
			"style": nil,
			"id":    nil,
			"title": nil,
		},
	}
	attrs := c.BuildAttributes()

	assert.Equal(t, []string{"id", "class"}, attrs.Keys())
	assert.Equal(t, "hero", attrs.String("id"))
	assert.Equal(t, "extra d-flex", attrs.String("class"))
}

func TestBufferPoolResetsBetweenUses(t *testing.T) {
	first := acquireBuffer(" ")
	first.append("a")
	first.append("b")
	require.Equal(t, "a b", first.buf.String())
	releaseBuffer(first)

	second := acquireBuffer("; ")
	defer releaseBuffer(second)
	assert.Zero(t, second.buf.Len())
	second.append("x: 1")
	second.append("")
	second.append("y: 2")
	assert.Equal(t, "x: 1; y: 2", second.buf.String())
}

func TestBuildAttributesEventsCompose(t *testing.T) {
	t.Parallel()

	var calls []string
	record := func(name string) EventCallback {
		return NewEventCallback(func(context.Context, any) error {
			calls = append(calls, name)
			return nil
		})
	}

	c := &Component{
		OnClick: record("component"),
		OnBlur:  record("blur"),
		Attributes: map[string]any{
			"onclick": record("caller"),
			"onfocus": record("focus"),
		},
	}
	attrs := c.BuildAttributes()
	assert.Equal(t, []string{"onclick", "onblur", "onfocus"}, attrs.Keys())

	v, ok := attrs.Get("onclick")
	require.True(t, ok)
	cb, ok := v.(EventCallback)
	require.True(t, ok)
	require.NoError(t, cb.Invoke(context.Background(), nil))
	assert.Equal(t, []string{"component", "caller"}, calls)
}

func TestEventCallbackCompose(t *testing.T) {
	t.Parallel()

	errA := errors.New("a")
	errB := errors.New("b")
	ran := 0
	first := NewEventCallback(func(context.Context, any) error {
		ran++
		return errA
	})
	second := NewEventCallback(func(context.Context, any) error {
		ran++
		return errB
	})

	err := Compose(first, second).Invoke(context.Background(), "arg")
	assert.Equal(t, 2, ran)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)

	var empty EventCallback
	assert.False(t, empty.HasDelegate())
	assert.NoError(t, empty.Invoke(context.Background(), nil))
	assert.True(t, Compose(empty, second).HasDelegate())
	assert.False(t, Compose(empty, empty).HasDelegate())
}

func TestAfterRenderFiresOnFirstRenderOnly(t *testing.T) {
	t.Parallel()

	var refs []any
	c := &Component{OnElementReady: NewEventCallback(func(_ context.Context, ref any) error {
		refs = append(refs, ref)
		return nil
	})}

	require.NoError(t, c.AfterRender(context.Background(), true, "el-1"))
	require.NoError(t, c.AfterRender(context.Background(), false, "el-2"))
	assert.Equal(t, []any{"el-1"}, refs)

	require.NoError(t, (&Component{}).AfterRender(context.Background(), true, nil))
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	disposed := 0
	c := &Component{OnDispose: func() error {
		disposed++
		return nil
	}}
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, disposed)

	require.NoError(t, (&Component{}).Close())
}

func TestSlotAccessors(t *testing.T) {
	t.Parallel()

	order := SlotOrder()
	require.Len(t, order, 32)
	assert.Equal(t, "margin", order[0])
	assert.Equal(t, "box-shadow", order[len(order)-1])

	var c Component
	assert.True(t, c.SetSlot("text-alignment", css.TextAlign(css.AlignEnd)))
	assert.False(t, c.SetSlot("bogus", css.Raw("x")))
	u, ok := c.Slot("text-alignment")
	require.True(t, ok)
	assert.Equal(t, "text-end", u.ToClass())
	_, ok = c.Slot("margin")
	assert.False(t, ok)

	assert.True(t, c.SetColor(SlotBackgroundColor, css.Info))
	assert.False(t, c.SetColor("border-color", css.Info))
	assert.Equal(t, css.Info, c.BackgroundColor)
}

func TestBuildAttributesConcurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := &Component{Class: fmt.Sprintf("c%d", i), Margin: css.Margin(css.Size(i % 6))}
			results[i] = c.BuildAttributes().String("class")
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, fmt.Sprintf("c%d m-%d", i, i%6), got)
	}
}
