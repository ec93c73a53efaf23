package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcernRendering(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		builder   Utility
		wantClass string
		wantStyle string
	}{
		{"display flex", Display(DisplayFlex), "d-flex", "display: flex"},
		{"display on desktop", Display(DisplayNone).OnDesktop(), "xl-d-none", "display: none"},
		{"flex justify between", Flex(FlexJustifyBetween), "justify-content-between", "justify-content: space-between"},
		{"flex align start", Flex(FlexAlignStart), "align-items-start", "align-items: flex-start"},
		{"width half", Width(Dim50), "w-50", "width: 50%"},
		{"height auto on mobile", Height(DimAuto).OnMobile(), "sm-h-auto", "height: auto"},
		{"opacity infix", Opacity(Opacity50).OnTablet(), "opacity-md-50", "opacity: 0.5"},
		{"opacity full", Opacity(Opacity100), "opacity-100", "opacity: 1"},
		{"z-index negative", ZIndex(ZN1), "z-n1", "z-index: -1"},
		{"z-index on laptop", ZIndex(Z2).OnLaptop(), "z-lg-2", "z-index: 2"},
		{"pointer events", PointerEvents(PointerNone), "pe-none", "pointer-events: none"},
		{"user select", UserSelect(SelectAll), "user-select-all", "user-select: all"},
		{"text transform", TextTransform(Uppercase), "text-uppercase", "text-transform: uppercase"},
		{"font weight", FontWeight(FontSemibold), "fw-semibold", "font-weight: 600"},
		{"font style", FontStyle(Italic), "fst-italic", "font-style: italic"},
		{"line height", LineHeight(LeadingSm), "lh-sm", "line-height: 1.25"},
		{"text wrap", TextWrap(NoWrap), "text-nowrap", "text-wrap: nowrap"},
		{"text break", TextBreak(BreakEnabled), "text-break", "word-wrap: break-word"},
		{"text size", TextSize(TextLg), "fs-3", "font-size: 1.125rem"},
		{"text size display", TextSize(Text9Xl).OnTablet(), "md-display-1", "font-size: 4rem"},
		{"text overflow", TextOverflow(OverflowEllipsis), "text-truncate", "text-overflow: ellipsis"},
		{"position", Position(PositionSticky), "position-sticky", "position: sticky"},
		{"position offset", PositionOffset(Start50), "start-50", "inset-inline-start: 50%"},
		{"position offset on tablet", PositionOffset(Top100).OnTablet(), "top-md-100", "top: 100%"},
		{"translate middle", PositionOffset(TranslateMiddle), "translate-middle", ""},
		{"overflow", Overflow(OverflowHidden), "overflow-hidden", "overflow: hidden"},
		{"overflow x", OverflowX(OverflowScroll), "overflow-x-scroll", "overflow-x: scroll"},
		{"overflow y on tablet", OverflowY(OverflowAuto).OnTablet(), "md-overflow-y-auto", "overflow-y: auto"},
		{"object fit scale down", ObjectFit(ObjectFitScaleDown), "object-fit-scale", "object-fit: scale-down"},
		{"text align", TextAlign(AlignCenter), "text-center", "text-align: center"},
		{"text decoration", TextDecoration(DecorationLineThrough), "text-decoration-line-through", "text-decoration-line: line-through"},
		{"vertical align", VerticalAlign(VAlignTextTop), "align-text-top", "vertical-align: text-top"},
		{"float start", Float(FloatStart), "float-start", "float: inline-start"},
		{"visibility hidden", Visibility(Invisible), "invisible", "visibility: hidden"},
		{"visibility without hyphen", Visibility(Visible).OnTablet(), "md-visible", "visibility: visible"},
		{"shadow base", BoxShadow(ShadowBase), "shadow", ""},
		{"shadow large on tablet", BoxShadow(ShadowLg).OnTablet(), "shadow-md-lg", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantClass, tc.builder.ToClass())
			assert.Equal(t, tc.wantStyle, tc.builder.ToStyle())
		})
	}
}

func TestGlobalKeywordsAreStyleOnly(t *testing.T) {
	t.Parallel()

	align := TextAlign(TextAlignValue(Inherit))
	assert.Equal(t, "", align.ToClass())
	assert.Equal(t, "text-align: inherit", align.ToStyle())

	float := Float(FloatValue(RevertLayer))
	assert.Equal(t, "", float.ToClass())
	assert.Equal(t, "float: revert-layer", float.ToStyle())
}

func TestDisabledTextBreakRendersNothing(t *testing.T) {
	t.Parallel()

	b := TextBreak(BreakDisabled)
	assert.Equal(t, "", b.ToClass())
	assert.Equal(t, "", b.ToStyle())
	assert.False(t, b.IsEmpty())
}

func TestUnknownValueRendersNothing(t *testing.T) {
	t.Parallel()

	b := Display(DisplayValue("contents"))
	assert.Equal(t, "", b.ToClass())
	assert.Equal(t, "", b.ToStyle())
}

func TestRenderingIsIdempotent(t *testing.T) {
	t.Parallel()

	b := Margin(S2).FromTop().OnTablet()
	first, firstStyle := b.ToClass(), b.ToStyle()
	assert.Equal(t, first, b.ToClass())
	assert.Equal(t, firstStyle, b.ToStyle())
	assert.Equal(t, 1, b.Len())
}

func TestToClassSkipsDuplicates(t *testing.T) {
	t.Parallel()

	b := TextOverflow(OverflowClip).Add(OverflowEllipsis)
	assert.Equal(t, "text-truncate", b.ToClass())
	assert.Equal(t, "text-overflow: clip; text-overflow: ellipsis", b.ToStyle())

	d := Display(DisplayFlex).Add(DisplayFlex)
	assert.Equal(t, "d-flex", d.ToClass())
	assert.Equal(t, "display: flex; display: flex", d.ToStyle())
}

func TestBreakpointOnEmptyBuilderSeedsDefault(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		got  string
		want string
	}{
		{"display", (&Builder[DisplayValue]{concern: DisplayConcern}).OnTablet().ToClass(), "md-d-block"},
		{"opacity", (&Builder[OpacityValue]{concern: OpacityConcern}).OnTablet().ToClass(), "opacity-md-100"},
		{"flex", (&Builder[FlexValue]{concern: FlexConcern}).OnLaptop().ToClass(), "lg-d-flex"},
		{"z-index", (&Builder[ZIndexValue]{concern: ZIndexConcern}).OnMobile().ToClass(), "z-sm-0"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.got, tc.name)
	}
}

func TestBreakpointAppliesToLatestRule(t *testing.T) {
	t.Parallel()

	b := Display(DisplayNone).Add(DisplayFlex).OnTablet()
	assert.Equal(t, "d-none md-d-flex", b.ToClass())
}

func TestModeSwitching(t *testing.T) {
	t.Parallel()

	b := Display(DisplayGrid)
	assert.Equal(t, ModeClass, b.Mode())
	assert.Equal(t, "d-grid", b.String())

	b.AsStyle()
	assert.Equal(t, ModeStyle, b.Mode())
	assert.Equal(t, "display: grid", b.String())
}

func TestCloneBranches(t *testing.T) {
	t.Parallel()

	base := Display(DisplayBlock)
	branch := base.Clone().Add(DisplayFlex).OnTablet()

	assert.Equal(t, "d-block", base.ToClass())
	assert.Equal(t, "d-block md-d-flex", branch.ToClass())
	assert.Same(t, base.Concern(), branch.Concern())
}

func TestRulesReturnsCopy(t *testing.T) {
	t.Parallel()

	b := Display(DisplayFlex)
	rules := b.Rules()
	rules[0].Value = DisplayNone
	assert.Equal(t, "d-flex", b.ToClass())
}

func TestNilBuilder(t *testing.T) {
	t.Parallel()

	var b *Builder[DisplayValue]
	assert.True(t, b.IsEmpty())
	assert.Equal(t, "", b.ToClass())
	assert.Equal(t, "", b.ToStyle())
	assert.Equal(t, ModeClass, b.Mode())
	assert.Nil(t, b.Rules())
	assert.Nil(t, b.Concern())
}

func TestConcernLookup(t *testing.T) {
	t.Parallel()

	v, ok := DisplayConcern.Lookup("inlineblock")
	require.True(t, ok)
	assert.Equal(t, DisplayInlineBlock, v)

	z, ok := ZIndexConcern.Lookup("N1")
	require.True(t, ok)
	assert.Equal(t, ZN1, z)

	kw, ok := FloatConcern.Lookup("unset")
	require.True(t, ok)
	assert.Equal(t, FloatValue("unset"), kw)

	_, ok = DisplayConcern.Lookup("bogus")
	assert.False(t, ok)
}

func TestConcernMetadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "margin", MarginConcern.Name())
	assert.True(t, MarginConcern.Sided())
	assert.False(t, GapConcern.Sided())
	assert.Equal(t, PlacePrefix, DisplayConcern.Placement())
	assert.Equal(t, PlaceInfix, OpacityConcern.Placement())
	assert.Equal(t, DisplayBlock, DisplayConcern.Default())
	assert.Len(t, DisplayConcern.Tokens(), 11)
}

func TestPlacementApply(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "d-flex", PlacePrefix.apply("d-flex", ""))
	assert.Equal(t, "md-d-flex", PlacePrefix.apply("d-flex", "md"))
	assert.Equal(t, "opacity-md-50", PlaceInfix.apply("opacity-50", "md"))
	assert.Equal(t, "md-visible", PlaceInfix.apply("visible", "md"))
}
