package css

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpacingRendering(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		builder   *SpacingBuilder
		wantClass string
		wantStyle string
	}{
		{
			name:      "margin on all sides",
			builder:   Margin(S3),
			wantClass: "m-3",
			wantStyle: "margin: 1rem",
		},
		{
			name:      "margin from top on tablet",
			builder:   Margin(S2).FromTop().OnTablet(),
			wantClass: "md-mt-2",
			wantStyle: "margin-top: 0.5rem",
		},
		{
			name:      "padding on the horizontal axis",
			builder:   Padding(S0).OnX(),
			wantClass: "px-0",
			wantStyle: "padding-left: 0; padding-right: 0",
		},
		{
			name:      "padding on the vertical axis",
			builder:   Padding(S4).OnY(),
			wantClass: "py-4",
			wantStyle: "padding-top: 1.5rem; padding-bottom: 1.5rem",
		},
		{
			name:      "auto margin",
			builder:   Margin(SizeAuto),
			wantClass: "m-auto",
			wantStyle: "margin: auto",
		},
		{
			name:      "auto margin from the inline start",
			builder:   Margin(S0).Auto().FromStart(),
			wantClass: "m-0 ms-auto",
			wantStyle: "margin: 0; margin-inline-start: auto",
		},
		{
			name:      "border width from bottom",
			builder:   Border(S2).FromBottom(),
			wantClass: "bb-2",
			wantStyle: "border-bottom-width: 2px",
		},
		{
			name:      "border on all sides",
			builder:   Border(S1),
			wantClass: "b-1",
			wantStyle: "border-width: 1px",
		},
		{
			name:      "phone adds no token",
			builder:   Padding(S5).FromRight().OnPhone(),
			wantClass: "pe-5",
			wantStyle: "padding-right: 3rem",
		},
		{
			name:      "widescreen prefix",
			builder:   Margin(S1).FromEnd().OnWide(),
			wantClass: "xxl-me-1",
			wantStyle: "margin-inline-end: 0.25rem",
		},
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

func TestSpacingSideMerge(t *testing.T) {
	t.Parallel()

	b := Margin(S3).FromTop().FromLeft()
	rules := b.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, Rule[Size]{Value: S3, Side: SideTop}, rules[0])
	assert.Equal(t, Rule[Size]{Value: S3, Side: SideLeft}, rules[1])
	assert.Equal(t, "mt-3 ms-3", b.ToClass())
	assert.Equal(t, "margin-top: 1rem; margin-left: 1rem", b.ToStyle())
}

func TestSpacingSizeChainAppendsRule(t *testing.T) {
	t.Parallel()

	b := Margin(S3).S1()
	rules := b.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, SideAll, rules[0].Side)
	assert.Equal(t, SideAll, rules[1].Side)
	assert.Equal(t, "m-3 m-1", b.ToClass())
	assert.Equal(t, "margin: 1rem; margin: 0.25rem", b.ToStyle())
}

func TestSpacingSideKeepsBreakpoint(t *testing.T) {
	t.Parallel()

	b := Padding(S2).OnTablet().FromTop().FromBottom()
	assert.Equal(t, "md-pt-2 md-pb-2", b.ToClass())
}

func TestSpacingSideOnEmptyBuilderSeedsDefault(t *testing.T) {
	t.Parallel()

	b := &SpacingBuilder{Builder: Builder[Size]{concern: MarginConcern}}
	b.FromTop()
	assert.Equal(t, "mt-0", b.ToClass())

	bp := &SpacingBuilder{Builder: Builder[Size]{concern: PaddingConcern}}
	bp.OnTablet()
	assert.Equal(t, "md-p-0", bp.ToClass())
}

func TestSpacingNilBuilderRendersEmpty(t *testing.T) {
	t.Parallel()

	var b *SpacingBuilder
	assert.Equal(t, "", b.ToClass())
	assert.Equal(t, "", b.ToStyle())
	assert.Equal(t, "", b.String())
	assert.True(t, b.IsEmpty())
	assert.Equal(t, ModeClass, b.Mode())
	assert.Nil(t, b.Clone())
}

func TestSpacingCloneIsIndependent(t *testing.T) {
	t.Parallel()

	base := Margin(S2)
	branch := base.Clone().FromTop()
	assert.Equal(t, "m-2", base.ToClass())
	assert.Equal(t, "mt-2", branch.ToClass())
}

func TestGapUsesInfixPlacement(t *testing.T) {
	t.Parallel()

	b := Gap(S3).OnTablet()
	assert.Equal(t, "gap-md-3", b.ToClass())
	assert.Equal(t, "gap: 1rem", b.ToStyle())
}

func TestSpacingStyleMode(t *testing.T) {
	t.Parallel()

	b := Margin(S3).FromTop().AsStyle()
	assert.Equal(t, ModeStyle, b.Mode())
	assert.Equal(t, "margin-top: 1rem", b.String())

	b.AsClass()
	assert.Equal(t, "mt-3", b.String())
}

func TestSpacingEverySizeAndSide(t *testing.T) {
	t.Parallel()

	sides := []struct {
		side  Side
		infix string
		props []string
	}{
		{SideAll, "", nil},
		{SideTop, "t", []string{"top"}},
		{SideRight, "e", []string{"right"}},
		{SideBottom, "b", []string{"bottom"}},
		{SideLeft, "s", []string{"left"}},
		{SideHorizontal, "x", []string{"left", "right"}},
		{SideVertical, "y", []string{"top", "bottom"}},
		{SideInlineStart, "s", []string{"inline-start"}},
		{SideInlineEnd, "e", []string{"inline-end"}},
	}

	scales := []struct {
		name     string
		start    func(Size) *SpacingBuilder
		prefix   string
		property string
		suffix   string
		values   map[Size][2]string
	}{
		{
			name: "margin", start: Margin, prefix: "m", property: "margin",
			values: map[Size][2]string{
				S0: {"0", "0"}, S1: {"1", "0.25rem"}, S2: {"2", "0.5rem"}, S3: {"3", "1rem"},
				S4: {"4", "1.5rem"}, S5: {"5", "3rem"}, SizeAuto: {"auto", "auto"},
			},
		},
		{
			name: "padding", start: Padding, prefix: "p", property: "padding",
			values: map[Size][2]string{
				S0: {"0", "0"}, S1: {"1", "0.25rem"}, S2: {"2", "0.5rem"}, S3: {"3", "1rem"},
				S4: {"4", "1.5rem"}, S5: {"5", "3rem"}, SizeAuto: {"auto", "auto"},
			},
		},
		{
			name: "border", start: Border, prefix: "b", property: "border", suffix: "-width",
			values: map[Size][2]string{
				S0: {"0", "0"}, S1: {"1", "1px"}, S2: {"2", "2px"}, S3: {"3", "3px"},
				S4: {"4", "4px"}, S5: {"5", "5px"},
			},
		},
	}

	for _, scale := range scales {
		for size, want := range scale.values {
			for _, sd := range sides {
				b := scale.start(size).Side(sd.side)

				wantClass := scale.prefix + sd.infix + "-" + want[0]
				var decls []string
				if len(sd.props) == 0 {
					decls = []string{scale.property + scale.suffix + ": " + want[1]}
				}
				for _, p := range sd.props {
					decls = append(decls, scale.property+"-"+p+scale.suffix+": "+want[1])
				}

				label := scale.name + "/" + want[0] + "/" + sd.side.String()
				assert.Equal(t, wantClass, b.ToClass(), label)
				assert.Equal(t, strings.Join(decls, "; "), b.ToStyle(), label)
				assert.Equal(t, 1, b.Len(), label)
			}
		}
	}
}
