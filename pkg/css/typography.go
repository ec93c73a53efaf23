package css

// TextTransformValue is a text-transform keyword.
type TextTransformValue string

const (
	Lowercase  TextTransformValue = "lowercase"
	Uppercase  TextTransformValue = "uppercase"
	Capitalize TextTransformValue = "capitalize"
)

var TextTransformConcern = newConcern("text-transform", PlaceInfix, Lowercase, []Token[TextTransformValue]{
	{Step: "Lowercase", Value: Lowercase, Class: "text-lowercase", Style: "text-transform: lowercase"},
	{Step: "Uppercase", Value: Uppercase, Class: "text-uppercase", Style: "text-transform: uppercase"},
	{Step: "Capitalize", Value: Capitalize, Class: "text-capitalize", Style: "text-transform: capitalize"},
})

// TextTransform starts a text-transform builder.
func TextTransform(v TextTransformValue) *Builder[TextTransformValue] { return TextTransformConcern.New(v) }

// FontWeightValue is a named weight on the 300-700 scale, plus bolder.
type FontWeightValue string

const (
	FontLight    FontWeightValue = "light"
	FontNormal   FontWeightValue = "normal"
	FontMedium   FontWeightValue = "medium"
	FontSemibold FontWeightValue = "semibold"
	FontBold     FontWeightValue = "bold"
	FontBolder   FontWeightValue = "bolder"
)

var FontWeightConcern = newConcern("font-weight", PlaceInfix, FontNormal, []Token[FontWeightValue]{
	{Step: "Light", Value: FontLight, Class: "fw-light", Style: "font-weight: 300"},
	{Step: "Normal", Value: FontNormal, Class: "fw-normal", Style: "font-weight: 400"},
	{Step: "Medium", Value: FontMedium, Class: "fw-medium", Style: "font-weight: 500"},
	{Step: "Semibold", Value: FontSemibold, Class: "fw-semibold", Style: "font-weight: 600"},
	{Step: "Bold", Value: FontBold, Class: "fw-bold", Style: "font-weight: 700"},
	{Step: "Bolder", Value: FontBolder, Class: "fw-bolder", Style: "font-weight: bolder"},
})

// FontWeight starts a font-weight builder.
func FontWeight(v FontWeightValue) *Builder[FontWeightValue] { return FontWeightConcern.New(v) }

// FontStyleValue is a font-style keyword.
type FontStyleValue string

const (
	Italic      FontStyleValue = "italic"
	FontUpright FontStyleValue = "normal"
)

var FontStyleConcern = newConcern("font-style", PlaceInfix, FontUpright, []Token[FontStyleValue]{
	{Step: "Italic", Value: Italic, Class: "fst-italic", Style: "font-style: italic"},
	{Step: "Normal", Value: FontUpright, Class: "fst-normal", Style: "font-style: normal"},
})

// FontStyle starts a font-style builder.
func FontStyle(v FontStyleValue) *Builder[FontStyleValue] { return FontStyleConcern.New(v) }

// LineHeightValue is a step on the line-height scale.
type LineHeightValue string

const (
	Leading1    LineHeightValue = "1"
	LeadingSm   LineHeightValue = "sm"
	LeadingBase LineHeightValue = "base"
	LeadingLg   LineHeightValue = "lg"
)

var LineHeightConcern = newConcern("line-height", PlaceInfix, LeadingBase, []Token[LineHeightValue]{
	{Step: "L1", Value: Leading1, Class: "lh-1", Style: "line-height: 1"},
	{Step: "Sm", Value: LeadingSm, Class: "lh-sm", Style: "line-height: 1.25"},
	{Step: "Base", Value: LeadingBase, Class: "lh-base", Style: "line-height: 1.5"},
	{Step: "Lg", Value: LeadingLg, Class: "lh-lg", Style: "line-height: 2"},
})

// LineHeight starts a line-height builder.
func LineHeight(v LineHeightValue) *Builder[LineHeightValue] { return LineHeightConcern.New(v) }

// TextWrapValue is a text-wrap keyword.
type TextWrapValue string

const (
	Wrap   TextWrapValue = "wrap"
	NoWrap TextWrapValue = "nowrap"
)

var TextWrapConcern = newConcern("text-wrap", PlaceInfix, Wrap, []Token[TextWrapValue]{
	{Step: "Wrap", Value: Wrap, Class: "text-wrap", Style: "text-wrap: wrap"},
	{Step: "NoWrap", Value: NoWrap, Class: "text-nowrap", Style: "text-wrap: nowrap"},
})

// TextWrap starts a text-wrap builder.
func TextWrap(v TextWrapValue) *Builder[TextWrapValue] { return TextWrapConcern.New(v) }

// TextBreakValue toggles breaking of long words. Disabled renders nothing.
type TextBreakValue bool

const (
	BreakEnabled  TextBreakValue = true
	BreakDisabled TextBreakValue = false
)

var TextBreakConcern = newConcern("text-break", PlaceInfix, BreakEnabled, []Token[TextBreakValue]{
	{Step: "Enabled", Value: BreakEnabled, Class: "text-break", Style: "word-wrap: break-word"},
	{Step: "Disabled", Value: BreakDisabled},
})

// TextBreak starts a word-break builder. BreakDisabled renders nothing.
func TextBreak(v TextBreakValue) *Builder[TextBreakValue] { return TextBreakConcern.New(v) }

// TextSizeValue is a step on the type scale, from xs up to 9xl.
type TextSizeValue string

const (
	TextXs   TextSizeValue = "xs"
	TextSm   TextSizeValue = "sm"
	TextBase TextSizeValue = "base"
	TextLg   TextSizeValue = "lg"
	TextXl   TextSizeValue = "xl"
	Text2Xl  TextSizeValue = "2xl"
	Text3Xl  TextSizeValue = "3xl"
	Text4Xl  TextSizeValue = "4xl"
	Text5Xl  TextSizeValue = "5xl"
	Text6Xl  TextSizeValue = "6xl"
	Text7Xl  TextSizeValue = "7xl"
	Text8Xl  TextSizeValue = "8xl"
	Text9Xl  TextSizeValue = "9xl"
)

// The class scale tops out at display-1, so 8xl and 9xl share it.
var TextSizeConcern = newConcern("text-size", PlacePrefix, TextBase, []Token[TextSizeValue]{
	{Step: "Xs", Value: TextXs, Class: "fs-6", Style: "font-size: 0.75rem"},
	{Step: "Sm", Value: TextSm, Class: "fs-5", Style: "font-size: 0.875rem"},
	{Step: "Base", Value: TextBase, Class: "fs-4", Style: "font-size: 1rem"},
	{Step: "Lg", Value: TextLg, Class: "fs-3", Style: "font-size: 1.125rem"},
	{Step: "Xl", Value: TextXl, Class: "fs-2", Style: "font-size: 1.25rem"},
	{Step: "Xl2", Value: Text2Xl, Class: "fs-1", Style: "font-size: 1.5rem"},
	{Step: "Xl3", Value: Text3Xl, Class: "display-6", Style: "font-size: 1.75rem"},
	{Step: "Xl4", Value: Text4Xl, Class: "display-5", Style: "font-size: 2rem"},
	{Step: "Xl5", Value: Text5Xl, Class: "display-4", Style: "font-size: 2.25rem"},
	{Step: "Xl6", Value: Text6Xl, Class: "display-3", Style: "font-size: 2.5rem"},
	{Step: "Xl7", Value: Text7Xl, Class: "display-2", Style: "font-size: 3rem"},
	{Step: "Xl8", Value: Text8Xl, Class: "display-1", Style: "font-size: 3.5rem"},
	{Step: "Xl9", Value: Text9Xl, Class: "display-1", Style: "font-size: 4rem"},
})

// TextSize starts a font-size builder.
func TextSize(v TextSizeValue) *Builder[TextSizeValue] { return TextSizeConcern.New(v) }

// TextOverflowValue is a text-overflow keyword or a CSS-wide keyword.
type TextOverflowValue string

const (
	OverflowClip     TextOverflowValue = "clip"
	OverflowEllipsis TextOverflowValue = "ellipsis"
)

var TextOverflowConcern = newConcern("text-overflow", PlaceInfix, OverflowClip, keywordTokens([]Token[TextOverflowValue]{
	{Step: "Clip", Value: OverflowClip, Class: "text-truncate", Style: "text-overflow: clip"},
	{Step: "Ellipsis", Value: OverflowEllipsis, Class: "text-truncate", Style: "text-overflow: ellipsis"},
}, "text-overflow"))

// TextOverflow starts a text-overflow builder.
func TextOverflow(v TextOverflowValue) *Builder[TextOverflowValue] { return TextOverflowConcern.New(v) }

// TextAlignValue is a logical text alignment or a CSS-wide keyword.
type TextAlignValue string

const (
	AlignStart  TextAlignValue = "start"
	AlignCenter TextAlignValue = "center"
	AlignEnd    TextAlignValue = "end"
)

var TextAlignConcern = newConcern("text-alignment", PlaceInfix, AlignStart, keywordTokens([]Token[TextAlignValue]{
	{Step: "Start", Value: AlignStart, Class: "text-start", Style: "text-align: start"},
	{Step: "Center", Value: AlignCenter, Class: "text-center", Style: "text-align: center"},
	{Step: "End", Value: AlignEnd, Class: "text-end", Style: "text-align: end"},
}, "text-align"))

// TextAlign starts a text-align builder.
func TextAlign(v TextAlignValue) *Builder[TextAlignValue] { return TextAlignConcern.New(v) }

// TextDecorationValue is a text-decoration-line keyword.
type TextDecorationValue string

const (
	DecorationNone        TextDecorationValue = "none"
	DecorationUnderline   TextDecorationValue = "underline"
	DecorationLineThrough TextDecorationValue = "line-through"
)

var TextDecorationConcern = newConcern("text-decoration", PlaceInfix, DecorationNone, []Token[TextDecorationValue]{
	{Step: "None", Value: DecorationNone, Class: "text-decoration-none", Style: "text-decoration-line: none"},
	{Step: "Underline", Value: DecorationUnderline, Class: "text-decoration-underline", Style: "text-decoration-line: underline"},
	{Step: "LineThrough", Value: DecorationLineThrough, Class: "text-decoration-line-through", Style: "text-decoration-line: line-through"},
})

// TextDecoration starts a text-decoration builder.
func TextDecoration(v TextDecorationValue) *Builder[TextDecorationValue] { return TextDecorationConcern.New(v) }

// VerticalAlignValue is a vertical-align keyword.
type VerticalAlignValue string

const (
	VAlignBaseline   VerticalAlignValue = "baseline"
	VAlignTop        VerticalAlignValue = "top"
	VAlignMiddle     VerticalAlignValue = "middle"
	VAlignBottom     VerticalAlignValue = "bottom"
	VAlignTextTop    VerticalAlignValue = "text-top"
	VAlignTextBottom VerticalAlignValue = "text-bottom"
)

var VerticalAlignConcern = newConcern("vertical-align", PlaceInfix, VAlignBaseline, []Token[VerticalAlignValue]{
	{Step: "Baseline", Value: VAlignBaseline, Class: "align-baseline", Style: "vertical-align: baseline"},
	{Step: "Top", Value: VAlignTop, Class: "align-top", Style: "vertical-align: top"},
	{Step: "Middle", Value: VAlignMiddle, Class: "align-middle", Style: "vertical-align: middle"},
	{Step: "Bottom", Value: VAlignBottom, Class: "align-bottom", Style: "vertical-align: bottom"},
	{Step: "TextTop", Value: VAlignTextTop, Class: "align-text-top", Style: "vertical-align: text-top"},
	{Step: "TextBottom", Value: VAlignTextBottom, Class: "align-text-bottom", Style: "vertical-align: text-bottom"},
})

// VerticalAlign starts a vertical-align builder.
func VerticalAlign(v VerticalAlignValue) *Builder[VerticalAlignValue] { return VerticalAlignConcern.New(v) }
