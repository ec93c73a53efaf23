package css

import "strconv"

// Keyword is a CSS-wide keyword accepted by every property.
type Keyword string

const (
	Inherit     Keyword = "inherit"
	Initial     Keyword = "initial"
	Revert      Keyword = "revert"
	RevertLayer Keyword = "revert-layer"
	Unset       Keyword = "unset"
)

var keywordSteps = []struct {
	step string
	kw   Keyword
}{
	{"Inherit", Inherit},
	{"Initial", Initial},
	{"Revert", Revert},
	{"RevertLayer", RevertLayer},
	{"Unset", Unset},
}

// keywordTokens appends style-only rows for the CSS-wide keywords.
func keywordTokens[T ~string](tokens []Token[T], property string) []Token[T] {
	for _, k := range keywordSteps {
		tokens = append(tokens, Token[T]{Step: k.step, Value: T(k.kw), Style: property + ": " + string(k.kw)})
	}
	return tokens
}

// DisplayValue is a display keyword.
type DisplayValue string

const (
	DisplayNone        DisplayValue = "none"
	DisplayInline      DisplayValue = "inline"
	DisplayInlineBlock DisplayValue = "inline-block"
	DisplayBlock       DisplayValue = "block"
	DisplayFlex        DisplayValue = "flex"
	DisplayInlineFlex  DisplayValue = "inline-flex"
	DisplayGrid        DisplayValue = "grid"
	DisplayInlineGrid  DisplayValue = "inline-grid"
	DisplayTable       DisplayValue = "table"
	DisplayTableCell   DisplayValue = "table-cell"
	DisplayTableRow    DisplayValue = "table-row"
)

var DisplayConcern = newConcern("display", PlacePrefix, DisplayBlock, []Token[DisplayValue]{
	{Step: "None", Value: DisplayNone, Class: "d-none", Style: "display: none"},
	{Step: "Inline", Value: DisplayInline, Class: "d-inline", Style: "display: inline"},
	{Step: "InlineBlock", Value: DisplayInlineBlock, Class: "d-inline-block", Style: "display: inline-block"},
	{Step: "Block", Value: DisplayBlock, Class: "d-block", Style: "display: block"},
	{Step: "Flex", Value: DisplayFlex, Class: "d-flex", Style: "display: flex"},
	{Step: "InlineFlex", Value: DisplayInlineFlex, Class: "d-inline-flex", Style: "display: inline-flex"},
	{Step: "Grid", Value: DisplayGrid, Class: "d-grid", Style: "display: grid"},
	{Step: "InlineGrid", Value: DisplayInlineGrid, Class: "d-inline-grid", Style: "display: inline-grid"},
	{Step: "Table", Value: DisplayTable, Class: "d-table", Style: "display: table"},
	{Step: "TableCell", Value: DisplayTableCell, Class: "d-table-cell", Style: "display: table-cell"},
	{Step: "TableRow", Value: DisplayTableRow, Class: "d-table-row", Style: "display: table-row"},
})

// Display starts a display builder: Display(DisplayFlex).OnTablet() renders md-d-flex.
func Display(v DisplayValue) *Builder[DisplayValue] { return DisplayConcern.New(v) }

// FlexValue is one flexbox setting; the prefix names the property it drives.
type FlexValue string

const (
	FlexDisplay        FlexValue = "display"
	FlexRow            FlexValue = "direction-row"
	FlexColumn         FlexValue = "direction-column"
	FlexWrap           FlexValue = "wrap"
	FlexNoWrap         FlexValue = "nowrap"
	FlexJustifyStart   FlexValue = "justify-start"
	FlexJustifyEnd     FlexValue = "justify-end"
	FlexJustifyCenter  FlexValue = "justify-center"
	FlexJustifyBetween FlexValue = "justify-between"
	FlexJustifyAround  FlexValue = "justify-around"
	FlexJustifyEvenly  FlexValue = "justify-evenly"
	FlexAlignStart     FlexValue = "align-start"
	FlexAlignEnd       FlexValue = "align-end"
	FlexAlignCenter    FlexValue = "align-center"
	FlexAlignBaseline  FlexValue = "align-baseline"
	FlexAlignStretch   FlexValue = "align-stretch"
)

var FlexConcern = newConcern("flex", PlacePrefix, FlexDisplay, []Token[FlexValue]{
	{Step: "Display", Value: FlexDisplay, Class: "d-flex", Style: "display: flex"},
	{Step: "Row", Value: FlexRow, Class: "flex-row", Style: "flex-direction: row"},
	{Step: "Column", Value: FlexColumn, Class: "flex-column", Style: "flex-direction: column"},
	{Step: "Wrap", Value: FlexWrap, Class: "flex-wrap", Style: "flex-wrap: wrap"},
	{Step: "NoWrap", Value: FlexNoWrap, Class: "flex-nowrap", Style: "flex-wrap: nowrap"},
	{Step: "JustifyStart", Value: FlexJustifyStart, Class: "justify-content-start", Style: "justify-content: flex-start"},
	{Step: "JustifyEnd", Value: FlexJustifyEnd, Class: "justify-content-end", Style: "justify-content: flex-end"},
	{Step: "JustifyCenter", Value: FlexJustifyCenter, Class: "justify-content-center", Style: "justify-content: center"},
	{Step: "JustifyBetween", Value: FlexJustifyBetween, Class: "justify-content-between", Style: "justify-content: space-between"},
	{Step: "JustifyAround", Value: FlexJustifyAround, Class: "justify-content-around", Style: "justify-content: space-around"},
	{Step: "JustifyEvenly", Value: FlexJustifyEvenly, Class: "justify-content-evenly", Style: "justify-content: space-evenly"},
	{Step: "AlignStart", Value: FlexAlignStart, Class: "align-items-start", Style: "align-items: flex-start"},
	{Step: "AlignEnd", Value: FlexAlignEnd, Class: "align-items-end", Style: "align-items: flex-end"},
	{Step: "AlignCenter", Value: FlexAlignCenter, Class: "align-items-center", Style: "align-items: center"},
	{Step: "AlignBaseline", Value: FlexAlignBaseline, Class: "align-items-baseline", Style: "align-items: baseline"},
	{Step: "AlignStretch", Value: FlexAlignStretch, Class: "align-items-stretch", Style: "align-items: stretch"},
})

// Flex starts a flexbox builder.
func Flex(v FlexValue) *Builder[FlexValue] { return FlexConcern.New(v) }

// Dimension is a percentage of the parent, or auto.
type Dimension string

const (
	Dim25   Dimension = "25"
	Dim50   Dimension = "50"
	Dim75   Dimension = "75"
	Dim100  Dimension = "100"
	DimAuto Dimension = "auto"
)

func dimensionTokens(prefix, property string) []Token[Dimension] {
	tokens := make([]Token[Dimension], 0, 5)
	for _, d := range []Dimension{Dim25, Dim50, Dim75, Dim100} {
		tokens = append(tokens, Token[Dimension]{
			Step:  "P" + string(d),
			Value: d,
			Class: prefix + "-" + string(d),
			Style: property + ": " + string(d) + "%",
		})
	}
	return append(tokens, Token[Dimension]{Step: "Auto", Value: DimAuto, Class: prefix + "-auto", Style: property + ": auto"})
}

var (
	WidthConcern  = newConcern("width", PlacePrefix, Dim100, dimensionTokens("w", "width"))
	HeightConcern = newConcern("height", PlacePrefix, Dim100, dimensionTokens("h", "height"))
)

// Width starts a width builder in percent of the parent.
func Width(v Dimension) *Builder[Dimension] { return WidthConcern.New(v) }

// Height starts a height builder in percent of the parent.
func Height(v Dimension) *Builder[Dimension] { return HeightConcern.New(v) }

// PositionValue is a position scheme.
type PositionValue string

const (
	PositionStatic   PositionValue = "static"
	PositionRelative PositionValue = "relative"
	PositionAbsolute PositionValue = "absolute"
	PositionFixed    PositionValue = "fixed"
	PositionSticky   PositionValue = "sticky"
)

var PositionConcern = newConcern("position", PlacePrefix, PositionStatic, []Token[PositionValue]{
	{Step: "Static", Value: PositionStatic, Class: "position-static", Style: "position: static"},
	{Step: "Relative", Value: PositionRelative, Class: "position-relative", Style: "position: relative"},
	{Step: "Absolute", Value: PositionAbsolute, Class: "position-absolute", Style: "position: absolute"},
	{Step: "Fixed", Value: PositionFixed, Class: "position-fixed", Style: "position: fixed"},
	{Step: "Sticky", Value: PositionSticky, Class: "position-sticky", Style: "position: sticky"},
})

// Position starts a position builder.
func Position(v PositionValue) *Builder[PositionValue] { return PositionConcern.New(v) }

// Offset is an edge offset (top-50) or a centering translate.
type Offset string

const (
	Top0             Offset = "top-0"
	Top50            Offset = "top-50"
	Top100           Offset = "top-100"
	Bottom0          Offset = "bottom-0"
	Bottom50         Offset = "bottom-50"
	Bottom100        Offset = "bottom-100"
	Start0           Offset = "start-0"
	Start50          Offset = "start-50"
	Start100         Offset = "start-100"
	End0             Offset = "end-0"
	End50            Offset = "end-50"
	End100           Offset = "end-100"
	TranslateMiddle  Offset = "translate-middle"
	TranslateMiddleX Offset = "translate-middle-x"
	TranslateMiddleY Offset = "translate-middle-y"
)

func offsetTokens() []Token[Offset] {
	edges := []struct{ step, class, property string }{
		{"Top", "top", "top"},
		{"Bottom", "bottom", "bottom"},
		{"Start", "start", "inset-inline-start"},
		{"End", "end", "inset-inline-end"},
	}
	values := []struct{ n, css string }{{"0", "0"}, {"50", "50%"}, {"100", "100%"}}
	tokens := make([]Token[Offset], 0, len(edges)*len(values)+3)
	for _, e := range edges {
		for _, v := range values {
			class := e.class + "-" + v.n
			tokens = append(tokens, Token[Offset]{
				Step:  e.step + v.n,
				Value: Offset(class),
				Class: class,
				Style: e.property + ": " + v.css,
			})
		}
	}
	// translate utilities are class-only
	return append(tokens,
		Token[Offset]{Step: "TranslateMiddle", Value: TranslateMiddle, Class: "translate-middle"},
		Token[Offset]{Step: "TranslateMiddleX", Value: TranslateMiddleX, Class: "translate-middle-x"},
		Token[Offset]{Step: "TranslateMiddleY", Value: TranslateMiddleY, Class: "translate-middle-y"},
	)
}

var PositionOffsetConcern = newConcern("position-offset", PlaceInfix, Top0, offsetTokens())

// PositionOffset starts a position offset builder: PositionOffset(Top50) renders top-50.
func PositionOffset(v Offset) *Builder[Offset] { return PositionOffsetConcern.New(v) }

// OverflowValue is an overflow keyword, shared by all three axes.
type OverflowValue string

const (
	OverflowAuto    OverflowValue = "auto"
	OverflowHidden  OverflowValue = "hidden"
	OverflowVisible OverflowValue = "visible"
	OverflowScroll  OverflowValue = "scroll"
)

func overflowTokens(property string) []Token[OverflowValue] {
	tokens := make([]Token[OverflowValue], 0, 4)
	for _, v := range []struct {
		step  string
		value OverflowValue
	}{{"Auto", OverflowAuto}, {"Hidden", OverflowHidden}, {"Visible", OverflowVisible}, {"Scroll", OverflowScroll}} {
		tokens = append(tokens, Token[OverflowValue]{
			Step:  v.step,
			Value: v.value,
			Class: property + "-" + string(v.value),
			Style: property + ": " + string(v.value),
		})
	}
	return tokens
}

var (
	OverflowConcern  = newConcern("overflow", PlacePrefix, OverflowAuto, overflowTokens("overflow"))
	OverflowXConcern = newConcern("overflow-x", PlacePrefix, OverflowAuto, overflowTokens("overflow-x"))
	OverflowYConcern = newConcern("overflow-y", PlacePrefix, OverflowAuto, overflowTokens("overflow-y"))
)

// Overflow starts an overflow builder.
func Overflow(v OverflowValue) *Builder[OverflowValue] { return OverflowConcern.New(v) }

// OverflowX starts a horizontal overflow builder.
func OverflowX(v OverflowValue) *Builder[OverflowValue] { return OverflowXConcern.New(v) }

// OverflowY starts a vertical overflow builder.
func OverflowY(v OverflowValue) *Builder[OverflowValue] { return OverflowYConcern.New(v) }

// ObjectFitValue is an object-fit keyword.
type ObjectFitValue string

const (
	ObjectFitContain   ObjectFitValue = "contain"
	ObjectFitCover     ObjectFitValue = "cover"
	ObjectFitFill      ObjectFitValue = "fill"
	ObjectFitScaleDown ObjectFitValue = "scale-down"
	ObjectFitNone      ObjectFitValue = "none"
)

var ObjectFitConcern = newConcern("object-fit", PlacePrefix, ObjectFitContain, []Token[ObjectFitValue]{
	{Step: "Contain", Value: ObjectFitContain, Class: "object-fit-contain", Style: "object-fit: contain"},
	{Step: "Cover", Value: ObjectFitCover, Class: "object-fit-cover", Style: "object-fit: cover"},
	{Step: "Fill", Value: ObjectFitFill, Class: "object-fit-fill", Style: "object-fit: fill"},
	{Step: "ScaleDown", Value: ObjectFitScaleDown, Class: "object-fit-scale", Style: "object-fit: scale-down"},
	{Step: "None", Value: ObjectFitNone, Class: "object-fit-none", Style: "object-fit: none"},
})

// ObjectFit starts an object-fit builder.
func ObjectFit(v ObjectFitValue) *Builder[ObjectFitValue] { return ObjectFitConcern.New(v) }

// FloatValue is a logical float direction or a CSS-wide keyword.
type FloatValue string

const (
	FloatStart FloatValue = "start"
	FloatEnd   FloatValue = "end"
	FloatNone  FloatValue = "none"
)

var FloatConcern = newConcern("float", PlaceInfix, FloatNone, keywordTokens([]Token[FloatValue]{
	{Step: "Start", Value: FloatStart, Class: "float-start", Style: "float: inline-start"},
	{Step: "End", Value: FloatEnd, Class: "float-end", Style: "float: inline-end"},
	{Step: "None", Value: FloatNone, Class: "float-none", Style: "float: none"},
}, "float"))

// Float starts a float builder.
func Float(v FloatValue) *Builder[FloatValue] { return FloatConcern.New(v) }

// VisibilityValue toggles visibility without affecting layout.
type VisibilityValue string

const (
	Visible   VisibilityValue = "visible"
	Invisible VisibilityValue = "invisible"
)

var VisibilityConcern = newConcern("visibility", PlaceInfix, Visible, []Token[VisibilityValue]{
	{Step: "Visible", Value: Visible, Class: "visible", Style: "visibility: visible"},
	{Step: "Invisible", Value: Invisible, Class: "invisible", Style: "visibility: hidden"},
})

// Visibility starts a visibility builder.
func Visibility(v VisibilityValue) *Builder[VisibilityValue] { return VisibilityConcern.New(v) }

// ZIndexValue is a layer on the z-index scale; ZN1 is -1.
type ZIndexValue int

const (
	ZN1 ZIndexValue = -1
	Z0  ZIndexValue = 0
	Z1  ZIndexValue = 1
	Z2  ZIndexValue = 2
	Z3  ZIndexValue = 3
)

func zIndexTokens() []Token[ZIndexValue] {
	tokens := []Token[ZIndexValue]{{Step: "N1", Value: ZN1, Class: "z-n1", Style: "z-index: -1"}}
	for _, z := range []ZIndexValue{Z0, Z1, Z2, Z3} {
		n := strconv.Itoa(int(z))
		tokens = append(tokens, Token[ZIndexValue]{Step: "Z" + n, Value: z, Class: "z-" + n, Style: "z-index: " + n})
	}
	return tokens
}

var ZIndexConcern = newConcern("z-index", PlaceInfix, Z0, zIndexTokens())

// ZIndex starts a z-index builder.
func ZIndex(v ZIndexValue) *Builder[ZIndexValue] { return ZIndexConcern.New(v) }
