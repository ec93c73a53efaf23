package css

// Size is a step on the spacing scale. SizeAuto is the -1 sentinel.
type Size int

const (
	SizeAuto Size = -1
	S0       Size = 0
	S1       Size = 1
	S2       Size = 2
	S3       Size = 3
	S4       Size = 4
	S5       Size = 5
)

// spacingTokens builds the 0-5 rem scale shared by margin, padding and gap.
func spacingTokens(prefix string, auto bool) []Token[Size] {
	tokens := []Token[Size]{
		{Step: "S0", Value: S0, Class: prefix + "-0", Style: "0"},
		{Step: "S1", Value: S1, Class: prefix + "-1", Style: "0.25rem"},
		{Step: "S2", Value: S2, Class: prefix + "-2", Style: "0.5rem"},
		{Step: "S3", Value: S3, Class: prefix + "-3", Style: "1rem"},
		{Step: "S4", Value: S4, Class: prefix + "-4", Style: "1.5rem"},
		{Step: "S5", Value: S5, Class: prefix + "-5", Style: "3rem"},
	}
	if auto {
		tokens = append(tokens, Token[Size]{Step: "Auto", Value: SizeAuto, Class: prefix + "-auto", Style: "auto"})
	}
	return tokens
}

var (
	MarginConcern  = newConcern("margin", PlacePrefix, S0, spacingTokens("m", true)).withSides("margin", "")
	PaddingConcern = newConcern("padding", PlacePrefix, S0, spacingTokens("p", true)).withSides("padding", "")
	BorderConcern  = newConcern("border", PlacePrefix, S0, []Token[Size]{
		{Step: "S0", Value: S0, Class: "b-0", Style: "0"},
		{Step: "S1", Value: S1, Class: "b-1", Style: "1px"},
		{Step: "S2", Value: S2, Class: "b-2", Style: "2px"},
		{Step: "S3", Value: S3, Class: "b-3", Style: "3px"},
		{Step: "S4", Value: S4, Class: "b-4", Style: "4px"},
		{Step: "S5", Value: S5, Class: "b-5", Style: "5px"},
	}).withSides("border", "-width")
	GapConcern = newConcern("gap", PlaceInfix, S0, gapTokens())
)

func gapTokens() []Token[Size] {
	tokens := spacingTokens("gap", false)
	for i := range tokens {
		tokens[i].Style = "gap: " + tokens[i].Style
	}
	return tokens
}

// SpacingBuilder is a Builder over the spacing scale with a side axis.
type SpacingBuilder struct {
	Builder[Size]
}

func newSpacing(c *Concern[Size], s Size) *SpacingBuilder {
	return &SpacingBuilder{Builder: *c.New(s)}
}

// Spacing returns an empty builder over a sided spacing concern.
func Spacing(c *Concern[Size]) *SpacingBuilder {
	return &SpacingBuilder{Builder: *c.Start()}
}

// Margin starts a margin builder: Margin(S3).FromTop().OnTablet().
func Margin(s Size) *SpacingBuilder { return newSpacing(MarginConcern, s) }

// Padding starts a padding builder.
func Padding(s Size) *SpacingBuilder { return newSpacing(PaddingConcern, s) }

// Border starts a border-width builder. Border has no auto size.
func Border(s Size) *SpacingBuilder { return newSpacing(BorderConcern, s) }

// Gap starts a gap builder. Gap has no side axis.
func Gap(s Size) *Builder[Size] { return GapConcern.New(s) }

// Size appends a rule for s on all sides.
func (b *SpacingBuilder) Size(s Size) *SpacingBuilder {
	b.Builder.Add(s)
	return b
}

// Add is Size, kept so SpacingBuilder chains like every other builder.
func (b *SpacingBuilder) Add(s Size) *SpacingBuilder { return b.Size(s) }

// S0 appends a zero-size rule.
func (b *SpacingBuilder) S0() *SpacingBuilder { return b.Size(S0) }

// S1 appends a 0.25rem rule.
func (b *SpacingBuilder) S1() *SpacingBuilder { return b.Size(S1) }

// S2 appends a 0.5rem rule.
func (b *SpacingBuilder) S2() *SpacingBuilder { return b.Size(S2) }

// S3 appends a 1rem rule.
func (b *SpacingBuilder) S3() *SpacingBuilder { return b.Size(S3) }

// S4 appends a 1.5rem rule.
func (b *SpacingBuilder) S4() *SpacingBuilder { return b.Size(S4) }

// S5 appends a 3rem rule.
func (b *SpacingBuilder) S5() *SpacingBuilder { return b.Size(S5) }

// Auto appends an auto rule (m-auto, margin: auto).
func (b *SpacingBuilder) Auto() *SpacingBuilder { return b.Size(SizeAuto) }

// Side narrows the most recent rule to s. A rule that still targets all
// sides is replaced in place; otherwise a copy with the new side is appended,
// so Margin(S3).FromTop().FromLeft() yields exactly two rules.
func (b *SpacingBuilder) Side(s Side) *SpacingBuilder {
	b.Builder.side(s)
	return b
}

// FromTop narrows to the top side (mt-3, margin-top).
func (b *SpacingBuilder) FromTop() *SpacingBuilder { return b.Side(SideTop) }

// FromRight narrows to the right side (me-3, margin-right).
func (b *SpacingBuilder) FromRight() *SpacingBuilder { return b.Side(SideRight) }

// FromBottom narrows to the bottom side (mb-3, margin-bottom).
func (b *SpacingBuilder) FromBottom() *SpacingBuilder { return b.Side(SideBottom) }

// FromLeft narrows to the left side (ms-3, margin-left).
func (b *SpacingBuilder) FromLeft() *SpacingBuilder { return b.Side(SideLeft) }

// FromStart narrows to the inline start (ms-3, margin-inline-start).
func (b *SpacingBuilder) FromStart() *SpacingBuilder { return b.Side(SideInlineStart) }

// FromEnd narrows to the inline end (me-3, margin-inline-end).
func (b *SpacingBuilder) FromEnd() *SpacingBuilder { return b.Side(SideInlineEnd) }

// OnX covers left and right (mx-3).
func (b *SpacingBuilder) OnX() *SpacingBuilder { return b.Side(SideHorizontal) }

// OnY covers top and bottom (my-3).
func (b *SpacingBuilder) OnY() *SpacingBuilder { return b.Side(SideVertical) }

// OnAll resets the most recent rule to every side.
func (b *SpacingBuilder) OnAll() *SpacingBuilder { return b.Side(SideAll) }

// On sets the breakpoint of the most recent rule.
func (b *SpacingBuilder) On(bp Breakpoint) *SpacingBuilder {
	b.Builder.On(bp)
	return b
}

// OnPhone is On(Phone).
func (b *SpacingBuilder) OnPhone() *SpacingBuilder { return b.On(Phone) }

// OnMobile is On(Mobile).
func (b *SpacingBuilder) OnMobile() *SpacingBuilder { return b.On(Mobile) }

// OnTablet is On(Tablet).
func (b *SpacingBuilder) OnTablet() *SpacingBuilder { return b.On(Tablet) }

// OnLaptop is On(Laptop).
func (b *SpacingBuilder) OnLaptop() *SpacingBuilder { return b.On(Laptop) }

// OnDesktop is On(Desktop).
func (b *SpacingBuilder) OnDesktop() *SpacingBuilder { return b.On(Desktop) }

// OnWide is On(Wide).
func (b *SpacingBuilder) OnWide() *SpacingBuilder { return b.On(Wide) }

// AsStyle routes the output to the style attribute.
func (b *SpacingBuilder) AsStyle() *SpacingBuilder {
	b.Builder.AsStyle()
	return b
}

// AsClass routes the output to the class attribute.
func (b *SpacingBuilder) AsClass() *SpacingBuilder {
	b.Builder.AsClass()
	return b
}

// Clone returns an independent copy.
func (b *SpacingBuilder) Clone() *SpacingBuilder {
	if b == nil {
		return nil
	}
	return &SpacingBuilder{Builder: *b.Builder.Clone()}
}

// The promoted methods would dereference a nil embedded value, so a nil
// *SpacingBuilder needs its own renderers.

// ToClass renders the rules as utility classes.
func (b *SpacingBuilder) ToClass() string {
	if b == nil {
		return ""
	}
	return b.Builder.ToClass()
}

// ToStyle renders the rules as inline declarations.
func (b *SpacingBuilder) ToStyle() string {
	if b == nil {
		return ""
	}
	return b.Builder.ToStyle()
}

// Mode reports where the output is routed.
func (b *SpacingBuilder) Mode() Mode {
	if b == nil {
		return ModeClass
	}
	return b.Builder.Mode()
}

// IsEmpty reports whether the builder holds no rules.
func (b *SpacingBuilder) IsEmpty() bool {
	return b == nil || b.Builder.IsEmpty()
}

// String renders according to the builder's mode.
func (b *SpacingBuilder) String() string {
	if b == nil {
		return ""
	}
	return b.Builder.String()
}
