package css

import "strconv"

// OpacityValue is a percentage on the 0-100 opacity scale.
type OpacityValue int

const (
	Opacity0   OpacityValue = 0
	Opacity25  OpacityValue = 25
	Opacity50  OpacityValue = 50
	Opacity75  OpacityValue = 75
	Opacity100 OpacityValue = 100
)

func opacityTokens() []Token[OpacityValue] {
	styles := map[OpacityValue]string{0: "0", 25: "0.25", 50: "0.5", 75: "0.75", 100: "1"}
	tokens := make([]Token[OpacityValue], 0, len(styles))
	for _, v := range []OpacityValue{Opacity0, Opacity25, Opacity50, Opacity75, Opacity100} {
		n := strconv.Itoa(int(v))
		tokens = append(tokens, Token[OpacityValue]{
			Step:  "V" + n,
			Value: v,
			Class: "opacity-" + n,
			Style: "opacity: " + styles[v],
		})
	}
	return tokens
}

var OpacityConcern = newConcern("opacity", PlaceInfix, Opacity100, opacityTokens())

// Opacity starts an opacity builder: Opacity(Opacity50) renders opacity-50.
func Opacity(v OpacityValue) *Builder[OpacityValue] { return OpacityConcern.New(v) }

// ShadowValue is a box-shadow preset. Shadows are class-only.
type ShadowValue string

const (
	ShadowNone ShadowValue = "none"
	ShadowBase ShadowValue = "base"
	ShadowSm   ShadowValue = "sm"
	ShadowLg   ShadowValue = "lg"
)

var BoxShadowConcern = newConcern("box-shadow", PlaceInfix, ShadowBase, []Token[ShadowValue]{
	{Step: "None", Value: ShadowNone, Class: "shadow-none"},
	{Step: "Base", Value: ShadowBase, Class: "shadow"},
	{Step: "Sm", Value: ShadowSm, Class: "shadow-sm"},
	{Step: "Lg", Value: ShadowLg, Class: "shadow-lg"},
})

// BoxShadow starts a box-shadow builder. Shadows are class-only.
func BoxShadow(v ShadowValue) *Builder[ShadowValue] { return BoxShadowConcern.New(v) }

// PointerEventsValue is a pointer-events keyword.
type PointerEventsValue string

const (
	PointerNone PointerEventsValue = "none"
	PointerAuto PointerEventsValue = "auto"
)

var PointerEventsConcern = newConcern("pointer-events", PlaceInfix, PointerAuto, []Token[PointerEventsValue]{
	{Step: "None", Value: PointerNone, Class: "pe-none", Style: "pointer-events: none"},
	{Step: "Auto", Value: PointerAuto, Class: "pe-auto", Style: "pointer-events: auto"},
})

// PointerEvents starts a pointer-events builder.
func PointerEvents(v PointerEventsValue) *Builder[PointerEventsValue] {
	return PointerEventsConcern.New(v)
}

// UserSelectValue is a user-select keyword.
type UserSelectValue string

const (
	SelectNone UserSelectValue = "none"
	SelectAuto UserSelectValue = "auto"
	SelectAll  UserSelectValue = "all"
)

var UserSelectConcern = newConcern("user-select", PlaceInfix, SelectAuto, []Token[UserSelectValue]{
	{Step: "None", Value: SelectNone, Class: "user-select-none", Style: "user-select: none"},
	{Step: "Auto", Value: SelectAuto, Class: "user-select-auto", Style: "user-select: auto"},
	{Step: "All", Value: SelectAll, Class: "user-select-all", Style: "user-select: all"},
})

// UserSelect starts a user-select builder.
func UserSelect(v UserSelectValue) *Builder[UserSelectValue] { return UserSelectConcern.New(v) }
