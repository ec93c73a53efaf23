package css

import "strings"

// Side selects the box-model side a spacing or border rule applies to.
// SideAll is the zero value and the default for freshly chained sizes.
type Side int

const (
	SideAll Side = iota
	SideTop
	SideRight
	SideBottom
	SideLeft
	SideHorizontal
	SideVertical
	SideInlineStart
	SideInlineEnd
)

type sideInfo struct {
	name       string
	infix      string
	properties []string
}

var sides = [...]sideInfo{
	SideAll:         {name: "all"},
	SideTop:         {name: "top", infix: "t", properties: []string{"top"}},
	SideRight:       {name: "right", infix: "e", properties: []string{"right"}},
	SideBottom:      {name: "bottom", infix: "b", properties: []string{"bottom"}},
	SideLeft:        {name: "left", infix: "s", properties: []string{"left"}},
	SideHorizontal:  {name: "horizontal", infix: "x", properties: []string{"left", "right"}},
	SideVertical:    {name: "vertical", infix: "y", properties: []string{"top", "bottom"}},
	SideInlineStart: {name: "inline-start", infix: "s", properties: []string{"inline-start"}},
	SideInlineEnd:   {name: "inline-end", infix: "e", properties: []string{"inline-end"}},
}

func (s Side) info() sideInfo {
	if s < SideAll || int(s) >= len(sides) {
		return sides[SideAll]
	}
	return sides[s]
}

func (s Side) String() string {
	return s.info().name
}

// Infix is the letter spliced into class names (mt-3, px-2). Empty for SideAll.
func (s Side) Infix() string {
	return s.info().infix
}

// Properties returns the CSS side suffixes this side expands to. SideAll
// returns nil, meaning the shorthand property is used.
func (s Side) Properties() []string {
	return s.info().properties
}

// ParseSide resolves side names and the fluent step names used in chain
// expressions (FromTop, OnX, FromStart).
func ParseSide(name string) (Side, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "all", "onall":
		return SideAll, true
	case "top", "fromtop":
		return SideTop, true
	case "right", "fromright":
		return SideRight, true
	case "bottom", "frombottom":
		return SideBottom, true
	case "left", "fromleft":
		return SideLeft, true
	case "horizontal", "x", "onx":
		return SideHorizontal, true
	case "vertical", "y", "ony":
		return SideVertical, true
	case "inline-start", "start", "fromstart":
		return SideInlineStart, true
	case "inline-end", "end", "fromend":
		return SideInlineEnd, true
	default:
		return SideAll, false
	}
}
