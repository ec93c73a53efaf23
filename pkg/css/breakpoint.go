package css

import "strings"

// Breakpoint is a responsive width threshold. The zero value means "no breakpoint".
type Breakpoint int

const (
	NoBreakpoint Breakpoint = iota
	Phone                   // < 576px, the unprefixed default
	Mobile                  // >= 576px
	Tablet                  // >= 768px
	Laptop                  // >= 992px
	Desktop                 // >= 1200px
	Wide                    // >= 1400px
)

var breakpointNames = [...]string{
	NoBreakpoint: "",
	Phone:        "phone",
	Mobile:       "mobile",
	Tablet:       "tablet",
	Laptop:       "laptop",
	Desktop:      "desktop",
	Wide:         "wide",
}

var breakpointTokens = [...]string{
	NoBreakpoint: "",
	Phone:        "",
	Mobile:       "sm",
	Tablet:       "md",
	Laptop:       "lg",
	Desktop:      "xl",
	Wide:         "xxl",
}

// Token returns the class token spliced into utility classes. Phone is the
// unprefixed default and yields an empty token, as does NoBreakpoint.
func (b Breakpoint) Token() string {
	if b < NoBreakpoint || int(b) >= len(breakpointTokens) {
		return ""
	}
	return breakpointTokens[b]
}

func (b Breakpoint) String() string {
	if b < NoBreakpoint || int(b) >= len(breakpointNames) {
		return ""
	}
	return breakpointNames[b]
}

// Breakpoints lists every concrete breakpoint in ascending width order.
func Breakpoints() []Breakpoint {
	return []Breakpoint{Phone, Mobile, Tablet, Laptop, Desktop, Wide}
}

// ParseBreakpoint accepts device names (tablet), their "On" step form
// (OnTablet) and class tokens (md). Matching is case-insensitive.
func ParseBreakpoint(name string) (Breakpoint, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "on")
	switch key {
	case "phone", "xs":
		return Phone, true
	case "mobile", "sm":
		return Mobile, true
	case "tablet", "md":
		return Tablet, true
	case "laptop", "lg":
		return Laptop, true
	case "desktop", "xl":
		return Desktop, true
	case "wide", "widescreen", "xxl":
		return Wide, true
	default:
		return NoBreakpoint, false
	}
}
