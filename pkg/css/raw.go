package css

import "strings"

// Raw is a caller-authored class list or declaration block placed in a slot
// as-is. Text containing a colon is treated as style; anything else as classes.
type Raw string

func (r Raw) isStyle() bool {
	return strings.Contains(string(r), ":")
}

func (r Raw) ToClass() string {
	if r.isStyle() {
		return ""
	}
	return strings.TrimSpace(string(r))
}

func (r Raw) ToStyle() string {
	if !r.isStyle() {
		return ""
	}
	return strings.TrimRight(strings.TrimSpace(string(r)), ";")
}

func (r Raw) Mode() Mode {
	if r.isStyle() {
		return ModeStyle
	}
	return ModeClass
}

func (r Raw) String() string { return string(r) }
