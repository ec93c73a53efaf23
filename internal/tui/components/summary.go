package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/quark/pkg/component"
)

// Summary renders an attribute set as key=value lines.
type Summary struct {
	attrs *component.Attributes
}

// NewSummary creates a summary over attrs.
func NewSummary(attrs *component.Attributes) Summary {
	return Summary{attrs: attrs}
}

// View renders the attributes in order. Event handlers show as "(handler)"
// and true booleans as a bare key.
func (s Summary) View() string {
	var lines []string
	for _, k := range s.attrs.Keys() {
		v, _ := s.attrs.Get(k)
		switch val := v.(type) {
		case component.EventCallback:
			lines = append(lines, fmt.Sprintf("%s=(handler)", k))
		case bool:
			if val {
				lines = append(lines, k)
			}
		default:
			lines = append(lines, fmt.Sprintf("%s=%q", k, fmt.Sprint(val)))
		}
	}
	return strings.Join(lines, "\n")
}
