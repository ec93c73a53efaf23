package component

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

var voidElements = map[string]bool{
	"area": true, "br": true, "col": true, "embed": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true, "track": true, "wbr": true,
}

var attributeNamePattern = regexp.MustCompile(`^[a-zA-Z_:][-a-zA-Z0-9_:.]*$`)

// ValidAttributeName reports whether name can be written as an HTML
// attribute name without quoting.
func ValidAttributeName(name string) bool {
	return attributeNamePattern.MatchString(name)
}

// Element renders a Component as a single HTML element with optional children.
type Element struct {
	// Tag defaults to div.
	Tag       string
	Component *Component
	Children  []templ.Component
}

var _ templ.Component = Element{}

// Render writes <tag attrs>children</tag>. Attribute values are escaped,
// a true bool renders as a bare key, and event callbacks and keys that are
// not valid attribute names are skipped.
func (e Element) Render(ctx context.Context, w io.Writer) error {
	tag := strings.ToLower(strings.TrimSpace(e.Tag))
	if tag == "" {
		tag = "div"
	}

	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(tag)
	if e.Component != nil {
		writeAttributes(&sb, e.Component.BuildAttributes())
	}
	sb.WriteByte('>')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	if voidElements[tag] {
		return nil
	}

	for _, child := range e.Children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return fmt.Errorf("render <%s> child: %w", tag, err)
		}
	}
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

func writeAttributes(sb *strings.Builder, attrs *Attributes) {
	for _, k := range attrs.Keys() {
		if !ValidAttributeName(k) {
			continue
		}
		v, _ := attrs.Get(k)
		switch val := v.(type) {
		case EventCallback:
			continue
		case bool:
			if val {
				sb.WriteByte(' ')
				sb.WriteString(k)
			}
		default:
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(templ.EscapeString(fmt.Sprint(val)))
			sb.WriteByte('"')
		}
	}
}

// Text returns a component writing s as escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
