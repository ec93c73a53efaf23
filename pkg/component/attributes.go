package component

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/a-h/templ"
)

// Attributes is an insertion-ordered attribute map. Replacing a key keeps its
// original position.
type Attributes struct {
	keys   []string
	values map[string]any
}

// NewAttributes returns an empty map.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]any)}
}

// Set stores value under key, appending the key when it is new.
func (a *Attributes) Set(key string, value any) {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, exists := a.values[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (any, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a.values[key]
	return v, ok
}

// String returns the value under key formatted as text, or "" when absent.
func (a *Attributes) String(key string) string {
	v, ok := a.Get(key)
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}

// Keys returns the keys in insertion order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Templ converts the map for use with templ's attribute spreading. Event
// callbacks are dropped since they have no markup form.
func (a *Attributes) Templ() templ.Attributes {
	out := templ.Attributes{}
	if a == nil {
		return out
	}
	for _, k := range a.keys {
		v := a.values[k]
		if _, isEvent := v.(EventCallback); isEvent {
			continue
		}
		out[k] = v
	}
	return out
}

// MarshalJSON writes the attributes as an object in insertion order. Event
// callbacks are written as true.
func (a *Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		v := a.values[k]
		if cb, isEvent := v.(EventCallback); isEvent {
			v = cb.HasDelegate()
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal attribute %s: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
