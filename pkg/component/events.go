package component

import (
	"context"
	"errors"
)

// Handler receives the event argument supplied by the host.
type Handler func(ctx context.Context, arg any) error

// EventCallback is an optional event handler. The zero value has no delegate.
type EventCallback struct {
	fn Handler
}

// NewEventCallback wraps fn.
func NewEventCallback(fn Handler) EventCallback {
	return EventCallback{fn: fn}
}

// HasDelegate reports whether a handler is attached.
func (c EventCallback) HasDelegate() bool { return c.fn != nil }

// Invoke runs the handler. It is a no-op without a delegate.
func (c EventCallback) Invoke(ctx context.Context, arg any) error {
	if c.fn == nil {
		return nil
	}
	return c.fn(ctx, arg)
}

// Compose returns a callback running first then second. Both always run and
// their errors are joined.
func Compose(first, second EventCallback) EventCallback {
	switch {
	case !first.HasDelegate():
		return second
	case !second.HasDelegate():
		return first
	}
	return EventCallback{fn: func(ctx context.Context, arg any) error {
		errFirst := first.Invoke(ctx, arg)
		errSecond := second.Invoke(ctx, arg)
		return errors.Join(errFirst, errSecond)
	}}
}
