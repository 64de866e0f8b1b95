package domain

import "github.com/gitter-badger/talk-5/base/ctx"

type EventType string

// Event is a typed record describing one state change.
type Event interface {
	EventType() EventType
}

// Dispatcher applies events to the application state.
type Dispatcher interface {
	Dispatch(c ctx.Ctx, e Event)
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(c ctx.Ctx, e Event)

func (f DispatcherFunc) Dispatch(c ctx.Ctx, e Event) {
	f(c, e)
}
