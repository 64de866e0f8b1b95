package ctx

import (
	"context"
	"time"

	log "github.com/gitter-badger/talk-5/base/log"
)

// Ctx is the context passed through every action, repository and service
// call. It carries cancellation plus a logger bound with request fields.
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

// From wraps a plain context, keeping the logger if it already is a Ctx.
func From(c context.Context) Ctx {
	if bc, ok := c.(Ctx); ok {
		return bc
	}
	return Ctx{
		Context: c,
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent.Context, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

// WithFields binds log fields without touching the context values.
func WithFields(parent Ctx, fields log.Fields) Ctx {
	return Ctx{
		Context: parent.Context,
		Logger:  parent.Logger.WithFields(fields),
	}
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	c, cancel := context.WithCancel(parent.Context)
	return Ctx{
		Context: c,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	if timeout <= 0 {
		return WithCancel(parent)
	}
	c, cancel := context.WithTimeout(parent.Context, timeout)
	return Ctx{
		Context: c,
		Logger:  parent.Logger,
	}, cancel
}

// Detach keeps the logger and values but drops the parent's deadline and
// cancellation, for work that must outlive the call that scheduled it.
func Detach(parent Ctx) Ctx {
	return Ctx{
		Context: detached{parent.Context},
		Logger:  parent.Logger,
	}
}

type detached struct {
	parent context.Context
}

func (detached) Deadline() (time.Time, bool)         { return time.Time{}, false }
func (detached) Done() <-chan struct{}               { return nil }
func (detached) Err() error                          { return nil }
func (d detached) Value(key interface{}) interface{} { return d.parent.Value(key) }
