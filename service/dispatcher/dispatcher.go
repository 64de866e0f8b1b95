// Package dispatcher is the application store: the single writer that feeds
// every event to the community and stream state machines.
package dispatcher

import (
	"sync"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/base/log"
	"github.com/gitter-badger/talk-5/base/metrics"
	"github.com/gitter-badger/talk-5/domain"
	communitystate "github.com/gitter-badger/talk-5/stores/community/state"
	streamstate "github.com/gitter-badger/talk-5/stores/stream/state"
)

// Store implements domain.Dispatcher.
type Store struct {
	mu          sync.Mutex
	community   *communitystate.Store
	stream      *streamstate.Store
	subscribers []domain.Dispatcher
	metrics     metrics.Service
}

// New wires both stores behind one dispatcher. Expired flag banners from the
// stream store are routed back through Dispatch.
func New(community *communitystate.Store, stream *streamstate.Store) *Store {
	d := &Store{
		community: community,
		stream:    stream,
		metrics:   metrics.New("dispatcher"),
	}
	stream.SetClearHandler(func(e domain.Event) {
		d.Dispatch(ctx.Background(), e)
	})
	return d
}

// Subscribe registers sub to see every event after it has been applied.
func (d *Store) Subscribe(sub domain.Dispatcher) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers = append(d.subscribers, sub)
}

func (d *Store) Dispatch(c ctx.Ctx, e domain.Event) {
	d.mu.Lock()
	d.community.Apply(e)
	d.stream.Apply(e)
	subs := append([]domain.Dispatcher{}, d.subscribers...)
	d.mu.Unlock()

	c.WithFields(log.Fields{
		"event": e.EventType(),
	}).Debug("event applied")
	d.metrics.BumpSum("event", 1, "type", string(e.EventType()))

	for _, sub := range subs {
		sub.Dispatch(c, e)
	}
}

func (d *Store) Community() communitystate.State {
	return d.community.State()
}

func (d *Store) Stream() streamstate.State {
	return d.stream.State()
}
