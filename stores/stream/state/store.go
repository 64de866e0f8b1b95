package state

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/comment"
)

const DefaultNotificationTimeout = 30 * time.Second

type StoreOptions struct {
	Clock   clock.Clock
	Timeout time.Duration
	OnClear func(e domain.Event)
}

type StoreOption func(*StoreOptions)

func WithClock(c clock.Clock) StoreOption {
	return func(o *StoreOptions) {
		o.Clock = c
	}
}

func WithTimeout(d time.Duration) StoreOption {
	return func(o *StoreOptions) {
		o.Timeout = d
	}
}

// WithClearHandler hands expired banners to h instead of applying them to
// the store directly.
func WithClearHandler(h func(e domain.Event)) StoreOption {
	return func(o *StoreOptions) {
		o.OnClear = h
	}
}

// Store owns the stream state and its single auto-clear timer.
type Store struct {
	mu    sync.RWMutex
	state State
	opts  StoreOptions
	timer *clock.Timer
}

func NewStore(opts ...StoreOption) *Store {
	o := StoreOptions{
		Clock:   clock.New(),
		Timeout: DefaultNotificationTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Store{state: Initial(), opts: o}
	if s.opts.OnClear == nil {
		s.opts.OnClear = func(e domain.Event) { s.Apply(e) }
	}
	return s
}

func (s *Store) SetClearHandler(h func(e domain.Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.OnClear = h
}

func (s *Store) Apply(e domain.Event) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, e)
	if _, ok := e.(comment.FlagRequested); ok {
		s.rescheduleLocked(s.state.NotificationGen)
	}
	return s.state
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// rescheduleLocked replaces the pending clear, if any, with one for gen.
func (s *Store) rescheduleLocked(gen uint64) {
	if s.timer != nil {
		s.timer.Stop()
	}
	onClear := s.opts.OnClear
	s.timer = s.opts.Clock.AfterFunc(s.opts.Timeout, func() {
		onClear(comment.NotificationCleared{Gen: gen})
	})
}
