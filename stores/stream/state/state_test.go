package state

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/suite"

	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/comment"
)

type StreamStateTestSuite struct {
	suite.Suite
}

func ready(comments ...comment.Comment) State {
	s := Reduce(Initial(), comment.StreamFetchRequested{})
	return Reduce(s, comment.StreamFetchSucceeded{Comments: comments})
}

func (s *StreamStateTestSuite) TestFetch() {
	st := Reduce(Initial(), comment.StreamFetchRequested{})
	s.Equal(Loading, st.Status)
	s.True(st.Loading)

	st = Reduce(st, comment.StreamFetchSucceeded{Comments: []comment.Comment{{ID: "c1"}, {ID: "c2"}}})
	s.Equal(Ready, st.Status)
	s.False(st.Loading)
	s.Equal([]string{"c1", "c2"}, st.IDs)
	s.Len(st.ByID, 2)
}

func (s *StreamStateTestSuite) TestFetchFailureStillReady() {
	boom := errors.New("boom")
	st := Reduce(Initial(), comment.StreamFetchRequested{})
	st = Reduce(st, comment.StreamFetchFailed{Err: boom})
	s.Equal(Ready, st.Status)
	s.Equal(boom, st.Err)

	st = Reduce(st, comment.CommentCreated{Comment: comment.Comment{ID: "c1", Body: "hi"}})
	s.Equal([]string{"c1"}, st.IDs)
}

func (s *StreamStateTestSuite) TestCommentCreated() {
	prev := ready(comment.Comment{ID: "c1"})
	next := Reduce(prev, comment.CommentCreated{Comment: comment.Comment{ID: "c2", Body: "new"}})

	s.Equal([]string{"c1", "c2"}, next.IDs)
	s.Equal("new", next.ByID["c2"].Body)
	s.Equal([]string{"c1"}, prev.IDs)
	s.Len(prev.ByID, 1)

	again := Reduce(next, comment.CommentCreated{Comment: comment.Comment{ID: "c2", Body: "edited"}})
	s.Equal([]string{"c1", "c2"}, again.IDs)
	s.Equal("edited", again.ByID["c2"].Body)
}

func (s *StreamStateTestSuite) TestFlagTwoStage() {
	st := ready(comment.Comment{ID: "c1"})

	st = Reduce(st, comment.FlagRequested{CommentID: "c1"})
	s.True(st.Notification.Active)
	s.Equal(comment.ReportMessage, st.Notification.Message)
	s.False(st.ByID["c1"].Flagged, "provisional until confirmed")

	st = Reduce(st, comment.FlagConfirmed{CommentID: "c1"})
	s.True(st.ByID["c1"].Flagged)
	s.Equal([]string{"c1"}, st.IDs)
}

func (s *StreamStateTestSuite) TestFlagFailedKeepsBanner() {
	boom := errors.New("boom")
	st := ready(comment.Comment{ID: "c1"})
	st = Reduce(st, comment.FlagRequested{CommentID: "c1"})
	st = Reduce(st, comment.FlagFailed{CommentID: "c1", Err: boom})

	s.True(st.Notification.Active)
	s.False(st.ByID["c1"].Flagged)
	s.Equal(boom, st.Err)
}

func (s *StreamStateTestSuite) TestFlagConfirmedUnknownComment() {
	st := ready()
	s.NotPanics(func() {
		st = Reduce(st, comment.FlagConfirmed{CommentID: "ghost"})
	})
	s.Empty(st.IDs)
}

func (s *StreamStateTestSuite) TestStaleClearIgnored() {
	st := Reduce(ready(), comment.FlagRequested{CommentID: "c1"})
	st = Reduce(st, comment.FlagRequested{CommentID: "c2"})

	st = Reduce(st, comment.NotificationCleared{Gen: st.NotificationGen - 1})
	s.True(st.Notification.Active)

	st = Reduce(st, comment.NotificationCleared{Gen: st.NotificationGen})
	s.False(st.Notification.Active)
	s.Empty(st.Notification.Message)
}

func (s *StreamStateTestSuite) TestNotificationRestartsOnSecondFlag() {
	mock := clock.NewMock()
	mu := sync.Mutex{}
	clears := []domain.Event{}

	var store *Store
	store = NewStore(WithClock(mock), WithClearHandler(func(e domain.Event) {
		mu.Lock()
		clears = append(clears, e)
		mu.Unlock()
		store.Apply(e)
	}))
	store.Apply(comment.StreamFetchSucceeded{Comments: []comment.Comment{{ID: "c1"}, {ID: "c2"}}})

	store.Apply(comment.FlagRequested{CommentID: "c1"})
	mock.Add(10 * time.Second)
	store.Apply(comment.FlagRequested{CommentID: "c2"})

	mock.Add(20 * time.Second)
	s.True(store.State().Notification.Active, "first timer was canceled")

	mock.Add(10 * time.Second)
	s.Eventually(func() bool {
		return !store.State().Notification.Active
	}, time.Second, 10*time.Millisecond)

	mock.Add(time.Minute)
	mu.Lock()
	defer mu.Unlock()
	s.Equal([]domain.Event{comment.NotificationCleared{Gen: 2}}, clears)
}

func (s *StreamStateTestSuite) TestDefaultClearAppliesDirectly() {
	mock := clock.NewMock()
	store := NewStore(WithClock(mock), WithTimeout(time.Second))

	store.Apply(comment.FlagRequested{CommentID: "c1"})
	s.True(store.State().Notification.Active)

	mock.Add(time.Second)
	s.Eventually(func() bool {
		return !store.State().Notification.Active
	}, time.Second, 10*time.Millisecond)
}

func (s *StreamStateTestSuite) TestStatusText() {
	b, err := Ready.MarshalText()
	s.NoError(err)
	s.Equal("ready", string(b))
	s.Equal("idle", Idle.String())
}

func TestStreamStateTestSuite(t *testing.T) {
	suite.Run(t, new(StreamStateTestSuite))
}
