package state

import (
	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/comment"
)

type Status int

const (
	Idle Status = iota
	Loading
	Ready
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "idle"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Notification struct {
	Active  bool   `json:"active"`
	Message string `json:"message"`
}

// State is one comment stream plus its transient banner.
type State struct {
	ByID            map[string]comment.Comment `json:"byId"`
	IDs             []string                   `json:"ids"`
	Loading         bool                       `json:"loading"`
	Status          Status                     `json:"status"`
	Notification    Notification               `json:"notification"`
	NotificationGen uint64                     `json:"-"`
	Err             error                      `json:"-"`
}

func Initial() State {
	return State{
		ByID: map[string]comment.Comment{},
		IDs:  []string{},
	}
}

func (s State) withComment(cm comment.Comment) State {
	byID := make(map[string]comment.Comment, len(s.ByID)+1)
	for id, c := range s.ByID {
		byID[id] = c
	}
	if _, ok := byID[cm.ID]; !ok {
		s.IDs = append(append(make([]string, 0, len(s.IDs)+1), s.IDs...), cm.ID)
	}
	byID[cm.ID] = cm
	s.ByID = byID
	return s
}

func Reduce(s State, e domain.Event) State {
	switch ev := e.(type) {
	case comment.StreamFetchRequested:
		s.Loading = true
		s.Status = Loading

	case comment.StreamFetchSucceeded:
		s.ByID = make(map[string]comment.Comment, len(ev.Comments))
		s.IDs = make([]string, 0, len(ev.Comments))
		for _, cm := range ev.Comments {
			if _, ok := s.ByID[cm.ID]; !ok {
				s.IDs = append(s.IDs, cm.ID)
			}
			s.ByID[cm.ID] = cm
		}
		s.Loading = false
		s.Status = Ready
		s.Err = nil

	case comment.StreamFetchFailed:
		// creating and flagging still work without the initial list
		s.Loading = false
		s.Status = Ready
		s.Err = ev.Err

	case comment.CommentCreated:
		s = s.withComment(ev.Comment)

	case comment.FlagRequested:
		s.Notification = Notification{Active: true, Message: comment.ReportMessage}
		s.NotificationGen++

	case comment.FlagConfirmed:
		cm, ok := s.ByID[ev.CommentID]
		if !ok {
			return s
		}
		cm.Flagged = true
		s = s.withComment(cm)

	case comment.FlagFailed:
		s.Err = ev.Err

	case comment.NotificationCleared:
		if ev.Gen == s.NotificationGen {
			s.Notification = Notification{}
		}
	}
	return s
}
