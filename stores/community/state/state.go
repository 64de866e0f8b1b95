package state

import (
	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/community"
)

type Status int

const (
	Idle Status = iota
	Loading
	Loaded
	Error
)

var statusNames = map[Status]string{
	Idle:    "idle",
	Loading: "loading",
	Loaded:  "loaded",
	Error:   "error",
}

func (s Status) String() string {
	return statusNames[s]
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// State is the commenter list as the admin view sees it. A State value is
// never mutated after Reduce returns it, so it is safe to share.
type State struct {
	ByID       map[string]community.Commenter `json:"byId"`
	IDs        []string                       `json:"ids"`
	Page       int                            `json:"page"`
	Count      int                            `json:"count"`
	Limit      int                            `json:"limit"`
	TotalPages int                            `json:"totalPages"`
	Sort       community.SortSpec             `json:"sort"`
	Loading    bool                           `json:"loading"`
	Status     Status                         `json:"status"`
	Err        error                          `json:"-"`
	LatestSeq  uint64                         `json:"-"`
}

func Initial() State {
	return State{
		ByID: map[string]community.Commenter{},
		IDs:  []string{},
	}
}

// stale reports whether a completion belongs to a fetch that has since been
// superseded by a newer one.
func (s State) stale(seq uint64) bool {
	return seq != 0 && seq != s.LatestSeq
}

func Reduce(s State, e domain.Event) State {
	switch ev := e.(type) {
	case community.CommentersFetchRequested:
		if ev.Seq > s.LatestSeq {
			s.LatestSeq = ev.Seq
		}
		s.Loading = true
		s.Status = Loading

	case community.CommentersFetchSucceeded:
		if s.stale(ev.Seq) {
			return s
		}
		s.ByID = make(map[string]community.Commenter, len(ev.Page.Items))
		s.IDs = make([]string, 0, len(ev.Page.Items))
		for _, item := range ev.Page.Items {
			if _, ok := s.ByID[item.UserID]; !ok {
				s.IDs = append(s.IDs, item.UserID)
			}
			s.ByID[item.UserID] = item
		}
		s.Page = ev.Page.Page
		s.Count = ev.Page.Count
		s.Limit = ev.Page.Limit
		s.TotalPages = ev.Page.TotalPages
		s.Loading = false
		s.Status = Loaded
		s.Err = nil

	case community.CommentersFetchFailed:
		if s.stale(ev.Seq) {
			return s
		}
		s.Loading = false
		s.Status = Error
		s.Err = ev.Err

	case community.SortUpdated:
		s.Sort = ev.Sort

	case community.NewPageRequested:
		if s.Page+1 < s.TotalPages {
			s.Page++
		}

	case community.RoleSet:
		cur, ok := s.ByID[ev.UserID]
		if !ok {
			return s
		}
		byID := make(map[string]community.Commenter, len(s.ByID))
		for id, c := range s.ByID {
			byID[id] = c
		}
		cur.Role = ev.Role
		byID[ev.UserID] = cur
		s.ByID = byID
	}
	return s
}
