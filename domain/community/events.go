package community

import "github.com/gitter-badger/talk-5/domain"

const (
	EventCommentersFetchRequested domain.EventType = "FETCH_COMMENTERS_REQUEST"
	EventCommentersFetchSucceeded domain.EventType = "FETCH_COMMENTERS_SUCCESS"
	EventCommentersFetchFailed    domain.EventType = "FETCH_COMMENTERS_FAILURE"
	EventSortUpdated              domain.EventType = "SORT_UPDATE"
	EventNewPageRequested         domain.EventType = "COMMENTERS_NEW_PAGE"
	EventRoleSet                  domain.EventType = "SET_ROLE"
	EventUserBanned               domain.EventType = "USER_BANNED"
)

// Seq orders fetches by issuance; 0 means unsequenced.
type CommentersFetchRequested struct {
	Seq uint64
}

type CommentersFetchSucceeded struct {
	Seq  uint64
	Page Page
}

type CommentersFetchFailed struct {
	Seq uint64
	Err error
}

type SortUpdated struct {
	Sort SortSpec
}

type NewPageRequested struct{}

type RoleSet struct {
	UserID string
	Role   Role
}

type UserBanned struct {
	UserID    string
	UserName  string
	CommentID string
}

func (CommentersFetchRequested) EventType() domain.EventType { return EventCommentersFetchRequested }
func (CommentersFetchSucceeded) EventType() domain.EventType { return EventCommentersFetchSucceeded }
func (CommentersFetchFailed) EventType() domain.EventType    { return EventCommentersFetchFailed }
func (SortUpdated) EventType() domain.EventType              { return EventSortUpdated }
func (NewPageRequested) EventType() domain.EventType         { return EventNewPageRequested }
func (RoleSet) EventType() domain.EventType                  { return EventRoleSet }
func (UserBanned) EventType() domain.EventType               { return EventUserBanned }
