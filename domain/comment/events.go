package comment

import "github.com/gitter-badger/talk-5/domain"

const (
	EventStreamFetchRequested domain.EventType = "COMMENT_STREAM_FETCH"
	EventStreamFetchSucceeded domain.EventType = "COMMENT_STREAM_FETCH_SUCCESS"
	EventStreamFetchFailed    domain.EventType = "COMMENT_STREAM_FETCH_FAILURE"
	EventCommentCreated       domain.EventType = "COMMENT_CREATE_SUCCESS"
	EventFlagRequested        domain.EventType = "COMMENT_FLAG"
	EventFlagConfirmed        domain.EventType = "COMMENT_FLAG_SUCCESS"
	EventFlagFailed           domain.EventType = "COMMENT_FLAG_FAILURE"
	EventNotificationCleared  domain.EventType = "NOTIFICATION_CLEAR"
)

type StreamFetchRequested struct{}

type StreamFetchSucceeded struct {
	Comments []Comment
}

type StreamFetchFailed struct {
	Err error
}

type CommentCreated struct {
	Comment Comment
}

// FlagRequested is provisional: it drives the banner, not the flagged bit.
type FlagRequested struct {
	CommentID string
}

type FlagConfirmed struct {
	CommentID string
}

type FlagFailed struct {
	CommentID string
	Err       error
}

// NotificationCleared only applies when Gen is still the current banner.
type NotificationCleared struct {
	Gen uint64
}

func (StreamFetchRequested) EventType() domain.EventType { return EventStreamFetchRequested }
func (StreamFetchSucceeded) EventType() domain.EventType { return EventStreamFetchSucceeded }
func (StreamFetchFailed) EventType() domain.EventType    { return EventStreamFetchFailed }
func (CommentCreated) EventType() domain.EventType       { return EventCommentCreated }
func (FlagRequested) EventType() domain.EventType        { return EventFlagRequested }
func (FlagConfirmed) EventType() domain.EventType        { return EventFlagConfirmed }
func (FlagFailed) EventType() domain.EventType           { return EventFlagFailed }
func (NotificationCleared) EventType() domain.EventType  { return EventNotificationCleared }
