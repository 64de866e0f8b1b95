package comment

import (
	"github.com/gitter-badger/talk-5/base/ctx"
)

// ReportMessage is shown on the stream right after a user flags a comment.
const ReportMessage = "Thank you for reporting this comment. Our moderation team has been notified and will review it shortly."

type Comment struct {
	ID         string `json:"id"`
	Body       string `json:"body"`
	AuthorName string `json:"author_name"`
	Flagged    bool   `json:"flagged,omitempty"`
}

// StreamQuery selects the stream to load, e.g. {"asset_url": "..."}.
type StreamQuery map[string]string

type Repo interface {
	FindStream(c ctx.Ctx, q StreamQuery) ([]Comment, error)
	Create(c ctx.Ctx, authorName, body string) (*Comment, error)
	Flag(c ctx.Ctx, commentID string) error
}

type Usecase interface {
	FetchStream(c ctx.Ctx, q StreamQuery) error
	CreateComment(c ctx.Ctx, authorName, body string) error
	// FlagComment dispatches FlagRequested before returning; the server call
	// settles later with FlagConfirmed or FlagFailed.
	FlagComment(c ctx.Ctx, commentID string) error
	Close()
}
