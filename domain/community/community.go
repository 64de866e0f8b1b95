package community

import (
	"github.com/gitter-badger/talk-5/base/ctx"
)

type Role string

const (
	RoleCommenter Role = "commenter"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

type Status string

const (
	StatusActive Status = "active"
	StatusBanned Status = "banned"
)

// Commenter is a user as seen by the moderation list.
type Commenter struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Role     Role   `json:"role"`
	Status   Status `json:"status,omitempty"`
}

// Page is one page of commenters, decoded from the list envelope
// {result, page, count, limit, totalPages}.
type Page struct {
	Items      []Commenter `json:"result"`
	Page       int         `json:"page"`
	Count      int         `json:"count"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
}

// SortSpec is applied to the next fetch only.
type SortSpec struct {
	Field     string `json:"field,omitempty"`
	Direction string `json:"direction,omitempty"`
}

func (s SortSpec) IsZero() bool {
	return s.Field == "" && s.Direction == ""
}

// BanRequest is what the ban dialog hands to BanUser.
type BanRequest struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	CommentID string `json:"commentId,omitempty"`
}

type Repo interface {
	FindCommenters(c ctx.Ctx, q Query) (*Page, error)
	SetRole(c ctx.Ctx, userID string, role Role) error
	SetStatus(c ctx.Ctx, userID string, status Status, commentID string) error
}

// Usecase is the set of commenter moderation actions. Each one reports its
// outcome as events on the dispatcher it was built with.
type Usecase interface {
	FetchCommenters(c ctx.Ctx, q Query) error
	UpdateSorting(c ctx.Ctx, sort SortSpec)
	RequestNewPage(c ctx.Ctx)
	SetRole(c ctx.Ctx, userID string, role Role) error
	BanUser(c ctx.Ctx, req BanRequest) error
}
