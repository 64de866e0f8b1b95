package usecase

import (
	"sync/atomic"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/base/log"
	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/community"
)

type impl struct {
	repo       community.Repo
	dispatcher domain.Dispatcher
	fetchSeq   uint64
}

func New(repo community.Repo, dispatcher domain.Dispatcher) community.Usecase {
	return &impl{
		repo:       repo,
		dispatcher: dispatcher,
	}
}

// FetchCommenters dispatches the request event, loads the page and settles
// with exactly one success or failure event. The error is returned as well.
func (im *impl) FetchCommenters(c ctx.Ctx, q community.Query) error {
	seq := atomic.AddUint64(&im.fetchSeq, 1)
	im.dispatcher.Dispatch(c, community.CommentersFetchRequested{Seq: seq})

	page, err := im.repo.FindCommenters(c, q)
	if err != nil {
		c.WithFields(log.Fields{
			"query": q,
			"err":   err,
		}).Error("repo.FindCommenters failed")
		im.dispatcher.Dispatch(c, community.CommentersFetchFailed{Seq: seq, Err: err})
		return err
	}

	im.dispatcher.Dispatch(c, community.CommentersFetchSucceeded{Seq: seq, Page: *page})
	return nil
}

// UpdateSorting only records the sort; callers re-fetch with it.
func (im *impl) UpdateSorting(c ctx.Ctx, sort community.SortSpec) {
	im.dispatcher.Dispatch(c, community.SortUpdated{Sort: sort})
}

// RequestNewPage only advances the cursor; callers re-fetch with it.
func (im *impl) RequestNewPage(c ctx.Ctx) {
	im.dispatcher.Dispatch(c, community.NewPageRequested{})
}

func (im *impl) SetRole(c ctx.Ctx, userID string, role community.Role) error {
	if err := im.repo.SetRole(c, userID, role); err != nil {
		c.WithFields(log.Fields{
			"userId": userID,
			"role":   role,
			"err":    err,
		}).Error("repo.SetRole failed")
		return err
	}
	im.dispatcher.Dispatch(c, community.RoleSet{UserID: userID, Role: role})
	return nil
}

func (im *impl) BanUser(c ctx.Ctx, req community.BanRequest) error {
	if err := im.repo.SetStatus(c, req.UserID, community.StatusBanned, req.CommentID); err != nil {
		c.WithFields(log.Fields{
			"userId":    req.UserID,
			"commentId": req.CommentID,
			"err":       err,
		}).Error("repo.SetStatus failed")
		return err
	}
	im.dispatcher.Dispatch(c, community.UserBanned{
		UserID:    req.UserID,
		UserName:  req.UserName,
		CommentID: req.CommentID,
	})
	return nil
}
