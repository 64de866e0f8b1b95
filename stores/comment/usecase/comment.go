package usecase

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/base/log"
	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/comment"
)

const scheduleTimeout = 3 * time.Second

type impl struct {
	repo       comment.Repo
	dispatcher domain.Dispatcher
	workerPool *goroutines.Pool
}

func New(repo comment.Repo, dispatcher domain.Dispatcher) comment.Usecase {
	return &impl{
		repo:       repo,
		dispatcher: dispatcher,
		workerPool: goroutines.NewPool(16, goroutines.WithTaskQueueLength(256), goroutines.WithPreAllocWorkers(2)),
	}
}

func (im *impl) FetchStream(c ctx.Ctx, q comment.StreamQuery) error {
	im.dispatcher.Dispatch(c, comment.StreamFetchRequested{})

	comments, err := im.repo.FindStream(c, q)
	if err != nil {
		c.WithFields(log.Fields{
			"query": q,
			"err":   err,
		}).Error("repo.FindStream failed")
		im.dispatcher.Dispatch(c, comment.StreamFetchFailed{Err: err})
		return err
	}

	im.dispatcher.Dispatch(c, comment.StreamFetchSucceeded{Comments: comments})
	return nil
}

func (im *impl) CreateComment(c ctx.Ctx, authorName, body string) error {
	created, err := im.repo.Create(c, authorName, body)
	if err != nil {
		c.WithFields(log.Fields{
			"author": authorName,
			"err":    err,
		}).Error("repo.Create failed")
		return err
	}
	im.dispatcher.Dispatch(c, comment.CommentCreated{Comment: *created})
	return nil
}

func (im *impl) FlagComment(c ctx.Ctx, commentID string) error {
	if commentID == "" {
		return domain.ErrBadParamInput
	}

	im.dispatcher.Dispatch(c, comment.FlagRequested{CommentID: commentID})

	// the caller may be done with c long before the POST settles
	bg := ctx.Detach(c)
	err := im.workerPool.ScheduleWithTimeout(scheduleTimeout, func() {
		if err := im.repo.Flag(bg, commentID); err != nil {
			bg.WithFields(log.Fields{
				"commentId": commentID,
				"err":       err,
			}).Error("repo.Flag failed")
			im.dispatcher.Dispatch(bg, comment.FlagFailed{CommentID: commentID, Err: err})
			return
		}
		im.dispatcher.Dispatch(bg, comment.FlagConfirmed{CommentID: commentID})
	})
	if err != nil {
		c.WithFields(log.Fields{
			"commentId": commentID,
			"err":       err,
		}).Error("failed to ScheduleWithTimeout")
		im.dispatcher.Dispatch(c, comment.FlagFailed{CommentID: commentID, Err: err})
	}
	return nil
}

// Close releases the flag workers.
func (im *impl) Close() {
	im.workerPool.Release()
}
