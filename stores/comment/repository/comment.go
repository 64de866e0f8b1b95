package repository

import (
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/xerrors"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/base/log"
	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/comment"
	"github.com/gitter-badger/talk-5/service/coralapi"
)

const actionFlag = "flag"

type impl struct {
	api coralapi.Client
}

func New(api coralapi.Client) comment.Repo {
	return &impl{api}
}

func (im *impl) FindStream(c ctx.Ctx, q comment.StreamQuery) ([]comment.Comment, error) {
	vals := url.Values{}
	for k, v := range q {
		vals.Set(k, v)
	}
	path := "/stream"
	if qs := vals.Encode(); qs != "" {
		path += "?" + qs
	}

	res, err := im.api.Request(c, path)
	if err != nil {
		c.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("api.Request failed")
		return nil, err
	}

	payload := struct {
		Comments []comment.Comment `json:"comments"`
	}{}
	if err := res.Decode(&payload); err != nil {
		c.WithField("err", err).Error("res.Decode failed")
		return nil, xerrors.Errorf("decode stream: %w", domain.ErrInvalidJsonFormat)
	}
	if payload.Comments == nil {
		return []comment.Comment{}, nil
	}
	return payload.Comments, nil
}

func (im *impl) Create(c ctx.Ctx, authorName, body string) (*comment.Comment, error) {
	if body == "" {
		return nil, domain.ErrBadParamInput
	}

	type payload struct {
		AuthorName string `json:"author_name"`
		Body       string `json:"body"`
	}

	res, err := im.api.Request(c, "/comments",
		coralapi.WithMethod(http.MethodPost),
		coralapi.WithBody(payload{authorName, body}),
	)
	if err != nil {
		c.WithFields(log.Fields{
			"author": authorName,
			"err":    err,
		}).Error("api.Request failed")
		return nil, err
	}

	created := &comment.Comment{}
	if err := res.Decode(created); err != nil {
		c.WithField("err", err).Error("res.Decode failed")
		return nil, xerrors.Errorf("decode comment: %w", domain.ErrInvalidJsonFormat)
	}
	return created, nil
}

func (im *impl) Flag(c ctx.Ctx, commentID string) error {
	if commentID == "" {
		return domain.ErrBadParamInput
	}

	type payload struct {
		ActionType string `json:"action_type"`
	}

	path := fmt.Sprintf("/comments/%s/actions", url.PathEscape(commentID))
	if _, err := im.api.Request(c, path,
		coralapi.WithMethod(http.MethodPost),
		coralapi.WithBody(payload{actionFlag}),
	); err != nil {
		c.WithFields(log.Fields{
			"commentId": commentID,
			"err":       err,
		}).Error("api.Request failed")
		return err
	}
	return nil
}
