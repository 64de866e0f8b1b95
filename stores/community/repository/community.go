package repository

import (
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/xerrors"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/base/log"
	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/community"
	"github.com/gitter-badger/talk-5/service/coralapi"
)

type impl struct {
	api coralapi.Client
}

// New returns a community.Repo backed by the comment platform's user API.
func New(api coralapi.Client) community.Repo {
	return &impl{api}
}

func (im *impl) FindCommenters(c ctx.Ctx, q community.Query) (*community.Page, error) {
	path := "/user"
	if qs := q.Encode(); qs != "" {
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

	page := &community.Page{}
	if err := res.Decode(page); err != nil {
		c.WithField("err", err).Error("res.Decode failed")
		return nil, xerrors.Errorf("decode commenters: %w", domain.ErrInvalidJsonFormat)
	}
	if page.Items == nil {
		page.Items = []community.Commenter{}
	}
	return page, nil
}

func (im *impl) SetRole(c ctx.Ctx, userID string, role community.Role) error {
	if userID == "" || role == "" {
		return domain.ErrBadParamInput
	}

	type payload struct {
		Role community.Role `json:"role"`
	}

	path := fmt.Sprintf("/user/%s/role", url.PathEscape(userID))
	if _, err := im.api.Request(c, path,
		coralapi.WithMethod(http.MethodPost),
		coralapi.WithBody(payload{role}),
	); err != nil {
		c.WithFields(log.Fields{
			"userId": userID,
			"role":   role,
			"err":    err,
		}).Error("api.Request failed")
		return err
	}
	return nil
}

func (im *impl) SetStatus(c ctx.Ctx, userID string, status community.Status, commentID string) error {
	if userID == "" || status == "" {
		return domain.ErrBadParamInput
	}

	type payload struct {
		Status    community.Status `json:"status"`
		CommentID string           `json:"comment_id,omitempty"`
	}

	path := fmt.Sprintf("/user/%s/status", url.PathEscape(userID))
	if _, err := im.api.Request(c, path,
		coralapi.WithMethod(http.MethodPost),
		coralapi.WithBody(payload{status, commentID}),
	); err != nil {
		c.WithFields(log.Fields{
			"userId":    userID,
			"status":    status,
			"commentId": commentID,
			"err":       err,
		}).Error("api.Request failed")
		return err
	}
	return nil
}
