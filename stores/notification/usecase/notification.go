// Package usecase mails moderators when a flag is confirmed or a user is
// banned. Delivery failures are logged only; they never reach the stores.
package usecase

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/base/goroutine"
	"github.com/gitter-badger/talk-5/base/log"
	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/comment"
	"github.com/gitter-badger/talk-5/domain/community"
	"github.com/gitter-badger/talk-5/domain/mail"
)

type Config struct {
	From       string
	Recipients []string
}

type Notifier struct {
	mailer mail.Dispatcher
	cfg    Config
	// called after each send attempt
	sent     func(msg mail.Message, err error)
	inflight sync.WaitGroup
}

type Option func(*Notifier)

// WithSentHook calls f after every send attempt, successful or not.
func WithSentHook(f func(msg mail.Message, err error)) Option {
	return func(n *Notifier) {
		n.sent = f
	}
}

// New returns a Notifier to be subscribed to the application dispatcher.
func New(mailer mail.Dispatcher, cfg Config, opts ...Option) *Notifier {
	n := &Notifier{
		mailer: mailer,
		cfg:    cfg,
		sent:   func(mail.Message, error) {},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Notifier) Dispatch(c ctx.Ctx, e domain.Event) {
	var msg mail.Message
	switch ev := e.(type) {
	case comment.FlagConfirmed:
		msg = n.flagMessage(ev)
	case community.UserBanned:
		msg = n.banMessage(ev)
	default:
		return
	}
	if len(n.cfg.Recipients) == 0 {
		c.WithField("event", e.EventType()).Debug("no moderator recipients, skip mail")
		return
	}

	bg := ctx.Detach(c)
	n.inflight.Add(1)
	goroutine.RecoverableGo(func() {
		receipt, err := n.mailer.SendSimple(bg, msg)
		if err != nil {
			bg.WithFields(log.Fields{
				"event":   e.EventType(),
				"subject": msg.Subject,
				"err":     err,
			}).Error("mailer.SendSimple failed")
		} else {
			bg.WithFields(log.Fields{
				"event":     e.EventType(),
				"messageId": receipt.MessageID,
			}).Info("notification sent")
		}
		n.sent(msg, err)
	}, goroutine.WithName("notification"), goroutine.WithAfterEnded(n.inflight.Done))
}

// Wait blocks until every send started so far has finished.
func (n *Notifier) Wait() {
	n.inflight.Wait()
}

func (n *Notifier) flagMessage(ev comment.FlagConfirmed) mail.Message {
	text := fmt.Sprintf("Comment %s was flagged by a reader and is waiting for review.", ev.CommentID)
	return mail.Message{
		From:    n.cfg.From,
		To:      strings.Join(n.cfg.Recipients, ", "),
		Subject: "Comment flagged for review",
		Text:    text,
		HTML:    "<p>" + html.EscapeString(text) + "</p>",
	}
}

func (n *Notifier) banMessage(ev community.UserBanned) mail.Message {
	name := ev.UserName
	if name == "" {
		name = ev.UserID
	}
	text := fmt.Sprintf("User %s has been banned.", name)
	if ev.CommentID != "" {
		text = fmt.Sprintf("User %s has been banned for comment %s.", name, ev.CommentID)
	}
	return mail.Message{
		From:    n.cfg.From,
		To:      strings.Join(n.cfg.Recipients, ", "),
		Subject: "User banned",
		Text:    text,
		HTML:    "<p>" + html.EscapeString(text) + "</p>",
	}
}
