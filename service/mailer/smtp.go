package mailer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/xerrors"
	gomail "gopkg.in/mail.v2"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/base/log"
	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/mail"
)

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpTransport struct {
	cfg    Config
	sender sender
}

// NewSMTPTransport builds the default transport. It never fails: an
// incomplete Config makes every Send return ErrTransportNotConfigured.
func NewSMTPTransport(cfg Config) mail.Transport {
	t := &smtpTransport{cfg: cfg}
	if ep, ok := resolveEndpoint(cfg); ok {
		d := gomail.NewDialer(ep.Host, ep.Port, cfg.Username, cfg.Password)
		d.Timeout = cfg.Timeout
		t.sender = d
	}
	return t
}

func (t *smtpTransport) Send(c ctx.Ctx, msg mail.Message) (*mail.Receipt, error) {
	if missing := t.cfg.Missing(); len(missing) > 0 {
		return nil, xerrors.Errorf("missing %s: %w", strings.Join(missing, ", "), domain.ErrTransportNotConfigured)
	}
	if t.sender == nil {
		return nil, xerrors.Errorf("unknown provider %q and no host: %w", t.cfg.Provider, domain.ErrTransportNotConfigured)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	recipients := msg.Recipients()
	messageID := newMessageID(msg.From)

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", messageID)
	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		m.SetBody("text/html", msg.HTML)
	default:
		m.SetBody("text/plain", msg.Text)
	}

	if err := t.sender.DialAndSend(m); err != nil {
		c.WithFields(log.Fields{
			"to":  recipients,
			"err": err,
		}).Error("DialAndSend failed")
		return nil, err
	}

	return &mail.Receipt{
		MessageID: messageID,
		Accepted:  recipients,
	}, nil
}

func newMessageID(from string) string {
	host := "talk"
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		host = strings.TrimRight(from[i+1:], ">")
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), host)
}
