package mail

import (
	"strings"

	"github.com/gitter-badger/talk-5/base/ctx"
)

// Message is a single transactional email. To is a comma-separated list.
type Message struct {
	From    string `validate:"required"`
	To      string `validate:"required"`
	Subject string `validate:"required"`
	Text    string
	HTML    string
}

// Recipients splits To on commas, dropping blanks.
func (m Message) Recipients() []string {
	res := []string{}
	for _, addr := range strings.Split(m.To, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			res = append(res, addr)
		}
	}
	return res
}

// Receipt is whatever the transport reports after accepting a message.
type Receipt struct {
	MessageID string   `json:"messageId"`
	Accepted  []string `json:"accepted"`
}

// Transport delivers an already validated message.
type Transport interface {
	Send(c ctx.Ctx, msg Message) (*Receipt, error)
}

type SendOptions struct {
	Transport Transport
}

type SendOption func(*SendOptions)

// WithTransport overrides the dispatcher's transport for one call.
func WithTransport(t Transport) SendOption {
	return func(o *SendOptions) {
		o.Transport = t
	}
}

type Dispatcher interface {
	SendSimple(c ctx.Ctx, msg Message, opts ...SendOption) (*Receipt, error)
}
