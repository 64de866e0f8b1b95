package mailer

import (
	"errors"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/base/log"
	"github.com/gitter-badger/talk-5/base/metrics"
	"github.com/gitter-badger/talk-5/base/validator"
	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/mail"
)

var missingFieldErrs = map[string]error{
	"From":    domain.ErrMissingFrom,
	"To":      domain.ErrMissingRecipients,
	"Subject": domain.ErrMissingSubject,
}

type dispatcherImpl struct {
	transport mail.Transport
	validator *validator.Validator
	metrics   metrics.Service
}

// NewDispatcher returns a mail.Dispatcher delivering through transport. The
// caller owns the transport and its lifetime.
func NewDispatcher(transport mail.Transport) mail.Dispatcher {
	return &dispatcherImpl{
		transport: transport,
		validator: validator.New(),
		metrics:   metrics.New("mailer"),
	}
}

// SendSimple validates msg and hands it to the transport. Every missing
// required field yields its own error, joined together; the transport is not
// called in that case.
func (im *dispatcherImpl) SendSimple(c ctx.Ctx, msg mail.Message, opts ...mail.SendOption) (*mail.Receipt, error) {
	if err := im.validate(msg); err != nil {
		c.WithField("err", err).Warn("invalid mail message")
		im.metrics.BumpSum("send.invalid", 1)
		return nil, err
	}

	o := mail.SendOptions{Transport: im.transport}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Transport == nil {
		return nil, domain.ErrTransportNotConfigured
	}

	defer im.metrics.BumpTime("send.time").End()

	receipt, err := o.Transport.Send(c, msg)
	if err != nil {
		c.WithFields(log.Fields{
			"to":      msg.To,
			"subject": msg.Subject,
			"err":     err,
		}).Error("transport.Send failed")
		im.metrics.BumpSum("send.err", 1)
		return nil, err
	}
	return receipt, nil
}

func (im *dispatcherImpl) validate(msg mail.Message) error {
	errs := []error{}
	if err := im.validator.Validate(msg); err != nil {
		missing := validator.MissingFields(err)
		if len(missing) == 0 {
			return err
		}
		for _, field := range missing {
			if e, ok := missingFieldErrs[field]; ok {
				errs = append(errs, e)
			}
		}
	}
	if msg.To != "" && len(msg.Recipients()) == 0 {
		errs = append(errs, domain.ErrMissingRecipients)
	}
	return errors.Join(errs...)
}
