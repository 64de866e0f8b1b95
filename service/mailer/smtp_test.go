package mailer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/mail.v2"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/domain"
	"github.com/gitter-badger/talk-5/domain/mail"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func fullConfig() Config {
	return Config{
		Provider: "SendGrid",
		Username: "apikey",
		Password: "secret",
		Timeout:  time.Second,
	}
}

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		desc   string
		cfg    Config
		expOk  bool
		expEnd endpoint
	}{
		{desc: "known provider", cfg: Config{Provider: "Gmail"}, expOk: true, expEnd: endpoint{"smtp.gmail.com", 465}},
		{desc: "provider with space", cfg: Config{Provider: "Outlook 365"}, expOk: true, expEnd: endpoint{"smtp.office365.com", 587}},
		{desc: "host override", cfg: Config{Provider: "Gmail", Host: "relay.local"}, expOk: true, expEnd: endpoint{"relay.local", 465}},
		{desc: "host without port", cfg: Config{Host: "relay.local"}, expOk: true, expEnd: endpoint{"relay.local", 587}},
		{desc: "port override", cfg: Config{Provider: "postmark", Port: 25}, expOk: true, expEnd: endpoint{"smtp.postmarkapp.com", 25}},
		{desc: "unknown provider", cfg: Config{Provider: "carrier-pigeon"}, expOk: false},
	}
	for _, tt := range tests {
		ep, ok := resolveEndpoint(tt.cfg)
		assert.Equal(t, tt.expOk, ok, tt.desc)
		if tt.expOk {
			assert.Equal(t, tt.expEnd, ep, tt.desc)
		}
	}
}

func TestSMTPFailsLazilyWithoutCredentials(t *testing.T) {
	tr := NewSMTPTransport(Config{Provider: "gmail"})
	_, err := tr.Send(ctx.Background(), mail.Message{From: "a@b.c", To: "d@e.f", Subject: "s"})
	assert.ErrorIs(t, err, domain.ErrTransportNotConfigured)
	assert.Contains(t, err.Error(), "TALK_SMTP_USERNAME")
}

func TestSMTPFailsLazilyForUnknownProvider(t *testing.T) {
	cfg := fullConfig()
	cfg.Provider = "carrier-pigeon"
	_, err := NewSMTPTransport(cfg).Send(ctx.Background(), mail.Message{From: "a@b.c", To: "d@e.f", Subject: "s"})
	assert.ErrorIs(t, err, domain.ErrTransportNotConfigured)
}

func TestSMTPBuildsMessage(t *testing.T) {
	req := require.New(t)
	fake := &fakeSender{}
	tr := &smtpTransport{cfg: fullConfig(), sender: fake}

	receipt, err := tr.Send(ctx.Background(), mail.Message{
		From:    "Talk <talk@example.com>",
		To:      "mod1@example.com, mod2@example.com",
		Subject: "User banned",
		Text:    "plain",
		HTML:    "<p>html</p>",
	})
	req.NoError(err)
	req.Len(fake.sent, 1)

	m := fake.sent[0]
	req.Equal([]string{"Talk <talk@example.com>"}, m.GetHeader("From"))
	req.Equal([]string{"mod1@example.com", "mod2@example.com"}, m.GetHeader("To"))
	req.Equal([]string{"User banned"}, m.GetHeader("Subject"))
	req.Equal([]string{receipt.MessageID}, m.GetHeader("Message-ID"))
	req.True(strings.HasSuffix(receipt.MessageID, "@example.com>"))
	req.Equal([]string{"mod1@example.com", "mod2@example.com"}, receipt.Accepted)
}

func TestSMTPReturnsSenderError(t *testing.T) {
	boom := errors.New("535 authentication failed")
	tr := &smtpTransport{cfg: fullConfig(), sender: &fakeSender{err: boom}}
	_, err := tr.Send(ctx.Background(), mail.Message{From: "a@b.c", To: "d@e.f", Subject: "s"})
	assert.Equal(t, boom, err)
}

func TestNewMessageID(t *testing.T) {
	assert.True(t, strings.HasSuffix(newMessageID("noreply@talk.example.com"), "@talk.example.com>"))
	assert.True(t, strings.HasSuffix(newMessageID("no-at-sign"), "@talk>"))
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TALK_SMTP_PROVIDER", "Mailgun")
	t.Setenv("TALK_SMTP_USERNAME", "postmaster")
	t.Setenv("TALK_SMTP_PASSWORD", "")
	t.Setenv("TALK_SMTP_PORT", "2525")

	cfg, err := LoadConfigFromEnv(ctx.Background())
	require.NoError(t, err)
	assert.Equal(t, "Mailgun", cfg.Provider)
	assert.Equal(t, 2525, cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"TALK_SMTP_PASSWORD"}, cfg.Missing())
}

func TestLoadConfigFromEnvRejectsBadPort(t *testing.T) {
	t.Setenv("TALK_SMTP_PORT", "not-a-port")
	_, err := LoadConfigFromEnv(ctx.Background())
	assert.Error(t, err)
}
