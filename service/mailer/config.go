package mailer

import (
	"time"

	"github.com/gitter-badger/talk-5/base/ctx"
	"github.com/gitter-badger/talk-5/base/env"
	"github.com/gitter-badger/talk-5/base/log"
)

// Config is the SMTP transport setup read from the environment.
type Config struct {
	Provider string        `env:"TALK_SMTP_PROVIDER"`
	Username string        `env:"TALK_SMTP_USERNAME"`
	Password string        `env:"TALK_SMTP_PASSWORD"`
	Host     string        `env:"TALK_SMTP_HOST"`
	Port     int           `env:"TALK_SMTP_PORT"`
	Timeout  time.Duration `env:"TALK_SMTP_TIMEOUT" envDefault:"10s"`
}

// Missing lists the required variables that are not set.
func (cfg Config) Missing() []string {
	missing := []string{}
	if cfg.Username == "" {
		missing = append(missing, "TALK_SMTP_USERNAME")
	}
	if cfg.Password == "" {
		missing = append(missing, "TALK_SMTP_PASSWORD")
	}
	if cfg.Provider == "" {
		missing = append(missing, "TALK_SMTP_PROVIDER")
	}
	return missing
}

// LoadConfigFromEnv reads the transport settings. Missing credentials only
// produce warnings so the process can still start; sending fails later.
func LoadConfigFromEnv(c ctx.Ctx) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		c.WithField("err", err).Error("env.Parse failed")
		return cfg, err
	}
	for _, name := range cfg.Missing() {
		c.WithField("var", name).Warn(name + " should be defined if you would like to send emails from Talk")
	}
	c.WithFields(log.Fields{
		"provider": cfg.Provider,
		"host":     cfg.Host,
		"port":     cfg.Port,
	}).Info("mail transport configured")
	return cfg, nil
}
