package env

import (
	"os"

	"github.com/caarlos0/env/v11"
	"golang.org/x/xerrors"
)

// PodName example: talk-modctl-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: staging
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: modctl
func AppName() string {
	return os.Getenv("APP_NAME")
}

// Parse fills target from environment variables using its `env` struct tags.
func Parse(target interface{}) error {
	if err := env.Parse(target); err != nil {
		return xerrors.Errorf("parse env: %w", err)
	}
	return nil
}
