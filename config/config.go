package config

import (
	"fmt"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	// Secret is the framework secret used to sign admin sessions.
	Secret string
	// DatabaseAuthToken, when set, replaces the password for remote
	// database endpoints that authenticate by token.
	DatabaseAuthToken string
}

// ApplyOverrides layers non-empty flag/env values over the file-provided
// configuration. An empty value leaves the file value in place.
func (c *Config) ApplyOverrides(databaseURL, secret, authToken string) error {
	if databaseURL != "" {
		opt, err := pg.ParseURL(databaseURL)
		if err != nil {
			return fmt.Errorf("parse database url: %w", err)
		}
		c.Database = *opt
	}

	if secret != "" {
		c.Secret = secret
	}
	if authToken != "" {
		c.DatabaseAuthToken = authToken
	}
	if c.DatabaseAuthToken != "" {
		c.Database.Password = c.DatabaseAuthToken
	}

	return nil
}
