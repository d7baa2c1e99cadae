package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Settings are read from the environment.
type Settings struct {
	Server          string        `env:"AUTHSESSION_SERVER" default:"http://localhost:8080"`
	LoginPath       string        `env:"AUTHSESSION_LOGIN_PATH" default:"/session"`
	ConfirmIdentity bool          `env:"AUTHSESSION_CONFIRM_IDENTITY" default:"false"`
	Home            string        `env:"AUTHSESSION_HOME"` // default ~/.authsession
	HTTPTimeout     time.Duration `env:"AUTHSESSION_HTTP_TIMEOUT" default:"0s"`
	WatchInterval   time.Duration `env:"AUTHSESSION_WATCH_INTERVAL" default:"30s"`
	LogLevel        string        `env:"AUTHSESSION_LOG_LEVEL" default:"info"`
	LogFormat       string        `env:"AUTHSESSION_LOG_FORMAT" default:"console"`
}

// Config holds runtime wiring options for building the app.
type Config struct {
	Settings

	// Passphrase seals the persisted cookie jar; empty stores it as plain JSON.
	Passphrase string
	// Ephemeral keeps cookies in memory only.
	Ephemeral bool
	// HTTP is optional; when nil one is built with a cookie jar.
	HTTP *http.Client
}

// LoadConfig reads the given env files, or ./.env when present, then the
// environment. Variables already set in the environment take precedence.
func LoadConfig(dotenv ...string) (Config, error) {
	err := godotenv.Load(dotenv...)
	if len(dotenv) == 0 && errors.Is(err, os.ErrNotExist) {
		err = nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Load(&cfg.Settings, nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".authsession")
	}
	return cfg, nil
}

// Validate checks the fields that would otherwise fail late.
func (c Config) Validate() error {
	u, err := url.Parse(c.Server)
	if err != nil {
		return fmt.Errorf("server %q: %w", c.Server, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server %q: want an absolute http(s) URL", c.Server)
	}
	if !strings.HasPrefix(c.LoginPath, "/") {
		return fmt.Errorf("login path %q must start with /", c.LoginPath)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout %s must not be negative", c.HTTPTimeout)
	}
	if c.WatchInterval <= 0 {
		return fmt.Errorf("watch interval %s must be positive", c.WatchInterval)
	}
	if c.Home == "" && !c.Ephemeral {
		return errors.New("home directory required unless ephemeral")
	}
	return nil
}
