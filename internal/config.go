package internal

import (
	"chat-core/errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL,default=INFO"`
	// TimeZone is an IANA name used for display timestamps; "Local" keeps the host zone.
	TimeZone string `env:"CHAT_TIME_ZONE,default=Local"`
	// DataDir receives message payloads saved without an explicit directory.
	DataDir string `env:"CHAT_DATA_DIR,default=data"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

func (c Config) Logger() *slog.Logger {
	return logs.GetLoggerFromString(c.LogLevel)
}

func (c Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", errors.ErrInvalidTimeZone, c.TimeZone, err)
	}
	return loc, nil
}
