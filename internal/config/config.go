// Package config builds the immutable process configuration from the
// environment. Clients receive their section at construction; nothing
// reads the environment after startup.
//
// Every upstream credential is optional: a missing key degrades that one
// page to a "not configured" message and must never prevent the rest of
// the service from starting.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Addr string `validate:"required"`

	LogLevel  string
	LogFormat string `validate:"oneof=json console"`

	RateLimitRPS   float64 `validate:"gt=0"`
	RateLimitBurst int     `validate:"gt=0"`

	Sanity  Sanity
	Trakt   Trakt
	YouTube YouTube
	NYTimes NYTimes
	DBpedia DBpedia
}

// Sanity holds the content-store section. ProjectID empty means the
// books page is not configured.
type Sanity struct {
	ProjectID  string
	Dataset    string `validate:"required"`
	APIVersion string `validate:"required"`
}

func (s Sanity) Configured() bool { return s.ProjectID != "" }

type Trakt struct {
	Username string
	ClientID string
}

func (t Trakt) Configured() bool { return t.Username != "" && t.ClientID != "" }

type YouTube struct {
	APIKey     string
	PlaylistID string
}

func (y YouTube) Configured() bool { return y.APIKey != "" }

type NYTimes struct {
	APIKey string
}

func (n NYTimes) Configured() bool { return n.APIKey != "" }

// DBpedia needs no credential; only the endpoint is configurable.
type DBpedia struct {
	Endpoint string `validate:"required,url"`
}

// FromEnv reads the full configuration, applying documented defaults.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
		Sanity: Sanity{
			ProjectID:  os.Getenv("SANITY_PROJECT_ID"),
			Dataset:    getEnv("SANITY_DATASET", "production"),
			APIVersion: getEnv("SANITY_API_VERSION", "2023-01-01"),
		},
		Trakt: Trakt{
			Username: os.Getenv("TRAKT_USERNAME"),
			ClientID: os.Getenv("TRAKT_CLIENT_ID"),
		},
		YouTube: YouTube{
			APIKey:     os.Getenv("YOUTUBE_API_KEY"),
			PlaylistID: os.Getenv("YOUTUBE_PLAYLIST_ID"),
		},
		NYTimes: NYTimes{
			APIKey: os.Getenv("NYT_API_KEY"),
		},
		DBpedia: DBpedia{
			Endpoint: getEnv("DBPEDIA_ENDPOINT", "https://dbpedia.org/sparql"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
