// Package config loads leaderboard server settings from the environment
// and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvAddr          = "ROADRUSH_ADDR"
	EnvDBPath        = "ROADRUSH_DB_PATH"
	EnvGameType      = "ROADRUSH_GAME_TYPE"
	EnvAllowedOrigin = "ROADRUSH_ALLOWED_ORIGIN"
)

// Server holds the leaderboard server settings.
type Server struct {
	Addr          string
	DBPath        string
	GameType      string
	AllowedOrigin string
}

func Defaults() Server {
	return Server{
		Addr:          ":8080",
		DBPath:        "data/leaderboard.db",
		GameType:      "racing",
		AllowedOrigin: "*",
	}
}

// Load reads settings. Real environment variables win over values from the
// dotenv files; a missing file is skipped. With no files, ".env" is tried.
func Load(files ...string) (Server, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	fileVars := map[string]string{}
	for _, name := range files {
		vars, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Server{}, fmt.Errorf("config: read %s: %w", name, err)
		}
		for k, v := range vars {
			fileVars[k] = v
		}
	}

	get := func(key, fallback string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		if v := fileVars[key]; v != "" {
			return v
		}
		return fallback
	}

	d := Defaults()
	return Server{
		Addr:          get(EnvAddr, d.Addr),
		DBPath:        get(EnvDBPath, d.DBPath),
		GameType:      get(EnvGameType, d.GameType),
		AllowedOrigin: get(EnvAllowedOrigin, d.AllowedOrigin),
	}, nil
}

// GetEnvVariable returns a required environment variable.
func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("config: input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("config: failed to get variable for %s", v)
	}
	return b, nil
}
