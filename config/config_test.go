package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAddr, EnvDBPath, EnvGameType, EnvAllowedOrigin} {
		t.Setenv(k, "")
	}
}

func writeEnvFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	got, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != Defaults() {
		t.Fatalf("Load = %+v, want %+v", got, Defaults())
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "ROADRUSH_ADDR=:9000\nROADRUSH_DB_PATH=/tmp/from-file.db\n# comment\nROADRUSH_GAME_TYPE=drift\n")
	t.Setenv(EnvDBPath, "/tmp/from-env.db")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Server{
		Addr:          ":9000",
		DBPath:        "/tmp/from-env.db",
		GameType:      "drift",
		AllowedOrigin: "*",
	}
	if got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestLoadLaterFileWins(t *testing.T) {
	clearEnv(t)
	first := writeEnvFile(t, "ROADRUSH_ADDR=:1\nROADRUSH_ALLOWED_ORIGIN=https://a.example\n")
	second := writeEnvFile(t, "ROADRUSH_ADDR=:2\n")

	got, err := Load(first, second)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Addr != ":2" || got.AllowedOrigin != "https://a.example" {
		t.Fatalf("Load = %+v", got)
	}
}

func TestGetEnvVariable(t *testing.T) {
	t.Setenv("ROADRUSH_TEST_VALUE", "set")

	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{name: "set", key: "ROADRUSH_TEST_VALUE", want: "set"},
		{name: "empty key", key: "", wantErr: true},
		{name: "unset", key: "ROADRUSH_TEST_UNSET_VALUE", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetEnvVariable(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
