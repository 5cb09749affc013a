package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Source.Kind != "local" || cfg.Parse.DateOrder != "mdy" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Ranking.TopPosts != 5 || cfg.Ranking.ContentTypes != 6 || cfg.Ranking.TimeSlots != 5 {
		t.Errorf("ranking defaults = %+v", cfg.Ranking)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 7000
source:
  kind: local
  data_dir: /srv/exports
  patterns:
    x_daily: "overview-*.csv"
parse:
  date_order: dmy
`)
	t.Setenv("PRISM_SERVER_PORT", "9090")

	cfg, err := Load(viper.New(), dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, env should win", cfg.Server.Port)
	}
	if cfg.Source.DataDir != "/srv/exports" || cfg.Source.Patterns["x_daily"] != "overview-*.csv" {
		t.Errorf("source = %+v", cfg.Source)
	}
	if cfg.Parse.DateOrder != "dmy" {
		t.Errorf("date order = %s", cfg.Parse.DateOrder)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := writeConfig(t, "parse:\n  date_order: ymd\n")
	if _, err := Load(viper.New(), dir); err == nil {
		t.Error("expected validation error for date_order")
	}

	dir = writeConfig(t, "source:\n  kind: ftp\n")
	if _, err := Load(viper.New(), dir); err == nil {
		t.Error("expected validation error for source.kind")
	}
}
