package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"fitframes/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "fitframes", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if want := filepath.Join(tempHome, ".local", "share", "fitframes", "logs"); cfg.Paths.LogDir != want {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, want)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Projection.SourceEPSG != 4326 || cfg.Projection.TargetEPSG != 3844 {
		t.Fatalf("unexpected projection defaults: %+v", cfg.Projection)
	}
	if cfg.Converter.StatusMessages {
		t.Fatal("expected status messages off by default")
	}
}

func TestLoadCustomConfigOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	source := struct {
		Paths      map[string]any `toml:"paths"`
		Logging    map[string]any `toml:"logging"`
		Converter  map[string]any `toml:"converter"`
		Projection map[string]any `toml:"projection"`
	}{
		Paths:      map[string]any{"log_dir": filepath.Join(dir, "logs")},
		Logging:    map[string]any{"format": " JSON ", "level": "DEBUG", "file": true},
		Converter:  map[string]any{"status_messages": true},
		Projection: map[string]any{"target_epsg": 32635},
	}
	data, err := toml.Marshal(source)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %q, got %q (exists=%v)", path, resolved, exists)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" || !cfg.Logging.File {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
	if !cfg.Converter.StatusMessages {
		t.Fatal("expected status messages enabled")
	}
	if cfg.Projection.SourceEPSG != 4326 || cfg.Projection.TargetEPSG != 32635 {
		t.Fatalf("unexpected projection: %+v", cfg.Projection)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.LogDir); err != nil || !info.IsDir() {
		t.Fatalf("expected log dir created: %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cases := map[string]string{
		"format":      "[logging]\nformat = \"xml\"\n",
		"level":       "[logging]\nlevel = \"loud\"\n",
		"epsg":        "[projection]\ntarget_epsg = -1\n",
		"unknown key": "[converter]\nstatus = true\n",
		"syntax":      "[paths\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatalf("expected error for %s", name)
			}
		})
	}
}

func TestLogLevelEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FITFRAMES_LOG_LEVEL", "Warn")
	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env level, got %q", cfg.Logging.Level)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config must load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Projection != config.Default().Projection {
		t.Fatalf("sample projection differs from defaults: %+v", cfg.Projection)
	}
}

func TestExpandPathHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/activities")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "activities") {
		t.Fatalf("unexpected path %q", got)
	}
	if got, _ := config.ExpandPath(""); got != "" {
		t.Fatalf("expected empty path to stay empty, got %q", got)
	}
	if got, _ := config.ExpandPath("rel/dir"); !strings.HasPrefix(got, string(filepath.Separator)) {
		t.Fatalf("expected absolute path, got %q", got)
	}
}
