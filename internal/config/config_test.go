package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestLoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "webshot.yaml", `
viewport:
  width: 1280
  height: 720
capture:
  waitSeconds: 5
  dpi: 2.0
output:
  defaultDir: /tmp/shots
  quality: 85
browser:
  noSandbox: true
  timeoutSeconds: 60
auth:
  username: admin
  password: secret
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	if cfg.Viewport.Width != 1280 || cfg.Viewport.Height != 720 {
		t.Errorf("viewport = %dx%d, want 1280x720", cfg.Viewport.Width, cfg.Viewport.Height)
	}
	if cfg.Capture.WaitSeconds != 5 {
		t.Errorf("waitSeconds = %d, want 5", cfg.Capture.WaitSeconds)
	}
	if cfg.Capture.DPI != 2.0 {
		t.Errorf("dpi = %v, want 2.0", cfg.Capture.DPI)
	}
	if cfg.Output.DefaultDir != "/tmp/shots" {
		t.Errorf("defaultDir = %q, want /tmp/shots", cfg.Output.DefaultDir)
	}
	if cfg.Output.Quality != 85 {
		t.Errorf("quality = %d, want 85", cfg.Output.Quality)
	}
	if !cfg.Browser.NoSandbox {
		t.Error("noSandbox = false, want true")
	}
	if cfg.Browser.TimeoutSeconds != 60 {
		t.Errorf("timeoutSeconds = %d, want 60", cfg.Browser.TimeoutSeconds)
	}
	if cfg.Auth.Username != "admin" || cfg.Auth.Password != "secret" {
		t.Errorf("auth = %q/%q, want admin/secret", cfg.Auth.Username, cfg.Auth.Password)
	}
}

func TestLoadConfigFullPagePointer(t *testing.T) {
	dir := t.TempDir()

	// Unset fullPage stays nil so callers can tell "off" from "unset".
	path := writeConfig(t, dir, "unset.yaml", "viewport:\n  width: 800\n  height: 600\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Capture.FullPage != nil {
		t.Error("fullPage = non-nil for unset value, want nil")
	}

	path = writeConfig(t, dir, "off.yaml", "capture:\n  fullPage: false\n")
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Capture.FullPage == nil || *cfg.Capture.FullPage {
		t.Error("fullPage = nil or true for explicit false, want false")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name:    "empty name",
			path:    "",
			wantErr: ErrEmptyConfigName,
		},
		{
			name:    "missing file path",
			path:    filepath.Join(dir, "absent.yaml"),
			wantErr: ErrConfigNotFound,
		},
		{
			name:    "unknown field",
			path:    writeConfig(t, dir, "unknown.yaml", "bogus: true\n"),
			wantErr: ErrConfigParse,
		},
		{
			name:    "malformed yaml",
			path:    writeConfig(t, dir, "broken.yaml", "viewport: [unclosed\n"),
			wantErr: ErrConfigParse,
		},
		{
			name:    "out of range quality",
			path:    writeConfig(t, dir, "badquality.yaml", "output:\n  quality: 150\n"),
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative wait",
			path:    writeConfig(t, dir, "badwait.yaml", "capture:\n  waitSeconds: -1\n"),
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigByName(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "staging.yaml", "viewport:\n  preset: fhd\n")

	// Config names resolve relative to the working directory first.
	t.Chdir(dir)

	cfg, err := LoadConfig("staging")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Viewport.Preset != "fhd" {
		t.Errorf("preset = %q, want fhd", cfg.Viewport.Preset)
	}
}

func TestLoadConfigByNameYMLFallback(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "alt.yml", "output:\n  defaultName: alt.png\n")

	t.Chdir(dir)

	cfg, err := LoadConfig("alt")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Output.DefaultName != "alt.png" {
		t.Errorf("defaultName = %q, want alt.png", cfg.Output.DefaultName)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "zero config", cfg: Config{}, wantErr: nil},
		{
			name:    "negative viewport",
			cfg:     Config{Viewport: ViewportConfig{Width: -1}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative dpi",
			cfg:     Config{Capture: CaptureConfig{DPI: -1}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative timeout",
			cfg:     Config{Browser: BrowserConfig{TimeoutSeconds: -5}},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
