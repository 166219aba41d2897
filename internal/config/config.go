// Package config loads and validates webshot configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roseweigee/screenshot/internal/fileutil"
	"github.com/roseweigee/screenshot/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// configDirName is the subdirectory under the user config dir searched
// for named configs.
const configDirName = "webshot"

// Config holds default capture settings. CLI flags override any value
// set here.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Capture  CaptureConfig  `yaml:"capture"`
	Output   OutputConfig   `yaml:"output"`
	Browser  BrowserConfig  `yaml:"browser"`
	Auth     AuthConfig     `yaml:"auth"`
}

// ViewportConfig defines the default rendering surface.
type ViewportConfig struct {
	Width  int    `yaml:"width"`  // explicit width (0 = unset)
	Height int    `yaml:"height"` // explicit height (0 = unset)
	Preset string `yaml:"preset"` // mobile, tablet, hd, fhd, qhd, uhd ("" = unset)
}

// CaptureConfig defines capture behavior defaults.
type CaptureConfig struct {
	FullPage    *bool   `yaml:"fullPage"`    // nil = full page on
	WaitSeconds int     `yaml:"waitSeconds"` // additional post-load wait
	DPI         float64 `yaml:"dpi"`         // device pixel ratio multiplier (0 = 1.0)
}

// OutputConfig defines output defaults.
type OutputConfig struct {
	DefaultDir  string `yaml:"defaultDir"`  // directory for relative output paths
	DefaultName string `yaml:"defaultName"` // default filename (empty = screenshot.png)
	Quality     int    `yaml:"quality"`     // JPEG quality 1-100 (0 = 95)
}

// BrowserConfig defines browser process options.
type BrowserConfig struct {
	Bin            string `yaml:"bin"`            // Chrome binary ("" = auto-detect)
	NoSandbox      bool   `yaml:"noSandbox"`      // disable Chrome sandbox
	TimeoutSeconds int    `yaml:"timeoutSeconds"` // navigation hard timeout (0 = 30)
}

// AuthConfig defines default login credentials.
type AuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// DefaultConfig returns a neutral configuration with no overrides set.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks ranges on loaded values. Zero values mean "unset" and
// always pass.
func (c *Config) Validate() error {
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidValue, c.Viewport.Width, c.Viewport.Height)
	}
	if c.Capture.WaitSeconds < 0 {
		return fmt.Errorf("%w: waitSeconds %d", ErrInvalidValue, c.Capture.WaitSeconds)
	}
	if c.Capture.DPI < 0 {
		return fmt.Errorf("%w: dpi %.2f", ErrInvalidValue, c.Capture.DPI)
	}
	if c.Output.Quality < 0 || c.Output.Quality > 100 {
		return fmt.Errorf("%w: quality %d (must be 1-100)", ErrInvalidValue, c.Output.Quality)
	}
	if c.Browser.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: timeoutSeconds %d", ErrInvalidValue, c.Browser.TimeoutSeconds)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/webshot/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
