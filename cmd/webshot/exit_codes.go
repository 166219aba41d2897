package main

import (
	"errors"
	"os"

	screenshot "github.com/roseweigee/screenshot"
	"github.com/roseweigee/screenshot/internal/config"
)

// Exit codes for the webshot CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful capture
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome or navigation errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser and navigation errors (exit 4)
	if errors.Is(err, screenshot.ErrBrowserLaunch) ||
		errors.Is(err, screenshot.ErrPageCreate) ||
		errors.Is(err, screenshot.ErrNavigation) ||
		errors.Is(err, screenshot.ErrNavigationTimeout) ||
		errors.Is(err, screenshot.ErrUnreachable) ||
		errors.Is(err, screenshot.ErrPageMetrics) ||
		errors.Is(err, screenshot.ErrCapture) ||
		errors.Is(err, screenshot.ErrLoginFailed) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteImage) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, screenshot.ErrEmptyURL) ||
		errors.Is(err, screenshot.ErrInvalidViewport) ||
		errors.Is(err, screenshot.ErrInvalidPreset) ||
		errors.Is(err, screenshot.ErrInvalidDPIScale) ||
		errors.Is(err, screenshot.ErrInvalidQuality) ||
		errors.Is(err, screenshot.ErrInvalidWait) ||
		errors.Is(err, screenshot.ErrUnsupportedFormat) ||
		errors.Is(err, ErrNoURL) ||
		errors.Is(err, ErrInvalidURL) ||
		errors.Is(err, ErrConflictPresets) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
