package screenshot

import "errors"

// Sentinel errors for library operations.
var (
	// Browser lifecycle errors.
	ErrBrowserLaunch = errors.New("failed to launch browser")
	ErrPageCreate    = errors.New("failed to create browser page")

	// Navigation errors.
	ErrNavigation        = errors.New("navigation failed")
	ErrNavigationTimeout = errors.New("page load timed out")
	ErrUnreachable       = errors.New("target unreachable")

	// Capture errors.
	ErrPageMetrics = errors.New("failed to read page metrics")
	ErrCapture     = errors.New("screenshot capture failed")

	// Encoding errors.
	ErrEncode            = errors.New("image encoding failed")
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// Request validation errors.
	ErrEmptyURL        = errors.New("target URL cannot be empty")
	ErrInvalidViewport = errors.New("invalid viewport dimensions")
	ErrInvalidPreset   = errors.New("invalid device preset")
	ErrInvalidDPIScale = errors.New("invalid DPI scale factor")
	ErrInvalidQuality  = errors.New("invalid JPEG quality")
	ErrInvalidWait     = errors.New("invalid wait duration")

	// Login errors.
	ErrLoginFailed = errors.New("login failed")
)
