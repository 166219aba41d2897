package screenshot

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Format selects the output image encoding.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// FormatFromPath infers the output format from a file extension.
// ".png" selects PNG; ".jpg" and ".jpeg" select JPEG.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("%w: %q (use .png, .jpg, or .jpeg)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Preset names a fixed viewport resolution.
type Preset string

// Device presets. Mobile and tablet enable mobile device emulation;
// the rest are plain desktop resolutions.
const (
	PresetNone   Preset = ""
	PresetMobile Preset = "mobile" // 375x812
	PresetTablet Preset = "tablet" // 768x1024
	PresetHD     Preset = "hd"     // 1366x768
	PresetFHD    Preset = "fhd"    // 1920x1080
	PresetQHD    Preset = "qhd"    // 2560x1440
	PresetUHD    Preset = "uhd"    // 3840x2160
)

// presetViewports maps each preset to its viewport and emulation mode.
var presetViewports = map[Preset]viewport{
	PresetMobile: {Width: 375, Height: 812, Mobile: true},
	PresetTablet: {Width: 768, Height: 1024, Mobile: true},
	PresetHD:     {Width: 1366, Height: 768},
	PresetFHD:    {Width: 1920, Height: 1080},
	PresetQHD:    {Width: 2560, Height: 1440},
	PresetUHD:    {Width: 3840, Height: 2160},
}

// Default request values.
const (
	DefaultWidth    = 1920
	DefaultHeight   = 1080
	DefaultDPIScale = 1.0
	DefaultQuality  = 95
	DefaultWait     = 3 * time.Second
)

// Safety caps for full-page capture, in logical pixels. Pages reporting
// larger content dimensions are clamped rather than rejected.
const (
	MaxCaptureWidth  = 7680
	MaxCaptureHeight = 20000
)

// mobileUserAgent is reported when mobile device emulation is active.
const mobileUserAgent = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) " +
	"AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1"

// Credentials holds an optional username/password pair for form login
// before capture (Grafana-style login pages).
type Credentials struct {
	Username string
	Password string
}

// set reports whether both fields are present.
func (c Credentials) set() bool {
	return c.Username != "" && c.Password != ""
}

// Request describes one capture.
//
// Viewport resolution precedence: explicit Width/Height override Preset;
// if neither is given, the 1920x1080 default applies. DPIScale and
// FullPage are independent of the resolution source.
type Request struct {
	URL         string        // target URL (required)
	Width       int           // explicit viewport width (0 = unset)
	Height      int           // explicit viewport height (0 = unset)
	Preset      Preset        // device preset (ignored when Width/Height set)
	FullPage    bool          // capture full scrollable height
	DPIScale    float64       // device pixel ratio multiplier (0 = 1.0)
	Wait        time.Duration // additional wait after page load
	Format      Format        // output encoding (default PNG)
	Quality     int           // JPEG quality 1-100 (0 = 95); ignored for PNG
	Credentials Credentials   // optional login credentials
}

// Validate checks the request before any browser work starts, so invalid
// quality or viewport values never cost a browser session.
func (r *Request) Validate() error {
	if r.URL == "" {
		return ErrEmptyURL
	}
	if r.Width < 0 || r.Height < 0 || (r.Width > 0) != (r.Height > 0) {
		return fmt.Errorf("%w: %dx%d (width and height must both be positive)", ErrInvalidViewport, r.Width, r.Height)
	}
	if r.Preset != PresetNone {
		if _, ok := presetViewports[r.Preset]; !ok {
			return fmt.Errorf("%w: %q", ErrInvalidPreset, r.Preset)
		}
	}
	if r.DPIScale < 0 {
		return fmt.Errorf("%w: %.2f (must be positive)", ErrInvalidDPIScale, r.DPIScale)
	}
	if r.Wait < 0 {
		return fmt.Errorf("%w: %s (must be non-negative)", ErrInvalidWait, r.Wait)
	}
	switch r.Format {
	case "", FormatPNG, FormatJPEG:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, r.Format)
	}
	// Quality is validated even for PNG output: an out-of-range value is a
	// caller mistake either way. A valid quality with PNG is accepted and
	// silently ignored, since quality only applies to JPEG.
	if r.Quality < 0 || r.Quality > 100 {
		return fmt.Errorf("%w: %d (must be 1-100)", ErrInvalidQuality, r.Quality)
	}
	return nil
}

// resolveViewport applies the resolution precedence rule and fills
// defaults for DPI scale and mobile emulation.
func (r *Request) resolveViewport() viewport {
	vp := viewport{Width: DefaultWidth, Height: DefaultHeight}

	if preset, ok := presetViewports[r.Preset]; ok {
		vp = preset
	}
	if r.Width > 0 && r.Height > 0 {
		// Explicit dimensions win, but a mobile preset keeps its
		// emulation mode.
		vp.Width = r.Width
		vp.Height = r.Height
	}

	vp.Scale = r.DPIScale
	if vp.Scale == 0 {
		vp.Scale = DefaultDPIScale
	}
	if vp.Mobile {
		vp.UserAgent = mobileUserAgent
	}
	return vp
}

// format returns the effective output format.
func (r *Request) format() Format {
	if r.Format == "" {
		return FormatPNG
	}
	return r.Format
}

// quality returns the effective JPEG quality.
func (r *Request) quality() int {
	if r.Quality == 0 {
		return DefaultQuality
	}
	return r.Quality
}

// viewport is the resolved rendering surface configuration passed to the
// browser driver.
type viewport struct {
	Width     int
	Height    int
	Scale     float64 // device pixel ratio
	Mobile    bool    // mobile device emulation
	UserAgent string  // user agent override ("" = browser default)
}

// PageMetrics holds the rendered content dimensions in logical pixels,
// read from the live page after load.
type PageMetrics struct {
	Width  int
	Height int
}

// Result holds one finished capture.
type Result struct {
	Image  []byte // encoded image bytes
	Format Format
	Width  int // final image width in physical pixels
	Height int // final image height in physical pixels
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout    time.Duration
	browserBin string
	noSandbox  bool
}

// defaultTimeout bounds browser launch and navigation when no timeout is
// specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the hard upper bound for navigation and page load.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("screenshot: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithBrowserBin sets the Chrome/Chromium binary path, overriding
// auto-detection and the ROD_BROWSER_BIN environment variable.
func WithBrowserBin(path string) Option {
	return func(s *Service) {
		s.cfg.browserBin = path
	}
}

// WithNoSandbox disables the Chrome sandbox. Required in most container
// environments.
func WithNoSandbox() Option {
	return func(s *Service) {
		s.cfg.noSandbox = true
	}
}
