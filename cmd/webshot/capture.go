package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	screenshot "github.com/roseweigee/screenshot"
	"github.com/roseweigee/screenshot/internal/config"
	"github.com/roseweigee/screenshot/internal/fileutil"
	"github.com/roseweigee/screenshot/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoURL           = errors.New("no URL specified")
	ErrInvalidURL      = errors.New("invalid URL")
	ErrConflictPresets = errors.New("multiple device presets given")
	ErrInvalidTimeout  = errors.New("invalid timeout")
	ErrWriteImage      = errors.New("failed to write image file")
)

// File permission for written screenshots.
// rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// defaultOutputName is used when no --output is given and the config
// sets no default.
const defaultOutputName = "screenshot.png"

// runCapture resolves flags and config into a capture request, runs it,
// and writes the image file. Nothing is written on any failure.
func runCapture(ctx context.Context, positional []string, flags *captureFlags, env *Environment) error {
	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(nil))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	rawURL, err := resolveTargetURL(positional)
	if err != nil {
		return err
	}

	outputPath := resolveOutputPath(flags.output, cfg)
	format, err := screenshot.FormatFromPath(outputPath)
	if err != nil {
		return err
	}

	req, err := buildRequest(rawURL, format, flags, cfg)
	if err != nil {
		return err
	}

	opts, err := buildServiceOptions(flags, cfg, env)
	if err != nil {
		return err
	}

	progress := newProgress(env, flags.common.quiet, flags.common.verbose)
	progress.Printf("Target URL: %s", req.URL)
	progress.Printf("Output file: %s", outputPath)
	progress.Verbosef("Viewport: %dx%d preset=%q dpi=%.2f full-page=%v",
		req.Width, req.Height, req.Preset, req.DPIScale, req.FullPage)

	svc := screenshot.New(opts...)

	start := env.Now()
	result, err := svc.Capture(ctx, *req)
	if err != nil {
		return decorateCaptureError(err)
	}
	progress.Verbosef("Captured %dx%d in %s", result.Width, result.Height, env.Now().Sub(start).Round(time.Millisecond))

	if err := fileutil.EnsureParentDir(outputPath); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteImage, err, hints.ForOutputDirectory())
	}
	if err := os.WriteFile(outputPath, result.Image, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteImage, err)
	}

	progress.Printf("Created %s (%d KB)", outputPath, len(result.Image)/1024)
	return nil
}

// resolveTargetURL validates the positional URL and defaults the scheme
// to https:// when missing.
func resolveTargetURL(positional []string) (string, error) {
	if len(positional) == 0 {
		return "", ErrNoURL
	}
	raw := positional[0]

	if !fileutil.IsURL(raw) {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidURL, positional[0], err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, positional[0])
	}
	return raw, nil
}

// resolveOutputPath picks the output file path: flag, then config
// defaults, then screenshot.png.
func resolveOutputPath(flagOutput string, cfg *config.Config) string {
	path := flagOutput
	if path == "" {
		path = cfg.Output.DefaultName
	}
	if path == "" {
		path = defaultOutputName
	}
	if !filepath.IsAbs(path) && cfg.Output.DefaultDir != "" {
		path = filepath.Join(cfg.Output.DefaultDir, path)
	}
	return path
}

// presetFromFlags maps the preset booleans onto a Preset value.
// At most one preset flag may be set.
func presetFromFlags(f *viewportFlags) (screenshot.Preset, error) {
	var (
		preset screenshot.Preset
		count  int
	)
	for _, p := range []struct {
		set    bool
		preset screenshot.Preset
	}{
		{f.mobile, screenshot.PresetMobile},
		{f.tablet, screenshot.PresetTablet},
		{f.hd, screenshot.PresetHD},
		{f.fhd, screenshot.PresetFHD},
		{f.qhd, screenshot.PresetQHD},
		{f.uhd, screenshot.PresetUHD},
	} {
		if p.set {
			preset = p.preset
			count++
		}
	}
	if count > 1 {
		return screenshot.PresetNone, fmt.Errorf("%w: pick one of --mobile, --tablet, --hd, --fhd, --qhd, --uhd", ErrConflictPresets)
	}
	return preset, nil
}

// buildRequest merges CLI flags over config defaults into a Request.
// CLI wins on every axis.
func buildRequest(rawURL string, format screenshot.Format, flags *captureFlags, cfg *config.Config) (*screenshot.Request, error) {
	preset, err := presetFromFlags(&flags.viewport)
	if err != nil {
		return nil, err
	}
	if preset == screenshot.PresetNone && cfg.Viewport.Preset != "" {
		preset = screenshot.Preset(cfg.Viewport.Preset)
	}

	width, height := flags.viewport.width, flags.viewport.height
	if width == 0 && height == 0 {
		width, height = cfg.Viewport.Width, cfg.Viewport.Height
	}

	fullPage := true
	if cfg.Capture.FullPage != nil {
		fullPage = *cfg.Capture.FullPage
	}
	if flags.behavior.noFullPage {
		fullPage = false
	}

	wait := screenshot.DefaultWait
	switch {
	case flags.behavior.wait >= 0:
		wait = time.Duration(flags.behavior.wait) * time.Second
	case cfg.Capture.WaitSeconds > 0:
		wait = time.Duration(cfg.Capture.WaitSeconds) * time.Second
	}

	dpi := flags.behavior.dpi
	if dpi == 0 {
		dpi = cfg.Capture.DPI
	}

	quality := flags.behavior.quality
	if quality == 0 {
		quality = cfg.Output.Quality
	}

	creds := screenshot.Credentials{
		Username: flags.auth.username,
		Password: flags.auth.password,
	}
	if creds.Username == "" && creds.Password == "" {
		creds = screenshot.Credentials{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		}
	}

	return &screenshot.Request{
		URL:         rawURL,
		Width:       width,
		Height:      height,
		Preset:      preset,
		FullPage:    fullPage,
		DPIScale:    dpi,
		Wait:        wait,
		Format:      format,
		Quality:     quality,
		Credentials: creds,
	}, nil
}

// buildServiceOptions translates flags and config into Service options.
func buildServiceOptions(flags *captureFlags, cfg *config.Config, env *Environment) ([]screenshot.Option, error) {
	var opts []screenshot.Option

	if flags.behavior.timeout != "" {
		d, err := time.ParseDuration(flags.behavior.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q (use e.g. 30s, 2m)", ErrInvalidTimeout, flags.behavior.timeout)
		}
		opts = append(opts, screenshot.WithTimeout(d))
	} else if cfg.Browser.TimeoutSeconds > 0 {
		opts = append(opts, screenshot.WithTimeout(time.Duration(cfg.Browser.TimeoutSeconds)*time.Second))
	}

	if cfg.Browser.Bin != "" {
		opts = append(opts, screenshot.WithBrowserBin(cfg.Browser.Bin))
	}
	if cfg.Browser.NoSandbox {
		opts = append(opts, screenshot.WithNoSandbox())
	}

	if !flags.common.quiet {
		stderr := env.Stderr
		opts = append(opts, screenshot.WithWarnLogger(func(format string, args ...any) {
			fmt.Fprintf(stderr, "warning: "+format+"\n", args...)
		}))
	}

	return opts, nil
}

// decorateCaptureError appends actionable hints to browser failures.
func decorateCaptureError(err error) error {
	switch {
	case errors.Is(err, screenshot.ErrBrowserLaunch):
		return fmt.Errorf("%w%s", err, hints.ForBrowserLaunch())
	case errors.Is(err, screenshot.ErrNavigationTimeout):
		return fmt.Errorf("%w%s", err, hints.ForNavigationTimeout())
	default:
		return err
	}
}

// progress writes status lines to stderr, honoring quiet/verbose.
type progress struct {
	env     *Environment
	quiet   bool
	verbose bool
}

func newProgress(env *Environment, quiet, verbose bool) *progress {
	return &progress{env: env, quiet: quiet, verbose: verbose}
}

// Printf prints unless --quiet.
func (p *progress) Printf(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.env.Stderr, format+"\n", args...)
}

// Verbosef prints only with --verbose.
func (p *progress) Verbosef(format string, args ...any) {
	if !p.verbose || p.quiet {
		return
	}
	fmt.Fprintf(p.env.Stderr, format+"\n", args...)
}
