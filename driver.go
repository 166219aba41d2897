package screenshot

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/roseweigee/screenshot/internal/process"
)

// browserDriver abstracts one headless browser session to enable testing
// without a browser. Launch must be called first; Shutdown is idempotent
// and safe on a driver that never launched.
type browserDriver interface {
	Launch(ctx context.Context, vp viewport) error
	Navigate(ctx context.Context, rawURL string, wait time.Duration) error
	Login(ctx context.Context, targetURL string, creds Credentials) error
	PageMetrics(ctx context.Context) (PageMetrics, error)
	ScrollTo(ctx context.Context, y int) error
	CaptureViewport(ctx context.Context) (image.Image, error)
	Shutdown()
}

// Compile-time interface check.
var _ browserDriver = (*rodDriver)(nil)

// scrollSettleDelay gives lazy-loaded and sticky content time to settle
// after a programmatic scroll, before the tile is captured.
const scrollSettleDelay = 500 * time.Millisecond

// rodDriver implements browserDriver using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodDriver struct {
	cfg      serviceConfig
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
}

// newRodDriver creates an unlaunched driver with the given configuration.
func newRodDriver(cfg serviceConfig) *rodDriver {
	return &rodDriver{cfg: cfg}
}

// Launch starts the browser process and opens a blank page with the
// resolved viewport and device emulation applied.
func (d *rodDriver) Launch(ctx context.Context, vp viewport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l := launcher.New().
		Headless(true).
		Set("hide-scrollbars").
		Set("mute-audio").
		Set("disable-gpu").
		Set("disable-dev-shm-usage")

	// Use pre-installed browser if specified (Docker/containerized environments)
	if d.cfg.browserBin != "" {
		l = l.Bin(d.cfg.browserBin)
	} else if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if d.cfg.noSandbox || os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserLaunch, err)
	}
	d.launcher = l

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		d.Shutdown()
		return fmt.Errorf("%w: %v", ErrBrowserLaunch, err)
	}
	d.browser = browser

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		d.Shutdown()
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	d.page = page

	if err := d.applyViewport(vp); err != nil {
		d.Shutdown()
		return err
	}
	return nil
}

// applyViewport sets the device metrics override and, for mobile
// emulation, the user agent.
func (d *rodDriver) applyViewport(vp viewport) error {
	if err := d.page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             vp.Width,
		Height:            vp.Height,
		DeviceScaleFactor: vp.Scale,
		Mobile:            vp.Mobile,
	}); err != nil {
		return fmt.Errorf("%w: setting viewport: %v", ErrPageCreate, err)
	}

	if vp.UserAgent != "" {
		if err := (proto.NetworkSetUserAgentOverride{
			UserAgent: vp.UserAgent,
		}).Call(d.page); err != nil {
			return fmt.Errorf("%w: setting user agent: %v", ErrPageCreate, err)
		}
	}
	return nil
}

// Navigate loads the URL and blocks until the load event fires or the
// hard timeout elapses, then applies the additional post-load wait.
// There is no retry: repeated navigation failures are not transient.
func (d *rodDriver) Navigate(ctx context.Context, rawURL string, wait time.Duration) error {
	page := d.page.Context(ctx)

	if err := page.Timeout(d.cfg.timeout).Navigate(rawURL); err != nil {
		return classifyNavError(rawURL, err)
	}
	if err := page.Timeout(d.cfg.timeout).WaitLoad(); err != nil {
		return classifyNavError(rawURL, err)
	}

	return sleepCtx(ctx, wait)
}

// classifyNavError maps rod/CDP navigation failures onto the library's
// navigation error taxonomy.
func classifyNavError(rawURL string, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "context deadline exceeded") || strings.Contains(msg, "timeout"):
		return fmt.Errorf("%w: %s: %v", ErrNavigationTimeout, rawURL, err)
	case strings.Contains(msg, "ERR_NAME_NOT_RESOLVED") ||
		strings.Contains(msg, "ERR_CONNECTION_REFUSED") ||
		strings.Contains(msg, "ERR_CONNECTION_TIMED_OUT") ||
		strings.Contains(msg, "ERR_ADDRESS_UNREACHABLE") ||
		strings.Contains(msg, "ERR_INTERNET_DISCONNECTED"):
		return fmt.Errorf("%w: %s: %v", ErrUnreachable, rawURL, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrNavigation, rawURL, err)
	}
}

// usernameSelectors and passwordSelectors are tried in order when filling
// a login form. The first candidates target Grafana's login page.
var (
	usernameSelectors = []string{
		`input[placeholder='email or username']`,
		`input[aria-label='Username input field']`,
		`input[name='user']`,
		`input[name='username']`,
		`input[type='text']`,
	}
	passwordSelectors = []string{
		`input[placeholder='password']`,
		`input[type='password']`,
		`input[name='password']`,
	}
	submitSelectors = []string{
		`button[type='submit']`,
		`button[aria-label='Login button']`,
		`input[type='submit']`,
	}
)

// loginSelectorTimeout bounds the search for each login form field.
const loginSelectorTimeout = 5 * time.Second

// Login navigates to the target's /login page, fills the credential form,
// and submits it. The target page itself is not loaded here; callers
// navigate after a successful login.
func (d *rodDriver) Login(ctx context.Context, targetURL string, creds Credentials) error {
	parsed, err := url.Parse(targetURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	loginURL := parsed.Scheme + "://" + parsed.Host + "/login"

	page := d.page.Context(ctx)
	if err := page.Timeout(d.cfg.timeout).Navigate(loginURL); err != nil {
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	if err := page.Timeout(d.cfg.timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	userField, err := d.findElement(page, usernameSelectors)
	if err != nil {
		return fmt.Errorf("%w: username field not found", ErrLoginFailed)
	}
	if err := userField.Input(creds.Username); err != nil {
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	passField, err := d.findElement(page, passwordSelectors)
	if err != nil {
		return fmt.Errorf("%w: password field not found", ErrLoginFailed)
	}
	if err := passField.Input(creds.Password); err != nil {
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	submit, err := d.findElement(page, submitSelectors)
	if err != nil {
		return fmt.Errorf("%w: submit button not found", ErrLoginFailed)
	}
	if err := submit.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	// Give the post-login redirect time to land before checking it.
	if err := sleepCtx(ctx, 2*time.Second); err != nil {
		return err
	}
	if err := page.Timeout(d.cfg.timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	info, err := page.Info()
	if err == nil && strings.Contains(info.URL, "/login") {
		return fmt.Errorf("%w: still on login page after submit", ErrLoginFailed)
	}
	return nil
}

// findElement returns the first element matching any of the selectors.
func (d *rodDriver) findElement(page *rod.Page, selectors []string) (*rod.Element, error) {
	var lastErr error
	for _, sel := range selectors {
		el, err := page.Timeout(loginSelectorTimeout).Element(sel)
		if err == nil {
			return el, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// pageMetricsJS mirrors the browser's own notion of scrollable content
// size, taking the max across body and documentElement like the classic
// cross-browser measurement.
const pageMetricsJS = `() => ({
	width: Math.max(
		document.body ? document.body.scrollWidth : 0,
		document.documentElement.scrollWidth,
		document.documentElement.clientWidth
	),
	height: Math.max(
		document.body ? document.body.scrollHeight : 0,
		document.documentElement.scrollHeight,
		document.documentElement.clientHeight
	),
})`

// PageMetrics reads the rendered content dimensions in logical pixels.
func (d *rodDriver) PageMetrics(ctx context.Context) (PageMetrics, error) {
	page := d.page.Context(ctx).Timeout(d.cfg.timeout)

	res, err := page.Eval(pageMetricsJS)
	if err != nil {
		return PageMetrics{}, fmt.Errorf("%w: %v", ErrPageMetrics, err)
	}
	return PageMetrics{
		Width:  res.Value.Get("width").Int(),
		Height: res.Value.Get("height").Int(),
	}, nil
}

// ScrollTo scrolls the page to the given vertical offset and waits for
// content to settle.
func (d *rodDriver) ScrollTo(ctx context.Context, y int) error {
	page := d.page.Context(ctx).Timeout(d.cfg.timeout)

	if _, err := page.Eval(`(y) => window.scrollTo(0, y)`, y); err != nil {
		return fmt.Errorf("%w: scrolling to %d: %v", ErrCapture, y, err)
	}
	return sleepCtx(ctx, scrollSettleDelay)
}

// CaptureViewport captures the current viewport as a raw bitmap. Tiles
// are always requested as PNG from the browser; lossy encoding happens
// once, at the end, on the composited image.
func (d *rodDriver) CaptureViewport(ctx context.Context) (image.Image, error) {
	page := d.page.Context(ctx).Timeout(d.cfg.timeout)

	res, err := proto.PageCaptureScreenshot{
		Format:      proto.PageCaptureScreenshotFormatPng,
		FromSurface: true,
	}.Call(page)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}

	img, err := png.Decode(bytes.NewReader(res.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding bitmap: %v", ErrCapture, err)
	}
	return img, nil
}

// Shutdown terminates the browser session. It is idempotent, never
// returns an error, and is safe to call at any stage of the lifecycle,
// so the browser process cannot leak regardless of which stage failed.
func (d *rodDriver) Shutdown() {
	if d.page != nil {
		_ = d.page.Close()
		d.page = nil
	}
	if d.browser != nil {
		_ = d.browser.Close()
		d.browser = nil
	}
	if d.launcher != nil {
		// Hard-kill fallback for browsers that ignore the graceful close.
		if pid := d.launcher.PID(); pid > 0 {
			process.KillProcessGroup(pid)
		}
		d.launcher.Cleanup()
		d.launcher = nil
	}
}

// sleepCtx blocks for d or until ctx is canceled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
