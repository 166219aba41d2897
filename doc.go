// Package screenshot captures still images of rendered web pages using
// headless Chrome.
//
// # Quick Start
//
// Create a service, capture a page, and write the encoded bytes:
//
//	svc := screenshot.New()
//
//	result, err := svc.Capture(ctx, screenshot.Request{
//	    URL:    "https://example.com",
//	    Format: screenshot.FormatPNG,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("screenshot.png", result.Image, 0644)
//
// Each call to Capture launches one browser session and tears it down
// before returning, on every exit path. There is no shared browser state
// between captures.
//
// # Capture Pipeline
//
// The capture process follows these stages:
//
//  1. Request validation (viewport, DPI scale, quality, wait)
//  2. Browser launch with viewport and device emulation (go-rod)
//  3. Navigation, load wait, and page metrics readout
//  4. Viewport capture, or scrolled tile capture with stitching when the
//     page is taller than the viewport and full-page capture is requested
//  5. PNG or JPEG encoding
//
// # Viewport Resolution
//
// A Request resolves its viewport from exactly one source, in order of
// precedence: explicit Width/Height, then a device preset, then the
// library default of 1920x1080. DPIScale and FullPage apply regardless
// of which source wins:
//
//	result, err := svc.Capture(ctx, screenshot.Request{
//	    URL:      "https://example.com",
//	    Preset:   screenshot.PresetMobile, // 375x812, mobile emulation
//	    DPIScale: 2.0,                     // doubles output resolution
//	    Format:   screenshot.FormatJPEG,
//	    Quality:  90,
//	})
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := screenshot.New(
//	    screenshot.WithTimeout(2 * time.Minute),
//	    screenshot.WithBrowserBin("/usr/bin/chromium"),
//	)
//
// # Browser Requirements
//
// Capture requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package screenshot
