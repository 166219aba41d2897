package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// viewportFlags holds resolution flags. Explicit width/height override a
// preset when both are given.
type viewportFlags struct {
	width  int
	height int
	mobile bool
	tablet bool
	hd     bool
	fhd    bool
	qhd    bool
	uhd    bool
}

// behaviorFlags holds capture behavior flags.
type behaviorFlags struct {
	noFullPage bool
	wait       int // seconds
	dpi        float64
	quality    int
	timeout    string // parsed as time.Duration
}

// authFlags holds login credential flags (Grafana-style form login).
type authFlags struct {
	username string
	password string
}

// captureFlags holds all flags for a capture invocation.
type captureFlags struct {
	common   commonFlags
	output   string
	viewport viewportFlags
	behavior behaviorFlags
	auth     authFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addViewportFlags adds resolution flags to a FlagSet.
func addViewportFlags(fs *flag.FlagSet, f *viewportFlags) {
	fs.IntVarP(&f.width, "width", "w", 0, "viewport width in pixels")
	fs.IntVar(&f.height, "height", 0, "viewport height in pixels")
	fs.BoolVar(&f.mobile, "mobile", false, "mobile preset (375x812, mobile emulation)")
	fs.BoolVar(&f.tablet, "tablet", false, "tablet preset (768x1024, mobile emulation)")
	fs.BoolVar(&f.hd, "hd", false, "HD preset (1366x768)")
	fs.BoolVar(&f.fhd, "fhd", false, "Full HD preset (1920x1080)")
	fs.BoolVar(&f.qhd, "qhd", false, "QHD preset (2560x1440)")
	fs.BoolVar(&f.uhd, "uhd", false, "4K UHD preset (3840x2160)")
}

// addBehaviorFlags adds capture behavior flags to a FlagSet.
func addBehaviorFlags(fs *flag.FlagSet, f *behaviorFlags) {
	fs.BoolVar(&f.noFullPage, "no-full-page", false, "capture viewport only instead of full page")
	fs.IntVar(&f.wait, "wait", -1, "additional wait after page load, in seconds")
	fs.Float64Var(&f.dpi, "dpi", 0, "device pixel ratio multiplier")
	fs.IntVar(&f.quality, "quality", 0, "JPEG quality 1-100 (ignored for PNG)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "page load timeout (e.g., 30s, 2m)")
}

// addAuthFlags adds login flags to a FlagSet.
func addAuthFlags(fs *flag.FlagSet, f *authFlags) {
	fs.StringVar(&f.username, "username", "", "username for form login (Grafana)")
	fs.StringVar(&f.password, "password", "", "password for form login (Grafana)")
}

// parseCaptureFlags parses capture flags and returns positional args.
func parseCaptureFlags(args []string) (*captureFlags, []string, error) {
	fs := flag.NewFlagSet("capture", flag.ContinueOnError)
	f := &captureFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (extension selects PNG vs JPEG)")

	addCommonFlags(fs, &f.common)
	addViewportFlags(fs, &f.viewport)
	addBehaviorFlags(fs, &f.behavior)
	addAuthFlags(fs, &f.auth)

	fs.Usage = func() { printCaptureUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
