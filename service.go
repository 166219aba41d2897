package screenshot

import (
	"context"
	"image"
)

// Service orchestrates the capture pipeline: launch, load, capture
// (stitched or single-shot), encode. One browser session is created per
// Capture call and torn down before it returns, on every exit path.
type Service struct {
	cfg       serviceConfig
	newDriver func() browserDriver
	warn      func(format string, args ...any)
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the driver factory if not injected (e.g., by tests)
	if s.newDriver == nil {
		cfg := s.cfg
		s.newDriver = func() browserDriver { return newRodDriver(cfg) }
	}

	return s
}

// WithWarnLogger sets a printf-style sink for non-fatal warnings, such as
// a failed login that falls back to unauthenticated capture. By default
// warnings are discarded.
func WithWarnLogger(warn func(format string, args ...any)) Option {
	return func(s *Service) {
		s.warn = warn
	}
}

// Capture renders the requested page and returns the encoded image.
// The context is used for cancellation and timeout.
//
// The request is validated before any browser work starts, so an invalid
// quality or viewport never costs a browser session. The session is shut
// down before Capture returns regardless of which stage failed.
func (s *Service) Capture(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	vp := req.resolveViewport()

	driver := s.newDriver()
	defer driver.Shutdown()

	if err := driver.Launch(ctx, vp); err != nil {
		return nil, err
	}

	renderer := &pageRenderer{driver: driver, warn: s.warn}
	metrics, err := renderer.Load(ctx, &req)
	if err != nil {
		return nil, err
	}

	var img image.Image
	if req.FullPage && metrics.Height > vp.Height {
		stitcher := &captureStitcher{driver: driver}
		img, err = stitcher.Capture(ctx, metrics, vp)
	} else {
		img, err = driver.CaptureViewport(ctx)
	}
	if err != nil {
		return nil, err
	}

	data, err := encodeImage(img, req.format(), req.quality())
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &Result{
		Image:  data,
		Format: req.format(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
