package screenshot

import (
	"context"
)

// pageRenderer orchestrates one navigation on an already-launched driver
// and surfaces the final page metrics. Driver errors propagate unchanged;
// there is no local recovery, since they are caller-visible.
type pageRenderer struct {
	driver browserDriver
	warn   func(format string, args ...any)
}

// Load logs in when credentials are present, navigates to the target,
// applies the post-load wait, and reads the content dimensions.
func (r *pageRenderer) Load(ctx context.Context, req *Request) (PageMetrics, error) {
	if req.Credentials.set() {
		if err := r.driver.Login(ctx, req.URL, req.Credentials); err != nil {
			if ctx.Err() != nil {
				return PageMetrics{}, err
			}
			// Mirror the interactive tool's behavior: a failed login falls
			// back to loading the target directly, which may still render
			// something useful (public dashboards, error pages).
			r.warnf("login failed, loading target without authentication: %v", err)
		}
	}

	if err := r.driver.Navigate(ctx, req.URL, req.Wait); err != nil {
		return PageMetrics{}, err
	}

	metrics, err := r.driver.PageMetrics(ctx)
	if err != nil {
		return PageMetrics{}, err
	}
	return clampMetrics(metrics), nil
}

// clampMetrics bounds content dimensions to the capture safety caps.
func clampMetrics(m PageMetrics) PageMetrics {
	if m.Width > MaxCaptureWidth {
		m.Width = MaxCaptureWidth
	}
	if m.Height > MaxCaptureHeight {
		m.Height = MaxCaptureHeight
	}
	return m
}

func (r *pageRenderer) warnf(format string, args ...any) {
	if r.warn != nil {
		r.warn(format, args...)
	}
}
