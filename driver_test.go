package screenshot

import (
	"context"
	"errors"
	"testing"
	"time"
)

// --- Navigation error classification ---

func TestClassifyNavError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "context deadline",
			err:  errors.New("context deadline exceeded"),
			want: ErrNavigationTimeout,
		},
		{
			name: "rod timeout",
			err:  errors.New("timeout waiting for page load"),
			want: ErrNavigationTimeout,
		},
		{
			name: "dns failure",
			err:  errors.New("page load error net::ERR_NAME_NOT_RESOLVED"),
			want: ErrUnreachable,
		},
		{
			name: "connection refused",
			err:  errors.New("page load error net::ERR_CONNECTION_REFUSED"),
			want: ErrUnreachable,
		},
		{
			name: "network down",
			err:  errors.New("page load error net::ERR_INTERNET_DISCONNECTED"),
			want: ErrUnreachable,
		},
		{
			name: "other failure",
			err:  errors.New("page load error net::ERR_ABORTED"),
			want: ErrNavigation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := classifyNavError("https://example.com", tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("classifyNavError() = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- Context-aware sleep ---

func TestSleepCtx(t *testing.T) {
	t.Parallel()

	if err := sleepCtx(context.Background(), 0); err != nil {
		t.Errorf("sleepCtx(0) = %v, want nil", err)
	}
	if err := sleepCtx(context.Background(), -time.Second); err != nil {
		t.Errorf("sleepCtx(negative) = %v, want nil", err)
	}
	if err := sleepCtx(context.Background(), time.Millisecond); err != nil {
		t.Errorf("sleepCtx(1ms) = %v, want nil", err)
	}
}

func TestSleepCtxCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sleepCtx(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("sleepCtx() = %v, want context.Canceled", err)
	}
}

// --- Shutdown safety ---

func TestRodDriverShutdownBeforeLaunch(t *testing.T) {
	t.Parallel()

	d := newRodDriver(serviceConfig{timeout: time.Second})
	// Must not panic on a driver that never launched, and must stay
	// idempotent.
	d.Shutdown()
	d.Shutdown()
}
