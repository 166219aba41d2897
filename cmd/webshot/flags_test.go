package main

import (
	"testing"
)

func TestParseCaptureFlags(t *testing.T) {
	args := []string{
		"example.com",
		"--output", "shot.jpg",
		"--width", "1280",
		"--height", "720",
		"--no-full-page",
		"--wait", "5",
		"--dpi", "2",
		"--quality", "80",
		"--timeout", "60s",
		"--username", "admin",
		"--password", "secret",
		"--quiet",
	}

	flags, positional, err := parseCaptureFlags(args)
	if err != nil {
		t.Fatalf("parseCaptureFlags() unexpected error: %v", err)
	}

	if len(positional) != 1 || positional[0] != "example.com" {
		t.Errorf("positional = %v, want [example.com]", positional)
	}
	if flags.output != "shot.jpg" {
		t.Errorf("output = %q, want shot.jpg", flags.output)
	}
	if flags.viewport.width != 1280 || flags.viewport.height != 720 {
		t.Errorf("viewport = %dx%d, want 1280x720", flags.viewport.width, flags.viewport.height)
	}
	if !flags.behavior.noFullPage {
		t.Error("noFullPage = false, want true")
	}
	if flags.behavior.wait != 5 {
		t.Errorf("wait = %d, want 5", flags.behavior.wait)
	}
	if flags.behavior.dpi != 2 {
		t.Errorf("dpi = %v, want 2", flags.behavior.dpi)
	}
	if flags.behavior.quality != 80 {
		t.Errorf("quality = %d, want 80", flags.behavior.quality)
	}
	if flags.behavior.timeout != "60s" {
		t.Errorf("timeout = %q, want 60s", flags.behavior.timeout)
	}
	if flags.auth.username != "admin" || flags.auth.password != "secret" {
		t.Errorf("auth = %q/%q, want admin/secret", flags.auth.username, flags.auth.password)
	}
	if !flags.common.quiet {
		t.Error("quiet = false, want true")
	}
}

func TestParseCaptureFlagsDefaults(t *testing.T) {
	flags, positional, err := parseCaptureFlags([]string{"example.com"})
	if err != nil {
		t.Fatalf("parseCaptureFlags() unexpected error: %v", err)
	}

	if len(positional) != 1 {
		t.Fatalf("positional = %v, want one URL", positional)
	}
	// -1 distinguishes "flag absent" from an explicit --wait 0.
	if flags.behavior.wait != -1 {
		t.Errorf("default wait = %d, want -1 (unset)", flags.behavior.wait)
	}
	if flags.behavior.noFullPage {
		t.Error("noFullPage = true by default, want false")
	}
	if flags.output != "" {
		t.Errorf("output = %q, want empty", flags.output)
	}
}

func TestParseCaptureFlagsShorthands(t *testing.T) {
	flags, _, err := parseCaptureFlags([]string{
		"-o", "out.png", "-w", "800", "-t", "10s", "-q", "example.com",
	})
	if err != nil {
		t.Fatalf("parseCaptureFlags() unexpected error: %v", err)
	}

	if flags.output != "out.png" {
		t.Errorf("output = %q, want out.png", flags.output)
	}
	if flags.viewport.width != 800 {
		t.Errorf("width = %d, want 800", flags.viewport.width)
	}
	if flags.behavior.timeout != "10s" {
		t.Errorf("timeout = %q, want 10s", flags.behavior.timeout)
	}
	if !flags.common.quiet {
		t.Error("quiet = false, want true")
	}
}

func TestParseCaptureFlagsUnknownFlag(t *testing.T) {
	if _, _, err := parseCaptureFlags([]string{"--bogus", "example.com"}); err == nil {
		t.Error("parseCaptureFlags() accepted unknown flag")
	}
}
