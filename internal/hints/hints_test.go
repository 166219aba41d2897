package hints

import (
	"strings"
	"testing"
)

func TestForBrowserLaunchInContainer(t *testing.T) {
	orig := IsInContainer
	IsInContainer = func() bool { return true }
	defer func() { IsInContainer = orig }()

	t.Setenv("ROD_NO_SANDBOX", "")
	t.Setenv("ROD_BROWSER_BIN", "")

	hint := ForBrowserLaunch()
	if !strings.Contains(hint, "ROD_NO_SANDBOX") {
		t.Errorf("hint = %q, want ROD_NO_SANDBOX suggestion in container", hint)
	}
	if !strings.Contains(hint, "ROD_BROWSER_BIN") {
		t.Errorf("hint = %q, want ROD_BROWSER_BIN suggestion", hint)
	}
	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint = %q, want standard hint prefix", hint)
	}
}

func TestForBrowserLaunchOutsideContainer(t *testing.T) {
	orig := IsInContainer
	IsInContainer = func() bool { return false }
	defer func() { IsInContainer = orig }()

	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITLAB_CI", "")
	t.Setenv("JENKINS_URL", "")
	t.Setenv("ROD_NO_SANDBOX", "")
	t.Setenv("ROD_BROWSER_BIN", "")

	hint := ForBrowserLaunch()
	if strings.Contains(hint, "ROD_NO_SANDBOX") {
		t.Errorf("hint = %q, sandbox suggestion should not appear outside CI/container", hint)
	}
}

func TestForNavigationTimeout(t *testing.T) {
	hint := ForNavigationTimeout()
	if !strings.Contains(hint, "--timeout") {
		t.Errorf("hint = %q, want --timeout suggestion", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	paths := []string{
		"defaults.yaml",
		"/home/user/.config/webshot/defaults.yaml",
	}
	hint := ForConfigNotFound(paths)
	if !strings.Contains(hint, "--config") {
		t.Errorf("hint = %q, want --config suggestion", hint)
	}
	if !strings.Contains(hint, ".config/webshot") {
		t.Errorf("hint = %q, want user config path suggestion", hint)
	}
}

func TestForConfigNotFoundNoUserPath(t *testing.T) {
	hint := ForConfigNotFound([]string{"defaults.yaml"})
	if !strings.Contains(hint, "--config") {
		t.Errorf("hint = %q, want --config suggestion", hint)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
}
