package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long  string // --output
	Short string // -o (empty if none)
	Desc  string // help text
}

// buildCaptureFlagSet creates a FlagSet with all capture flags.
// This reuses the same flag registration as parseCaptureFlags.
func buildCaptureFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("capture", flag.ContinueOnError)
	f := &captureFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (extension selects PNG vs JPEG)")

	addCommonFlags(fs, &f.common)
	addViewportFlags(fs, &f.viewport)
	addBehaviorFlags(fs, &f.behavior)
	addAuthFlags(fs, &f.auth)

	return fs
}

// extractFlags extracts flag definitions from a pflag.FlagSet.
// Flag names and descriptions come from the FlagSet - single source of truth.
func extractFlags(fs *flag.FlagSet) []flagDef {
	var flags []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		flags = append(flags, flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		})
	})
	return flags
}

// commands lists the subcommands offered for completion.
var commands = []struct {
	Name string
	Desc string
}{
	{"doctor", "Diagnose browser and environment problems"},
	{"completion", "Generate shell completion script"},
	{"version", "Show version information"},
	{"help", "Show help for a command"},
}

// GenerateCompletion writes a shell completion script to w.
// Returns an error if the shell is unsupported or the write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	flags := extractFlags(buildCaptureFlagSet())

	switch shell {
	case ShellBash:
		return generateBash(w, flags)
	case ShellZsh:
		return generateZsh(w, flags)
	case ShellFish:
		return generateFish(w, flags)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

func generateBash(w io.Writer, flags []flagDef) error {
	var opts []string
	for _, f := range flags {
		opts = append(opts, "--"+f.Long)
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}
	for _, c := range commands {
		opts = append(opts, c.Name)
	}

	_, err := fmt.Fprintf(w, `# bash completion for webshot
_webshot() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    COMPREPLY=($(compgen -W "%s" -- "$cur"))
}
complete -o default -F _webshot webshot
`, strings.Join(opts, " "))
	return err
}

func generateZsh(w io.Writer, flags []flagDef) error {
	var b strings.Builder
	b.WriteString("#compdef webshot\n\n_webshot() {\n    _arguments \\\n")
	for _, f := range flags {
		desc := strings.ReplaceAll(f.Desc, "'", "")
		fmt.Fprintf(&b, "        '--%s[%s]' \\\n", f.Long, desc)
	}
	b.WriteString("        '1:url:_urls'\n}\n\n_webshot \"$@\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func generateFish(w io.Writer, flags []flagDef) error {
	var b strings.Builder
	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c webshot -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, c.Desc)
	}
	for _, f := range flags {
		desc := strings.ReplaceAll(f.Desc, "'", "")
		if f.Short != "" {
			fmt.Fprintf(&b, "complete -c webshot -s %s -l %s -d '%s'\n", f.Short, f.Long, desc)
		} else {
			fmt.Fprintf(&b, "complete -c webshot -l %s -d '%s'\n", f.Long, desc)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	shell := Shell(args[0])
	return GenerateCompletion(env.Stdout, shell)
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webshot completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash    Bash completion script")
	fmt.Fprintln(w, "  zsh     Zsh completion script")
	fmt.Fprintln(w, "  fish    Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(webshot completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(webshot completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    webshot completion fish > ~/.config/fish/completions/webshot.fish")
}
