package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webshot <url> [flags]")
	fmt.Fprintln(w, "       webshot <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  doctor      Diagnose browser and environment problems")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'webshot help capture' for capture flags.")
}

// printCaptureUsage prints usage for a capture invocation.
func printCaptureUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: webshot <url> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Capture a screenshot of a rendered web page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  url    Target page URL (https:// assumed when scheme is missing)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>   Output file; .png, .jpg, .jpeg select the format")
	fmt.Fprintln(w, "                        (default: screenshot.png)")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resolution:")
	fmt.Fprintln(w, "  -w, --width <n>       Explicit viewport width")
	fmt.Fprintln(w, "      --height <n>      Explicit viewport height")
	fmt.Fprintln(w, "      --mobile          375x812, mobile emulation")
	fmt.Fprintln(w, "      --tablet          768x1024, mobile emulation")
	fmt.Fprintln(w, "      --hd              1366x768")
	fmt.Fprintln(w, "      --fhd             1920x1080")
	fmt.Fprintln(w, "      --qhd             2560x1440")
	fmt.Fprintln(w, "      --uhd             3840x2160")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Explicit width/height override a preset when both are given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Capture:")
	fmt.Fprintln(w, "      --no-full-page    Capture viewport only instead of full page")
	fmt.Fprintln(w, "      --wait <s>        Additional wait after page load (default: 3)")
	fmt.Fprintln(w, "      --dpi <f>         Device pixel ratio multiplier (default: 1.0)")
	fmt.Fprintln(w, "      --quality <n>     JPEG quality 1-100 (default: 95; ignored for PNG)")
	fmt.Fprintln(w, "  -t, --timeout <d>     Page load timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Authentication (Grafana-style form login):")
	fmt.Fprintln(w, "      --username <s>    Login username")
	fmt.Fprintln(w, "      --password <s>    Login password")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show detailed progress")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "capture":
		printCaptureUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: webshot doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Diagnose Chrome installation and environment problems.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: webshot version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: webshot help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
