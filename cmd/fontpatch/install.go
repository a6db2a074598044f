package main

import (
	"context"
	"fmt"
	"os"

	"github.com/owmods/fontpatch/internal/fonts"
)

// runInstall handles the `fontpatch install` subcommand
func runInstall(args []string) error {
	// Parse flags
	opts := fonts.Options{}

	for _, arg := range args {
		switch arg {
		case "--help", "-h":
			printInstallHelp()
			return nil
		case "--force":
			opts.Force = true
		case "--dry-run", "-n":
			opts.DryRun = true
		default:
			return fmt.Errorf("unknown option: %s\nRun 'fontpatch install --help' for usage", arg)
		}
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	manager := fonts.NewManager(root)
	result, err := manager.Ensure(context.Background(), opts)
	if result != nil {
		reportEnsure(result)
	}
	return err
}

// reportEnsure prints the outcome of an ensure run, one line per target.
// Warnings go to stderr, status lines to stdout.
func reportEnsure(result *fonts.EnsureResult) {
	for _, warning := range result.ProbeWarnings {
		fmt.Fprintln(os.Stderr, warning)
	}

	for _, status := range result.Targets {
		if status.ReadWarning != "" {
			fmt.Fprintln(os.Stderr, status.ReadWarning)
		}
		if status.Refreshing {
			fmt.Printf("%s: checksum mismatch, refreshing\n", status.Path)
		}
		if line := statusLine(status); line != "" {
			fmt.Println(line)
		}
	}
}

// statusLine renders the stdout line for one target status. Statuses with
// nothing to report render as an empty string.
func statusLine(status fonts.TargetStatus) string {
	switch status.Action {
	case fonts.ActionUpToDate:
		return fmt.Sprintf("%s: up to date", status.Path)
	case fonts.ActionWouldWrite:
		return fmt.Sprintf("Would write font to %s", status.Path)
	case fonts.ActionWrote:
		return fmt.Sprintf("Wrote %s", status.Path)
	default:
		return ""
	}
}

// printInstallHelp prints help for the install command
func printInstallHelp() {
	fmt.Println("Usage: fontpatch install [options]")
	fmt.Println()
	fmt.Println("Download the pinned font and copy it to every path the mods load it from.")
	fmt.Println("An existing copy with the expected checksum is reused instead of downloading.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -n, --dry-run  Show what would be written without modifying any font file")
	fmt.Println("  --force        Redownload and rewrite every target unconditionally")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  fontpatch install            Fetch the font and fill in missing copies")
	fmt.Println("  fontpatch install --dry-run  Preview the writes")
	fmt.Println("  fontpatch install --force    Replace every copy with a fresh download")
	fmt.Println()
}
