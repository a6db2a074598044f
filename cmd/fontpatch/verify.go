package main

import (
	"context"
	"fmt"
	"os"

	"github.com/owmods/fontpatch/internal/fonts"
	"github.com/owmods/fontpatch/internal/glyphs"
)

// runVerify handles the `fontpatch verify` subcommand
func runVerify(args []string) error {
	// Parse flags
	for _, arg := range args {
		switch arg {
		case "--help", "-h":
			printVerifyHelp()
			return nil
		default:
			return fmt.Errorf("unknown option: %s\nRun 'fontpatch verify --help' for usage", arg)
		}
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	// Step 1: Make sure every target holds a current copy
	manager := fonts.NewManager(root)
	result, err := manager.Ensure(context.Background(), fonts.Options{})
	if result != nil {
		reportEnsure(result)
	}
	if err != nil {
		return err
	}

	// Step 2: Collect the characters the mods actually render
	auditor := glyphs.NewAuditor(root)
	required, err := auditor.RequiredCharacters()
	if err != nil {
		return err
	}

	// Step 3: Audit every distributed font
	if err := auditor.Verify(required); err != nil {
		return err
	}

	fmt.Println("All fonts include the required Cyrillic glyphs.")
	return nil
}

// printVerifyHelp prints help for the verify command
func printVerifyHelp() {
	fmt.Println("Usage: fontpatch verify")
	fmt.Println()
	fmt.Println("Check that every distributed font matches the pinned checksum and maps a")
	fmt.Println("glyph for each Cyrillic character the bundled mods use. Missing or stale")
	fmt.Println("copies are fetched first, exactly as 'fontpatch install' would.")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -h, --help  Show this help message")
	fmt.Println()
	fmt.Println("Exit codes:")
	fmt.Println("  0  Every font covers the required characters")
	fmt.Println("  1  A font is missing, stale, or lacks required glyphs")
	fmt.Println()
}
