package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	// Handle subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version":
			fmt.Printf("fontpatch %s\n", Version)
			return
		case "install":
			// Handle fontpatch install subcommand
			if err := runInstall(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "verify":
			// Handle fontpatch verify subcommand
			if err := runVerify(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "help", "--help", "-h":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n", os.Args[1])
			fmt.Fprintln(os.Stderr, "Run 'fontpatch --help' for usage")
			os.Exit(1)
		}
	}

	// Default: show help
	printUsage()
}

// printUsage prints the top-level usage banner
func printUsage() {
	fmt.Println("fontpatch keeps the Cyrillic-capable font for the bundled OWML mods in place.")
	fmt.Println()
	fmt.Println("The font binary is not checked into the repository; fontpatch downloads the")
	fmt.Println("pinned build on demand and copies it everywhere the mods expect it.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  fontpatch --version          Show version information")
	fmt.Println("  fontpatch install [options]  Fetch the font and distribute it to every target")
	fmt.Println("  fontpatch verify             Check distributed fonts for required glyph coverage")
	fmt.Println()
	fmt.Println("Run 'fontpatch <command> --help' for command options.")
}
