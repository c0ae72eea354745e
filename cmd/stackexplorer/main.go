package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/stackkit/cmd/stackexplorer/logger"
)

// Populated via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Parse flags first (before positional args)
	args := os.Args[1:]
	debugMode := false

	// Extract --debug/-d flag
	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("stackexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	imagePath := filteredArgs[0]
	logger.Info("starting stackexplorer", "path", imagePath, "debug", debugMode)

	// Check if file exists
	if _, err := os.Stat(imagePath); err != nil {
		logger.Error("image file not found", "path", imagePath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: image file not found: %s\n", imagePath)
		os.Exit(1)
	}

	// Create the TUI model
	m := NewModel(imagePath)

	// Create the Bubbletea program
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	// Run the program
	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	// Clean up resources
	if model, ok := finalModel.(Model); ok {
		if err := model.Close(); err != nil {
			// Log error but don't fail - cleanup is best effort
			logger.Warn("error closing resources", "error", err)
		}
	}

	logger.Info("stackexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: stackexplorer [options] <image-file>\n")
	fmt.Fprintf(os.Stderr, "Try 'stackexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("stackexplorer - Interactive TUI for Stack Arena Images")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  stackexplorer [options] <image-file>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Launches an interactive terminal UI for exploring bounded LIFO arena images.")
	fmt.Println()
	fmt.Println("  Features:")
	fmt.Println("    - Split-pane layout (entry list + hex detail)")
	fmt.Println("    - Keyboard navigation (vim-style keys supported)")
	fmt.Println("    - Full hex dump of every payload")
	fmt.Println("    - Filter entries by text or hex content (/)")
	fmt.Println("    - Jump to an entry by index (Ctrl+G)")
	fmt.Println("    - Copy payloads to the clipboard (c, y)")
	fmt.Println("    - Live arena statistics")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Navigate up/down")
	fmt.Println("    Enter       Open full entry detail")
	fmt.Println("    Tab         Switch between list and detail panes")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.stackexplorer/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  stackexplorer queue.stk")
	fmt.Println("  stackexplorer --debug crashdump.stk")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'stackctl' command instead.")
}
