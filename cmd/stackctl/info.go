package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/stackkit/stack"
	"github.com/joshuapare/stackkit/stack/verify"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <image>",
		Short: "Validate a stack image and report basic metadata",
		Long: `The info command validates a stack image file and displays basic
metadata including file size, capacity, occupancy, and entry count.

Example:
  stackctl info queue.stk
  stackctl info queue.stk --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	imagePath := args[0]

	printVerbose("Loading image: %s\n", imagePath)

	s, err := stack.LoadImage(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	defer s.Release()

	verifyErr := verify.AllInvariants(s.Bytes())

	if jsonOut {
		result := map[string]interface{}{
			"file":     imagePath,
			"version":  s.Version(),
			"capacity": s.Capacity(),
			"used":     s.UsedSize(),
			"free":     s.FreeSize(),
			"entries":  s.EntryCount(),
			"valid":    verifyErr == nil,
		}
		if verifyErr != nil {
			result["error"] = verifyErr.Error()
		}
		return printJSON(result)
	}

	printInfo("\nStack Information:\n")
	printInfo("  File: %s\n", imagePath)

	if stat, err := os.Stat(imagePath); err == nil {
		size := stat.Size()
		if size < 1024 {
			printInfo("  Size: %d bytes\n", size)
		} else if size < 1024*1024 {
			printInfo("  Size: %.1f KB\n", float64(size)/1024)
		} else {
			printInfo("  Size: %.1f MB\n", float64(size)/(1024*1024))
		}
	}

	printInfo("  Version: %d\n", s.Version())
	printInfo("  Capacity: %d bytes\n", s.Capacity())
	printInfo("  Used: %d bytes\n", s.UsedSize())
	printInfo("  Free: %d bytes\n", s.FreeSize())
	printInfo("  Entries: %d\n", s.EntryCount())

	printInfo("\nValidation:\n")
	if verifyErr != nil {
		printInfo("  ✗ %v\n", verifyErr)
		return verifyErr
	}
	printInfo("  ✓ Structure valid\n")
	printInfo("  ✓ No corruption detected\n")

	return nil
}
