package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/stackkit/stack"
	"github.com/spf13/cobra"
)

var (
	newCapacity     int
	newMaxEntries   int
	newEntrySize    int
	newMaxEntrySize int
	newForce        bool
)

func init() {
	cmd := newNewCmd()
	cmd.Flags().IntVar(&newCapacity, "capacity", 0, "Data region size in bytes (0 = default or derived)")
	cmd.Flags().IntVar(&newMaxEntries, "max-entries", 0, "Derive capacity from an entry count (0 = unlimited)")
	cmd.Flags().IntVar(&newEntrySize, "entry-size", 0, "Per-entry payload estimate for --max-entries (0 = default)")
	cmd.Flags().IntVar(&newMaxEntrySize, "max-entry-size", 0, "Reject payloads above this size (0 = unlimited)")
	cmd.Flags().BoolVar(&newForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(cmd)
}

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <image>",
		Short: "Create an empty stack image file",
		Long: `The new command allocates an empty arena and writes it to an image file.

The capacity can be given directly in bytes, or derived from an expected
entry count and per-entry size estimate.

Example:
  stackctl new queue.stk
  stackctl new queue.stk --capacity 4096
  stackctl new queue.stk --max-entries 100 --entry-size 16`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(args)
		},
	}
	return cmd
}

func runNew(args []string) error {
	imagePath := args[0]

	if !newForce {
		if _, err := os.Stat(imagePath); err == nil {
			return fmt.Errorf("file already exists: %s (use --force to overwrite)", imagePath)
		}
	}

	cfg := stack.Config{
		Capacity:         newCapacity,
		MaxEntries:       newMaxEntries,
		DefaultEntrySize: newEntrySize,
		MaxEntrySize:     newMaxEntrySize,
	}

	printVerbose("Allocating arena: %+v\n", cfg)

	s, err := stack.NewWithConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to allocate stack: %w", err)
	}
	defer s.Release()

	if err := s.SaveImage(imagePath); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	if jsonOut {
		result := map[string]interface{}{
			"file":     imagePath,
			"capacity": s.Capacity(),
			"entries":  0,
			"success":  true,
		}
		return printJSON(result)
	}

	printInfo("\nCreated %s:\n", imagePath)
	printInfo("  Capacity: %d bytes\n", s.Capacity())
	printInfo("\n✓ Image written\n")

	return nil
}
