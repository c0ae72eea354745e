package main

import (
	"encoding/hex"
	"fmt"

	"github.com/joshuapare/stackkit/stack"
	"github.com/spf13/cobra"
)

var pushHex bool

func init() {
	cmd := newPushCmd()
	cmd.Flags().BoolVar(&pushHex, "hex", false, "Interpret the payload as a hex string")
	rootCmd.AddCommand(cmd)
}

func newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push <image> <payload>",
		Short: "Push a payload onto a stack image",
		Long: `The push command appends an entry to the top of the stack, mutating the
image file in place.

Example:
  stackctl push queue.stk "job 42"
  stackctl push queue.stk 0102030405 --hex`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(args)
		},
	}
	return cmd
}

func runPush(args []string) error {
	imagePath := args[0]
	payload := []byte(args[1])

	if pushHex {
		decoded, err := hex.DecodeString(args[1])
		if err != nil {
			return fmt.Errorf("failed to parse hex payload: %w", err)
		}
		payload = decoded
	}

	printVerbose("Opening image: %s\n", imagePath)

	im, err := stack.Open(imagePath)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer im.Close()

	s := im.Stack()
	if err := s.Push(payload); err != nil {
		return fmt.Errorf("failed to push %d bytes: %w", len(payload), err)
	}
	if err := im.Sync(); err != nil {
		return fmt.Errorf("failed to sync image: %w", err)
	}

	if jsonOut {
		result := map[string]interface{}{
			"file":    imagePath,
			"pushed":  len(payload),
			"entries": s.EntryCount(),
			"free":    s.FreeSize(),
			"success": true,
		}
		return printJSON(result)
	}

	printInfo("\nPushed %d bytes onto %s\n", len(payload), imagePath)
	printInfo("  Entries: %d\n", s.EntryCount())
	printInfo("  Free: %d bytes\n", s.FreeSize())

	return nil
}
