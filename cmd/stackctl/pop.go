package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/joshuapare/stackkit/stack"
	"github.com/spf13/cobra"
)

var popHex bool

func init() {
	cmd := newPopCmd()
	cmd.Flags().BoolVar(&popHex, "hex", false, "Print the payload as a hex string")
	rootCmd.AddCommand(cmd)
}

func newPopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pop <image>",
		Short: "Pop the top entry off a stack image",
		Long: `The pop command removes the top entry from the stack, mutates the image
file in place, and writes the payload to stdout.

Example:
  stackctl pop queue.stk
  stackctl pop queue.stk --hex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPop(args)
		},
	}
	return cmd
}

func runPop(args []string) error {
	imagePath := args[0]

	printVerbose("Opening image: %s\n", imagePath)

	im, err := stack.Open(imagePath)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer im.Close()

	s := im.Stack()
	payload, err := s.PopBytes()
	if err != nil {
		return fmt.Errorf("failed to pop: %w", err)
	}
	if err := im.Sync(); err != nil {
		return fmt.Errorf("failed to sync image: %w", err)
	}

	if jsonOut {
		result := map[string]interface{}{
			"file":    imagePath,
			"size":    len(payload),
			"data":    hex.EncodeToString(payload),
			"entries": s.EntryCount(),
			"success": true,
		}
		return printJSON(result)
	}

	if popHex {
		fmt.Println(hex.EncodeToString(payload))
		return nil
	}
	os.Stdout.Write(payload)
	fmt.Println()
	return nil
}
