package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/joshuapare/stackkit/stack"
	"github.com/spf13/cobra"
)

var peekHex bool

func init() {
	cmd := newPeekCmd()
	cmd.Flags().BoolVar(&peekHex, "hex", false, "Print the payload as a hex string")
	rootCmd.AddCommand(cmd)
}

func newPeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peek <image>",
		Short: "Print the top entry of a stack image without removing it",
		Long: `The peek command reads the top entry from the stack and writes the
payload to stdout. The image is not modified.

Example:
  stackctl peek queue.stk
  stackctl peek queue.stk --hex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeek(args)
		},
	}
	return cmd
}

func runPeek(args []string) error {
	imagePath := args[0]

	printVerbose("Loading image: %s\n", imagePath)

	s, err := stack.LoadImage(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	defer s.Release()

	payload, err := s.PeekBytes()
	if err != nil {
		return fmt.Errorf("failed to peek: %w", err)
	}

	if jsonOut {
		result := map[string]interface{}{
			"file":    imagePath,
			"size":    len(payload),
			"data":    hex.EncodeToString(payload),
			"entries": s.EntryCount(),
		}
		return printJSON(result)
	}

	if peekHex {
		fmt.Println(hex.EncodeToString(payload))
		return nil
	}
	os.Stdout.Write(payload)
	fmt.Println()
	return nil
}
