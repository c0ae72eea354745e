package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/stackkit/stack"
	"github.com/joshuapare/stackkit/stack/printer"
	"github.com/spf13/cobra"
)

var (
	dumpEntry      int
	dumpMaxBytes   int
	dumpNoPayloads bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpEntry, "entry", -1, "Dump a single entry by index from the top (-1 = all)")
	cmd.Flags().IntVar(&dumpMaxBytes, "max-bytes", printer.DefaultMaxPayloadBytes, "Payload bytes to display per entry (0 = no limit)")
	cmd.Flags().BoolVar(&dumpNoPayloads, "no-payloads", false, "Omit payload bytes from the listing")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <image>",
		Short: "Print the entries of a stack image",
		Long: `The dump command prints a stack image's header summary and its entries,
top first, with payload bytes shown as hex and a text preview.

Example:
  stackctl dump queue.stk
  stackctl dump queue.stk --entry 0
  stackctl dump queue.stk --json --max-bytes 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	imagePath := args[0]

	printVerbose("Loading image: %s\n", imagePath)

	s, err := stack.LoadImage(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	defer s.Release()

	opts := printer.DefaultOptions()
	opts.MaxPayloadBytes = dumpMaxBytes
	opts.ShowPayloads = !dumpNoPayloads
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	p := printer.New(s.Bytes(), os.Stdout, opts)
	if dumpEntry >= 0 {
		return p.PrintEntry(dumpEntry)
	}
	return p.Print()
}
