package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/stackkit/stack/verify"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <image>",
		Short: "Verify the structural invariants of a stack image",
		Long: `The verify command checks a stack image for structural integrity:
header fields, checksum, the packed entry chain, and the file size.

Example:
  stackctl verify queue.stk
  stackctl verify queue.stk --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

func runVerify(args []string) error {
	imagePath := args[0]

	printVerbose("Verifying image: %s\n", imagePath)

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	checks := []struct {
		name string
		fn   func([]byte) error
	}{
		{"header", verify.Header},
		{"checksum", verify.Checksum},
		{"entry chain", verify.EntryChain},
		{"image size", verify.ImageSize},
	}

	result := map[string]interface{}{
		"file":  imagePath,
		"valid": true,
	}
	var firstErr error

	if !jsonOut {
		printInfo("\nVerifying %s...\n\n", imagePath)
	}

	for _, check := range checks {
		err := check.fn(data)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		if jsonOut {
			if err != nil {
				result["valid"] = false
				result[check.name] = err.Error()
			} else {
				result[check.name] = "ok"
			}
			continue
		}
		if err != nil {
			printInfo("  ✗ %s: %v\n", check.name, err)
		} else {
			printInfo("  ✓ %s\n", check.name)
		}
	}

	if jsonOut {
		if printErr := printJSON(result); printErr != nil {
			return printErr
		}
		return firstErr
	}

	if firstErr != nil {
		printInfo("\nResult: ✗ INVALID\n")
		return firstErr
	}
	printInfo("\nResult: ✓ VALID\n")

	return nil
}
