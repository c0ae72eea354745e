package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joshuapare/stackkit/stack"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newShellCmd())
}

func newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell [image]",
		Short: "Start an interactive stack shell",
		Long: `The shell command starts an interactive read-eval-print loop. With no
arguments it runs against a fresh in-memory stack that is discarded on
exit; with an image path it mutates the file in place and syncs it when
the session ends.

Commands may be abbreviated to any unique prefix, so "pu hello" pushes
and "q" quits.

Example:
  stackctl shell
  stackctl shell queue.stk`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(args)
		},
	}
	return cmd
}

func runShell(args []string) error {
	if len(args) == 1 {
		im, err := stack.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open image: %w", err)
		}
		defer im.Close()

		newShell(im.Stack(), os.Stdin, os.Stdout).run()
		if err := im.Sync(); err != nil {
			return fmt.Errorf("failed to sync image: %w", err)
		}
		return nil
	}

	s, err := stack.New(stack.DefaultCapacity)
	if err != nil {
		fmt.Println("Sorry, I can't create a stack for you.")
		return err
	}
	defer s.Release()

	newShell(s, os.Stdin, os.Stdout).run()
	return nil
}

// shellCommand is one row of the shell's dispatch table. fn receives the
// rest of the input line after the command word and reports whether the
// session should end.
type shellCommand struct {
	name string
	args string
	help string
	fn   func(*shell, string) bool
}

// shellCommands and the derived column widths are assigned in init rather
// than in var initializers: cmdHelp reads all three, and a var initializer
// referring to it would form an initialization cycle.
var shellCommands []shellCommand

var shellNameWidth, shellHelpWidth int

func init() {
	shellCommands = []shellCommand{
		{"help", "", "Show this message", (*shell).cmdHelp},
		{"peek", "", "Look at top entry of stack", (*shell).cmdPeek},
		{"pop", "", "Remove top entry of stack", (*shell).cmdPop},
		{"push", "<val>", "Add <val> to stack", (*shell).cmdPush},
		{"quit", "", "End program", (*shell).cmdQuit},
		{"show", "", "Display stack", (*shell).cmdShow},
		{"size", "", "Display stack size", (*shell).cmdSize},
	}
	shellNameWidth, shellHelpWidth = shellTableWidths()
}

func shellTableWidths() (name, help int) {
	for _, c := range shellCommands {
		n := len(c.name)
		if c.args != "" {
			n += 1 + len(c.args)
		}
		if n > name {
			name = n
		}
		if len(c.help) > help {
			help = len(c.help)
		}
	}
	return name, help
}

type shell struct {
	s   *stack.Stack
	in  *bufio.Scanner
	out io.Writer
}

func newShell(s *stack.Stack, in io.Reader, out io.Writer) *shell {
	return &shell{s: s, in: bufio.NewScanner(in), out: out}
}

// run prints the command table and loops until quit or EOF.
func (sh *shell) run() {
	sh.cmdHelp("")
	for {
		fmt.Fprint(sh.out, "> ")
		if !sh.in.Scan() {
			return
		}
		word, rest := splitCommand(sh.in.Text())
		if word == "" {
			continue
		}
		if sh.dispatch(word, rest) {
			return
		}
	}
}

// splitCommand separates the command word from its argument text. The
// argument keeps its internal spacing verbatim.
func splitCommand(line string) (word, rest string) {
	line = strings.TrimLeft(line, " \t")
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeft(line[i:], " \t")
}

// dispatch resolves word against the command table by case-insensitive
// prefix. Exactly one match runs the command; zero or several print a
// diagnostic and reprompt.
func (sh *shell) dispatch(word, rest string) bool {
	var match *shellCommand
	matched := 0
	for i := range shellCommands {
		c := &shellCommands[i]
		if len(word) <= len(c.name) && strings.EqualFold(c.name[:len(word)], word) {
			match = c
			matched++
		}
	}
	switch matched {
	case 0:
		fmt.Fprintf(sh.out, "Unknown command '%s'. Type HELP for command list.\n", word)
	case 1:
		return match.fn(sh, rest)
	default:
		fmt.Fprintf(sh.out, "Incomplete command '%s'. Type HELP for command list.\n", word)
	}
	return false
}

func (sh *shell) cmdHelp(string) bool {
	fmt.Fprintf(sh.out, "%-*s  %s\n", shellNameWidth, "Command", "Description")
	fmt.Fprintf(sh.out, "%s  %s\n",
		strings.Repeat("=", shellNameWidth), strings.Repeat("=", shellHelpWidth))
	for _, c := range shellCommands {
		name := c.name
		if c.args != "" {
			name += " " + c.args
		}
		fmt.Fprintf(sh.out, "%-*s  %s\n", shellNameWidth, name, c.help)
	}
	return false
}

func (sh *shell) cmdPeek(string) bool {
	payload, err := sh.s.PeekBytes()
	if err != nil {
		code := stack.CodeOf(err)
		fmt.Fprintf(sh.out, "Error: Can't peek: %d(%s)\n", code, code)
		return false
	}
	fmt.Fprintf(sh.out, "'%s' is at top of stack\n", payload)
	return false
}

func (sh *shell) cmdPop(string) bool {
	payload, err := sh.s.PopBytes()
	if err != nil {
		code := stack.CodeOf(err)
		fmt.Fprintf(sh.out, "Error: Can't pop: %d(%s)\n", code, code)
		return false
	}
	fmt.Fprintf(sh.out, "Popped '%s' off the stack\n", payload)
	return false
}

func (sh *shell) cmdPush(val string) bool {
	if err := sh.s.Push([]byte(val)); err != nil {
		code := stack.CodeOf(err)
		fmt.Fprintf(sh.out, "Error: Can't push '%s': %d(%s)\n", val, code, code)
		return false
	}
	fmt.Fprintf(sh.out, "Pushed '%s' unto the stack\n", val)
	return false
}

func (sh *shell) cmdQuit(string) bool {
	return true
}

func (sh *shell) cmdShow(string) bool {
	sh.s.Dump(sh.out)
	return false
}

func (sh *shell) cmdSize(string) bool {
	fmt.Fprintf(sh.out, "There are %d entries in the stack.\n", sh.s.EntryCount())
	return false
}
