package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joshuapare/stackkit/stack"
)

// runScript feeds script to a fresh shell over an in-memory stack and
// returns everything the shell wrote.
func runScript(t *testing.T, script string) string {
	t.Helper()

	s, err := stack.New(256)
	if err != nil {
		t.Fatalf("failed to create stack: %v", err)
	}
	defer s.Release()

	var out bytes.Buffer
	newShell(s, strings.NewReader(script), &out).run()
	return out.String()
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		line     string
		wantWord string
		wantRest string
	}{
		{"push hello", "push", "hello"},
		{"push hello world", "push", "hello world"},
		{"  peek", "peek", ""},
		{"pop", "pop", ""},
		{"push   spaced  out ", "push", "spaced  out "},
		{"\tpush\tvalue", "push", "value"},
		{"", "", ""},
		{"   ", "", ""},
	}

	for _, tt := range tests {
		word, rest := splitCommand(tt.line)
		if word != tt.wantWord || rest != tt.wantRest {
			t.Errorf("splitCommand(%q) = %q, %q; want %q, %q",
				tt.line, word, rest, tt.wantWord, tt.wantRest)
		}
	}
}

func TestShellDispatch(t *testing.T) {
	tests := []struct {
		name           string
		script         string
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "unknown command",
			script:      "xyzzy\nquit\n",
			wantContain: []string{"Unknown command 'xyzzy'. Type HELP for command list."},
		},
		{
			name:        "ambiguous prefix",
			script:      "p\nquit\n",
			wantContain: []string{"Incomplete command 'p'. Type HELP for command list."},
		},
		{
			name:        "ambiguous s prefix",
			script:      "s\nquit\n",
			wantContain: []string{"Incomplete command 's'. Type HELP for command list."},
		},
		{
			name:        "overlong word does not match",
			script:      "quitnow\nquit\n",
			wantContain: []string{"Unknown command 'quitnow'. Type HELP for command list."},
		},
		{
			name:        "unique prefix runs command",
			script:      "pu hello\nquit\n",
			wantContain: []string{"Pushed 'hello' unto the stack"},
		},
		{
			name:        "prefixes are case-insensitive",
			script:      "PUSH loud\nPE\nquit\n",
			wantContain: []string{"Pushed 'loud' unto the stack", "'loud' is at top of stack"},
		},
		{
			name:   "single letter quit",
			script: "q\n",
			wantNotContain: []string{
				"Unknown command",
				"Incomplete command",
			},
		},
		{
			name:   "longer quit prefix",
			script: "qui\n",
			wantNotContain: []string{
				"Unknown command",
				"Incomplete command",
			},
		},
		{
			name:   "uppercase quit",
			script: "Q\n",
			wantNotContain: []string{
				"Unknown command",
				"Incomplete command",
			},
		},
		{
			name:        "size reports entry count",
			script:      "push a\npush b\nsi\nquit\n",
			wantContain: []string{"There are 2 entries in the stack."},
		},
		{
			name:        "show dumps the image",
			script:      "push deadbeef\nsh\nquit\n",
			wantContain: []string{"stack image:", "entries=1", "|deadbeef|"},
		},
		{
			name:        "pop on empty stack",
			script:      "pop\nquit\n",
			wantContain: []string{"Error: Can't pop: 4(EMPTY)"},
		},
		{
			name:        "peek on empty stack",
			script:      "peek\nquit\n",
			wantContain: []string{"Error: Can't peek: 4(EMPTY)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := runScript(t, tt.script)
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestShellSession(t *testing.T) {
	script := "push first\npush second\npeek\npop\npop\nsize\nquit\n"
	output := runScript(t, script)

	// LIFO order: second comes back before first.
	wantInOrder := []string{
		"Pushed 'first' unto the stack",
		"Pushed 'second' unto the stack",
		"'second' is at top of stack",
		"Popped 'second' off the stack",
		"Popped 'first' off the stack",
		"There are 0 entries in the stack.",
	}

	rest := output
	for _, want := range wantInOrder {
		i := strings.Index(rest, want)
		if i < 0 {
			t.Fatalf("output missing %q in order\nGot: %s", want, output)
		}
		rest = rest[i+len(want):]
	}
}

func TestShellHelpTable(t *testing.T) {
	output := runScript(t, "quit\n")

	wantLines := []string{
		"Command     Description",
		"==========  ==========================",
		"help        Show this message",
		"peek        Look at top entry of stack",
		"pop         Remove top entry of stack",
		"push <val>  Add <val> to stack",
		"quit        End program",
		"show        Display stack",
		"size        Display stack size",
	}
	assertContains(t, output, wantLines)

	// help can be invoked again mid-session
	again := runScript(t, "help\nquit\n")
	if strings.Count(again, "Command     Description") != 2 {
		t.Errorf("expected help table twice, got:\n%s", again)
	}
}

func TestShellBlankLinesAndEOF(t *testing.T) {
	// Blank lines reprompt without complaint; EOF ends the session.
	output := runScript(t, "\n\npush x\n")
	assertContains(t, output, []string{"Pushed 'x' unto the stack"})
	assertNotContains(t, output, []string{"Unknown command", "Incomplete command"})

	if !strings.HasSuffix(output, "> ") {
		t.Errorf("expected session to end at a prompt, got:\n%q", output)
	}
}

func TestShellPushError(t *testing.T) {
	s, err := stack.New(8)
	if err != nil {
		t.Fatalf("failed to create stack: %v", err)
	}
	defer s.Release()

	var out bytes.Buffer
	newShell(s, strings.NewReader("push waytoolargeforthis\nquit\n"), &out).run()

	assertContains(t, out.String(), []string{
		"Error: Can't push 'waytoolargeforthis': 1(FULL)",
	})
}
