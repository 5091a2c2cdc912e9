// Package confirmations provides UI implementations for confirmation dialogs.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MsgOverwritePrompt is shown before overwriting an occupied destination
const MsgOverwritePrompt = "Overwrite %s? [y/N] "

// Prompter asks for overwrite confirmation on a console
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter over arbitrary streams
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm prompts for path and reads one line. Only "y" (any case, spaces
// trimmed) is affirmative; end of input counts as no.
func (p *Prompter) Confirm(path string) (bool, error) {
	if _, err := fmt.Fprintf(p.out, MsgOverwritePrompt, path); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	return strings.ToLower(strings.TrimSpace(line)) == "y", nil
}
