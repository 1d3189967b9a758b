package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompt reads user input line by line. A single Prompt must own the input
// stream: command lines, form fields and confirmations all go through the
// same scanner so no buffered bytes are lost between them.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// ReadLine prints the label and returns the next input line. ok is false once
// the input stream is exhausted.
func (p *Prompt) ReadLine(label string) (line string, ok bool) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// ReadLineDefault behaves like ReadLine but substitutes def when the user
// just presses enter. The default is shown in the label so the user knows
// what an empty answer means.
func (p *Prompt) ReadLineDefault(label, def string) (line string, ok bool) {
	if def == "" {
		return p.ReadLine(label)
	}
	fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	if !p.in.Scan() {
		return "", false
	}
	line = strings.TrimSpace(p.in.Text())
	if line == "" {
		return def, true
	}
	return line, true
}

// Confirm asks a yes/no question and returns true only on an explicit yes.
// Anything else, including end of input, counts as a decline.
func (p *Prompt) Confirm(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	if !p.in.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(p.in.Text())) {
	case "y", "yes":
		return true
	}
	return false
}
