package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads interactive input line by line. Invalid input never
// crashes a tool, the contract is message plus reprompt.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(r),
		out: w,
	}
}

// Line prints the prompt and reads one trimmed line. ok is false on EOF.
func (p *Prompter) Line(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// NonEmpty reprompts until the user enters something.
func (p *Prompter) NonEmpty(prompt string) (string, bool) {
	for {
		value, ok := p.Line(prompt)
		if !ok {
			return "", false
		}
		if value != "" {
			return value, true
		}
		fmt.Fprintln(p.out, "Input cannot be empty. Please try again.")
	}
}

// Int reprompts until the user enters a valid integer.
func (p *Prompter) Int(prompt string) (int, bool) {
	for {
		value, ok := p.Line(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a whole number.")
			continue
		}
		return n, true
	}
}

// IntRange reprompts until the user enters an integer within [lo, hi].
func (p *Prompter) IntRange(prompt string, lo, hi int) (int, bool) {
	for {
		n, ok := p.Int(prompt)
		if !ok {
			return 0, false
		}
		if n < lo || n > hi {
			fmt.Fprintf(p.out, "Please enter a number between %d and %d.\n", lo, hi)
			continue
		}
		return n, true
	}
}
