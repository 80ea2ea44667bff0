// Package prompt implements the interactive reprompt loops: ask once,
// then nudge with a short continuation marker until the input parses.
// Quit and help words work at every prompt. Quitting is a control
// signal, not a validation failure, so it travels as ErrQuit rather
// than a coded error.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KylieKat17/kelvin-stardate/internal/errcode"
)

// ErrQuit reports that the user asked to leave, by quit word or end of
// input. Callers unwind to their exit path instead of reprompting.
var ErrQuit = errors.New("quit requested")

// errReprompt restarts the loop after the help screen returns.
var errReprompt = errors.New("reprompt")

const continuation = " > "

// Prompter reads answers line by line. Help runs when the user types a
// help word and may itself return ErrQuit. PrintErr renders validation
// errors between attempts; it defaults to plain printing.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer

	Help     func() error
	PrintErr func(error)
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *Prompter) line(promptText string) (string, error) {
	fmt.Fprint(p.out, promptText)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrQuit
	}
	return p.scanner.Text(), nil
}

// Raw reads one line with none of the quit/help/empty handling. Menus
// that give those tokens their own meaning use it directly.
func (p *Prompter) Raw(promptText string) (string, error) {
	return p.line(promptText)
}

func (p *Prompter) printErr(err error) {
	if p.PrintErr != nil {
		p.PrintErr(err)
		return
	}
	fmt.Fprintln(p.out, err)
}

// check applies the global quit/help/empty rules to one raw answer.
func (p *Prompter) check(raw string) error {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "q", "-q", "/q", "quit", "exit":
		return ErrQuit
	case "h", "/h", "-h", "--help", "-help", "help", "/help":
		if p.Help != nil {
			if err := p.Help(); err != nil {
				return err
			}
		}
		return errReprompt
	case "":
		return errcode.New(errcode.CodeEmptyInput)
	}
	return nil
}

// Until shows promptText once, then keeps reading until parse accepts
// an answer. Validation errors print and the loop continues with the
// continuation marker.
func Until[T any](p *Prompter, promptText string, parse func(string) (T, error)) (T, error) {
	var zero T
	text := promptText
	for {
		raw, err := p.line(text)
		if err != nil {
			return zero, err
		}
		text = continuation

		switch err := p.check(raw); {
		case errors.Is(err, errReprompt):
			continue
		case errors.Is(err, ErrQuit):
			return zero, ErrQuit
		case err != nil:
			p.printErr(err)
			continue
		}

		v, err := parse(raw)
		if err != nil {
			p.printErr(err)
			continue
		}
		return v, nil
	}
}

// UntilDefault is Until with an empty-answer escape: pressing Enter
// alone yields def instead of an empty-input error.
func UntilDefault[T any](p *Prompter, promptText string, def T, parse func(string) (T, error)) (T, error) {
	var zero T
	text := promptText
	for {
		raw, err := p.line(text)
		if err != nil {
			return zero, err
		}
		text = continuation

		if strings.TrimSpace(raw) == "" {
			return def, nil
		}

		switch err := p.check(raw); {
		case errors.Is(err, errReprompt):
			continue
		case errors.Is(err, ErrQuit):
			return zero, ErrQuit
		case err != nil:
			p.printErr(err)
			continue
		}

		v, err := parse(raw)
		if err != nil {
			p.printErr(err)
			continue
		}
		return v, nil
	}
}

// MenuChoice keeps asking until the trimmed answer matches one of the
// valid options and returns it.
func (p *Prompter) MenuChoice(promptText string, valid ...string) (string, error) {
	return Until(p, promptText, func(raw string) (string, error) {
		s := strings.TrimSpace(raw)
		for _, v := range valid {
			if s == v {
				return s, nil
			}
		}
		return "", errcode.Newf(errcode.CodeMenuChoice, "Invalid selection. Please select 1 or 2.")
	})
}

// YesNo keeps asking until the answer reads as yes or no.
func (p *Prompter) YesNo(promptText string) (bool, error) {
	return Until(p, promptText, func(raw string) (bool, error) {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		return false, errcode.Newf(errcode.CodeYesNo, "Please enter y/n (or yes/no).")
	})
}
