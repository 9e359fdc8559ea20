// Package prompt provides the blocking terminal interactions used while
// loading and reading: choosing one of several candidates, and waiting for
// the user before the next card is shown.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

var (
	ErrNoInput   = errors.New("no input available")
	ErrNoOptions = errors.New("nothing to select from")
)

// Selector picks one of several labelled options and returns its index.
type Selector interface {
	Select(title string, options []string) (int, error)
}

// Pacer blocks until the user asks to continue.
type Pacer interface {
	Wait(message string) error
}

// Terminal implements Selector and Pacer.
// On an interactive terminal Select shows an arrow-key menu; otherwise both
// read lines from one buffered reader so no piped input is lost between prompts.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	// tty is set when input is an interactive terminal
	tty *os.File
}

// NewTerminal creates a Terminal reading answers from in and writing prompts to out
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.tty = f
	}
	return t
}

// Select asks the user to pick one of options and returns its index
func (t *Terminal) Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}

	if t.tty != nil {
		idx, _, err := t.menu(title, options).Run()
		if err != nil {
			return 0, menuError(err)
		}
		return idx, nil
	}

	return t.selectLine(title, options)
}

// menu builds the arrow-key selection used on interactive terminals
func (t *Terminal) menu(title string, options []string) *promptui.Select {
	return &promptui.Select{
		Label:  strings.TrimSuffix(title, ":"),
		Items:  options,
		Size:   min(len(options), 10),
		Stdin:  t.tty,
		Stdout: nopWriteCloser{t.out},
	}
}

// menuError maps menu failures onto ErrNoInput
func menuError(err error) error {
	switch {
	case errors.Is(err, promptui.ErrEOF):
		return ErrNoInput
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrAbort):
		return fmt.Errorf("%w: %v", ErrNoInput, err)
	default:
		return fmt.Errorf("menu: %w", err)
	}
}

// selectLine lists the options and asks for a 1-based choice until a valid one is given
func (t *Terminal) selectLine(title string, options []string) (int, error) {
	fmt.Fprintln(t.out, color.CyanString(title))
	for i, option := range options {
		fmt.Fprintf(t.out, "  %s %s\n", color.HiWhiteString("%d)", i+1), option)
	}

	for {
		fmt.Fprintf(t.out, "Enter a number [1-%d]: ", len(options))

		line, err := t.readLine()
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > len(options) {
			fmt.Fprintln(t.out, color.YellowString("Please enter a number between 1 and %d.", len(options)))
			continue
		}

		return choice - 1, nil
	}
}

// Wait prints message and consumes one line of input
func (t *Terminal) Wait(message string) error {
	if message != "" {
		fmt.Fprintln(t.out, message)
	}
	_, err := t.readLine()
	return err
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts as an answer
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("%w: %v", ErrNoInput, err)
	}
	return strings.TrimSpace(line), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
