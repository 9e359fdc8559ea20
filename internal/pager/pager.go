// Package pager sends long output through an external pager when it is
// going to a terminal.
package pager

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// Open returns a writer for out. When out is a terminal the writer feeds
// command instead, and Close waits for the pager to exit. Otherwise writes go
// straight to out and Close does nothing.
func Open(command string, out io.Writer) (io.WriteCloser, error) {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nopCloser{out}, nil
	}

	args := strings.Fields(command)
	if len(args) == 0 {
		return nopCloser{out}, nil
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = f
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("error creating pager pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		// Reading without a pager still works, just unscrolled
		slog.Warn("could not start pager, writing directly", "pager", command, "error", err)
		return nopCloser{out}, nil
	}

	return &process{cmd: cmd, stdin: stdin}, nil
}

type process struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

func (p *process) Write(b []byte) (int, error) {
	return p.stdin.Write(b)
}

func (p *process) Close() error {
	closeErr := p.stdin.Close()
	waitErr := p.cmd.Wait()

	// Quitting the pager early is normal
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		waitErr = nil
	}
	if waitErr != nil {
		return fmt.Errorf("pager: %w", waitErr)
	}
	if closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
		return fmt.Errorf("pager: %w", closeErr)
	}
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
