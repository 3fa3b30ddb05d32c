package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal owns the input and output streams of the editor and the saved
// terminal state while raw mode is active. It is the only place that
// touches the tty; everything else draws through Write.
type Terminal struct {
	inFd, outFd   int
	reader        *bufio.Reader
	out           io.Writer
	originalState *term.State

	// fixed size used when the streams are not a terminal
	rows, cols int
}

// NewTerminal creates a Terminal bound to stdin and stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		inFd:   int(os.Stdin.Fd()),
		outFd:  int(os.Stdout.Fd()),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// NewVirtualTerminal creates a Terminal that reads keys from in, draws to
// out and reports a fixed size.
func NewVirtualTerminal(in io.Reader, out io.Writer, rows, cols int) *Terminal {
	return &Terminal{
		inFd:   -1,
		outFd:  -1,
		reader: bufio.NewReader(in),
		out:    out,
		rows:   rows,
		cols:   cols,
	}
}

// Enable raw mode for terminal input.
// This allows us to read every input key and positions the cursor freely
func (t *Terminal) EnableRawMode() error {
	if t.inFd < 0 || !term.IsTerminal(t.inFd) {
		return errors.New("not running in a terminal")
	}

	state, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enabling terminal raw mode: %w", err)
	}
	t.originalState = state
	return nil
}

// Restore the original terminal state, disabling raw mode. Safe to call
// more than once.
func (t *Terminal) Restore() {
	if t.originalState != nil {
		term.Restore(t.inFd, t.originalState)
		t.originalState = nil // Prevent multiple restoration attempts
	}
}

// Size returns the terminal size in rows and columns.
func (t *Terminal) Size() (int, int, error) {
	if t.outFd < 0 {
		return t.rows, t.cols, nil
	}
	cols, rows, err := term.GetSize(t.outFd)
	if err != nil {
		return 0, 0, fmt.Errorf("getting window size: %w", err)
	}
	return rows, cols, nil
}

// ReadKey blocks until the next key is available.
func (t *Terminal) ReadKey() (rune, error) {
	return readKey(t.reader)
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Clear wipes the screen and homes the cursor.
func (t *Terminal) Clear() {
	t.Write([]byte(CLEAR_SCREEN + CURSOR_HOME))
}
