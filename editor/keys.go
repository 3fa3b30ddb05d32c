package editor

import (
	"bufio"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Key aliase
const (
	BACKSPACE  = 127 // ASCII backspace
	ARROW_LEFT = iota + 1000
	ARROW_RIGHT
	ARROW_UP
	ARROW_DOWN
	DELETE_KEY
	HOME_KEY
	END_KEY
	PAGE_UP
	PAGE_DOWN
)

// Check if the rune is a control character
func isControl(r rune) bool {
	return r < 32 || r == 127
}

// Convert a character to its control key equivalent
func withControlKey(c rune) rune {
	return rune(int(c) & 0x1f) // 0x1f is 31 in decimal, which is the control character range
}

// readKey decodes the next key from r. Escape sequences for navigation keys
// are folded into the key aliases above, everything else is returned as a
// rune. A lone ESC is recognised by nothing else being buffered behind it,
// since terminals deliver a whole sequence in one write, or by the next
// byte not starting a sequence; those bytes are left for the next read.
func readKey(r *bufio.Reader) (rune, error) {
	c, err := r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("reading keyboard input: %w", err)
	}

	// Handle escape sequences (special keys)
	if c == '\x1b' {
		if r.Buffered() < 2 {
			return '\x1b', nil
		}
		seq, _ := r.Peek(2)
		seq0, seq1 := seq[0], seq[1]
		if seq0 != '[' && seq0 != 'O' {
			// a lone ESC followed by ordinary keys
			return '\x1b', nil
		}
		r.Discard(2)

		switch seq0 {
		case '[':
			if seq1 >= '0' && seq1 <= '9' {
				if r.Buffered() < 1 {
					return '\x1b', nil
				}
				if seq2, _ := r.ReadByte(); seq2 == '~' {
					switch seq1 {
					case '1', '7':
						return HOME_KEY, nil
					case '3':
						return DELETE_KEY, nil
					case '4', '8':
						return END_KEY, nil
					case '5':
						return PAGE_UP, nil
					case '6':
						return PAGE_DOWN, nil
					}
				}
			} else {
				switch seq1 {
				case 'A':
					return ARROW_UP, nil
				case 'B':
					return ARROW_DOWN, nil
				case 'C':
					return ARROW_RIGHT, nil
				case 'D':
					return ARROW_LEFT, nil
				case 'H':
					return HOME_KEY, nil
				case 'F':
					return END_KEY, nil
				}
			}
		case 'O':
			switch seq1 {
			case 'H':
				return HOME_KEY, nil
			case 'F':
				return END_KEY, nil
			}
		}
		return '\x1b', nil // Unknown escape sequence, return escape
	}

	if c < utf8.RuneSelf {
		return rune(c), nil
	}

	// Multi-byte UTF-8: put the lead byte back and decode the whole rune
	if err := r.UnreadByte(); err != nil {
		return 0, err
	}
	ch, _, err := r.ReadRune()
	if err != nil {
		return 0, fmt.Errorf("reading UTF-8 sequence: %w", err)
	}
	if ch == utf8.RuneError {
		return utf8.RuneError, errInvalidUTF8
	}
	return ch, nil
}

var errInvalidUTF8 = errors.New("invalid UTF-8 character")
