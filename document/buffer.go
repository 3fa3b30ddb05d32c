package document

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const lineEnding = "\n"

// Buffer is the in-memory document: an ordered list of lines, the file it
// was read from and whether it has unsaved changes.
type Buffer struct {
	rows     []*Line
	filename string
	dirty    bool
}

// New returns an empty, unnamed buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromLines builds a clean, unnamed buffer holding the given lines.
func FromLines(lines ...string) *Buffer {
	b := &Buffer{rows: make([]*Line, 0, len(lines))}
	for _, s := range lines {
		b.rows = append(b.rows, NewLine(s))
	}
	return b
}

// Open reads filename into a new buffer, one Line per line of the file.
// The line terminator, and a carriage return before it, are not stored.
func Open(filename string) (*Buffer, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	defer file.Close()

	rows, err := readLines(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return &Buffer{rows: rows, filename: filename}, nil
}

func readLines(r io.Reader) ([]*Line, error) {
	var rows []*Line
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			rows = append(rows, NewLine(line))
		}
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// FileName returns the path the buffer saves to, or "" when unnamed.
func (b *Buffer) FileName() string {
	return b.filename
}

// SetFileName associates the buffer with a path for later saves.
func (b *Buffer) SetFileName(filename string) {
	b.filename = filename
}

// Row returns the line at index, if there is one.
func (b *Buffer) Row(index int) (*Line, bool) {
	if index < 0 || index >= len(b.rows) {
		return nil, false
	}
	return b.rows[index], true
}

// Len returns the number of rows.
func (b *Buffer) Len() int {
	return len(b.rows)
}

// IsEmpty reports whether the buffer has no rows.
func (b *Buffer) IsEmpty() bool {
	return len(b.rows) == 0
}

// IsDirty reports whether the buffer changed since it was opened or saved.
func (b *Buffer) IsDirty() bool {
	return b.dirty
}

// Insert puts r at pos. pos.Y may be one past the last row, which appends
// a row. A '\n' splits the row at pos.X.
func (b *Buffer) Insert(pos Position, r rune) {
	if pos.Y < 0 || pos.Y > len(b.rows) {
		return
	}
	b.dirty = true
	if r == '\n' {
		b.insertNewline(pos)
		return
	}
	if pos.Y == len(b.rows) {
		row := &Line{}
		row.Insert(0, r)
		b.rows = append(b.rows, row)
		return
	}
	b.rows[pos.Y].Insert(pos.X, r)
}

func (b *Buffer) insertNewline(pos Position) {
	if pos.Y == len(b.rows) {
		b.rows = append(b.rows, &Line{})
		return
	}
	rest := b.rows[pos.Y].Split(pos.X)
	b.rows = append(b.rows, nil)
	copy(b.rows[pos.Y+2:], b.rows[pos.Y+1:])
	b.rows[pos.Y+1] = rest
}

// Delete removes the grapheme at pos. At the end of a row that is not the
// last one, the following row is joined onto it instead.
func (b *Buffer) Delete(pos Position) {
	if pos.Y < 0 || pos.Y >= len(b.rows) {
		return
	}
	row := b.rows[pos.Y]
	if pos.X == row.Len() && pos.Y < len(b.rows)-1 {
		next := b.rows[pos.Y+1]
		b.rows = append(b.rows[:pos.Y+1], b.rows[pos.Y+2:]...)
		row.Append(next)
		b.dirty = true
		return
	}
	// nothing to remove past the end of the last row
	if pos.X < 0 || pos.X >= row.Len() {
		return
	}
	row.Delete(pos.X)
	b.dirty = true
}

// String returns the file representation: every row followed by a line
// terminator.
func (b *Buffer) String() string {
	var buf strings.Builder

	totalSize := 0
	for _, row := range b.rows {
		totalSize += row.size + len(lineEnding)
	}
	buf.Grow(totalSize)

	for _, row := range b.rows {
		for _, c := range row.clusters {
			buf.WriteString(c)
		}
		buf.WriteString(lineEnding)
	}
	return buf.String()
}

// Save writes the buffer to its file and returns the number of bytes
// written. An unnamed buffer is not written and reports success. The dirty
// flag is only cleared when the whole file was written.
func (b *Buffer) Save() (int, error) {
	if b.filename == "" {
		return 0, nil
	}

	buf := b.String()
	length := len(buf)

	file, err := os.OpenFile(b.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", b.filename, err)
	}
	defer file.Close()

	if err := file.Truncate(int64(length)); err != nil {
		return 0, fmt.Errorf("truncating %s: %w", b.filename, err)
	}

	written, err := file.WriteString(buf)
	if err != nil {
		return written, fmt.Errorf("writing %s: %w", b.filename, err)
	}
	if written != length {
		return written, fmt.Errorf("writing %s: %w (%d/%d bytes)", b.filename, io.ErrShortWrite, written, length)
	}

	b.dirty = false
	return written, nil
}

// Find searches for query starting at from. Forward scans the rest of row
// from.Y and then the following rows; Backward scans row from.Y before
// from.X and then the preceding rows. The first row with a match wins.
// A backward search from the append row starts at the end of the last row.
func (b *Buffer) Find(query string, from Position, dir SearchDirection) (Position, bool) {
	if dir == Backward && from.Y == len(b.rows) && from.Y > 0 {
		from = Position{X: b.rows[from.Y-1].Len(), Y: from.Y - 1}
	}
	if from.Y < 0 || from.Y >= len(b.rows) {
		return Position{}, false
	}

	start := from.X
	if dir == Forward {
		for y := from.Y; y < len(b.rows); y++ {
			if x, ok := b.rows[y].Find(query, start, dir); ok {
				return Position{X: x, Y: y}, true
			}
			start = 0
		}
		return Position{}, false
	}

	start = min(start, b.rows[from.Y].Len())
	for y := from.Y; y >= 0; y-- {
		if x, ok := b.rows[y].Find(query, start, dir); ok {
			return Position{X: x, Y: y}, true
		}
		if y > 0 {
			start = b.rows[y-1].Len()
		}
	}
	return Position{}, false
}
