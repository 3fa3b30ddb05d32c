package editor

import "github.com/hnnsb/hecto/document"

// MoveCursor returns the position reached from pos by a navigation key.
// The cursor may sit one row past the end of the document, where new text
// is appended. After any move the column is clamped to the target row.
func MoveCursor(key rune, pos document.Position, doc *document.Buffer, viewportHeight int) document.Position {
	rowLen := func(y int) int {
		if row, ok := doc.Row(y); ok {
			return row.Len()
		}
		return 0
	}

	x, y := pos.X, min(max(pos.Y, 0), doc.Len())

	switch key {
	case ARROW_UP:
		if y > 0 {
			y--
		}
	case ARROW_DOWN:
		if y < doc.Len() {
			y++
		}
	case ARROW_LEFT:
		if x > 0 {
			x--
		} else if y > 0 {
			y--
			x = rowLen(y)
		}
	case ARROW_RIGHT:
		if x < rowLen(y) {
			x++
		} else if y+1 < doc.Len() {
			y++
			x = 0
		}
	case PAGE_UP:
		y = max(y-viewportHeight, 0)
	case PAGE_DOWN:
		y = min(y+viewportHeight, doc.Len())
	case HOME_KEY:
		x = 0
	case END_KEY:
		x = rowLen(y)
	}

	x = min(max(x, 0), rowLen(y))
	return document.Position{X: x, Y: y}
}

// Scroll returns the smallest change of offset that keeps cursor inside a
// width x height window.
func Scroll(cursor, offset document.Position, width, height int) document.Position {
	if cursor.Y < offset.Y {
		offset.Y = cursor.Y
	} else if cursor.Y >= offset.Y+height {
		offset.Y = cursor.Y - height + 1
	}

	if cursor.X < offset.X {
		offset.X = cursor.X
	} else if cursor.X >= offset.X+width {
		offset.X = cursor.X - width + 1
	}
	return offset
}
