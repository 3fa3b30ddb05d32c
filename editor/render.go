package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

/*** append buffer ***/

type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s []byte) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendString(s string) {
	ab.b = append(ab.b, s...)
}

/*** output ***/

// renderText makes a row slice safe to print. Control characters are shown
// as a single inverted letter so that one grapheme stays one cell.
func renderText(text string) string {
	if !strings.ContainsFunc(text, isControl) {
		return text
	}
	var sb strings.Builder
	for _, r := range text {
		switch {
		case r == '\t':
			sb.WriteByte(' ')
		case r == 127:
			sb.WriteString(COLORS_INVERT + "?" + COLORS_RESET)
		case isControl(r):
			sb.WriteString(COLORS_INVERT + string(r+'@') + COLORS_RESET)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func (e *Editor) drawWelcome(abuf *appendBuffer) {
	welcome := "HECTO editor -- version " + HECTO_VERSION
	welcome = runewidth.Truncate(welcome, e.screenCols, "")
	padding := (e.screenCols - runewidth.StringWidth(welcome)) / 2
	if padding > 0 {
		abuf.appendString("~")
		padding--
	}
	abuf.appendString(strings.Repeat(" ", padding))
	abuf.appendString(welcome)
}

func (e *Editor) DrawRows(abuf *appendBuffer) {
	for y := range e.screenRows {
		filerow := y + e.offset.Y
		row, ok := e.doc.Row(filerow)
		switch {
		case ok:
			text := row.Fit(e.offset.X, e.screenCols)
			selected := e.mode == EXPLORER_MODE && filerow == e.cursor.Y
			if selected {
				abuf.appendString(COLORS_INVERT)
			}
			abuf.appendString(renderText(text))
			if selected {
				abuf.appendString(COLORS_RESET)
			}
		case e.doc.IsEmpty() && e.doc.FileName() == "" && e.cfg.ShowWelcome && y == e.screenRows/3:
			e.drawWelcome(abuf)
		default:
			abuf.appendString("~")
		}

		abuf.appendString(CLEAR_LINE) // Clear line
		abuf.appendString("\r\n")
	}
}

func (e *Editor) DrawStatusBar(abuf *appendBuffer) {
	abuf.appendString(COLORS_INVERT) // Invert colors for status bar

	filename := "[No Name]"
	if e.doc.FileName() != "" {
		// Truncate filename to 20 cells if needed
		filename = runewidth.Truncate(e.doc.FileName(), 20, "")
	}
	dirtyFlag := ""
	if e.doc.IsDirty() {
		dirtyFlag = "(modified)"
	}

	status := fmt.Sprintf("%s - %d lines %s", filename, e.doc.Len(), dirtyFlag)
	if e.modal != nil {
		status = e.modal.GetTitle()
	}
	status = runewidth.Truncate(status, e.screenCols, "")
	statusLen := runewidth.StringWidth(status)

	rstatus := fmt.Sprintf("%d/%d", e.cursor.Y+1, e.doc.Len())
	rstatusLen := runewidth.StringWidth(rstatus)
	abuf.appendString(status)

	for statusLen < e.screenCols {
		if e.screenCols-statusLen == rstatusLen {
			abuf.appendString(rstatus)
			break
		}
		abuf.appendString(" ")
		statusLen++
	}

	abuf.appendString(COLORS_RESET)
	abuf.appendString("\r\n")
}

func (e *Editor) DrawMessageBar(abuf *appendBuffer) {
	abuf.appendString(CLEAR_LINE)
	if time.Since(e.statusMessageTime) < e.cfg.MessageTimeout.Duration {
		abuf.appendString(runewidth.Truncate(e.statusMessage, e.screenCols, ""))
	}
}

// screenCursor returns the 1-based terminal cell of the cursor.
func (e *Editor) screenCursor() (int, int) {
	rx := 0
	if row, ok := e.doc.Row(e.cursor.Y); ok {
		rx = row.ScreenColumn(e.cursor.X) - row.ScreenColumn(e.offset.X)
	}
	return e.cursor.Y - e.offset.Y + 1, rx + 1
}

func (e *Editor) RefreshScreen() {
	e.Scroll()

	var abuf appendBuffer

	abuf.appendString(CURSOR_HIDE)
	abuf.appendString(CURSOR_HOME) // Move cursor to the top-left corner

	e.DrawRows(&abuf)
	e.DrawStatusBar(&abuf)
	e.DrawMessageBar(&abuf)

	row, col := e.screenCursor()
	abuf.append(fmt.Appendf(nil, CURSOR_POSITION_FORMAT, row, col))

	abuf.appendString(CURSOR_SHOW)

	e.terminal.Write(abuf.b)
}
