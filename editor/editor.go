package editor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/hnnsb/hecto/config"
	"github.com/hnnsb/hecto/document"
)

/*** helper ***/

const HECTO_VERSION = "1.0.0"

// Editor modes
const (
	EDIT_MODE = iota
	EXPLORER_MODE
	SEARCH_MODE
	SAVE_MODE
	HELP_MODE
)

// ErrQuit is returned by ProcessKeypress and Run when the user quits.
var ErrQuit = errors.New("quit")

/*** data ***/

// Editor represents the text editor state
type Editor struct {
	doc               *document.Buffer
	cursor            document.Position
	offset            document.Position
	screenRows        int
	screenCols        int
	statusMessage     string
	statusMessageTime time.Time
	mode              int
	modal             ModalScreen // screen shown in place of the buffer, if any
	quitTimes         int
	terminal          *Terminal
	cfg               config.Config
	logger            *slog.Logger
}

/*** init ***/

// NewEditor creates an editor with an empty, unnamed buffer drawing to
// terminal. A nil logger discards log output.
func NewEditor(terminal *Terminal, cfg config.Config, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Editor{
		doc:       document.New(),
		terminal:  terminal,
		cfg:       cfg,
		logger:    logger,
		quitTimes: cfg.QuitTimes,
		mode:      EDIT_MODE,
	}
}

// Init reads the window size. Two rows are reserved for the status and
// message bars.
func (e *Editor) Init() error {
	rows, cols, err := e.terminal.Size()
	if err != nil {
		return err
	}
	e.screenRows = max(rows-2, 1)
	e.screenCols = max(cols, 1)
	return nil
}

func (e *Editor) Redraw() {
	if err := e.Init(); err != nil {
		e.ShowError("%v", err)
	}
	e.RefreshScreen()
}

// Document returns the buffer being edited.
func (e *Editor) Document() *document.Buffer {
	return e.doc
}

// Cursor returns the cursor position in buffer space.
func (e *Editor) Cursor() document.Position {
	return e.cursor
}

// Offset returns the top-left buffer position of the viewport.
func (e *Editor) Offset() document.Position {
	return e.offset
}

/*** file i/o ***/

// Open loads filename into the editor. On failure the editor falls back to
// an empty, unnamed buffer and the error is returned for reporting.
func (e *Editor) Open(filename string) error {
	doc, err := document.Open(filename)
	if err != nil {
		e.logger.Warn("open failed", "file", filename, "err", err)
		e.setDocument(document.New())
		return err
	}
	e.logger.Info("opened file", "file", filename, "rows", doc.Len())
	e.setDocument(doc)
	return nil
}

// setDocument replaces the buffer and resets the view onto it.
func (e *Editor) setDocument(doc *document.Buffer) {
	e.doc = doc
	e.cursor = document.Position{}
	e.offset = document.Position{}
}

func (e *Editor) Save() {
	if e.doc.FileName() == "" {
		e.mode = SAVE_MODE
		filename := e.Prompt("Save as: %s (ESC to cancel)")
		e.mode = EDIT_MODE
		if filename == "" {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.doc.SetFileName(filename)
	}

	length, err := e.doc.Save()
	if err != nil {
		e.logger.Error("save failed", "file", e.doc.FileName(), "err", err)
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	e.logger.Info("saved file", "file", e.doc.FileName(), "bytes", length)
	e.SetStatusMessage("%d bytes written to disk", length)
}

/*** editor operations ***/

func (e *Editor) InsertRune(r rune) {
	e.doc.Insert(e.cursor, r)
	e.cursor.X++
}

func (e *Editor) InsertNewline() {
	e.doc.Insert(e.cursor, '\n')
	e.cursor.Y++
	e.cursor.X = 0
}

// DeleteChar removes the character left of the cursor, joining with the
// previous row at column 0.
func (e *Editor) DeleteChar() {
	if e.cursor.X == 0 && e.cursor.Y == 0 {
		return
	}
	e.MoveCursor(ARROW_LEFT)
	e.doc.Delete(e.cursor)
}

func (e *Editor) MoveCursor(key rune) {
	e.cursor = MoveCursor(key, e.cursor, e.doc, e.screenRows)
}

func (e *Editor) Scroll() {
	e.offset = Scroll(e.cursor, e.offset, e.screenCols, e.screenRows)
}

/*** find ***/

// Find runs an incremental search prompt. Cancelling restores the cursor
// and viewport to where they were before the search.
func (e *Editor) Find() {
	savedOffset := e.offset
	e.mode = SEARCH_MODE
	defer func() { e.mode = EDIT_MODE }()

	state := BeginSearch(e.cursor)
	for state.Active() {
		e.SetStatusMessage("Search: %s (Use ESC/Arrows/Enter)", state.Query)
		e.RefreshScreen()

		key, err := e.terminal.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				state = state.Step(SearchInput{Event: SearchAbort}, e.doc)
				break
			}
			e.ShowError("%v", err)
			continue
		}

		input, ok := searchInputForKey(key)
		if !ok {
			continue
		}
		state = state.Step(input, e.doc)
		e.cursor = state.Cursor
		e.Scroll()
	}

	e.cursor = state.Cursor
	if state.Phase == SearchCanceled {
		e.offset = savedOffset
	}
	e.logger.Debug("search finished", "query", state.Query, "found", state.HasMatch, "at", state.LastMatch)
	e.SetStatusMessage("")
}

/*** input ***/

// Prompt reads a line of input in the message bar. It returns "" when the
// prompt is cancelled with ESC.
func (e *Editor) Prompt(prompt string) string {
	var buf []rune

	for {
		e.SetStatusMessage(prompt, string(buf))
		e.RefreshScreen()

		key, err := e.terminal.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ""
			}
			e.ShowError("%v", err)
			continue // Try again instead of terminating
		}

		switch key {
		case DELETE_KEY, BACKSPACE, withControlKey('h'):
			if len(buf) != 0 {
				buf = buf[:len(buf)-1]
			}

		case '\x1b': // Escape
			e.SetStatusMessage("")
			return ""

		case '\r': // Enter
			if len(buf) != 0 {
				e.SetStatusMessage("")
				return string(buf)
			}

		default:
			if !isControl(key) && (key < ARROW_LEFT || key > PAGE_DOWN) {
				buf = append(buf, key)
			}
		}
	}
}

// ProcessKeypress reads one key and applies it. It returns ErrQuit when
// the user quits and the read error when input is exhausted.
func (e *Editor) ProcessKeypress() error {
	key, err := e.terminal.ReadKey()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		e.ShowError("%v", err)
		return nil // Skip this keypress and continue
	}

	switch key {
	case HOME_KEY, END_KEY, PAGE_UP, PAGE_DOWN,
		ARROW_LEFT, ARROW_RIGHT, ARROW_UP, ARROW_DOWN:
		e.MoveCursor(key)

	case DELETE_KEY:
		e.doc.Delete(e.cursor)

	case BACKSPACE:
		e.DeleteChar()

	case '\r': // Enter
		e.InsertNewline()

	case '\x1b': // Escape key
		// Do nothing - just reset quit times

	case withControlKey('q'):
		if e.doc.IsDirty() && e.quitTimes > 0 {
			e.SetStatusMessage("WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return nil
		}
		return ErrQuit

	case withControlKey('s'):
		e.Save()

	case withControlKey('e'):
		e.Explorer()

	case withControlKey('f'):
		e.Find()

	case withControlKey('r'):
		e.Redraw()

	case withControlKey('h'):
		e.Help()

	default:
		if !isControl(key) {
			e.InsertRune(key)
		}
	}

	e.quitTimes = e.cfg.QuitTimes // Reset quit times after processing a key
	return nil
}

// Run draws and processes keys until the user quits or input ends.
func (e *Editor) Run() error {
	for {
		e.RefreshScreen()
		if err := e.ProcessKeypress(); err != nil {
			return err
		}
	}
}

/*** status ***/

func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageTime = time.Now()
}

// ShowError displays an error message in the status bar instead of terminating
func (e *Editor) ShowError(format string, args ...any) {
	e.logger.Warn(fmt.Sprintf(format, args...))
	e.SetStatusMessage("Warn: "+format, args...)
}
