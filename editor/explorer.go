package editor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hnnsb/hecto/document"
)

// ExplorerScreen implements the ModalScreen interface for file exploration
type ExplorerScreen struct {
	currentDir   string
	files        []os.DirEntry
	hasParentDir bool
	content      *document.Buffer
	editing      *document.Buffer // buffer that was open when the explorer started
}

// NewExplorerScreen creates a new explorer screen rooted at startDir
func NewExplorerScreen(startDir string, editing *document.Buffer) (*ExplorerScreen, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}
	explorer := &ExplorerScreen{
		currentDir: dir,
		editing:    editing,
	}
	if err := explorer.refreshContent(); err != nil {
		return nil, err
	}
	return explorer, nil
}

// refreshContent updates the explorer content for the current directory
func (ex *ExplorerScreen) refreshContent() error {
	files, err := os.ReadDir(ex.currentDir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", ex.currentDir, err)
	}

	ex.files = files
	ex.hasParentDir = filepath.Dir(ex.currentDir) != ex.currentDir
	ex.content = ex.createExplorerRows()
	return nil
}

// createExplorerRows builds the header, the parent entry and one row per file
func (ex *ExplorerScreen) createExplorerRows() *document.Buffer {
	rows := make([]string, 0, len(ex.files)+2)
	rows = append(rows, fmt.Sprintf("=== File Explorer: %s ===", ex.currentDir))

	if ex.hasParentDir {
		rows = append(rows, "📂 .. (parent directory)")
	}

	for _, file := range ex.files {
		rows = append(rows, fileDisplayRow(file))
	}
	return document.FromLines(rows...)
}

// fileDisplayRow formats a file or directory entry
func fileDisplayRow(file os.DirEntry) string {
	if file.IsDir() {
		return fmt.Sprintf("📁 %s/", file.Name())
	}
	size := ""
	if info, err := file.Info(); err == nil {
		size = fmt.Sprintf(" (%d bytes)", info.Size())
	}
	return fmt.Sprintf("📄 %s%s", file.Name(), size)
}

// firstEntryRow is the row of the first selectable entry after the header
func (ex *ExplorerScreen) firstEntryRow() int {
	if ex.hasParentDir && len(ex.files) > 0 {
		return 2 // Skip header and parent dir option
	}
	return 1 // Skip only header
}

// GetContent returns the explorer listing
func (ex *ExplorerScreen) GetContent() *document.Buffer {
	return ex.content
}

// GetTitle returns the explorer screen title
func (ex *ExplorerScreen) GetTitle() string {
	return "File Explorer"
}

// GetStatusMessage returns the status message for the explorer screen
func (ex *ExplorerScreen) GetStatusMessage() string {
	return fmt.Sprintf("File Explorer: %s - %d items (Enter=open/navigate, ESC/q=quit)", ex.currentDir, len(ex.files))
}

// Initialize puts the cursor on the first file
func (ex *ExplorerScreen) Initialize(e *Editor) {
	e.cursor = document.Position{Y: min(ex.firstEntryRow(), ex.content.Len()-1)}
}

// HandleKey processes key presses for the explorer screen
func (ex *ExplorerScreen) HandleKey(key rune, e *Editor) (bool, bool) {
	switch key {
	case 'q', 'Q', '\x1b': // ESC or 'q' to quit
		return true, true // Close modal and restore previous state

	case ARROW_UP:
		if e.cursor.Y > 1 {
			e.cursor.Y--
		}

	case ARROW_DOWN:
		if e.cursor.Y < ex.content.Len()-1 {
			e.cursor.Y++
		}

	case '\r': // Enter key
		if ex.openSelected(e) {
			return true, false // Close modal but keep new file state (don't restore)
		}
	}

	return false, false // Don't close modal
}

// openSelected opens the selected file or navigates into the selected
// directory. It reports whether a file was opened.
func (ex *ExplorerScreen) openSelected(e *Editor) bool {
	selectedIndex := e.cursor.Y - 1 // -1 to account for header

	if ex.hasParentDir {
		if selectedIndex == 0 {
			ex.changeDir(e, filepath.Dir(ex.currentDir))
			return false
		}
		selectedIndex--
	}

	if selectedIndex < 0 || selectedIndex >= len(ex.files) {
		return false
	}

	selected := ex.files[selectedIndex]
	path := filepath.Join(ex.currentDir, selected.Name())

	if selected.IsDir() {
		ex.changeDir(e, path)
		return false
	}

	if ex.editing.IsDirty() {
		e.SetStatusMessage("File has unsaved changes")
		return false
	}

	doc, err := document.Open(path)
	if err != nil {
		e.ShowError("Failed to open file: %v", err)
		return false
	}
	e.logger.Info("opened file", "file", path, "rows", doc.Len())
	e.setDocument(doc)
	return true
}

// changeDir lists dir, keeping the current listing when it cannot be read
func (ex *ExplorerScreen) changeDir(e *Editor, dir string) {
	previous := ex.currentDir
	ex.currentDir = dir
	if err := ex.refreshContent(); err != nil {
		ex.currentDir = previous
		e.ShowError("Failed to read directory: %v", err)
		return
	}
	e.doc = ex.content
	e.offset = document.Position{}
	ex.Initialize(e)
	e.SetStatusMessage("%s", ex.GetStatusMessage())
}

// Explorer opens the file explorer in the directory of the current file
func (e *Editor) Explorer() {
	dir := "."
	if e.doc.FileName() != "" {
		dir = filepath.Dir(e.doc.FileName())
	}
	explorerScreen, err := NewExplorerScreen(dir, e.doc)
	if err != nil {
		e.ShowError("Failed to read directory: %v", err)
		return
	}
	modalManager := NewModalManager(e, explorerScreen)
	modalManager.Show(EXPLORER_MODE)
}
