package editor

import (
	"fmt"

	"github.com/hnnsb/hecto/document"
)

// HelpScreen implements the ModalScreen interface for the help display
type HelpScreen struct {
	content *document.Buffer
}

// NewHelpScreen creates a new help screen
func NewHelpScreen() *HelpScreen {
	return &HelpScreen{
		content: document.FromLines(
			"=== HECTO HELP ===",
			"",
			"NAVIGATION:",
			"  Arrow Keys       - Move cursor",
			"  Page Up/Down     - Scroll by page",
			"  Home/End         - Move to line start/end",
			"",
			"EDITING:",
			"  Ctrl+S           - Save file",
			"  Ctrl+Q           - Quit (with confirmation if unsaved)",
			"  Delete/Backspace - Delete characters",
			"",
			"SEARCH:",
			"  Ctrl+F           - Find text",
			"  Arrow Right/Down - Next match",
			"  Arrow Left/Up    - Previous match",
			"  Enter            - Keep cursor at match",
			"  Escape           - Cancel search",
			"",
			"FILE OPERATIONS:",
			"  Ctrl+E           - Open file explorer",
			"",
			"OTHER:",
			"  Ctrl+H           - Show this help",
			"  Ctrl+R           - Redraw screen",
			"",
			"About HECTO:",
			fmt.Sprintf("  Version: %s", HECTO_VERSION),
			"  A simple terminal-based text editor written in Go",
			"",
			"Press 'q' or Escape to close this help screen.",
		),
	}
}

// GetContent returns the help content
func (h *HelpScreen) GetContent() *document.Buffer {
	return h.content
}

// GetTitle returns the help screen title
func (h *HelpScreen) GetTitle() string {
	return "Help"
}

// GetStatusMessage returns the status message for the help screen
func (h *HelpScreen) GetStatusMessage() string {
	return "Help Screen - Use Arrow Keys to scroll, 'q' or Escape to exit"
}

// Initialize sets up the initial cursor position for the help screen
func (h *HelpScreen) Initialize(e *Editor) {}

// HandleKey processes key presses for the help screen
func (h *HelpScreen) HandleKey(key rune, e *Editor) (bool, bool) {
	switch key {
	case 'q', 'Q', '\x1b': // ESC or 'q' to quit
		return true, true // Close modal and restore previous state

	case ARROW_UP, ARROW_DOWN, PAGE_UP, PAGE_DOWN, HOME_KEY, END_KEY:
		e.MoveCursor(key)
		// the help text has no append row
		e.cursor.Y = min(e.cursor.Y, h.content.Len()-1)
	}

	return false, false // Don't close modal
}

// Help displays the help screen
func (e *Editor) Help() {
	modalManager := NewModalManager(e, NewHelpScreen())
	modalManager.Show(HELP_MODE)
}
