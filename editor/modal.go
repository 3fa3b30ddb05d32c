package editor

import (
	"errors"
	"io"

	"github.com/hnnsb/hecto/document"
)

// ModalScreen represents a modal screen interface that can be displayed in the editor
type ModalScreen interface {
	// GetContent returns the read-only buffer to display
	GetContent() *document.Buffer

	// GetTitle returns the title shown in the status bar
	GetTitle() string

	// GetStatusMessage returns the status message for the modal screen
	GetStatusMessage() string

	// HandleKey processes a key press and returns true if the modal should close
	// The second return value indicates whether to restore the previous state (true) or keep current state (false)
	HandleKey(key rune, e *Editor) (bool, bool)

	// Initialize sets up the initial cursor position and any other screen-specific setup
	Initialize(e *Editor)
}

// EditorState represents the saved state of the editor
type EditorState struct {
	doc    *document.Buffer
	cursor document.Position
	offset document.Position
}

// getEditorState creates a snapshot of the current editor state
func (e *Editor) getEditorState() EditorState {
	return EditorState{
		doc:    e.doc,
		cursor: e.cursor,
		offset: e.offset,
	}
}

// setEditorState restores the editor to a previously saved state
func (e *Editor) setEditorState(state EditorState) {
	e.doc = state.doc
	e.cursor = state.cursor
	e.offset = state.offset
	e.mode = EDIT_MODE
	e.modal = nil
}

// handles the common logic for modal screens
type ModalManager struct {
	savedState EditorState
	screen     ModalScreen
	editor     *Editor
}

// creates a new modal manager
func NewModalManager(editor *Editor, screen ModalScreen) *ModalManager {
	return &ModalManager{
		savedState: editor.getEditorState(),
		screen:     screen,
		editor:     editor,
	}
}

// displays the modal screen and handles the interaction loop
func (m *ModalManager) Show(mode int) {
	m.setupModalDisplay(mode)

	// Let the screen initialize itself (e.g., set cursor position)
	m.screen.Initialize(m.editor)

	// Main interaction loop
	for {
		m.editor.RefreshScreen()

		key, err := m.editor.terminal.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.restoreState()
				return
			}
			m.editor.ShowError("%v", err)
			continue
		}

		shouldClose, shouldRestore := m.screen.HandleKey(key, m.editor)
		if shouldClose {
			if shouldRestore {
				m.restoreState()
			}
			m.editor.mode = EDIT_MODE
			m.editor.modal = nil
			return // Screen requested to close
		}
	}
}

// configures the editor for modal display
func (m *ModalManager) setupModalDisplay(mode int) {
	m.editor.mode = mode
	m.editor.modal = m.screen
	m.editor.doc = m.screen.GetContent()
	m.editor.cursor = document.Position{}
	m.editor.offset = document.Position{}
	m.editor.SetStatusMessage("%s", m.screen.GetStatusMessage())
}

// restores the editor to its previous state
func (m *ModalManager) restoreState() {
	m.editor.setEditorState(m.savedState)
	m.editor.SetStatusMessage("Returned to editor")
}
