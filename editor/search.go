package editor

import (
	"github.com/hnnsb/hecto/document"
)

// SearchPhase is the state of an incremental search.
type SearchPhase int

const (
	SearchIdle SearchPhase = iota
	SearchComposing
	SearchAccepted
	SearchCanceled
)

// SearchEvent is one user action fed into a search.
type SearchEvent int

const (
	SearchChar SearchEvent = iota
	SearchBackspace
	SearchNext
	SearchPrev
	SearchAbort
	SearchConfirm
)

// SearchInput is a SearchEvent plus the typed rune for SearchChar.
type SearchInput struct {
	Event SearchEvent
	Char  rune
}

// SearchState is the full state of an incremental search. Anchor is where
// the cursor was when the search began; Cursor is where it is now.
type SearchState struct {
	Phase     SearchPhase
	Query     string
	Direction document.SearchDirection
	Anchor    document.Position
	Cursor    document.Position
	LastMatch document.Position
	HasMatch  bool
}

// BeginSearch starts composing a forward search at cursor.
func BeginSearch(cursor document.Position) SearchState {
	return SearchState{
		Phase:     SearchComposing,
		Direction: document.Forward,
		Anchor:    cursor,
		Cursor:    cursor,
	}
}

// Active reports whether the search still accepts input.
func (s SearchState) Active() bool {
	return s.Phase == SearchComposing
}

// Step applies one input and returns the next state. Query edits and
// navigation run one search from the cursor; a miss keeps the cursor on the
// previous match.
func (s SearchState) Step(in SearchInput, doc *document.Buffer) SearchState {
	if s.Phase != SearchComposing {
		return s
	}

	from := s.Cursor
	switch in.Event {
	case SearchAbort:
		s.Phase = SearchCanceled
		s.Query = ""
		s.Cursor = s.Anchor
		s.HasMatch = false
		return s
	case SearchConfirm:
		s.Phase = SearchAccepted
		return s
	case SearchChar:
		s.Query += string(in.Char)
		s.Direction = document.Forward
	case SearchBackspace:
		if s.Query == "" {
			return s
		}
		q := []rune(s.Query)
		s.Query = string(q[:len(q)-1])
		s.Direction = document.Forward
	case SearchNext:
		s.Direction = document.Forward
		// step past the match under the cursor
		from = MoveCursor(ARROW_RIGHT, s.Cursor, doc, 0)
	case SearchPrev:
		s.Direction = document.Backward
	}

	if s.Query == "" {
		return s
	}
	if pos, ok := doc.Find(s.Query, from, s.Direction); ok {
		s.Cursor = pos
		s.LastMatch = pos
		s.HasMatch = true
	}
	return s
}

// searchInputForKey maps a decoded key onto a search input.
func searchInputForKey(key rune) (SearchInput, bool) {
	switch key {
	case '\x1b':
		return SearchInput{Event: SearchAbort}, true
	case '\r':
		return SearchInput{Event: SearchConfirm}, true
	case ARROW_RIGHT, ARROW_DOWN:
		return SearchInput{Event: SearchNext}, true
	case ARROW_LEFT, ARROW_UP:
		return SearchInput{Event: SearchPrev}, true
	case BACKSPACE, DELETE_KEY, withControlKey('h'):
		return SearchInput{Event: SearchBackspace}, true
	}
	if isControl(key) || key >= ARROW_LEFT && key <= PAGE_DOWN {
		return SearchInput{}, false
	}
	return SearchInput{Event: SearchChar, Char: key}, true
}
