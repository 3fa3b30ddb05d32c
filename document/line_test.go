package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lineTestCases = []struct {
	name      string
	input     string
	graphemes int
}{
	{"empty", "", 0},
	{"ASCII hello", "hello", 5},
	{"combining accent", "he\u0301llo", 5},
	{"multiple combining", "e\u0301\u0327", 1},
	{"CJK", "日本語", 3},
	{"simple emoji", "h\U0001F600llo", 5},
	{"ZWJ family", "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466!", 2},
	{"skin tone modifier", "\U0001F44B\U0001F3FD hi", 4},
	{"flag US", "\U0001F1FA\U0001F1F8x", 2},
}

func TestLineLenCountsGraphemes(t *testing.T) {
	for _, tc := range lineTestCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLine(tc.input)
			assert.Equal(t, tc.graphemes, l.Len())
			assert.Equal(t, tc.input, l.String())
		})
	}
}

func TestLineRenderReconstructsText(t *testing.T) {
	for _, tc := range lineTestCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLine(tc.input)
			assert.Equal(t, tc.input, l.Render(0, l.Len()))
		})
	}
}

func TestLineRenderClamps(t *testing.T) {
	l := NewLine("hello")
	assert.Equal(t, "el", l.Render(1, 3))
	assert.Equal(t, "hello", l.Render(0, 100))
	assert.Equal(t, "", l.Render(4, 2))
	assert.Equal(t, "", l.Render(9, 12))

	accent := NewLine("e\u0301x")
	assert.Equal(t, "e\u0301", accent.Render(0, 1))
	assert.Equal(t, "x", accent.Render(1, 2))
}

func TestLineInsertThenDeleteIsIdentity(t *testing.T) {
	for _, tc := range lineTestCases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < tc.graphemes; i++ {
				l := NewLine(tc.input)
				l.Insert(i, 'X')
				require.Equal(t, tc.graphemes+1, l.Len())
				assert.Equal(t, "X", l.Render(i, i+1))
				l.Delete(i)
				assert.Equal(t, tc.input, l.String(), "index %d", i)
				assert.Equal(t, tc.graphemes, l.Len(), "index %d", i)
			}
		})
	}
}

func TestLineInsertPastEndAppends(t *testing.T) {
	l := NewLine("ab")
	l.Insert(2, 'c')
	l.Insert(10, 'é')
	assert.Equal(t, "abcé", l.String())
	assert.Equal(t, 4, l.Len())
}

func TestLineDeleteOutOfRangeIsNoop(t *testing.T) {
	l := NewLine("abc")
	l.Delete(3)
	l.Delete(7)
	l.Delete(-1)
	assert.Equal(t, "abc", l.String())
	assert.Equal(t, 3, l.Len())
}

func TestLineDeleteRemovesWholeCluster(t *testing.T) {
	l := NewLine("a\U0001F44B\U0001F3FDb")
	l.Delete(1)
	assert.Equal(t, "ab", l.String())
	assert.Equal(t, 2, l.Len())
}

func TestLineSplitThenAppendIsIdentity(t *testing.T) {
	for _, tc := range lineTestCases {
		t.Run(tc.name, func(t *testing.T) {
			for k := 0; k <= tc.graphemes; k++ {
				l := NewLine(tc.input)
				rest := l.Split(k)
				assert.Equal(t, k, l.Len())
				assert.Equal(t, tc.graphemes-k, rest.Len())
				l.Append(rest)
				assert.Equal(t, tc.input, l.String(), "split at %d", k)
				assert.Equal(t, tc.graphemes, l.Len(), "split at %d", k)
			}
		})
	}
}

func TestLineSplit(t *testing.T) {
	l := NewLine("abcdef")
	rest := l.Split(2)
	assert.Equal(t, "ab", l.String())
	assert.Equal(t, "cdef", rest.String())

	// the truncated line must not share storage with the remainder
	l.Insert(2, 'X')
	assert.Equal(t, "cdef", rest.String())
}

func TestLineFind(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		query  string
		start  int
		dir    SearchDirection
		want   int
		wantOK bool
	}{
		{"forward from start", "hello", "lo", 0, Forward, 3, true},
		{"forward first of many", "hello", "l", 0, Forward, 2, true},
		{"forward from match", "hello", "l", 3, Forward, 3, true},
		{"forward past match", "hello", "lo", 4, Forward, 0, false},
		{"forward at end", "hello", "o", 5, Forward, 0, false},
		{"backward last of many", "hello", "l", 5, Backward, 3, true},
		{"backward prefix only", "hello", "l", 3, Backward, 2, true},
		{"backward match must fit prefix", "hello", "lo", 4, Backward, 0, false},
		{"backward at start", "hello", "h", 0, Backward, 0, false},
		{"empty query", "hello", "", 0, Forward, 0, false},
		{"start past end", "hello", "h", 6, Forward, 0, false},
		{"multibyte forward", "日本語の本", "本", 0, Forward, 1, true},
		{"multibyte forward later", "日本語の本", "本", 2, Forward, 4, true},
		{"multibyte backward", "日本語の本", "本", 5, Backward, 4, true},
		{"multibyte backward earlier", "日本語の本", "本", 4, Backward, 1, true},
		{"after emoji", "\U0001F44B\U0001F3FD hi", "hi", 0, Forward, 2, true},
		{"inside cluster", "e\u0301x", "\u0301", 0, Forward, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewLine(tt.text).Find(tt.query, tt.start, tt.dir)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLineWidth(t *testing.T) {
	l := NewLine("日本x")
	assert.Equal(t, 5, l.Width())
	assert.Equal(t, 2, l.ScreenColumn(1))
	assert.Equal(t, 0, l.ScreenColumn(0))
	assert.Equal(t, 5, l.ScreenColumn(42))
}

func TestLineWidthControlCharacters(t *testing.T) {
	tests := []struct {
		text   string
		width  int
		column int // ScreenColumn(1)
	}{
		{"\tabc", 4, 1},
		{"a\x01日", 4, 1},
		{"\x7f\t", 2, 1},
		{"\t日本", 5, 1},
	}

	for _, tt := range tests {
		l := NewLine(tt.text)
		assert.Equal(t, tt.width, l.Width(), "width of %q", tt.text)
		assert.Equal(t, tt.column, l.ScreenColumn(1), "column of %q", tt.text)
	}
}

func TestLineFit(t *testing.T) {
	tests := []struct {
		text     string
		start    int
		cells    int
		expected string
	}{
		{"hello", 0, 3, "hel"},
		{"hello", 2, 10, "llo"},
		{"日本語", 0, 5, "日本"},
		{"日本語", 1, 4, "本語"},
		{"\t日\x01x", 0, 4, "\t日\x01"},
		{"\t\t\tab", 0, 4, "\t\t\ta"},
		{"abc", 5, 3, ""},
		{"abc", 0, 0, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NewLine(tt.text).Fit(tt.start, tt.cells), "Fit(%d, %d) of %q", tt.start, tt.cells, tt.text)
	}
}
