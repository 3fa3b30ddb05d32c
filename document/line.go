package document

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Line is one row of a document, addressed by grapheme cluster.
//
// The text is kept as a sequence of clusters so that edits at a column do
// not need to re-segment the whole row. size caches the byte length.
type Line struct {
	clusters []string
	size     int
}

// NewLine segments text into grapheme clusters.
func NewLine(text string) *Line {
	l := &Line{}
	if text == "" {
		return l
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		l.clusters = append(l.clusters, g.Str())
	}
	l.size = len(text)
	return l
}

// Len returns the number of grapheme clusters in the line.
func (l *Line) Len() int {
	return len(l.clusters)
}

// String returns the raw text of the line.
func (l *Line) String() string {
	return strings.Join(l.clusters, "")
}

// Bytes returns the raw text of the line as bytes.
func (l *Line) Bytes() []byte {
	return []byte(l.String())
}

// Render returns clusters [start, end). end is clamped to the byte length
// of the line and start to the clamped end, so callers may pass screen
// bounds directly.
func (l *Line) Render(start, end int) string {
	end = min(end, l.size)
	start = min(start, end)
	start = max(start, 0)
	end = min(end, len(l.clusters))
	if start >= end {
		return ""
	}
	return strings.Join(l.clusters[start:end], "")
}

// Insert places r before the cluster at index at, or appends it when at is
// past the end.
func (l *Line) Insert(at int, r rune) {
	s := string(r)
	l.size += len(s)
	if at < 0 {
		at = 0
	}
	if at >= len(l.clusters) {
		l.clusters = append(l.clusters, s)
		return
	}
	l.clusters = append(l.clusters, "")
	copy(l.clusters[at+1:], l.clusters[at:])
	l.clusters[at] = s
}

// Delete removes the cluster at index at. Out of range indices, including
// at == Len(), are ignored.
func (l *Line) Delete(at int) {
	if at < 0 || at >= len(l.clusters) {
		return
	}
	l.size -= len(l.clusters[at])
	l.clusters = append(l.clusters[:at], l.clusters[at+1:]...)
}

// Append concatenates other onto the end of l.
func (l *Line) Append(other *Line) {
	l.clusters = append(l.clusters, other.clusters...)
	l.size += other.size
}

// Split truncates l to its first at clusters and returns the rest.
func (l *Line) Split(at int) *Line {
	at = max(0, min(at, len(l.clusters)))
	rest := &Line{clusters: make([]string, len(l.clusters)-at)}
	copy(rest.clusters, l.clusters[at:])
	for _, c := range rest.clusters {
		rest.size += len(c)
	}
	l.clusters = l.clusters[:at:at]
	l.size -= rest.size
	return rest
}

// Find looks for query in the line. Forward searches clusters
// [start, Len()) for the first occurrence, Backward searches [0, start) for
// the last one. The returned index is the cluster the match begins at;
// byte matches that start inside a cluster are skipped.
func (l *Line) Find(query string, start int, dir SearchDirection) (int, bool) {
	if query == "" || start < 0 || start > len(l.clusters) {
		return 0, false
	}

	lo, hi := start, len(l.clusters)
	if dir == Backward {
		lo, hi = 0, start
	}
	text := strings.Join(l.clusters[lo:hi], "")

	// byte offset of each cluster boundary within text
	boundaries := make(map[int]int, hi-lo)
	offset := 0
	for i, c := range l.clusters[lo:hi] {
		boundaries[offset] = lo + i
		offset += len(c)
	}

	if dir == Forward {
		for from := 0; from <= len(text); {
			i := strings.Index(text[from:], query)
			if i < 0 {
				return 0, false
			}
			if idx, ok := boundaries[from+i]; ok {
				return idx, true
			}
			from += i + 1
		}
		return 0, false
	}

	for to := len(text); to >= 0; {
		i := strings.LastIndex(text[:to], query)
		if i < 0 {
			return 0, false
		}
		if idx, ok := boundaries[i]; ok {
			return idx, true
		}
		to = i + len(query) - 1
	}
	return 0, false
}

// Width returns the display width of the line in terminal cells.
func (l *Line) Width() int {
	return l.ScreenColumn(len(l.clusters))
}

// ScreenColumn returns the display width of clusters [0, x).
func (l *Line) ScreenColumn(x int) int {
	x = max(0, min(x, len(l.clusters)))
	width := 0
	for _, c := range l.clusters[:x] {
		width += clusterWidth(c)
	}
	return width
}

// Fit returns the clusters from start on that fit into cells terminal
// cells.
func (l *Line) Fit(start, cells int) string {
	start = max(start, 0)
	end := start
	for ; end < len(l.clusters); end++ {
		w := clusterWidth(l.clusters[end])
		if w > cells {
			break
		}
		cells -= w
	}
	return l.Render(start, end)
}

// clusterWidth is the number of cells c occupies on screen. Control
// characters, tabs included, are drawn as one cell each.
func clusterWidth(c string) int {
	controls := 0
	for _, r := range c {
		if r < 0x20 || r == 0x7f {
			controls++
		}
	}
	if controls > 0 {
		return controls
	}
	return runewidth.StringWidth(c)
}
