// Package document holds the text model of the editor: grapheme-addressed
// lines, the buffer that owns them and reads or writes them to disk, and
// substring search over both.
//
// All columns are grapheme cluster indices. Out-of-range edits are ignored
// rather than reported; only file I/O returns errors.
package document
