package faketty

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// cursorSequences are stripped before classification, so that a chunk
// made only of cursor save/restore and bells is treated as control-only.
var cursorSequences = strings.NewReplacer(
	"\x1b7", "",
	"\x1b8", "",
	"\x1b[s", "",
	"\x1b[u", "",
	"\a", "",
)

// OnlyANSI reports whether chunk consists of nothing but escape sequences,
// cursor save/restore and bells. Such a chunk changes what a terminal
// shows without printing anything itself. The empty string is control-only.
//
// Line feeds, carriage returns, tabs and other C0 controls count as
// content.
func OnlyANSI(chunk string) bool {
	return StripANSI(cursorSequences.Replace(chunk)) == ""
}

// StripANSI removes escape sequences from s, including 8-bit C1 forms and
// any sequence left incomplete at the end of s. Printable text and C0
// controls, carriage returns included, are kept.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// normalizeOutput strips escape sequences and carriage returns, leaving
// roughly what a human would read from a capture.
func normalizeOutput(s string) string {
	return strings.ReplaceAll(StripANSI(s), "\r", "")
}

// trailingWhitespace returns the run of spaces, tabs and line feeds that
// ends chunk.
func trailingWhitespace(chunk string) string {
	i := len(chunk)
	for i > 0 {
		switch chunk[i-1] {
		case ' ', '\t', '\n':
			i--
			continue
		}
		break
	}
	return chunk[i:]
}
