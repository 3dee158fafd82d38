package faketty

import (
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/x/vt"
)

// vtEmulator adapts github.com/charmbracelet/x/vt. Like headlessEmulator,
// the terminal is rebuilt on reset, and on resize it is rebuilt with the
// output since the last reset replayed, which reflows wrapped lines.
type vtEmulator struct {
	term               *vt.Emulator
	log                []string
	rows               int
	columns            int
	newlineTranslation bool
}

func newVTEmulator(rows, columns int, newlineTranslation bool) *vtEmulator {
	e := &vtEmulator{
		rows:               max(rows, 1),
		columns:            max(columns, 1),
		newlineTranslation: newlineTranslation,
	}
	e.term = e.newTerminal()
	return e
}

// newTerminal starts a terminal with its input drained. Replies to queries
// such as DSR are written to an unbuffered pipe, and would otherwise block
// the write that triggered them. The drain ends when the terminal is
// replaced, or once e is unreachable.
func (e *vtEmulator) newTerminal() *vt.Emulator {
	term := vt.NewEmulator(e.columns, e.rows)
	go func() { _, _ = io.Copy(io.Discard, term) }()
	runtime.AddCleanup(e, closeInput, term)
	return term
}

func (e *vtEmulator) replace() {
	closeInput(e.term)
	e.term = e.newTerminal()
}

func closeInput(term *vt.Emulator) {
	if c, ok := term.InputPipe().(io.Closer); ok {
		_ = c.Close()
	}
}

func (e *vtEmulator) Write(s string) {
	e.log = append(e.log, s)
	e.write(s)
}

func (e *vtEmulator) write(s string) {
	if e.newlineTranslation {
		s = strings.ReplaceAll(s, "\n", "\r\n")
	}
	_, _ = e.term.WriteString(s)
}

// Render relies on String trimming trailing blanks from every row.
func (e *vtEmulator) Render(suffix string) string {
	return strings.TrimRight(e.term.String(), "\n") + suffix
}

func (e *vtEmulator) Resize(rows, columns int) {
	rows, columns = max(rows, 1), max(columns, 1)
	if rows == e.rows && columns == e.columns {
		return
	}
	e.rows, e.columns = rows, columns
	e.replace()
	for _, s := range e.log {
		e.write(s)
	}
}

func (e *vtEmulator) Reset() {
	e.log = nil
	e.replace()
}

func (e *vtEmulator) CursorPosition() (column, row int) {
	pos := e.term.CursorPosition()
	return pos.X, pos.Y
}

func (e *vtEmulator) Clone() Emulator {
	return newVTEmulator(e.rows, e.columns, e.newlineTranslation)
}
