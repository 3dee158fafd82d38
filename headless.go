package faketty

import (
	"strings"

	headlessterm "github.com/danielgatis/go-headless-term"
)

// headlessEmulator adapts go-headless-term. The terminal is rebuilt on
// reset, and on resize it is rebuilt and the output since the last reset
// replayed at the new size.
type headlessEmulator struct {
	term               *headlessterm.Terminal
	log                []string
	rows               int
	columns            int
	newlineTranslation bool
}

func newHeadlessEmulator(rows, columns int, newlineTranslation bool) *headlessEmulator {
	e := &headlessEmulator{
		rows:               max(rows, 1),
		columns:            max(columns, 1),
		newlineTranslation: newlineTranslation,
	}
	e.term = e.newTerminal()
	return e
}

func (e *headlessEmulator) newTerminal() *headlessterm.Terminal {
	return headlessterm.New(headlessterm.WithSize(e.rows, e.columns))
}

func (e *headlessEmulator) Write(s string) {
	e.log = append(e.log, s)
	e.write(s)
}

func (e *headlessEmulator) write(s string) {
	if e.newlineTranslation {
		s = strings.ReplaceAll(s, "\n", "\r\n")
	}
	e.term.WriteString(s)
}

func (e *headlessEmulator) Render(suffix string) string {
	rows := e.term.Rows()
	lines := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		line := strings.ReplaceAll(e.term.LineContent(row), "\x00", " ")
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + suffix
}

func (e *headlessEmulator) Resize(rows, columns int) {
	rows, columns = max(rows, 1), max(columns, 1)
	if rows == e.rows && columns == e.columns {
		return
	}
	e.rows, e.columns = rows, columns
	e.term = e.newTerminal()
	for _, s := range e.log {
		e.write(s)
	}
}

func (e *headlessEmulator) Reset() {
	e.log = nil
	e.term = e.newTerminal()
}

func (e *headlessEmulator) CursorPosition() (column, row int) {
	row, column = e.term.CursorPos()
	return column, row
}

func (e *headlessEmulator) Clone() Emulator {
	return newHeadlessEmulator(e.rows, e.columns, e.newlineTranslation)
}
