package faketty

import (
	"strconv"
	"strings"
)

// ClearLineDirection selects the part of the cursor row TTY.ClearLine
// erases.
type ClearLineDirection int

const (
	// ClearLineLeft erases from the start of the row to the cursor.
	ClearLineLeft ClearLineDirection = -1
	// ClearLineWhole erases the entire row.
	ClearLineWhole ClearLineDirection = 0
	// ClearLineRight erases from the cursor to the end of the row.
	ClearLineRight ClearLineDirection = 1
)

const csi = "\x1b["

// Sequences emitted by the TTY cursor and erase helpers.
const (
	seqEraseLine      = csi + "2K"
	seqEraseLineEnd   = csi + "K"
	seqEraseLineStart = csi + "1K"
	seqEraseDown      = csi + "J"
)

var clearLineSequences = map[ClearLineDirection]string{
	ClearLineLeft:  seqEraseLineStart,
	ClearLineWhole: seqEraseLine,
	ClearLineRight: seqEraseLineEnd,
}

// cursorMove returns the relative motion for (dx, dy): horizontal first,
// then vertical, each omitted when zero.
func cursorMove(dx, dy int) string {
	var b strings.Builder
	switch {
	case dx < 0:
		b.WriteString(csi + strconv.Itoa(-dx) + "D")
	case dx > 0:
		b.WriteString(csi + strconv.Itoa(dx) + "C")
	}
	switch {
	case dy < 0:
		b.WriteString(csi + strconv.Itoa(-dy) + "A")
	case dy > 0:
		b.WriteString(csi + strconv.Itoa(dy) + "B")
	}
	return b.String()
}

// cursorColumn moves to the zero-based column x of the current row.
func cursorColumn(x int) string {
	return csi + strconv.Itoa(max(x, 0)+1) + "G"
}

// cursorPosition moves to the zero-based column x of row y.
func cursorPosition(x, y int) string {
	return csi + strconv.Itoa(max(y, 0)+1) + ";" + strconv.Itoa(max(x, 0)+1) + "H"
}
