package faketty

import "fmt"

// Backend identifies an Emulator implementation.
type Backend int

const (
	// BackendVT wraps github.com/charmbracelet/x/vt.
	BackendVT Backend = iota

	// BackendHeadless wraps github.com/danielgatis/go-headless-term.
	BackendHeadless
)

func (b Backend) valid() bool {
	return b == BackendVT || b == BackendHeadless
}

func (b Backend) String() string {
	switch b {
	case BackendVT:
		return "vt"
	case BackendHeadless:
		return "headless"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Emulator is the screen model a TTY and each Sequencer render through.
// Implementations are not safe for concurrent use.
type Emulator interface {
	// Write interprets s as terminal output.
	Write(s string)

	// Render serializes the visible screen as rows joined by "\n", with
	// trailing line feeds removed, then appends suffix.
	Render(suffix string) string

	// Resize changes the dimensions. Values below one are raised to one.
	Resize(rows, columns int)

	// Reset blanks the screen and homes the cursor, keeping the
	// configuration and dimensions.
	Reset()

	// CursorPosition returns the zero-based cursor column and row.
	CursorPosition() (column, row int)

	// Clone returns a blank Emulator with the same configuration and
	// current dimensions.
	Clone() Emulator
}

// NewEmulator constructs a blank Emulator of the given backend.
func NewEmulator(backend Backend, rows, columns int, newlineTranslation bool) (Emulator, error) {
	switch backend {
	case BackendVT:
		return newVTEmulator(rows, columns, newlineTranslation), nil
	case BackendHeadless:
		return newHeadlessEmulator(rows, columns, newlineTranslation), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %d", ErrInvalidOption, int(backend))
	}
}
