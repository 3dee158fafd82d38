package faketty

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/joeycumines/logiface"
)

// TTY is an io.Writer that behaves like an interactive terminal. Every
// write is one chunk: it is recorded verbatim, rendered into an emulated
// screen, observed by each registered Sequencer, and passed on unchanged
// to the configured output.
//
// A TTY is not safe for concurrent use, and must not be written to from
// within a Predicate.
type TTY struct {
	primary    Emulator
	output     io.Writer
	logger     *logiface.Logger[logiface.Event]
	writes     []string
	sequencers []*Sequencer

	rows    int
	columns int

	backend            Backend
	newlineTranslation bool

	// controlPending is set while the most recent chunk was control-only.
	controlPending bool
}

// Snapshot marks a position in the write history, see TTY.Since.
type Snapshot struct {
	offset int
}

// New constructs a TTY.
func New(opts ...Option) (*TTY, error) {
	cfg, err := resolveTTYOptions(opts)
	if err != nil {
		return nil, err
	}
	primary, err := NewEmulator(cfg.backend, cfg.rows, cfg.columns, cfg.newlineTranslation)
	if err != nil {
		return nil, err
	}
	return &TTY{
		primary:            primary,
		output:             cfg.output,
		logger:             cfg.logger,
		rows:               cfg.rows,
		columns:            cfg.columns,
		backend:            cfg.backend,
		newlineTranslation: cfg.newlineTranslation,
	}, nil
}

// Write implements io.Writer, treating p as a single chunk.
func (t *TTY) Write(p []byte) (int, error) {
	return t.WriteString(string(p))
}

// WriteString implements io.StringWriter, treating s as a single chunk. The
// chunk is recorded and observed before it is passed on to the output, so
// an output error does not undo it.
func (t *TTY) WriteString(s string) (int, error) {
	t.writes = append(t.writes, s)
	if s == "" {
		return 0, nil
	}

	control := OnlyANSI(s)
	t.controlPending = control
	t.logger.Trace().
		Int(`chunk`, len(t.writes)-1).
		Int(`length`, len(s)).
		Bool(`control`, control).
		Log(`chunk written`)

	t.primary.Write(s)
	for _, seq := range t.sequencers {
		seq.observe(s, control)
	}

	n, err := io.WriteString(t.output, s)
	if err != nil {
		return n, fmt.Errorf("faketty: output: %w", err)
	}
	return n, nil
}

// AddSequencer registers a Sequencer, which observes only chunks written
// after this call. A nil include defaults to Visible, a nil reset never
// resets, and ResetOnErase is the stock reset heuristic.
func (t *TTY) AddSequencer(include, reset Predicate, opts ...SequencerOption) (*Sequencer, error) {
	cfg, err := resolveSequencerOptions(t.backend, opts)
	if err != nil {
		return nil, err
	}
	emulator, err := NewEmulator(cfg.backend, t.rows, t.columns, t.newlineTranslation)
	if err != nil {
		return nil, err
	}
	if include == nil {
		include = Visible
	}
	s := &Sequencer{
		emulator: emulator,
		include:  include,
		reset:    reset,
		logger:   t.logger,
		name:     cfg.name,
		index:    len(t.sequencers),
	}
	t.sequencers = append(t.sequencers, s)
	t.logger.Debug().
		Int(`sequencer`, s.index).
		Str(`name`, s.name).
		Str(`backend`, cfg.backend.String()).
		Bool(`reset`, reset != nil).
		Log(`sequencer registered`)
	return s, nil
}

// Sequencers returns the registered Sequencers in registration order.
func (t *TTY) Sequencers() []*Sequencer {
	return slices.Clone(t.sequencers)
}

// finalize runs deferred finalization on behalf of accessor.
func (t *TTY) finalize(accessor string) error {
	if len(t.sequencers) == 0 {
		return &NoSequencerError{Accessor: accessor}
	}
	if !t.controlPending {
		return nil
	}
	for _, s := range t.sequencers {
		if !s.finalized {
			t.logger.Debug().
				Int(`sequencer`, s.index).
				Str(`accessor`, accessor).
				Log(`finalizing trailing control sequences`)
		}
		s.finalize()
	}
	return nil
}

// Frames returns the frames of each Sequencer, in registration order.
func (t *TTY) Frames() ([][]string, error) {
	if err := t.finalize(`Frames`); err != nil {
		return nil, err
	}
	frames := make([][]string, len(t.sequencers))
	for i, s := range t.sequencers {
		frames[i] = s.Frames()
	}
	return frames, nil
}

// Sequences returns the sequences of each Sequencer, in registration order.
func (t *TTY) Sequences() ([][][]string, error) {
	if err := t.finalize(`Sequences`); err != nil {
		return nil, err
	}
	sequences := make([][][]string, len(t.sequencers))
	for i, s := range t.sequencers {
		sequences[i] = s.Sequences()
	}
	return sequences, nil
}

// SequenceStrings returns the last frame of each Sequencer, in registration
// order, with "" for a Sequencer that has captured nothing.
func (t *TTY) SequenceStrings() ([]string, error) {
	if err := t.finalize(`SequenceStrings`); err != nil {
		return nil, err
	}
	out := make([]string, len(t.sequencers))
	for i, s := range t.sequencers {
		out[i] = s.last()
	}
	return out, nil
}

// Writes returns a copy of every chunk written so far.
func (t *TTY) Writes() []string {
	return slices.Clone(t.writes)
}

// String replays every chunk into a fresh emulator of the current size and
// renders it.
func (t *TTY) String() string {
	if len(t.writes) == 0 {
		return ""
	}
	e := t.primary.Clone()
	for _, chunk := range t.writes {
		e.Write(chunk)
	}
	return e.Render("")
}

// Resize changes the reported dimensions and resizes every emulator. Values
// below one are raised to one. Frames already captured are unaffected.
func (t *TTY) Resize(rows, columns int) {
	t.rows, t.columns = max(rows, 1), max(columns, 1)
	t.primary.Resize(t.rows, t.columns)
	for _, s := range t.sequencers {
		s.emulator.Resize(t.rows, t.columns)
	}
	t.logger.Debug().
		Int(`rows`, t.rows).
		Int(`columns`, t.columns).
		Log(`resized`)
}

// SetRows changes the reported height, see Resize.
func (t *TTY) SetRows(rows int) {
	t.Resize(rows, t.columns)
}

// SetColumns changes the reported width, see Resize.
func (t *TTY) SetColumns(columns int) {
	t.Resize(t.rows, columns)
}

func (t *TTY) Rows() int {
	return t.rows
}

func (t *TTY) Columns() int {
	return t.columns
}

// WindowSize returns the dimensions as columns, rows.
func (t *TTY) WindowSize() (columns, rows int) {
	return t.columns, t.rows
}

// CursorPos returns the zero-based cursor position after every chunk so far.
func (t *TTY) CursorPos() (column, row int) {
	return t.primary.CursorPosition()
}

// IsTTY always returns true.
func (t *TTY) IsTTY() bool {
	return true
}

// ColorDepth returns the color depth in bits, which is always 1.
func (t *TTY) ColorDepth() int {
	return 1
}

// HasColors reports whether count colors are supported, which holds only
// for monochrome (count <= 2).
func (t *TTY) HasColors(count int) bool {
	return count <= 2
}

// ClearLine erases part of the cursor row.
func (t *TTY) ClearLine(dir ClearLineDirection) error {
	seq, ok := clearLineSequences[dir]
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	return t.emit(seq)
}

// MoveCursor moves the cursor relative to its position. Negative dx moves
// left, negative dy moves up.
func (t *TTY) MoveCursor(dx, dy int) error {
	return t.emit(cursorMove(dx, dy))
}

// CursorTo moves the cursor to the zero-based column x of its row.
func (t *TTY) CursorTo(x int) error {
	return t.emit(cursorColumn(x))
}

// CursorToPos moves the cursor to the zero-based column x of row y.
func (t *TTY) CursorToPos(x, y int) error {
	return t.emit(cursorPosition(x, y))
}

// ClearScreenDown erases from the cursor to the end of the screen.
func (t *TTY) ClearScreenDown() error {
	return t.emit(seqEraseDown)
}

func (t *TTY) emit(seq string) error {
	_, err := t.WriteString(seq)
	return err
}

// Snapshot marks the end of the write history so far. Chunks written
// afterwards are returned by Since and checked by Expect.
func (t *TTY) Snapshot() Snapshot {
	return Snapshot{offset: len(t.writes)}
}

// Since returns a copy of the chunks written after since was taken.
func (t *TTY) Since(since Snapshot) []string {
	offset := since.offset
	if offset > len(t.writes) || offset < 0 {
		offset = 0
	}
	return slices.Clone(t.writes[offset:])
}

// Expect checks the output written since the snapshot against cond,
// returning a descriptive error if it is not satisfied.
func (t *TTY) Expect(since Snapshot, cond Condition, description string) error {
	output := strings.Join(t.Since(since), "")
	if cond(output) {
		return nil
	}
	return fmt.Errorf("%w: %s, in chunks %d to %d: %q",
		ErrConditionNotMet, description, since.offset, len(t.writes), output)
}
