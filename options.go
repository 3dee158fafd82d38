package faketty

import (
	"fmt"
	"io"

	"github.com/joeycumines/logiface"
	"github.com/mattn/go-colorable"
)

// Option configures a TTY.
type Option interface {
	applyTTY(*ttyConfig) error
}

// SequencerOption configures a Sequencer.
type SequencerOption interface {
	applySequencer(*sequencerConfig) error
}

// SharedOption is a return type for options compatible with BOTH New and
// TTY.AddSequencer.
type SharedOption interface {
	Option
	SequencerOption
}

type ttyConfig struct {
	output             io.Writer
	logger             *logiface.Logger[logiface.Event]
	rows               int
	columns            int
	backend            Backend
	newlineTranslation bool
}

type sequencerConfig struct {
	name    string
	backend Backend
}

type sharedOptionImpl struct {
	applyTTYFunc       func(*ttyConfig) error
	applySequencerFunc func(*sequencerConfig) error
}

func (s *sharedOptionImpl) applyTTY(c *ttyConfig) error {
	return s.applyTTYFunc(c)
}

func (s *sharedOptionImpl) applySequencer(c *sequencerConfig) error {
	return s.applySequencerFunc(c)
}

type ttyOptionImpl func(*ttyConfig) error

func (f ttyOptionImpl) applyTTY(c *ttyConfig) error {
	return f(c)
}

type sequencerOptionImpl func(*sequencerConfig) error

func (f sequencerOptionImpl) applySequencer(c *sequencerConfig) error {
	return f(c)
}

// --- Shared Options ---

// WithBackend selects the emulator backend. Given to New it applies to the
// TTY and, by default, every Sequencer; given to TTY.AddSequencer it
// overrides the backend of that Sequencer only.
func WithBackend(backend Backend) SharedOption {
	return &sharedOptionImpl{
		applyTTYFunc: func(c *ttyConfig) error {
			if !backend.valid() {
				return fmt.Errorf("%w: unknown backend %d", ErrInvalidOption, int(backend))
			}
			c.backend = backend
			return nil
		},
		applySequencerFunc: func(c *sequencerConfig) error {
			if !backend.valid() {
				return fmt.Errorf("%w: unknown backend %d", ErrInvalidOption, int(backend))
			}
			c.backend = backend
			return nil
		},
	}
}

// --- TTY Options ---

// WithSize sets the reported dimensions. Default is 25x80.
func WithSize(rows, columns int) Option {
	return ttyOptionImpl(func(c *ttyConfig) error {
		if rows < 1 || columns < 1 {
			return fmt.Errorf("%w: size %dx%d", ErrInvalidOption, rows, columns)
		}
		c.rows = rows
		c.columns = columns
		return nil
	})
}

// WithRows sets the reported height. Default is 25.
func WithRows(rows int) Option {
	return ttyOptionImpl(func(c *ttyConfig) error {
		if rows < 1 {
			return fmt.Errorf("%w: rows %d", ErrInvalidOption, rows)
		}
		c.rows = rows
		return nil
	})
}

// WithColumns sets the reported width. Default is 80.
func WithColumns(columns int) Option {
	return ttyOptionImpl(func(c *ttyConfig) error {
		if columns < 1 {
			return fmt.Errorf("%w: columns %d", ErrInvalidOption, columns)
		}
		c.columns = columns
		return nil
	})
}

// WithNewlineTranslation controls whether a line feed also returns the
// carriage, as a real tty does with the ONLCR output flag. Default is true.
func WithNewlineTranslation(enabled bool) Option {
	return ttyOptionImpl(func(c *ttyConfig) error {
		c.newlineTranslation = enabled
		return nil
	})
}

// WithOutput sets the writer every chunk is passed on to, unchanged.
// Default is io.Discard.
func WithOutput(w io.Writer) Option {
	return ttyOptionImpl(func(c *ttyConfig) error {
		if w == nil {
			return fmt.Errorf("%w: nil output writer", ErrInvalidOption)
		}
		c.output = w
		return nil
	})
}

// WithPlainOutput is like WithOutput, but escape sequences are stripped
// before they reach w. Useful to echo what a program prints into a test log.
func WithPlainOutput(w io.Writer) Option {
	return ttyOptionImpl(func(c *ttyConfig) error {
		if w == nil {
			return fmt.Errorf("%w: nil output writer", ErrInvalidOption)
		}
		c.output = colorable.NewNonColorable(w)
		return nil
	})
}

// WithLogger enables diagnostic logging. A nil logger disables it.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return ttyOptionImpl(func(c *ttyConfig) error {
		c.logger = logger
		return nil
	})
}

// --- Sequencer Options ---

// WithName labels a Sequencer in log output.
func WithName(name string) SequencerOption {
	return sequencerOptionImpl(func(c *sequencerConfig) error {
		c.name = name
		return nil
	})
}

func resolveTTYOptions(opts []Option) (*ttyConfig, error) {
	cfg := &ttyConfig{
		output:             io.Discard,
		rows:               25,
		columns:            80,
		backend:            BackendVT,
		newlineTranslation: true,
	}
	for _, opt := range opts {
		if err := opt.applyTTY(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply tty option: %w", err)
		}
	}
	return cfg, nil
}

func resolveSequencerOptions(backend Backend, opts []SequencerOption) (*sequencerConfig, error) {
	cfg := &sequencerConfig{
		backend: backend,
	}
	for _, opt := range opts {
		if err := opt.applySequencer(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply sequencer option: %w", err)
		}
	}
	return cfg, nil
}
