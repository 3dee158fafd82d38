package faketty

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wormSpinner is a minimal spinner, drawing a two frame worm followed by
// text, that redraws itself in one of three ways.
type wormSpinner struct {
	tty        *TTY
	text       string
	indent     int
	worm       int
	toClear    int
	lineCount  int
	clearStyle clearStyle
}

type clearStyle int

const (
	// clearEachLine erases each line whole, moving up between them.
	clearEachLine clearStyle = iota
	// clearFromColumnZero homes the column once, then erases each line
	// rightwards.
	clearFromColumnZero
	// clearBelow only erases from the cursor down, leaving earlier lines.
	clearBelow
)

func newWormSpinner(tty *TTY, style clearStyle) *wormSpinner {
	s := &wormSpinner{tty: tty, clearStyle: style}
	s.set("foo", 0)
	return s
}

func (s *wormSpinner) set(text string, indent int) {
	s.text, s.indent = text, indent
	s.lineCount = 0
	columns := s.tty.Columns()
	for _, line := range strings.Split(StripANSI(strings.Repeat(" ", s.indent)+"--"+s.text), "\n") {
		s.lineCount += max(1, (runewidth.StringWidth(line)+columns-1)/columns)
	}
}

func (s *wormSpinner) frame() string {
	w := [...]string{"-", "~"}[s.worm]
	s.worm = (s.worm + 1) % 2
	return w + " " + s.text
}

func (s *wormSpinner) clear() error {
	var err error
	check := func(e error) {
		if err == nil {
			err = e
		}
	}
	switch s.clearStyle {
	case clearEachLine:
		for i := 0; i < s.toClear; i++ {
			if i > 0 {
				check(s.tty.MoveCursor(0, -1))
			}
			check(s.tty.ClearLine(ClearLineWhole))
			check(s.tty.CursorTo(s.indent))
		}
	case clearFromColumnZero:
		check(s.tty.CursorTo(0))
		for i := 0; i < s.toClear; i++ {
			if i > 0 {
				check(s.tty.MoveCursor(0, -1))
			}
			check(s.tty.ClearLine(ClearLineRight))
		}
		check(s.tty.CursorTo(s.indent))
	case clearBelow:
		check(s.tty.ClearScreenDown())
		check(s.tty.CursorTo(s.indent))
	}
	s.toClear = 0
	return err
}

func (s *wormSpinner) render() error {
	if err := s.clear(); err != nil {
		return err
	}
	if _, err := s.tty.WriteString(s.frame()); err != nil {
		return err
	}
	s.toClear = s.lineCount
	return nil
}

func (s *wormSpinner) start() error {
	if _, err := s.tty.WriteString("\x1b[?25l"); err != nil {
		return err
	}
	return s.render()
}

func (s *wormSpinner) stop() error {
	s.worm = 0
	if err := s.clear(); err != nil {
		return err
	}
	_, err := s.tty.WriteString("\x1b[?25h")
	return err
}

func newSpinnerTTY(t *testing.T, columns int) *TTY {
	t.Helper()
	tty := newTestTTY(t, WithColumns(columns))
	addSequencer(t, tty, nil, nil, WithName("plain"))
	addSequencer(t, tty, nil, ResetOnErase, WithName("cleared"))
	return tty
}

// requireFullyCleared asserts that the spinner never left stale output
// behind, i.e. the plain and resetting sequencers agree on every frame.
func requireFullyCleared(t *testing.T, tty *TTY, want string) {
	t.Helper()

	last, err := tty.SequenceStrings()
	require.NoError(t, err)
	frames, err := tty.Frames()
	require.NoError(t, err)

	assert.Equal(t, want, last[0])
	assert.Equal(t, last[0], last[1])
	require.NotEmpty(t, frames[0])
	assert.Equal(t, last[0], frames[0][len(frames[0])-1])
	if diff := cmp.Diff(frames[0], frames[1]); diff != "" {
		t.Errorf("stale output left by clear (-plain +cleared):\n%s", diff)
	}
}

func TestSpinner(t *testing.T) {
	for _, style := range [...]struct {
		name  string
		style clearStyle
	}{
		{"each line", clearEachLine},
		{"from column zero", clearFromColumnZero},
	} {
		t.Run(style.name, func(t *testing.T) {
			t.Run("basic", func(t *testing.T) {
				tty := newSpinnerTTY(t, 80)
				s := newWormSpinner(tty, style.style)

				require.NoError(t, s.render())
				s.set("bar", 5)
				require.NoError(t, s.render())

				requireFullyCleared(t, tty, "     ~ bar")
			})

			t.Run("whitespace and multiple lines", func(t *testing.T) {
				tty := newSpinnerTTY(t, 20)
				s := newWormSpinner(tty, style.style)

				require.NoError(t, s.render())

				s.set("\n foo \n"+strings.Repeat("0", 25)+" bar \n baz ", 0)
				require.NoError(t, s.render())

				s.set("foo\nbar\n ", 0)
				require.NoError(t, s.render())

				s.set(strings.Repeat("0", 25), 0)
				require.NoError(t, s.render())

				s.set(strings.Repeat("🦄", 25), 0)
				require.NoError(t, s.render())

				s.set(strings.Repeat("🦄", 18)+"\nfoo", 0)
				require.NoError(t, s.render())

				s.set(s.text, 10)
				require.NoError(t, s.render())

				requireFullyCleared(t, tty, "          - 🦄🦄🦄🦄\n🦄🦄🦄🦄🦄🦄🦄🦄🦄🦄\n🦄🦄🦄🦄\nfoo")
			})

			t.Run("start and stop", func(t *testing.T) {
				tty := newSpinnerTTY(t, 80)
				s := newWormSpinner(tty, style.style)

				require.NoError(t, s.start())
				s.set("foobar", 0)
				require.NoError(t, s.render())
				require.NoError(t, s.stop())

				s.set("foo", 5)
				require.NoError(t, s.start())
				require.NoError(t, s.stop())

				requireFullyCleared(t, tty, "")
			})
		})
	}
}

func TestSpinner_clearBelow(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		tty := newSpinnerTTY(t, 80)
		s := newWormSpinner(tty, clearBelow)

		require.NoError(t, s.render())
		s.set("bar", 5)
		require.NoError(t, s.render())

		last, err := tty.SequenceStrings()
		require.NoError(t, err)
		assert.Equal(t, []string{"- foo~ bar", "     ~ bar"}, last)

		frames, err := tty.Frames()
		require.NoError(t, err)
		assert.NotEqual(t, frames[0], frames[1])
	})

	t.Run("whitespace and multiple lines", func(t *testing.T) {
		tty := newSpinnerTTY(t, 15)
		s := newWormSpinner(tty, clearBelow)

		require.NoError(t, s.render())
		s.set(" foo \n"+strings.Repeat("0", 20)+"\n bar \n baz ", 5)
		require.NoError(t, s.render())
		s.set("foo\nbar\n ", 0)
		require.NoError(t, s.render())

		last, err := tty.SequenceStrings()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"- foo~  foo\n000000000000000\n00000\n bar\n- foo\nbar\n ",
			"- foo\nbar\n ",
		}, last)
	})

	t.Run("indent", func(t *testing.T) {
		tty := newSpinnerTTY(t, 15)
		s := newWormSpinner(tty, clearBelow)

		require.NoError(t, s.render())
		s.set(strings.Repeat("1", 25), 5)
		require.NoError(t, s.render())
		s.set(strings.Repeat("0", 10), 10)
		require.NoError(t, s.render())

		last, err := tty.SequenceStrings()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"- foo~ 11111111\n111111111111111\n11        - 000\n0000000",
			"          - 000\n0000000",
		}, last)
	})
}
