package faketty

import (
	"slices"
	"strings"

	"github.com/joeycumines/logiface"
)

// Sequencer observes every chunk written to a TTY from the moment it is
// registered, replaying them into a private Emulator and capturing a frame
// (the rendered screen) plus its sequence (the chunks behind the frame)
// each time its inclusion Predicate holds.
//
// A reset Predicate makes the Sequencer discard its pending chunks and
// blank its Emulator whenever it fires. Comparing the frames of a
// Sequencer that resets on erase against one that never resets exposes
// programs that clear less of the screen than they think they do.
type Sequencer struct {
	emulator Emulator
	include  Predicate
	reset    Predicate
	logger   *logiface.Logger[logiface.Event]
	name     string

	pending   []string
	lastLog   []string
	sequences [][]string
	frames    []string

	index int

	finalized bool
}

// observe runs the per-chunk pipeline for one chunk.
func (s *Sequencer) observe(chunk string, control bool) {
	if !control {
		s.finalized = false
	}
	s.pending = append(s.pending, chunk)
	s.emulator.Write(chunk)
	s.lastLog = slices.Clone(s.pending)

	if s.include(chunk, s) {
		s.capture(slices.Clone(s.pending), renderFrame(s.emulator, chunk, control))
	}

	if s.reset != nil && s.reset(chunk, s) {
		s.logger.Debug().
			Int(`sequencer`, s.index).
			Str(`name`, s.name).
			Int(`discarded`, len(s.pending)).
			Log(`sequencer reset`)
		s.pending = nil
		s.emulator.Reset()
	}
}

func (s *Sequencer) capture(sequence []string, frame string) {
	s.sequences = append(s.sequences, sequence)
	s.frames = append(s.frames, frame)
	s.logger.Debug().
		Int(`sequencer`, s.index).
		Str(`name`, s.name).
		Int(`frame`, len(s.frames)-1).
		Int(`chunks`, len(sequence)).
		Log(`frame captured`)
}

// finalize records the state left behind by trailing control-only chunks,
// once per run of them.
func (s *Sequencer) finalize() {
	if s.finalized {
		return
	}
	s.finalized = true
	s.capture(slices.Clone(s.lastLog), s.emulator.Render(""))
}

// renderFrame serializes the emulator for a frame. The trailing whitespace
// of a chunk that prints something is kept verbatim, since the emulator
// cannot show trailing line feeds.
func renderFrame(e Emulator, chunk string, control bool) string {
	frame := e.Render("")
	if control {
		return frame
	}
	run := trailingWhitespace(chunk)
	if run == "" {
		return frame
	}
	if strings.HasSuffix(frame, run) {
		frame = frame[:len(frame)-len(run)]
	} else {
		frame = strings.TrimSuffix(frame, strings.TrimRight(run, "\n"))
	}
	return frame + run
}

// Index returns the registration order of the Sequencer, from zero.
func (s *Sequencer) Index() int {
	return s.index
}

// Name returns the label given by WithName, if any.
func (s *Sequencer) Name() string {
	return s.name
}

// Pending returns a copy of the chunks received since registration or the
// last reset.
func (s *Sequencer) Pending() []string {
	return slices.Clone(s.pending)
}

// LastLog returns a copy of the pending log as it stood after the most
// recent chunk, before any reset that chunk triggered.
func (s *Sequencer) LastLog() []string {
	return slices.Clone(s.lastLog)
}

// Frames returns a copy of the captured frames. Unlike TTY.Frames, it does
// not finalize trailing control-only chunks.
func (s *Sequencer) Frames() []string {
	return slices.Clone(s.frames)
}

// Sequences returns a deep copy of the captured sequences, aligned with
// Frames.
func (s *Sequencer) Sequences() [][]string {
	sequences := make([][]string, len(s.sequences))
	for i, sequence := range s.sequences {
		sequences[i] = slices.Clone(sequence)
	}
	return sequences
}

// last returns the most recent frame, or "" if there is none.
func (s *Sequencer) last() string {
	if len(s.frames) == 0 {
		return ""
	}
	return s.frames[len(s.frames)-1]
}
