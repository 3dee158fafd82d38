// Package faketty provides a fake interactive terminal for testing programs
// that draw on one: spinners, progress bars, prompts and anything else that
// redraws itself with cursor motion and erase sequences.
//
// A TTY is handed to the code under test in place of os.Stdout or
// os.Stderr. It reports itself as a terminal of a configurable size, and
// records every write verbatim as a chunk. Test code can then ask what a
// person would be looking at:
//
//   - TTY.String replays every chunk into a fresh emulated screen and
//     renders it as text.
//   - TTY.Writes returns the chunks themselves.
//   - A Sequencer, registered with TTY.AddSequencer, captures a frame each
//     time a chunk prints something, giving the visible history of the
//     screen one redraw at a time.
//
// A Sequencer may also be given a reset Predicate. ResetOnErase blanks the
// Sequencer's screen whenever an erase sequence arrives, which is what a
// program usually assumes it has achieved when it clears its previous
// output. If the frames of a resetting Sequencer ever disagree with those
// of a plain one, the program is leaving stale text behind:
//
//	tty, err := faketty.New(faketty.WithColumns(40))
//	if err != nil {
//	    t.Fatal(err)
//	}
//	if _, err := tty.AddSequencer(nil, nil); err != nil {
//	    t.Fatal(err)
//	}
//	if _, err := tty.AddSequencer(nil, faketty.ResetOnErase); err != nil {
//	    t.Fatal(err)
//	}
//
//	runSpinner(tty)
//
//	frames, err := tty.Frames()
//	if err != nil {
//	    t.Fatal(err)
//	}
//	if diff := cmp.Diff(frames[0], frames[1]); diff != "" {
//	    t.Errorf("incomplete clear (-plain +reset):\n%s", diff)
//	}
//
// Frames are rendered by an Emulator. The default backend, BackendVT, wraps
// github.com/charmbracelet/x/vt; BackendHeadless wraps
// github.com/danielgatis/go-headless-term. Both trim trailing blanks from
// every row.
//
// When the last chunk written was control-only (see OnlyANSI), the next
// call to Frames, Sequences or SequenceStrings records one more frame per
// Sequencer, so that the effect of trailing cursor motion and erase
// sequences is not lost. Each run of control-only chunks records at most
// one such frame; only a chunk with visible content starts a new run.
//
// Nothing in this package is safe for concurrent use.
package faketty
