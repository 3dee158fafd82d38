package faketty

import (
	"regexp"
	"strings"
)

// Condition tests text, either the output gathered by TTY.Expect or a
// single chunk when adapted by When.
type Condition func(output string) bool

// Contains is satisfied when substr occurs in the output as written, or in
// the output with escape sequences and carriage returns removed.
func Contains(substr string) Condition {
	return func(output string) bool {
		return strings.Contains(output, substr) ||
			strings.Contains(normalizeOutput(output), substr)
	}
}

// Matches is satisfied when re matches the output with escape sequences
// and carriage returns removed.
func Matches(re *regexp.Regexp) Condition {
	return func(output string) bool {
		return re.MatchString(normalizeOutput(output))
	}
}

// Predicate decides whether a Sequencer acts on the chunk just written. The
// Sequencer has already appended the chunk to its pending log and fed it
// to its emulator. A Predicate must not write to the TTY.
type Predicate func(chunk string, s *Sequencer) bool

// eraseSequence matches erase in line (EL) and erase in display (ED) with
// the parameters 0, 1 and 2.
var eraseSequence = regexp.MustCompile(`\x1b\[[0-2]?[KJ]`)

// Visible is the default inclusion Predicate: a frame is captured for every
// chunk that prints something, i.e. is not control-only.
func Visible(chunk string, _ *Sequencer) bool {
	return !OnlyANSI(chunk)
}

// ResetOnErase is the stock reset Predicate. It fires once the pending log
// holds an erase in line or erase in display sequence, modelling a screen
// that is fully cleared whenever the program claims to clear part of it.
func ResetOnErase(chunk string, s *Sequencer) bool {
	return PendingMatches(eraseSequence)(chunk, s)
}

// When adapts a Condition on the chunk into a Predicate.
func When(cond Condition) Predicate {
	return func(chunk string, _ *Sequencer) bool {
		return cond(chunk)
	}
}

// PendingMatches creates a Predicate satisfied when any chunk in the
// Sequencer's pending log matches re.
func PendingMatches(re *regexp.Regexp) Predicate {
	return func(_ string, s *Sequencer) bool {
		for _, chunk := range s.pending {
			if re.MatchString(chunk) {
				return true
			}
		}
		return false
	}
}
