// apps/go-cli/internal/game/types.go
//
// Core type definitions for the guess evaluation engine.
// Defines:
//   - Mark: per-letter classification of a guess (correct/wrong place/not in word).
//   - CharGuess, GuessRow: one evaluated letter and one evaluated word.
//   - Reason, Outcome: the closed result of submitting a raw guess.
//   - State: coarse session state (active/won/lost).

package game

import "strings"

// WordLen is the fixed length of answers and guesses.
const WordLen = 5

// Mark is the classification of a single guessed letter.
type Mark int

const (
	NotInWord Mark = iota
	WrongPlace
	Correct
)

func (m Mark) String() string {
	switch m {
	case Correct:
		return "correct"
	case WrongPlace:
		return "wrong_place"
	default:
		return "not_in_word"
	}
}

// CharGuess is one evaluated letter.
type CharGuess struct {
	Ch   rune
	Mark Mark
}

// GuessRow holds the evaluation of one accepted guess, one entry per position.
type GuessRow [WordLen]CharGuess

// Word reassembles the guessed word.
func (r GuessRow) Word() string {
	var b strings.Builder
	for _, c := range r {
		b.WriteRune(c.Ch)
	}
	return b.String()
}

// Solved reports whether every letter is Correct.
func (r GuessRow) Solved() bool {
	for _, c := range r {
		if c.Mark != Correct {
			return false
		}
	}
	return true
}

// Reason explains why a raw guess was rejected.
type Reason int

const (
	ReasonNone Reason = iota
	TooShort
	TooLong
	ContainsNonLetters
	NotInDictionary
)

func (r Reason) String() string {
	switch r {
	case TooShort:
		return "too_short"
	case TooLong:
		return "too_long"
	case ContainsNonLetters:
		return "contains_non_letters"
	case NotInDictionary:
		return "not_in_dictionary"
	default:
		return "none"
	}
}

// OutcomeKind tags an Outcome.
type OutcomeKind int

const (
	OutcomeInvalid OutcomeKind = iota
	OutcomeContinue
	OutcomeWin
	OutcomeLost
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeContinue:
		return "continue"
	case OutcomeWin:
		return "win"
	case OutcomeLost:
		return "lost"
	default:
		return "invalid"
	}
}

// Outcome is the result of SubmitGuess. Reason is set only when Kind is OutcomeInvalid.
type Outcome struct {
	Kind   OutcomeKind
	Reason Reason
}

func invalid(r Reason) Outcome { return Outcome{Kind: OutcomeInvalid, Reason: r} }

// State is the coarse session state.
type State int

const (
	StateActive State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "playing"
	}
}

// Dictionary is the read-only word set used to accept guesses.
// words.Dictionary satisfies it.
type Dictionary interface {
	Contains(word string) bool
}
