// apps/go-cli/internal/game/engine.go
//
// Core game engine for a single daily session.
// Responsibilities:
//   - Validate raw guesses (length, alphabetic, dictionary) in a fixed order.
//   - Score guesses against the answer.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The dictionary and the answer come from collaborators (words, daily packages).
//   - Invalid guesses never consume a try.
//   - len(history) + remaining == max tries at all times.
package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// DefaultMaxTries matches the number of rows on the board.
const DefaultMaxTries = 5

// ErrSessionOver is the panic value when a guess is submitted after a terminal outcome.
var ErrSessionOver = errors.New("game: session already finished")

// Scoring selects how repeated letters are classified.
type Scoring int

const (
	// ScoreContains marks any non-exact letter found anywhere in the answer as WrongPlace.
	ScoreContains Scoring = iota
	// ScoreStrict lets each answer letter satisfy at most one WrongPlace/Correct mark.
	ScoreStrict
)

// Option configures a Session.
type Option func(*Session)

// WithScoring picks the scoring mode. The default is ScoreContains.
func WithScoring(s Scoring) Option {
	return func(g *Session) { g.scoring = s }
}

// Session is the state machine for one game.
type Session struct {
	ID        string
	answer    string
	maxTries  int
	remaining int
	history   []GuessRow
	state     State
	dict      Dictionary
	scoring   Scoring
}

// NewSession starts an active session. It panics if answer is not five lowercase
// ASCII letters or maxTries is below one; both are caller bugs.
func NewSession(answer string, maxTries int, dict Dictionary, opts ...Option) *Session {
	if !IsAnswer(answer) {
		panic(fmt.Sprintf("game: invalid answer %q", answer))
	}
	if maxTries < 1 {
		panic(fmt.Sprintf("game: invalid max tries %d", maxTries))
	}
	s := &Session{
		ID:        uuid.NewString(),
		answer:    answer,
		maxTries:  maxTries,
		remaining: maxTries,
		history:   []GuessRow{},
		state:     StateActive,
		dict:      dict,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SubmitGuess validates raw, scores it and advances the session.
//
// Invalid input returns an OutcomeInvalid with the first failing Reason and leaves
// the session untouched. Calling it after OutcomeWin or OutcomeLost panics with
// ErrSessionOver.
func (s *Session) SubmitGuess(raw string) Outcome {
	if s.state != StateActive {
		panic(ErrSessionOver)
	}
	guess := Fold(raw)
	if r := Validate(guess, s.dict); r != ReasonNone {
		return invalid(r)
	}

	var row GuessRow
	if s.scoring == ScoreStrict {
		row = EvaluateStrict(s.answer, guess)
	} else {
		row = Evaluate(s.answer, guess)
	}
	s.history = append(s.history, row)
	s.remaining--

	switch {
	case row.Solved():
		s.state = StateWon
		return Outcome{Kind: OutcomeWin}
	case s.remaining == 0:
		s.state = StateLost
		return Outcome{Kind: OutcomeLost}
	default:
		return Outcome{Kind: OutcomeContinue}
	}
}

// Render returns the accepted guesses in submission order.
// The returned slice is a copy; an empty slice means no guesses yet.
func (s *Session) Render() []GuessRow {
	out := make([]GuessRow, len(s.history))
	copy(out, s.history)
	return out
}

// State reports the current session state.
func (s *Session) State() State { return s.state }

// RemainingTries is the number of guesses still allowed.
func (s *Session) RemainingTries() int { return s.remaining }

// MaxTries is the configured number of guesses.
func (s *Session) MaxTries() int { return s.maxTries }

// Answer returns the secret word, for revealing once the session is over.
func (s *Session) Answer() string { return s.answer }

// Validate classifies a raw guess. Checks run in order (too short, too long,
// non-letters, dictionary) and the first failure wins. A–Z is folded to a–z
// before the alphabet and dictionary checks; nothing else is folded.
func Validate(raw string, dict Dictionary) Reason {
	n := utf8.RuneCountInString(raw)
	switch {
	case n < WordLen:
		return TooShort
	case n > WordLen:
		return TooLong
	}
	w := Fold(raw)
	if !isAlpha(w) {
		return ContainsNonLetters
	}
	if dict == nil || !dict.Contains(w) {
		return NotInDictionary
	}
	return ReasonNone
}

// Evaluate scores guess against answer. A letter that is not an exact match is
// WrongPlace whenever the answer contains it anywhere, regardless of how many
// times that letter was already matched.
func Evaluate(answer, guess string) GuessRow {
	var row GuessRow
	for i := 0; i < WordLen; i++ {
		c := guess[i]
		row[i].Ch = rune(c)
		switch {
		case answer[i] == c:
			row[i].Mark = Correct
		case strings.IndexByte(answer, c) >= 0:
			row[i].Mark = WrongPlace
		default:
			row[i].Mark = NotInWord
		}
	}
	return row
}

// EvaluateStrict implements the standard two-pass scoring.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non-correct) answer letters.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count for that
//     letter, mark WrongPlace and decrement; otherwise NotInWord.
func EvaluateStrict(answer, guess string) GuessRow {
	var row GuessRow
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		row[i].Ch = rune(guess[i])
		if guess[i] == answer[i] {
			row[i].Mark = Correct
		} else {
			counts[idx(answer[i])]++
		}
	}
	for i := 0; i < WordLen; i++ {
		if row[i].Mark == Correct {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			row[i].Mark = WrongPlace
			counts[j]--
		} else {
			row[i].Mark = NotInWord
		}
	}
	return row
}

// Fold lowercases ASCII A–Z only. Other runes pass through untouched, so
// look-alikes such as the Kelvin sign still fail the alphabet check.
func Fold(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// IsAnswer reports whether s can be a session answer: five lowercase ASCII letters.
func IsAnswer(s string) bool {
	return len(s) == WordLen && isAlpha(s)
}

// idx maps a lowercase ASCII letter to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(b byte) int { return int(b - 'a') }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
