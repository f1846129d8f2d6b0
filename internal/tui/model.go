// Package tui is the interactive guess loop: it reads one line per guess,
// hands it to a game.Session and renders the board.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Model is the bubbletea model for one session.
type Model struct {
	session *game.Session
	date    string
	input   textinput.Model
	keys    KeyMap
	message string
	result  game.OutcomeKind
	done    bool
}

// NewModel creates a model driving session; date is shown in the header.
func NewModel(session *game.Session, date string) Model {
	ti := textinput.New()
	ti.Placeholder = "guess"
	ti.Prompt = "❯ "
	ti.PromptStyle = InputPromptStyle
	ti.CharLimit = 32
	ti.Width = 10
	ti.Focus()

	return Model{
		session: session,
		date:    date,
		input:   ti,
		keys:    DefaultKeyMap(),
		result:  game.OutcomeContinue,
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			if m.done {
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	guess := game.Fold(strings.TrimSpace(m.input.Value()))
	m.input.Reset()

	out := m.session.SubmitGuess(guess)
	log.Debug().
		Str("session", m.session.ID).
		Str("outcome", out.Kind.String()).
		Str("reason", out.Reason.String()).
		Msg("guess")

	m.message = ""
	switch out.Kind {
	case game.OutcomeInvalid:
		m.message = InvalidMessage(out.Reason)
	case game.OutcomeWin:
		m.result, m.done = game.OutcomeWin, true
		m.message = "congratz!"
		return m, tea.Quit
	case game.OutcomeLost:
		m.result, m.done = game.OutcomeLost, true
		m.message = "womp womp, the word was " + strings.ToUpper(m.session.Answer())
		return m, tea.Quit
	}
	return m, nil
}

// View renders the header, board, status line and input.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("wordle " + m.date))
	b.WriteString("\n")
	b.WriteString(RenderBoard(m.session.Render()))
	b.WriteString("\n")
	if m.message != "" {
		style := StatusStyle
		if !m.done {
			style = ErrorStyle
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n")
	}
	if !m.done {
		b.WriteString(StatusStyle.Render(triesLabel(m.session.RemainingTries())))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	return b.String()
}

// Result is the terminal outcome, or OutcomeContinue if the player quit early.
func (m Model) Result() game.OutcomeKind { return m.result }

// InvalidMessage is the feedback for a rejected guess.
func InvalidMessage(r game.Reason) string {
	switch r {
	case game.TooShort:
		return "Word can't be less than 5 characters long!"
	case game.TooLong:
		return "Word can't be more than 5 characters long!"
	case game.ContainsNonLetters:
		return "Word can't contain non-letter characters! [a-z]"
	case game.NotInDictionary:
		return "Word not in dictionary!"
	default:
		return ""
	}
}

// RenderBoard draws one line per row; no rows draws the blank placeholder.
func RenderBoard(rows []game.GuessRow) string {
	if len(rows) == 0 {
		return strings.Repeat("_", game.WordLen) + "\n"
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(RenderRow(r))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderRow colors each letter by its mark.
func RenderRow(r game.GuessRow) string {
	var b strings.Builder
	for _, c := range r {
		b.WriteString(markStyle(c.Mark).Render(string(c.Ch)))
	}
	return b.String()
}

func markStyle(m game.Mark) lipgloss.Style {
	switch m {
	case game.Correct:
		return CorrectStyle
	case game.WrongPlace:
		return WrongPlaceStyle
	default:
		return NotInWordStyle
	}
}

func triesLabel(n int) string {
	if n == 1 {
		return "1 try left"
	}
	return fmt.Sprintf("%d tries left", n)
}
