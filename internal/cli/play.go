package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/tui"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

var (
	dayFlag          string
	updateDictionary bool
	maxTries         int
	strict           bool
	offline          bool
)

func registerPlayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&dayFlag, "day", "d", "", "the day of the puzzle to play, YYYY-MM-DD (default today, UTC)")
	f.BoolVarP(&updateDictionary, "update-dictionary", "u", false, "force-update the dictionary and exit")
	f.IntVar(&maxTries, "max-tries", game.DefaultMaxTries, "number of guesses allowed")
	f.BoolVar(&strict, "strict", false, "count repeated letters like the official game")
	f.BoolVar(&offline, "offline", false, "pick the word from the built-in list instead of fetching it")
}

// resolveDay parses --day, defaulting to today.
func resolveDay(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return daily.ParseDate(daily.DateKey(now))
	}
	d, err := daily.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --day %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if updateDictionary {
		path := filepath.Join(cfg.CacheDir, words.FileName)
		d, err := words.Ensure(ctx, httpClient(), path, cfg.DictionaryURL, true)
		if err != nil {
			return fmt.Errorf("update dictionary: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "dictionary updated: %d words\n", d.Len())
		return nil
	}

	if cmd.Flags().Changed("max-tries") {
		cfg.MaxTries = maxTries
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = strict
	}
	if cfg.MaxTries < 1 {
		return fmt.Errorf("--max-tries must be at least 1, got %d", cfg.MaxTries)
	}

	day, err := resolveDay(dayFlag, nowFunc())
	if err != nil {
		return err
	}

	session, err := newSession(ctx, day, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	log.Info().Str("session", session.ID).Str("date", daily.DateKey(day)).Msg("session started")

	p := tea.NewProgram(tui.NewModel(session, daily.DateKey(day)), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	if m, ok := final.(tui.Model); ok {
		log.Info().Str("session", session.ID).Str("outcome", m.Result().String()).Msg("session ended")
	}
	return nil
}

// newSession resolves the dictionary and the day's answer and starts a session.
// When no word is published for day it prints a notice to stderr and returns ErrNoSession.
func newSession(ctx context.Context, day time.Time, stderr io.Writer) (*game.Session, error) {
	dict, err := loadDictionary(ctx)
	if err != nil {
		return nil, err
	}

	st, err := openStore()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	provider, err := newProvider(st, offline)
	if err != nil {
		return nil, err
	}
	answer, err := provider.Answer(ctx, day)
	if errors.Is(err, daily.ErrNotPublished) {
		fmt.Fprintf(stderr, "no wordle for %s yet; it probably is not published.\n", daily.DateKey(day))
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	if !game.IsAnswer(answer) {
		return nil, fmt.Errorf("cached word for %s is malformed: %q", daily.DateKey(day), answer)
	}

	var opts []game.Option
	if cfg.Strict {
		opts = append(opts, game.WithScoring(game.ScoreStrict))
	}
	// The answer is always an acceptable guess, even if the word list lags behind.
	return game.NewSession(answer, cfg.MaxTries, dict.With(answer), opts...), nil
}
