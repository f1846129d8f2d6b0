// apps/go-cli/internal/daily/provider.go
//
// Answer providers: resolve the secret word for a given day.
//   - Provider: local cache first, then the remote daily endpoint; successful
//     fetches are written back to the cache.
//   - OfflineProvider: deterministic pick from the built-in answer list,
//     no network and no cache.

package daily

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
)

// AnswerProvider supplies the secret word for a day.
type AnswerProvider interface {
	Answer(ctx context.Context, day time.Time) (string, error)
}

// Fetcher is the remote half of Provider; *Client satisfies it.
type Fetcher interface {
	Puzzle(ctx context.Context, date time.Time) (*Puzzle, error)
}

// Provider resolves answers from a cache, falling back to a Fetcher.
type Provider struct {
	cache store.Store
	fetch Fetcher
}

// NewProvider wires a cache and a remote fetcher.
func NewProvider(cache store.Store, fetch Fetcher) *Provider {
	return &Provider{cache: cache, fetch: fetch}
}

// Answer returns the day's word. When the remote has nothing for the day the
// error wraps ErrNotPublished and nothing is cached.
func (p *Provider) Answer(ctx context.Context, day time.Time) (string, error) {
	key := DateKey(day)
	w, err := p.cache.Get(ctx, key)
	if err == nil {
		log.Debug().Str("date", key).Msg("answer cache hit")
		return w, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("read cache for %s: %w", key, err)
	}

	puzzle, err := p.fetch.Puzzle(ctx, day)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", key, err)
	}
	if err := p.cache.Put(ctx, key, puzzle.Solution); err != nil {
		// The word is still usable for this run.
		log.Warn().Err(err).Str("date", key).Msg("cache answer")
	}
	log.Info().Str("date", key).Int("puzzle", puzzle.ID).Msg("answer fetched")
	return puzzle.Solution, nil
}

// OfflineProvider picks from a fixed answer list by date.
type OfflineProvider struct {
	answers []string
	salt    string
}

// NewOfflineProvider builds an OfflineProvider; answers must not be empty.
func NewOfflineProvider(answers []string, salt string) (*OfflineProvider, error) {
	if len(answers) == 0 {
		return nil, errors.New("daily: answers list is empty")
	}
	return &OfflineProvider{answers: answers, salt: salt}, nil
}

func (o *OfflineProvider) Answer(ctx context.Context, day time.Time) (string, error) {
	return o.answers[WordIndex(day, o.salt, len(o.answers))], nil
}
