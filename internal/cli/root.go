// Package cli is the command tree: play (default), fetch and serve.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// ErrNoSession is returned when the day's word is not available; the message
// has already been printed.
var ErrNoSession = errors.New("no session today")

// nowFunc is swapped in tests.
var nowFunc = time.Now

var (
	cfg          *config.Config
	cacheDir     string
	cacheBackend string
)

// rootCmd plays today's puzzle when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Play the daily word puzzle in the terminal",
	Long: `Play the daily five-letter word puzzle in the terminal.

The day's word is fetched once and cached by date in the cache dir, together
with the guess dictionary. Later runs for the same day work offline.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cacheDir, "cache-dir", "c", "", "directory to place data in (default $WORDLE_CACHE_DIR or the user cache dir)")
	rootCmd.PersistentFlags().StringVar(&cacheBackend, "cache-backend", "", "answer cache backend: file, sqlite or memory")

	registerPlayFlags(rootCmd)
	rootCmd.AddCommand(fetchCmd, serveCmd)
}

// Execute runs the command tree.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrNoSession) {
		log.Error().Err(err).Msg("wordle")
	}
	return err
}

// loadConfig reads the environment and applies persistent flag overrides.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if cacheDir != "" {
		c.CacheDir = cacheDir
	}
	if cacheBackend != "" {
		c.CacheBackend = cacheBackend
	}
	c.ApplyLogLevel()
	cfg = c
	log.Debug().Str("dir", cfg.CacheDir).Str("backend", cfg.CacheBackend).Msg("config loaded")
	return nil
}

func httpClient() *http.Client {
	return &http.Client{Timeout: cfg.HTTPTimeout}
}

// openStore opens the configured answer cache.
func openStore() (store.Store, error) {
	st, err := store.Open(cfg.CacheBackend, cfg.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("open %s cache: %w", cfg.CacheBackend, err)
	}
	return st, nil
}

// loadDictionary returns the cached dictionary, downloading it on first use.
// If that fails the embedded list is used.
func loadDictionary(ctx context.Context) (*words.Dictionary, error) {
	path := filepath.Join(cfg.CacheDir, words.FileName)
	d, err := words.Ensure(ctx, httpClient(), path, cfg.DictionaryURL, false)
	if err == nil {
		return d, nil
	}
	log.Warn().Err(err).Msg("dictionary unavailable, using built-in list")
	return words.Embedded()
}

// newProvider builds the answer provider for the current config.
func newProvider(st store.Store, offline bool) (daily.AnswerProvider, error) {
	if offline {
		answers, err := words.Answers()
		if err != nil {
			return nil, err
		}
		return daily.NewOfflineProvider(answers, cfg.DailySalt)
	}
	return daily.NewProvider(st, daily.NewClient(cfg.APIBase, cfg.HTTPTimeout)), nil
}
