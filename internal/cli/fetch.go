package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
)

var (
	fetchDay  string
	fetchShow bool
)

// fetchCmd fills the answer cache for a day without playing.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Cache the word for a day without playing",
	Long: `Resolve the word for a day into the answer cache, fetching it if needed.

Exits non-zero when the word for that day is not published yet.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchDay, "day", "d", "", "the day to fetch, YYYY-MM-DD (default today, UTC)")
	fetchCmd.Flags().BoolVar(&fetchShow, "show", false, "print the word (spoilers)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	day, err := resolveDay(fetchDay, nowFunc())
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	key := daily.DateKey(day)
	word, err := daily.NewProvider(st, daily.NewClient(cfg.APIBase, cfg.HTTPTimeout)).Answer(ctx, day)
	if errors.Is(err, daily.ErrNotPublished) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: no word for this date yet.\n", key)
		return ErrNoSession
	}
	if err != nil {
		return err
	}

	if fetchShow {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, word)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: successfully read/fetched the word\n", key)
	}

	dates, err := st.Dates(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cached days: %d\n", len(dates))
	return nil
}
