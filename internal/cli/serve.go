package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/httpserver"
)

var serveAddr string

// serveCmd runs the HTTP mirror over the local cache.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve cached words over HTTP",
	Long: `Serve cached daily words in the upstream JSON shape, plus the dictionary.

Point another player's WORDLE_API_BASE at http://<host>:<port>/svc/wordle/v2.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dict, err := loadDictionary(cmd.Context())
		if err != nil {
			return err
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		addr := serveAddr
		if addr == "" {
			addr = ":" + cfg.Port
		}
		log.Info().Str("addr", addr).Str("backend", cfg.CacheBackend).Msg("starting mirror")
		return httpserver.New(st, dict).Start(cmd.Context(), addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :$PORT)")
}
