package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/cli"
)

func main() {
	// stdout belongs to the board; logs go to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		// a second interrupt kills the process if shutdown hangs
		<-ctx.Done()
		stop()
	}()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
