package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessgame/internal/shell"
)

func main() {
	// Stdout belongs to the game; logs go to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := newRootCmd().Execute(); err != nil {
		if !alreadyReported(err) {
			log.Error().Err(err).Msg("guessgame exited")
		}
		os.Exit(1)
	}
}

// alreadyReported is true when the game UI has shown err to the player.
func alreadyReported(err error) bool {
	var rep *shell.ReportedError
	return errors.As(err, &rep)
}
