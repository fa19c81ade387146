package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/robalobadob/guessgame/internal/config"
	"github.com/robalobadob/guessgame/internal/game"
	"github.com/robalobadob/guessgame/internal/shell"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "guessgame",
		Short:         "Guess the random number",
		Long:          `guessgame picks a random number within a range and gives hints until you find it or run out of guesses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	play := newPlayCmd()
	root.AddCommand(play, newVersionCmd())
	root.Flags().AddFlagSet(play.Flags())
	root.RunE = play.RunE
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of guessgame",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "guessgame version %s\n", Version)
		},
	}
}

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg)
			if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return play(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.Int("min", 0, "inclusive lower bound (env GUESS_MIN)")
	f.Int("max", 0, "inclusive upper bound (env GUESS_MAX)")
	f.Uint8("attempts", 0, "maximum number of guesses (env GUESS_MAX_ATTEMPTS)")
	f.Int64("seed", 0, "seed for a reproducible target sequence (env GUESS_SEED)")
	f.Bool("json", false, "read and write JSON lines instead of text (env GUESS_JSON)")
	f.Bool("no-color", false, "disable colored output (env GUESS_NO_COLOR)")
	f.String("log-level", "", "zerolog level (env LOG_LEVEL)")
	return cmd
}

// applyFlags overrides environment values with the flags the user set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("min") {
		cfg.Min, _ = f.GetInt("min")
	}
	if f.Changed("max") {
		cfg.Max, _ = f.GetInt("max")
	}
	if f.Changed("attempts") {
		cfg.MaxAttempts, _ = f.GetUint8("attempts")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("json") {
		cfg.JSON, _ = f.GetBool("json")
	}
	if f.Changed("no-color") {
		cfg.NoColor, _ = f.GetBool("no-color")
	}
	if f.Changed("log-level") {
		cfg.LogLevel, _ = f.GetString("log-level")
	}
}

// play wires the configuration into a shell and runs the chosen front end.
func play(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	src := game.NewCryptoSource()
	if cfg.Seed != 0 {
		src = game.NewSeededSource(cfg.Seed)
		log.Debug().Int64("seed", cfg.Seed).Msg("using seeded random source")
	}

	sh := shell.New(shell.Options{
		Source:      src,
		Min:         cfg.Min,
		Max:         cfg.Max,
		MaxAttempts: cfg.MaxAttempts,
	})
	defer func() {
		if err := sh.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("close shell")
		}
	}()
	if cfg.JSON {
		return sh.RunJSON(ctx, in, out)
	}
	return sh.RunText(ctx, in, out, !cfg.NoColor && isTerminal(out))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
