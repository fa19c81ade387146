package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/robalobadob/guessgame/internal/game"
)

// textView writes human-readable, optionally colored, lines.
type textView struct {
	out *termenv.Output
}

// RunText plays interactively over plain text lines. Colors are emitted only
// when color is true.
func (s *Shell) RunText(ctx context.Context, in io.Reader, out io.Writer, color bool) error {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}
	v := &textView{out: termenv.NewOutput(out, termenv.WithProfile(profile))}
	return s.run(ctx, in, parseText, v)
}

func (v *textView) line(s termenv.Style) error {
	_, err := fmt.Fprintln(v.out, s)
	return err
}

func (v *textView) instructions(text string) error {
	if err := v.line(v.out.String(msgTitle).Bold().Foreground(v.out.Color("#a78bfa"))); err != nil {
		return err
	}
	return v.line(v.out.String(text))
}

func (v *textView) prompt(st Status) error {
	switch st {
	case StatusReady:
		return v.line(v.out.String(msgStartPrompt).Faint())
	case StatusActive:
		_, err := fmt.Fprint(v.out, v.out.String(msgGuessPrompt+" ").Bold())
		return err
	}
	return nil
}

func (v *textView) started(string) error { return nil }

func (v *textView) notice(text string) error {
	return v.line(v.out.String(text).Faint())
}

func (v *textView) feedback(fb Feedback) error {
	return v.line(v.out.String(fb.Message).Foreground(v.out.Color(outcomeColor(fb.Outcome))))
}

func (v *textView) failure(err error) error {
	return v.line(v.out.String(fmt.Sprintf(msgError, err)).Foreground(v.out.Color("#f87171")))
}

// outcomeColor picks a hex color per outcome: green for a win, red for a
// loss, amber for invalid input and blue for hints.
func outcomeColor(o game.Outcome) string {
	switch o {
	case game.Correct:
		return "#4ade80"
	case game.TooManyGuesses:
		return "#f87171"
	case game.AboveMaximum, game.BelowMinimum, game.NotANumber:
		return "#fbbf24"
	default:
		return "#60a5fa"
	}
}
