package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReportedError wraps an error a front end has already shown to the player,
// so callers can exit without surfacing it a second time.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// action is what a line of input asks the shell to do.
type action int

const (
	actDefault action = iota // start when ready, guess when active
	actStart
	actGuess
	actQuit
	actInvalid // rejected request; err says why
)

type command struct {
	act   action
	value string
	err   error
}

// invalid builds a rejected command; it never reaches the engine.
func invalid(format string, args ...any) command {
	return command{act: actInvalid, err: fmt.Errorf("%w: "+format, append([]any{ErrBadRequest}, args...)...)}
}

// view renders shell events for one front end.
type view interface {
	instructions(text string) error
	prompt(st Status) error
	started(sessionID string) error
	notice(text string) error
	feedback(fb Feedback) error
	failure(err error) error
}

type lineResult struct {
	text string
	err  error
}

// readLines feeds lines from r into a channel until EOF or ctx is done.
func readLines(ctx context.Context, r io.Reader) <-chan lineResult {
	ch := make(chan lineResult)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case ch <- lineResult{text: sc.Text()}:
			case <-ctx.Done():
				return
			}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		select {
		case ch <- lineResult{err: err}:
		case <-ctx.Done():
		}
	}()
	return ch
}

// run is the event loop shared by the text and JSON front ends.
// It returns nil on quit or end of input, and the disabling error otherwise.
func (s *Shell) run(ctx context.Context, in io.Reader, parse func(string) command, v view) error {
	if err := v.instructions(s.Instructions()); err != nil {
		return err
	}
	if s.status == StatusDisabled {
		if err := v.failure(s.err); err != nil {
			return err
		}
		return &ReportedError{Err: s.err}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(ctx, in)
	for {
		if err := v.prompt(s.status); err != nil {
			return err
		}

		var line lineResult
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				return nil
			}
			line = l
		}
		if errors.Is(line.err, io.EOF) {
			return nil
		}
		if line.err != nil {
			return line.err
		}

		cmd := parse(line.text)
		dropped := ""
		if cmd.act == actDefault {
			cmd.act = actGuess
			if s.status == StatusReady {
				cmd.act = actStart
				if !strings.EqualFold(cmd.value, "start") {
					dropped = cmd.value
				}
			}
		}

		switch cmd.act {
		case actQuit:
			return nil
		case actStart:
			if err := s.Start(ctx); err != nil {
				if werr := v.failure(err); werr != nil {
					return werr
				}
			} else {
				if err := v.started(s.sessionID); err != nil {
					return err
				}
				// Typing a number before starting only starts the round.
				if dropped != "" {
					if err := v.notice(fmt.Sprintf(msgInputDropped, dropped)); err != nil {
						return err
					}
				}
			}
		case actInvalid:
			if err := v.failure(cmd.err); err != nil {
				return err
			}
		case actGuess:
			if fb, err := s.Submit(ctx, cmd.value); err != nil {
				if werr := v.failure(err); werr != nil {
					return werr
				}
			} else if err := v.feedback(fb); err != nil {
				return err
			}
		}

		if s.status == StatusDisabled {
			return &ReportedError{Err: s.err}
		}
	}
}

// parseText maps a line typed at the terminal to a command.
func parseText(line string) command {
	t := strings.TrimSpace(line)
	switch strings.ToLower(t) {
	case "quit", "exit", "q":
		return command{act: actQuit}
	}
	return command{act: actDefault, value: t}
}
