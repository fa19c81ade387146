// internal/shell/shell.go
//
// Presentation shell around the guess engine.
// Responsibilities:
//   - Build the engine once from the bootstrap parameters; a configuration
//     error disables every affordance for the lifetime of the shell.
//   - Gate the two affordances: Start only while Ready, Submit only while Active.
//   - Turn each Outcome into a Feedback carrying user-facing text.
//
// Status transitions:
//   Ready --Start--> Active --Submit(Correct|TooManyGuesses)--> Ready
//   any --config error, counter overflow or Close--> Disabled (terminal)

package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessgame/internal/game"
	"github.com/robalobadob/guessgame/internal/store"
)

var (
	// ErrDisabled is returned by every operation once the shell is unusable.
	ErrDisabled = errors.New("shell disabled")
	// ErrRoundActive is returned by Start while a round is in progress.
	ErrRoundActive = errors.New("round already in progress")
	// ErrNoRound is returned by Submit before a round has been started.
	ErrNoRound = errors.New("no round in progress")
	// ErrBadRequest is reported for input the front end cannot understand.
	ErrBadRequest = errors.New("bad request")
	// ErrClosed is the disabling error after Close.
	ErrClosed = errors.New("shell closed")
	// ErrUnknownOutcome means the engine produced a value outside the known set.
	ErrUnknownOutcome = errors.New("unknown guess result")
)

// Status reports which affordances the shell currently offers.
type Status int

const (
	StatusDisabled Status = iota
	StatusReady
	StatusActive
)

func (s Status) String() string {
	switch s {
	case StatusDisabled:
		return "disabled"
	case StatusReady:
		return "ready"
	case StatusActive:
		return "active"
	default:
		return "unknown"
	}
}

// Options are the bootstrap parameters of a shell.
type Options struct {
	Source      game.RandomSource
	Min         int
	Max         int
	MaxAttempts uint8
	Store       store.Store     // defaults to a fresh memory store
	Logger      *zerolog.Logger // defaults to the global logger
}

// Feedback is what the shell shows after a guess.
type Feedback struct {
	Outcome   game.Outcome `json:"outcome"`
	Attempts  uint8        `json:"attempts"`
	Message   string       `json:"message"`
	RoundOver bool         `json:"roundOver"`
}

// Shell drives one player's session.
type Shell struct {
	opts      Options
	store     store.Store
	log       zerolog.Logger
	status    Status
	err       error // why the shell is disabled
	sessionID string
}

// New builds the engine and returns a shell in StatusReady, or in
// StatusDisabled when the options are rejected. Check Err for the reason.
func New(opts Options) *Shell {
	s := &Shell{opts: opts, store: opts.Store, log: log.Logger}
	if opts.Logger != nil {
		s.log = *opts.Logger
	}
	if s.store == nil {
		s.store = store.NewMemoryStore()
	}

	eng, err := game.NewEngine(opts.Source, opts.MaxAttempts, opts.Min, opts.Max)
	if err != nil {
		s.disable(err)
		return s
	}
	sess := game.NewSession(eng)
	if err := s.store.Save(context.Background(), sess); err != nil {
		s.disable(fmt.Errorf("save session: %w", err))
		return s
	}
	s.sessionID = sess.ID
	s.status = StatusReady
	s.log.Debug().Str("session", sess.ID).Int("min", opts.Min).Int("max", opts.Max).
		Uint8("maxAttempts", opts.MaxAttempts).Msg("shell ready")
	return s
}

// Status returns the current affordance status.
func (s *Shell) Status() Status { return s.status }

// Err returns the error that disabled the shell, or nil.
func (s *Shell) Err() error { return s.err }

// SessionID returns the id of the session this shell plays, empty when disabled.
func (s *Shell) SessionID() string { return s.sessionID }

// Instructions describes the game to the player.
func (s *Shell) Instructions() string {
	return fmt.Sprintf(msgInstructions, s.opts.Min, s.opts.Max, s.opts.MaxAttempts)
}

// Start begins a new round.
func (s *Shell) Start(ctx context.Context) error {
	switch s.status {
	case StatusDisabled:
		return ErrDisabled
	case StatusActive:
		return ErrRoundActive
	}
	sess, err := s.store.Get(ctx, s.sessionID)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	sess.Start()
	if err := s.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.status = StatusActive
	s.log.Debug().Str("session", sess.ID).Msg("round started")
	return nil
}

// Submit evaluates one guess of the active round.
func (s *Shell) Submit(ctx context.Context, answer string) (Feedback, error) {
	switch s.status {
	case StatusDisabled:
		return Feedback{}, ErrDisabled
	case StatusReady:
		return Feedback{}, ErrNoRound
	}
	sess, err := s.store.Get(ctx, s.sessionID)
	if err != nil {
		return Feedback{}, fmt.Errorf("load session: %w", err)
	}
	res, err := sess.Guess(answer)
	if err == nil {
		err = checkOutcome(res)
	}
	if err != nil {
		s.disable(err)
		return Feedback{}, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return Feedback{}, fmt.Errorf("save session: %w", err)
	}

	fb := Feedback{
		Outcome:   res,
		Attempts:  sess.Engine.Attempts(),
		Message:   Message(res, sess.Engine),
		RoundOver: res.EndsRound(),
	}
	if fb.RoundOver {
		s.status = StatusReady
		s.log.Debug().Str("session", sess.ID).Str("state", string(sess.State)).
			Uint8("attempts", fb.Attempts).Msg("round finished")
	} else {
		s.log.Debug().Str("session", sess.ID).Str("outcome", res.String()).
			Uint8("attempts", fb.Attempts).Msg("guess")
	}
	return fb, nil
}

// Close forgets the shell's session and disables it. Closing twice is a no-op.
func (s *Shell) Close(ctx context.Context) error {
	if s.sessionID == "" {
		return nil
	}
	id := s.sessionID
	s.sessionID = ""
	if s.err == nil {
		s.disable(ErrClosed)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// checkOutcome rejects results outside the closed Outcome set.
func checkOutcome(o game.Outcome) error {
	if o.Valid() {
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownOutcome, string(o))
}

// disable records err and turns every affordance off. The front ends show
// err to the player, so it is only logged at debug level here.
func (s *Shell) disable(err error) {
	s.status = StatusDisabled
	s.err = err
	s.log.Debug().Err(err).Msg("shell disabled")
}
