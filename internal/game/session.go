// internal/game/session.go
//
// Session wraps an Engine with an identifier and a coarse lifecycle so that a
// shell (or any host holding several players) can track rounds.
//
// State transitions:
//   - Start:  any state → playing (a fresh round).
//   - Guess:  playing → won on Correct, playing → lost on TooManyGuesses,
//     otherwise stays playing.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"
)

// ErrNotPlaying is returned when a guess arrives outside an active round.
var ErrNotPlaying = errors.New("no round in progress")

// Session holds one player's engine and round status.
type Session struct {
	ID         string    // Unique session identifier (random hex string).
	Engine     *Engine   // Owned exclusively by this session.
	State      State     // idle, playing, won or lost.
	Last       Outcome   // Outcome of the most recent guess, empty before the first.
	StartedAt  time.Time // When the current round started.
	FinishedAt time.Time // When the current round ended; zero while playing.
}

// NewSession wraps e in an idle session.
func NewSession(e *Engine) *Session {
	return &Session{
		ID:     randomID(),
		Engine: e,
		State:  StateIdle,
	}
}

// Start begins a new round, discarding any previous one.
func (s *Session) Start() {
	s.Engine.StartRound()
	s.State = StatePlaying
	s.Last = ""
	s.StartedAt = time.Now().UTC()
	s.FinishedAt = time.Time{}
}

// Guess submits answer to the engine and advances the session state.
func (s *Session) Guess(answer string) (Outcome, error) {
	if s.State != StatePlaying {
		return "", ErrNotPlaying
	}
	res, err := s.Engine.SubmitGuess(answer)
	if err != nil {
		return "", err
	}
	s.Last = res
	switch res {
	case Correct:
		s.finish(StateWon)
	case TooManyGuesses:
		s.finish(StateLost)
	}
	return res, nil
}

func (s *Session) finish(st State) {
	s.State = st
	s.FinishedAt = time.Now().UTC()
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
