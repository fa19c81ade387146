// internal/game/engine.go
//
// Core guess-evaluation engine for a single player.
// Responsibilities:
//   - Validate the bootstrap configuration (random source, bounds, limit).
//   - Start rounds by drawing a target from the closed interval [min, max].
//   - Classify submitted guesses into an Outcome and count attempts.
//
// Notes:
//   - An Engine is not safe for concurrent use; give each session its own.
//   - The RandomSource may be shared between engines.
package game

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrConfiguration is wrapped by every construction failure.
var ErrConfiguration = errors.New("invalid game configuration")

// ErrAttemptOverflow is returned when the attempt counter is already at its
// representable maximum and cannot be incremented.
var ErrAttemptOverflow = errors.New("attempt counter overflow")

// ConfigError describes which construction argument was rejected.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrConfiguration) match.
func (e *ConfigError) Unwrap() error { return ErrConfiguration }

// Engine holds the state of one guessing session.
type Engine struct {
	src         RandomSource
	target      int
	attempts    uint8
	min         int
	max         int
	maxAttempts uint8
}

// NewEngine validates the configuration and returns an engine ready for
// StartRound. min and max are inclusive bounds.
func NewEngine(src RandomSource, maxAttempts uint8, min, max int) (*Engine, error) {
	if src == nil {
		return nil, &ConfigError{Field: "random source", Reason: "must not be nil"}
	}
	if maxAttempts < 1 {
		return nil, &ConfigError{Field: "max attempts", Reason: "must be above zero"}
	}
	if min >= max {
		return nil, &ConfigError{
			Field:  "bounds",
			Reason: fmt.Sprintf("minimum %d must be less than maximum %d", min, max),
		}
	}
	return &Engine{
		src:         src,
		min:         min,
		max:         max,
		maxAttempts: maxAttempts,
	}, nil
}

// StartRound resets the attempt count and draws a new target.
func (e *Engine) StartRound() {
	e.attempts = 0
	e.target = e.src.IntRange(e.min, e.max)
}

// SubmitGuess counts the attempt and classifies the guess.
//
// The attempt is counted before evaluation, even for unparseable input and
// even after the limit has been reached. Once the count reaches the limit the
// outcome is TooManyGuesses regardless of the guess, a correct one included.
func (e *Engine) SubmitGuess(answer string) (Outcome, error) {
	if e.attempts == math.MaxUint8 {
		return "", fmt.Errorf("%w: %d attempts", ErrAttemptOverflow, e.attempts)
	}
	e.attempts++

	res := e.classify(answer)
	if e.attempts >= e.maxAttempts {
		return TooManyGuesses, nil
	}
	return res, nil
}

// classify maps the raw answer to an Outcome without touching state.
func (e *Engine) classify(answer string) Outcome {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return NotANumber
	}
	switch {
	case n == e.target:
		return Correct
	case n > e.target:
		if n <= e.max {
			return GreaterThan
		}
		return AboveMaximum
	default:
		if n >= e.min {
			return LessThan
		}
		return BelowMinimum
	}
}

// Attempts returns the number of guesses submitted in the current round.
func (e *Engine) Attempts() uint8 { return e.attempts }

// MaxAttempts returns the configured attempt limit.
func (e *Engine) MaxAttempts() uint8 { return e.maxAttempts }

// Min returns the inclusive lower bound.
func (e *Engine) Min() int { return e.min }

// Max returns the inclusive upper bound.
func (e *Engine) Max() int { return e.max }
