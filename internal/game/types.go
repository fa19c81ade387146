// internal/game/types.go
//
// Core type definitions for the guessing game.
// Defines:
//   - Outcome: the result of a single submitted guess.
//   - State:   coarse lifecycle of a Session (idle/playing/won/lost).

package game

// Outcome is the evaluation result for a single submitted guess.
// The set is closed; exactly one value is produced per submission.
type Outcome string

const (
	Correct        Outcome = "correct"
	GreaterThan    Outcome = "greater_than"
	LessThan       Outcome = "less_than"
	AboveMaximum   Outcome = "above_maximum"
	BelowMinimum   Outcome = "below_minimum"
	NotANumber     Outcome = "not_a_number"
	TooManyGuesses Outcome = "too_many_guesses"
)

// Outcomes lists every Outcome in declaration order.
var Outcomes = []Outcome{
	Correct, GreaterThan, LessThan, AboveMaximum, BelowMinimum, NotANumber, TooManyGuesses,
}

// Valid reports whether o is one of the seven known outcomes.
func (o Outcome) Valid() bool {
	for _, x := range Outcomes {
		if o == x {
			return true
		}
	}
	return false
}

// EndsRound reports whether the outcome finishes the current round.
func (o Outcome) EndsRound() bool {
	return o == Correct || o == TooManyGuesses
}

func (o Outcome) String() string { return string(o) }

// State is the lifecycle of a Session.
type State string

const (
	StateIdle    State = "idle"
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)
