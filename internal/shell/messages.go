package shell

import (
	"fmt"

	"github.com/robalobadob/guessgame/internal/game"
)

const (
	msgTitle        = "Guess Game"
	msgInstructions = "Guess the random number between %d and %d. You have %d guesses."
	msgStartPrompt  = "Press Enter to start a round, or type 'quit' to exit."
	msgGuessPrompt  = "Your guess:"
	msgInputDropped = "Round started. %q was not counted; enter your guess again."
	msgWin          = "Correct! You found the number in %d guesses."
	msgTooLarge     = "Too large. Try a smaller number."
	msgTooSmall     = "Too small. Try a larger number."
	msgAboveMaximum = "Your guess is above the maximum of %d."
	msgBelowMinimum = "Your guess is below the minimum of %d."
	msgNotANumber   = "That is not a whole number."
	msgLose         = "Too many guesses. You lose!"
	msgUnknown      = "Unknown guess result %q."
	msgError        = "Error: %v"
)

// Bounds is what Message needs to know about the engine.
type Bounds interface {
	Min() int
	Max() int
	Attempts() uint8
}

// Message renders the user-facing text for an outcome.
func Message(o game.Outcome, b Bounds) string {
	switch o {
	case game.Correct:
		return fmt.Sprintf(msgWin, b.Attempts())
	case game.GreaterThan:
		return msgTooLarge
	case game.LessThan:
		return msgTooSmall
	case game.AboveMaximum:
		return fmt.Sprintf(msgAboveMaximum, b.Max())
	case game.BelowMinimum:
		return fmt.Sprintf(msgBelowMinimum, b.Min())
	case game.NotANumber:
		return msgNotANumber
	case game.TooManyGuesses:
		return msgLose
	default:
		return fmt.Sprintf(msgUnknown, string(o))
	}
}
