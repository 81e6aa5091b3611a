package bacteria

import "fmt"

// GameScore holds the two monotonically non-decreasing game counters.
type GameScore struct {
	// Player counts successful hits.
	Player int

	// Computer counts, per tick and per circle, alive circles whose radius is above the threshold.
	Computer int
}

// String formats the score for window titles and logs.
func (s GameScore) String() string {
	return fmt.Sprintf("player %d | computer %d", s.Player, s.Computer)
}

// Outcome is the terminal state of a game.
type Outcome int

const (
	// OutcomeNone means the game is still running.
	OutcomeNone Outcome = iota
	// OutcomePlayerWins means every circle was hit.
	OutcomePlayerWins
	// OutcomeComputerWins means the computer counter exceeded its limit.
	OutcomeComputerWins
)

// String returns the message written to the text sink when the outcome is reached.
func (o Outcome) String() string {
	switch o {
	case OutcomePlayerWins:
		return "Player wins!"
	case OutcomeComputerWins:
		return "Computer wins!"
	default:
		return "In progress"
	}
}
