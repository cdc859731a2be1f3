// Package guess implements a number-guessing game whose engine narrows the
// candidate interval by bisection.
package guess

// Comparison is the feedback for a guess relative to the secret.
type Comparison int

const (
	// TooLow means the guess was below the secret.
	TooLow Comparison = -1
	// Match means the guess equals the secret.
	Match Comparison = 0
	// TooHigh means the guess was above the secret.
	TooHigh Comparison = 1
)

// String returns a human-readable comparison name.
func (c Comparison) String() string {
	switch c {
	case TooLow:
		return "too_low"
	case Match:
		return "match"
	case TooHigh:
		return "too_high"
	default:
		return "unknown"
	}
}

// Compare reports how guess relates to secret.
func Compare(guess, secret int) Comparison {
	switch {
	case guess < secret:
		return TooLow
	case guess > secret:
		return TooHigh
	default:
		return Match
	}
}

// Outcome is the result of applying one guess.
type Outcome int

const (
	// OutcomeTooLow - guess below the secret, game continues
	OutcomeTooLow Outcome = iota
	// OutcomeTooHigh - guess above the secret, game continues
	OutcomeTooHigh
	// OutcomeWin - exact match
	OutcomeWin
	// OutcomeLoss - guesses exhausted without a match
	OutcomeLoss
	// OutcomeAbandoned - input ended before the game finished
	OutcomeAbandoned
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeTooLow:
		return "too_low"
	case OutcomeTooHigh:
		return "too_high"
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomeAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game is over.
func (o Outcome) Terminal() bool {
	return o == OutcomeWin || o == OutcomeLoss || o == OutcomeAbandoned
}

// State is the full guessing-game state. It is a value: engine functions
// take a State and return the updated one.
type State struct {
	Secret      int
	GuessesLeft int
	// Low and High bound the remaining candidates; Low <= High always.
	Low, High      int
	LastGuess      int
	HasGuess       bool
	LastComparison Comparison
}
