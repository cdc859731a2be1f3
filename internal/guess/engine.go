package guess

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// ErrInvalidGuessInput is returned for non-numeric or out-of-range guesses.
var ErrInvalidGuessInput = errors.New("invalid guess input")

// NewState starts a game: the secret is uniform in [cfg.Min, cfg.Max] and
// the whole range is still a candidate.
func NewState(cfg Config, rng *rand.Rand) State {
	return State{
		Secret:      randomIn(rng, cfg.Min, cfg.Max),
		GuessesLeft: cfg.MaxGuesses,
		Low:         cfg.Min,
		High:        cfg.Max,
	}
}

// Suggest narrows the interval using the last feedback and returns the next
// guess. The first guess is uniform over the interval; later guesses bisect.
// The returned guess always lies in [Low, High] of the returned state.
func Suggest(s State, rng *rand.Rand) (State, int) {
	if !s.HasGuess {
		return s, randomIn(rng, s.Low, s.High)
	}

	// Bounds only ever shrink, and never cross.
	switch s.LastComparison {
	case TooLow:
		s.Low = min(max(s.Low, s.LastGuess+1), s.High)
	case TooHigh:
		s.High = max(min(s.High, s.LastGuess-1), s.Low)
	case Match:
		return s, s.LastGuess
	}

	return s, Clamp(Bisect(s.Low, s.High), s.Low, s.High)
}

// Bisect returns the midpoint of [low, high], rounding toward low.
func Bisect(low, high int) int {
	return low + (high-low)/2
}

// Clamp restricts v to [low, high].
func Clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// ParseGuess validates raw player input against the configured range.
func ParseGuess(text string, cfg Config) (int, error) {
	text = strings.TrimSpace(text)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidGuessInput, text)
	}
	if n < cfg.Min || n > cfg.Max {
		return 0, fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidGuessInput, n, cfg.Min, cfg.Max)
	}
	return n, nil
}

// Apply consumes one guess and reports the outcome. A match wins even on the
// last guess.
func Apply(s State, guess int) (State, Outcome) {
	if s.GuessesLeft > 0 {
		s.GuessesLeft--
	}
	s.LastGuess = guess
	s.HasGuess = true
	s.LastComparison = Compare(guess, s.Secret)

	switch {
	case s.LastComparison == Match:
		return s, OutcomeWin
	case s.GuessesLeft == 0:
		return s, OutcomeLoss
	case s.LastComparison == TooLow:
		return s, OutcomeTooLow
	default:
		return s, OutcomeTooHigh
	}
}

func randomIn(rng *rand.Rand, low, high int) int {
	return low + rng.Intn(high-low+1)
}
