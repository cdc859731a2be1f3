package guess

import "fmt"

// Input modes for the guessing game.
const (
	InputAuto  = "auto"
	InputStdin = "stdin"
)

// Config holds game configuration options.
type Config struct {
	Min        int `env:"GUESS_MIN"         envDefault:"1"`
	Max        int `env:"GUESS_MAX"         envDefault:"100"`
	MaxGuesses int `env:"GUESS_MAX_GUESSES" envDefault:"10"`
	// MaxRetries bounds consecutive invalid entries in one turn before the
	// engine plays its own suggestion.
	MaxRetries int `env:"GUESS_MAX_RETRIES" envDefault:"3"`
	// Seed for random number generation. A seed of 0 means a time-based seed.
	Seed  int64  `env:"GUESS_SEED"`
	Input string `env:"GUESS_INPUT" envDefault:"auto"`
}

// DefaultConfig returns the classic 1..100 game with ten guesses.
func DefaultConfig() Config {
	return Config{
		Min:        1,
		Max:        100,
		MaxGuesses: 10,
		MaxRetries: 3,
		Input:      InputAuto,
	}
}

// Validate checks that the range and budgets are usable.
func (c Config) Validate() error {
	if c.Min > c.Max {
		return fmt.Errorf("guess range [%d, %d] is empty", c.Min, c.Max)
	}
	if c.MaxGuesses < 1 {
		return fmt.Errorf("max guesses must be positive, got %d", c.MaxGuesses)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max retries must not be negative, got %d", c.MaxRetries)
	}
	switch c.Input {
	case InputAuto, InputStdin:
	default:
		return fmt.Errorf("unknown input mode %q", c.Input)
	}
	return nil
}
