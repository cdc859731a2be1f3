package guess

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Turn is what a player sees when asked for a guess.
type Turn struct {
	Min, Max    int
	GuessesLeft int
	// Suggestion is the engine's bisection guess for this turn.
	Suggestion int
}

// Player supplies raw guess text. Returning io.EOF abandons the game.
type Player interface {
	Answer(ctx context.Context, turn Turn) (string, error)
}

// AutoPlayer always answers with the engine's suggestion.
type AutoPlayer struct{}

// Answer returns the suggested guess.
func (AutoPlayer) Answer(_ context.Context, turn Turn) (string, error) {
	return strconv.Itoa(turn.Suggestion), nil
}

// ReaderPlayer reads one guess per line. Lines of any length are returned
// whole, so oversized input is rejected by ParseGuess like any other junk.
type ReaderPlayer struct {
	reader *bufio.Reader
}

// NewReaderPlayer creates a player reading lines from r.
func NewReaderPlayer(r io.Reader) *ReaderPlayer {
	return &ReaderPlayer{reader: bufio.NewReader(r)}
}

// Answer returns the next line, or io.EOF when input is exhausted.
func (p *ReaderPlayer) Answer(ctx context.Context, _ Turn) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
