package guess

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/parlorgames/internal/telemetry"
)

// Result summarizes a finished game.
type Result struct {
	Outcome       Outcome
	Secret        int
	Guesses       int
	InvalidInputs int
	Final         State
}

// Game runs the guessing loop against a Player.
type Game struct {
	cfg    Config
	rng    *rand.Rand
	out    io.Writer
	player Player
	log    zerolog.Logger
}

// New creates a game writing its transcript to out.
func New(cfg Config, out io.Writer, player Player, log zerolog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		out:    out,
		player: player,
		log:    log,
	}, nil
}

// Run plays one game to completion.
func (g *Game) Run(ctx context.Context) (Result, error) {
	tracer := telemetry.Tracer("guess")
	ctx, span := tracer.Start(ctx, "guess.game")
	defer span.End()

	state := NewState(g.cfg, g.rng)
	res := Result{Secret: state.Secret}

	g.say("Welcome to the Number Guessing Game!")

	for {
		if err := ctx.Err(); err != nil {
			res.Outcome = OutcomeAbandoned
			res.Final = state
			return res, err
		}

		turnCtx, turnSpan := tracer.Start(ctx, "guess.turn")
		next, guess, invalid, err := g.takeTurn(turnCtx, state)
		res.InvalidInputs += invalid
		if err != nil {
			turnSpan.End()
			res.Outcome = OutcomeAbandoned
			res.Final = next
			if errors.Is(err, io.EOF) {
				break
			}
			return res, err
		}

		var outcome Outcome
		state, outcome = Apply(next, guess)
		res.Guesses++
		g.report(state, outcome)

		turnSpan.SetAttributes(
			attribute.Int("guess.value", guess),
			attribute.Int("guess.low", state.Low),
			attribute.Int("guess.high", state.High),
			attribute.Int("guess.left", state.GuessesLeft),
			attribute.String("guess.outcome", outcome.String()),
		)
		turnSpan.End()

		g.log.Debug().
			Int("guess", guess).
			Int("low", state.Low).
			Int("high", state.High).
			Int("left", state.GuessesLeft).
			Stringer("outcome", outcome).
			Msg("guess applied")

		if outcome.Terminal() {
			res.Outcome = outcome
			res.Final = state
			break
		}
	}

	span.SetAttributes(
		attribute.String("guess.outcome", res.Outcome.String()),
		attribute.Int("guess.count", res.Guesses),
		attribute.Int("guess.invalid_inputs", res.InvalidInputs),
	)
	g.log.Info().
		Stringer("outcome", res.Outcome).
		Int("guesses", res.Guesses).
		Int("invalid", res.InvalidInputs).
		Msg("game finished")

	return res, nil
}

// takeTurn prompts until a valid guess arrives. After MaxRetries consecutive
// invalid entries the engine's suggestion is played instead.
func (g *Game) takeTurn(ctx context.Context, state State) (State, int, int, error) {
	state, suggestion := Suggest(state, g.rng)
	turn := Turn{
		Min:         g.cfg.Min,
		Max:         g.cfg.Max,
		GuessesLeft: state.GuessesLeft,
		Suggestion:  suggestion,
	}

	invalid := 0
	for {
		g.say(fmt.Sprintf("Guess a number between %d and %d. You have %d guesses left:",
			g.cfg.Min, g.cfg.Max, state.GuessesLeft))

		answer, err := g.player.Answer(ctx, turn)
		if err != nil {
			return state, 0, invalid, err
		}
		g.say("> " + answer)

		guess, err := ParseGuess(answer, g.cfg)
		if err == nil {
			return state, guess, invalid, nil
		}

		invalid++
		g.log.Debug().Err(err).Int("attempt", invalid).Msg("rejected guess")
		g.say(fmt.Sprintf("Invalid input. Please enter a number between %d and %d.", g.cfg.Min, g.cfg.Max))

		if invalid > g.cfg.MaxRetries {
			g.say(fmt.Sprintf("Too many invalid entries. Playing %d for you.", suggestion))
			return state, suggestion, invalid, nil
		}
	}
}

// report prints the feedback line for an outcome.
func (g *Game) report(state State, outcome Outcome) {
	switch outcome {
	case OutcomeWin:
		g.say(fmt.Sprintf("Congratulations! You guessed the number %d correctly!", state.Secret))
	case OutcomeLoss:
		g.say(fmt.Sprintf("You ran out of guesses. The number was %d.", state.Secret))
	case OutcomeTooLow:
		g.say("Too low! Try again.")
	case OutcomeTooHigh:
		g.say("Too high! Try again.")
	}
}

func (g *Game) say(line string) {
	fmt.Fprintln(g.out, line)
}
