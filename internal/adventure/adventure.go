package adventure

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/parlorgames/internal/telemetry"
)

// Input modes for the adventure.
const (
	InputScript = "script"
	InputStdin  = "stdin"
)

// Config holds adventure configuration options.
type Config struct {
	Input string `env:"ADVENTURE_INPUT" envDefault:"script"`
}

// Validate checks the input mode.
func (c Config) Validate() error {
	switch c.Input {
	case InputScript, InputStdin:
		return nil
	default:
		return fmt.Errorf("unknown input mode %q", c.Input)
	}
}

// DefaultScript is the walk played when no player is attached.
var DefaultScript = []string{"north", "south", "east", "west", "quit"}

// Commands yields player input one line at a time. io.EOF ends the game.
type Commands interface {
	Next(ctx context.Context) (string, error)
}

// Script replays a fixed list of commands.
type Script struct {
	lines []string
	pos   int
}

// NewScript creates a command source over lines.
func NewScript(lines ...string) *Script {
	return &Script{lines: lines}
}

// Next returns the next scripted command.
func (s *Script) Next(context.Context) (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// ReaderCommands reads one command per line, whatever its length.
type ReaderCommands struct {
	reader *bufio.Reader
}

// NewReaderCommands creates a command source reading from r.
func NewReaderCommands(r io.Reader) *ReaderCommands {
	return &ReaderCommands{reader: bufio.NewReader(r)}
}

// Next returns the next line, or io.EOF when input is exhausted.
func (c *ReaderCommands) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := c.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Adventure drives an Atlas with a command source and prints the transcript.
type Adventure struct {
	atlas *Atlas
	out   io.Writer
	log   zerolog.Logger
}

// New creates an adventure writing to out.
func New(atlas *Atlas, out io.Writer, log zerolog.Logger) *Adventure {
	return &Adventure{atlas: atlas, out: out, log: log}
}

// Run describes the starting room and then processes commands until quit or
// end of input. It returns the final state.
func (a *Adventure) Run(ctx context.Context, cmds Commands) (State, error) {
	tracer := telemetry.Tracer("adventure")
	ctx, span := tracer.Start(ctx, "adventure.run")
	defer span.End()

	state := a.atlas.Start()
	a.write(a.atlas.Describe(state.Location))

	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return state, err
		}

		input, err := cmds.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return state, fmt.Errorf("read command: %w", err)
		}
		count++

		_, cmdSpan := tracer.Start(ctx, "adventure.command")
		from := state.Location
		var resp Response
		state, resp = a.atlas.HandleInput(state, input)
		a.write(resp.Lines)

		cmdSpan.SetAttributes(
			attribute.String("adventure.input", input),
			attribute.String("adventure.from", from.String()),
			attribute.String("adventure.to", state.Location.String()),
			attribute.Bool("adventure.moved", resp.Moved),
		)
		cmdSpan.End()

		a.log.Debug().
			Str("input", input).
			Stringer("from", from).
			Stringer("to", state.Location).
			Msg("command handled")

		if resp.Quit {
			break
		}
	}

	span.SetAttributes(
		attribute.Int("adventure.commands", count),
		attribute.String("adventure.final_location", state.Location.String()),
	)
	a.log.Info().Int("commands", count).Stringer("location", state.Location).Msg("adventure finished")

	return state, nil
}

func (a *Adventure) write(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(a.out, line)
	}
}
