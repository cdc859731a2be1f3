package adventure

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

const scriptedTranscript = `You are at the start. There are paths to the north and east.
What do you do? (north/east/quit)
> north

You are in the north. There is a path to the south.
What do you do? (south/quit)
> south

You are at the start. There are paths to the north and east.
What do you do? (north/east/quit)
> east

You are in the east. There is a path to the west.
What do you do? (west/quit)
> west

You are at the start. There are paths to the north and east.
What do you do? (north/east/quit)
> quit

Thanks for playing!
`

func TestRunDefaultScript(t *testing.T) {
	var out bytes.Buffer
	adv := New(mustAtlas(t), &out, zerolog.Nop())

	final, err := adv.Run(context.Background(), NewScript(DefaultScript...))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if final.Location != LocationStart {
		t.Errorf("final location = %s, want start", final.Location)
	}
	if got := out.String(); got != scriptedTranscript {
		t.Errorf("transcript mismatch:\ngot:\n%s\nwant:\n%s", got, scriptedTranscript)
	}
}

func TestRunStopsAtQuit(t *testing.T) {
	var out bytes.Buffer
	adv := New(mustAtlas(t), &out, zerolog.Nop())

	final, err := adv.Run(context.Background(), NewReaderCommands(strings.NewReader("east\nquit\nwest\n")))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if final.Location != LocationEast {
		t.Errorf("final location = %s, want east", final.Location)
	}
	if strings.Contains(out.String(), "> west") {
		t.Errorf("commands after quit were processed:\n%s", out.String())
	}
}

func TestRunEndsAtEOF(t *testing.T) {
	var out bytes.Buffer
	adv := New(mustAtlas(t), &out, zerolog.Nop())

	final, err := adv.Run(context.Background(), NewReaderCommands(strings.NewReader("north\nfly\n")))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if final.Location != LocationNorth {
		t.Errorf("final location = %s, want north", final.Location)
	}
	if !strings.HasSuffix(out.String(), MsgInvalidInput+"\n") {
		t.Errorf("transcript should end with the invalid-input line:\n%s", out.String())
	}
}

func TestRunCancelledContext(t *testing.T) {
	adv := New(mustAtlas(t), &bytes.Buffer{}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := adv.Run(ctx, NewScript(DefaultScript...)); err == nil {
		t.Error("Run() should fail on a cancelled context")
	}
}

func TestConfigValidate(t *testing.T) {
	for _, mode := range []string{InputScript, InputStdin} {
		if err := (Config{Input: mode}).Validate(); err != nil {
			t.Errorf("Validate(%q) = %v", mode, err)
		}
	}
	if err := (Config{Input: "carrier-pigeon"}).Validate(); err == nil {
		t.Error("Validate should reject unknown modes")
	}
}

func TestRunOversizedLineIsInvalidInput(t *testing.T) {
	var out bytes.Buffer
	adv := New(mustAtlas(t), &out, zerolog.Nop())

	input := strings.Repeat("x", 70*1024) + "\nnorth\n"
	final, err := adv.Run(context.Background(), NewReaderCommands(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if final.Location != LocationNorth {
		t.Errorf("final location = %s, want north", final.Location)
	}
	if !strings.Contains(out.String(), MsgInvalidInput) {
		t.Error("oversized line should be reported as invalid input")
	}
}
