package adventure

import (
	"fmt"
	"strings"

	"github.com/samdwyer/parlorgames/internal/gamedata"
)

const quitCommand = "quit"

// Messages printed in response to commands.
const (
	MsgFarewell     = "Thanks for playing!"
	MsgInvalidInput = "Invalid input. Please try again."
)

type exit struct {
	dir Direction
	to  Location
}

type room struct {
	description string
	exits       []exit
}

// Atlas is the validated, immutable room table. All of its methods are pure
// functions of their arguments.
type Atlas struct {
	start Location
	rooms map[Location]room
}

// LoadAtlas builds the atlas from the embedded rooms.json.
func LoadAtlas() (*Atlas, error) {
	file, err := gamedata.LoadRooms()
	if err != nil {
		return nil, err
	}
	return NewAtlas(file)
}

// NewAtlas validates room definitions. Every location must be defined
// exactly once and every exit must name a known direction and room.
func NewAtlas(file gamedata.RoomsFile) (*Atlas, error) {
	start, err := ParseLocation(file.Start)
	if err != nil {
		return nil, fmt.Errorf("start room: %w", err)
	}

	a := &Atlas{start: start, rooms: make(map[Location]room, len(file.Rooms))}
	for _, def := range file.Rooms {
		loc, err := ParseLocation(def.ID)
		if err != nil {
			return nil, err
		}
		if _, dup := a.rooms[loc]; dup {
			return nil, fmt.Errorf("room %q defined twice", def.ID)
		}

		r := room{description: def.Description}
		seen := make(map[Direction]bool, len(def.Exits))
		for _, e := range def.Exits {
			dir, ok := ParseDirection(e.Direction)
			if !ok {
				return nil, fmt.Errorf("room %q: unknown direction %q", def.ID, e.Direction)
			}
			if seen[dir] {
				return nil, fmt.Errorf("room %q: duplicate exit %s", def.ID, dir)
			}
			seen[dir] = true

			to, err := ParseLocation(e.To)
			if err != nil {
				return nil, fmt.Errorf("room %q exit %s: %w", def.ID, dir, err)
			}
			r.exits = append(r.exits, exit{dir: dir, to: to})
		}
		a.rooms[loc] = r
	}

	for l := LocationStart; l <= LocationEast; l++ {
		if _, ok := a.rooms[l]; !ok {
			return nil, fmt.Errorf("room %q is not defined", l)
		}
	}
	return a, nil
}

// Start returns the initial state.
func (a *Atlas) Start() State {
	return State{Location: a.start}
}

// Describe returns the room description followed by the command prompt.
func (a *Atlas) Describe(loc Location) []string {
	if !loc.Valid() {
		return nil
	}
	r, ok := a.rooms[loc]
	if !ok {
		return nil
	}

	commands := make([]string, 0, len(r.exits)+1)
	for _, e := range r.exits {
		commands = append(commands, e.dir.String())
	}
	commands = append(commands, quitCommand)

	return []string{
		r.description,
		fmt.Sprintf("What do you do? (%s)", strings.Join(commands, "/")),
	}
}

// Move follows the exit in dir. Directions without an exit, and states
// outside the map, are left unchanged.
func (a *Atlas) Move(s State, dir Direction) State {
	if !s.Location.Valid() {
		return s
	}
	for _, e := range a.rooms[s.Location].exits {
		if e.dir == dir {
			return State{Location: e.to}
		}
	}
	return s
}

// Response is the output of one command.
type Response struct {
	Lines []string
	// Moved is true when the location changed.
	Moved bool
	Quit  bool
}

// HandleInput classifies one line of player input. Directions are forwarded
// to Move and the resulting room is described; "quit" says goodbye; anything
// else is rejected. Only movement changes the state.
func (a *Atlas) HandleInput(s State, input string) (State, Response) {
	resp := Response{Lines: []string{"> " + input, ""}}
	cmd := strings.ToLower(strings.TrimSpace(input))

	if dir, ok := ParseDirection(cmd); ok {
		next := a.Move(s, dir)
		resp.Moved = next != s
		resp.Lines = append(resp.Lines, a.Describe(next.Location)...)
		return next, resp
	}

	if cmd == quitCommand {
		resp.Quit = true
		resp.Lines = append(resp.Lines, MsgFarewell)
		return s, resp
	}

	resp.Lines = append(resp.Lines, MsgInvalidInput)
	return s, resp
}
