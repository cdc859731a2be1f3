// Package adventure provides a small room-to-room text adventure.
package adventure

import "fmt"

// Location identifies a room on the map.
type Location int

const (
	// LocationStart is where every game begins.
	LocationStart Location = iota
	// LocationNorth lies north of the start.
	LocationNorth
	// LocationEast lies east of the start.
	LocationEast
)

// String returns the location identifier used in room data.
func (l Location) String() string {
	switch l {
	case LocationStart:
		return "start"
	case LocationNorth:
		return "north"
	case LocationEast:
		return "east"
	default:
		return "unknown"
	}
}

// Valid reports whether l is a known location.
func (l Location) Valid() bool {
	return l >= LocationStart && l <= LocationEast
}

// ParseLocation maps a room identifier to a Location.
func ParseLocation(s string) (Location, error) {
	for l := LocationStart; l <= LocationEast; l++ {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown location %q", s)
}

// Direction is a compass movement command.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// String returns the command word for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseDirection maps a command word to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for d := North; d <= West; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}

// State is the adventure state: just where the player stands.
type State struct {
	Location Location
}
