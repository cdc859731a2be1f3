package gamedata

// ExitDef links a direction to a destination room ID.
type ExitDef struct {
	Direction string `json:"direction"` // e.g. "north"
	To        string `json:"to"`        // destination room ID
}

// RoomDef defines a room loaded from JSON.
type RoomDef struct {
	ID          string    `json:"id"`          // Unique identifier (e.g., "start")
	Description string    `json:"description"` // Shown on entering or looking
	Exits       []ExitDef `json:"exits"`       // In the order they are offered to the player
}

// RoomsFile represents the structure of rooms.json.
type RoomsFile struct {
	Start string    `json:"start"`
	Rooms []RoomDef `json:"rooms"`
}

// LoadRooms loads room definitions from the embedded rooms.json file.
func LoadRooms() (RoomsFile, error) {
	return Load[RoomsFile]("rooms.json")
}
