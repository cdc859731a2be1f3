// Package gamedata holds the adventure's room table as embedded JSON and a
// generic loader for it.
package gamedata

import "embed"

//go:embed rooms.json
var dataFS embed.FS
