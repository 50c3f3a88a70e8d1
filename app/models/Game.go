package models

// Game is the lobby row for one table. Status mirrors the engine's
// lifecycle: waiting, in progress, finished. The live state itself lives
// in the session manager, never in the database.
type Game struct {
	Id     string
	Name   string
	Status string
	Seed   int64
}

type GameCreateDto struct {
	Name string `json:"name"`
	Seed int64  `json:"seed"`
}

type VerifyGameDto struct {
	Code    string
	User_id string
}
