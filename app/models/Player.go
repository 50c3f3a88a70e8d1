package models

// Player is the lobby membership row linking a user to a game.
type Player struct {
	User_id  string
	Game_id  string
	Username string
}

// PlayerDto is the per-seat snapshot pushed to clients after each turn.
type PlayerDto struct {
	Id         string   `json:"id"`
	Username   string   `json:"username"`
	Balance    int      `json:"balance"`
	Pos        int      `json:"pos"`
	Jail       bool     `json:"jail"`
	Bankrupt   bool     `json:"bankrupt"`
	NetWorth   int      `json:"net_worth"`
	Properties []string `json:"properties"`
}
