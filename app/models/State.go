package models

import "github.com/DedS3t/monopoly-engine/app/game"

// GameStateDto is the full table snapshot broadcast after every turn and
// served to reconnecting clients.
type GameStateDto struct {
	Id      string        `json:"id"`
	Status  string        `json:"status"`
	Turn    int           `json:"turn"`
	Current string        `json:"current,omitempty"`
	Winner  string        `json:"winner,omitempty"`
	Players []PlayerDto   `json:"players"`
	Owned   []PropertyDto `json:"owned"`
}

// PropertyDto reports the mutable side of a registry entry; unowned,
// undeveloped properties are omitted from snapshots.
type PropertyDto struct {
	Id        string `json:"id"`
	Owner     string `json:"owner"`
	Houses    int    `json:"houses"`
	Hotel     bool   `json:"hotel"`
	Mortgaged bool   `json:"mortgaged"`
}

// NewGameState flattens a live game into its wire snapshot.
func NewGameState(g *game.Game) GameStateDto {
	dto := GameStateDto{
		Id:     g.ID,
		Status: string(g.Status),
		Turn:   g.TurnCount,
	}
	if cur := g.CurrentPlayer(); cur != nil {
		dto.Current = cur.ID
	}
	if w := g.Winner(); w != nil {
		dto.Winner = w.ID
	}
	for _, p := range g.Players {
		ids := make([]string, 0, len(p.Properties))
		for id := range p.Properties {
			ids = append(ids, id)
		}
		dto.Players = append(dto.Players, PlayerDto{
			Id:         p.ID,
			Username:   p.Name,
			Balance:    p.Balance,
			Pos:        p.Position,
			Jail:       p.InJail,
			Bankrupt:   p.Bankrupt,
			NetWorth:   p.NetWorth(g.Board),
			Properties: ids,
		})
	}
	for id, prop := range g.Board.Properties() {
		if prop.OwnerID == "" && !prop.Mortgaged {
			continue
		}
		dto.Owned = append(dto.Owned, PropertyDto{
			Id:        id,
			Owner:     prop.OwnerID,
			Houses:    prop.Houses,
			Hotel:     prop.Hotel,
			Mortgaged: prop.Mortgaged,
		})
	}
	return dto
}
