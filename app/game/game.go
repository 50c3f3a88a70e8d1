package game

import (
	"errors"

	uuid "github.com/satori/go.uuid"
)

// GameStatus is the lifecycle of a game; there are no return transitions.
type GameStatus string

const (
	StatusWaiting    GameStatus = "waiting"
	StatusInProgress GameStatus = "in progress"
	StatusFinished   GameStatus = "finished"
)

// Seating and schedule limits.
const (
	MinPlayers      = 2
	MaxPlayers      = 8
	DefaultMaxTurns = 200
)

var (
	ErrGameNotWaiting    = errors.New("game already started")
	ErrGameNotInProgress = errors.New("game not in progress")
	ErrGameFull          = errors.New("game is full")
	ErrNotEnoughPlayers  = errors.New("need at least 2 players")
	ErrUnknownPlayer     = errors.New("unknown player")
	ErrNotPlayersTurn    = errors.New("not your turn")
)

// Game is the aggregate owning one board, one dice roller and the seated
// players. All engine state lives here for the lifetime of the game; the
// host discards the whole object when the table closes.
type Game struct {
	ID        string
	Board     *Board
	Dice      *Dice
	Players   []*Player
	Status    GameStatus
	TurnCount int
	MaxTurns  int

	current  int
	winnerID string
}

// NewGame seats an empty table over an assembled board.
func NewGame(id string, board *Board, dice *Dice) *Game {
	return &Game{
		ID:       id,
		Board:    board,
		Dice:     dice,
		Status:   StatusWaiting,
		MaxTurns: DefaultMaxTurns,
	}
}

// AddPlayer seats a new player with the fixed starting balance. Only valid
// before the game starts and while seats remain.
func (g *Game) AddPlayer(name string) (*Player, error) {
	if g.Status != StatusWaiting {
		return nil, ErrGameNotWaiting
	}
	if len(g.Players) >= MaxPlayers {
		return nil, ErrGameFull
	}
	player := NewPlayer(uuid.NewV4().String(), name)
	g.Players = append(g.Players, player)
	return player, nil
}

// Start moves the game to in progress. Requires at least two players.
func (g *Game) Start() error {
	if g.Status != StatusWaiting {
		return ErrGameNotWaiting
	}
	if len(g.Players) < MinPlayers {
		return ErrNotEnoughPlayers
	}
	g.Status = StatusInProgress
	g.current = 0
	return nil
}

// CurrentPlayer is the player whose TakeTurn call is expected next, or nil
// before the game starts.
func (g *Game) CurrentPlayer() *Player {
	if g.Status == StatusWaiting || len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.current]
}

// Player finds a seat by id.
func (g *Game) Player(id string) (*Player, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Winner returns the declared winner once the game has finished.
func (g *Game) Winner() *Player {
	if g.winnerID == "" {
		return nil
	}
	p, _ := g.Player(g.winnerID)
	return p
}

// ActivePlayers counts the seats still in the game.
func (g *Game) ActivePlayers() int {
	active := 0
	for _, p := range g.Players {
		if p.Active() {
			active++
		}
	}
	return active
}

// BuyProperty purchases the unowned property the player is standing on.
// The cash debit and both sides of the ownership link update together, or
// not at all. Rule violations return false, as with all trade operations.
func (g *Game) BuyProperty(playerID, propertyID string) bool {
	player, prop := g.tradeParties(playerID, propertyID)
	if player == nil || prop == nil {
		return false
	}
	if prop.Owned() {
		return false
	}
	sp := g.Board.SpaceAt(player.Position)
	if !sp.Purchasable() || sp.PropertyID != propertyID {
		return false
	}
	if !player.SubtractMoney(prop.Price) {
		return false
	}
	prop.OwnerID = player.ID
	player.Properties[prop.ID] = true
	return true
}

// BuildHouse adds one house to a street the player fully monopolizes.
func (g *Game) BuildHouse(playerID, propertyID string) bool {
	player, prop := g.ownedParties(playerID, propertyID)
	if player == nil || prop == nil {
		return false
	}
	if prop.Kind != Street || prop.Hotel || prop.Houses >= MaxHouses || prop.Mortgaged {
		return false
	}
	if !player.OwnsFullGroup(g.Board, prop.Group) {
		return false
	}
	if !player.SubtractMoney(prop.HouseCost) {
		return false
	}
	prop.Houses++
	return true
}

// BuildHotel upgrades four houses into a hotel.
func (g *Game) BuildHotel(playerID, propertyID string) bool {
	player, prop := g.ownedParties(playerID, propertyID)
	if player == nil || prop == nil {
		return false
	}
	if prop.Kind != Street || prop.Hotel || prop.Houses != MaxHouses || prop.Mortgaged {
		return false
	}
	if !player.SubtractMoney(prop.HotelCost) {
		return false
	}
	prop.Hotel = true
	prop.Houses = 0
	return true
}

// SellHouse removes one house for half its cost back.
func (g *Game) SellHouse(playerID, propertyID string) bool {
	player, prop := g.ownedParties(playerID, propertyID)
	if player == nil || prop == nil {
		return false
	}
	if prop.Houses == 0 || prop.Hotel || prop.Mortgaged {
		return false
	}
	prop.Houses--
	player.AddMoney(prop.HouseCost / 2)
	return true
}

// SellHotel removes the hotel for half its cost back, restoring the four
// houses it replaced.
func (g *Game) SellHotel(playerID, propertyID string) bool {
	player, prop := g.ownedParties(playerID, propertyID)
	if player == nil || prop == nil {
		return false
	}
	if !prop.Hotel || prop.Mortgaged {
		return false
	}
	prop.Hotel = false
	prop.Houses = MaxHouses
	player.AddMoney(prop.HotelCost / 2)
	return true
}

// MortgageProperty pledges an undeveloped property for half its price.
func (g *Game) MortgageProperty(playerID, propertyID string) bool {
	player, prop := g.ownedParties(playerID, propertyID)
	if player == nil || prop == nil {
		return false
	}
	if prop.Mortgaged || prop.Developed() {
		return false
	}
	prop.Mortgaged = true
	player.AddMoney(prop.MortgageValue())
	return true
}

// UnmortgageProperty repays the mortgage plus 10% interest.
func (g *Game) UnmortgageProperty(playerID, propertyID string) bool {
	player, prop := g.ownedParties(playerID, propertyID)
	if player == nil || prop == nil {
		return false
	}
	if !prop.Mortgaged {
		return false
	}
	if !player.SubtractMoney(prop.UnmortgageCost()) {
		return false
	}
	prop.Mortgaged = false
	return true
}

// PayJailFine lets the jailed current player buy their way out before
// rolling, the voluntary counterpart of the forced third-turn fine.
func (g *Game) PayJailFine(playerID string) bool {
	if g.Status != StatusInProgress {
		return false
	}
	player, ok := g.Player(playerID)
	if !ok || player.Bankrupt || !player.InJail {
		return false
	}
	if g.Players[g.current].ID != playerID {
		return false
	}
	if !player.SubtractMoney(JailFine) {
		return false
	}
	player.ReleaseFromJail()
	return true
}

func (g *Game) tradeParties(playerID, propertyID string) (*Player, *Property) {
	if g.Status != StatusInProgress {
		return nil, nil
	}
	player, ok := g.Player(playerID)
	if !ok || player.Bankrupt {
		return nil, nil
	}
	prop, ok := g.Board.Property(propertyID)
	if !ok {
		return nil, nil
	}
	return player, prop
}

func (g *Game) ownedParties(playerID, propertyID string) (*Player, *Property) {
	player, prop := g.tradeParties(playerID, propertyID)
	if player == nil || prop == nil || prop.OwnerID != playerID {
		return nil, nil
	}
	return player, prop
}
