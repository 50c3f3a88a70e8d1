package game

// Cash and movement constants.
const (
	StartingBalance = 1500
	GoBonus         = 200
	JailFine        = 50
)

// Player is one seat at the table: a cash ledger, a board position, the
// jail sub-state and the set of owned property ids. The owned set mirrors
// Property.OwnerID; the Game mutates both sides together.
type Player struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Balance            int             `json:"balance"`
	Position           int             `json:"position"`
	InJail             bool            `json:"in_jail"`
	JailTurns          int             `json:"jail_turns"`
	JailFreeCard       bool            `json:"jail_free_card"`
	Properties         map[string]bool `json:"properties"`
	ConsecutiveDoubles int             `json:"consecutive_doubles"`
	Bankrupt           bool            `json:"bankrupt"`
}

func NewPlayer(id, name string) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		Balance:    StartingBalance,
		Properties: make(map[string]bool),
	}
}

// AddMoney credits the balance. Negative amounts are rejected; payments
// go through SubtractMoney so the all-or-nothing rule applies.
func (p *Player) AddMoney(amount int) bool {
	if amount < 0 {
		return false
	}
	p.Balance += amount
	return true
}

// SubtractMoney debits the full amount or nothing. A payment the player
// cannot cover is refused here; the engine turns that refusal into a
// bankruptcy when the payment was mandatory.
func (p *Player) SubtractMoney(amount int) bool {
	if amount < 0 || amount > p.Balance {
		return false
	}
	p.Balance -= amount
	return true
}

// CanAfford reports whether a debit of amount would succeed.
func (p *Player) CanAfford(amount int) bool {
	return amount >= 0 && amount <= p.Balance
}

// MoveBy advances the player n spaces, wrapping at 40. Passing GO pays the
// bonus once per wrap, but never on a backward move or while jailed.
func (p *Player) MoveBy(n int) {
	old := p.Position
	p.Position = ((p.Position+n)%BoardSize + BoardSize) % BoardSize
	if n > 0 && (p.Position < old || n >= BoardSize) && !p.InJail {
		p.AddMoney(GoBonus)
	}
}

// MoveTo places the player on an absolute position, paying the GO bonus
// when the move wraps past start.
func (p *Player) MoveTo(pos int) {
	pos = pos % BoardSize
	if pos < p.Position && !p.InJail {
		p.AddMoney(GoBonus)
	}
	p.Position = pos
}

// SendToJail puts the player in jail: position forced to the jail space,
// jail turns and the doubles streak reset. No GO bonus applies.
func (p *Player) SendToJail() {
	p.InJail = true
	p.JailTurns = 0
	p.Position = JailPosition
	p.ConsecutiveDoubles = 0
}

// ReleaseFromJail clears the jail sub-state.
func (p *Player) ReleaseFromJail() {
	p.InJail = false
	p.JailTurns = 0
}

// IncrementJailTurns counts a failed escape roll and auto-releases on the
// third. Returns the attempt count reached.
func (p *Player) IncrementJailTurns() int {
	p.JailTurns++
	turns := p.JailTurns
	if turns >= 3 {
		p.ReleaseFromJail()
	}
	return turns
}

// IncrementConsecutiveDoubles advances the doubles streak and returns it.
// The caller jails the player at three instead of moving.
func (p *Player) IncrementConsecutiveDoubles() int {
	p.ConsecutiveDoubles++
	return p.ConsecutiveDoubles
}

// ResetConsecutiveDoubles clears the streak after a non-doubles roll.
func (p *Player) ResetConsecutiveDoubles() {
	p.ConsecutiveDoubles = 0
}

// Owns reports whether the player holds the property id.
func (p *Player) Owns(propertyID string) bool {
	return p.Properties[propertyID]
}

// OwnsFullGroup reports whether the player holds every property in group.
func (p *Player) OwnsFullGroup(b *Board, group string) bool {
	return b.OwnsFullGroup(p.ID, group)
}

// NetWorth is cash plus the current value of every owned property.
func (p *Player) NetWorth(b *Board) int {
	worth := p.Balance
	for id := range p.Properties {
		if prop, ok := b.Property(id); ok {
			worth += prop.CurrentValue()
		}
	}
	return worth
}

// Active reports whether the player still takes turns.
func (p *Player) Active() bool {
	return !p.Bankrupt
}
