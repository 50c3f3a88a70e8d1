package game

import (
	"fmt"
	"strings"
)

// TurnResult reports one TakeTurn call back to the host: the last dice
// values, whether they were doubles, and a narration of everything that
// happened, both joined and as individual events for broadcasting.
type TurnResult struct {
	PlayerID string   `json:"player_id"`
	Die1     int      `json:"die1"`
	Die2     int      `json:"die2"`
	Doubles  bool     `json:"doubles"`
	Message  string   `json:"message"`
	Events   []string `json:"events"`
}

func (r *TurnResult) add(format string, args ...interface{}) {
	r.Events = append(r.Events, fmt.Sprintf(format, args...))
}

// TakeTurn runs one full turn for the given player: jail handling, the
// roll, movement, landing resolution, doubles repeats, then advancing to
// the next active seat and checking for game end. Calling out of turn or
// outside an in-progress game is a usage error; everything that happens
// inside the turn is reported through the result instead.
func (g *Game) TakeTurn(playerID string) (*TurnResult, error) {
	if g.Status != StatusInProgress {
		return nil, ErrGameNotInProgress
	}
	player, ok := g.Player(playerID)
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if g.Players[g.current].ID != playerID || player.Bankrupt {
		return nil, ErrNotPlayersTurn
	}

	res := &TurnResult{PlayerID: playerID}
	for g.playSegment(player, res) {
	}

	g.TurnCount++
	if g.Status == StatusInProgress {
		if g.TurnCount >= g.MaxTurns {
			g.finishByNetWorth(res)
		} else {
			g.advanceTurn()
		}
	}
	res.Message = strings.Join(res.Events, ". ")
	return res, nil
}

// playSegment is one roll-move-resolve pass. It returns true when the
// player earned an extra pass by rolling doubles and is still free,
// solvent and playing.
func (g *Game) playSegment(p *Player, res *TurnResult) bool {
	if p.InJail && p.JailFreeCard {
		p.JailFreeCard = false
		p.ReleaseFromJail()
		res.add("%s uses a get out of jail free card", p.Name)
	}

	total := g.Dice.Roll()
	res.Die1, res.Die2 = g.Dice.Values()
	res.Doubles = g.Dice.Doubles()
	res.add("%s rolls %d and %d", p.Name, res.Die1, res.Die2)

	if p.InJail {
		if !g.Dice.Doubles() {
			if p.IncrementJailTurns() < 3 {
				res.add("%s stays in jail", p.Name)
				return false
			}
			// Third failed attempt: the fine is mandatory.
			if !p.SubtractMoney(JailFine) {
				g.bankrupt(p, nil, res)
				return false
			}
			res.add("%s pays the %d fine and leaves jail", p.Name, JailFine)
		} else {
			p.ReleaseFromJail()
			res.add("%s rolls doubles and leaves jail", p.Name)
		}
		g.moveAndResolve(p, total, res)
	} else {
		if g.Dice.Doubles() {
			if p.IncrementConsecutiveDoubles() >= 3 {
				p.SendToJail()
				res.add("%s rolled three doubles in a row and goes to jail", p.Name)
				return false
			}
		} else {
			p.ResetConsecutiveDoubles()
		}
		g.moveAndResolve(p, total, res)
	}

	return g.Dice.Doubles() && !p.InJail && !p.Bankrupt && g.Status == StatusInProgress
}

func (g *Game) moveAndResolve(p *Player, total int, res *TurnResult) {
	before := p.Balance
	p.MoveBy(total)
	if p.Balance > before {
		res.add("%s passes GO and collects %d", p.Name, GoBonus)
	}
	sp := g.Board.SpaceAt(p.Position)
	res.add("%s lands on %s", p.Name, sp.Name)
	g.resolveLanding(p, res)
}

func (g *Game) resolveLanding(p *Player, res *TurnResult) {
	sp := g.Board.SpaceAt(p.Position)
	switch sp.Kind {
	case SpaceProperty, SpaceRailroad, SpaceUtility:
		g.settleProperty(p, sp, res)
	case SpaceTax:
		if g.payBank(p, sp.Tax, res) {
			res.add("%s pays %d in tax", p.Name, sp.Tax)
		}
	case SpaceChance:
		g.executeCard(p, g.Board.DrawChance(), res)
	case SpaceCommunityChest:
		g.executeCard(p, g.Board.DrawCommunityChest(), res)
	case SpaceGoToJail:
		p.SendToJail()
		res.add("%s goes to jail", p.Name)
	}
	// go, jail (just visiting) and free parking are no-ops; the GO bonus
	// was already paid by the movement itself.
}

func (g *Game) settleProperty(p *Player, sp *Space, res *TurnResult) {
	prop, ok := g.Board.Property(sp.PropertyID)
	if !ok {
		return
	}
	if !prop.Owned() {
		res.add("%s is available for %d", prop.Name, prop.Price)
		return
	}
	if prop.OwnerID == p.ID {
		return
	}
	rent := prop.CalculateRent(g.Board, g.Dice.Total())
	if rent == 0 {
		return
	}
	owner, ok := g.Player(prop.OwnerID)
	if !ok {
		return
	}
	if p.SubtractMoney(rent) {
		owner.AddMoney(rent)
		res.add("%s pays %d rent to %s", p.Name, rent, owner.Name)
	} else {
		g.bankrupt(p, owner, res)
	}
}

func (g *Game) executeCard(p *Player, card Card, res *TurnResult) {
	res.add("%s draws: %s", p.Name, card.Description)
	switch card.Kind {
	case CardMoveTo:
		g.cardMoveTo(p, card.Position, res)
	case CardMoveBy:
		p.MoveBy(card.Offset)
		res.add("%s moves to %s", p.Name, g.Board.SpaceAt(p.Position).Name)
		g.resolveLanding(p, res)
	case CardNearestRailroad:
		g.cardMoveTo(p, g.Board.NearestRailroad(p.Position), res)
	case CardNearestUtility:
		g.cardMoveTo(p, g.Board.NearestUtility(p.Position), res)
	case CardMoney:
		if card.Amount >= 0 {
			p.AddMoney(card.Amount)
			res.add("%s collects %d", p.Name, card.Amount)
		} else if g.payBank(p, -card.Amount, res) {
			res.add("%s pays %d", p.Name, -card.Amount)
		}
	case CardGoToJail:
		p.SendToJail()
		res.add("%s goes to jail", p.Name)
	case CardJailFree:
		p.JailFreeCard = true
	case CardCollectFromAll:
		g.collectFromAll(p, card.Amount, res)
	case CardRepairs:
		g.assessRepairs(p, card, res)
	}
}

func (g *Game) cardMoveTo(p *Player, pos int, res *TurnResult) {
	before := p.Balance
	p.MoveTo(pos)
	if p.Balance > before {
		res.add("%s passes GO and collects %d", p.Name, GoBonus)
	}
	res.add("%s moves to %s", p.Name, g.Board.SpaceAt(p.Position).Name)
	g.resolveLanding(p, res)
}

// collectFromAll takes the amount from every other solvent player. A
// player who cannot cover it contributes their whole balance and goes
// bankrupt.
func (g *Game) collectFromAll(p *Player, amount int, res *TurnResult) {
	for _, other := range g.Players {
		if other.ID == p.ID || other.Bankrupt {
			continue
		}
		if other.SubtractMoney(amount) {
			p.AddMoney(amount)
			res.add("%s pays %d to %s", other.Name, amount, p.Name)
		} else {
			g.bankrupt(other, p, res)
		}
	}
}

func (g *Game) assessRepairs(p *Player, card Card, res *TurnResult) {
	cost := 0
	for id := range p.Properties {
		if prop, ok := g.Board.Property(id); ok {
			cost += prop.Houses * card.Amount
			if prop.Hotel {
				cost += card.HotelAmount
			}
		}
	}
	if cost == 0 {
		return
	}
	if g.payBank(p, cost, res) {
		res.add("%s pays %d for repairs", p.Name, cost)
	}
}

// payBank debits a mandatory payment to the bank, bankrupting the player
// if the full amount cannot be covered.
func (g *Game) payBank(p *Player, amount int, res *TurnResult) bool {
	if p.SubtractMoney(amount) {
		return true
	}
	g.bankrupt(p, nil, res)
	return false
}

// bankrupt retires a player. The creditor, if any, receives whatever cash
// was left; the player's properties return to the bank stripped of
// structures and mortgages and can be bought again.
func (g *Game) bankrupt(p *Player, creditor *Player, res *TurnResult) {
	if creditor != nil && p.Balance > 0 {
		creditor.AddMoney(p.Balance)
		res.add("%s hands their last %d to %s", p.Name, p.Balance, creditor.Name)
	}
	p.Balance = 0
	p.Bankrupt = true
	for id := range p.Properties {
		if prop, ok := g.Board.Property(id); ok {
			prop.OwnerID = ""
			prop.Houses = 0
			prop.Hotel = false
			prop.Mortgaged = false
		}
	}
	p.Properties = make(map[string]bool)
	res.add("%s is bankrupt", p.Name)
	g.checkGameEnd(res)
}

func (g *Game) checkGameEnd(res *TurnResult) {
	if g.Status != StatusInProgress || g.ActivePlayers() > 1 {
		return
	}
	g.Status = StatusFinished
	for _, p := range g.Players {
		if p.Active() {
			g.winnerID = p.ID
			res.add("%s wins the game", p.Name)
			return
		}
	}
}

// finishByNetWorth ends the game at the turn ceiling; the richest active
// player by net worth takes it, earlier seats winning ties.
func (g *Game) finishByNetWorth(res *TurnResult) {
	g.Status = StatusFinished
	best := -1
	for _, p := range g.Players {
		if !p.Active() {
			continue
		}
		if worth := p.NetWorth(g.Board); worth > best {
			best = worth
			g.winnerID = p.ID
		}
	}
	if w := g.Winner(); w != nil {
		res.add("turn limit reached, %s wins with a net worth of %d", w.Name, best)
	}
}

func (g *Game) advanceTurn() {
	if g.ActivePlayers() == 0 {
		return
	}
	for i := 1; i <= len(g.Players); i++ {
		next := (g.current + i) % len(g.Players)
		if g.Players[next].Active() {
			g.current = next
			return
		}
	}
}
