package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DedS3t/monopoly-engine/app/game"
)

func TestCardMoneyCollect(t *testing.T) {
	b := cardBoard([]game.Card{{ID: "dividend", Description: "Bank pays 50", Kind: game.CardMoney, Amount: 50}}, nil)
	g, a, _ := newTestGame(t, b, 3, 4)

	_, err := g.TakeTurn(a.ID)
	require.NoError(t, err)
	assert.Equal(t, game.StartingBalance+50, a.Balance)
}

func TestCardMoneyPaymentBankrupts(t *testing.T) {
	b := cardBoard([]game.Card{{ID: "fee", Description: "Pay 50", Kind: game.CardMoney, Amount: -50}}, nil)
	g, a, c := newTestGame(t, b, 3, 4)
	a.Balance = 10

	_, err := g.TakeTurn(a.ID)
	require.NoError(t, err)

	assert.True(t, a.Bankrupt)
	assert.Equal(t, game.StatusFinished, g.Status)
	assert.Equal(t, c.ID, g.Winner().ID)
}

func TestCardMoveToPaysGoBonusOnWrap(t *testing.T) {
	b := cardBoard([]game.Card{{ID: "go", Description: "Advance to GO", Kind: game.CardMoveTo, Position: 0}}, nil)
	g, a, _ := newTestGame(t, b, 3, 4)

	_, err := g.TakeTurn(a.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, a.Position)
	assert.Equal(t, game.StartingBalance+game.GoBonus, a.Balance)
}

func TestCardMoveByBackwardResolvesLanding(t *testing.T) {
	b := cardBoard([]game.Card{{ID: "back", Description: "Go back 3 spaces", Kind: game.CardMoveBy, Offset: -3}}, nil)
	g, a, _ := newTestGame(t, b, 3, 4)

	_, err := g.TakeTurn(a.ID)
	require.NoError(t, err)

	// Chance at 7, back 3 lands on the 200 tax. No GO bonus backward.
	assert.Equal(t, 4, a.Position)
	assert.Equal(t, game.StartingBalance-200, a.Balance)
}

func TestCardNearestRailroadPaysOwner(t *testing.T) {
	b := cardBoard([]game.Card{{ID: "rr", Description: "Advance to the nearest railroad", Kind: game.CardNearestRailroad}}, nil)
	g, a, c := newTestGame(t, b, 3, 4)
	own(t, g.Board, c.ID, "rr-east")
	c.Properties["rr-east"] = true

	_, err := g.TakeTurn(a.ID)
	require.NoError(t, err)

	assert.Equal(t, 15, a.Position, "first railroad strictly past position 7")
	assert.Equal(t, game.StartingBalance-25, a.Balance, "single railroad rent")
	assert.Equal(t, game.StartingBalance+25, c.Balance)
}

func TestCardNearestUtilityMoves(t *testing.T) {
	b := cardBoard([]game.Card{{ID: "util", Description: "Advance to the nearest utility", Kind: game.CardNearestUtility}}, nil)
	g, a, _ := newTestGame(t, b, 3, 4)

	_, err := g.TakeTurn(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, a.Position)
}

func TestCardGoToJail(t *testing.T) {
	b := cardBoard([]game.Card{{ID: "jail", Description: "Go directly to jail", Kind: game.CardGoToJail}}, nil)
	g, a, _ := newTestGame(t, b, 3, 4)

	_, err := g.TakeTurn(a.ID)
	require.NoError(t, err)

	assert.True(t, a.InJail)
	assert.Equal(t, game.JailPosition, a.Position)
}

func TestCardJailFreeGrantAndAutoUse(t *testing.T) {
	b := cardBoard([]game.Card{{ID: "free", Description: "Get out of jail free", Kind: game.CardJailFree}}, nil)
	g, a, c := newTestGame(t, b, 3, 4, 1, 2, 1, 2)

	_, err := g.TakeTurn(a.ID)
	require.NoError(t, err)
	assert.True(t, a.JailFreeCard)

	_, err = g.TakeTurn(c.ID)
	require.NoError(t, err)

	a.SendToJail()
	_, err = g.TakeTurn(a.ID)
	require.NoError(t, err)

	assert.False(t, a.JailFreeCard, "token is single-use")
	assert.False(t, a.InJail)
	assert.Equal(t, 13, a.Position, "released before the roll, so the move happens")
	assert.Equal(t, game.StartingBalance, a.Balance, "no fine when the token pays the way out")
}

func TestCardCollectFromAll(t *testing.T) {
	b := cardBoard([]game.Card{{ID: "chairman", Description: "Collect 50 from every player", Kind: game.CardCollectFromAll, Amount: 50}}, nil)
	g := game.NewGame("t", b, game.NewDice(rolls(3, 4)))
	a, err := g.AddPlayer("alice")
	require.NoError(t, err)
	bob, err := g.AddPlayer("bob")
	require.NoError(t, err)
	carol, err := g.AddPlayer("carol")
	require.NoError(t, err)
	require.NoError(t, g.Start())
	carol.Balance = 20

	_, err = g.TakeTurn(a.ID)
	require.NoError(t, err)

	assert.Equal(t, game.StartingBalance+50+20, a.Balance, "full share from bob, carol's whole balance")
	assert.Equal(t, game.StartingBalance-50, bob.Balance)
	assert.True(t, carol.Bankrupt)
	assert.Equal(t, 0, carol.Balance)
	assert.Equal(t, game.StatusInProgress, g.Status, "two players remain")
}

func TestCardRepairs(t *testing.T) {
	b := cardBoard([]game.Card{{ID: "repairs", Description: "General repairs", Kind: game.CardRepairs, Amount: 25, HotelAmount: 100}}, nil)
	g, a, _ := newTestGame(t, b, 3, 4)

	own(t, g.Board, a.ID, "alpha", "gamma")
	a.Properties["alpha"] = true
	a.Properties["gamma"] = true
	alpha, _ := g.Board.Property("alpha")
	alpha.Houses = 3
	gamma, _ := g.Board.Property("gamma")
	gamma.Hotel = true

	_, err := g.TakeTurn(a.ID)
	require.NoError(t, err)

	// 3 houses at 25 plus one hotel at 100.
	assert.Equal(t, game.StartingBalance-175, a.Balance)
}

func TestCommunityChestDraw(t *testing.T) {
	chest := []game.Card{{ID: "error", Description: "Bank error in your favor", Kind: game.CardMoney, Amount: 200}}
	b := cardBoard(nil, chest)
	g, a, _ := newTestGame(t, b, 1, 1, 4, 2)

	// Doubles 1+1 land on the chest at 2, then the extra roll moves on.
	_, err := g.TakeTurn(a.ID)
	require.NoError(t, err)

	assert.Equal(t, game.StartingBalance+200, a.Balance)
	assert.Equal(t, 8, a.Position)
}
