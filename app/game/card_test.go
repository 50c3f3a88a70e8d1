package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DedS3t/monopoly-engine/app/game"
)

func TestDeckCyclesWithoutEmptying(t *testing.T) {
	cards := []game.Card{
		{ID: "a", Kind: game.CardMoney, Amount: 10},
		{ID: "b", Kind: game.CardMoney, Amount: 20},
		{ID: "c", Kind: game.CardGoToJail},
	}
	// No-op shuffle keeps declaration order through every reshuffle.
	deck := game.NewDeck(cards, rolls())

	var drawn []string
	for i := 0; i < 7; i++ {
		drawn = append(drawn, deck.Draw().ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c", "a"}, drawn)
	assert.Equal(t, 2, deck.Remaining())
}

func TestDeckReshuffleIsFresh(t *testing.T) {
	deck := game.NewDeck([]game.Card{{ID: "only", Kind: game.CardJailFree}}, rolls())
	for i := 0; i < 5; i++ {
		assert.Equal(t, "only", deck.Draw().ID)
	}
}
