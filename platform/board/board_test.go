package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DedS3t/monopoly-engine/app/game"
)

func TestLoadSpaces(t *testing.T) {
	spaces, properties, err := LoadSpaces()
	require.NoError(t, err)
	assert.Len(t, spaces, game.BoardSize)
	assert.Len(t, properties, 28)

	kinds := map[game.PropertyKind]int{}
	for _, p := range properties {
		kinds[p.Kind]++
	}
	assert.Equal(t, 22, kinds[game.Street])
	assert.Equal(t, 4, kinds[game.Railroad])
	assert.Equal(t, 2, kinds[game.Utility])
}

func TestLoadCards(t *testing.T) {
	chance, chest, err := LoadCards()
	require.NoError(t, err)
	assert.Len(t, chance, 16)
	assert.Len(t, chest, 16)

	known := map[game.CardKind]bool{
		game.CardMoveTo:          true,
		game.CardMoveBy:          true,
		game.CardNearestRailroad: true,
		game.CardNearestUtility:  true,
		game.CardMoney:           true,
		game.CardGoToJail:        true,
		game.CardJailFree:        true,
		game.CardCollectFromAll:  true,
		game.CardRepairs:         true,
	}
	for _, c := range append(chance, chest...) {
		assert.True(t, known[c.Kind], "card %s has unknown kind %q", c.ID, c.Kind)
		assert.NotEmpty(t, c.Description)
	}
}

func TestNewAssemblesBoard(t *testing.T) {
	b, err := New(rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, game.SpaceGo, b.SpaceAt(0).Kind)
	assert.Equal(t, game.SpaceJail, b.SpaceAt(game.JailPosition).Kind)
	assert.Equal(t, game.SpaceGoToJail, b.SpaceAt(game.GoToJailPosition).Kind)

	assert.Equal(t, 200, b.SpaceAt(4).Tax)
	assert.Equal(t, 100, b.SpaceAt(38).Tax)

	assert.Equal(t, 2, b.GroupSize("brown"))
	assert.Equal(t, 3, b.GroupSize("red"))
	assert.Equal(t, 4, b.GroupSize("railroad"))
	assert.Equal(t, 2, b.GroupSize("utility"))

	boardwalk, ok := b.Property("boardwalk")
	require.True(t, ok)
	assert.Equal(t, 400, boardwalk.Price)
	assert.Equal(t, 50, boardwalk.Rent)

	// Standard topology scans, including the wrap past the last entries.
	assert.Equal(t, 15, b.NearestRailroad(7))
	assert.Equal(t, 5, b.NearestRailroad(36))
	assert.Equal(t, 28, b.NearestUtility(12))
	assert.Equal(t, 12, b.NearestUtility(28))
}

func TestEverySpaceLinksCleanly(t *testing.T) {
	b, err := New(rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	for pos := 0; pos < game.BoardSize; pos++ {
		sp := b.SpaceAt(pos)
		assert.Equal(t, pos, sp.Position)
		if sp.Purchasable() {
			_, ok := b.Property(sp.PropertyID)
			assert.True(t, ok, "space %d links to missing property %q", pos, sp.PropertyID)
		}
	}
}
