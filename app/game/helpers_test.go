package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DedS3t/monopoly-engine/app/game"
)

// scriptedSource feeds predetermined die faces to the engine. Shuffle is
// a no-op so decks stay in declaration order.
type scriptedSource struct {
	faces []int
	i     int
}

func rolls(faces ...int) *scriptedSource {
	return &scriptedSource{faces: faces}
}

func (s *scriptedSource) Intn(n int) int {
	if s.i >= len(s.faces) {
		return 0
	}
	v := s.faces[s.i]
	s.i++
	return v - 1
}

func (s *scriptedSource) Shuffle(n int, swap func(i, j int)) {}

// testSpaces is a compact 40-space layout: two brown streets so group
// completion is testable, a lone light-blue street, the four railroads,
// both utilities, the two taxes and the corners. Unlisted positions are
// inert filler.
func testSpaces() ([]game.Space, []game.Property) {
	spaces := []game.Space{
		{Position: 0, Name: "GO", Kind: game.SpaceGo},
		{Position: 1, Name: "Beta Street", Kind: game.SpaceProperty, PropertyID: "beta"},
		{Position: 3, Name: "Alpha Street", Kind: game.SpaceProperty, PropertyID: "alpha"},
		{Position: 4, Name: "Income Tax", Kind: game.SpaceTax, Tax: 200},
		{Position: 5, Name: "North Railroad", Kind: game.SpaceRailroad, PropertyID: "rr-north"},
		{Position: 6, Name: "Gamma Street", Kind: game.SpaceProperty, PropertyID: "gamma"},
		{Position: 10, Name: "Jail", Kind: game.SpaceJail},
		{Position: 12, Name: "Electric Works", Kind: game.SpaceUtility, PropertyID: "electric"},
		{Position: 15, Name: "East Railroad", Kind: game.SpaceRailroad, PropertyID: "rr-east"},
		{Position: 20, Name: "Free Parking", Kind: game.SpaceFreeParking},
		{Position: 25, Name: "South Railroad", Kind: game.SpaceRailroad, PropertyID: "rr-south"},
		{Position: 28, Name: "Water Works", Kind: game.SpaceUtility, PropertyID: "water"},
		{Position: 30, Name: "Go To Jail", Kind: game.SpaceGoToJail},
		{Position: 35, Name: "West Railroad", Kind: game.SpaceRailroad, PropertyID: "rr-west"},
		{Position: 38, Name: "Luxury Tax", Kind: game.SpaceTax, Tax: 100},
	}
	properties := []game.Property{
		{ID: "alpha", Name: "Alpha Street", Kind: game.Street, Group: "brown", Price: 60, Rent: 2, HouseCost: 50, HotelCost: 50},
		{ID: "beta", Name: "Beta Street", Kind: game.Street, Group: "brown", Price: 60, Rent: 4, HouseCost: 50, HotelCost: 50},
		{ID: "gamma", Name: "Gamma Street", Kind: game.Street, Group: "light-blue", Price: 100, Rent: 6, HouseCost: 50, HotelCost: 50},
		{ID: "rr-north", Name: "North Railroad", Kind: game.Railroad, Group: "railroad", Price: 200},
		{ID: "rr-east", Name: "East Railroad", Kind: game.Railroad, Group: "railroad", Price: 200},
		{ID: "rr-south", Name: "South Railroad", Kind: game.Railroad, Group: "railroad", Price: 200},
		{ID: "rr-west", Name: "West Railroad", Kind: game.Railroad, Group: "railroad", Price: 200},
		{ID: "electric", Name: "Electric Works", Kind: game.Utility, Group: "utility", Price: 150},
		{ID: "water", Name: "Water Works", Kind: game.Utility, Group: "utility", Price: 150},
	}
	return spaces, properties
}

func testBoard() *game.Board {
	spaces, properties := testSpaces()
	return game.NewBoard(spaces, properties, nil, nil, rolls())
}

// cardBoard adds a chance space at 7 and a community chest space at 2 so
// card effects can be triggered by scripted rolls.
func cardBoard(chance, chest []game.Card) *game.Board {
	spaces, properties := testSpaces()
	spaces = append(spaces,
		game.Space{Position: 7, Name: "Chance", Kind: game.SpaceChance},
		game.Space{Position: 2, Name: "Community Chest", Kind: game.SpaceCommunityChest},
	)
	return game.NewBoard(spaces, properties, chance, chest, rolls())
}

func newTestGame(t *testing.T, b *game.Board, faces ...int) (*game.Game, *game.Player, *game.Player) {
	t.Helper()
	g := game.NewGame("test", b, game.NewDice(rolls(faces...)))
	a, err := g.AddPlayer("alice")
	require.NoError(t, err)
	c, err := g.AddPlayer("bob")
	require.NoError(t, err)
	require.NoError(t, g.Start())
	return g, a, c
}
