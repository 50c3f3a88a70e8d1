package board

import (
	// Board data ships inside the binary; the loader validates it once.
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/game"
)

//go:embed board.json
var boardJSON []byte

//go:embed cards.json
var cardsJSON []byte

// cell is one raw entry of board.json. Purchasable cells carry the
// property fields, tax cells the amount, corner and draw cells only the
// name and kind.
type cell struct {
	Position  int    `json:"position"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	ID        string `json:"id,omitempty"`
	Group     string `json:"group,omitempty"`
	Price     int    `json:"price,omitempty"`
	Rent      int    `json:"rent,omitempty"`
	HouseCost int    `json:"house_cost,omitempty"`
	HotelCost int    `json:"hotel_cost,omitempty"`
	Tax       int    `json:"tax,omitempty"`
}

type deckFile struct {
	Chance         []game.Card `json:"chance"`
	CommunityChest []game.Card `json:"community_chest"`
}

// LoadSpaces parses the embedded board layout into the 40 space
// descriptors and the property registry entries they reference.
func LoadSpaces() ([]game.Space, []game.Property, error) {
	var cells []cell
	if err := json.Unmarshal(boardJSON, &cells); err != nil {
		return nil, nil, fmt.Errorf("board data: %w", err)
	}
	if len(cells) != game.BoardSize {
		return nil, nil, fmt.Errorf("board data: expected %d spaces, got %d", game.BoardSize, len(cells))
	}

	spaces := make([]game.Space, 0, len(cells))
	properties := make([]game.Property, 0, 28)
	seen := make(map[int]bool, len(cells))
	for _, c := range cells {
		if c.Position < 0 || c.Position >= game.BoardSize || seen[c.Position] {
			return nil, nil, fmt.Errorf("board data: bad position %d", c.Position)
		}
		seen[c.Position] = true

		sp := game.Space{
			Position: c.Position,
			Name:     c.Name,
			Kind:     game.SpaceKind(c.Kind),
			Tax:      c.Tax,
		}
		if kind, purchasable := propertyKind(sp.Kind); purchasable {
			if c.ID == "" || c.Price <= 0 {
				return nil, nil, fmt.Errorf("board data: %q needs an id and price", c.Name)
			}
			sp.PropertyID = c.ID
			properties = append(properties, game.Property{
				ID:        c.ID,
				Name:      c.Name,
				Kind:      kind,
				Group:     c.Group,
				Price:     c.Price,
				Rent:      c.Rent,
				HouseCost: c.HouseCost,
				HotelCost: c.HotelCost,
			})
		}
		spaces = append(spaces, sp)
	}
	return spaces, properties, nil
}

func propertyKind(kind game.SpaceKind) (game.PropertyKind, bool) {
	switch kind {
	case game.SpaceProperty:
		return game.Street, true
	case game.SpaceRailroad:
		return game.Railroad, true
	case game.SpaceUtility:
		return game.Utility, true
	}
	return "", false
}

// LoadCards parses the embedded chance and community chest decks.
func LoadCards() (chance, chest []game.Card, err error) {
	var decks deckFile
	if err := json.Unmarshal(cardsJSON, &decks); err != nil {
		return nil, nil, fmt.Errorf("card data: %w", err)
	}
	if len(decks.Chance) == 0 || len(decks.CommunityChest) == 0 {
		return nil, nil, fmt.Errorf("card data: both decks must be non-empty")
	}
	return decks.Chance, decks.CommunityChest, nil
}

// New assembles the standard board with decks shuffled by src.
func New(src game.Source) (*game.Board, error) {
	spaces, properties, err := LoadSpaces()
	if err != nil {
		return nil, err
	}
	chance, chest, err := LoadCards()
	if err != nil {
		return nil, err
	}
	return game.NewBoard(spaces, properties, chance, chest, src), nil
}
