package game

// BoardSize is the number of spaces on the board.
const BoardSize = 40

// Fixed corner positions.
const (
	GoPosition       = 0
	JailPosition     = 10
	GoToJailPosition = 30
)

// SpaceKind classifies what landing on a position does.
type SpaceKind string

const (
	SpaceGo             SpaceKind = "go"
	SpaceProperty       SpaceKind = "property"
	SpaceRailroad       SpaceKind = "railroad"
	SpaceUtility        SpaceKind = "utility"
	SpaceChance         SpaceKind = "chance"
	SpaceCommunityChest SpaceKind = "community-chest"
	SpaceTax            SpaceKind = "tax"
	SpaceJail           SpaceKind = "jail"
	SpaceFreeParking    SpaceKind = "free-parking"
	SpaceGoToJail       SpaceKind = "go-to-jail"
)

// Space describes one board position. Property-like kinds carry the id of
// the linked registry entry, tax kinds the amount due.
type Space struct {
	Position   int       `json:"position"`
	Name       string    `json:"name"`
	Kind       SpaceKind `json:"kind"`
	PropertyID string    `json:"property_id,omitempty"`
	Tax        int       `json:"tax,omitempty"`
}

// Purchasable reports whether the space maps to a registry property.
func (s *Space) Purchasable() bool {
	switch s.Kind {
	case SpaceProperty, SpaceRailroad, SpaceUtility:
		return true
	}
	return false
}

// Board is the fixed topology: 40 spaces, the property registry and the
// two card decks. It is assembled once at game setup and only the
// properties and deck queues mutate afterwards.
type Board struct {
	spaces     [BoardSize]Space
	properties map[string]*Property
	groupSizes map[string]int
	railroads  []int
	utilities  []int
	chance     *Deck
	chest      *Deck
}

// NewBoard wires spaces, properties and decks together. Spaces must cover
// positions 0..39 exactly; the loader in platform/board validates the
// embedded data before calling this.
func NewBoard(spaces []Space, properties []Property, chance, chest []Card, src Source) *Board {
	b := &Board{
		properties: make(map[string]*Property, len(properties)),
		groupSizes: make(map[string]int),
		chance:     NewDeck(chance, src),
		chest:      NewDeck(chest, src),
	}
	for i := range properties {
		prop := properties[i]
		b.properties[prop.ID] = &prop
		b.groupSizes[prop.Group]++
	}
	for _, sp := range spaces {
		b.spaces[sp.Position%BoardSize] = sp
		switch sp.Kind {
		case SpaceRailroad:
			b.railroads = append(b.railroads, sp.Position)
		case SpaceUtility:
			b.utilities = append(b.utilities, sp.Position)
		}
	}
	return b
}

// SpaceAt returns the space at pos, indexing modulo the board size so a
// position at or beyond 40 is safe.
func (b *Board) SpaceAt(pos int) *Space {
	return &b.spaces[pos%BoardSize]
}

// Property looks up a registry entry by id.
func (b *Board) Property(id string) (*Property, bool) {
	p, ok := b.properties[id]
	return p, ok
}

// PropertyAt resolves the property linked to a position, if any.
func (b *Board) PropertyAt(pos int) (*Property, bool) {
	sp := b.SpaceAt(pos)
	if !sp.Purchasable() {
		return nil, false
	}
	return b.Property(sp.PropertyID)
}

// Properties exposes the full registry for net worth and state queries.
func (b *Board) Properties() map[string]*Property {
	return b.properties
}

// GroupSize is the number of properties in a color or kind group.
func (b *Board) GroupSize(group string) int {
	return b.groupSizes[group]
}

// OwnsFullGroup reports whether a player holds every property of a group.
func (b *Board) OwnsFullGroup(playerID, group string) bool {
	total := b.groupSizes[group]
	if total == 0 {
		return false
	}
	owned := 0
	for _, p := range b.properties {
		if p.Group == group && p.OwnerID == playerID {
			owned++
		}
	}
	return owned == total
}

// CountOwnedKind counts how many properties of a kind a player holds,
// which drives railroad and utility rent tiers.
func (b *Board) CountOwnedKind(playerID string, kind PropertyKind) int {
	count := 0
	for _, p := range b.properties {
		if p.Kind == kind && p.OwnerID == playerID {
			count++
		}
	}
	return count
}

// DrawChance pops the next chance card.
func (b *Board) DrawChance() Card {
	return b.chance.Draw()
}

// DrawCommunityChest pops the next community chest card.
func (b *Board) DrawCommunityChest() Card {
	return b.chest.Draw()
}

// NearestRailroad finds the first railroad position strictly after pos,
// wrapping to the first railroad when pos is past the last one.
func (b *Board) NearestRailroad(pos int) int {
	return nearestAfter(b.railroads, pos)
}

// NearestUtility finds the first utility position strictly after pos with
// the same wrap rule.
func (b *Board) NearestUtility(pos int) int {
	return nearestAfter(b.utilities, pos)
}

func nearestAfter(positions []int, pos int) int {
	if len(positions) == 0 {
		return pos
	}
	for _, p := range positions {
		if p > pos {
			return p
		}
	}
	return positions[0]
}
