package game

// PropertyKind classifies a purchasable space.
type PropertyKind string

const (
	Street   PropertyKind = "street"
	Railroad PropertyKind = "railroad"
	Utility  PropertyKind = "utility"
)

// MaxHouses is the development ceiling before a hotel replaces the houses.
const MaxHouses = 4

// Property is the mutable ownership and development record of one
// purchasable space. Ownership is held as the owning player's id; the
// matching Player carries the reverse entry in its owned set, and the Game
// keeps the two sides consistent.
type Property struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Kind      PropertyKind `json:"kind"`
	Group     string       `json:"group"`
	Price     int          `json:"price"`
	Rent      int          `json:"rent"`
	HouseCost int          `json:"house_cost"`
	HotelCost int          `json:"hotel_cost"`
	OwnerID   string       `json:"owner_id,omitempty"`
	Houses    int          `json:"houses"`
	Hotel     bool         `json:"hotel"`
	Mortgaged bool         `json:"mortgaged"`
}

// Owned reports whether any player holds the property.
func (p *Property) Owned() bool {
	return p.OwnerID != ""
}

// MortgageValue is what the bank pays out when the property is pledged.
func (p *Property) MortgageValue() int {
	return p.Price / 2
}

// UnmortgageCost is the mortgage value plus 10% interest.
func (p *Property) UnmortgageCost() int {
	return p.MortgageValue() * 110 / 100
}

// Developed reports whether any structure stands on the property.
func (p *Property) Developed() bool {
	return p.Houses > 0 || p.Hotel
}

// CurrentValue is the property's contribution to its owner's net worth:
// purchase price plus structures, less the outstanding mortgage principal.
func (p *Property) CurrentValue() int {
	value := p.Price + p.Houses*p.HouseCost
	if p.Hotel {
		value += p.HotelCost
	}
	if p.Mortgaged {
		value -= p.MortgageValue()
	}
	return value
}

// CalculateRent computes the rent a visitor owes given the dice total of
// the roll that landed them here. Unowned or mortgaged properties collect
// nothing. Streets scale with development, railroads double per railroad
// the owner holds, utilities are a dice multiple.
func (p *Property) CalculateRent(b *Board, diceTotal int) int {
	if !p.Owned() || p.Mortgaged {
		return 0
	}
	switch p.Kind {
	case Street:
		if p.Hotel {
			return p.Rent * 5
		}
		if p.Houses > 0 {
			return p.Rent * p.Houses
		}
		if b.OwnsFullGroup(p.OwnerID, p.Group) {
			return p.Rent * 2
		}
		return p.Rent
	case Railroad:
		rent := 25
		for i := 1; i < b.CountOwnedKind(p.OwnerID, Railroad); i++ {
			rent *= 2
		}
		return rent
	case Utility:
		if b.CountOwnedKind(p.OwnerID, Utility) >= 2 {
			return 10 * diceTotal
		}
		return 4 * diceTotal
	}
	return 0
}
