package game

// CardKind tags the effect a drawn card applies. Keeping the effect as a
// tagged struct instead of a free-form action string means the engine
// switches on a closed set and malformed deck data fails at load time.
type CardKind string

const (
	CardMoveTo          CardKind = "move-to"
	CardMoveBy          CardKind = "move-by"
	CardNearestRailroad CardKind = "nearest-railroad"
	CardNearestUtility  CardKind = "nearest-utility"
	CardMoney           CardKind = "money"
	CardGoToJail        CardKind = "go-to-jail"
	CardJailFree        CardKind = "jail-free"
	CardCollectFromAll  CardKind = "collect-from-all"
	CardRepairs         CardKind = "repairs"
)

// Card is one entry of the chance or community chest deck.
//
// Which parameter fields matter depends on Kind: Position for move-to,
// Offset for move-by, Amount for money / collect-from-all and the per-house
// rate of repairs, HotelAmount for the per-hotel rate of repairs.
type Card struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Kind        CardKind `json:"kind"`
	Amount      int      `json:"amount,omitempty"`
	Position    int      `json:"position,omitempty"`
	Offset      int      `json:"offset,omitempty"`
	HotelAmount int      `json:"hotel_amount,omitempty"`
}

// Deck is a cyclic card queue. Draw pops from the front; once the queue
// runs dry a complete fresh copy is reshuffled in, so the deck never
// permanently empties. The shuffle goes through the injected Source to
// keep games replayable.
type Deck struct {
	src   Source
	fresh []Card
	queue []Card
}

func NewDeck(cards []Card, src Source) *Deck {
	d := &Deck{
		src:   src,
		fresh: make([]Card, len(cards)),
	}
	copy(d.fresh, cards)
	d.refill()
	return d
}

func (d *Deck) refill() {
	d.queue = make([]Card, len(d.fresh))
	copy(d.queue, d.fresh)
	d.src.Shuffle(len(d.queue), func(i, j int) {
		d.queue[i], d.queue[j] = d.queue[j], d.queue[i]
	})
}

// Draw returns the next card, reshuffling a full deck first if exhausted.
func (d *Deck) Draw() Card {
	if len(d.queue) == 0 {
		d.refill()
	}
	card := d.queue[0]
	d.queue = d.queue[1:]
	return card
}

// Remaining reports how many cards are left before the next reshuffle.
func (d *Deck) Remaining() int {
	return len(d.queue)
}
