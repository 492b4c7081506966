package game

// SiteKind tells a decider what kind of card it is placing.
type SiteKind int

const (
	PathSite SiteKind = iota
	VillageSite
	TownSite
	UnitSite
)

func (k SiteKind) String() string {
	return [...]string{"path", "village", "town", "unit"}[k]
}

// SiteRequest asks for a main-board position. Card is set for UnitSite.
type SiteRequest struct {
	Kind SiteKind
	Card Buildable
}

// Bill is an outstanding payment: either an exact Cost or Any units of whatever the payer holds.
type Bill struct {
	Cost Cost
	Any  int
}

func (b Bill) Due() int {
	if b.Any > 0 {
		return b.Any
	}
	return b.Cost.Total()
}

// Accepts reports whether a unit of r settles part of the bill.
func (b Bill) Accepts(r Resource) bool {
	return b.Any > 0 || b.Cost[r] > 0
}

func (b Bill) settle(r Resource) Bill {
	if b.Any > 0 {
		b.Any--
		return b
	}
	b.Cost = b.Cost.Take(r, 1)
	return b
}

// Decider answers every choice the rules leave to a player. Both the interactive
// and the computer player implement it. Each answer must satisfy the documented
// precondition; the engine panics on an answer it cannot apply.
//
// Methods receive the asking player, which exposes the game and the opponent.
type Decider interface {
	// PickStartingCards returns distinct indices of n cards from the given pile.
	PickStartingCards(p *Player, pile, n int) []int
	// SwapInitialLand returns two own landscape positions to exchange, or ok=false to stop.
	SwapInitialLand(p *Player) (a, b Pos, ok bool)
	// ThrowDice is acknowledged before the dice phase rolls.
	ThrowDice(p *Player)
	// SelectYieldNumber is offered when the player holds an alchemist. ok=false rolls normally.
	SelectYieldNumber(p *Player) (n int, ok bool)
	// ChooseAction returns the next action phase move. Returning EndTurn ends the phase.
	ChooseAction(p *Player) Move

	// SelectPile returns a non-empty pile index other than exclude (-1 for none).
	SelectPile(p *Player, exclude int) int
	// SelectCardFromChoice returns an index into the given pile.
	SelectCardFromChoice(p *Player, pile int) int
	// SelectNewCardPosition returns a site satisfying the request, or ok=false to cancel.
	SelectNewCardPosition(p *Player, req SiteRequest) (pos Pos, ok bool)
	// SelectCardToPay returns an own landscape with a resource the bill accepts.
	SelectCardToPay(p *Player, bill Bill) *Landscape
	// SelectCardToThrowAway returns a card from the player's own hand.
	SelectCardToThrowAway(p *Player) Playable
	// SelectOpponentsUnitToRemove returns an unprotected knight or fleet of the opponent.
	SelectOpponentsUnitToRemove(p *Player) Buildable
	// SelectCardToStealBySpy returns a knight, fleet or action card from the opponent's hand.
	SelectCardToStealBySpy(p *Player) Playable
	// SelectOpponentsCardToDiscard returns a card from the opponent's hand.
	SelectOpponentsCardToDiscard(p *Player) Playable
	// DecideUseDefence is asked when the player holds the defence card against attack.
	DecideUseDefence(p *Player, attack ActionKind) bool
	// SelectBuildingToBurn returns one of the opponent's buildings.
	SelectBuildingToBurn(p *Player) *Building
	// SelectKnightToKill returns one of the opponent's knights.
	SelectKnightToKill(p *Player) *Knight
	// GiveAnyResource returns an own landscape holding a resource and an opponent
	// landscape of the same resource with room.
	GiveAnyResource(p *Player) (from, to *Landscape)
	// TradeWithCaravan returns two own landscapes of different resources, or ok=false.
	TradeWithCaravan(p *Player) (give, take *Landscape, ok bool)
	// SelectResourceToTradeFor returns the resource to give and the one to receive, or ok=false.
	SelectResourceToTradeFor(p *Player) (give, get Resource, ok bool)
	// SelectResourceToPurchase returns an own landscape of r with room.
	SelectResourceToPurchase(p *Player, r Resource) *Landscape
	DecideUseScout(p *Player) bool
	// SelectNewLand returns an index into the landscape pool for the square at pos.
	SelectNewLand(p *Player, pos Pos) int
	DecideBrowsePile(p *Player) bool
	DecideSwapOneCard(p *Player) bool
	// PickAnyResource returns an own landscape with room.
	PickAnyResource(p *Player) *Landscape
	// GrabAnyResource returns an opponent landscape holding a resource and an own
	// landscape of the same resource with room.
	GrabAnyResource(p *Player) (from, to *Landscape)
}

// Messenger receives advisory text for a player.
type Messenger interface {
	Print(player int, msg string)
}

type nopMessenger struct{}

func (nopMessenger) Print(int, string) {}
