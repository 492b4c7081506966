package game

import (
	"fmt"
	"testing"

	"settlers/meta"

	"github.com/stretchr/testify/require"
)

// fakeDecider answers with simple first-fit choices. Tests override single answers
// through the function fields and inspect calls.
type fakeDecider struct {
	moves  []Move
	calls  map[string]int
	defend bool
	scout  bool
	browse bool
	swap   bool

	selectPile   func(p *Player, exclude int) int
	selectChoice func(p *Player, pile int) int
	selectLand   func(p *Player, pos Pos) int
	throwAway    func(p *Player) Playable
	yield        func(p *Player) (int, bool)
	tradeFor     func(p *Player) (Resource, Resource, bool)
	caravan      func(p *Player) (*Landscape, *Landscape, bool)
}

func newFake() *fakeDecider {
	return &fakeDecider{calls: map[string]int{}}
}

func (f *fakeDecider) called(name string) {
	f.calls[name]++
}

func (f *fakeDecider) PickStartingCards(p *Player, pile, n int) []int {
	f.called("PickStartingCards")
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func (f *fakeDecider) SwapInitialLand(p *Player) (Pos, Pos, bool) {
	f.called("SwapInitialLand")
	return Pos{}, Pos{}, false
}

func (f *fakeDecider) ThrowDice(p *Player) {
	f.called("ThrowDice")
}

func (f *fakeDecider) SelectYieldNumber(p *Player) (int, bool) {
	f.called("SelectYieldNumber")
	if f.yield != nil {
		return f.yield(p)
	}
	return 0, false
}

func (f *fakeDecider) ChooseAction(p *Player) Move {
	f.called("ChooseAction")
	if len(f.moves) == 0 {
		return Move{Type: EndTurn}
	}
	m := f.moves[0]
	f.moves = f.moves[1:]
	return m
}

func (f *fakeDecider) SelectPile(p *Player, exclude int) int {
	f.called("SelectPile")
	if f.selectPile != nil {
		return f.selectPile(p, exclude)
	}
	for i, pile := range p.Game().Piles {
		if i != exclude && len(pile) > 0 {
			return i
		}
	}
	return -1
}

func (f *fakeDecider) SelectCardFromChoice(p *Player, pile int) int {
	f.called("SelectCardFromChoice")
	if f.selectChoice != nil {
		return f.selectChoice(p, pile)
	}
	return 0
}

func (f *fakeDecider) SelectNewCardPosition(p *Player, req SiteRequest) (Pos, bool) {
	f.called("SelectNewCardPosition")
	sites := p.Game().Sites(p, req)
	if len(sites) == 0 {
		return Pos{}, false
	}
	return sites[0], true
}

func (f *fakeDecider) SelectCardToPay(p *Player, bill Bill) *Landscape {
	f.called("SelectCardToPay")
	for _, l := range p.Lands {
		if l.Held > 0 && bill.Accepts(l.Resource) {
			return l
		}
	}
	return nil
}

func (f *fakeDecider) SelectCardToThrowAway(p *Player) Playable {
	f.called("SelectCardToThrowAway")
	if f.throwAway != nil {
		return f.throwAway(p)
	}
	return p.Hand[0]
}

func (f *fakeDecider) SelectOpponentsUnitToRemove(p *Player) Buildable {
	f.called("SelectOpponentsUnitToRemove")
	return p.Opponent().RemovableUnits()[0]
}

func (f *fakeDecider) SelectCardToStealBySpy(p *Player) Playable {
	f.called("SelectCardToStealBySpy")
	return p.Opponent().StealableCards()[0]
}

func (f *fakeDecider) SelectOpponentsCardToDiscard(p *Player) Playable {
	f.called("SelectOpponentsCardToDiscard")
	return p.Opponent().Hand[0]
}

func (f *fakeDecider) DecideUseDefence(p *Player, attack ActionKind) bool {
	f.called("DecideUseDefence")
	return f.defend
}

func (f *fakeDecider) SelectBuildingToBurn(p *Player) *Building {
	f.called("SelectBuildingToBurn")
	return p.Opponent().Buildings[0]
}

func (f *fakeDecider) SelectKnightToKill(p *Player) *Knight {
	f.called("SelectKnightToKill")
	return p.Opponent().Knights[0]
}

func firstTransfer(src, dst *Player) (*Landscape, *Landscape) {
	for _, from := range src.LandsHolding() {
		if to := dst.LandsWithRoom(from.Resource); len(to) > 0 {
			return from, to[0]
		}
	}
	return nil, nil
}

func (f *fakeDecider) GiveAnyResource(p *Player) (*Landscape, *Landscape) {
	f.called("GiveAnyResource")
	return firstTransfer(p, p.Opponent())
}

func (f *fakeDecider) TradeWithCaravan(p *Player) (*Landscape, *Landscape, bool) {
	f.called("TradeWithCaravan")
	if f.caravan != nil {
		return f.caravan(p)
	}
	return nil, nil, false
}

func (f *fakeDecider) SelectResourceToTradeFor(p *Player) (Resource, Resource, bool) {
	f.called("SelectResourceToTradeFor")
	if f.tradeFor != nil {
		return f.tradeFor(p)
	}
	return 0, 0, false
}

func (f *fakeDecider) SelectResourceToPurchase(p *Player, r Resource) *Landscape {
	f.called("SelectResourceToPurchase")
	return p.LandsWithRoom(r)[0]
}

func (f *fakeDecider) DecideUseScout(p *Player) bool {
	f.called("DecideUseScout")
	return f.scout
}

func (f *fakeDecider) SelectNewLand(p *Player, pos Pos) int {
	f.called("SelectNewLand")
	if f.selectLand != nil {
		return f.selectLand(p, pos)
	}
	return 0
}

func (f *fakeDecider) DecideBrowsePile(p *Player) bool {
	f.called("DecideBrowsePile")
	return f.browse
}

func (f *fakeDecider) DecideSwapOneCard(p *Player) bool {
	f.called("DecideSwapOneCard")
	return f.swap
}

func (f *fakeDecider) PickAnyResource(p *Player) *Landscape {
	f.called("PickAnyResource")
	for _, l := range p.Lands {
		if p.HasRoom(l) {
			return l
		}
	}
	return nil
}

func (f *fakeDecider) GrabAnyResource(p *Player) (*Landscape, *Landscape) {
	f.called("GrabAnyResource")
	return firstTransfer(p.Opponent(), p)
}

// newTestGame lays out both principalities without landscapes, piles or hands.
type recordingMessenger struct {
	msgs []string
}

func (m *recordingMessenger) Print(player int, msg string) {
	m.msgs = append(m.msgs, fmt.Sprintf("%d: %s", player, msg))
}

func newTestGame(t *testing.T, rolls ...int) (*Game, *fakeDecider, *fakeDecider) {
	t.Helper()
	d1, d2 := newFake(), newFake()
	opts := []Option{WithSeed(7)}
	if len(rolls) > 0 {
		opts = append(opts, WithDice(&FixedDice{Rolls: rolls}))
	}
	g := New(meta.Default(), d1, d2, opts...)
	g.layoutBoard()
	for _, p := range g.Players {
		g.placeStartingInfrastructure(p)
	}
	return g, d1, d2
}

// giveLand places a landscape for p at pos holding held resources.
func giveLand(p *Player, r Resource, dice, held int, pos Pos) *Landscape {
	l := NewLandscape(r, dice)
	p.placeLand(l, pos)
	l.Held = held
	return l
}

// build attaches a card to the slot at pos without paying.
func build(t *testing.T, p *Player, c Buildable, pos Pos) {
	t.Helper()
	slot, ok := p.Game().Board.Get(pos).(*Slot)
	require.True(t, ok, "no slot at %s", pos)
	p.Game().attach(p, c, slot)
	switch v := c.(type) {
	case *Building:
		p.Buildings = append(p.Buildings, v)
	case *Knight:
		p.Knights = append(p.Knights, v)
	case *Fleet:
		p.Fleets = append(p.Fleets, v)
	}
}

func requireSettlementsValid(t *testing.T, g *Game) {
	t.Helper()
	for _, p := range g.Players {
		for _, i := range p.Settlements {
			require.NoError(t, g.CheckSettlement(g.Settlement(i)))
		}
	}
}
