package player

import (
	"maps"
	"slices"

	"settlers/game"
)

type trade struct {
	give, get game.Resource
}

// Computer is a greedy strategy: it builds the most valuable thing it can afford,
// plays attacking cards when they have a target and trades only from surplus.
type Computer struct {
	planned *trade
}

func NewComputer() *Computer {
	return &Computer{}
}

var _ game.Decider = (*Computer)(nil)

// startingTier ranks cards for the opening hand; lower is better.
func startingTier(g *game.Game, c game.Playable, firstWarehouse bool) int {
	name := c.Name()
	switch {
	case name == "warehouse" && firstWarehouse:
		return 0
	case isMill(g, name):
		return 1
	case c.Type() == game.KnightType && c.(*game.Knight).Cost.Total() <= 1:
		return 2
	case name == "warehouse":
		return 3
	case name == "cloister":
		return 4
	case name == game.Scout.String():
		return 5
	case c.Type() == game.FleetType:
		return 6
	}
	return 7
}

func isMill(g *game.Game, name string) bool {
	return slices.Contains(slices.Collect(maps.Values(g.Config.Effects.Mills)), name)
}

func (c *Computer) PickStartingCards(p *game.Player, pile, n int) []int {
	g := p.Game()
	cards := g.Piles[pile]
	tiers := make([]int, len(cards))
	firstWarehouse := -1
	for i, card := range cards {
		if card.Name() == "warehouse" && firstWarehouse < 0 {
			firstWarehouse = i
		}
		tiers[i] = startingTier(g, card, i == firstWarehouse)
	}
	var out []int
	for tier := 0; tier <= 7 && len(out) < n; tier++ {
		for i := range cards {
			if tiers[i] == tier && len(out) < n {
				out = append(out, i)
			}
		}
	}
	return out
}

func (c *Computer) SwapInitialLand(p *game.Player) (game.Pos, game.Pos, bool) {
	return game.Pos{}, game.Pos{}, false
}

func (c *Computer) ThrowDice(p *game.Player) {}

// SelectYieldNumber uses the alchemist when some number pays at least two resources.
func (c *Computer) SelectYieldNumber(p *game.Player) (int, bool) {
	best, gain := 0, 1
	for n := 1; n <= 6; n++ {
		g := 0
		for _, l := range p.Lands {
			if l.Dice == n && p.HasRoom(l) {
				g++
			}
		}
		if g > gain {
			best, gain = n, g
		}
	}
	return best, best > 0
}

// ChooseAction picks the first affordable move in priority order: town, path when no
// village site is open, village, a card from hand, an attacking card, then a bank
// trade that brings one of those within reach.
func (c *Computer) ChooseAction(p *game.Player) game.Move {
	c.planned = nil
	g := p.Game()
	targets := c.targets(p)
	for _, t := range targets {
		if p.CanCover(t.cost) {
			return t.move
		}
	}
	for _, card := range p.Hand {
		a, ok := card.(*game.ActionCard)
		if !ok {
			continue
		}
		switch a.Kind {
		case game.Arson, game.BlackKnight, game.Spy, game.Ambush, game.Trader, game.Caravan:
			if p.CanPlayAction(a.Kind) == nil {
				return game.Move{Type: game.PlayAction, Card: a}
			}
		}
	}
	for _, t := range targets {
		if tr, ok := planTrade(p, t.cost); ok {
			c.planned = &tr
			return game.Move{Type: game.BankTrade}
		}
	}
	g.Logger().Debug().Int("player", p.ID).Msg("computer ends turn")
	return game.Move{Type: game.EndTurn}
}

type target struct {
	move game.Move
	cost game.Cost
}

// targets lists the builds that have a free site and supply, most valuable first.
func (c *Computer) targets(p *game.Player) []target {
	g := p.Game()
	var out []target
	has := func(kind game.SiteKind, card game.Buildable) bool {
		return len(g.Sites(p, game.SiteRequest{Kind: kind, Card: card})) > 0
	}
	if p.Supply.Towns > 0 && has(game.TownSite, nil) {
		out = append(out, target{game.Move{Type: game.BuildTown}, game.TownCost})
	}
	villageSite := has(game.VillageSite, nil)
	if p.Supply.Villages > 0 && villageSite {
		out = append(out, target{game.Move{Type: game.BuildVillage}, game.VillageCost})
	}
	if p.Supply.Paths > 0 && !villageSite && has(game.PathSite, nil) {
		out = append(out, target{game.Move{Type: game.BuildPath}, game.PathCost})
	}
	for _, card := range p.Hand {
		if b, ok := card.(game.Buildable); ok && has(game.UnitSite, b) {
			out = append(out, target{game.Move{Type: game.BuildFromHand, Card: b}, b.AsUnit().Cost})
		}
	}
	return out
}

// planTrade finds one bank trade that gives from surplus and fills a shortfall of cost.
func planTrade(p *game.Player, cost game.Cost) (trade, bool) {
	held := p.Resources()
	for _, get := range game.Resources {
		if held[get] >= cost[get] || len(p.LandsWithRoom(get)) == 0 {
			continue
		}
		for _, give := range game.Resources {
			if give != get && held[give]-cost[give] >= p.TradeRate(give) {
				return trade{give: give, get: get}, true
			}
		}
	}
	return trade{}, false
}

// SelectPile picks the largest pile.
func (c *Computer) SelectPile(p *game.Player, exclude int) int {
	best := -1
	for i, pile := range p.Game().Piles {
		if i == exclude || len(pile) == 0 {
			continue
		}
		if best < 0 || len(pile) > len(p.Game().Piles[best]) {
			best = i
		}
	}
	return best
}

func (c *Computer) SelectCardFromChoice(p *game.Player, pile int) int {
	g := p.Game()
	best, bestTier := 0, 8
	for i, card := range g.Piles[pile] {
		if t := startingTier(g, card, !hasBuilt(p, "warehouse")); t < bestTier {
			best, bestTier = i, t
		}
	}
	return best
}

func hasBuilt(p *game.Player, name string) bool {
	return p.HasBuilding(name) || p.CardInHand(name)
}

// SelectNewCardPosition prefers slots next to the landscapes a building boosts.
func (c *Computer) SelectNewCardPosition(p *game.Player, req game.SiteRequest) (game.Pos, bool) {
	g := p.Game()
	sites := g.Sites(p, req)
	if len(sites) == 0 {
		return game.Pos{}, false
	}
	if req.Kind != game.UnitSite {
		return sites[0], true
	}
	best, bestScore := sites[0], -1
	for _, pos := range sites {
		if s := siteScore(g, p, req.Card.Name(), pos); s > bestScore {
			best, bestScore = pos, s
		}
	}
	return best, true
}

func siteScore(g *game.Game, p *game.Player, name string, pos game.Pos) int {
	score := 0
	for _, n := range []game.Pos{pos.Left(1), pos.Right(1)} {
		if !g.Board.InBounds(n) {
			continue
		}
		l, ok := g.Board.Get(n).(*game.Landscape)
		if !ok || l.Owner != p.ID {
			continue
		}
		if mill, ok := g.Mill(l.Resource); name == "warehouse" || (ok && mill == name) {
			score++
		}
	}
	return score
}

// SelectCardToPay takes from the fullest landscape the bill accepts.
func (c *Computer) SelectCardToPay(p *game.Player, bill game.Bill) *game.Landscape {
	var best *game.Landscape
	for _, l := range p.LandsHolding() {
		if bill.Accepts(l.Resource) && (best == nil || l.Held > best.Held) {
			best = l
		}
	}
	return best
}

func (c *Computer) SelectCardToThrowAway(p *game.Player) game.Playable {
	return p.Hand[0]
}

func (c *Computer) SelectOpponentsUnitToRemove(p *game.Player) game.Buildable {
	return p.Opponent().RemovableUnits()[0]
}

func (c *Computer) SelectCardToStealBySpy(p *game.Player) game.Playable {
	return p.Opponent().StealableCards()[0]
}

func (c *Computer) SelectOpponentsCardToDiscard(p *game.Player) game.Playable {
	return p.Opponent().Hand[0]
}

func (c *Computer) DecideUseDefence(p *game.Player, attack game.ActionKind) bool {
	return true
}

func (c *Computer) SelectBuildingToBurn(p *game.Player) *game.Building {
	return p.Opponent().Buildings[0]
}

func (c *Computer) SelectKnightToKill(p *game.Player) *game.Knight {
	return p.Opponent().Knights[0]
}

// transferPair finds the fullest source landscape with a matching destination that has room.
func transferPair(src, dst *game.Player) (*game.Landscape, *game.Landscape) {
	var from, to *game.Landscape
	for _, l := range src.LandsHolding() {
		rooms := dst.LandsWithRoom(l.Resource)
		if len(rooms) == 0 {
			continue
		}
		if from == nil || l.Held > from.Held {
			from, to = l, rooms[0]
		}
	}
	return from, to
}

func (c *Computer) GiveAnyResource(p *game.Player) (*game.Landscape, *game.Landscape) {
	return transferPair(p, p.Opponent())
}

func (c *Computer) GrabAnyResource(p *game.Player) (*game.Landscape, *game.Landscape) {
	return transferPair(p.Opponent(), p)
}

// TradeWithCaravan moves a unit from the fullest landscape to the emptiest one of another resource.
func (c *Computer) TradeWithCaravan(p *game.Player) (*game.Landscape, *game.Landscape, bool) {
	var give, take *game.Landscape
	for _, l := range p.LandsHolding() {
		if give == nil || l.Held > give.Held {
			give = l
		}
	}
	if give == nil {
		return nil, nil, false
	}
	for _, l := range p.Lands {
		if l.Resource != give.Resource && p.HasRoom(l) && (take == nil || l.Held < take.Held) {
			take = l
		}
	}
	if take == nil || take.Held+1 >= give.Held {
		return nil, nil, false
	}
	return give, take, true
}

func (c *Computer) SelectResourceToTradeFor(p *game.Player) (game.Resource, game.Resource, bool) {
	if c.planned == nil {
		return 0, 0, false
	}
	t := *c.planned
	c.planned = nil
	return t.give, t.get, true
}

func (c *Computer) SelectResourceToPurchase(p *game.Player, r game.Resource) *game.Landscape {
	return emptiest(p.LandsWithRoom(r))
}

func emptiest(lands []*game.Landscape) *game.Landscape {
	var best *game.Landscape
	for _, l := range lands {
		if best == nil || l.Held < best.Held {
			best = l
		}
	}
	return best
}

func (c *Computer) DecideUseScout(p *game.Player) bool {
	return true
}

// SelectNewLand takes the pool landscape of the resource the player owns fewest of.
func (c *Computer) SelectNewLand(p *game.Player, pos game.Pos) int {
	owned := map[game.Resource]int{}
	for _, l := range p.Lands {
		owned[l.Resource]++
	}
	best := 0
	for i, l := range p.Game().Pool {
		if owned[l.Resource] < owned[p.Game().Pool[best].Resource] {
			best = i
		}
	}
	return best
}

func (c *Computer) DecideBrowsePile(p *game.Player) bool {
	return false
}

func (c *Computer) DecideSwapOneCard(p *game.Player) bool {
	return false
}

// PickAnyResource adds to the resource the player holds least of.
func (c *Computer) PickAnyResource(p *game.Player) *game.Landscape {
	held := p.Resources()
	var best *game.Landscape
	for _, l := range p.Lands {
		if !p.HasRoom(l) {
			continue
		}
		if best == nil || held[l.Resource] < held[best.Resource] {
			best = l
		}
	}
	return best
}
