package game

import (
	"errors"
	"fmt"
)

// Soft refusals. A refused operation leaves the game untouched.
var (
	ErrCannotAfford    = errors.New("not enough resources")
	ErrNoSupply        = errors.New("none left in supply")
	ErrNoSite          = errors.New("no place to build it")
	ErrCancelled       = errors.New("cancelled")
	ErrNotInHand       = errors.New("card is not in hand")
	ErrNotPlayable     = errors.New("card cannot be played now")
	ErrNothingToTarget = errors.New("nothing to target")
	ErrCannotTrade     = errors.New("cannot trade")
)

// maxRefusedMoves ends an action phase whose decider keeps choosing refused moves.
const maxRefusedMoves = 50

// DoActions runs the action phase until the decider ends the turn.
func (p *Player) DoActions() {
	refused := 0
	for {
		m := p.Decider.ChooseAction(p)
		if m.Type == EndTurn {
			return
		}
		if err := p.PerformMove(m); err != nil {
			p.game.collector.AddRefusal()
			p.game.message(p.ID, "%s: %v", m, err)
			refused++
			if refused >= maxRefusedMoves {
				p.game.logger.Warn().Int("player", p.ID).Msg("too many refused moves, ending turn")
				return
			}
		}
	}
}

func (p *Player) PerformMove(m Move) error {
	switch m.Type {
	case EndTurn:
		return nil
	case BuildFromHand:
		c, ok := m.Card.(Buildable)
		if !ok {
			return fmt.Errorf("%s is not buildable: %w", cardName(m.Card), ErrNotPlayable)
		}
		return p.BuildFromHand(c)
	case BuildPath:
		return p.BuildPath()
	case BuildVillage:
		return p.BuildVillage()
	case BuildTown:
		return p.BuildTown()
	case BankTrade:
		return p.Trade()
	case PlayAction:
		a, ok := m.Card.(*ActionCard)
		if !ok {
			return fmt.Errorf("%s is not an action card: %w", cardName(m.Card), ErrNotPlayable)
		}
		return p.PlayActionCard(a)
	}
	panic(fmt.Sprintf("unknown move type %d", m.Type))
}

func cardName(c Card) string {
	if c == nil {
		return "nothing"
	}
	return c.Name()
}

// selectSite checks that a site exists and asks the decider for one.
func (p *Player) selectSite(req SiteRequest) (Pos, error) {
	g := p.game
	if len(g.Sites(p, req)) == 0 {
		return Pos{}, ErrNoSite
	}
	pos, ok := p.Decider.SelectNewCardPosition(p, req)
	if !ok {
		return Pos{}, ErrCancelled
	}
	if !g.IsSite(p, req, pos) {
		panic(fmt.Sprintf("%s chose invalid %s site %s", p, req.Kind, pos))
	}
	return pos, nil
}

func (p *Player) built(name string, pos Pos) {
	p.game.collector.AddBuild(p.ID)
	p.game.logger.Debug().Int("player", p.ID).Str("card", name).Stringer("pos", pos).Msg("built")
}

func (p *Player) BuildPath() error {
	if p.Supply.Paths == 0 {
		return ErrNoSupply
	}
	if !p.CanCover(PathCost) {
		return ErrCannotAfford
	}
	pos, err := p.selectSite(SiteRequest{Kind: PathSite})
	if err != nil {
		return err
	}
	p.Pay(Bill{Cost: PathCost})
	p.game.placePath(p, NewPath(), pos)
	p.Supply.Paths--
	p.built("path", pos)
	return nil
}

func (p *Player) BuildVillage() error {
	if p.Supply.Villages == 0 {
		return ErrNoSupply
	}
	if !p.CanCover(VillageCost) {
		return ErrCannotAfford
	}
	pos, err := p.selectSite(SiteRequest{Kind: VillageSite})
	if err != nil {
		return err
	}
	p.Pay(Bill{Cost: VillageCost})
	p.game.placeSettlement(p, pos)
	p.Supply.Villages--
	p.PlaceNewLand(pos)
	p.built("village", pos)
	return nil
}

// BuildTown upgrades a village in place; the village card returns to supply.
func (p *Player) BuildTown() error {
	if p.Supply.Towns == 0 {
		return ErrNoSupply
	}
	if !p.CanCover(TownCost) {
		return ErrCannotAfford
	}
	pos, err := p.selectSite(SiteRequest{Kind: TownSite})
	if err != nil {
		return err
	}
	p.Pay(Bill{Cost: TownCost})
	p.game.upgradeToTown(p.game.Board.Get(pos).(*Settlement))
	p.Supply.Towns--
	p.Supply.Villages++
	p.built("town", pos)
	return nil
}

// BuildFromHand plays a knight, fleet or building onto a free slot.
func (p *Player) BuildFromHand(c Buildable) error {
	if !p.InHand(c) {
		return ErrNotInHand
	}
	u := c.AsUnit()
	if !p.CanCover(u.Cost) {
		return ErrCannotAfford
	}
	pos, err := p.selectSite(SiteRequest{Kind: UnitSite, Card: c})
	if err != nil {
		return err
	}
	p.Pay(Bill{Cost: u.Cost})
	p.RemoveFromHand(c)
	p.game.attach(p, c, p.game.Board.Get(pos).(*Slot))
	switch v := c.(type) {
	case *Building:
		p.Buildings = append(p.Buildings, v)
	case *Knight:
		p.Knights = append(p.Knights, v)
	case *Fleet:
		p.Fleets = append(p.Fleets, v)
	}
	p.built(c.Name(), pos)
	return nil
}

// Trade converts TradeRate(give) units of one resource into one unit of another.
func (p *Player) Trade() error {
	give, get, ok := p.Decider.SelectResourceToTradeFor(p)
	if !ok {
		return ErrCancelled
	}
	if give == get {
		return fmt.Errorf("%s for %s: %w", give, get, ErrCannotTrade)
	}
	rate := p.TradeRate(give)
	if p.Resources()[give] < rate {
		return ErrCannotAfford
	}
	if len(p.LandsWithRoom(get)) == 0 {
		return fmt.Errorf("no room for %s: %w", get, ErrCannotTrade)
	}
	p.Pay(Bill{Cost: Cost{}.Add(give, rate)})
	l := p.Decider.SelectResourceToPurchase(p, get)
	if !p.ownsLand(l) || l.Resource != get || !p.HasRoom(l) {
		panic(fmt.Sprintf("%s chose an invalid landscape for %s", p, get))
	}
	p.Credit(l, 1)
	p.game.logger.Debug().Int("player", p.ID).Stringer("give", give).Stringer("get", get).Int("rate", rate).Msg("traded")
	return nil
}

// RefillHand draws up to the hand limit, browsing a pile when the player pays the fee,
// then optionally swaps one card.
func (p *Player) RefillHand() {
	g := p.game
	for len(p.Hand) < p.HandLimit() && g.HasCards() {
		if p.CanCoverTotal(p.BrowseFee()) && p.Decider.DecideBrowsePile(p) {
			pile := p.Decider.SelectPile(p, -1)
			g.checkPile(pile, -1)
			p.Pay(Bill{Any: p.BrowseFee()})
			p.AddToHand(p.chooseFromPile(pile))
			continue
		}
		pile := p.Decider.SelectPile(p, -1)
		g.checkPile(pile, -1)
		p.AddToHand(g.takeFromPile(pile, 0))
	}

	if len(p.Hand) > 0 && g.HasCards() && p.Decider.DecideSwapOneCard(p) {
		c := p.throwAwayChoice()
		pile := p.Decider.SelectPile(p, -1)
		g.checkPile(pile, -1)
		p.RemoveFromHand(c)
		drawn := g.takeFromPile(pile, 0)
		g.returnToPile(pile, c)
		p.AddToHand(drawn)
	}
}

// chooseFromPile shows a pile on the choice board and takes the card the decider picks.
func (p *Player) chooseFromPile(pile int) Playable {
	g := p.game
	g.ShowPile(pile)
	i := p.Decider.SelectCardFromChoice(p, pile)
	if i < 0 || i >= len(g.Piles[pile]) {
		panic(fmt.Sprintf("%s chose invalid card %d from pile %d", p, i, pile))
	}
	c := g.takeFromPile(pile, i)
	g.Choice.Reset()
	return c
}

func (p *Player) throwAwayChoice() Playable {
	c := p.Decider.SelectCardToThrowAway(p)
	if !p.InHand(c) {
		panic(fmt.Sprintf("%s threw away a card it does not hold", p))
	}
	return c
}

// SettleHandSize throws away cards until the hand is within its limit.
func (p *Player) SettleHandSize() {
	for len(p.Hand) > p.HandLimit() {
		c := p.throwAwayChoice()
		p.RemoveFromHand(c)
		p.game.returnToPile(p.game.discardPile(), c)
	}
}

// discardPile is the shortest pile, which takes thrown-away cards.
func (g *Game) discardPile() int {
	best := 0
	for i, pile := range g.Piles {
		if len(pile) < len(g.Piles[best]) {
			best = i
		}
	}
	return best
}
