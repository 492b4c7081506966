package game

import (
	"fmt"

	"settlers/utils"
)

const handBoardWidth = 16

type Supply struct {
	Paths    int
	Villages int
	Towns    int
}

// Player is one side of the match: its hand, its principality and its decider.
type Player struct {
	ID          int
	Decider     Decider
	Mid         Pos
	Hand        []Playable
	HandBoard   *Board
	Lands       []*Landscape
	Paths       []*Path
	Settlements []int
	Buildings   []*Building
	Knights     []*Knight
	Fleets      []*Fleet
	Supply      Supply

	initialLand []Pos
	game        *Game
}

func newPlayer(g *Game, id int, d Decider) *Player {
	cfg := g.Config
	row, ok := cfg.Board.Rows[id]
	if !ok {
		panic(fmt.Sprintf("no settlement row configured for player %d", id))
	}
	mid := Pos{cfg.Board.Middle, row}
	return &Player{
		ID:        id,
		Decider:   d,
		Mid:       mid,
		HandBoard: NewBoard(HandBoard(id), handBoardWidth, 1),
		Supply: Supply{
			Paths:    cfg.Supply.Paths,
			Villages: cfg.Supply.Villages,
			Towns:    cfg.Supply.Towns,
		},
		// filled from the end
		initialLand: []Pos{
			mid.Up(1), mid.Down(1),
			mid.Right(2).Up(1), mid.Right(2).Down(1),
			mid.Left(2).Up(1), mid.Left(2).Down(1),
		},
		game: g,
	}
}

func (p *Player) Game() *Game {
	return p.game
}

func (p *Player) Opponent() *Player {
	return p.game.Opponent(p)
}

func (p *Player) String() string {
	return fmt.Sprintf("player %d", p.ID)
}

// Resources sums the resources held on every owned landscape.
func (p *Player) Resources() Cost {
	var c Cost
	for _, l := range p.Lands {
		c = c.Add(l.Resource, l.Held)
	}
	return c
}

func (p *Player) CanCover(c Cost) bool {
	return p.Resources().Covers(c)
}

// CanCoverTotal reports whether the player holds at least n resources of any kind.
func (p *Player) CanCoverTotal(n int) bool {
	return p.Resources().Total() >= n
}

func (p *Player) canPay(bill Bill) bool {
	if bill.Any > 0 {
		return p.CanCoverTotal(bill.Any)
	}
	return p.CanCover(bill.Cost)
}

// Credit adds up to n resources to a landscape without exceeding its capacity and
// returns how many were added.
func (p *Player) Credit(l *Landscape, n int) int {
	room := p.game.Config.Rules.MaxLandResources - l.Held
	n = max(0, min(n, room))
	l.Held += n
	if l.OnBoard && n > 0 {
		p.game.Board.Refresh(l.Pos)
	}
	return n
}

func (p *Player) Debit(l *Landscape, n int) {
	if n < 0 || l.Held < n {
		panic(fmt.Sprintf("cannot take %d from %s", n, l))
	}
	l.Held -= n
	if l.OnBoard && n > 0 {
		p.game.Board.Refresh(l.Pos)
	}
}

func (p *Player) HasRoom(l *Landscape) bool {
	return l.Held < p.game.Config.Rules.MaxLandResources
}

// LandsWithRoom lists owned landscapes of r that can take another resource.
func (p *Player) LandsWithRoom(r Resource) []*Landscape {
	var out []*Landscape
	for _, l := range p.Lands {
		if l.Resource == r && p.HasRoom(l) {
			out = append(out, l)
		}
	}
	return out
}

// LandsHolding lists owned landscapes holding at least one resource.
func (p *Player) LandsHolding() []*Landscape {
	var out []*Landscape
	for _, l := range p.Lands {
		if l.Held > 0 {
			out = append(out, l)
		}
	}
	return out
}

func (p *Player) ownsLand(l *Landscape) bool {
	return l != nil && l.OnBoard && l.Owner == p.ID && utils.FindIndex(p.Lands, l) >= 0
}

// Pay asks the decider for one landscape per outstanding resource until the bill is settled.
func (p *Player) Pay(bill Bill) {
	if !p.canPay(bill) {
		panic(fmt.Sprintf("%s cannot pay %s", p, describeBill(bill)))
	}
	for bill.Due() > 0 {
		l := p.Decider.SelectCardToPay(p, bill)
		if !p.ownsLand(l) || l.Held == 0 || !bill.Accepts(l.Resource) {
			panic(fmt.Sprintf("%s paid %s with an unusable landscape", p, describeBill(bill)))
		}
		p.Debit(l, 1)
		bill = bill.settle(l.Resource)
	}
}

func describeBill(b Bill) string {
	if b.Any > 0 {
		return fmt.Sprintf("%d resources", b.Any)
	}
	return b.Cost.String()
}

func (p *Player) AddToHand(c Playable) {
	p.Hand = append(p.Hand, c)
	p.syncHand()
}

func (p *Player) RemoveFromHand(c Playable) bool {
	i := utils.IndexFunc(p.Hand, func(h Playable) bool { return h.ID() == c.ID() })
	if i < 0 {
		return false
	}
	p.Hand = utils.RemoveAt(p.Hand, i)
	p.syncHand()
	return true
}

func (p *Player) InHand(c Playable) bool {
	return c != nil && utils.IndexFunc(p.Hand, func(h Playable) bool { return h.ID() == c.ID() }) >= 0
}

func (p *Player) CardInHand(name string) bool {
	return utils.IndexFunc(p.Hand, func(h Playable) bool { return h.Name() == name }) >= 0
}

func (p *Player) actionInHand(kind ActionKind) *ActionCard {
	for _, c := range p.Hand {
		if a, ok := c.(*ActionCard); ok && a.Kind == kind {
			return a
		}
	}
	return nil
}

// RemoveActionCard discards an action card of the given kind from the hand.
func (p *Player) RemoveActionCard(kind ActionKind) *ActionCard {
	a := p.actionInHand(kind)
	if a == nil {
		panic(fmt.Sprintf("%s holds no %s", p, kind))
	}
	p.RemoveFromHand(a)
	return a
}

func (p *Player) syncHand() {
	cards := make([]Card, len(p.Hand))
	for i, c := range p.Hand {
		cards[i] = c
	}
	p.HandBoard.Fill(cards)
}

// StealableCards lists the knights, fleets and action cards in the hand.
func (p *Player) StealableCards() []Playable {
	var out []Playable
	for _, c := range p.Hand {
		switch c.Type() {
		case KnightType, FleetType, ActionType:
			out = append(out, c)
		}
	}
	return out
}

// SpyCanStealCard reports whether the opponent holds anything a spy may take.
func (p *Player) SpyCanStealCard() bool {
	return len(p.Opponent().StealableCards()) > 0
}

// RemovableUnits lists the knights and fleets of p not protected against civil war.
func (p *Player) RemovableUnits() []Buildable {
	names := p.game.Config.Effects.CivilWarProtection
	var out []Buildable
	for _, k := range p.Knights {
		if !p.game.isProtected(k, names) {
			out = append(out, k)
		}
	}
	for _, f := range p.Fleets {
		if !p.game.isProtected(f, names) {
			out = append(out, f)
		}
	}
	return out
}

func (p *Player) HasUnitToRemoveInCivilWar() bool {
	return len(p.RemovableUnits()) > 0
}

// TakeBackToHand lifts a built card off its settlement, leaving an empty slot, and
// returns it to the hand.
func (p *Player) TakeBackToHand(c Buildable) {
	u := c.AsUnit()
	if !u.OnBoard || u.Owner != p.ID {
		panic(fmt.Sprintf("%s does not own a built %s", p, c.Name()))
	}
	p.game.detach(c)
	switch v := c.(type) {
	case *Building:
		p.Buildings, _ = utils.Remove(p.Buildings, v)
	case *Knight:
		p.Knights, _ = utils.Remove(p.Knights, v)
	case *Fleet:
		p.Fleets, _ = utils.Remove(p.Fleets, v)
	}
	p.AddToHand(c)
}

func (p *Player) placeLand(l *Landscape, pos Pos) {
	l.place(pos, p.ID)
	p.game.Board.Set(pos, l)
	p.Lands = append(p.Lands, l)
}

// SetupInitialLand puts one of the player's starting landscapes on the next free
// starting square.
func (p *Player) SetupInitialLand(l *Landscape) {
	if len(p.initialLand) == 0 {
		panic(fmt.Sprintf("%s has no starting land squares left", p))
	}
	pos := p.initialLand[len(p.initialLand)-1]
	p.initialLand = p.initialLand[:len(p.initialLand)-1]
	p.placeLand(l, pos)
}

func (p *Player) arrangeInitialLand() {
	for {
		a, b, ok := p.Decider.SwapInitialLand(p)
		if !ok {
			return
		}
		la, _ := p.game.ownedAt(p, a, LandscapeType).(*Landscape)
		lb, _ := p.game.ownedAt(p, b, LandscapeType).(*Landscape)
		if la == nil || lb == nil || a == b {
			panic(fmt.Sprintf("%s cannot swap landscapes at %s and %s", p, a, b))
		}
		la.Pos, lb.Pos = b, a
		p.game.Board.Set(a, lb)
		p.game.Board.Set(b, la)
	}
}

// landColumn returns the column of the landscapes belonging to a village at pos,
// on the side facing away from the middle.
func (p *Player) landColumn(pos Pos) int {
	if pos.X > p.Mid.X {
		return pos.X + 1
	}
	return pos.X - 1
}

// PlaceNewLand draws two landscapes from the pool for a new village at villagePos,
// above and below its outer column. A held scout lets the player choose them.
func (p *Player) PlaceNewLand(villagePos Pos) {
	g := p.game
	x := p.landColumn(villagePos)
	targets := []Pos{{x, villagePos.Y - 1}, {x, villagePos.Y + 1}}

	scout := false
	if p.actionInHand(Scout) != nil && len(g.Pool) > 0 && p.Decider.DecideUseScout(p) {
		p.RemoveActionCard(Scout)
		scout = true
	}

	for _, pos := range targets {
		if len(g.Pool) == 0 {
			g.message(p.ID, "no landscapes left for %s", pos)
			return
		}
		var l *Landscape
		if scout {
			i := p.Decider.SelectNewLand(p, pos)
			if i < 0 || i >= len(g.Pool) {
				panic(fmt.Sprintf("%s selected invalid landscape %d", p, i))
			}
			l = g.Pool[i]
			g.Pool = utils.RemoveAt(g.Pool, i)
		} else {
			l = g.Pool[len(g.Pool)-1]
			g.Pool = g.Pool[:len(g.Pool)-1]
		}
		p.placeLand(l, pos)
	}
}
