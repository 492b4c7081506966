package game

import (
	"fmt"

	"settlers/utils"
)

// DiceEvent is the outcome of the event die.
type DiceEvent int

const (
	TournamentRoll DiceEvent = iota
	TradeProfitRoll
	AmbushRoll
	GoodHarvestRoll
	CardEventRoll
)

var diceEventNames = [...]string{"tournament", "trade_profit", "ambush", "good_harvest", "card_event"}

func (e DiceEvent) String() string {
	if e < 0 || int(e) >= len(diceEventNames) {
		return fmt.Sprintf("dice_event(%d)", int(e))
	}
	return diceEventNames[e]
}

func ParseDiceEvent(name string) (DiceEvent, bool) {
	for i, n := range diceEventNames {
		if n == name {
			return DiceEvent(i), true
		}
	}
	return 0, false
}

type EventKind int

const (
	Builder EventKind = iota
	CivilWar
	RichYear
	Advance
	NewYear
	Conflict
	Plaque
)

var eventNames = [...]string{"builder", "civil_war", "rich_year", "advance", "new_year", "conflict", "plaque"}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(k))
	}
	return eventNames[k]
}

// RollEvent rolls the event die and maps the face through the configured table.
func (g *Game) RollEvent() DiceEvent {
	face := g.dice.Roll()
	ev, ok := ParseDiceEvent(g.Config.EventDie[face])
	if !ok {
		panic(fmt.Sprintf("event die face %d maps to unknown event %q", face, g.Config.EventDie[face]))
	}
	return ev
}

func (g *Game) ResolveDiceEvent(ev DiceEvent) {
	g.collector.AddDiceEvent(ev.String())
	g.logger.Debug().Stringer("event", ev).Int("player", g.Current).Msg("dice event")
	g.message(g.Current, "event die: %s", ev)

	switch ev {
	case TournamentRoll:
		if w := g.strongest((*Player).TournamentStrength); w != nil {
			w.pickResource()
		}
	case TradeProfitRoll:
		if w := g.strongest((*Player).TradeStrength); w != nil && w.CanGrab() {
			w.grab()
		}
	case AmbushRoll:
		g.ambush()
	case GoodHarvestRoll:
		for _, p := range g.turnOrder() {
			p.pickResource()
		}
	case CardEventRoll:
		g.ResolveCardEvent(g.DrawEvent())
	default:
		panic(fmt.Sprintf("unknown dice event %d", ev))
	}
}

// strongest returns the player with strictly the greater strength, or nil on a tie.
func (g *Game) strongest(strength func(*Player) int) *Player {
	a, b := g.Players[0], g.Players[1]
	switch sa, sb := strength(a), strength(b); {
	case sa > sb:
		return a
	case sb > sa:
		return b
	}
	return nil
}

// ambush designates random resource kinds. A player holding more than the threshold on
// unprotected landscapes loses all of those kinds there.
func (g *Game) ambush() {
	perm := g.rng.Perm(ResourceCount)
	kinds := map[Resource]bool{}
	for _, i := range perm[:min(g.Config.Rules.AmbushKinds, ResourceCount)] {
		kinds[Resource(i)] = true
	}
	for _, p := range g.turnOrder() {
		var exposed []*Landscape
		total := 0
		for _, l := range p.Lands {
			if !g.isNextToBuilding(l, g.Config.Effects.AmbushProtection) {
				exposed = append(exposed, l)
				total += l.Held
			}
		}
		if total <= g.Config.Rules.AmbushThreshold {
			continue
		}
		for _, l := range exposed {
			if kinds[l.Resource] {
				p.Debit(l, l.Held)
			}
		}
		g.message(p.ID, "ambush strikes player %d", p.ID)
	}
}

// DrawEvent returns the next event card, cycling through the deck.
func (g *Game) DrawEvent() *EventCard {
	if len(g.Events) == 0 {
		panic("event deck is empty")
	}
	e := g.Events[g.nextEvent%len(g.Events)]
	g.nextEvent++
	return e
}

func (g *Game) ResolveCardEvent(e *EventCard) {
	g.collector.AddCardEvent(e.Kind.String())
	g.logger.Debug().Stringer("event", e.Kind).Int("player", g.Current).Msg("card event")
	g.message(g.Current, "event card: %s", e.Kind)

	switch e.Kind {
	case Builder:
		g.builder()
	case CivilWar:
		g.civilWar()
	case RichYear:
		g.richYear()
	case Advance:
		g.advance()
	case NewYear:
		g.shuffleEvents()
	case Conflict:
		g.conflict()
	case Plaque:
		g.plaque()
	default:
		panic(fmt.Sprintf("unknown event kind %d", e.Kind))
	}
}

// builder lets each player take one card from a pile and put one back under it.
// The second player may not use the pile the first one chose.
func (g *Game) builder() {
	taken := -1
	for _, p := range g.turnOrder() {
		if !g.hasPileExcept(taken) {
			return
		}
		pile := p.Decider.SelectPile(p, taken)
		g.checkPile(pile, taken)
		p.AddToHand(p.chooseFromPile(pile))
		c := p.throwAwayChoice()
		p.RemoveFromHand(c)
		g.returnToPile(pile, c)
		taken = pile
	}
}

func (g *Game) hasPileExcept(exclude int) bool {
	for i, pile := range g.Piles {
		if i != exclude && len(pile) > 0 {
			return true
		}
	}
	return false
}

// civilWar lets each player, current first, send one unprotected opponent unit back to hand.
func (g *Game) civilWar() {
	for _, actor := range g.turnOrder() {
		victim := g.Opponent(actor)
		if !victim.HasUnitToRemoveInCivilWar() {
			continue
		}
		u := actor.Decider.SelectOpponentsUnitToRemove(actor)
		if u == nil || utils.IndexFunc(victim.RemovableUnits(), func(b Buildable) bool { return b.ID() == u.ID() }) < 0 {
			panic(fmt.Sprintf("%s chose a unit it may not remove", actor))
		}
		victim.TakeBackToHand(u)
		g.message(victim.ID, "civil war: %s returns to hand", u.Name())
	}
}

// richYear adds one resource per horizontally adjacent warehouse.
func (g *Game) richYear() {
	for _, p := range g.turnOrder() {
		for _, l := range p.Lands {
			if n := g.countNextToBuilding(l, g.Config.Effects.Warehouses); n > 0 {
				p.Credit(l, n)
			}
		}
	}
}

func (g *Game) advance() {
	for _, p := range g.turnOrder() {
		n := p.countBuildings(g.Config.Effects.AdvanceBuildings)
		g.message(p.ID, "advance: player %d has %d advanced buildings", p.ID, n)
	}
}

// conflict lets the player with the greater battle strength discard cards from the
// other player's hand.
func (g *Game) conflict() {
	w := g.strongest((*Player).BattleStrength)
	if w == nil {
		return
	}
	l := w.Opponent()
	for i := 0; i < g.Config.Rules.ConflictDiscards && len(l.Hand) > 0; i++ {
		c := w.Decider.SelectOpponentsCardToDiscard(w)
		if !l.InHand(c) {
			panic(fmt.Sprintf("%s chose a card %s does not hold", w, l))
		}
		l.RemoveFromHand(c)
		g.returnToPile(g.discardPile(), c)
		g.message(l.ID, "conflict: %s discarded", c.Name())
	}
}

// plaque takes one resource from every landscape not shielded by a neighbouring building.
func (g *Game) plaque() {
	for _, p := range g.turnOrder() {
		for _, l := range p.Lands {
			if l.Held > 0 && !g.isNextToBuilding(l, g.Config.Effects.PlagueProtection) {
				p.Debit(l, 1)
			}
		}
	}
}

// Yield credits every landscape whose number was rolled. A neighbouring mill for the
// landscape's resource doubles the yield; gold has no mill.
func (g *Game) Yield(n int) {
	g.logger.Debug().Int("yield", n).Msg("yield")
	for _, p := range g.turnOrder() {
		for _, l := range p.Lands {
			if l.Dice != n {
				continue
			}
			gain := 1
			if mill, ok := g.Mill(l.Resource); ok && g.isNextToBuilding(l, []string{mill}) {
				gain = 2
			}
			p.Credit(l, gain)
		}
	}
}
