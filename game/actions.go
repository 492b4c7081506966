package game

import (
	"fmt"
	"strings"

	"settlers/utils"
)

type ActionKind int

const (
	Alchemist ActionKind = iota
	Bishop
	Arson
	Trader
	Caravan
	Witch
	Scout
	Ambush
	BlackKnight
	Spy
)

var actionNames = [...]string{
	"alchemist", "bishop", "arson", "trader", "caravan",
	"witch", "scout", "ambush", "black_knight", "spy",
}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(k))
	}
	return actionNames[k]
}

func ParseActionKind(name string) (ActionKind, bool) {
	for i, n := range actionNames {
		if n == name {
			return ActionKind(i), true
		}
	}
	return 0, false
}

// defenceAgainst returns the card that weakens an attack, if any.
func (g *Game) defenceAgainst(attack ActionKind) (ActionKind, bool) {
	name, ok := g.Config.Effects.Defence[attack.String()]
	if !ok {
		return 0, false
	}
	return ParseActionKind(name)
}

// CanPlayAction reports why an action card cannot be played in the action phase, or nil.
func (p *Player) CanPlayAction(kind ActionKind) error {
	o := p.Opponent()
	switch kind {
	case Alchemist:
		return fmt.Errorf("alchemist is played before the yield roll: %w", ErrNotPlayable)
	case Scout:
		return fmt.Errorf("scout is played when placing new landscapes: %w", ErrNotPlayable)
	case Bishop, Witch:
		return fmt.Errorf("%s only defends: %w", kind, ErrNotPlayable)
	case Arson:
		if len(o.Buildings) == 0 {
			return fmt.Errorf("opponent has no buildings: %w", ErrNothingToTarget)
		}
	case BlackKnight:
		if len(o.Knights) == 0 {
			return fmt.Errorf("opponent has no knights: %w", ErrNothingToTarget)
		}
	case Ambush, Trader:
		if !p.CanGrab() {
			return fmt.Errorf("no resource to take: %w", ErrNothingToTarget)
		}
	case Caravan:
		if len(p.LandsHolding()) == 0 {
			return fmt.Errorf("no resource to trade: %w", ErrNothingToTarget)
		}
	case Spy:
		if !p.SpyCanStealCard() {
			return fmt.Errorf("opponent holds nothing to steal: %w", ErrNothingToTarget)
		}
	default:
		panic(fmt.Sprintf("unknown action kind %d", kind))
	}
	return nil
}

// PlayActionCard resolves an action card from the hand and discards it.
func (p *Player) PlayActionCard(a *ActionCard) error {
	if !p.InHand(a) {
		return ErrNotInHand
	}
	if err := p.CanPlayAction(a.Kind); err != nil {
		return err
	}
	p.RemoveFromHand(a)
	p.game.logger.Debug().Int("player", p.ID).Stringer("action", a.Kind).Msg("action played")

	switch a.Kind {
	case Arson:
		p.playArson()
	case BlackKnight:
		p.playBlackKnight()
	case Ambush:
		p.playAmbush()
	case Trader:
		p.playTrader()
	case Caravan:
		p.playCaravan()
	case Spy:
		p.playSpy()
	case Alchemist, Bishop, Witch, Scout:
		panic(fmt.Sprintf("%s cannot be played as an action", a.Kind))
	default:
		panic(fmt.Sprintf("unknown action kind %d", a.Kind))
	}
	return nil
}

// TossWinner settles a contested card. The player wins on a roll at or below the toss
// threshold; the opponent may spend its defence card to lower that threshold.
func (p *Player) TossWinner(attack ActionKind) *Player {
	g := p.game
	o := p.Opponent()
	threshold := g.Config.Rules.TossThreshold
	if def, ok := g.defenceAgainst(attack); ok && o.actionInHand(def) != nil && o.Decider.DecideUseDefence(o, attack) {
		o.RemoveActionCard(def)
		threshold = g.Config.Rules.DefendedTossThreshold
		g.message(o.ID, "%s defends against %s", def, attack)
	}
	roll := g.dice.Roll()
	winner := o
	if roll <= threshold {
		winner = p
	}
	g.logger.Debug().Stringer("action", attack).Int("roll", roll).Int("threshold", threshold).Int("winner", winner.ID).Msg("toss")
	return winner
}

func (p *Player) playArson() {
	w := p.TossWinner(Arson)
	l := w.Opponent()
	if len(l.Buildings) == 0 {
		p.game.message(w.ID, "arson: nothing to burn")
		return
	}
	b := w.Decider.SelectBuildingToBurn(w)
	if utils.FindIndex(l.Buildings, b) < 0 {
		panic(fmt.Sprintf("%s chose a building %s does not own", w, l))
	}
	l.TakeBackToHand(b)
	p.game.message(w.ID, "arson burns %s of player %d", b.Name(), l.ID)
}

func (p *Player) playBlackKnight() {
	w := p.TossWinner(BlackKnight)
	l := w.Opponent()
	if len(l.Knights) == 0 {
		p.game.message(w.ID, "black knight: nothing to kill")
		return
	}
	k := w.Decider.SelectKnightToKill(w)
	if utils.FindIndex(l.Knights, k) < 0 {
		panic(fmt.Sprintf("%s chose a knight %s does not own", w, l))
	}
	l.TakeBackToHand(k)
	p.game.message(w.ID, "black knight removes %s of player %d", k.Name(), l.ID)
}

func (p *Player) playAmbush() {
	w := p.TossWinner(Ambush)
	for i := 0; i < 2 && w.CanGrab(); i++ {
		w.grab()
	}
}

func (p *Player) playTrader() {
	for i := 0; i < 2 && p.CanGrab(); i++ {
		p.grab()
	}
	if p.CanGive() {
		p.give()
	}
}

func (p *Player) playCaravan() {
	for i := 0; i < 2 && len(p.LandsHolding()) > 0; i++ {
		give, take, ok := p.Decider.TradeWithCaravan(p)
		if !ok {
			return
		}
		if !p.ownsLand(give) || !p.ownsLand(take) || give.Held == 0 || !p.HasRoom(take) || give.Resource == take.Resource {
			panic(fmt.Sprintf("%s made an invalid caravan trade", p))
		}
		p.Debit(give, 1)
		p.Credit(take, 1)
	}
}

// playSpy reveals both hands, then steals one card from the opponent's.
func (p *Player) playSpy() {
	g := p.game
	o := p.Opponent()
	g.message(o.ID, "spy: %s holds %s", p, handNames(p.Hand))
	g.ShowHand(o)
	c := p.Decider.SelectCardToStealBySpy(p)
	g.Choice.Reset()
	if utils.IndexFunc(o.StealableCards(), func(h Playable) bool { return c != nil && h.ID() == c.ID() }) < 0 {
		panic(fmt.Sprintf("%s chose a card the spy cannot steal", p))
	}
	o.RemoveFromHand(c)
	p.AddToHand(c)
	g.message(o.ID, "spy steals %s", c.Name())
}

// CanGrab reports whether p could move a resource from the opponent onto an own landscape.
func (p *Player) CanGrab() bool {
	for _, from := range p.Opponent().LandsHolding() {
		if len(p.LandsWithRoom(from.Resource)) > 0 {
			return true
		}
	}
	return false
}

// CanGive reports whether p could move a resource onto an opponent landscape.
func (p *Player) CanGive() bool {
	return p.Opponent().CanGrab()
}

func (p *Player) grab() {
	o := p.Opponent()
	from, to := p.Decider.GrabAnyResource(p)
	transfer(o, from, p, to)
}

func (p *Player) give() {
	o := p.Opponent()
	from, to := p.Decider.GiveAnyResource(p)
	transfer(p, from, o, to)
}

func transfer(src *Player, from *Landscape, dst *Player, to *Landscape) {
	if !src.ownsLand(from) || !dst.ownsLand(to) || from.Held == 0 || from.Resource != to.Resource || !dst.HasRoom(to) {
		panic(fmt.Sprintf("invalid resource transfer from %s to %s", src, dst))
	}
	src.Debit(from, 1)
	dst.Credit(to, 1)
}

// pickResource lets p add one free resource to a landscape with room.
func (p *Player) pickResource() {
	if utils.IndexFunc(p.Lands, p.HasRoom) < 0 {
		return
	}
	l := p.Decider.PickAnyResource(p)
	if !p.ownsLand(l) || !p.HasRoom(l) {
		panic(fmt.Sprintf("%s picked a landscape without room", p))
	}
	p.Credit(l, 1)
}

func handNames(hand []Playable) string {
	if len(hand) == 0 {
		return "nothing"
	}
	names := make([]string, len(hand))
	for i, c := range hand {
		names[i] = c.Name()
	}
	return strings.Join(names, ", ")
}
