package player

import (
	"fmt"

	"settlers/game"
)

// Human answers decisions with clicks. Clicks that match no offered choice are ignored.
type Human struct {
	in Input
}

func NewHuman(in Input) *Human {
	return &Human{in: in}
}

var _ game.Decider = (*Human)(nil)

// wait reads clicks until one matches a filter and returns that filter's index.
func (h *Human) wait(p *game.Player, prompt string, filters ...ClickFilter) (int, game.Card, Click) {
	g := p.Game()
	for {
		c := h.in.NextClick(p, prompt)
		for i, f := range filters {
			if card, ok := f.Accepts(g, c); ok {
				return i, card, c
			}
		}
		g.Logger().Debug().Int("player", p.ID).Int("board", int(c.Board)).Stringer("pos", c.Pos).Msg("click ignored")
	}
}

func (h *Human) confirm(p *game.Player, prompt string) bool {
	i, _, _ := h.wait(p, prompt, button(game.OKButton), button(game.CancelButton))
	return i == 0
}

func ownLand(p *game.Player, check func(l *game.Landscape) bool) ClickFilter {
	return ClickFilter{
		Board: game.MainBoard,
		Types: []game.CardType{game.LandscapeType},
		Owner: p.ID,
		Check: func(c game.Card, _ game.Pos) bool { return check(c.(*game.Landscape)) },
	}
}

func anyLand(*game.Landscape) bool { return true }

func choiceCard(check func(i int) bool) ClickFilter {
	return ClickFilter{
		Board: game.ChoiceBoard,
		Check: func(c game.Card, pos game.Pos) bool { return c != nil && check(pos.X) },
	}
}

func (h *Human) PickStartingCards(p *game.Player, pile, n int) []int {
	g := p.Game()
	g.ShowPile(pile)
	defer g.Choice.Reset()
	picked := map[int]bool{}
	var out []int
	for len(out) < n {
		prompt := fmt.Sprintf("pick starting card %d of %d", len(out)+1, n)
		_, _, c := h.wait(p, prompt, choiceCard(func(i int) bool {
			return i < len(g.Piles[pile]) && !picked[i]
		}))
		picked[c.Pos.X] = true
		out = append(out, c.Pos.X)
	}
	return out
}

func (h *Human) SwapInitialLand(p *game.Player) (game.Pos, game.Pos, bool) {
	i, _, first := h.wait(p, "select a landscape to swap, or ok to finish", ownLand(p, anyLand), button(game.OKButton))
	if i == 1 {
		return game.Pos{}, game.Pos{}, false
	}
	other := ownLand(p, func(l *game.Landscape) bool { return l.Pos != first.Pos })
	i, _, second := h.wait(p, "select the landscape to swap with", other, button(game.CancelButton))
	if i == 1 {
		return game.Pos{}, game.Pos{}, false
	}
	return first.Pos, second.Pos, true
}

func (h *Human) ThrowDice(p *game.Player) {
	h.wait(p, "press ok to throw the dice", button(game.OKButton))
}

// SelectYieldNumber takes the number of a clicked own landscape.
func (h *Human) SelectYieldNumber(p *game.Player) (int, bool) {
	i, card, _ := h.wait(p, "alchemist: select a landscape to yield, or cancel to roll", ownLand(p, anyLand), button(game.CancelButton))
	if i == 1 {
		return 0, false
	}
	return card.(*game.Landscape).Dice, true
}

func (h *Human) ChooseAction(p *game.Player) game.Move {
	marker := func(name string) ClickFilter {
		return ClickFilter{Board: game.MainBoard, Types: []game.CardType{game.MarkerType}, Names: []string{name}}
	}
	filters := []ClickFilter{
		button(game.EndTurnButton),
		button(game.TradeButton),
		marker(game.PathMarker),
		marker(game.VillageMarker),
		marker(game.TownMarker),
		{Board: p.HandBoard.ID, Check: func(c game.Card, _ game.Pos) bool { return c != nil }},
	}
	i, card, _ := h.wait(p, "choose an action", filters...)
	switch i {
	case 1:
		return game.Move{Type: game.BankTrade}
	case 2:
		return game.Move{Type: game.BuildPath}
	case 3:
		return game.Move{Type: game.BuildVillage}
	case 4:
		return game.Move{Type: game.BuildTown}
	case 5:
		c := card.(game.Playable)
		if c.Type() == game.ActionType {
			return game.Move{Type: game.PlayAction, Card: c}
		}
		return game.Move{Type: game.BuildFromHand, Card: c}
	}
	return game.Move{Type: game.EndTurn}
}

func (h *Human) SelectPile(p *game.Player, exclude int) int {
	g := p.Game()
	_, _, c := h.wait(p, "select a pile", ClickFilter{
		Board: game.MainBoard,
		Check: func(_ game.Card, pos game.Pos) bool {
			i := g.PileAt(pos)
			return i >= 0 && i != exclude && len(g.Piles[i]) > 0
		},
	})
	return g.PileAt(c.Pos)
}

func (h *Human) SelectCardFromChoice(p *game.Player, pile int) int {
	g := p.Game()
	_, _, c := h.wait(p, "select a card", choiceCard(func(i int) bool { return i < len(g.Piles[pile]) }))
	return c.Pos.X
}

func (h *Human) SelectNewCardPosition(p *game.Player, req game.SiteRequest) (game.Pos, bool) {
	g := p.Game()
	site := ClickFilter{
		Board: game.MainBoard,
		Check: func(_ game.Card, pos game.Pos) bool { return g.IsSite(p, req, pos) },
	}
	i, _, c := h.wait(p, fmt.Sprintf("select a %s site", req.Kind), site, button(game.CancelButton))
	if i == 1 {
		return game.Pos{}, false
	}
	return c.Pos, true
}

func (h *Human) SelectCardToPay(p *game.Player, bill game.Bill) *game.Landscape {
	prompt := fmt.Sprintf("pay %d more", bill.Due())
	_, card, _ := h.wait(p, prompt, ownLand(p, func(l *game.Landscape) bool {
		return l.Held > 0 && bill.Accepts(l.Resource)
	}))
	return card.(*game.Landscape)
}

func (h *Human) SelectCardToThrowAway(p *game.Player) game.Playable {
	_, card, _ := h.wait(p, "select a card to throw away", ClickFilter{
		Board: p.HandBoard.ID,
		Check: func(c game.Card, _ game.Pos) bool { return c != nil },
	})
	return card.(game.Playable)
}

func (h *Human) SelectOpponentsUnitToRemove(p *game.Player) game.Buildable {
	removable := p.Opponent().RemovableUnits()
	_, card, _ := h.wait(p, "select a unit to remove", ClickFilter{
		Board: game.MainBoard,
		Check: func(c game.Card, _ game.Pos) bool { return containsCard(removable, c) },
	})
	return card.(game.Buildable)
}

func containsCard[T game.Card](cards []T, c game.Card) bool {
	if c == nil {
		return false
	}
	for _, x := range cards {
		if x.ID() == c.ID() {
			return true
		}
	}
	return false
}

func (h *Human) SelectCardToStealBySpy(p *game.Player) game.Playable {
	o := p.Opponent()
	stealable := o.StealableCards()
	_, _, c := h.wait(p, "select a card to steal", choiceCard(func(i int) bool {
		return i < len(o.Hand) && containsCard(stealable, o.Hand[i])
	}))
	return o.Hand[c.Pos.X]
}

func (h *Human) SelectOpponentsCardToDiscard(p *game.Player) game.Playable {
	g := p.Game()
	o := p.Opponent()
	g.ShowHand(o)
	defer g.Choice.Reset()
	_, _, c := h.wait(p, "select a card to discard", choiceCard(func(i int) bool { return i < len(o.Hand) }))
	return o.Hand[c.Pos.X]
}

func (h *Human) DecideUseDefence(p *game.Player, attack game.ActionKind) bool {
	return h.confirm(p, fmt.Sprintf("defend against %s?", attack))
}

func (h *Human) SelectBuildingToBurn(p *game.Player) *game.Building {
	_, card, _ := h.wait(p, "select a building to burn", ClickFilter{
		Board: game.MainBoard,
		Types: []game.CardType{game.BuildingType},
		Owner: p.Opponent().ID,
	})
	return card.(*game.Building)
}

func (h *Human) SelectKnightToKill(p *game.Player) *game.Knight {
	_, card, _ := h.wait(p, "select a knight", ClickFilter{
		Board: game.MainBoard,
		Types: []game.CardType{game.KnightType},
		Owner: p.Opponent().ID,
	})
	return card.(*game.Knight)
}

// transfer asks for a source landscape of src and a destination of dst with the same resource.
func (h *Human) transfer(p *game.Player, src, dst *game.Player, verb string) (*game.Landscape, *game.Landscape) {
	from := ownLand(src, func(l *game.Landscape) bool {
		return l.Held > 0 && len(dst.LandsWithRoom(l.Resource)) > 0
	})
	_, card, _ := h.wait(p, fmt.Sprintf("select a resource to %s", verb), from)
	l := card.(*game.Landscape)
	to := ownLand(dst, func(d *game.Landscape) bool { return d.Resource == l.Resource && dst.HasRoom(d) })
	_, card, _ = h.wait(p, "select where it goes", to)
	return l, card.(*game.Landscape)
}

func (h *Human) GiveAnyResource(p *game.Player) (*game.Landscape, *game.Landscape) {
	return h.transfer(p, p, p.Opponent(), "give")
}

func (h *Human) GrabAnyResource(p *game.Player) (*game.Landscape, *game.Landscape) {
	return h.transfer(p, p.Opponent(), p, "grab")
}

func (h *Human) TradeWithCaravan(p *game.Player) (*game.Landscape, *game.Landscape, bool) {
	return h.exchange(p, "caravan: select a resource to give, or cancel", anyLand)
}

// exchange asks for an own landscape to give from and one of another resource to receive on.
func (h *Human) exchange(p *game.Player, prompt string, canGive func(*game.Landscape) bool) (*game.Landscape, *game.Landscape, bool) {
	from := ownLand(p, func(l *game.Landscape) bool { return l.Held > 0 && canGive(l) })
	i, card, _ := h.wait(p, prompt, from, button(game.CancelButton))
	if i == 1 {
		return nil, nil, false
	}
	give := card.(*game.Landscape)
	to := ownLand(p, func(l *game.Landscape) bool { return l.Resource != give.Resource && p.HasRoom(l) })
	i, card, _ = h.wait(p, "select a resource to receive", to, button(game.CancelButton))
	if i == 1 {
		return nil, nil, false
	}
	return give, card.(*game.Landscape), true
}

func (h *Human) SelectResourceToTradeFor(p *game.Player) (game.Resource, game.Resource, bool) {
	held := p.Resources()
	give, get, ok := h.exchange(p, "trade: select a resource to give, or cancel", func(l *game.Landscape) bool {
		return held[l.Resource] >= p.TradeRate(l.Resource)
	})
	if !ok {
		return 0, 0, false
	}
	return give.Resource, get.Resource, true
}

func (h *Human) SelectResourceToPurchase(p *game.Player, r game.Resource) *game.Landscape {
	_, card, _ := h.wait(p, fmt.Sprintf("select a %s landscape", r), ownLand(p, func(l *game.Landscape) bool {
		return l.Resource == r && p.HasRoom(l)
	}))
	return card.(*game.Landscape)
}

func (h *Human) DecideUseScout(p *game.Player) bool {
	return h.confirm(p, "use the scout to choose the new landscape?")
}

func (h *Human) SelectNewLand(p *game.Player, pos game.Pos) int {
	g := p.Game()
	cards := make([]game.Card, 0, len(g.Pool))
	for _, l := range g.Pool {
		cards = append(cards, l)
	}
	g.Choice.Fill(cards)
	defer g.Choice.Reset()
	_, _, c := h.wait(p, fmt.Sprintf("select the landscape for %s", pos), choiceCard(func(i int) bool { return i < len(g.Pool) }))
	return c.Pos.X
}

func (h *Human) DecideBrowsePile(p *game.Player) bool {
	return h.confirm(p, fmt.Sprintf("browse a pile for %d resources?", p.BrowseFee()))
}

func (h *Human) DecideSwapOneCard(p *game.Player) bool {
	return h.confirm(p, "swap one card?")
}

func (h *Human) PickAnyResource(p *game.Player) *game.Landscape {
	_, card, _ := h.wait(p, "select a resource to take", ownLand(p, p.HasRoom))
	return card.(*game.Landscape)
}
