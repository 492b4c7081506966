package player

import (
	"slices"

	"settlers/game"
)

// Click is one selected square on one of the boards.
type Click struct {
	Board game.BoardID
	Pos   game.Pos
}

// Input delivers clicks from a person. Prompt says what the player is asked for.
type Input interface {
	NextClick(p *game.Player, prompt string) Click
}

// ClickFilter describes which clicks answer a question. Empty fields match anything.
type ClickFilter struct {
	Board  game.BoardID
	Types  []game.CardType
	Names  []string
	Negate bool
	Owner  int
	Check  func(c game.Card, pos game.Pos) bool
}

func boardOf(g *game.Game, id game.BoardID) *game.Board {
	switch id {
	case game.MainBoard:
		return g.Board
	case game.ChoiceBoard:
		return g.Choice
	case game.ButtonBoard:
		return g.Buttons
	case game.HandBoard1:
		return g.Player(1).HandBoard
	case game.HandBoard2:
		return g.Player(2).HandBoard
	}
	return nil
}

// Accepts returns the clicked card when the click matches the filter.
func (f ClickFilter) Accepts(g *game.Game, c Click) (game.Card, bool) {
	if c.Board != f.Board {
		return nil, false
	}
	b := boardOf(g, c.Board)
	if b == nil || !b.InBounds(c.Pos) {
		return nil, false
	}
	card := b.Get(c.Pos)
	if len(f.Types) > 0 && (card == nil || !slices.Contains(f.Types, card.Type())) {
		return nil, false
	}
	if len(f.Names) > 0 && (card == nil || slices.Contains(f.Names, card.Name()) == f.Negate) {
		return nil, false
	}
	if f.Owner != game.NoPlayer && (card == nil || game.OwnerOf(card) != f.Owner) {
		return nil, false
	}
	if f.Check != nil && !f.Check(card, c.Pos) {
		return nil, false
	}
	return card, true
}

func button(i int) ClickFilter {
	return ClickFilter{
		Board: game.ButtonBoard,
		Check: func(_ game.Card, pos game.Pos) bool { return pos.X == i },
	}
}
