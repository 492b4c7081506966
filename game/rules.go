package game

import "slices"

// Placement rules for the main board. All positions are checked against the board
// before anything is built, so a refused build never leaves partial state.

func (g *Game) ownedAt(p *Player, pos Pos, t CardType) Card {
	if !g.Board.InBounds(pos) {
		return nil
	}
	c := g.Board.Get(pos)
	if c == nil || c.Type() != t || OwnerOf(c) != p.ID {
		return nil
	}
	return c
}

func (g *Game) nextToOwned(p *Player, pos Pos, t CardType) bool {
	return g.Board.IsNextTo(pos, func(c Card) bool {
		return c.Type() == t && OwnerOf(c) == p.ID
	})
}

// IsPathSite reports whether p may build a path at pos: an empty square on its
// settlement row, off the board edge, next to one of its settlements.
func (g *Game) IsPathSite(p *Player, pos Pos) bool {
	if pos.Y != p.Mid.Y || pos.X <= 0 || pos.X >= g.Board.Width-1 {
		return false
	}
	return g.Board.IsEmpty(pos) && g.nextToOwned(p, pos, SettlementType)
}

// IsVillageSite reports whether p may build a village at pos: an empty square on
// its settlement row next to one of its paths, with room for the new landscapes.
func (g *Game) IsVillageSite(p *Player, pos Pos) bool {
	if pos.Y != p.Mid.Y || !g.Board.InBounds(pos) {
		return false
	}
	if !g.Board.InBounds(Pos{p.landColumn(pos), pos.Y}) {
		return false
	}
	return g.Board.IsEmpty(pos) && g.nextToOwned(p, pos, PathType)
}

// IsTownSite reports whether pos holds a village of p whose outer flanks fit on the board.
func (g *Game) IsTownSite(p *Player, pos Pos) bool {
	c := g.ownedAt(p, pos, SettlementType)
	if c == nil || c.(*Settlement).Kind != Village {
		return false
	}
	return g.Board.InBounds(pos.Up(2)) && g.Board.InBounds(pos.Down(2))
}

// IsUnitSite reports whether card may be built on the slot at pos.
func (g *Game) IsUnitSite(p *Player, pos Pos, card Buildable) bool {
	c := g.ownedAt(p, pos, SlotType)
	if c == nil {
		return false
	}
	if b, ok := card.(*Building); ok && b.TownOnly {
		return g.Settlement(c.(*Slot).Settlement).Kind == Town
	}
	return true
}

// IsSite checks pos against a site request.
func (g *Game) IsSite(p *Player, req SiteRequest, pos Pos) bool {
	if !g.Board.InBounds(pos) {
		return false
	}
	switch req.Kind {
	case PathSite:
		return g.IsPathSite(p, pos)
	case VillageSite:
		return g.IsVillageSite(p, pos)
	case TownSite:
		return g.IsTownSite(p, pos)
	case UnitSite:
		return req.Card != nil && g.IsUnitSite(p, pos, req.Card)
	}
	return false
}

// Sites lists every position satisfying req, in row-major order.
func (g *Game) Sites(p *Player, req SiteRequest) []Pos {
	var out []Pos
	for y := 0; y < g.Board.Height; y++ {
		for x := 0; x < g.Board.Width; x++ {
			if pos := (Pos{x, y}); g.IsSite(p, req, pos) {
				out = append(out, pos)
			}
		}
	}
	return out
}

// isNextToBuilding reports whether a landscape has a horizontally adjacent building of its
// owner with one of the given names.
func (g *Game) isNextToBuilding(l *Landscape, names []string) bool {
	if !l.OnBoard {
		return false
	}
	return g.Board.IsNextTo(l.Pos, func(c Card) bool {
		b, ok := c.(*Building)
		return ok && b.Owner == l.Owner && slices.Contains(names, b.Name())
	})
}

func (g *Game) countNextToBuilding(l *Landscape, names []string) int {
	n := 0
	for _, pos := range []Pos{l.Pos.Left(1), l.Pos.Right(1)} {
		if !g.Board.InBounds(pos) {
			continue
		}
		if b, ok := g.Board.Get(pos).(*Building); ok && b.Owner == l.Owner && slices.Contains(names, b.Name()) {
			n++
		}
	}
	return n
}

// isProtected reports whether a unit's settlement also holds one of the named buildings.
func (g *Game) isProtected(c Buildable, names []string) bool {
	s := g.settlementOf(c)
	if s == nil {
		return false
	}
	for _, o := range s.Occupants {
		if b, ok := o.(*Building); ok && slices.Contains(names, b.Name()) {
			return true
		}
	}
	return false
}
