package game

import "fmt"

// Settlement returns the settlement stored at index i of the arena.
func (g *Game) Settlement(i int) *Settlement {
	if i < 0 || i >= len(g.settlements) {
		panic(fmt.Sprintf("no settlement %d", i))
	}
	return g.settlements[i]
}

// placeSettlement builds a village at pos with an empty slot on each flank.
func (g *Game) placeSettlement(p *Player, pos Pos) *Settlement {
	s := &Settlement{base: newBase("village"), Kind: Village, Index: len(g.settlements)}
	s.place(pos, p.ID)
	g.settlements = append(g.settlements, s)
	g.Board.Set(pos, s)
	for _, f := range s.Flanks() {
		slot := newSlot(f, p.ID, s.Index)
		s.Occupants = append(s.Occupants, slot)
		g.Board.Set(f, slot)
	}
	p.Settlements = append(p.Settlements, s.Index)
	return s
}

// upgradeToTown turns a village into a town in place, adding the two outer slots.
func (g *Game) upgradeToTown(s *Settlement) {
	if s.Kind != Village {
		panic(fmt.Sprintf("settlement at %s is already a town", s.Pos))
	}
	s.Kind = Town
	for _, f := range s.Flanks()[len(s.Occupants):] {
		slot := newSlot(f, s.Owner, s.Index)
		s.Occupants = append(s.Occupants, slot)
		g.Board.Set(f, slot)
	}
	g.Board.Refresh(s.Pos)
}

func (g *Game) placePath(p *Player, path *Path, pos Pos) {
	path.place(pos, p.ID)
	g.Board.Set(pos, path)
	p.Paths = append(p.Paths, path)
}

// attach swaps a slot for a buildable card.
func (g *Game) attach(p *Player, c Buildable, slot *Slot) {
	s := g.Settlement(slot.Settlement)
	i := occupantIndex(s, slot)
	if i < 0 {
		panic(fmt.Sprintf("slot %s not part of settlement at %s", slot.Pos, s.Pos))
	}
	u := c.AsUnit()
	u.place(slot.Pos, p.ID)
	u.Settlement = s.Index
	s.Occupants[i] = c
	g.Board.Set(slot.Pos, c)
}

// detach swaps a buildable card back for an empty slot.
func (g *Game) detach(c Buildable) {
	u := c.AsUnit()
	if !u.OnBoard || u.Settlement == NoSettlement {
		panic(fmt.Sprintf("%s is not on the board", c.Name()))
	}
	s := g.Settlement(u.Settlement)
	i := occupantIndex(s, c)
	if i < 0 {
		panic(fmt.Sprintf("%s not part of settlement at %s", c.Name(), s.Pos))
	}
	slot := newSlot(u.Pos, u.Owner, s.Index)
	s.Occupants[i] = slot
	g.Board.Set(u.Pos, slot)
	u.lift()
	u.Settlement = NoSettlement
}

func occupantIndex(s *Settlement, c Card) int {
	for i, o := range s.Occupants {
		if o.ID() == c.ID() {
			return i
		}
	}
	return -1
}

// CheckSettlement verifies that a settlement's occupants match its flanks.
func (g *Game) CheckSettlement(s *Settlement) error {
	flanks := s.Flanks()
	if len(s.Occupants) != s.FlankCount() {
		return fmt.Errorf("%s at %s has %d occupants, want %d", s.Kind, s.Pos, len(s.Occupants), s.FlankCount())
	}
	for i, o := range s.Occupants {
		var pos Pos
		var idx int
		switch v := o.(type) {
		case *Slot:
			pos, idx = v.Pos, v.Settlement
		case Buildable:
			pos, idx = v.AsUnit().Pos, v.AsUnit().Settlement
		default:
			return fmt.Errorf("%s at %s holds a %s", s.Kind, s.Pos, o.Type())
		}
		if pos != flanks[i] {
			return fmt.Errorf("occupant %d of %s at %s is at %s, want %s", i, s.Kind, s.Pos, pos, flanks[i])
		}
		if idx != s.Index {
			return fmt.Errorf("occupant %d of %s at %s points to settlement %d", i, s.Kind, s.Pos, idx)
		}
		if g.Board.Get(pos) != o {
			return fmt.Errorf("board square %s does not hold occupant %d of %s at %s", pos, i, s.Kind, s.Pos)
		}
	}
	return nil
}

// settlementOf returns the settlement a buildable stands in.
func (g *Game) settlementOf(c Buildable) *Settlement {
	u := c.AsUnit()
	if u.Settlement == NoSettlement {
		return nil
	}
	return g.Settlement(u.Settlement)
}
