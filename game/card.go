package game

import (
	"fmt"

	"github.com/google/uuid"
)

type CardType int

const (
	LandscapeType CardType = iota
	PathType
	SettlementType
	SlotType
	BuildingType
	KnightType
	FleetType
	ActionType
	EventType
	MarkerType
)

var cardTypeNames = map[CardType]string{
	LandscapeType:  "landscape",
	PathType:       "path",
	SettlementType: "settlement",
	SlotType:       "slot",
	BuildingType:   "building",
	KnightType:     "knight",
	FleetType:      "fleet",
	ActionType:     "action",
	EventType:      "event",
	MarkerType:     "marker",
}

func (t CardType) String() string {
	return cardTypeNames[t]
}

// Card is anything that can sit on a board, in a hand or in a pile.
type Card interface {
	ID() uuid.UUID
	Name() string
	Type() CardType
}

// Playable cards live in hands and piles.
type Playable interface {
	Card
	playable()
}

// Buildable cards are played from hand onto a settlement flank.
type Buildable interface {
	Playable
	AsUnit() *Unit
}

type base struct {
	id   uuid.UUID
	name string
}

func newBase(name string) base {
	return base{id: uuid.New(), name: name}
}

func (b *base) ID() uuid.UUID { return b.id }
func (b *base) Name() string  { return b.name }

// Placement records where a card lies on the main board and who owns it there.
type Placement struct {
	Pos     Pos
	OnBoard bool
	Owner   int
}

func (p *Placement) place(pos Pos, owner int) {
	p.Pos = pos
	p.OnBoard = true
	p.Owner = owner
}

func (p *Placement) lift() {
	p.Pos = Pos{}
	p.OnBoard = false
	p.Owner = NoPlayer
}

type Landscape struct {
	base
	Placement
	Resource Resource
	Dice     int
	Held     int
}

func NewLandscape(r Resource, dice int) *Landscape {
	return &Landscape{base: newBase(r.String()), Resource: r, Dice: dice}
}

func (l *Landscape) Type() CardType { return LandscapeType }

func (l *Landscape) String() string {
	return fmt.Sprintf("%s%d(%d)", l.Resource, l.Dice, l.Held)
}

type Path struct {
	base
	Placement
}

func NewPath() *Path {
	return &Path{base: newBase("path")}
}

func (p *Path) Type() CardType { return PathType }

type SettlementKind int

const (
	Village SettlementKind = iota
	Town
)

func (k SettlementKind) String() string {
	if k == Town {
		return "town"
	}
	return "village"
}

// Settlement is a village or a town. Occupants holds one Slot or Buildable per flank,
// in flank order.
type Settlement struct {
	base
	Placement
	Kind      SettlementKind
	Index     int
	Occupants []Card
}

func (s *Settlement) Type() CardType { return SettlementType }
func (s *Settlement) Name() string   { return s.Kind.String() }

func (s *Settlement) FlankCount() int {
	if s.Kind == Town {
		return 4
	}
	return 2
}

// Flanks returns the flank squares of a settlement standing at pos.
func (s *Settlement) Flanks() []Pos {
	return flanksOf(s.Kind, s.Pos)
}

func flanksOf(k SettlementKind, pos Pos) []Pos {
	flanks := []Pos{pos.Up(1), pos.Down(1)}
	if k == Town {
		flanks = append(flanks, pos.Up(2), pos.Down(2))
	}
	return flanks
}

// Slot is a free building position on a settlement flank.
type Slot struct {
	base
	Placement
	Settlement int
}

func newSlot(pos Pos, owner, settlement int) *Slot {
	s := &Slot{base: newBase("slot"), Settlement: settlement}
	s.place(pos, owner)
	return s
}

func (s *Slot) Type() CardType { return SlotType }

// Unit holds what every buildable card shares.
type Unit struct {
	base
	Placement
	Cost       Cost
	Settlement int
}

func newUnit(name string, cost Cost) Unit {
	return Unit{base: newBase(name), Cost: cost, Settlement: NoSettlement}
}

func (u *Unit) AsUnit() *Unit { return u }
func (u *Unit) playable()     {}

type Building struct {
	Unit
	VictoryPoints int
	TradePoints   int
	TownOnly      bool
}

func (b *Building) Type() CardType { return BuildingType }

type Knight struct {
	Unit
	Battle     int
	Tournament int
}

func (k *Knight) Type() CardType { return KnightType }

type Fleet struct {
	Unit
	Resource    Resource
	TradePoints int
}

func (f *Fleet) Type() CardType { return FleetType }

type ActionCard struct {
	base
	Kind ActionKind
}

func NewActionCard(kind ActionKind) *ActionCard {
	return &ActionCard{base: newBase(kind.String()), Kind: kind}
}

func (a *ActionCard) Type() CardType { return ActionType }
func (a *ActionCard) playable()      {}

type EventCard struct {
	base
	Kind EventKind
}

func NewEventCard(kind EventKind) *EventCard {
	return &EventCard{base: newBase(kind.String()), Kind: kind}
}

func (e *EventCard) Type() CardType { return EventType }

// Marker names used on the boards.
const (
	EmptyMarker   = "empty"
	PileMarker    = "back"
	EventMarker   = "back_event"
	LandMarker    = "back_land"
	PathMarker    = "back_path"
	VillageMarker = "back_village"
	TownMarker    = "back_town"
)

// Marker is a non-playable card used for empty squares, card backs and buttons.
type Marker struct {
	base
	Placement
}

func NewMarker(name string) *Marker {
	return &Marker{base: newBase(name)}
}

func (m *Marker) Type() CardType { return MarkerType }

// IsUnit reports whether c is a knight, fleet or building.
func IsUnit(c Card) bool {
	_, ok := c.(Buildable)
	return ok
}

func placementOf(c Card) *Placement {
	switch v := c.(type) {
	case *Landscape:
		return &v.Placement
	case *Path:
		return &v.Placement
	case *Settlement:
		return &v.Placement
	case *Slot:
		return &v.Placement
	case *Marker:
		return &v.Placement
	case Buildable:
		return &v.AsUnit().Placement
	}
	return nil
}

// OwnerOf returns the owner of a board card, or NoPlayer.
func OwnerOf(c Card) int {
	if p := placementOf(c); p != nil && p.OnBoard {
		return p.Owner
	}
	return NoPlayer
}
