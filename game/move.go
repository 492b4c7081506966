package game

import "fmt"

// MoveType represents the kind of action phase move a player performs.
type MoveType int

const (
	EndTurn MoveType = iota
	BuildFromHand
	BuildPath
	BuildVillage
	BuildTown
	BankTrade
	PlayAction
)

var moveNames = map[MoveType]string{
	EndTurn:       "end turn",
	BuildFromHand: "build from hand",
	BuildPath:     "build path",
	BuildVillage:  "build village",
	BuildTown:     "build town",
	BankTrade:     "trade",
	PlayAction:    "play action",
}

func (t MoveType) String() string {
	return moveNames[t]
}

// Move is one action phase step. Card is set for BuildFromHand and PlayAction.
type Move struct {
	Type MoveType
	Card Playable
}

func (m Move) String() string {
	if m.Card != nil {
		return fmt.Sprintf("%s %s", m.Type, m.Card.Name())
	}
	return m.Type.String()
}
