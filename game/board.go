package game

import "fmt"

type Pos struct {
	X, Y int
}

func (p Pos) Up(n int) Pos    { return Pos{p.X, p.Y - n} }
func (p Pos) Down(n int) Pos  { return Pos{p.X, p.Y + n} }
func (p Pos) Left(n int) Pos  { return Pos{p.X - n, p.Y} }
func (p Pos) Right(n int) Pos { return Pos{p.X + n, p.Y} }

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type BoardID int

const (
	MainBoard BoardID = iota
	ChoiceBoard
	ButtonBoard
	HandBoard1
	HandBoard2
)

// HandBoard returns the hand board of a player.
func HandBoard(player int) BoardID {
	if player == 2 {
		return HandBoard2
	}
	return HandBoard1
}

// Board is a fixed rectangular grid of squares, each empty or holding one card.
// Every mutation records the square so a renderer can redraw only what changed.
type Board struct {
	ID      BoardID
	Width   int
	Height  int
	squares []Card
	edited  []Pos
}

func NewBoard(id BoardID, width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", width, height))
	}
	return &Board{
		ID:      id,
		Width:   width,
		Height:  height,
		squares: make([]Card, width*height),
	}
}

func (b *Board) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Index converts a position to its row-major index.
func (b *Board) Index(p Pos) int {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("position %s outside %dx%d board", p, b.Width, b.Height))
	}
	return p.Y*b.Width + p.X
}

// PosOf converts a row-major index back to a position.
func (b *Board) PosOf(i int) Pos {
	if i < 0 || i >= len(b.squares) {
		panic(fmt.Sprintf("index %d outside %dx%d board", i, b.Width, b.Height))
	}
	return Pos{X: i % b.Width, Y: i / b.Width}
}

func (b *Board) Get(p Pos) Card {
	return b.squares[b.Index(p)]
}

func (b *Board) Set(p Pos, c Card) {
	b.squares[b.Index(p)] = c
	b.edited = append(b.edited, p)
}

func (b *Board) Clear(p Pos) {
	b.squares[b.Index(p)] = nil
	b.edited = append(b.edited, p)
}

// Refresh marks a square for redraw without changing it, e.g. after a resource count moved.
func (b *Board) Refresh(p Pos) {
	b.Index(p)
	b.edited = append(b.edited, p)
}

// Fill sets every square from left to right, top to bottom, using the next card from cards.
// Squares beyond len(cards) are cleared.
func (b *Board) Fill(cards []Card) {
	for i := range b.squares {
		var c Card
		if i < len(cards) {
			c = cards[i]
		}
		b.squares[i] = c
		b.edited = append(b.edited, b.PosOf(i))
	}
}

func (b *Board) Reset() {
	b.Fill(nil)
}

// Drain returns the recorded squares in the order they were edited and forgets them.
func (b *Board) Drain() []Pos {
	out := b.edited
	b.edited = nil
	return out
}

// IsEmpty reports whether p holds nothing or an empty marker.
func (b *Board) IsEmpty(p Pos) bool {
	c := b.Get(p)
	return c == nil || (c.Type() == MarkerType && c.Name() == EmptyMarker)
}

// IsNextTo reports whether a horizontal neighbour of p satisfies pred.
func (b *Board) IsNextTo(p Pos, pred func(Card) bool) bool {
	for _, n := range []Pos{p.Left(1), p.Right(1)} {
		if !b.InBounds(n) {
			continue
		}
		if c := b.Get(n); c != nil && pred(c) {
			return true
		}
	}
	return false
}

// Cards returns every non-nil card with its position, in row-major order.
func (b *Board) Cards() ([]Card, []Pos) {
	var cards []Card
	var pos []Pos
	for i, c := range b.squares {
		if c != nil {
			cards = append(cards, c)
			pos = append(pos, b.PosOf(i))
		}
	}
	return cards, pos
}
