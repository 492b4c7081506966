package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"settlers/game"
)

var ErrInputClosed = errors.New("input closed")

// Console reads clicks as text commands and prints the boards before every prompt.
//
//	main X Y | hand X | choice X | pile I | ok | cancel | end | trade
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

var _ Input = (*Console)(nil)

// Print implements game.Messenger.
func (c *Console) Print(player int, msg string) {
	fmt.Fprintf(c.out, "[player %d] %s\n", player, msg)
}

// NextClick panics with ErrInputClosed once the input is exhausted.
func (c *Console) NextClick(p *game.Player, prompt string) Click {
	for {
		Render(c.out, p)
		fmt.Fprintf(c.out, "player %d: %s> ", p.ID, prompt)
		if !c.in.Scan() {
			panic(ErrInputClosed)
		}
		click, err := ParseCommand(p, c.in.Text())
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}
		return click
	}
}

// ParseCommand turns one command line into a click for player p.
func ParseCommand(p *game.Player, line string) (Click, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Click{}, errors.New("empty command")
	}
	args := make([]int, 0, len(fields)-1)
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Click{}, fmt.Errorf("bad number %q: %w", f, err)
		}
		args = append(args, n)
	}
	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s takes %d numbers", fields[0], n)
		}
		return nil
	}
	switch fields[0] {
	case "main":
		if err := want(2); err != nil {
			return Click{}, err
		}
		return Click{Board: game.MainBoard, Pos: game.Pos{X: args[0], Y: args[1]}}, nil
	case "hand":
		if err := want(1); err != nil {
			return Click{}, err
		}
		return Click{Board: p.HandBoard.ID, Pos: game.Pos{X: args[0]}}, nil
	case "choice":
		if err := want(1); err != nil {
			return Click{}, err
		}
		return Click{Board: game.ChoiceBoard, Pos: game.Pos{X: args[0]}}, nil
	case "pile":
		if err := want(1); err != nil {
			return Click{}, err
		}
		return Click{Board: game.MainBoard, Pos: p.Game().PilePos(args[0])}, nil
	case "ok":
		return Click{Board: game.ButtonBoard, Pos: game.Pos{X: game.OKButton}}, nil
	case "cancel":
		return Click{Board: game.ButtonBoard, Pos: game.Pos{X: game.CancelButton}}, nil
	case "end":
		return Click{Board: game.ButtonBoard, Pos: game.Pos{X: game.EndTurnButton}}, nil
	case "trade":
		return Click{Board: game.ButtonBoard, Pos: game.Pos{X: game.TradeButton}}, nil
	}
	return Click{}, fmt.Errorf("unknown command %q", fields[0])
}

// Render prints the main board, the choice board and p's hand.
func Render(w io.Writer, p *game.Player) {
	g := p.Game()
	fmt.Fprintf(w, "turn %d, player %d to move, points %v\n", g.Turn, g.Current, g.Points())
	renderBoard(w, g.Board)
	if cards, _ := g.Choice.Cards(); len(cards) > 0 {
		fmt.Fprint(w, "choice: ")
		renderBoard(w, g.Choice)
	}
	fmt.Fprint(w, "hand:   ")
	renderBoard(w, p.HandBoard)
}

func renderBoard(w io.Writer, b *game.Board) {
	for y := 0; y < b.Height; y++ {
		var sb strings.Builder
		for x := 0; x < b.Width; x++ {
			fmt.Fprintf(&sb, "%-8s", label(b.Get(game.Pos{X: x, Y: y})))
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}

func label(c game.Card) string {
	switch v := c.(type) {
	case nil:
		return "."
	case *game.Landscape:
		return fmt.Sprintf("%.2s%d:%d", v.Resource, v.Dice, v.Held)
	case *game.Marker:
		switch v.Name() {
		case game.EmptyMarker:
			return "_"
		case game.PileMarker:
			return "#"
		}
		return strings.TrimPrefix(v.Name(), "back_")
	case *game.Slot:
		return "o"
	}
	name := c.Name()
	if len(name) > 7 {
		name = name[:7]
	}
	return name
}
