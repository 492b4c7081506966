package player

import (
	"bytes"
	"strings"
	"testing"

	"settlers/game"

	"github.com/stretchr/testify/require"
)

type scriptedInput struct {
	clicks  []Click
	prompts []string
}

func (s *scriptedInput) NextClick(p *game.Player, prompt string) Click {
	if len(s.clicks) == 0 {
		panic("no clicks left for: " + prompt)
	}
	s.prompts = append(s.prompts, prompt)
	c := s.clicks[0]
	s.clicks = s.clicks[1:]
	return c
}

func buttonClick(i int) Click {
	return Click{Board: game.ButtonBoard, Pos: game.Pos{X: i}}
}

func mainClick(pos game.Pos) Click {
	return Click{Board: game.MainBoard, Pos: pos}
}

// humanGame sets up a computer game and hands player 1 to a human with scripted clicks.
func humanGame(t *testing.T, clicks ...Click) (*game.Game, *Human, *scriptedInput) {
	t.Helper()
	g := newGame(t, NewComputer(), NewComputer())
	in := &scriptedInput{clicks: clicks}
	h := NewHuman(in)
	g.Player(1).Decider = h
	return g, h, in
}

func TestHumanIgnoresClicksOutsideTheChoice(t *testing.T) {
	g, h, in := humanGame(t,
		mainClick(game.Pos{X: 0, Y: 0}),
		buttonClick(game.OKButton),
		buttonClick(game.EndTurnButton),
	)

	require.Equal(t, game.EndTurn, h.ChooseAction(g.Player(1)).Type)
	require.Empty(t, in.clicks)
	require.Len(t, in.prompts, 3)
}

func TestHumanChoosesMovesByClick(t *testing.T) {
	g, h, _ := humanGame(t)
	p := g.Player(1)
	clearHand(p)
	spy := game.NewActionCard(game.Spy)
	p.AddToHand(building(t, "warehouse"))
	p.AddToHand(spy)

	markerAt := func(name string) game.Pos {
		cards, positions := g.Board.Cards()
		for i, c := range cards {
			if c.Type() == game.MarkerType && c.Name() == name {
				return positions[i]
			}
		}
		t.Fatalf("no %s marker", name)
		return game.Pos{}
	}

	tests := []struct {
		click Click
		want  game.MoveType
	}{
		{buttonClick(game.TradeButton), game.BankTrade},
		{mainClick(markerAt(game.PathMarker)), game.BuildPath},
		{mainClick(markerAt(game.VillageMarker)), game.BuildVillage},
		{mainClick(markerAt(game.TownMarker)), game.BuildTown},
		{Click{Board: game.HandBoard1, Pos: game.Pos{X: 0}}, game.BuildFromHand},
		{Click{Board: game.HandBoard1, Pos: game.Pos{X: 1}}, game.PlayAction},
	}
	for _, tt := range tests {
		h.in = &scriptedInput{clicks: []Click{tt.click}}
		require.Equal(t, tt.want, h.ChooseAction(p).Type, "click %v", tt.click)
	}

	h.in = &scriptedInput{clicks: []Click{{Board: game.HandBoard1, Pos: game.Pos{X: 1}}}}
	require.Same(t, spy, h.ChooseAction(p).Card)
}

func TestHumanPaysWithOwnLandscapes(t *testing.T) {
	g, h, in := humanGame(t)
	p, o := g.Player(1), g.Player(2)
	holding(t, p, map[game.Resource]int{game.Rock: 2, game.Wood: 1})
	in.clicks = []Click{
		mainClick(landOf(t, o, game.Rock).Pos),
		mainClick(landOf(t, p, game.Wood).Pos),
		mainClick(landOf(t, p, game.Rock).Pos),
	}

	got := h.SelectCardToPay(p, game.Bill{Cost: game.Cost{game.Rock: 1}})
	require.Same(t, landOf(t, p, game.Rock), got)
	require.Empty(t, in.clicks)
}

func TestHumanSelectsPile(t *testing.T) {
	g, h, in := humanGame(t)
	in.clicks = []Click{mainClick(g.PilePos(0)), mainClick(g.PilePos(2))}

	require.Equal(t, 2, h.SelectPile(g.Player(1), 0))
}

func TestHumanPicksDistinctStartingCards(t *testing.T) {
	g, h, in := humanGame(t)
	in.clicks = []Click{
		{Board: game.ChoiceBoard, Pos: game.Pos{X: 2}},
		{Board: game.ChoiceBoard, Pos: game.Pos{X: 2}},
		{Board: game.ChoiceBoard, Pos: game.Pos{X: 0}},
	}

	require.Equal(t, []int{2, 0}, h.PickStartingCards(g.Player(1), 1, 2))
	cards, _ := g.Choice.Cards()
	require.Empty(t, cards)
}

func TestHumanConfirmsWithButtons(t *testing.T) {
	g, h, in := humanGame(t)
	p := g.Player(1)
	in.clicks = []Click{buttonClick(game.OKButton), buttonClick(game.CancelButton)}

	require.True(t, h.DecideUseDefence(p, game.Arson))
	require.False(t, h.DecideSwapOneCard(p))
}

func TestHumanTradeCanBeCancelled(t *testing.T) {
	g, h, in := humanGame(t)
	p := g.Player(1)
	holding(t, p, map[game.Resource]int{game.Rock: 3})
	in.clicks = []Click{
		mainClick(landOf(t, p, game.Rock).Pos),
		mainClick(landOf(t, p, game.Brick).Pos),
	}

	give, get, ok := h.SelectResourceToTradeFor(p)
	require.True(t, ok)
	require.Equal(t, game.Rock, give)
	require.Equal(t, game.Brick, get)

	in.clicks = []Click{buttonClick(game.CancelButton)}
	_, _, ok = h.SelectResourceToTradeFor(p)
	require.False(t, ok)
}

func TestClickFilterNegatedNames(t *testing.T) {
	g, _, _ := humanGame(t)
	f := ClickFilter{Board: game.MainBoard, Names: []string{game.EmptyMarker}, Negate: true}

	_, ok := f.Accepts(g, mainClick(g.Player(1).Mid))
	require.True(t, ok, "the starting path is not empty")
	_, ok = f.Accepts(g, mainClick(g.Player(1).Mid.Right(2)))
	require.False(t, ok)
	_, ok = f.Accepts(g, Click{Board: game.ChoiceBoard})
	require.False(t, ok)
	_, ok = f.Accepts(g, mainClick(game.Pos{X: -1, Y: 0}))
	require.False(t, ok)
}

func TestParseCommand(t *testing.T) {
	g, _, _ := humanGame(t)
	p := g.Player(2)

	tests := []struct {
		line string
		want Click
	}{
		{"main 3 4", mainClick(game.Pos{X: 3, Y: 4})},
		{"hand 1", Click{Board: game.HandBoard2, Pos: game.Pos{X: 1}}},
		{"choice 5", Click{Board: game.ChoiceBoard, Pos: game.Pos{X: 5}}},
		{"pile 2", mainClick(g.PilePos(2))},
		{"OK", buttonClick(game.OKButton)},
		{"cancel", buttonClick(game.CancelButton)},
		{"end", buttonClick(game.EndTurnButton)},
		{"trade", buttonClick(game.TradeButton)},
	}
	for _, tt := range tests {
		got, err := ParseCommand(p, tt.line)
		require.NoError(t, err, tt.line)
		require.Equal(t, tt.want, got, tt.line)
	}

	for _, bad := range []string{"", "main 3", "hand x", "fly 1"} {
		_, err := ParseCommand(p, bad)
		require.Error(t, err, bad)
	}
}

func TestConsoleRetriesUntilValidCommand(t *testing.T) {
	g, _, _ := humanGame(t)
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("fly\nend\n"), &out)

	require.Equal(t, buttonClick(game.EndTurnButton), c.NextClick(g.Player(1), "choose an action"))
	require.Contains(t, out.String(), `unknown command "fly"`)
	require.Contains(t, out.String(), "player 1: choose an action>")

	require.PanicsWithValue(t, ErrInputClosed, func() { c.NextClick(g.Player(1), "again") })

	c.Print(2, "spy steals konrad")
	require.Contains(t, out.String(), "[player 2] spy steals konrad")
}
