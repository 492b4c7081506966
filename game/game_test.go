package game

import (
	"testing"

	"settlers/meta"

	"github.com/stretchr/testify/require"
)

func TestCivilWarReturnsUnprotectedKnight(t *testing.T) {
	g, d1, d2 := newTestGame(t)
	p2 := g.Player(2)
	k := NewKnight("otto", Cost{Rock: 1}, 3, 2)
	build(t, p2, k, Pos{6, 1})
	for len(p2.Hand) < p2.HandLimit() {
		p2.AddToHand(NewActionCard(Spy))
	}
	handBefore := len(p2.Hand)

	g.civilWar()

	require.Len(t, p2.Hand, handBefore+1)
	require.True(t, p2.InHand(k))
	require.Empty(t, p2.Knights)
	require.IsType(t, &Slot{}, g.Board.Get(Pos{6, 1}))
	require.Equal(t, 1, d1.calls["SelectOpponentsUnitToRemove"])
	require.Zero(t, d2.calls["SelectOpponentsUnitToRemove"])
	requireSettlementsValid(t, g)

	p2.SettleHandSize()
	require.Len(t, p2.Hand, p2.HandLimit())
}

func TestCivilWarSparesProtectedUnits(t *testing.T) {
	g, d1, _ := newTestGame(t)
	p2 := g.Player(2)
	g.upgradeToTown(g.Board.Get(Pos{6, 2}).(*Settlement))
	build(t, p2, NewBuilding("church", Cost{Rock: 1}, 1, 0, true), Pos{6, 0})
	build(t, p2, NewFleet(Sheep), Pos{6, 1})

	g.civilWar()

	require.Len(t, p2.Fleets, 1)
	require.Zero(t, d1.calls["SelectOpponentsUnitToRemove"])
}

func TestBuilderSwapsOneCardPerPlayer(t *testing.T) {
	g, d1, _ := newTestGame(t)
	p1, p2 := g.Player(1), g.Player(2)
	warehouse := NewBuilding("warehouse", Cost{Brick: 1}, 0, 0, false)
	jose := NewKnight("jose", Cost{Brick: 1}, 1, 1)
	fleet := NewFleet(Wood)
	bishop, spy := NewActionCard(Bishop), NewActionCard(Spy)
	g.Piles = [][]Playable{{warehouse, jose}, {fleet}, {}, {}}
	p1.AddToHand(bishop)
	p2.AddToHand(spy)
	d1.selectChoice = func(*Player, int) int { return 1 }

	g.builder()

	require.Equal(t, []Playable{jose}, p1.Hand)
	require.Equal(t, []Playable{warehouse, bishop}, g.Piles[0])
	require.Equal(t, []Playable{fleet}, p2.Hand)
	require.Equal(t, []Playable{spy}, g.Piles[1])
}

func TestTossWinner(t *testing.T) {
	for _, attack := range []ActionKind{Arson, Ambush} {
		g, _, _ := newTestGame(t, 5)
		require.Same(t, g.Player(1), g.Player(1).TossWinner(attack), attack.String())

		g, _, _ = newTestGame(t, 6)
		require.Same(t, g.Player(2), g.Player(1).TossWinner(attack), attack.String())
	}
}

func TestTossWinnerWithDefence(t *testing.T) {
	g, _, d2 := newTestGame(t, 3)
	p1, p2 := g.Player(1), g.Player(2)
	p2.AddToHand(NewActionCard(Bishop))
	d2.defend = true

	require.Same(t, p2, p1.TossWinner(Arson))
	require.False(t, p2.CardInHand("bishop"))
	require.Equal(t, 1, d2.calls["DecideUseDefence"])

	// the witch does not defend against arson
	p2.AddToHand(NewActionCard(Witch))
	require.Same(t, p1, p1.TossWinner(Arson))
	require.Equal(t, 1, d2.calls["DecideUseDefence"])
}

func TestArsonBurnsOpponentBuilding(t *testing.T) {
	g, _, _ := newTestGame(t, 1)
	p1, p2 := g.Player(1), g.Player(2)
	arson := NewActionCard(Arson)
	p1.AddToHand(arson)

	require.ErrorIs(t, p1.PlayActionCard(arson), ErrNothingToTarget)
	require.True(t, p1.InHand(arson))

	warehouse := NewBuilding("warehouse", Cost{Brick: 1}, 0, 0, false)
	build(t, p2, warehouse, Pos{8, 3})
	require.NoError(t, p1.PlayActionCard(arson))

	require.False(t, p1.InHand(arson))
	require.Empty(t, p2.Buildings)
	require.True(t, p2.InHand(warehouse))
	require.IsType(t, &Slot{}, g.Board.Get(Pos{8, 3}))
	requireSettlementsValid(t, g)
}

func TestBlackKnightLostTossCostsOwnKnight(t *testing.T) {
	g, _, _ := newTestGame(t, 6)
	p1, p2 := g.Player(1), g.Player(2)
	mine := NewKnight("konrad", Cost{Rock: 1}, 2, 1)
	theirs := NewKnight("hubert", Cost{Rock: 1}, 1, 2)
	build(t, p1, mine, Pos{6, 7})
	build(t, p2, theirs, Pos{6, 1})
	bk := NewActionCard(BlackKnight)
	p1.AddToHand(bk)

	require.NoError(t, p1.PlayActionCard(bk))

	require.True(t, p1.InHand(mine))
	require.Empty(t, p1.Knights)
	require.Equal(t, []*Knight{theirs}, p2.Knights)
}

func TestDefenceOnlyCardsAreRefused(t *testing.T) {
	g, _, _ := newTestGame(t)
	p := g.Player(1)
	for _, kind := range []ActionKind{Bishop, Witch, Scout, Alchemist} {
		a := NewActionCard(kind)
		p.AddToHand(a)
		require.ErrorIs(t, p.PlayActionCard(a), ErrNotPlayable)
		require.True(t, p.InHand(a))
	}
	require.ErrorIs(t, p.PlayActionCard(NewActionCard(Spy)), ErrNotInHand)
}

func TestSpyStealsFromHand(t *testing.T) {
	g, _, _ := newTestGame(t)
	p1, p2 := g.Player(1), g.Player(2)
	warehouse := NewBuilding("warehouse", Cost{Brick: 1}, 0, 0, false)
	knight := NewKnight("pipin", Cost{Rock: 1}, 1, 3)
	p2.AddToHand(warehouse)
	p2.AddToHand(knight)
	spy := NewActionCard(Spy)
	p1.AddToHand(spy)

	mine := NewFleet(Gold)
	p1.AddToHand(mine)
	msgs := &recordingMessenger{}
	g.messages = msgs

	require.NoError(t, p1.PlayActionCard(spy))

	require.Contains(t, msgs.msgs, "2: spy: player 1 holds fleet_gold")
	require.Equal(t, []Playable{mine, knight}, p1.Hand)
	require.Equal(t, []Playable{warehouse}, p2.Hand)
	cards, _ := g.Choice.Cards()
	require.Empty(t, cards)
}

func TestTraderGrabsTwiceAndGivesOne(t *testing.T) {
	g, _, _ := newTestGame(t)
	p1, p2 := g.Player(1), g.Player(2)
	mine := giveLand(p1, Sheep, 1, 0, Pos{5, 7})
	theirs := giveLand(p2, Sheep, 1, 2, Pos{5, 1})
	trader := NewActionCard(Trader)
	p1.AddToHand(trader)

	require.NoError(t, p1.PlayActionCard(trader))

	require.Equal(t, 1, mine.Held)
	require.Equal(t, 1, theirs.Held)
}

func TestAmbushCardGrabsForTossWinner(t *testing.T) {
	g, _, _ := newTestGame(t, 2)
	p1, p2 := g.Player(1), g.Player(2)
	mine := giveLand(p1, Rock, 1, 1, Pos{5, 7})
	theirs := giveLand(p2, Rock, 1, 3, Pos{5, 1})
	ambush := NewActionCard(Ambush)
	p1.AddToHand(ambush)

	require.NoError(t, p1.PlayActionCard(ambush))

	require.Equal(t, 3, mine.Held)
	require.Equal(t, 1, theirs.Held)
}

func TestCaravanTradesTwice(t *testing.T) {
	g, d1, _ := newTestGame(t)
	p := g.Player(1)
	wood := giveLand(p, Wood, 1, 2, Pos{5, 7})
	sheep := giveLand(p, Sheep, 2, 0, Pos{5, 9})
	d1.caravan = func(*Player) (*Landscape, *Landscape, bool) { return wood, sheep, wood.Held > 0 }
	caravan := NewActionCard(Caravan)
	p.AddToHand(caravan)

	require.NoError(t, p.PlayActionCard(caravan))

	require.Equal(t, 0, wood.Held)
	require.Equal(t, 2, sheep.Held)
}

func TestYieldDoublesNextToMill(t *testing.T) {
	g, _, _ := newTestGame(t)
	p := g.Player(1)
	grain := giveLand(p, Grain, 3, 0, Pos{5, 7})
	sheep := giveLand(p, Sheep, 3, 0, Pos{5, 9})
	gold := giveLand(p, Gold, 3, 0, Pos{7, 7})
	other := giveLand(p, Rock, 4, 0, Pos{9, 7})
	build(t, p, NewBuilding("mill", Cost{Brick: 1}, 0, 0, false), Pos{6, 7})

	g.Yield(3)
	require.Equal(t, 2, grain.Held)
	require.Equal(t, 1, sheep.Held)
	require.Equal(t, 1, gold.Held)
	require.Equal(t, 0, other.Held)

	g.Yield(3)
	require.Equal(t, 3, grain.Held)
	require.Equal(t, 2, sheep.Held)
}

func TestPlaqueSparesShieldedLand(t *testing.T) {
	g, _, _ := newTestGame(t)
	p := g.Player(1)
	open := giveLand(p, Wood, 1, 2, Pos{5, 7})
	shielded := giveLand(p, Wood, 2, 2, Pos{5, 9})
	empty := giveLand(p, Wood, 3, 0, Pos{9, 9})
	g.upgradeToTown(g.Board.Get(Pos{6, 8}).(*Settlement))
	build(t, p, NewBuilding("church", Cost{Rock: 1}, 1, 0, true), Pos{6, 9})

	g.plaque()

	require.Equal(t, 1, open.Held)
	require.Equal(t, 2, shielded.Held)
	require.Equal(t, 0, empty.Held)
}

func TestRichYearCountsWarehouses(t *testing.T) {
	g, _, _ := newTestGame(t)
	p := g.Player(1)
	left := giveLand(p, Brick, 1, 0, Pos{5, 7})
	middle := giveLand(p, Brick, 2, 0, Pos{7, 7})
	far := giveLand(p, Brick, 3, 0, Pos{5, 9})
	build(t, p, NewBuilding("warehouse", Cost{Brick: 1}, 0, 0, false), Pos{6, 7})
	build(t, p, NewBuilding("warehouse", Cost{Brick: 1}, 0, 0, false), Pos{8, 7})

	g.richYear()

	require.Equal(t, 1, left.Held)
	require.Equal(t, 2, middle.Held)
	require.Equal(t, 0, far.Held)
}

func TestConflictDiscardsFromWeakerHand(t *testing.T) {
	g, _, _ := newTestGame(t)
	p1, p2 := g.Player(1), g.Player(2)
	build(t, p1, NewKnight("walter", Cost{Rock: 1}, 3, 1), Pos{6, 7})
	a, b, c := NewFleet(Gold), NewFleet(Rock), NewActionCard(Spy)
	p2.AddToHand(a)
	p2.AddToHand(b)
	p2.AddToHand(c)

	g.conflict()

	require.Equal(t, []Playable{c}, p2.Hand)
	// discarded cards go under the shortest pile
	require.Equal(t, []Playable{a}, g.Piles[0])
	require.Equal(t, []Playable{b}, g.Piles[1])
}

func TestAmbushRollHitsExposedRichPlayer(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Config.Rules.AmbushKinds = ResourceCount
	p1, p2 := g.Player(1), g.Player(2)
	guarded := giveLand(p1, Rock, 1, 3, Pos{5, 7})
	exposed := []*Landscape{
		giveLand(p1, Sheep, 2, 3, Pos{5, 9}),
		giveLand(p1, Wood, 3, 3, Pos{9, 7}),
		giveLand(p1, Gold, 4, 2, Pos{9, 9}),
	}
	poor := giveLand(p2, Wood, 1, 3, Pos{5, 1})
	build(t, p1, NewBuilding("warehouse", Cost{Brick: 1}, 0, 0, false), Pos{6, 7})

	g.ResolveDiceEvent(AmbushRoll)

	require.Equal(t, 3, guarded.Held)
	for _, l := range exposed {
		require.Zero(t, l.Held)
	}
	require.Equal(t, 3, poor.Held)
}

func TestTournamentAndTradeProfit(t *testing.T) {
	g, _, _ := newTestGame(t)
	p1, p2 := g.Player(1), g.Player(2)
	mine := giveLand(p1, Grain, 1, 0, Pos{5, 7})
	theirs := giveLand(p2, Grain, 1, 2, Pos{5, 1})

	g.ResolveDiceEvent(TournamentRoll)
	require.Equal(t, 0, mine.Held)
	require.Equal(t, 2, theirs.Held)

	build(t, p1, NewKnight("franz", Cost{Rock: 1}, 1, 5), Pos{6, 7})
	g.ResolveDiceEvent(TournamentRoll)
	require.Equal(t, 1, mine.Held)

	build(t, p1, NewFleet(Grain), Pos{6, 9})
	g.ResolveDiceEvent(TradeProfitRoll)
	require.Equal(t, 2, mine.Held)
	require.Equal(t, 1, theirs.Held)
}

func TestRollEventUsesDieTable(t *testing.T) {
	g, _, _ := newTestGame(t, 1, 2, 3, 4, 5, 6)
	want := []DiceEvent{TournamentRoll, TradeProfitRoll, AmbushRoll, GoodHarvestRoll, GoodHarvestRoll, CardEventRoll}
	for _, ev := range want {
		require.Equal(t, ev, g.RollEvent())
	}
}

func TestDrawEventCycles(t *testing.T) {
	g, _, _ := newTestGame(t)
	a, b := NewEventCard(Advance), NewEventCard(Plaque)
	g.Events = []*EventCard{a, b}

	require.Same(t, a, g.DrawEvent())
	require.Same(t, b, g.DrawEvent())
	require.Same(t, a, g.DrawEvent())

	g.ResolveCardEvent(NewEventCard(NewYear))
	require.Len(t, g.Events, 2)
	require.Equal(t, 0, g.nextEvent)
}

func TestRefillHandDrawsAndBrowses(t *testing.T) {
	g, d1, _ := newTestGame(t)
	p := g.Player(1)
	giveLand(p, Sheep, 1, 2, Pos{5, 7})
	a, b, c, d := NewFleet(Gold), NewFleet(Rock), NewFleet(Wood), NewFleet(Sheep)
	g.Piles = [][]Playable{{a, b, c, d}, {}, {}, {}}
	d1.browse = true
	d1.selectChoice = func(*Player, int) int { return 2 }

	p.RefillHand()

	require.Equal(t, []Playable{c, a, b}, p.Hand)
	require.Equal(t, []Playable{d}, g.Piles[0])
	require.True(t, p.Resources().IsZero())
}

func TestRefillHandSwapsOneCard(t *testing.T) {
	g, d1, _ := newTestGame(t)
	p := g.Player(1)
	a, b, c, d := NewFleet(Gold), NewFleet(Rock), NewFleet(Wood), NewFleet(Sheep)
	p.AddToHand(a)
	p.AddToHand(b)
	p.AddToHand(c)
	g.Piles = [][]Playable{{d}, {}, {}, {}}
	d1.swap = true

	p.RefillHand()

	require.Equal(t, []Playable{b, c, d}, p.Hand)
	require.Equal(t, []Playable{a}, g.Piles[0])
}

func TestSettleHandSize(t *testing.T) {
	g, _, _ := newTestGame(t)
	p := g.Player(1)
	cards := []Playable{NewFleet(Gold), NewFleet(Rock), NewFleet(Wood), NewFleet(Sheep), NewFleet(Grain)}
	for _, c := range cards {
		p.AddToHand(c)
	}
	g.Piles = [][]Playable{{NewFleet(Brick)}, {}, {}, {}}

	p.SettleHandSize()

	require.Equal(t, cards[2:], p.Hand)
	require.Equal(t, []Playable{cards[0]}, g.Piles[1])
	require.Equal(t, []Playable{cards[1]}, g.Piles[2])
}

func TestAlchemistSetsYield(t *testing.T) {
	g, d1, _ := newTestGame(t, 3)
	p := g.Player(1)
	grain := giveLand(p, Grain, 5, 0, Pos{5, 7})
	p.AddToHand(NewActionCard(Alchemist))
	d1.yield = func(*Player) (int, bool) { return 5, true }

	g.dicePhase(p)

	require.Equal(t, 1, grain.Held)
	require.False(t, p.CardInHand("alchemist"))
	require.Equal(t, 1, d1.calls["ThrowDice"])
}

func TestPlayTurnDeclaresWinner(t *testing.T) {
	g, _, _ := newTestGame(t, 4, 1)
	g.Config.Rules.VictoryPoints = 3
	build(t, g.Player(1), NewFleet(Wood), Pos{6, 7})

	g.PlayTurn()

	require.Equal(t, 1, g.Winner())
	require.Equal(t, OverPhase, g.Phase)
	require.Panics(t, func() { g.PlayTurn() })
}

func TestPlayTurnPassesTurn(t *testing.T) {
	g, d1, _ := newTestGame(t, 3, 2)
	d1.moves = []Move{{Type: BuildPath}}

	g.PlayTurn()

	require.Equal(t, 2, g.Current)
	require.Equal(t, 1, g.Turn)
	require.Equal(t, NoPlayer, g.Winner())
	require.Equal(t, 2, d1.calls["ChooseAction"])
}

func TestSetupAndSeveralTurns(t *testing.T) {
	d1, d2 := newFake(), newFake()
	g := New(meta.Default(), d1, d2, WithSeed(3), WithDice(&FixedDice{Rolls: []int{4, 2, 6, 3, 1, 5, 3, 6, 2, 4}}))
	g.Setup()

	for _, p := range g.Players {
		require.Len(t, p.Hand, 3)
		require.Len(t, p.Lands, 6)
		require.Equal(t, 6, p.Resources().Total())
	}
	total := 0
	for _, pile := range g.Piles {
		total += len(pile)
	}
	require.Equal(t, 62-6, total)
	require.Len(t, g.Pool, 11)
	require.Equal(t, DicePhase, g.Phase)

	for i := 0; i < 30 && g.Winner() == NoPlayer; i++ {
		g.PlayTurn()
		requireSettlementsValid(t, g)
		for _, p := range g.Players {
			require.LessOrEqual(t, len(p.Hand), p.HandLimit())
			for _, l := range p.Lands {
				require.LessOrEqual(t, l.Held, g.Config.Rules.MaxLandResources)
				require.GreaterOrEqual(t, l.Held, 0)
			}
		}
	}
	require.Positive(t, g.Turn)
}

func TestMillLookup(t *testing.T) {
	g, _, _ := newTestGame(t)
	mill, ok := g.Mill(Rock)
	require.True(t, ok)
	require.Equal(t, "steel_mill", mill)
	_, ok = g.Mill(Gold)
	require.False(t, ok)

	cfg := meta.Default()
	cfg.Effects.Mills["silver"] = "silver_mill"
	require.Panics(t, func() { New(cfg, newFake(), newFake()) })
}
