package game

import (
	"fmt"
	"sort"
	"time"

	"settlers/experiments/metrics"
	"settlers/meta"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

type Phase int

const (
	SetupPhase Phase = iota
	DicePhase
	ActionPhase
	RefillPhase
	OverPhase
)

var phaseNames = map[Phase]string{
	SetupPhase:  "setup",
	DicePhase:   "dice",
	ActionPhase: "action",
	RefillPhase: "refill",
	OverPhase:   "over",
}

func (p Phase) String() string {
	return phaseNames[p]
}

const (
	NoPlayer     = 0
	NoSettlement = -1
)

// Button indices on the button board.
const (
	OKButton = iota
	CancelButton
	EndTurnButton
	TradeButton
)

var buttonNames = []string{"ok", "cancel", "end_turn", "trade"}

type Option func(*Game)

// WithSeed makes shuffles and default dice reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

func WithDice(d Dice) Option {
	return func(g *Game) {
		g.dice = d
	}
}

func WithMessenger(m Messenger) Option {
	return func(g *Game) {
		g.messages = m
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(g *Game) {
		g.collector = c
	}
}

func WithStartingPlayer(id int) Option {
	return func(g *Game) {
		g.Current = id
	}
}

// Game owns the boards, the piles and both players of one match.
type Game struct {
	Config  *meta.Config
	Board   *Board
	Choice  *Board
	Buttons *Board
	Players [2]*Player
	Current int
	Phase   Phase
	Turn    int

	Piles     [][]Playable
	Pool      []*Landscape
	Events    []*EventCard
	nextEvent int

	settlements []*Settlement
	winner      int
	mills       map[Resource]string

	dice      Dice
	rng       *rand.Rand
	messages  Messenger
	logger    zerolog.Logger
	collector metrics.Collector
}

// New creates a match between two deciders. Player 1 uses d1. Call Setup before the first turn.
func New(cfg *meta.Config, d1, d2 Decider, opts ...Option) *Game {
	if cfg == nil {
		cfg = meta.Default()
	}
	g := &Game{
		Config:    cfg,
		Current:   1,
		messages:  nopMessenger{},
		logger:    zerolog.Nop(),
		collector: metrics.NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Current != 1 && g.Current != 2 {
		panic(fmt.Sprintf("invalid starting player %d", g.Current))
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if g.dice == nil {
		g.dice = NewDice(g.rng)
	}

	g.mills = make(map[Resource]string, len(cfg.Effects.Mills))
	for name, mill := range cfg.Effects.Mills {
		r, ok := ParseResource(name)
		if !ok || r == Gold {
			panic(fmt.Sprintf("mill %q configured for unknown resource %q", mill, name))
		}
		g.mills[r] = mill
	}

	g.Board = NewBoard(MainBoard, cfg.Board.Width, cfg.Board.Height)
	g.Choice = NewBoard(ChoiceBoard, cfg.Board.ChoiceSize, 1)
	g.Buttons = NewBoard(ButtonBoard, len(buttonNames), 1)
	buttons := make([]Card, len(buttonNames))
	for i, name := range buttonNames {
		buttons[i] = NewMarker(name)
	}
	g.Buttons.Fill(buttons)

	g.Players[0] = newPlayer(g, 1, d1)
	g.Players[1] = newPlayer(g, 2, d2)
	g.Piles = make([][]Playable, cfg.Board.PileCount)
	return g
}

func (g *Game) Player(id int) *Player {
	if id != 1 && id != 2 {
		panic(fmt.Sprintf("no player %d", id))
	}
	return g.Players[id-1]
}

func (g *Game) CurrentPlayer() *Player {
	return g.Player(g.Current)
}

func (g *Game) Opponent(p *Player) *Player {
	return g.Player(3 - p.ID)
}

// Winner returns the winning player id, or NoPlayer while the match is running.
func (g *Game) Winner() int {
	return g.winner
}

func (g *Game) Logger() *zerolog.Logger {
	return &g.logger
}

func (g *Game) Collector() metrics.Collector {
	return g.collector
}

// Mill names the building that doubles the yield of r, if any.
func (g *Game) Mill(r Resource) (string, bool) {
	mill, ok := g.mills[r]
	return mill, ok
}

func (g *Game) message(player int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	g.logger.Debug().Int("player", player).Msg(msg)
	g.messages.Print(player, msg)
}

func (g *Game) shuffle(n int, swap func(i, j int)) {
	g.rng.Shuffle(n, swap)
}

// Setup deals the piles, lays out both principalities and lets each player pick starting cards.
func (g *Game) Setup() {
	g.Phase = SetupPhase
	g.dealPiles(StandardPlayables())

	g.Events = StandardEvents()
	g.shuffleEvents()

	owned, pool := StandardLandscapes()
	g.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	g.Pool = pool

	g.layoutBoard()
	for _, p := range g.Players {
		g.placeStartingInfrastructure(p)
		for _, l := range owned[p.ID] {
			p.SetupInitialLand(l)
			p.Credit(l, g.Config.Rules.StartingLandResources)
		}
	}

	for _, p := range g.turnOrder() {
		p.arrangeInitialLand()
	}
	g.chooseStartingCards()

	g.collector.Start(g.Current)
	g.logger.Info().Int("player", g.Current).Msg("setup complete")
	g.Phase = DicePhase
}

func (g *Game) turnOrder() []*Player {
	p := g.CurrentPlayer()
	return []*Player{p, g.Opponent(p)}
}

func (g *Game) dealPiles(cards []Playable) {
	g.shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	g.Piles = make([][]Playable, g.Config.Board.PileCount)
	for i, c := range cards {
		k := i % len(g.Piles)
		g.Piles[k] = append(g.Piles[k], c)
	}
}

func (g *Game) shuffleEvents() {
	g.shuffle(len(g.Events), func(i, j int) { g.Events[i], g.Events[j] = g.Events[j], g.Events[i] })
	g.nextEvent = 0
}

// layoutBoard marks the settlement rows as empty and puts the deck backs on the pile row.
func (g *Game) layoutBoard() {
	for _, p := range g.Players {
		for x := 0; x < g.Board.Width; x++ {
			g.Board.Set(Pos{x, p.Mid.Y}, NewMarker(EmptyMarker))
		}
	}
	row := g.Config.Board.PileRow
	for i, name := range []string{EventMarker, LandMarker, PathMarker, VillageMarker, TownMarker} {
		g.Board.Set(Pos{i, row}, NewMarker(name))
	}
	for i := range g.Piles {
		g.Board.Set(g.PilePos(i), NewMarker(PileMarker))
	}
}

// PilePos returns the main-board square showing pile i.
func (g *Game) PilePos(i int) Pos {
	return Pos{g.Board.Width - len(g.Piles) + i, g.Config.Board.PileRow}
}

// PileAt returns the pile shown at pos, or -1.
func (g *Game) PileAt(pos Pos) int {
	if pos.Y != g.Config.Board.PileRow {
		return -1
	}
	i := pos.X - (g.Board.Width - len(g.Piles))
	if i < 0 || i >= len(g.Piles) {
		return -1
	}
	return i
}

func (g *Game) placeStartingInfrastructure(p *Player) {
	path := NewPath()
	g.placePath(p, path, p.Mid)
	g.placeSettlement(p, p.Mid.Left(1))
	g.placeSettlement(p, p.Mid.Right(1))
}

func (g *Game) chooseStartingCards() {
	taken := -1
	n := g.Config.Rules.StartingHandSize
	for _, p := range g.turnOrder() {
		pile := p.Decider.SelectPile(p, taken)
		g.checkPile(pile, taken)

		want := min(n, len(g.Piles[pile]))
		indices := p.Decider.PickStartingCards(p, pile, want)
		if len(indices) != want {
			panic(fmt.Sprintf("player %d picked %d starting cards, want %d", p.ID, len(indices), want))
		}
		seen := map[int]bool{}
		picked := make([]Playable, 0, want)
		for _, i := range indices {
			if i < 0 || i >= len(g.Piles[pile]) || seen[i] {
				panic(fmt.Sprintf("player %d picked invalid starting card index %d", p.ID, i))
			}
			seen[i] = true
			picked = append(picked, g.Piles[pile][i])
		}
		sorted := append([]int(nil), indices...)
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
		for _, i := range sorted {
			g.takeFromPile(pile, i)
		}
		for _, c := range picked {
			p.AddToHand(c)
		}
		g.logger.Debug().Int("player", p.ID).Int("pile", pile).Msg("starting cards picked")
		taken = pile
	}
}

func (g *Game) checkPile(pile, exclude int) {
	if pile < 0 || pile >= len(g.Piles) || pile == exclude || len(g.Piles[pile]) == 0 {
		panic(fmt.Sprintf("invalid pile %d (excluded %d)", pile, exclude))
	}
}

func (g *Game) takeFromPile(pile, i int) Playable {
	c := g.Piles[pile][i]
	g.Piles[pile] = append(g.Piles[pile][:i:i], g.Piles[pile][i+1:]...)
	g.Board.Refresh(g.PilePos(pile))
	return c
}

// returnToPile puts a card under a pile.
func (g *Game) returnToPile(pile int, c Playable) {
	g.Piles[pile] = append(g.Piles[pile], c)
	g.Board.Refresh(g.PilePos(pile))
}

// HasCards reports whether any pile still holds a card.
func (g *Game) HasCards() bool {
	for _, pile := range g.Piles {
		if len(pile) > 0 {
			return true
		}
	}
	return false
}

// ShowPile copies a pile onto the choice board for browsing.
func (g *Game) ShowPile(pile int) {
	cards := make([]Card, 0, len(g.Piles[pile]))
	for _, c := range g.Piles[pile] {
		cards = append(cards, c)
	}
	g.Choice.Fill(cards)
}

// ShowHand copies a hand onto the choice board, e.g. when a spy looks at it.
func (g *Game) ShowHand(p *Player) {
	cards := make([]Card, 0, len(p.Hand))
	for _, c := range p.Hand {
		cards = append(cards, c)
	}
	g.Choice.Fill(cards)
}

// PlayTurn runs the dice, action and refill phases for the current player, then
// checks for a winner and passes the turn.
func (g *Game) PlayTurn() {
	if g.Phase == OverPhase {
		panic("game is over")
	}
	p := g.CurrentPlayer()
	g.Turn++
	g.collector.AddTurn()
	g.logger.Debug().Int("turn", g.Turn).Int("player", p.ID).Msg("turn begins")

	g.Phase = DicePhase
	g.dicePhase(p)

	g.Phase = ActionPhase
	p.DoActions()

	g.Phase = RefillPhase
	p.RefillHand()
	for _, pl := range g.turnOrder() {
		pl.SettleHandSize()
	}

	if w := g.checkVictory(); w != NoPlayer {
		g.winner = w
		g.Phase = OverPhase
		g.logger.Info().Int("winner", w).Int("turn", g.Turn).Msg("game won")
		g.message(w, "player %d wins with %d points", w, g.Player(w).VictoryPoints())
		return
	}
	g.Current = g.Opponent(p).ID
}

func (g *Game) dicePhase(p *Player) {
	p.Decider.ThrowDice(p)
	g.ResolveDiceEvent(g.RollEvent())

	n := 0
	if p.actionInHand(Alchemist) != nil {
		if v, ok := p.Decider.SelectYieldNumber(p); ok {
			if v < 1 || v > 6 {
				panic(fmt.Sprintf("alchemist yield %d out of range", v))
			}
			p.RemoveActionCard(Alchemist)
			g.message(p.ID, "alchemist sets the yield to %d", v)
			n = v
		}
	}
	if n == 0 {
		n = g.dice.Roll()
	}
	g.Yield(n)
}

func (g *Game) checkVictory() int {
	for _, p := range g.turnOrder() {
		if p.VictoryPoints() >= g.Config.Rules.VictoryPoints {
			return p.ID
		}
	}
	return NoPlayer
}

// Points returns both players' victory points, player 1 first.
func (g *Game) Points() [2]int {
	return [2]int{g.Players[0].VictoryPoints(), g.Players[1].VictoryPoints()}
}
