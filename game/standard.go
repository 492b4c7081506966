package game

// The standard card catalog. Every call returns freshly minted cards.

var (
	PathCost    = Cost{Brick: 2, Wood: 1}
	VillageCost = Cost{Wood: 1, Sheep: 1, Brick: 1, Grain: 1}
	TownCost    = Cost{Rock: 3, Grain: 2}
)

type knightSpec struct {
	name               string
	cost               Cost
	battle, tournament int
}

var knightList = []knightSpec{
	{"konrad", Cost{Grain: 1, Rock: 1}, 2, 1},
	{"gustav", Cost{Grain: 2, Sheep: 2, Rock: 2}, 5, 2},
	{"otto", Cost{Rock: 2, Grain: 1, Sheep: 1}, 3, 2},
	{"siegfried", Cost{Rock: 1}, 1, 1},
	{"walter", Cost{Grain: 1, Sheep: 1, Rock: 1}, 3, 1},
	{"karel", Cost{Sheep: 3, Grain: 2, Rock: 2}, 7, 1},
	{"franz", Cost{Grain: 2, Rock: 2, Sheep: 1}, 1, 5},
	{"pipin", Cost{Grain: 1, Sheep: 1, Rock: 1}, 1, 3},
	{"hubert", Cost{Grain: 1, Rock: 1}, 1, 2},
}

type buildingSpec struct {
	name     string
	count    int
	cost     Cost
	vp, tp   int
	townOnly bool
}

var buildingList = []buildingSpec{
	{"warehouse", 3, Cost{Brick: 1, Wood: 1}, 0, 0, false},
	{"mill", 1, Cost{Brick: 1, Grain: 1}, 0, 0, false},
	{"sawmill", 1, Cost{Wood: 2}, 0, 0, false},
	{"brickyard", 1, Cost{Brick: 1, Rock: 1}, 0, 0, false},
	{"steel_mill", 1, Cost{Rock: 1, Wood: 1}, 0, 0, false},
	{"spinning_mill", 1, Cost{Brick: 1, Sheep: 1}, 0, 0, false},
	{"cloister", 2, Cost{Rock: 1, Brick: 1, Wood: 1}, 0, 0, false},
	{"smithy", 1, Cost{Rock: 2, Wood: 1}, 0, 0, false},
	{"spa", 2, Cost{Brick: 2, Rock: 1, Sheep: 1}, 1, 0, true},
	{"library", 2, Cost{Rock: 2, Brick: 1, Wood: 2}, 1, 0, true},
	{"colossus", 1, Cost{Rock: 3, Brick: 3, Grain: 3}, 2, 0, true},
	{"port", 1, Cost{Rock: 1, Brick: 1, Sheep: 1}, 0, 1, true},
	{"church", 2, Cost{Rock: 2, Brick: 1, Grain: 2}, 1, 0, true},
	{"market", 1, Cost{Sheep: 1, Grain: 1}, 0, 2, true},
	{"trade_office", 1, Cost{Sheep: 2, Grain: 1, Brick: 1}, 0, 3, true},
	{"trade_guild", 1, Cost{Sheep: 3, Brick: 2, Grain: 1}, 0, 4, true},
	{"mint", 1, Cost{Wood: 2, Brick: 2, Rock: 2}, 0, 1, true},
	{"town_hall", 2, Cost{Sheep: 2, Rock: 2, Brick: 1}, 1, 0, true},
	{"aquaduct", 2, Cost{Rock: 2, Brick: 2, Wood: 2}, 1, 0, true},
}

var actionList = []struct {
	kind  ActionKind
	count int
}{
	{Alchemist, 2}, {Bishop, 2}, {Arson, 2}, {Trader, 2}, {Caravan, 1},
	{Witch, 2}, {Scout, 2}, {Ambush, 1}, {BlackKnight, 3}, {Spy, 3},
}

var eventList = []struct {
	kind  EventKind
	count int
}{
	{Builder, 1}, {CivilWar, 1}, {RichYear, 2}, {Advance, 2},
	{NewYear, 1}, {Conflict, 1}, {Plaque, 2},
}

type landscapeSpec struct {
	resource Resource
	dice     int
	owner    int
}

// Tiles owned by NoPlayer go to the shuffled pool.
var landscapeList = []landscapeSpec{
	{Gold, 6, 1}, {Rock, 2, 1}, {Sheep, 3, 1}, {Wood, 4, 1}, {Brick, 5, 1}, {Grain, 1, 1},
	{Gold, 1, 2}, {Rock, 3, 2}, {Sheep, 4, 2}, {Wood, 5, 2}, {Brick, 6, 2}, {Grain, 2, 2},
	{Gold, 2, NoPlayer}, {Gold, 3, NoPlayer}, {Rock, 1, NoPlayer}, {Rock, 5, NoPlayer},
	{Sheep, 5, NoPlayer}, {Sheep, 6, NoPlayer}, {Wood, 1, NoPlayer}, {Wood, 6, NoPlayer},
	{Brick, 3, NoPlayer}, {Grain, 4, NoPlayer}, {Grain, 6, NoPlayer},
}

func NewKnight(name string, cost Cost, battle, tournament int) *Knight {
	return &Knight{Unit: newUnit(name, cost), Battle: battle, Tournament: tournament}
}

func NewFleet(r Resource) *Fleet {
	return &Fleet{Unit: newUnit("fleet_"+r.String(), Cost{Wood: 1, Sheep: 1}), Resource: r, TradePoints: 1}
}

func NewBuilding(name string, cost Cost, vp, tp int, townOnly bool) *Building {
	return &Building{Unit: newUnit(name, cost), VictoryPoints: vp, TradePoints: tp, TownOnly: townOnly}
}

func StandardKnights() []*Knight {
	out := make([]*Knight, 0, len(knightList))
	for _, k := range knightList {
		out = append(out, NewKnight(k.name, k.cost, k.battle, k.tournament))
	}
	return out
}

func StandardFleets() []*Fleet {
	out := make([]*Fleet, 0, ResourceCount)
	for _, r := range Resources {
		out = append(out, NewFleet(r))
	}
	return out
}

func StandardBuildings() []*Building {
	var out []*Building
	for _, b := range buildingList {
		for i := 0; i < b.count; i++ {
			out = append(out, NewBuilding(b.name, b.cost, b.vp, b.tp, b.townOnly))
		}
	}
	return out
}

func StandardActions() []*ActionCard {
	var out []*ActionCard
	for _, a := range actionList {
		for i := 0; i < a.count; i++ {
			out = append(out, NewActionCard(a.kind))
		}
	}
	return out
}

// StandardPlayables returns the full pile deck in catalog order.
func StandardPlayables() []Playable {
	var out []Playable
	for _, k := range StandardKnights() {
		out = append(out, k)
	}
	for _, f := range StandardFleets() {
		out = append(out, f)
	}
	for _, b := range StandardBuildings() {
		out = append(out, b)
	}
	for _, a := range StandardActions() {
		out = append(out, a)
	}
	return out
}

func StandardEvents() []*EventCard {
	var out []*EventCard
	for _, e := range eventList {
		for i := 0; i < e.count; i++ {
			out = append(out, NewEventCard(e.kind))
		}
	}
	return out
}

// StandardLandscapes returns each player's starting tiles and the pool tiles.
func StandardLandscapes() (owned map[int][]*Landscape, pool []*Landscape) {
	owned = map[int][]*Landscape{}
	for _, l := range landscapeList {
		card := NewLandscape(l.resource, l.dice)
		if l.owner == NoPlayer {
			pool = append(pool, card)
			continue
		}
		owned[l.owner] = append(owned[l.owner], card)
	}
	return owned, pool
}
