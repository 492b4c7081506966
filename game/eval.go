package game

import (
	"slices"

	"settlers/utils"
)

// Derived strengths and scoring of a player's principality.

func (p *Player) countBuildings(names []string) int {
	return utils.Count(p.Buildings, func(b *Building) bool { return slices.Contains(names, b.Name()) })
}

func (p *Player) HasBuilding(name string) bool {
	return p.countBuildings([]string{name}) > 0
}

func (p *Player) TradeStrength() int {
	s := 0
	for _, f := range p.Fleets {
		s += f.TradePoints
	}
	for _, b := range p.Buildings {
		s += b.TradePoints
	}
	return s
}

// BattleStrength adds one per knight when a battle-bonus building stands.
func (p *Player) BattleStrength() int {
	s := 0
	for _, k := range p.Knights {
		s += k.Battle
	}
	if p.countBuildings(p.game.Config.Effects.BattleBonusBuildings) > 0 {
		s += len(p.Knights)
	}
	return s
}

func (p *Player) TournamentStrength() int {
	s := 0
	for _, k := range p.Knights {
		s += k.Tournament
	}
	return s
}

// VictoryPoints counts settlements, building points and the trade and strength advantages.
func (p *Player) VictoryPoints() int {
	vp := 0
	for _, i := range p.Settlements {
		if p.game.Settlement(i).Kind == Town {
			vp += 2
		} else {
			vp++
		}
	}
	for _, b := range p.Buildings {
		vp += b.VictoryPoints
	}
	o := p.Opponent()
	if p.TradeStrength() > o.TradeStrength() {
		vp++
	}
	if p.BattleStrength() > o.BattleStrength() {
		vp++
	}
	return vp
}

func (p *Player) HandLimit() int {
	return p.game.Config.Rules.StartingHandSize + p.countBuildings(p.game.Config.Effects.HandBuildings)
}

func (p *Player) HasBrowseDiscount() bool {
	return p.countBuildings(p.game.Config.Effects.BrowseDiscountBuildings) > 0
}

func (p *Player) BrowseFee() int {
	if p.HasBrowseDiscount() {
		return p.game.Config.Trade.BrowseDisc
	}
	return p.game.Config.Trade.BrowseFee
}

// TradeRate is how many units of r buy one unit of another resource.
func (p *Player) TradeRate(r Resource) int {
	cfg := p.game.Config.Trade
	rate := cfg.BaseRate
	for _, f := range p.Fleets {
		if f.Resource == r {
			rate = min(rate, cfg.FleetRate)
		}
	}
	if r == Gold && p.countBuildings(p.game.Config.Effects.MintBuildings) > 0 {
		rate = min(rate, cfg.MintRate)
	}
	return rate
}
