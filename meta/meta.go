package meta

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MAX_TURNS bounds a match that never reaches the victory threshold.
const MAX_TURNS = 500

// Config holds every tunable rule constant of a match.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Supply   SupplyConfig   `yaml:"supply"`
	Rules    RulesConfig    `yaml:"rules"`
	Trade    TradeConfig    `yaml:"trade"`
	Effects  EffectsConfig  `yaml:"effects"`
	EventDie map[int]string `yaml:"event_die"`
}

type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Settlement row of each player, indexed by player id.
	Rows       map[int]int `yaml:"rows"`
	Middle     int         `yaml:"middle"`
	PileRow    int         `yaml:"pile_row"`
	PileCount  int         `yaml:"pile_count"`
	ChoiceSize int         `yaml:"choice_size"`
}

type SupplyConfig struct {
	Paths    int `yaml:"paths"`
	Villages int `yaml:"villages"`
	Towns    int `yaml:"towns"`
}

type RulesConfig struct {
	StartingHandSize      int `yaml:"starting_hand_size"`
	MaxLandResources      int `yaml:"max_land_resources"`
	StartingLandResources int `yaml:"starting_land_resources"`
	VictoryPoints         int `yaml:"victory_points"`
	MaxTurns              int `yaml:"max_turns"`
	TossThreshold         int `yaml:"toss_threshold"`
	DefendedTossThreshold int `yaml:"defended_toss_threshold"`
	AmbushThreshold       int `yaml:"ambush_threshold"`
	AmbushKinds           int `yaml:"ambush_kinds"`
	ConflictDiscards      int `yaml:"conflict_discards"`
}

type TradeConfig struct {
	BaseRate   int `yaml:"base_rate"`
	FleetRate  int `yaml:"fleet_rate"`
	MintRate   int `yaml:"mint_rate"`
	BrowseFee  int `yaml:"browse_fee"`
	BrowseDisc int `yaml:"browse_discounted_fee"`
}

// EffectsConfig names the buildings that trigger each passive rule.
type EffectsConfig struct {
	HandBuildings           []string          `yaml:"hand_buildings"`
	BrowseDiscountBuildings []string          `yaml:"browse_discount_buildings"`
	BattleBonusBuildings    []string          `yaml:"battle_bonus_buildings"`
	MintBuildings           []string          `yaml:"mint_buildings"`
	CivilWarProtection      []string          `yaml:"civil_war_protection"`
	PlagueProtection        []string          `yaml:"plague_protection"`
	AmbushProtection        []string          `yaml:"ambush_protection"`
	AdvanceBuildings        []string          `yaml:"advance_buildings"`
	Warehouses              []string          `yaml:"warehouses"`
	Mills                   map[string]string `yaml:"mills"`
	Defence                 map[string]string `yaml:"defence"`
}

// Default returns the standard two-player rule set.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads a YAML rule file, filling anything it leaves out with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

func (c *Config) ApplyDefaults() {
	setInt(&c.Board.Width, 15)
	setInt(&c.Board.Height, 11)
	if len(c.Board.Rows) == 0 {
		c.Board.Rows = map[int]int{1: 8, 2: 2}
	}
	setInt(&c.Board.Middle, 7)
	setInt(&c.Board.PileRow, 5)
	setInt(&c.Board.PileCount, 4)
	setInt(&c.Board.ChoiceSize, 20)

	setInt(&c.Supply.Paths, 7)
	setInt(&c.Supply.Villages, 5)
	setInt(&c.Supply.Towns, 7)

	setInt(&c.Rules.StartingHandSize, 3)
	setInt(&c.Rules.MaxLandResources, 3)
	setInt(&c.Rules.StartingLandResources, 1)
	setInt(&c.Rules.VictoryPoints, 7)
	setInt(&c.Rules.MaxTurns, MAX_TURNS)
	setInt(&c.Rules.TossThreshold, 5)
	setInt(&c.Rules.DefendedTossThreshold, 2)
	setInt(&c.Rules.AmbushThreshold, 7)
	setInt(&c.Rules.AmbushKinds, 2)
	setInt(&c.Rules.ConflictDiscards, 2)

	setInt(&c.Trade.BaseRate, 3)
	setInt(&c.Trade.FleetRate, 2)
	setInt(&c.Trade.MintRate, 1)
	setInt(&c.Trade.BrowseFee, 2)
	setInt(&c.Trade.BrowseDisc, 1)

	e := &c.Effects
	setNames(&e.HandBuildings, "library", "cloister")
	setNames(&e.BrowseDiscountBuildings, "town_hall")
	setNames(&e.BattleBonusBuildings, "smithy")
	setNames(&e.MintBuildings, "mint")
	setNames(&e.CivilWarProtection, "church")
	setNames(&e.PlagueProtection, "church", "aquaduct")
	setNames(&e.AmbushProtection, "warehouse")
	setNames(&e.AdvanceBuildings, "library", "town_hall", "cloister")
	setNames(&e.Warehouses, "warehouse")
	if len(e.Mills) == 0 {
		e.Mills = map[string]string{
			"grain": "mill",
			"brick": "brickyard",
			"rock":  "steel_mill",
			"sheep": "spinning_mill",
			"wood":  "sawmill",
		}
	}
	if len(e.Defence) == 0 {
		e.Defence = map[string]string{
			"arson":        "bishop",
			"ambush":       "bishop",
			"black_knight": "witch",
		}
	}

	if len(c.EventDie) == 0 {
		c.EventDie = map[int]string{
			1: "tournament",
			2: "trade_profit",
			3: "ambush",
			4: "good_harvest",
			5: "good_harvest",
			6: "card_event",
		}
	}
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setNames(v *[]string, def ...string) {
	if len(*v) == 0 {
		*v = def
	}
}
