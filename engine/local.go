package engine

import (
	"settlers/experiments/metrics"
	"settlers/game"
	"settlers/meta"

	"github.com/rs/zerolog/log"
)

// Local drives a match between two in-process deciders.
type Local struct {
	Game     *game.Game
	MaxTurns int
}

var _ Engine = (*Local)(nil)

// NewLocal creates the match. Options are applied after the engine's own collector,
// so WithCollector replaces it.
func NewLocal(cfg *meta.Config, d1, d2 game.Decider, opts ...game.Option) *Local {
	if cfg == nil {
		cfg = meta.Default()
	}
	opts = append([]game.Option{
		game.WithCollector(metrics.NewCollector()),
		game.WithLogger(log.Logger),
	}, opts...)

	maxTurns := cfg.Rules.MaxTurns
	if maxTurns <= 0 {
		maxTurns = meta.MAX_TURNS
	}
	return &Local{
		Game:     game.New(cfg, d1, d2, opts...),
		MaxTurns: maxTurns,
	}
}

// Run sets the game up and plays it out.
func (e *Local) Run() (int, metrics.GameMetric) {
	g := e.Game
	g.Setup()
	log.Info().Msgf("player %d is starting", g.Current)

	for g.Winner() == game.NoPlayer && g.Turn < e.MaxTurns {
		g.PlayTurn()
	}

	points := g.Points()
	if g.Winner() == game.NoPlayer {
		log.Info().Int("turns", g.Turn).Ints("points", points[:]).Msg("stopped at the turn limit")
	} else {
		log.Info().Int("winner", g.Winner()).Int("turns", g.Turn).Ints("points", points[:]).Msg("game over")
	}
	return g.Winner(), g.Collector().Complete(g.Winner(), points)
}
