package engine

import "settlers/experiments/metrics"

// Engine runs one match.
type Engine interface {
	// Run plays turns until a player wins or the turn limit is reached.
	// The winner is game.NoPlayer when the limit was hit.
	Run() (winner int, gameMetric metrics.GameMetric)
}
