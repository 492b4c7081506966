package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"settlers/experiments/metrics"
	"settlers/meta"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAlternatesStartingPlayer(t *testing.T) {
	cfg := meta.Default()
	cfg.Rules.MaxTurns = 60
	out := t.TempDir()

	records, err := Run(cfg, Options{Games: 4, Seed: 100, Workers: 2, OutDir: out})
	require.NoError(t, err)
	require.Len(t, records, 4)
	for i, r := range records {
		assert.Equal(t, i+1, r.ID)
		assert.Equal(t, uint64(100+i), r.Seed)
		assert.Equal(t, i%2+1, r.StartingPlayer)
		assert.LessOrEqual(t, r.Turns, 60)
	}

	dirs, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, dirs, 1)
	for _, name := range []string{"game_records.csv", "event_counts.csv"} {
		assert.FileExists(t, filepath.Join(out, dirs[0].Name(), name))
	}
}

func TestRunRejectsNoGames(t *testing.T) {
	_, err := Run(meta.Default(), Options{})
	require.Error(t, err)
}

func TestSummarize(t *testing.T) {
	records := []metrics.GameRecord{
		{GameMetric: metrics.GameMetric{Winner: 1, Turns: 30}},
		{GameMetric: metrics.GameMetric{Winner: 2, Turns: 50}},
		{GameMetric: metrics.GameMetric{Winner: 1, Turns: 40}},
		{GameMetric: metrics.GameMetric{Winner: 0, Turns: 500}},
	}

	s := Summarize(records)
	assert.Equal(t, 4, s.Games)
	assert.Equal(t, [2]int{2, 1}, s.Wins)
	assert.Equal(t, 1, s.Unfinished)
	assert.InDelta(t, 155.0, s.MeanTurns, 1e-9)
}
