package experiments

import (
	"fmt"
	"runtime"
	"sync"

	"settlers/engine"
	"settlers/experiments/metrics"
	"settlers/game"
	"settlers/meta"
	"settlers/player"

	"github.com/rs/zerolog/log"
)

type Options struct {
	Games   int
	Seed    uint64 // game i uses Seed+i
	Workers int    // defaults to GOMAXPROCS
	OutDir  string // no files are written when empty
}

type Summary struct {
	Games      int
	Wins       [2]int
	Unfinished int
	MeanTurns  float64
}

// Run plays computer-vs-computer games, alternating the starting player, and
// optionally stores the records as CSV under OutDir.
func Run(cfg *meta.Config, opts Options) ([]metrics.GameRecord, error) {
	if opts.Games <= 0 {
		return nil, fmt.Errorf("need at least one game, got %d", opts.Games)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, opts.Games)

	log.Info().Msgf("starting %d games on %d workers...", opts.Games, workers)

	records := make([]metrics.GameRecord, opts.Games)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				records[i] = runGame(cfg, i, opts.Seed+uint64(i))
			}
		}()
	}
	for i := 0; i < opts.Games; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	s := Summarize(records)
	log.Info().Int("games", s.Games).Ints("wins", s.Wins[:]).Int("unfinished", s.Unfinished).
		Float64("mean_turns", s.MeanTurns).Msg("completed simulation")

	if opts.OutDir == "" {
		return records, nil
	}
	writer, err := metrics.NewWriter(opts.OutDir)
	if err != nil {
		return records, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return records, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteEventCounts(records); err != nil {
		return records, fmt.Errorf("failed to write event counts: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored game records")
	return records, nil
}

func runGame(cfg *meta.Config, i int, seed uint64) metrics.GameRecord {
	e := engine.NewLocal(cfg, player.NewComputer(), player.NewComputer(),
		game.WithSeed(seed), game.WithStartingPlayer(i%2+1))
	winner, m := e.Run()
	log.Debug().Msgf("completed game %d with winner %d after %d turns", i+1, winner, m.Turns)
	return metrics.GameRecord{ID: i + 1, Seed: seed, GameMetric: m}
}

func Summarize(records []metrics.GameRecord) Summary {
	s := Summary{Games: len(records)}
	turns := 0
	for _, r := range records {
		turns += r.Turns
		if r.Winner == game.NoPlayer {
			s.Unfinished++
			continue
		}
		s.Wins[r.Winner-1]++
	}
	if len(records) > 0 {
		s.MeanTurns = float64(turns) / float64(len(records))
	}
	return s
}
