package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"settlers/engine"
	"settlers/experiments"
	"settlers/game"
	"settlers/meta"
	"settlers/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "simulate", "play against the computer or simulate computer games (play|simulate)")
	configPath := flag.String("config", "", "YAML rules file; defaults apply when empty")
	seed := flag.Uint64("seed", 0, "random seed; 0 picks one from the clock")
	games := flag.Int("games", 100, "number of simulated games")
	workers := flag.Int("workers", 0, "parallel simulated games; 0 uses every CPU")
	out := flag.String("out", "", "directory for simulation CSV files")
	human := flag.Int("human", 1, "seat of the human player in play mode (1 or 2)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg := meta.Default()
	if *configPath != "" {
		var err error
		cfg, err = meta.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Info().Uint64("seed", *seed).Str("mode", *mode).Msg("starting")

	switch *mode {
	case "play":
		if err := play(cfg, *seed, *human); err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
	case "simulate":
		opts := experiments.Options{Games: *games, Seed: *seed, Workers: *workers, OutDir: *out}
		if _, err := experiments.Run(cfg, opts); err != nil {
			log.Fatal().Err(err).Msg("simulation failed")
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		flag.Usage()
		os.Exit(2)
	}
}

// play runs one game between the console and the computer.
func play(cfg *meta.Config, seed uint64, seat int) (err error) {
	if seat != 1 && seat != 2 {
		return fmt.Errorf("human seat must be 1 or 2, got %d", seat)
	}
	console := player.NewConsole(os.Stdin, os.Stdout)
	deciders := [2]game.Decider{player.NewComputer(), player.NewComputer()}
	deciders[seat-1] = player.NewHuman(console)

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, player.ErrInputClosed) {
				err = e
				return
			}
			panic(r)
		}
	}()

	e := engine.NewLocal(cfg, deciders[0], deciders[1], game.WithSeed(seed), game.WithMessenger(console))
	winner, m := e.Run()
	if winner == game.NoPlayer {
		fmt.Printf("no winner after %d turns, points %v\n", m.Turns, m.Points)
		return nil
	}
	fmt.Printf("player %d wins after %d turns, points %v\n", winner, m.Turns, m.Points)
	return nil
}
