// Command simulate plays rounds of rummy between the configured bots and
// prints how often each one won.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rummy/internal/app"
	"rummy/internal/config"
)

func main() {
	cfgPath := flag.String("config", "", "path to a game config JSON file")
	games := flag.Int("games", 100, "number of rounds to play")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for the first round")
	verbose := flag.Bool("verbose", false, "log every round event")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *cfgPath != "" {
		if err := config.LoadGameConfig(*cfgPath); err != nil {
			log.Fatal().Err(err).Str("path", *cfgPath).Msg("load config")
		}
	}
	if *games <= 0 {
		log.Fatal().Int("games", *games).Msg("games must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	res, err := app.Simulate(ctx, config.GetGameConfig(), *games, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	fmt.Printf("%d rounds in %v (seed %d)\n", res.Games, time.Since(start).Round(time.Millisecond), *seed)
	for _, id := range res.Leaders() {
		fmt.Printf("  %-16s %5d wins  %5.1f%%\n", id, res.Wins[id], 100*float64(res.Wins[id])/float64(res.Games))
	}
	fmt.Printf("  %-16s %5d\n", "unfinished", res.Unfinished)
	fmt.Printf("  average turns    %5.1f\n", res.AverageTurns())
}
