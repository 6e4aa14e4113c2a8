package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"place-distance/internal/calculator"
	"place-distance/internal/config"
	"place-distance/internal/loader"
	"place-distance/internal/models"
	"place-distance/internal/report"
	"place-distance/internal/sampler"
	"place-distance/internal/server"
)

func main() {
	cfg := config.Load()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	args := os.Args[1:]

	switch {
	case len(args) == 0:
		points, err := loader.ReadCSV(cfg.PlacesFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not load places")
		}
		if len(points) < 2 {
			fmt.Fprintf(os.Stderr, "The places file needs at least 2 places, got %d.\n", len(points))
			os.Exit(1)
		}
		run(logger, points)

	case len(args) == 1 && args[0] == "serve":
		logger.Info().Str("addr", cfg.HTTP.Addr).Msg("starting server")
		if err := server.New(cfg, logger).Run(); err != nil {
			logger.Fatal().Err(err).Msg("server stopped")
		}

	case len(args) == 1:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "The provided argument is not a whole number. Please try again.")
			os.Exit(1)
		}
		if n < 2 {
			fmt.Fprintln(os.Stderr, "The provided whole number has to be at least 2. Please try again.")
			os.Exit(1)
		}

		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		points := sampler.New(rand.New(
			rand.NewSource(seed),
		)).Generate(n)
		run(logger, points)

	default:
		fmt.Fprintln(os.Stderr, "Too many arguments provided. Please provide 0 or 1 argument.")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger, points []models.Point) {
	records := calculator.Pairwise(points, nil)
	summary, err := calculator.Summarize(records)
	if err != nil {
		logger.Fatal().Err(err).Msg("summary failed")
	}
	report.Print(os.Stdout, records, summary)
}
