package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"mining-map-api/internal/geocode"
	"mining-map-api/internal/sheet"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the .xlsx/.csv license sheet")
	out := flag.String("out", "licenses.json", "Path of the JSON file to write")
	country := flag.String("country", sheet.DefaultCountry, "Country stamped on every record")
	seed := flag.Int64("seed", 0, "Seed for coordinate jitter (0 picks one from the clock)")
	verbose := flag.Bool("v", false, "Log every skipped row")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file flag is required")
		flag.Usage()
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	log.Info().Str("file", *file).Int64("seed", *seed).Msg("starting conversion")

	table, err := sheet.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read sheet")
	}

	resolver := geocode.NewResolver(geocode.DefaultTable(), rand.New(rand.NewSource(*seed)))
	result := sheet.NewConverter(resolver, sheet.WithCountry(*country)).Convert(table)

	if *verbose {
		for _, rowErr := range result.Errors {
			log.Warn().Int("row", rowErr.Row).Err(rowErr.Err).Msg("row skipped")
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create output file")
	}
	if err := sheet.WriteJSON(f, result.Records); err != nil {
		f.Close()
		log.Fatal().Err(err).Msg("cannot write records")
	}
	if err := f.Close(); err != nil {
		log.Fatal().Err(err).Msg("cannot write records")
	}

	summary := result.Summary()
	log.Info().
		Int("processed", summary.Processed).
		Int("geocoded", summary.Geocoded).
		Int("skipped", summary.Skipped).
		Str("out", *out).
		Msg("conversion finished")
}
