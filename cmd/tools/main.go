package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"mining-map-api/internal/config"
	"mining-map-api/internal/migrate"
	"mining-map-api/internal/sheet"
	"mining-map-api/internal/staging"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// Sub-commands
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	os.Args = os.Args[1:] // Shift args for flag parsing

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	ctx := context.Background()

	switch cmd {
	case "load":
		loadRecords(ctx, cfg)
	case "migrate":
		migrateRecords(ctx, cfg)
	case "clean-commodities":
		cleanCommodities(ctx, cfg)
	case "commodities":
		commodities(ctx, cfg)
	case "regions":
		regions(ctx, cfg)
	case "missing-coords":
		missingCoords(ctx, cfg)
	case "find":
		findIDs(ctx, cfg)
	case "districts":
		districts(ctx, cfg)
	case "sa-districts":
		saDistricts(ctx, cfg)
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: tools <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  load               Replace the staging database with an importer JSON file")
	fmt.Println("  migrate            Copy staged licenses into PostgreSQL")
	fmt.Println("  clean-commodities  Rewrite commodity values to canonical names")
	fmt.Println("  commodities        Commodity frequencies, or search with -q")
	fmt.Println("  regions            Region frequencies for a country")
	fmt.Println("  missing-coords     Count records without coordinates")
	fmt.Println("  find               Look up license ids containing -q")
	fmt.Println("  districts          Resolve staged regions to district names")
	fmt.Println("  sa-districts       Leading region segments for South Africa")
}

func openStaging(path string) *staging.DB {
	db, err := staging.New(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to open staging database")
	}
	return db
}

func loadRecords(ctx context.Context, cfg config.Config) {
	in := flag.String("file", "licenses.json", "Importer JSON output")
	dbPath := flag.String("db", cfg.StagingDBPath, "Staging database path")
	sample := flag.Int("sample", 5, "Rows to print after loading")
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open records")
	}
	records, err := sheet.ReadJSON(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot decode records")
	}

	db := openStaging(*dbPath)
	defer db.Close()

	res, err := db.Replace(ctx, records)
	if err != nil {
		log.Fatal().Err(err).Msg("load failed")
	}
	log.Info().Int("inserted", res.Inserted).Int("failed", res.Failed).Str("db", *dbPath).Msg("staging database loaded")

	rows, err := db.Sample(ctx, *sample)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read sample")
	}
	for _, r := range rows {
		fmt.Printf("%-20s %-30s %-25s %s\n", r.ID, r.Company, r.Region, r.MatchedLocation)
	}
}

func migrateRecords(ctx context.Context, cfg config.Config) {
	dbPath := flag.String("db", cfg.StagingDBPath, "Staging database path")
	dsn := flag.String("dsn", cfg.DBSource, "PostgreSQL connection string")
	flag.Parse()

	src := openStaging(*dbPath)
	defer src.Close()

	dst, err := migrate.Open(ctx, *dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open server database")
	}
	defer dst.Close()

	res, err := migrate.Run(ctx, src, dst)
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().
		Int("read", res.Read).
		Int("inserted", res.Inserted).
		Int("existing", res.Existing).
		Int("failed", res.Failed).
		Msg("migration finished")
}

func cleanCommodities(ctx context.Context, cfg config.Config) {
	dbPath := flag.String("db", cfg.StagingDBPath, "Staging database path")
	flag.Parse()

	db := openStaging(*dbPath)
	defer db.Close()

	n, err := db.NormalizeCommodities(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("normalization failed")
	}
	log.Info().Int("updated", n).Msg("commodities normalized")
}

func commodities(ctx context.Context, cfg config.Config) {
	dbPath := flag.String("db", cfg.StagingDBPath, "Staging database path")
	query := flag.String("q", "", "Only show values containing this text")
	limit := flag.Int("limit", 50, "Maximum rows")
	flag.Parse()

	db := openStaging(*dbPath)
	defer db.Close()

	var (
		counts []staging.ValueCount
		err    error
	)
	if *query != "" {
		counts, err = db.SearchCommodity(ctx, *query)
	} else {
		counts, err = db.CommodityCounts(ctx, *limit)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("query failed")
	}
	printCounts(counts)
}

func regions(ctx context.Context, cfg config.Config) {
	dbPath := flag.String("db", cfg.StagingDBPath, "Staging database path")
	country := flag.String("country", cfg.DefaultCountry, "Country to report")
	limit := flag.Int("limit", 50, "Maximum rows")
	flag.Parse()

	db := openStaging(*dbPath)
	defer db.Close()

	counts, err := db.RegionCounts(ctx, *country, *limit)
	if err != nil {
		log.Fatal().Err(err).Msg("query failed")
	}
	printCounts(counts)
}

func missingCoords(ctx context.Context, cfg config.Config) {
	dbPath := flag.String("db", cfg.StagingDBPath, "Staging database path")
	country := flag.String("country", cfg.DefaultCountry, "Country to check")
	flag.Parse()

	db := openStaging(*dbPath)
	defer db.Close()

	n, err := db.MissingCoordinates(ctx, *country)
	if err != nil {
		log.Fatal().Err(err).Msg("query failed")
	}
	total, err := db.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("query failed")
	}
	fmt.Printf("%s: %d records without coordinates (%d staged in total)\n", *country, n, total)
}

func findIDs(ctx context.Context, cfg config.Config) {
	dbPath := flag.String("db", cfg.StagingDBPath, "Staging database path")
	query := flag.String("q", "", "Text the license id must contain")
	flag.Parse()

	if *query == "" {
		log.Fatal().Msg("-q is required")
	}

	db := openStaging(*dbPath)
	defer db.Close()

	ids, err := db.FindIDs(ctx, *query)
	if err != nil {
		log.Fatal().Err(err).Msg("query failed")
	}
	printLines(ids)
}

func districts(ctx context.Context, cfg config.Config) {
	dbPath := flag.String("db", cfg.StagingDBPath, "Staging database path")
	flag.Parse()

	db := openStaging(*dbPath)
	defer db.Close()

	names, err := db.Districts(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("query failed")
	}
	printLines(names)
}

func saDistricts(ctx context.Context, cfg config.Config) {
	dbPath := flag.String("db", cfg.StagingDBPath, "Staging database path")
	flag.Parse()

	db := openStaging(*dbPath)
	defer db.Close()

	names, err := db.LeadingSegments(ctx, "South Africa")
	if err != nil {
		log.Fatal().Err(err).Msg("query failed")
	}
	printLines(names)
}

func printCounts(counts []staging.ValueCount) {
	for _, c := range counts {
		fmt.Printf("%6d  %s\n", c.Count, c.Value)
	}
}

func printLines(lines []string) {
	for _, l := range lines {
		fmt.Println(l)
	}
	fmt.Printf("(%d)\n", len(lines))
}
