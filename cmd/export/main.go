package main

import (
	"flag"
	"log"
	"time"

	"beautydash/adapters/excel"
	"beautydash/domain/catalog"
	"beautydash/internal/config"
	"beautydash/internal/synth"

	"github.com/joho/godotenv"
)

// Generates a dataset and writes it to a spreadsheet, one sheet per table.
// Flags override the environment configuration.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var (
		out   = flag.String("out", appConfig.Export.OutputFile, "output .xlsx path")
		days  = flag.Int("days", appConfig.Generator.Days, "number of days to generate")
		seed  = flag.Int64("seed", appConfig.Generator.Seed, "rng seed (0 = seed from clock)")
		start = flag.String("start", "", "start date YYYY-MM-DD (default: from environment)")
	)
	flag.Parse()

	startDate := appConfig.Generator.StartDate
	if *start != "" {
		parsed, err := time.Parse("2006-01-02", *start)
		if err != nil {
			log.Fatalf("Invalid -start date: %v", err)
		}
		startDate = parsed
	}
	if *days != appConfig.Generator.Days && *start == "" {
		startDate = time.Now().UTC().AddDate(0, 0, -(*days - 1))
	}

	cfg := synth.DefaultConfig(startDate, *days)
	cfg.Seed = *seed
	if len(appConfig.Generator.Brands) > 0 {
		brands := make([]catalog.Brand, len(appConfig.Generator.Brands))
		for i, b := range appConfig.Generator.Brands {
			brands[i] = catalog.Brand(b)
		}
		cfg.Brands = brands
	}

	gen, err := synth.New(cfg)
	if err != nil {
		log.Fatalf("Failed to build generator: %v", err)
	}
	ds, err := gen.Generate()
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	if err := excel.NewExporter(*out).Write(ds); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	log.Printf("Wrote %s (%d sales, %d marketing, %d social, %d review rows)",
		*out, len(ds.Sales), len(ds.Marketing), len(ds.Social), len(ds.Reviews))
}
