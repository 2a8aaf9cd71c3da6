package main

import (
	"log"

	"beautydash/domain/catalog"
	"beautydash/internal/config"
	"beautydash/internal/synth"
	"beautydash/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if present (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	genConfig := buildGeneratorConfig(appConfig)
	server, err := ui.NewServer(genConfig, appConfig.Server.GinMode)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	if err := server.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// buildGeneratorConfig maps the env-level configuration onto a synthesis run
func buildGeneratorConfig(appConfig *config.Config) synth.Config {
	genConfig := synth.DefaultConfig(appConfig.Generator.StartDate, appConfig.Generator.Days)
	genConfig.Seed = appConfig.Generator.Seed
	if len(appConfig.Generator.Brands) > 0 {
		brands := make([]catalog.Brand, len(appConfig.Generator.Brands))
		for i, b := range appConfig.Generator.Brands {
			brands[i] = catalog.Brand(b)
		}
		genConfig.Brands = brands
	}
	return genConfig
}
