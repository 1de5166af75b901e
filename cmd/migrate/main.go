package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/ricebowl-app/backend/config"
	"github.com/ricebowl-app/backend/internal/database"
)

func main() {
	seed := flag.Bool("seed", true, "Seed the recipe catalog after migrating")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("schema migrated")

	if *seed {
		if err := database.SeedRecipes(db); err != nil {
			log.Fatal().Err(err).Msg("catalog seed failed")
		}
	}
}
