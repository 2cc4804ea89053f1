package main

import (
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/scrapnalyze/internal/config"
	"github.com/justsurfingit/scrapnalyze/internal/database"
	"github.com/justsurfingit/scrapnalyze/internal/handlers"
	"github.com/justsurfingit/scrapnalyze/internal/logger"
	"github.com/justsurfingit/scrapnalyze/internal/services"
	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Configuration (.env, optional YAML file, environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.Log.Level, cfg.Log.JSON)
	gin.SetMode(cfg.Server.Mode)

	// 2. Database Connection
	db, err := database.Connect(cfg.Database.DSN, cfg.Database.AutoMigrate)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)
	store := database.NewJobStore(db)

	// 3. Services
	jobService := services.NewJobService(store)
	autocompleteService := services.NewAutocompleteService(store)
	matcherService := services.NewMatcherService(store)
	tipsService := services.NewTipsService(cfg.Files.CareerTips)
	cvService := services.NewCVService(cfg.Files.CVOutputDir)

	// 4. Handlers & Router
	jobHandler := handlers.NewJobHandler(jobService, autocompleteService)
	careerHandler := handlers.NewCareerHandler(tipsService, cvService, matcherService)
	r := handlers.NewRouter(jobHandler, careerHandler, cfg.Server.CORSOrigins)

	log.Info().Str("addr", cfg.Addr()).Msg("Server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
