package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/journalup/journal-up/internal/ai"
	"github.com/journalup/journal-up/internal/config"
	"github.com/journalup/journal-up/internal/database"
	"github.com/journalup/journal-up/internal/handler"
	"github.com/journalup/journal-up/internal/middleware"
	"github.com/journalup/journal-up/internal/queue"
	"github.com/journalup/journal-up/internal/repository"
	"github.com/journalup/journal-up/internal/router"
	"github.com/journalup/journal-up/internal/service"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database open: %v", err)
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migrate: %v", err)
	}

	// repositories
	users := repository.NewUserRepo(db)
	sessions := repository.NewSessionRepo(db, cfg.SessionTTLDays)
	metrics := repository.NewMetricsRepo(db)
	journals := repository.NewJournalRepo(db)
	settings := repository.NewSettingsRepo(db)
	userInfo := repository.NewUserInfoRepo(db)

	// AI provider: real client when a key is configured, disabled otherwise
	var aiClient ai.Client = ai.Disabled{}
	if cfg.AnthropicAPIKey != "" {
		aiClient = ai.NewClaudeClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	} else {
		log.Println("no AI provider configured; insights fall back to local analysis")
	}

	// services
	authSvc := &service.AuthService{
		Users:          users,
		Sessions:       sessions,
		JWTSecret:      cfg.JWTSecret,
		TokenTTLDays:   cfg.TokenTTLDays,
		BcryptCost:     cfg.BcryptCost,
		PasswordMinLen: cfg.PasswordMinLen,
	}
	metricsSvc := &service.MetricsService{Metrics: metrics, AI: aiClient}
	journalSvc := &service.JournalService{Journals: journals, Publish: queue.PublishEntryCreated}

	// background consumer scores new entries as they are written
	go func() {
		if err := queue.StartEntryConsumer(ai.LexiconAnalyzer{}); err != nil {
			log.Printf("entry consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(middleware.Instrument())
	e.Use(middleware.Auth(cfg.JWTSecret, authSvc))
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), config.NewRedisClient()))

	router.Register(e, db, router.Handlers{
		Auth:     handler.NewAuthHandler(authSvc),
		Metrics:  handler.NewMetricsHandler(metricsSvc),
		Journals: handler.NewJournalHandler(journalSvc),
		Settings: handler.NewSettingsHandler(settings),
		UserInfo: handler.NewUserInfoHandler(userInfo),
		AI:       handler.NewAIHandler(aiClient),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
