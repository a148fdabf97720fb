package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/flipdeck/internal/api"
	"github.com/vytor/flipdeck/internal/config"
	"github.com/vytor/flipdeck/internal/db"
	"github.com/vytor/flipdeck/internal/deck"
	"github.com/vytor/flipdeck/internal/logger"
	"github.com/vytor/flipdeck/internal/repository/sqldb"
	"github.com/vytor/flipdeck/internal/services"
	"github.com/vytor/flipdeck/internal/session"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Flipdeck Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_driver=%s", cfg.DBDriver)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("deck_path=%s", cfg.DeckPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("session_size=%d", cfg.SessionSize)
	log.Debug("flip_delay=%s", cfg.FlipDelay)
	log.Debug("flip_animation=%s", cfg.FlipAnimation)
	log.Debug("session_ttl=%s", cfg.SessionTTL)
	log.Debug("session_sweep_interval=%s", cfg.SessionSweepInterval)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open database
	database, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DSN())
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	repo := sqldb.NewDeckRepository(database.DB, database.Driver)

	// Seed and load the deck
	source := deck.Default()
	if cfg.DeckPath != "" {
		log.Debug("reading deck from %s", cfg.DeckPath)
		source, err = deck.LoadFile(cfg.DeckPath)
		if err != nil {
			log.Error("failed to read deck: %v", err)
			os.Exit(1)
		}
	}
	if _, err := deck.Seed(ctx, repo, source); err != nil {
		log.Error("failed to seed deck: %v", err)
		os.Exit(1)
	}
	cards, err := deck.Load(ctx, repo)
	if err != nil {
		log.Error("failed to load deck: %v", err)
		os.Exit(1)
	}
	log.Info("deck loaded: %d cards", len(cards))

	// Load templates
	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates()
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}
	log.Debug("templates loaded successfully")

	sessions := session.NewManager(cards, session.Config{
		SessionSize: cfg.SessionSize,
		FlipDelay:   cfg.FlipDelay,
		TTL:         cfg.SessionTTL,
		Logger:      log,
	})
	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		sessions.Run(ctx, cfg.SessionSweepInterval)
	}()

	srv := &api.Server{
		DeckService:    services.NewDeckService(repo),
		Sessions:       sessions,
		Templates:      tmpl,
		DB:             database,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		FlipAnimation:  cfg.FlipAnimation,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Event streams hold their connections until the base context ends.
	httpServer.RegisterOnShutdown(cancel)

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping session sweeper")
	cancel()
	<-sweeperDone

	log.Info("===========================================")
	log.Info("Flipdeck Server Stopped")
	log.Info("===========================================")
}
