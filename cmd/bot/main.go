package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unseeyou/everything-bot/internal/catalog"
	"github.com/unseeyou/everything-bot/internal/config"
	"github.com/unseeyou/everything-bot/internal/concurrency"
	"github.com/unseeyou/everything-bot/internal/cooldown"
	"github.com/unseeyou/everything-bot/internal/database"
	"github.com/unseeyou/everything-bot/internal/database/postgres"
	"github.com/unseeyou/everything-bot/internal/discord"
	"github.com/unseeyou/everything-bot/internal/economy"
	"github.com/unseeyou/everything-bot/internal/logger"
	"github.com/unseeyou/everything-bot/internal/pet"
	"github.com/unseeyou/everything-bot/internal/progression"
	"github.com/unseeyou/everything-bot/internal/server"
	"github.com/unseeyou/everything-bot/internal/worker"
)

const (
	dbMaxConnections = 25
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	connString := cfg.GetDBConnString()

	if err := database.Migrate(ctx, connString); err != nil {
		return err
	}

	pool, err := database.NewPool(connString, dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	accountRepo := postgres.NewEconomyRepository(pool)
	petRepo := postgres.NewPetRepository(pool)
	progressionRepo := postgres.NewProgressionRepository(pool)

	shop, err := catalog.DefaultShop()
	if err != nil {
		return err
	}
	jobs, err := catalog.DefaultJobs()
	if err != nil {
		return err
	}

	economySvc := economy.NewService(accountRepo, shop, jobs)
	petSvc := pet.NewService(accountRepo, petRepo)
	progressionSvc := progression.NewService(progressionRepo, concurrency.NewGuard())

	cooldowns, err := cooldown.NewTracker(cooldown.DefaultCacheSize)
	if err != nil {
		return err
	}

	ready := make(chan struct{})
	interestWorker := worker.NewInterestWorker(accountRepo, cfg.InterestInterval, ready)
	interestWorker.Start(ctx)

	opsServer := server.NewServer(cfg.Port, pool)
	go func() {
		if err := opsServer.Start(); err != nil {
			slog.Error("Ops server stopped", "error", err)
		}
	}()

	bot, err := discord.New(discord.Config{
		Token:       cfg.DiscordToken,
		AppID:       cfg.DiscordAppID,
		Economy:     economySvc,
		Pets:        petSvc,
		Progression: progressionSvc,
		Cooldowns:   cooldowns,
		Shop:        shop,
		Jobs:        jobs,
	})
	if err != nil {
		return err
	}
	if err := bot.Start(); err != nil {
		return err
	}
	close(ready)

	slog.Info("Bot is running, press Ctrl+C to exit")
	<-ctx.Done()

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := bot.Stop(); err != nil {
		slog.Error("Failed to close gateway", "error", err)
	}
	if err := interestWorker.Shutdown(shutdownCtx); err != nil {
		slog.Error("Failed to stop interest worker", "error", err)
	}
	if err := opsServer.Stop(shutdownCtx); err != nil {
		slog.Error("Failed to stop ops server", "error", err)
	}
	return nil
}
