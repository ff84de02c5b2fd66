package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"brewbot/bot"
	"brewbot/repositories"
	"brewbot/runtime"
	"brewbot/runtime/workers"
	"brewbot/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the process lifecycle, and
// centralizes error reporting, so deferred cleanups (database close)
// always execute on the way out.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Transport
	api, err := tgbotapi.NewBotAPI(config.BotToken)
	if err != nil {
		return fmt.Errorf("telegram login failed: %w", err)
	}
	log.Info("Logged in", "bot", api.Self.UserName)

	// 4. Core wiring
	clock := runtime.NewTickerClock()
	participantRepo := repositories.NewParticipantRepository(db, log)
	historyRepo := repositories.NewHistoryRepository(db, log)

	manager := runtime.NewRoundManager(log, clock, config.BrewTimeout, config.TickInterval, config.GuestLimit)
	notifier := bot.NewNotifier(api, config.ChatID)

	rankService := services.NewRankService(log, participantRepo, historyRepo, clock, config.RankWindow)
	roundService := services.NewRoundService(log, manager, participantRepo, historyRepo, notifier, rankService, clock)
	participantService := services.NewParticipantService(log, participantRepo)

	brewbot := bot.New(log, api, config.ChatID, config.BotName, config.BeverageName,
		config.RankWindow, clock, participantService, roundService, rankService)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Supervised workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(brewbot).
		Add(workers.NewRankRefreshWorker(log, rankService, config.RankRefreshInterval)).
		Add(workers.NewHealthWorker(log, config.HealthInterval))

	sup.Run(ctx)
	log.Info("Program stopped cleanly")

	return nil
}
