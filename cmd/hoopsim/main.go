package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/hoopsim/internal/common/clock"
	"github.com/KirkDiggler/hoopsim/internal/common/uuid"
	"github.com/KirkDiggler/hoopsim/internal/config"
	"github.com/KirkDiggler/hoopsim/internal/dice"
	"github.com/KirkDiggler/hoopsim/internal/logging"
	"github.com/KirkDiggler/hoopsim/internal/metrics"
	"github.com/KirkDiggler/hoopsim/internal/models"
	"github.com/KirkDiggler/hoopsim/internal/repositories/bracket"
	"github.com/KirkDiggler/hoopsim/internal/repositories/game"
	"github.com/KirkDiggler/hoopsim/internal/repositories/team"
	gameService "github.com/KirkDiggler/hoopsim/internal/services/game"
	playoffService "github.com/KirkDiggler/hoopsim/internal/services/playoff"
	seasonService "github.com/KirkDiggler/hoopsim/internal/services/season"
	"github.com/KirkDiggler/hoopsim/internal/sim"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Config{Level: cfg.LogLevel})
	slog.SetDefault(logger)

	if err := run(logger, cfg); err != nil {
		logger.Error("hoopsim failed", "error", err)
		os.Exit(1)
	}
}

// run wires the stores and services and plays the season
func run(logger *slog.Logger, cfg *config.Config) error {
	tunables, err := config.LoadTunables(cfg.TunablesPath)
	if err != nil {
		return fmt.Errorf("failed to load tunables: %w", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Initialize repositories
	gameRepo, err := game.NewRedis(&game.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create game repository: %w", err)
	}

	teamRepo, err := team.NewRedis(&team.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create team repository: %w", err)
	}

	bracketRepo, err := bracket.NewRedis(&bracket.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create bracket repository: %w", err)
	}

	simulator, err := sim.New(&tunables.Game)
	if err != nil {
		return fmt.Errorf("failed to create simulator: %w", err)
	}

	recorder := metrics.NewRecorder()
	metricsServer := serveMetrics(logger, cfg.MetricsAddr, recorder)

	// Initialize services
	gameSvc, err := gameService.New(&gameService.Config{
		GameRepo:      gameRepo,
		TeamRepo:      teamRepo,
		DiceRoller:    dice.New(&dice.Config{Seed: cfg.SimSeed}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Simulator:     simulator,
		Metrics:       recorder,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	seasonSvc, err := seasonService.New(&seasonService.Config{
		GameService: gameSvc,
		GameRepo:    gameRepo,
		TeamRepo:    teamRepo,
		Metrics:     recorder,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create season service: %w", err)
	}

	playoffSvc, err := playoffService.New(&playoffService.Config{
		BracketRepo:   bracketRepo,
		TeamRepo:      teamRepo,
		GameService:   gameSvc,
		SeasonService: seasonSvc,
		Metrics:       recorder,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create playoff service: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := playSeason(ctx, logger, cfg, seasonSvc, playoffSvc); err != nil {
		return err
	}

	// Keep /metrics up for scraping until interrupted
	if metricsServer != nil {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error stopping metrics server", "error", err)
		}
	}

	logger.Info("hoopsim has been shut down")
	return nil
}

// playSeason plays the stored regular season and then every playoff series
// that does not involve the user team
func playSeason(ctx context.Context, logger *slog.Logger, cfg *config.Config, seasonSvc seasonService.Service, playoffSvc playoffService.Service) error {
	season, err := seasonSvc.SimulateGames(ctx, &seasonService.SimulateGamesInput{
		SeasonID: cfg.SeasonID,
	})
	if err != nil {
		return err
	}
	logger.Info("regular season simulated",
		logging.FieldSeasonID, cfg.SeasonID,
		logging.FieldCount, season.Simulated,
		logging.FieldSkipped, season.Skipped,
	)

	_, err = playoffSvc.CreateBracket(ctx, &playoffService.CreateBracketInput{
		SeasonID: cfg.SeasonID,
	})
	switch {
	case errors.Is(err, playoffService.ErrBracketExists):
		logger.Info("resuming existing bracket", logging.FieldSeasonID, cfg.SeasonID)
	case errors.Is(err, playoffService.ErrNotEnoughTeams):
		logger.Warn("not enough teams for a bracket", logging.FieldSeasonID, cfg.SeasonID, "error", err)
		return nil
	case err != nil:
		return err
	}

	out, err := playoffSvc.SimulateNonUserSeries(ctx, &playoffService.SimulateNonUserSeriesInput{
		SeasonID:   cfg.SeasonID,
		UserTeamID: cfg.UserTeamID,
	})
	if err != nil {
		return err
	}

	logBracket(logger, out.Bracket)
	return nil
}

func logBracket(logger *slog.Logger, b *models.PlayoffBracket) {
	for _, round := range []models.Round{models.RoundPlayIn, models.RoundFirst, models.RoundConfSemis, models.RoundConfFinals, models.RoundFinals} {
		for _, series := range b.SeriesFor(round) {
			logger.Info("series",
				logging.FieldSeriesID, series.ID,
				logging.FieldRound, round,
				"higher", series.HigherSeedTeamID,
				"lower", series.LowerSeedTeamID,
				"wins", []int{series.HigherSeedWins, series.LowerSeedWins},
				"state", series.State(),
			)
		}
	}
	logger.Info("bracket state",
		logging.FieldSeasonID, b.SeasonID,
		logging.FieldRound, b.CurrentRound,
		"champion", b.ChampionID,
	)
}

func serveMetrics(logger *slog.Logger, addr string, recorder *metrics.Recorder) *http.Server {
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", recorder.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
	return server
}
