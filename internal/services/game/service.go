package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/hoopsim/internal/common/clock"
	"github.com/KirkDiggler/hoopsim/internal/common/uuid"
	"github.com/KirkDiggler/hoopsim/internal/dice"
	"github.com/KirkDiggler/hoopsim/internal/logging"
	"github.com/KirkDiggler/hoopsim/internal/metrics"
	"github.com/KirkDiggler/hoopsim/internal/models"
	gameRepo "github.com/KirkDiggler/hoopsim/internal/repositories/game"
	teamRepo "github.com/KirkDiggler/hoopsim/internal/repositories/team"
	"github.com/KirkDiggler/hoopsim/internal/sim"
)

// service implements the Service interface
type service struct {
	gameRepo      gameRepo.Repository
	teamRepo      teamRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	simulator     *sim.Simulator
	metrics       *metrics.Recorder
	logger        *slog.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.TeamRepo == nil {
		return nil, ErrNilTeamRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	simulator := cfg.Simulator
	if simulator == nil {
		var err error
		simulator, err = sim.New(nil)
		if err != nil {
			return nil, err
		}
	}

	return &service{
		gameRepo:      cfg.GameRepo,
		teamRepo:      cfg.TeamRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		simulator:     simulator,
		metrics:       cfg.Metrics,
		logger:        logging.OrDefault(cfg.Logger),
	}, nil
}

// ScheduleGame stores an unplayed game between two teams
func (s *service) ScheduleGame(ctx context.Context, input *ScheduleGameInput) (*ScheduleGameOutput, error) {
	if input == nil || input.SeasonID == "" || input.HomeTeamID == "" || input.AwayTeamID == "" {
		return nil, ErrInvalidInput
	}

	if input.HomeTeamID == input.AwayTeamID {
		return nil, ErrSameTeam
	}

	// Both teams must exist before anything is stored
	for _, teamID := range []string{input.HomeTeamID, input.AwayTeamID} {
		if _, err := s.getTeam(ctx, teamID); err != nil {
			return nil, err
		}
	}

	game := &models.Game{
		ID:         s.uuidGenerator.NewUUID(),
		SeasonID:   input.SeasonID,
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		Status:     models.GameStatusScheduled,
		CreatedAt:  s.clock.Now(),
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &ScheduleGameOutput{
		Game: game,
	}, nil
}

// SimulateGame plays a game to a final score and stores it
func (s *service) SimulateGame(ctx context.Context, input *SimulateGameInput) (*SimulateGameOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	game, err := s.gameToPlay(ctx, input)
	if err != nil {
		return nil, err
	}

	if game.Played() {
		return &SimulateGameOutput{
			Game:          game,
			AlreadyPlayed: true,
		}, nil
	}

	home, err := s.getTeam(ctx, game.HomeTeamID)
	if err != nil {
		return nil, err
	}

	away, err := s.getTeam(ctx, game.AwayTeamID)
	if err != nil {
		return nil, err
	}

	// one forked roller per game
	start := s.clock.Now()
	result, err := s.simulator.Simulate(home, away, s.diceRoller.Fork())
	if err != nil {
		return nil, fmt.Errorf("failed to simulate game %s: %w", game.ID, err)
	}
	playedAt := s.clock.Now()

	game.Status = models.GameStatusFinal
	game.HomeScore = result.HomeScore
	game.AwayScore = result.AwayScore
	game.Possessions = result.Possessions
	game.Overtimes = result.Overtimes
	game.BoxScore = result.BoxScore
	game.PlayedAt = playedAt

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	s.metrics.RecordGame(game.IsPlayoff, game.Possessions, game.Overtimes, playedAt.Sub(start))
	s.logger.Info("game simulated",
		logging.FieldGameID, game.ID,
		logging.FieldSeasonID, game.SeasonID,
		logging.FieldHomeTeamID, game.HomeTeamID,
		logging.FieldAwayTeamID, game.AwayTeamID,
		logging.FieldScore, fmt.Sprintf("%d-%d", game.HomeScore, game.AwayScore),
		logging.FieldPossessions, game.Possessions,
		logging.FieldOvertimes, game.Overtimes,
	)

	return &SimulateGameOutput{
		Game: game,
	}, nil
}

// gameToPlay loads the stored game named by the input or builds a new one
func (s *service) gameToPlay(ctx context.Context, input *SimulateGameInput) (*models.Game, error) {
	if input.GameID != "" {
		game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
			GameID: input.GameID,
		})
		if err == nil {
			return game, nil
		}
		if !errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, fmt.Errorf("failed to get game: %w", err)
		}
	}

	if input.HomeTeamID == "" || input.AwayTeamID == "" {
		return nil, ErrInvalidInput
	}

	if input.HomeTeamID == input.AwayTeamID {
		return nil, ErrSameTeam
	}

	id := input.GameID
	if id == "" {
		id = s.uuidGenerator.NewUUID()
	}

	return &models.Game{
		ID:         id,
		SeasonID:   input.SeasonID,
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		Status:     models.GameStatusScheduled,
		IsPlayoff:  input.IsPlayoff,
		SeriesID:   input.SeriesID,
		CreatedAt:  s.clock.Now(),
	}, nil
}

// GetGame retrieves a game by ID
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, ErrInvalidInput
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return &GetGameOutput{
		Game: game,
	}, nil
}

func (s *service) getTeam(ctx context.Context, teamID string) (*models.Team, error) {
	team, err := s.teamRepo.GetTeam(ctx, &teamRepo.GetTeamInput{
		TeamID: teamID,
	})
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
		}
		return nil, fmt.Errorf("failed to get team %s: %w", teamID, err)
	}
	if err := team.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTeam, teamID, err)
	}
	return team, nil
}
