package season

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/hoopsim/internal/logging"
	"github.com/KirkDiggler/hoopsim/internal/metrics"
	"github.com/KirkDiggler/hoopsim/internal/models"
	gameRepo "github.com/KirkDiggler/hoopsim/internal/repositories/game"
	teamRepo "github.com/KirkDiggler/hoopsim/internal/repositories/team"
	gameService "github.com/KirkDiggler/hoopsim/internal/services/game"
)

type service struct {
	gameService gameService.Service
	gameRepo    gameRepo.Repository
	teamRepo    teamRepo.Repository
	metrics     *metrics.Recorder
	logger      *slog.Logger
}

// New creates a new season service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.TeamRepo == nil {
		return nil, ErrNilTeamRepo
	}

	return &service{
		gameService: cfg.GameService,
		gameRepo:    cfg.GameRepo,
		teamRepo:    cfg.TeamRepo,
		metrics:     cfg.Metrics,
		logger:      logging.OrDefault(cfg.Logger),
	}, nil
}

// SimulateGames plays every unplayed game in order. A failure stops the batch;
// calling again resumes after the last stored result.
func (s *service) SimulateGames(ctx context.Context, input *SimulateGamesInput) (*SimulateGamesOutput, error) {
	if input == nil || input.SeasonID == "" {
		return nil, ErrInvalidInput
	}

	games := input.Games
	if len(games) == 0 {
		stored, err := s.gameRepo.GetGamesBySeason(ctx, &gameRepo.GetGamesBySeasonInput{
			SeasonID: input.SeasonID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get season games: %w", err)
		}
		games = stored.Games
	}

	out := &SimulateGamesOutput{
		Games: make([]*models.Game, 0, len(games)),
	}
	for _, game := range games {
		if game == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}

		if game.Played() {
			out.Skipped++
			out.Games = append(out.Games, game)
			continue
		}

		result, err := s.gameService.SimulateGame(ctx, &gameService.SimulateGameInput{
			GameID:     game.ID,
			SeasonID:   input.SeasonID,
			HomeTeamID: game.HomeTeamID,
			AwayTeamID: game.AwayTeamID,
		})
		if err != nil {
			s.metrics.RecordSkipped(out.Skipped)
			return out, fmt.Errorf("failed to simulate game %s: %w", game.ID, err)
		}

		if result.AlreadyPlayed {
			out.Skipped++
		} else {
			out.Simulated++
		}
		out.Games = append(out.Games, result.Game)
	}

	s.metrics.RecordSkipped(out.Skipped)
	s.logger.Info("season games simulated",
		logging.FieldSeasonID, input.SeasonID,
		logging.FieldCount, out.Simulated,
		logging.FieldSkipped, out.Skipped,
	)

	return out, nil
}

// GetTeamRecord builds a team's record from its final regular-season games
func (s *service) GetTeamRecord(ctx context.Context, input *GetTeamRecordInput) (*GetTeamRecordOutput, error) {
	if input == nil || input.SeasonID == "" || input.TeamID == "" {
		return nil, ErrInvalidInput
	}

	team, err := s.teamRepo.GetTeam(ctx, &teamRepo.GetTeamInput{
		TeamID: input.TeamID,
	})
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, input.TeamID)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	games, err := s.gameRepo.GetGamesByTeam(ctx, &gameRepo.GetGamesByTeamInput{
		SeasonID: input.SeasonID,
		TeamID:   input.TeamID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get team games: %w", err)
	}

	record := models.TeamRecord{
		TeamID:     team.ID,
		Conference: team.Conference,
	}
	for _, game := range games.Games {
		if game.IsPlayoff {
			continue
		}
		record.AddGame(game)
	}

	return &GetTeamRecordOutput{
		Record: record,
	}, nil
}

// GetStandings ranks every stored team within its conference
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil || input.SeasonID == "" {
		return nil, ErrInvalidInput
	}

	teams, err := s.teamRepo.ListTeams(ctx, &teamRepo.ListTeamsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	games, err := s.gameRepo.GetGamesBySeason(ctx, &gameRepo.GetGamesBySeasonInput{
		SeasonID: input.SeasonID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get season games: %w", err)
	}

	records := make(map[string]*models.TeamRecord, len(teams.Teams))
	for _, team := range teams.Teams {
		records[team.ID] = &models.TeamRecord{
			TeamID:     team.ID,
			Conference: team.Conference,
		}
	}

	for _, game := range games.Games {
		if game.IsPlayoff || !game.Played() {
			continue
		}
		// games against teams no longer stored still count for the other side
		if r, ok := records[game.HomeTeamID]; ok {
			r.AddGame(game)
		}
		if r, ok := records[game.AwayTeamID]; ok {
			r.AddGame(game)
		}
	}

	standings := make(map[models.Conference][]models.TeamRecord)
	for _, team := range teams.Teams {
		standings[team.Conference] = append(standings[team.Conference], *records[team.ID])
	}
	for conf := range standings {
		models.SortStandings(standings[conf])
	}

	return &GetStandingsOutput{
		Standings: standings,
	}, nil
}
