package playoff

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/hoopsim/internal/logging"
	"github.com/KirkDiggler/hoopsim/internal/metrics"
	"github.com/KirkDiggler/hoopsim/internal/models"
	engine "github.com/KirkDiggler/hoopsim/internal/playoff"
	bracketRepo "github.com/KirkDiggler/hoopsim/internal/repositories/bracket"
	teamRepo "github.com/KirkDiggler/hoopsim/internal/repositories/team"
	gameService "github.com/KirkDiggler/hoopsim/internal/services/game"
	seasonService "github.com/KirkDiggler/hoopsim/internal/services/season"
)

type service struct {
	bracketRepo   bracketRepo.Repository
	teamRepo      teamRepo.Repository
	gameService   gameService.Service
	seasonService seasonService.Service
	metrics       *metrics.Recorder
	logger        *slog.Logger
}

// New creates a new playoff service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.BracketRepo == nil {
		return nil, ErrNilBracketRepo
	}

	if cfg.TeamRepo == nil {
		return nil, ErrNilTeamRepo
	}

	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	if cfg.SeasonService == nil {
		return nil, ErrNilSeasonService
	}

	return &service{
		bracketRepo:   cfg.BracketRepo,
		teamRepo:      cfg.TeamRepo,
		gameService:   cfg.GameService,
		seasonService: cfg.SeasonService,
		metrics:       cfg.Metrics,
		logger:        logging.OrDefault(cfg.Logger),
	}, nil
}

// CreateBracket seeds ten teams per conference from the final standings
func (s *service) CreateBracket(ctx context.Context, input *CreateBracketInput) (*CreateBracketOutput, error) {
	if input == nil || input.SeasonID == "" {
		return nil, ErrInvalidInput
	}

	_, err := s.bracketRepo.GetBracket(ctx, &bracketRepo.GetBracketInput{
		SeasonID: input.SeasonID,
	})
	if err == nil {
		return nil, ErrBracketExists
	}
	if !errors.Is(err, bracketRepo.ErrBracketNotFound) {
		return nil, fmt.Errorf("failed to get bracket: %w", err)
	}

	standings, err := s.seasonService.GetStandings(ctx, &seasonService.GetStandingsInput{
		SeasonID: input.SeasonID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	seeds := make(map[models.Conference][]string, len(models.Conferences()))
	for _, conf := range models.Conferences() {
		table := standings.Standings[conf]
		if len(table) < engine.SeedsPerConference {
			return nil, fmt.Errorf("%w: %s has %d", ErrNotEnoughTeams, conf, len(table))
		}
		for _, record := range table[:engine.SeedsPerConference] {
			seeds[conf] = append(seeds[conf], record.TeamID)
		}
	}

	bracket, err := engine.NewBracket(input.SeasonID, seeds)
	if err != nil {
		return nil, err
	}

	if err := s.saveBracket(ctx, bracket); err != nil {
		return nil, err
	}

	s.metrics.RecordAdvance(string(bracket.CurrentRound))
	s.logger.Info("bracket created",
		logging.FieldSeasonID, input.SeasonID,
		logging.FieldRound, bracket.CurrentRound,
	)

	return &CreateBracketOutput{
		Bracket: bracket,
	}, nil
}

// RecordGame applies a played game to its series and advances the bracket
func (s *service) RecordGame(ctx context.Context, input *RecordGameInput) (*RecordGameOutput, error) {
	if input == nil || input.SeasonID == "" || input.SeriesID == "" || input.GameID == "" || input.WinnerTeamID == "" {
		return nil, ErrInvalidInput
	}

	before, err := s.getBracket(ctx, input.SeasonID)
	if err != nil {
		return nil, err
	}

	series, ok := before.FindSeries(input.SeriesID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSeriesNotFound, input.SeriesID)
	}

	updated, err := series.RecordGame(input.GameID, input.WinnerTeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to record game %s in %s: %w", input.GameID, input.SeriesID, err)
	}

	withGame, _ := before.WithSeries(updated)
	after, _, err := engine.Advance(withGame)
	if err != nil {
		return nil, fmt.Errorf("failed to advance bracket: %w", err)
	}

	if err := s.saveBracket(ctx, after); err != nil {
		return nil, err
	}
	s.recordProgress(before, after)

	s.logger.Info("playoff game recorded",
		logging.FieldSeasonID, input.SeasonID,
		logging.FieldSeriesID, input.SeriesID,
		logging.FieldGameID, input.GameID,
		logging.FieldTeamID, input.WinnerTeamID,
		logging.FieldRound, after.CurrentRound,
	)

	return &RecordGameOutput{
		Bracket: after,
		Series:  updated,
	}, nil
}

// SimulateNonUserSeries plays every series without the user team through the
// game service. Whatever progress was made is saved even when a game fails.
func (s *service) SimulateNonUserSeries(ctx context.Context, input *SimulateNonUserSeriesInput) (*SimulateNonUserSeriesOutput, error) {
	if input == nil || input.SeasonID == "" {
		return nil, ErrInvalidInput
	}

	before, err := s.getBracket(ctx, input.SeasonID)
	if err != nil {
		return nil, err
	}

	after, simErr := engine.SimulateNonUserSeries(ctx, before, input.UserTeamID, s.lookupTeam, s.simulateSeriesGame(input.SeasonID))
	if after == nil {
		return nil, simErr
	}

	if err := s.saveBracket(ctx, after); err != nil {
		return nil, errors.Join(simErr, err)
	}
	s.recordProgress(before, after)

	out := &SimulateNonUserSeriesOutput{
		Bracket: after,
	}
	if simErr != nil {
		s.logger.Error("bulk playoff simulation stopped",
			logging.FieldSeasonID, input.SeasonID,
			logging.FieldRound, after.CurrentRound,
			"error", simErr,
		)
		return out, fmt.Errorf("failed to simulate series: %w", simErr)
	}

	s.logger.Info("non-user series simulated",
		logging.FieldSeasonID, input.SeasonID,
		logging.FieldTeamID, input.UserTeamID,
		logging.FieldRound, after.CurrentRound,
	)

	return out, nil
}

// GetBracket retrieves the season's bracket
func (s *service) GetBracket(ctx context.Context, input *GetBracketInput) (*GetBracketOutput, error) {
	if input == nil || input.SeasonID == "" {
		return nil, ErrInvalidInput
	}

	bracket, err := s.getBracket(ctx, input.SeasonID)
	if err != nil {
		return nil, err
	}

	return &GetBracketOutput{
		Bracket: bracket,
	}, nil
}

func (s *service) getBracket(ctx context.Context, seasonID string) (*models.PlayoffBracket, error) {
	bracket, err := s.bracketRepo.GetBracket(ctx, &bracketRepo.GetBracketInput{
		SeasonID: seasonID,
	})
	if err != nil {
		if errors.Is(err, bracketRepo.ErrBracketNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBracketNotFound, seasonID)
		}
		return nil, fmt.Errorf("failed to get bracket: %w", err)
	}
	return bracket, nil
}

func (s *service) saveBracket(ctx context.Context, bracket *models.PlayoffBracket) error {
	if err := s.bracketRepo.SaveBracket(ctx, &bracketRepo.SaveBracketInput{
		Bracket: bracket,
	}); err != nil {
		return fmt.Errorf("failed to save bracket: %w", err)
	}
	return nil
}

func (s *service) lookupTeam(ctx context.Context, teamID string) (*models.Team, error) {
	team, err := s.teamRepo.GetTeam(ctx, &teamRepo.GetTeamInput{
		TeamID: teamID,
	})
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
		}
		return nil, err
	}
	return team, nil
}

// simulateSeriesGame plays one series game through the game service. Game IDs
// follow the series position, so a resumed run finds games it already stored.
func (s *service) simulateSeriesGame(seasonID string) engine.GameSimulator {
	return func(ctx context.Context, series models.PlayoffSeries, home, away *models.Team) (engine.GameResult, error) {
		out, err := s.gameService.SimulateGame(ctx, &gameService.SimulateGameInput{
			GameID:     fmt.Sprintf("%s-g%d", series.ID, len(series.GameIDs)+1),
			SeasonID:   seasonID,
			HomeTeamID: home.ID,
			AwayTeamID: away.ID,
			SeriesID:   series.ID,
			IsPlayoff:  true,
		})
		if err != nil {
			return engine.GameResult{}, err
		}
		return engine.GameResult{
			GameID:   out.Game.ID,
			WinnerID: out.Game.WinnerID(),
		}, nil
	}
}

// recordProgress counts series that finished and rounds that opened between
// two snapshots of the bracket
func (s *service) recordProgress(before, after *models.PlayoffBracket) {
	for _, round := range []models.Round{models.RoundPlayIn, models.RoundFirst, models.RoundConfSemis, models.RoundConfFinals, models.RoundFinals} {
		for _, series := range after.SeriesFor(round) {
			if !series.Complete {
				continue
			}
			if prev, ok := before.FindSeries(series.ID); ok && prev.Complete {
				continue
			}
			s.metrics.RecordSeriesCompleted(string(round))
		}
	}

	for round := before.CurrentRound; round != after.CurrentRound && round != models.RoundComplete; {
		round = round.Next()
		s.metrics.RecordAdvance(string(round))
	}
}
