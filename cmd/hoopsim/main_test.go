package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/KirkDiggler/hoopsim/internal/config"
	"github.com/KirkDiggler/hoopsim/internal/logging"
	"github.com/KirkDiggler/hoopsim/internal/models"
	"github.com/KirkDiggler/hoopsim/internal/repositories/bracket"
	"github.com/KirkDiggler/hoopsim/internal/repositories/team"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RunTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	logger *slog.Logger
	cfg    *config.Config
	ctx    context.Context
}

func TestRunTestSuite(t *testing.T) {
	suite.Run(t, new(RunTestSuite))
}

func (s *RunTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.logger = logging.NewLogger(logging.Config{Level: "error", Output: io.Discard})
	s.cfg = &config.Config{
		RedisAddr: mr.Addr(),
		SeasonID:  "2025",
		SimSeed:   42,
	}
	s.ctx = context.Background()
}

func (s *RunTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func leagueTeam(id string, conf models.Conference, base int) *models.Team {
	t := &models.Team{ID: id, Name: id, Conference: conf}
	for i := 0; i < models.RosterSize; i++ {
		t.Players = append(t.Players, models.Player{
			ID:           fmt.Sprintf("%s-p%d", id, i),
			Name:         fmt.Sprintf("%s player %d", id, i),
			Position:     models.Position(i % models.NumPositions),
			HeightInches: 74 + i%5*2,
			Attributes: models.Attributes{
				Shooting: base, ThreePoint: base - 5, PostShooting: base - 10,
				Passing: base, BallHandling: base, Rebounding: base,
				Defense: base, Steals: base - 10, Blocks: base - 10, Stamina: base,
			},
		})
	}
	for pos := 0; pos < models.NumPositions; pos++ {
		t.Starters[pos] = t.Players[pos].ID
	}
	return t
}

func (s *RunTestSuite) seedLeague() {
	repo, err := team.NewRedis(&team.Config{RedisClient: s.client})
	s.Require().NoError(err)
	for _, conf := range models.Conferences() {
		for i := 1; i <= 10; i++ {
			t := leagueTeam(fmt.Sprintf("%s-%02d", conf, i), conf, 50+i)
			s.Require().NoError(repo.SaveTeam(s.ctx, &team.SaveTeamInput{Team: t}))
		}
	}
}

func (s *RunTestSuite) TestRun_EmptyLeagueEndsCleanly() {
	s.NoError(run(s.logger, s.cfg))
}

func (s *RunTestSuite) TestRun_PlaysPlayoffsToChampion() {
	s.seedLeague()

	s.Require().NoError(run(s.logger, s.cfg))

	repo, err := bracket.NewRedis(&bracket.Config{RedisClient: s.client})
	s.Require().NoError(err)
	got, err := repo.GetBracket(s.ctx, &bracket.GetBracketInput{SeasonID: "2025"})
	s.Require().NoError(err)
	s.Equal(models.RoundComplete, got.CurrentRound)
	s.NotEmpty(got.ChampionID)

	// a second run resumes the stored bracket without error
	s.NoError(run(s.logger, s.cfg))
}

func (s *RunTestSuite) TestRun_ReturnsErrors() {
	s.cfg.TunablesPath = "testdata/missing.yaml"
	s.Error(run(s.logger, s.cfg))

	s.cfg.TunablesPath = ""
	s.mr.Close()
	err := run(s.logger, s.cfg)
	s.ErrorContains(err, "failed to create game repository")
}
