package playoff

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/hoopsim/internal/models"
	"github.com/stretchr/testify/suite"
)

type PlayoffTestSuite struct {
	suite.Suite
	ctx     context.Context
	seeds   map[models.Conference][]string
	bracket *models.PlayoffBracket
	games   int
}

func TestPlayoffTestSuite(t *testing.T) {
	suite.Run(t, new(PlayoffTestSuite))
}

func (s *PlayoffTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.games = 0
	s.seeds = map[models.Conference][]string{}
	for _, conf := range models.Conferences() {
		for i := 1; i <= SeedsPerConference; i++ {
			s.seeds[conf] = append(s.seeds[conf], fmt.Sprintf("%s%d", string(conf)[:1], i))
		}
	}
	b, err := NewBracket("2025", s.seeds)
	s.Require().NoError(err)
	s.bracket = b
}

// record plays one game of a series by ID on the current bracket
func (s *PlayoffTestSuite) record(seriesID, winner string) {
	series, ok := s.bracket.FindSeries(seriesID)
	s.Require().True(ok, seriesID)
	s.games++
	updated, err := series.RecordGame(fmt.Sprintf("g%d", s.games), winner)
	s.Require().NoError(err)
	s.bracket, ok = s.bracket.WithSeries(updated)
	s.Require().True(ok)
}

func lookupTeam(_ context.Context, id string) (*models.Team, error) {
	return &models.Team{ID: id}, nil
}

// higherSeedWins always picks the team with the better regular-season seed
func (s *PlayoffTestSuite) higherSeedWins(_ context.Context, series models.PlayoffSeries, home, away *models.Team) (GameResult, error) {
	s.games++
	return GameResult{GameID: fmt.Sprintf("g%d", s.games), WinnerID: series.HigherSeedTeamID}, nil
}

func (s *PlayoffTestSuite) TestNewBracket_SchedulesPlayIn() {
	s.Equal(models.RoundPlayIn, s.bracket.CurrentRound)
	s.Len(s.bracket.PlayIn, 4)
	s.Equal(7, s.bracket.Seeds["E7"])
	s.Equal(models.ConferenceWest, s.bracket.Conferences["W3"])

	g, ok := findRole(s.bracket.PlayIn, models.ConferenceEast, models.RolePlayInNineTen)
	s.Require().True(ok)
	s.Equal("E9", g.HigherSeedTeamID)
	s.Equal("E10", g.LowerSeedTeamID)
	s.Equal(1, g.WinsNeeded)
	s.Equal("2025-east-play_in_9v10", g.ID)
}

func (s *PlayoffTestSuite) TestNewBracket_RejectsBadSeeds() {
	short := map[models.Conference][]string{models.ConferenceEast: s.seeds[models.ConferenceEast]}
	_, err := NewBracket("2025", short)
	s.ErrorIs(err, ErrInvalidSeeds)

	dup := map[models.Conference][]string{
		models.ConferenceEast: s.seeds[models.ConferenceEast],
		models.ConferenceWest: s.seeds[models.ConferenceEast],
	}
	_, err = NewBracket("2025", dup)
	s.ErrorIs(err, ErrInvalidSeeds)
}

func (s *PlayoffTestSuite) playInAllConferences(sevenEightWinner, nineTenWinner, placementWinner func(models.Conference) string) {
	for _, conf := range models.Conferences() {
		s.record(SeriesID("2025", conf, models.RolePlayInSevenEight), sevenEightWinner(conf))
		s.record(SeriesID("2025", conf, models.RolePlayInNineTen), nineTenWinner(conf))
	}
	next, changed, err := Advance(s.bracket)
	s.Require().NoError(err)
	s.True(changed)
	s.Equal(models.RoundPlayIn, next.CurrentRound)
	s.Len(next.PlayIn, 6)
	s.bracket = next
	for _, conf := range models.Conferences() {
		s.record(SeriesID("2025", conf, models.RolePlayInPlacement), placementWinner(conf))
	}
}

func seedOf(n int) func(models.Conference) string {
	return func(c models.Conference) string { return fmt.Sprintf("%s%d", string(c)[:1], n) }
}

func (s *PlayoffTestSuite) TestResolvePlayIn_PlacementWinnerTakesEight() {
	s.playInAllConferences(seedOf(7), seedOf(9), seedOf(9))

	placement, ok := findRole(s.bracket.PlayIn, models.ConferenceEast, models.RolePlayInPlacement)
	s.Require().True(ok)
	s.Equal("E8", placement.HigherSeedTeamID)
	s.Equal("E9", placement.LowerSeedTeamID)

	seven, eight, err := ResolvePlayIn(s.bracket, models.ConferenceEast)
	s.Require().NoError(err)
	s.Equal("E7", seven)
	s.Equal("E9", eight)
}

func (s *PlayoffTestSuite) TestResolvePlayIn_UpsetInSevenEight() {
	s.playInAllConferences(seedOf(8), seedOf(10), seedOf(7))

	seven, eight, err := ResolvePlayIn(s.bracket, models.ConferenceWest)
	s.Require().NoError(err)
	s.Equal("W8", seven)
	s.Equal("W7", eight)
}

func (s *PlayoffTestSuite) TestResolvePlayIn_NotReady() {
	_, _, err := ResolvePlayIn(s.bracket, models.ConferenceEast)
	s.ErrorIs(err, ErrPlayInNotReady)

	s.record(SeriesID("2025", models.ConferenceEast, models.RolePlayInSevenEight), "E7")
	s.record(SeriesID("2025", models.ConferenceEast, models.RolePlayInNineTen), "E9")
	next, _ := AddPlacementGames(s.bracket)
	_, _, err = ResolvePlayIn(next, models.ConferenceEast)
	s.ErrorIs(err, ErrPlayInNotReady)
}

func (s *PlayoffTestSuite) TestAddPlacementGames_OnlyOnce() {
	s.record(SeriesID("2025", models.ConferenceEast, models.RolePlayInSevenEight), "E7")
	s.record(SeriesID("2025", models.ConferenceEast, models.RolePlayInNineTen), "E10")

	next, added := AddPlacementGames(s.bracket)
	s.True(added)
	s.Len(next.PlayIn, 5)
	s.Len(s.bracket.PlayIn, 4)

	again, added := AddPlacementGames(next)
	s.False(added)
	s.Len(again.PlayIn, 5)
}

func (s *PlayoffTestSuite) TestAdvance_NoOpOnIncompleteRound() {
	next, changed, err := Advance(s.bracket)
	s.Require().NoError(err)
	s.False(changed)
	s.Same(s.bracket, next)

	_, err = AdvanceRound(s.bracket)
	s.ErrorIs(err, ErrRoundIncomplete)
}

func (s *PlayoffTestSuite) TestAdvance_FirstRoundUsesPlayInSeeds() {
	s.playInAllConferences(seedOf(7), seedOf(9), seedOf(9))

	next, changed, err := Advance(s.bracket)
	s.Require().NoError(err)
	s.True(changed)
	s.Equal(models.RoundFirst, next.CurrentRound)
	s.Require().Len(next.FirstRound, 8)

	want := [][2]string{{"E1", "E9"}, {"E2", "E7"}, {"E3", "E6"}, {"E4", "E5"}}
	for i, pair := range want {
		s.Equal(pair[0], next.FirstRound[i].HigherSeedTeamID)
		s.Equal(pair[1], next.FirstRound[i].LowerSeedTeamID)
		s.Equal(models.SeriesStateOpen, next.FirstRound[i].State())
	}
	s.Equal(8, next.FirstRound[0].LowerSeed)
}

func (s *PlayoffTestSuite) TestGenerateConferenceSemis_ByBracketPosition() {
	conf := models.ConferenceEast
	mk := func(role models.SeriesRole, hi string, hs int, lo string, ls int, winner string) models.PlayoffSeries {
		series := models.NewSeries(SeriesID("2025", conf, role), models.RoundFirst, role, conf, hi, hs, lo, ls, 4)
		for i := 0; i < 4; i++ {
			series, _ = series.RecordGame(fmt.Sprintf("%s-%d", role, i), winner)
		}
		return series
	}
	first := []models.PlayoffSeries{
		mk(models.RoleFirstOneEight, "A", 1, "B", 8, "A"),
		mk(models.RoleFirstTwoSeven, "E", 2, "F", 7, "F"),
		mk(models.RoleFirstThreeSix, "G", 3, "H", 6, "G"),
		mk(models.RoleFirstFourFive, "C", 4, "D", 5, "D"),
	}

	semis, err := GenerateConferenceSemis("2025", first)
	s.Require().NoError(err)
	s.Require().Len(semis, 2)

	s.Equal("A", semis[0].HigherSeedTeamID)
	s.Equal("D", semis[0].LowerSeedTeamID)
	s.Equal(5, semis[0].LowerSeed)

	s.Equal("G", semis[1].HigherSeedTeamID)
	s.Equal("F", semis[1].LowerSeedTeamID)
	s.Equal(models.RoleSemisBottom, semis[1].Role)

	first[3].Complete = false
	_, err = GenerateConferenceSemis("2025", first)
	s.ErrorIs(err, ErrRoundIncomplete)
}

func (s *PlayoffTestSuite) TestSimulateNonUserSeries_RunsToChampion() {
	next, err := SimulateNonUserSeries(s.ctx, s.bracket, "", lookupTeam, s.higherSeedWins)
	s.Require().NoError(err)

	s.Equal(models.RoundComplete, next.CurrentRound)
	s.Len(next.PlayIn, 6)
	s.Len(next.FirstRound, 8)
	s.Len(next.ConfSemis, 4)
	s.Len(next.ConfFinals, 2)
	s.Require().NotNil(next.Finals)
	s.Equal("E1", next.ChampionID)

	for _, round := range []models.Round{models.RoundPlayIn, models.RoundFirst, models.RoundConfSemis, models.RoundConfFinals, models.RoundFinals} {
		for _, series := range next.SeriesFor(round) {
			s.True(series.Complete)
			s.LessOrEqual(series.HigherSeedWins, 4)
			s.LessOrEqual(series.LowerSeedWins, 4)
			s.False(series.HigherSeedWins == series.WinsNeeded && series.LowerSeedWins == series.WinsNeeded)
		}
	}

	// everything already played, so a rerun is a no-op
	before := s.games
	again, err := SimulateNonUserSeries(s.ctx, next, "", lookupTeam, s.higherSeedWins)
	s.Require().NoError(err)
	s.Equal(before, s.games)
	s.Equal(next, again)
}

func (s *PlayoffTestSuite) TestSimulateNonUserSeries_StopsAtUserSeries() {
	next, err := SimulateNonUserSeries(s.ctx, s.bracket, "E3", lookupTeam, s.higherSeedWins)
	s.Require().NoError(err)

	s.Equal(models.RoundFirst, next.CurrentRound)
	for _, series := range next.FirstRound {
		if series.Involves("E3") {
			s.Equal(models.SeriesStateOpen, series.State())
			continue
		}
		s.True(series.Complete)
	}
	s.Empty(next.ConfSemis)
}

func (s *PlayoffTestSuite) TestSimulateNonUserSeries_UserInPlayInBlocksPlacement() {
	next, err := SimulateNonUserSeries(s.ctx, s.bracket, "W8", lookupTeam, s.higherSeedWins)
	s.Require().NoError(err)

	s.Equal(models.RoundPlayIn, next.CurrentRound)
	s.Len(next.PlayIn, 5)
	_, ok := findRole(next.PlayIn, models.ConferenceWest, models.RolePlayInPlacement)
	s.False(ok)
}

func (s *PlayoffTestSuite) TestSimulateNonUserSeries_ResumesAfterFailure() {
	boom := errors.New("boom")
	calls := 0
	flaky := func(ctx context.Context, series models.PlayoffSeries, home, away *models.Team) (GameResult, error) {
		calls++
		if calls == 12 {
			return GameResult{}, boom
		}
		return s.higherSeedWins(ctx, series, home, away)
	}

	partial, err := SimulateNonUserSeries(s.ctx, s.bracket, "", lookupTeam, flaky)
	s.ErrorIs(err, boom)
	s.Require().NotNil(partial)

	done, err := SimulateNonUserSeries(s.ctx, partial, "", lookupTeam, s.higherSeedWins)
	s.Require().NoError(err)
	s.Equal(models.RoundComplete, done.CurrentRound)

	seen := map[string]bool{}
	for _, round := range []models.Round{models.RoundPlayIn, models.RoundFirst, models.RoundConfSemis, models.RoundConfFinals, models.RoundFinals} {
		for _, series := range done.SeriesFor(round) {
			for _, id := range series.GameIDs {
				s.False(seen[id], id)
				seen[id] = true
			}
		}
	}
}

func (s *PlayoffTestSuite) TestSimulateNonUserSeries_Validation() {
	_, err := SimulateNonUserSeries(s.ctx, nil, "", lookupTeam, s.higherSeedWins)
	s.ErrorIs(err, ErrNilBracket)
	_, err = SimulateNonUserSeries(s.ctx, s.bracket, "", nil, s.higherSeedWins)
	s.ErrorIs(err, ErrNilTeamLookup)
	_, err = SimulateNonUserSeries(s.ctx, s.bracket, "", lookupTeam, nil)
	s.ErrorIs(err, ErrNilSimulator)
}

func (s *PlayoffTestSuite) TestHomeCourt() {
	series := models.NewSeries("x", models.RoundFirst, models.RoleFirstOneEight, models.ConferenceEast, "A", 1, "B", 8, 4)
	hosts := []string{}
	for g := 1; g <= 7; g++ {
		home, _ := HomeCourt(series, g)
		hosts = append(hosts, home)
	}
	s.Equal([]string{"A", "A", "B", "B", "A", "B", "A"}, hosts)

	game := models.NewSeries("y", models.RoundPlayIn, models.RolePlayInNineTen, models.ConferenceEast, "C", 9, "D", 10, 1)
	home, away := HomeCourt(game, 1)
	s.Equal("C", home)
	s.Equal("D", away)
}

func (s *PlayoffTestSuite) TestRoundsOnlyMoveForwardOneStage() {
	cur := s.bracket
	seen := []models.Round{cur.CurrentRound}
	for cur.CurrentRound != models.RoundComplete {
		for _, series := range cur.SeriesFor(cur.CurrentRound) {
			if series.Complete {
				continue
			}
			done, err := playOut(s.ctx, series, lookupTeam, s.higherSeedWins)
			s.Require().NoError(err)
			cur, _ = cur.WithSeries(done)
		}
		if cur.CurrentRound == models.RoundPlayIn {
			if next, added := AddPlacementGames(cur); added {
				cur = next
				continue
			}
		}
		next, err := AdvanceRound(cur)
		s.Require().NoError(err)
		s.Equal(cur.CurrentRound.Next(), next.CurrentRound)
		cur = next
		seen = append(seen, cur.CurrentRound)
	}
	s.Equal([]models.Round{models.RoundPlayIn, models.RoundFirst, models.RoundConfSemis, models.RoundConfFinals, models.RoundFinals, models.RoundComplete}, seen)

	_, err := AdvanceRound(cur)
	s.ErrorIs(err, ErrBracketComplete)
}
