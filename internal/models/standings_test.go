package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type StandingsTestSuite struct {
	suite.Suite
}

func TestStandingsTestSuite(t *testing.T) {
	suite.Run(t, new(StandingsTestSuite))
}

func finalGame(id, home, away string, hs, as int) *Game {
	return &Game{ID: id, HomeTeamID: home, AwayTeamID: away, HomeScore: hs, AwayScore: as, Status: GameStatusFinal}
}

func (s *StandingsTestSuite) TestAddGame() {
	r := TeamRecord{TeamID: "bos"}
	r.AddGame(finalGame("g1", "bos", "nyk", 110, 100))
	r.AddGame(finalGame("g2", "mia", "bos", 101, 99))
	r.AddGame(finalGame("g3", "mia", "nyk", 90, 80))
	r.AddGame(&Game{ID: "g4", HomeTeamID: "bos", AwayTeamID: "mia", Status: GameStatusScheduled})
	r.AddGame(nil)

	s.Equal(1, r.Wins)
	s.Equal(1, r.Losses)
	s.Equal(209, r.PointsFor)
	s.Equal(201, r.PointsAgainst)
	s.Equal(8, r.PointDiff())
	s.Equal(0.5, r.WinPct())
}

func (s *StandingsTestSuite) TestEmptyRecord() {
	r := TeamRecord{TeamID: "bos"}
	s.Equal(0, r.GamesPlayed())
	s.Equal(0.0, r.WinPct())
}

func (s *StandingsTestSuite) TestSortStandings() {
	records := []TeamRecord{
		{TeamID: "c", Wins: 5, Losses: 5, PointsFor: 1000, PointsAgainst: 990},
		{TeamID: "a", Wins: 7, Losses: 3},
		{TeamID: "d", Wins: 5, Losses: 5, PointsFor: 1000, PointsAgainst: 990},
		{TeamID: "b", Wins: 5, Losses: 5, PointsFor: 1000, PointsAgainst: 1010},
		{TeamID: "e"},
	}
	SortStandings(records)

	var ids []string
	for _, r := range records {
		ids = append(ids, r.TeamID)
	}
	s.Equal([]string{"a", "c", "d", "b", "e"}, ids)
}
