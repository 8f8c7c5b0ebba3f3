package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PlayoffTestSuite struct {
	suite.Suite
	series PlayoffSeries
}

func TestPlayoffTestSuite(t *testing.T) {
	suite.Run(t, new(PlayoffTestSuite))
}

func (s *PlayoffTestSuite) SetupTest() {
	s.series = NewSeries("s1", RoundFirst, RoleFirstOneEight, ConferenceEast, "A", 1, "B", 8, 0)
}

func (s *PlayoffTestSuite) TestNewSeriesIsOpen() {
	s.Equal(SeriesStateOpen, s.series.State())
	s.Equal(SeriesWinsNeeded, s.series.WinsNeeded)
	s.Empty(s.series.WinnerID())
	s.Empty(s.series.LoserID())
}

func (s *PlayoffTestSuite) TestRecordGameReturnsCopy() {
	next, err := s.series.RecordGame("g1", "A")
	s.Require().NoError(err)
	s.Equal(1, next.HigherSeedWins)
	s.Equal(SeriesStateInProgress, next.State())
	s.Equal([]string{"g1"}, next.GameIDs)

	s.Zero(s.series.HigherSeedWins)
	s.Empty(s.series.GameIDs)
}

func (s *PlayoffTestSuite) TestSeriesCompletesAtFourAndLocks() {
	cur := s.series
	var err error
	winners := []string{"A", "B", "B", "A", "B", "A", "B"}
	for i, w := range winners {
		cur, err = cur.RecordGame(fmt.Sprintf("g%d", i), w)
		s.Require().NoError(err)
		s.LessOrEqual(cur.HigherSeedWins, 4)
		s.LessOrEqual(cur.LowerSeedWins, 4)
	}
	s.True(cur.Complete)
	s.Equal(SeriesStateComplete, cur.State())
	s.Equal("B", cur.WinnerID())
	s.Equal("A", cur.LoserID())
	s.Len(cur.GameIDs, 7)

	_, err = cur.RecordGame("g8", "A")
	s.ErrorIs(err, ErrSeriesComplete)
}

func (s *PlayoffTestSuite) TestRecordGameRejectsStrangersAndDuplicates() {
	_, err := s.series.RecordGame("g1", "Z")
	s.ErrorIs(err, ErrTeamNotInSeries)

	next, err := s.series.RecordGame("g1", "A")
	s.Require().NoError(err)
	_, err = next.RecordGame("g1", "B")
	s.ErrorIs(err, ErrDuplicateSeriesGame)
}

func (s *PlayoffTestSuite) TestPlayInIsSingleGame() {
	game := NewSeries("p1", RoundPlayIn, RolePlayInSevenEight, ConferenceWest, "C", 7, "D", 8, PlayInWinsNeeded)
	next, err := game.RecordGame("g1", "D")
	s.Require().NoError(err)
	s.True(next.Complete)
	s.Equal("D", next.WinnerID())
	s.Equal("C", next.LoserID())
}

func (s *PlayoffTestSuite) TestRoundOrder() {
	s.Equal(RoundFirst, RoundPlayIn.Next())
	s.Equal(RoundConfSemis, RoundFirst.Next())
	s.Equal(RoundConfFinals, RoundConfSemis.Next())
	s.Equal(RoundFinals, RoundConfFinals.Next())
	s.Equal(RoundComplete, RoundFinals.Next())
	s.Equal(RoundComplete, RoundComplete.Next())
	s.False(Round("bogus").Valid())
}

func (s *PlayoffTestSuite) TestPlayInNeedsSixSeries() {
	b := &PlayoffBracket{CurrentRound: RoundPlayIn}
	for i := 0; i < 4; i++ {
		g := NewSeries(fmt.Sprintf("p%d", i), RoundPlayIn, RolePlayInSevenEight, ConferenceEast, "A", 7, "B", 8, 1)
		g, _ = g.RecordGame("g", "A")
		b.PlayIn = append(b.PlayIn, g)
	}
	s.False(b.IsRoundComplete(RoundPlayIn))

	for i := 4; i < 6; i++ {
		g := NewSeries(fmt.Sprintf("p%d", i), RoundPlayIn, RolePlayInPlacement, ConferenceEast, "A", 8, "B", 9, 1)
		b.PlayIn = append(b.PlayIn, g)
	}
	s.False(b.IsRoundComplete(RoundPlayIn))

	for i := 4; i < 6; i++ {
		b.PlayIn[i], _ = b.PlayIn[i].RecordGame("g", "B")
	}
	s.True(b.IsRoundComplete(RoundPlayIn))
	s.False(b.IsRoundComplete(RoundFirst))
}

func (s *PlayoffTestSuite) TestWithSeriesLeavesOriginalUntouched() {
	b := &PlayoffBracket{
		SeasonID:   "2025",
		Seeds:      map[string]int{"A": 1, "B": 8},
		FirstRound: []PlayoffSeries{s.series},
	}
	updated, _ := s.series.RecordGame("g1", "A")

	next, ok := b.WithSeries(updated)
	s.Require().True(ok)
	s.Equal(1, next.FirstRound[0].HigherSeedWins)
	s.Zero(b.FirstRound[0].HigherSeedWins)

	found, ok := next.FindSeries("s1")
	s.True(ok)
	s.Equal(updated, found)

	_, ok = b.WithSeries(NewSeries("missing", RoundFirst, RoleFirstTwoSeven, ConferenceEast, "C", 2, "D", 7, 0))
	s.False(ok)
}
