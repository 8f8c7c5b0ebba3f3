package sim

import (
	"testing"

	"github.com/KirkDiggler/hoopsim/internal/dice"
	"github.com/stretchr/testify/suite"
)

type WeightedTestSuite struct {
	suite.Suite
	rng dice.Roller
}

func TestWeightedTestSuite(t *testing.T) {
	suite.Run(t, new(WeightedTestSuite))
}

func (s *WeightedTestSuite) SetupTest() {
	s.rng = dice.New(&dice.Config{Seed: 5})
}

func identity(v float64) float64 { return v }

func (s *WeightedTestSuite) TestSelectWeighted_Empty() {
	_, ok := SelectWeighted(s.rng, []float64{}, identity)
	s.False(ok)
}

func (s *WeightedTestSuite) TestSelectWeighted_ZeroTotalFallsBackToFirst() {
	for i := 0; i < 20; i++ {
		got, ok := SelectWeighted(s.rng, []string{"a", "b", "c"}, func(string) float64 { return 0 })
		s.True(ok)
		s.Equal("a", got)
	}
}

func (s *WeightedTestSuite) TestSelectWeighted_OnlyPositiveWeightWins() {
	items := []float64{0, -3, 7, 0}
	for i := 0; i < 100; i++ {
		got, ok := SelectWeighted(s.rng, items, identity)
		s.True(ok)
		s.Equal(7.0, got)
	}
}

func (s *WeightedTestSuite) TestSelectWeighted_RoughlyProportional() {
	counts := map[float64]int{}
	items := []float64{1, 3}
	for i := 0; i < 4000; i++ {
		got, _ := SelectWeighted(s.rng, items, identity)
		counts[got]++
	}
	s.InDelta(1000, counts[1], 150)
	s.InDelta(3000, counts[3], 150)
}
