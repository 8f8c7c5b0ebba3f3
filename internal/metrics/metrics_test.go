package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type RecorderTestSuite struct {
	suite.Suite
	recorder *Recorder
}

func TestRecorderTestSuite(t *testing.T) {
	suite.Run(t, new(RecorderTestSuite))
}

func (s *RecorderTestSuite) SetupTest() {
	s.recorder = NewRecorder()
}

func (s *RecorderTestSuite) TestRecordGame() {
	s.recorder.RecordGame(false, 201, 0, 3*time.Millisecond)
	s.recorder.RecordGame(true, 222, 1, 4*time.Millisecond)
	s.recorder.RecordGame(true, 198, 0, 2*time.Millisecond)

	s.Equal(1.0, testutil.ToFloat64(s.recorder.gamesSimulated.WithLabelValues("false")))
	s.Equal(2.0, testutil.ToFloat64(s.recorder.gamesSimulated.WithLabelValues("true")))
	s.Equal(1.0, testutil.ToFloat64(s.recorder.overtimeGames))

	families, err := s.recorder.Registry().Gather()
	s.Require().NoError(err)
	var samples uint64
	for _, mf := range families {
		if mf.GetName() == "hoopsim_game_possessions" {
			samples = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	s.Equal(uint64(3), samples)
}

func (s *RecorderTestSuite) TestRecordSkippedIgnoresNonPositive() {
	s.recorder.RecordSkipped(0)
	s.recorder.RecordSkipped(-2)
	s.recorder.RecordSkipped(5)

	s.Equal(5.0, testutil.ToFloat64(s.recorder.gamesSkipped))
}

func (s *RecorderTestSuite) TestSeriesAndAdvances() {
	s.recorder.RecordSeriesCompleted("first_round")
	s.recorder.RecordSeriesCompleted("first_round")
	s.recorder.RecordAdvance("conf_semis")

	s.Equal(2.0, testutil.ToFloat64(s.recorder.seriesCompleted.WithLabelValues("first_round")))
	s.Equal(1.0, testutil.ToFloat64(s.recorder.bracketAdvances.WithLabelValues("conf_semis")))
}

func (s *RecorderTestSuite) TestHandlerServesRegistry() {
	s.recorder.RecordGame(false, 200, 0, time.Millisecond)

	rec := httptest.NewRecorder()
	s.recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.True(strings.Contains(rec.Body.String(), `hoopsim_games_simulated_total{playoff="false"} 1`))
}

func (s *RecorderTestSuite) TestNilRecorderIsSafe() {
	var r *Recorder
	s.NotPanics(func() {
		r.RecordGame(true, 200, 2, time.Second)
		r.RecordSkipped(3)
		r.RecordSeriesCompleted("finals")
		r.RecordAdvance("complete")
	})
	s.Nil(r.Registry())

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Equal(http.StatusNotFound, rec.Code)
}
