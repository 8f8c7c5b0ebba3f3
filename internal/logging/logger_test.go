package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) TestParseLevel() {
	s.Equal(slog.LevelDebug, ParseLevel("DEBUG"))
	s.Equal(slog.LevelWarn, ParseLevel(" warning "))
	s.Equal(slog.LevelError, ParseLevel("error"))
	s.Equal(slog.LevelInfo, ParseLevel(""))
	s.Equal(slog.LevelInfo, ParseLevel("loud"))
}

func (s *LoggerTestSuite) TestNewLogger_WritesFields() {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "info", Output: &buf})

	s.False(logger.Enabled(context.Background(), slog.LevelDebug))
	logger.Info("game simulated", FieldGameID, "g1", FieldScore, "101-99")

	s.Contains(buf.String(), "msg=\"game simulated\"")
	s.Contains(buf.String(), "game_id=g1")
	s.Contains(buf.String(), "score=101-99")
}

func (s *LoggerTestSuite) TestOrDefault() {
	s.Same(slog.Default(), OrDefault(nil))

	logger := NewLogger(Config{})
	s.Same(logger, OrDefault(logger))
}
