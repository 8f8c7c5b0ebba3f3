package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/hoopsim/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix        = "game:"
	seasonGamesKeyPrefix = "season_games:"
	teamGamesKeyPrefix   = "team_games:"
	seriesGamesKeyPrefix = "series_games:"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func teamGamesKey(seasonID, teamID string) string {
	return fmt.Sprintf("%s%s:%s", teamGamesKeyPrefix, seasonID, teamID)
}

// SaveGame persists a game to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	game := input.Game
	if game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.Pipeline()

	pipe.Set(ctx, gameKeyPrefix+game.ID, gameJSON, 0)

	// Indices are sorted by creation time so schedules replay in order
	member := redis.Z{
		Score:  float64(game.CreatedAt.UnixNano()),
		Member: game.ID,
	}
	if game.SeasonID != "" {
		pipe.ZAdd(ctx, seasonGamesKeyPrefix+game.SeasonID, member)
		pipe.ZAdd(ctx, teamGamesKey(game.SeasonID, game.HomeTeamID), member)
		pipe.ZAdd(ctx, teamGamesKey(game.SeasonID, game.AwayTeamID), member)
	}
	if game.SeriesID != "" {
		pipe.ZAdd(ctx, seriesGamesKeyPrefix+game.SeriesID, member)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameJSON, err := r.client.Get(ctx, gameKeyPrefix+input.GameID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// GetGamesBySeason retrieves every game of a season
func (r *redisRepository) GetGamesBySeason(ctx context.Context, input *GetGamesBySeasonInput) (*GetGamesOutput, error) {
	if input == nil || input.SeasonID == "" {
		return nil, errors.New("input and season ID cannot be empty")
	}

	return r.getIndexed(ctx, seasonGamesKeyPrefix+input.SeasonID)
}

// GetGamesByTeam retrieves the games a team played or is scheduled to play in a season
func (r *redisRepository) GetGamesByTeam(ctx context.Context, input *GetGamesByTeamInput) (*GetGamesOutput, error) {
	if input == nil || input.SeasonID == "" || input.TeamID == "" {
		return nil, errors.New("input, season ID and team ID cannot be empty")
	}

	return r.getIndexed(ctx, teamGamesKey(input.SeasonID, input.TeamID))
}

// GetGamesBySeries retrieves the games of a playoff series
func (r *redisRepository) GetGamesBySeries(ctx context.Context, input *GetGamesBySeriesInput) (*GetGamesOutput, error) {
	if input == nil || input.SeriesID == "" {
		return nil, errors.New("input and series ID cannot be empty")
	}

	return r.getIndexed(ctx, seriesGamesKeyPrefix+input.SeriesID)
}

// getIndexed loads every game listed in a sorted-set index, keeping index order
func (r *redisRepository) getIndexed(ctx context.Context, indexKey string) (*GetGamesOutput, error) {
	gameIDs, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game IDs: %w", err)
	}

	if len(gameIDs) == 0 {
		return &GetGamesOutput{
			Games: []*models.Game{},
		}, nil
	}

	// Get all games in one round trip
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(gameIDs))
	for i, gameID := range gameIDs {
		cmds[i] = pipe.Get(ctx, gameKeyPrefix+gameID)
	}

	// redis.Nil from a missing key surfaces here too; it is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for i, cmd := range cmds {
		gameJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameIDs[i], err)
		}

		var game models.Game
		if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameIDs[i], err)
		}

		games = append(games, &game)
	}

	return &GetGamesOutput{
		Games: games,
	}, nil
}
