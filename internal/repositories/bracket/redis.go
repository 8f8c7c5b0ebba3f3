package bracket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/hoopsim/internal/models"
	"github.com/redis/go-redis/v9"
)

// brackets are stored one per season
const bracketKeyPrefix = "bracket:"

// ErrBracketNotFound is returned when a season has no bracket yet
var ErrBracketNotFound = errors.New("bracket not found")

// Config holds configuration for the Redis bracket repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed bracket repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveBracket overwrites the season's bracket
func (r *redisRepository) SaveBracket(ctx context.Context, input *SaveBracketInput) error {
	if input == nil || input.Bracket == nil {
		return errors.New("input and bracket cannot be nil")
	}
	if input.Bracket.SeasonID == "" {
		return errors.New("season ID cannot be empty")
	}

	bracketJSON, err := json.Marshal(input.Bracket)
	if err != nil {
		return fmt.Errorf("failed to marshal bracket: %w", err)
	}

	if err := r.client.Set(ctx, bracketKeyPrefix+input.Bracket.SeasonID, bracketJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save bracket: %w", err)
	}

	return nil
}

// GetBracket retrieves the season's bracket
func (r *redisRepository) GetBracket(ctx context.Context, input *GetBracketInput) (*models.PlayoffBracket, error) {
	if input == nil || input.SeasonID == "" {
		return nil, errors.New("input and season ID cannot be empty")
	}

	bracketJSON, err := r.client.Get(ctx, bracketKeyPrefix+input.SeasonID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrBracketNotFound
		}
		return nil, fmt.Errorf("failed to get bracket: %w", err)
	}

	var b models.PlayoffBracket
	if err := json.Unmarshal([]byte(bracketJSON), &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bracket: %w", err)
	}

	return &b, nil
}
