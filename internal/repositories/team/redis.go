package team

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/hoopsim/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	teamKeyPrefix = "team:"
	teamsKey      = "teams"
)

// ErrTeamNotFound is returned when a team is not found
var ErrTeamNotFound = errors.New("team not found")

// Config holds configuration for the Redis team repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed team repository
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

// SaveTeam persists a team to Redis
func (r *redisRepository) SaveTeam(ctx context.Context, input *SaveTeamInput) error {
	if input == nil || input.Team == nil {
		return errors.New("input and team cannot be nil")
	}

	team := input.Team
	if team.ID == "" {
		return errors.New("team ID cannot be empty")
	}

	if err := team.Validate(); err != nil {
		return fmt.Errorf("invalid team %s: %w", team.ID, err)
	}

	teamJSON, err := json.Marshal(team)
	if err != nil {
		return fmt.Errorf("failed to marshal team: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, teamKeyPrefix+team.ID, teamJSON, 0)
	pipe.SAdd(ctx, teamsKey, team.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}

	return nil
}

// GetTeam retrieves a team by ID from Redis
func (r *redisRepository) GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID cannot be empty")
	}

	teamJSON, err := r.client.Get(ctx, teamKeyPrefix+input.TeamID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	var team models.Team
	if err := json.Unmarshal([]byte(teamJSON), &team); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team: %w", err)
	}

	return &team, nil
}

// ListTeams retrieves all teams from Redis
func (r *redisRepository) ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error) {
	if input == nil {
		input = &ListTeamsInput{}
	}

	teamIDs, err := r.client.SMembers(ctx, teamsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get team IDs: %w", err)
	}

	if len(teamIDs) == 0 {
		return &ListTeamsOutput{
			Teams: []*models.Team{},
		}, nil
	}
	sort.Strings(teamIDs)

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(teamIDs))
	for i, teamID := range teamIDs {
		cmds[i] = pipe.Get(ctx, teamKeyPrefix+teamID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	teams := make([]*models.Team, 0, len(teamIDs))
	for i, cmd := range cmds {
		teamJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Team was deleted between getting the IDs and fetching the team
				continue
			}
			return nil, fmt.Errorf("failed to get team %s: %w", teamIDs[i], err)
		}

		var team models.Team
		if err := json.Unmarshal([]byte(teamJSON), &team); err != nil {
			return nil, fmt.Errorf("failed to unmarshal team %s: %w", teamIDs[i], err)
		}

		if input.Conference != "" && team.Conference != input.Conference {
			continue
		}
		teams = append(teams, &team)
	}

	return &ListTeamsOutput{
		Teams: teams,
	}, nil
}
