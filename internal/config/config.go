// Package config loads process settings from the environment and simulation
// tunables from YAML.
package config

// Config is everything cmd/hoopsim reads from the environment
type Config struct {
	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// SimSeed fixes the random source; zero seeds from the clock
	SimSeed      uint64 `env:"SIM_SEED"`
	TunablesPath string `env:"SIM_TUNABLES_PATH"`

	SeasonID   string `env:"SEASON_ID"    envDefault:"2025"`
	UserTeamID string `env:"USER_TEAM_ID"`

	// MetricsAddr enables the /metrics listener when set, e.g. ":9090"
	MetricsAddr string `env:"METRICS_ADDR"`
}

// Load parses Config from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
