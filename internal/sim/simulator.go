package sim

import (
	"fmt"

	"github.com/KirkDiggler/hoopsim/internal/dice"
	"github.com/KirkDiggler/hoopsim/internal/models"
)

// Config holds the tunable parameters of a game
type Config struct {
	// MinPossessions and MaxPossessions bound the total regulation
	// possessions, both sides combined
	MinPossessions int `yaml:"minPossessions"`
	MaxPossessions int `yaml:"maxPossessions"`

	// RegulationMinutes is the length of regulation
	RegulationMinutes float64 `yaml:"regulationMinutes"`

	// OvertimeMinutes is the length of one overtime period
	OvertimeMinutes float64 `yaml:"overtimeMinutes"`

	// OvertimePossessions is the fixed possession estimate for one overtime
	OvertimePossessions int `yaml:"overtimePossessions"`
}

// DefaultConfig returns league-average pacing
func DefaultConfig() Config {
	return Config{
		MinPossessions:      190,
		MaxPossessions:      210,
		RegulationMinutes:   models.RegulationMinutes,
		OvertimeMinutes:     5,
		OvertimePossessions: 20,
	}
}

// Validate checks the config for values the possession loop cannot use
func (c Config) Validate() error {
	if c.MinPossessions < 2 || c.MaxPossessions < c.MinPossessions {
		return fmt.Errorf("%w: possessions range %d-%d", ErrInvalidConfig, c.MinPossessions, c.MaxPossessions)
	}
	if c.RegulationMinutes <= 0 || c.OvertimeMinutes <= 0 {
		return fmt.Errorf("%w: minutes must be positive", ErrInvalidConfig)
	}
	if c.OvertimePossessions < 2 {
		return fmt.Errorf("%w: overtime possessions %d", ErrInvalidConfig, c.OvertimePossessions)
	}
	return nil
}

// Result is the outcome of one simulated game
type Result struct {
	HomeScore   int
	AwayScore   int
	Possessions int
	Overtimes   int

	// BoxScore has one line per player who appeared, minutes included
	BoxScore []*models.PlayerGameStats
}

// Simulator runs full games
type Simulator struct {
	cfg Config
}

// New creates a simulator. A nil config uses DefaultConfig.
func New(cfg *Config) (*Simulator, error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{cfg: c}, nil
}

// Config returns the simulator's tunables
func (s *Simulator) Config() Config {
	return s.cfg
}

type side struct {
	team     *models.Team
	rotation *RotationManager
	score    int
}

// Simulate plays home against away until one side leads after regulation or
// an overtime period.
func (s *Simulator) Simulate(home, away *models.Team, rng dice.Roller) (*Result, error) {
	if home == nil || away == nil {
		return nil, ErrNilTeam
	}
	if rng == nil {
		return nil, ErrNilRoller
	}
	if home.ID == away.ID {
		return nil, fmt.Errorf("%w: %s", ErrSameTeam, home.ID)
	}

	homeRotation, err := NewRotationManager(home)
	if err != nil {
		return nil, err
	}
	awayRotation, err := NewRotationManager(away)
	if err != nil {
		return nil, err
	}

	sides := [2]*side{
		{team: home, rotation: homeRotation},
		{team: away, rotation: awayRotation},
	}
	box := NewBoxScore()
	for _, sd := range sides {
		for _, p := range sd.rotation.Lineup() {
			box.Appear(sd.team.ID, p)
		}
	}

	// jump ball; a roll of 1 gives home the first possession
	offense := rng.Roll(2) - 1
	played := 0

	run := func(possessions int, increment float64) {
		for i := 0; i < possessions; i++ {
			for _, sd := range sides {
				for _, sub := range sd.rotation.Substitute(increment) {
					in, _ := sd.team.Player(sub.InID)
					box.Appear(sd.team.ID, &in)
				}
			}

			att, def := sides[offense], sides[1-offense]
			res := ResolvePossession(att.rotation.Lineup(), def.rotation.Lineup(), box, rng)
			att.score += res.Points

			for _, sd := range sides {
				sd.rotation.Accrue(increment)
			}
			played++
			if !res.Retained {
				offense = 1 - offense
			}
		}
	}

	regulation := rng.Between(s.cfg.MinPossessions, s.cfg.MaxPossessions)
	run(regulation, s.cfg.RegulationMinutes/float64(regulation))

	overtimes := 0
	for sides[0].score == sides[1].score {
		overtimes++
		run(s.cfg.OvertimePossessions, s.cfg.OvertimeMinutes/float64(s.cfg.OvertimePossessions))
	}

	lines := box.Lines()
	for _, line := range lines {
		for _, sd := range sides {
			if line.TeamID == sd.team.ID {
				line.Minutes = sd.rotation.minutes[line.PlayerID]
			}
		}
	}

	return &Result{
		HomeScore:   sides[0].score,
		AwayScore:   sides[1].score,
		Possessions: played,
		Overtimes:   overtimes,
		BoxScore:    lines,
	}, nil
}
