// File: utils/config.go
package utils

import "time"

// Config holds the tunable physics/timing parameters of the simulation:
// tick rate, kick strength/reach, goal animation length, ball defaults.
type Config struct {
	// Timing
	TickRate           int           // Simulation ticks per second
	GoalAnimationTicks int           // Ticks the GOAL state holds before reset
	EndAnimationTicks  int           // Ticks the END state holds before reporting done
	GameTickPeriod     time.Duration // Wall-clock period a headless runner should sleep between steps

	// Kicking / movement
	DefaultKickReach           float64
	DefaultKickStrength        float64
	DefaultPlayerAcceleration  float64
	DefaultKickingAcceleration float64

	// External interface knobs
	StadiumFile            string
	EnableRenderer         bool
	EnableRecorder         bool
	EnablePositionRecorder bool
	FolderRec              string
	Fov                    float64
	EnableVsync            bool

	// Defaults for a stadium that doesn't describe its own ball
	DefaultBallRadius  float64
	DefaultBallInvMass float64
	DefaultBallDamping float64
	DefaultBallBCoef   float64

	// Spawn fallback
	DefaultSpawnDistance float64
}

// DefaultConfig returns the simulation defaults used by a full-speed game.
func DefaultConfig() Config {
	return Config{
		TickRate:                   60,
		GoalAnimationTicks:         150,
		EndAnimationTicks:          150,
		GameTickPeriod:             time.Second / 60,
		DefaultKickReach:           4,
		DefaultKickStrength:        5,
		DefaultPlayerAcceleration:  0.1,
		DefaultKickingAcceleration: 0.07,
		DefaultBallRadius:          10,
		DefaultBallInvMass:         1,
		DefaultBallDamping:         0.99,
		DefaultBallBCoef:           0.5,
		DefaultSpawnDistance:       200,
		FolderRec:                  "recordings",
		Fov:                        55,
	}
}

// FastGameConfig returns a config tuned for rapidly-completing test
// games: short animations, no inter-tick sleep.
func FastGameConfig() Config {
	cfg := DefaultConfig()
	cfg.GoalAnimationTicks = 5
	cfg.EndAnimationTicks = 5
	cfg.GameTickPeriod = 0
	return cfg
}
