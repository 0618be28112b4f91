// Package config provides YAML-based tuning for the lander game and
// difficulty presets on top of it.
package config

// LanderConfig contains every tunable constant of the game.
type LanderConfig struct {
	FrameRate int           `yaml:"frame_rate"` // Simulation steps per second
	Physics   LanderPhysics `yaml:"physics"`
	Fuel      LanderFuel    `yaml:"fuel"`
	Scoring   LanderScoring `yaml:"scoring"`
	Timing    LanderTiming  `yaml:"timing"`
	Lander    LanderSpawn   `yaml:"lander"`
}

// LanderPhysics defines the thrust/drag model.
type LanderPhysics struct {
	ThrustRate          float64 `yaml:"thrust_rate"`           // Lift gained per second of thrust
	DragRate            float64 `yaml:"drag_rate"`             // Lift lost per second without thrust
	MaxLift             float64 `yaml:"max_lift"`              // Upper clamp of the lift accumulator
	RiseThreshold       float64 `yaml:"rise_threshold"`        // Lift at or above which the lander rises
	FuelConsumption     float64 `yaml:"fuel_consumption"`      // Fuel spent per thruster activation
	SafeLandingVelocity float64 `yaml:"safe_landing_velocity"` // Touchdown requires velocity strictly above this
}

// LanderFuel defines tank and pickup sizes.
type LanderFuel struct {
	Max         float64 `yaml:"max"`
	PickupBonus float64 `yaml:"pickup_bonus"`
}

// LanderScoring defines the landing reward.
type LanderScoring struct {
	BaseScore int `yaml:"base_score"`
}

// LanderTiming holds the presentation timers, all in seconds.
type LanderTiming struct {
	SplashDuration   float64 `yaml:"splash_duration"`
	BlinkPeriod      float64 `yaml:"blink_period"`
	BlinkVisibleFrom float64 `yaml:"blink_visible_from"`
	ExplosionSmallAt float64 `yaml:"explosion_small_at"`
	ExplosionBigAt   float64 `yaml:"explosion_big_at"`
}

// LanderSpawn is where a fresh or reset lander appears.
type LanderSpawn struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}
