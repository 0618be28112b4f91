package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the built-in tuning.
// It matches defaults/lander.yaml and is used when the embedded file cannot be parsed.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		FrameRate: 5,
		Physics: LanderPhysics{
			ThrustRate:          0.5,
			DragRate:            0.2,
			MaxLift:             1.5,
			RiseThreshold:       0.5,
			FuelConsumption:     0.5,
			SafeLandingVelocity: -0.2,
		},
		Fuel: LanderFuel{
			Max:         100,
			PickupBonus: 25,
		},
		Scoring: LanderScoring{
			BaseScore: 50,
		},
		Timing: LanderTiming{
			SplashDuration:   3.0,
			BlinkPeriod:      2.0,
			BlinkVisibleFrom: 0.5,
			ExplosionSmallAt: 0.5,
			ExplosionBigAt:   1.0,
		},
		Lander: LanderSpawn{
			StartX: 37, // a quarter of the way across the map
			StartY: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `lander play --dump-config`.
func DefaultYAML() []byte {
	return defaultLanderYAML
}
