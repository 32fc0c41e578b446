package sim

// Tuning collects the gameplay constants the host may override through the
// config layer. Zero values are not sanitized; callers start from
// DefaultTuning and override fields.
type Tuning struct {
	// Player
	BaseSpeed     float64 // px/s without boost
	BoostMul      float64 // speed multiplier while boosting
	EnergyMax     float64
	EnergyStart   float64
	BoostDrain    float64 // energy/s while boost active
	ShieldDrain   float64 // energy/s while shield active
	ShootCooldown float64 // seconds between player shots

	// Weapons
	PlayerShotSpeed float64 // px/s, fired straight right
	EnemyShotSpeed  float64 // px/s, aimed at the player
	HitDamage       float64 // energy lost per unshielded hit

	// Spawning
	SpawnMin       float64 // spawn timer reset range, seconds
	SpawnMax       float64
	WeightAsteroid int
	WeightBlob     int
	WeightRed      int
	WeightSnake    int

	// Background
	StarCount int
}

// DefaultTuning returns the stock balance.
func DefaultTuning() Tuning {
	return Tuning{
		BaseSpeed:     220.0,
		BoostMul:      2.0,
		EnergyMax:     120.0,
		EnergyStart:   60.0,
		BoostDrain:    20.0,
		ShieldDrain:   28.0,
		ShootCooldown: 0.18,

		PlayerShotSpeed: 520.0,
		EnemyShotSpeed:  280.0,
		HitDamage:       12.0,

		SpawnMin:       0.6,
		SpawnMax:       1.2,
		WeightAsteroid: 4,
		WeightBlob:     3,
		WeightRed:      2,
		WeightSnake:    1,

		StarCount: 140,
	}
}
