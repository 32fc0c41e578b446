// Package config provides YAML-based tuning configuration for the embedded
// shooter. The loader only swaps constants; it never changes simulation
// semantics.
package config

import "github.com/padprobe/padprobe/internal/sim"

// Config is the on-disk tuning file layout.
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Weapons   WeaponsConfig   `yaml:"weapons"`
	Spawning  SpawningConfig  `yaml:"spawning"`
	Stars     StarsConfig     `yaml:"stars"`
}

// PlayfieldConfig sets the simulated pixel playfield size. The terminal
// renderer scales this onto cells; simulation coordinates are unaffected by
// terminal geometry.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig covers movement and the energy resource model.
type PlayerConfig struct {
	BaseSpeed     float64 `yaml:"base_speed"`
	BoostMul      float64 `yaml:"boost_multiplier"`
	EnergyMax     float64 `yaml:"energy_max"`
	EnergyStart   float64 `yaml:"energy_start"`
	BoostDrain    float64 `yaml:"boost_drain"`
	ShieldDrain   float64 `yaml:"shield_drain"`
	ShootCooldown float64 `yaml:"shoot_cooldown"`
}

// WeaponsConfig covers projectile speeds and hit damage.
type WeaponsConfig struct {
	PlayerShotSpeed float64 `yaml:"player_shot_speed"`
	EnemyShotSpeed  float64 `yaml:"enemy_shot_speed"`
	HitDamage       float64 `yaml:"hit_damage"`
}

// SpawningConfig covers the enemy spawn timer and kind weights.
type SpawningConfig struct {
	IntervalMin    float64 `yaml:"interval_min"`
	IntervalMax    float64 `yaml:"interval_max"`
	WeightAsteroid int     `yaml:"weight_asteroid"`
	WeightBlob     int     `yaml:"weight_blob"`
	WeightRed      int     `yaml:"weight_red"`
	WeightSnake    int     `yaml:"weight_snake"`
}

// StarsConfig covers the background decoration.
type StarsConfig struct {
	Count int `yaml:"count"`
}

// Default returns a Config mirroring the stock sim tuning on an 800x600
// playfield.
func Default() Config {
	t := sim.DefaultTuning()
	return Config{
		Playfield: PlayfieldConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			BaseSpeed:     t.BaseSpeed,
			BoostMul:      t.BoostMul,
			EnergyMax:     t.EnergyMax,
			EnergyStart:   t.EnergyStart,
			BoostDrain:    t.BoostDrain,
			ShieldDrain:   t.ShieldDrain,
			ShootCooldown: t.ShootCooldown,
		},
		Weapons: WeaponsConfig{
			PlayerShotSpeed: t.PlayerShotSpeed,
			EnemyShotSpeed:  t.EnemyShotSpeed,
			HitDamage:       t.HitDamage,
		},
		Spawning: SpawningConfig{
			IntervalMin:    t.SpawnMin,
			IntervalMax:    t.SpawnMax,
			WeightAsteroid: t.WeightAsteroid,
			WeightBlob:     t.WeightBlob,
			WeightRed:      t.WeightRed,
			WeightSnake:    t.WeightSnake,
		},
		Stars: StarsConfig{Count: t.StarCount},
	}
}

// Tuning converts the file layout into the simulation's tuning struct.
func (c Config) Tuning() sim.Tuning {
	return sim.Tuning{
		BaseSpeed:     c.Player.BaseSpeed,
		BoostMul:      c.Player.BoostMul,
		EnergyMax:     c.Player.EnergyMax,
		EnergyStart:   c.Player.EnergyStart,
		BoostDrain:    c.Player.BoostDrain,
		ShieldDrain:   c.Player.ShieldDrain,
		ShootCooldown: c.Player.ShootCooldown,

		PlayerShotSpeed: c.Weapons.PlayerShotSpeed,
		EnemyShotSpeed:  c.Weapons.EnemyShotSpeed,
		HitDamage:       c.Weapons.HitDamage,

		SpawnMin:       c.Spawning.IntervalMin,
		SpawnMax:       c.Spawning.IntervalMax,
		WeightAsteroid: c.Spawning.WeightAsteroid,
		WeightBlob:     c.Spawning.WeightBlob,
		WeightRed:      c.Spawning.WeightRed,
		WeightSnake:    c.Spawning.WeightSnake,

		StarCount: c.Stars.Count,
	}
}
