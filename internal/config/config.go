// Package config provides YAML-based game configuration loading and
// difficulty presets for Heli Strike.
package config

// HeliConfig contains all tunable parameters for the helicopter game.
// The zero value is not usable; start from DefaultHeliConfig or LoadHeli.
type HeliConfig struct {
	World         WorldConfig  `yaml:"world"`
	Player        PlayerConfig `yaml:"player"`
	EnemyHeli     EnemyConfig  `yaml:"enemy_heli"`
	GunTurret     TurretConfig `yaml:"gun_turret"`
	MissileTurret TurretConfig `yaml:"missile_turret"`
	Audio         AudioConfig  `yaml:"audio"`
}

// WorldConfig defines viewport and scroll parameters.
// Sizes are world pixels, not terminal cells.
type WorldConfig struct {
	ScrollSpeed int `yaml:"scroll_speed"` // Pixels the viewport climbs per tick
	TileSize    int `yaml:"tile_size"`    // Square tile edge in pixels
	ViewWidth   int `yaml:"view_width"`
	ViewHeight  int `yaml:"view_height"`
}

// PlayerConfig defines the player helicopter.
type PlayerConfig struct {
	HitPoints       int     `yaml:"hit_points"`
	ContactDamage   int     `yaml:"contact_damage"`
	InvincibleTicks int     `yaml:"invincible_ticks"` // Damage flicker window
	MoveSpeed       int     `yaml:"move_speed"`       // Pixels per tick per held direction
	FireCooldown    int     `yaml:"fire_cooldown"`    // Minimum ticks between shots
	ShotSpeed       float64 `yaml:"shot_speed"`
}

// EnemyConfig defines enemy helicopters.
type EnemyConfig struct {
	HitPoints     int     `yaml:"hit_points"`
	ContactDamage int     `yaml:"contact_damage"`
	KillScore     int     `yaml:"kill_score"`
	FireChance    int     `yaml:"fire_chance"` // Fires with probability 1/fire_chance per tick
	ShotSpeed     float64 `yaml:"shot_speed"`
}

// TurretConfig defines a stationary turret variant.
type TurretConfig struct {
	HitPoints     int     `yaml:"hit_points"`
	ContactDamage int     `yaml:"contact_damage"`
	KillScore     int     `yaml:"kill_score"`
	FirePeriod    int     `yaml:"fire_period"` // Fires every N ticks
	ShotSpeed     float64 `yaml:"shot_speed"`
}

// AudioConfig toggles sound effects.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
