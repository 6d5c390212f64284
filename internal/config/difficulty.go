package config

// ApplyHeliPreset adjusts a loaded config for a named difficulty.
// Unknown or empty presets leave the config untouched.
func ApplyHeliPreset(cfg *HeliConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.HitPoints = 15
		cfg.Player.InvincibleTicks = 60
		cfg.EnemyHeli.FireChance = 46
	case DifficultyHard:
		cfg.Player.HitPoints = 6
		cfg.Player.InvincibleTicks = 30
		cfg.EnemyHeli.FireChance = 21
		cfg.GunTurret.FirePeriod = 15
		cfg.MissileTurret.FirePeriod = 22
	case DifficultyNormal:
		// Defaults are the normal preset.
	}
}

// ParsePreset maps a CLI string to a preset. Empty and unknown strings
// both map to the empty preset, which ApplyHeliPreset ignores.
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	}
	return ""
}
