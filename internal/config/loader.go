package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHeli loads the game configuration.
// Search order: customPath -> ~/.heli/configs/heli.yaml -> ./configs/heli.yaml -> embedded default
func LoadHeli(customPath string) (HeliConfig, error) {
	var cfg HeliConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("heli.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/heli.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHeliYAML, &cfg); err != nil {
		return DefaultHeliConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Validate reports the first structurally impossible value it finds.
// Anything the simulation would divide by, or loop on, must be positive.
func (c HeliConfig) Validate() error {
	if c.World.TileSize <= 0 {
		return fmt.Errorf("world.tile_size must be positive, got %d", c.World.TileSize)
	}
	if c.World.ScrollSpeed <= 0 {
		return fmt.Errorf("world.scroll_speed must be positive, got %d", c.World.ScrollSpeed)
	}
	if c.World.ViewWidth <= 0 || c.World.ViewHeight <= 0 {
		return fmt.Errorf("world view must be positive, got %dx%d", c.World.ViewWidth, c.World.ViewHeight)
	}
	if c.Player.HitPoints <= 0 {
		return fmt.Errorf("player.hit_points must be positive, got %d", c.Player.HitPoints)
	}
	if c.Player.FireCooldown <= 0 {
		return fmt.Errorf("player.fire_cooldown must be positive, got %d", c.Player.FireCooldown)
	}
	if c.EnemyHeli.FireChance <= 0 {
		return fmt.Errorf("enemy_heli.fire_chance must be positive, got %d", c.EnemyHeli.FireChance)
	}
	if c.GunTurret.FirePeriod <= 0 || c.MissileTurret.FirePeriod <= 0 {
		return fmt.Errorf("turret fire_period must be positive")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".heli", "configs", filename)
}
