package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg HeliConfig
	if err := yaml.Unmarshal(defaultHeliYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultHeliConfig() {
		t.Errorf("embedded default drifted from DefaultHeliConfig:\n%+v\nvs\n%+v", cfg, DefaultHeliConfig())
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultHeliConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}

	bad := DefaultHeliConfig()
	bad.World.TileSize = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero tile_size should not validate")
	}

	bad = DefaultHeliConfig()
	bad.EnemyHeli.FireChance = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero fire_chance should not validate")
	}

	bad = DefaultHeliConfig()
	bad.Player.FireCooldown = -1
	if err := bad.Validate(); err == nil {
		t.Error("negative fire_cooldown should not validate")
	}
}

func TestLoadHeliCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "heli.yaml")

	custom := DefaultHeliConfig()
	custom.Player.HitPoints = 3
	data, err := yaml.Marshal(custom)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHeli(path)
	if err != nil {
		t.Fatalf("LoadHeli(%s): %v", path, err)
	}
	if cfg.Player.HitPoints != 3 {
		t.Errorf("custom hit_points = %d, expected 3", cfg.Player.HitPoints)
	}
}

func TestLoadHeliMissingCustomPath(t *testing.T) {
	if _, err := LoadHeli(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing explicit config path should be an error")
	}
}

func TestApplyHeliPreset(t *testing.T) {
	cfg := DefaultHeliConfig()
	ApplyHeliPreset(&cfg, DifficultyHard)
	if cfg.Player.HitPoints >= DefaultHeliConfig().Player.HitPoints {
		t.Error("hard preset should lower player hit points")
	}

	cfg = DefaultHeliConfig()
	ApplyHeliPreset(&cfg, DifficultyEasy)
	if cfg.Player.HitPoints <= DefaultHeliConfig().Player.HitPoints {
		t.Error("easy preset should raise player hit points")
	}

	cfg = DefaultHeliConfig()
	ApplyHeliPreset(&cfg, "")
	if cfg != DefaultHeliConfig() {
		t.Error("empty preset should leave config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("easy should parse")
	}
	if ParsePreset("speedrun") != "" {
		t.Error("unknown preset should map to empty")
	}
}
