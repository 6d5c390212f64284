package config

import (
	_ "embed"
)

//go:embed defaults/heli.yaml
var defaultHeliYAML []byte

// DefaultHeliConfig returns the default game configuration.
// The numbers reproduce the classic feel: a 240x240 pixel viewport over
// 16 pixel tiles, climbing 2 pixels per tick at 40 ticks per second.
func DefaultHeliConfig() HeliConfig {
	return HeliConfig{
		World: WorldConfig{
			ScrollSpeed: 2,
			TileSize:    16,
			ViewWidth:   240,
			ViewHeight:  240,
		},
		Player: PlayerConfig{
			HitPoints:       10,
			ContactDamage:   2,
			InvincibleTicks: 45,
			MoveSpeed:       5,
			FireCooldown:    4,
			ShotSpeed:       6,
		},
		EnemyHeli: EnemyConfig{
			HitPoints:     1,
			ContactDamage: 1,
			KillScore:     500,
			FireChance:    31,
			ShotSpeed:     6,
		},
		GunTurret: TurretConfig{
			HitPoints:     3,
			ContactDamage: 1,
			KillScore:     1500,
			FirePeriod:    20,
			ShotSpeed:     5.5,
		},
		MissileTurret: TurretConfig{
			HitPoints:     3,
			ContactDamage: 2,
			KillScore:     1500,
			FirePeriod:    30,
			ShotSpeed:     5,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}
