package heli

import (
	"fmt"
	"math"

	"github.com/vovakirdan/heli-strike/internal/core"
)

// SpriteKey is a symbolic sprite name. Variants and projectiles refer
// to sprites by key; the atlas resolves keys at level load so a typo is
// a startup error, not a mid-game surprise.
type SpriteKey string

const (
	SpritePlayerHeli0   SpriteKey = "player_helicopter-0"
	SpritePlayerHeli1   SpriteKey = "player_helicopter-1"
	SpriteEnemyHeli0    SpriteKey = "enemy_helicopter-0"
	SpriteEnemyHeli1    SpriteKey = "enemy_helicopter-1"
	SpriteGunTurret     SpriteKey = "gun_turret"
	SpriteMissileTurret SpriteKey = "missile_turret"
	SpriteTurretWreck0  SpriteKey = "turret_wreck-0"
	SpriteTurretWreck1  SpriteKey = "turret_wreck-1"
	SpriteExplosion0    SpriteKey = "explosion-0"
	SpriteExplosion1    SpriteKey = "explosion-1"
	SpriteExplosion2    SpriteKey = "explosion-2"
	SpriteShot          SpriteKey = "shot"
	SpriteGunBullet     SpriteKey = "gun_bullet"
	SpriteMissile       SpriteKey = "missile"
	SpriteEnemyShot     SpriteKey = "enemy_shot"
)

// Sprite is a renderable image: glyph art in terminal cells plus the
// pixel bounds used for collision. Art rows must be equally wide.
type Sprite struct {
	Key   SpriteKey
	W, H  int // Collision bounds in world pixels
	Art   []string
	Color core.Color
}

// Atlas maps sprite keys to sprites.
type Atlas struct {
	sprites map[SpriteKey]Sprite
}

// DefaultAtlas returns the built-in sprite set.
func DefaultAtlas() *Atlas {
	at := &Atlas{sprites: make(map[SpriteKey]Sprite)}
	add := func(s Sprite) { at.sprites[s.Key] = s }

	// Helicopters alternate two rotor frames.
	add(Sprite{Key: SpritePlayerHeli0, W: 26, H: 30, Art: []string{"═╬═", "▟█▙"}, Color: core.ColorBrightWhite})
	add(Sprite{Key: SpritePlayerHeli1, W: 26, H: 30, Art: []string{"─╬─", "▟█▙"}, Color: core.ColorBrightWhite})
	add(Sprite{Key: SpriteEnemyHeli0, W: 26, H: 30, Art: []string{"═╬═", "▜█▛"}, Color: core.ColorBrightRed})
	add(Sprite{Key: SpriteEnemyHeli1, W: 26, H: 30, Art: []string{"─╬─", "▜█▛"}, Color: core.ColorBrightRed})

	add(Sprite{Key: SpriteGunTurret, W: 32, H: 32, Art: []string{"▄██▄", "▀██▀"}, Color: core.ColorYellow})
	add(Sprite{Key: SpriteMissileTurret, W: 32, H: 32, Art: []string{"▄▟▙▄", "▀██▀"}, Color: core.ColorOrange})
	add(Sprite{Key: SpriteTurretWreck0, W: 32, H: 32, Art: []string{"╳▒▒╳", "▒▒▒▒"}, Color: core.ColorGray})
	add(Sprite{Key: SpriteTurretWreck1, W: 32, H: 32, Art: []string{"▒╳╳▒", "▒▒▒▒"}, Color: core.ColorGray})

	add(Sprite{Key: SpriteExplosion0, W: 32, H: 32, Art: []string{" ✶✶ ", "    "}, Color: core.ColorBrightYellow})
	add(Sprite{Key: SpriteExplosion1, W: 32, H: 32, Art: []string{"✶✶✶✶", " ✶✶ "}, Color: core.ColorBrightYellow})
	add(Sprite{Key: SpriteExplosion2, W: 32, H: 32, Art: []string{"░✶✶░", "░░░░"}, Color: core.ColorBrightRed})

	add(Sprite{Key: SpriteShot, W: 6, H: 4, Art: []string{"╹"}, Color: core.ColorBrightCyan})
	add(Sprite{Key: SpriteGunBullet, W: 16, H: 8, Art: []string{"••"}, Color: core.ColorBrightYellow})
	add(Sprite{Key: SpriteMissile, W: 9, H: 29, Art: []string{"║", "▼"}, Color: core.ColorBrightMagenta})
	add(Sprite{Key: SpriteEnemyShot, W: 5, H: 5, Art: []string{"●"}, Color: core.ColorBrightRed})

	return at
}

// Get resolves a sprite key. Unknown keys are a named error so a bad
// variant definition fails at level load instead of rendering garbage.
func (at *Atlas) Get(k SpriteKey) (Sprite, error) {
	s, ok := at.sprites[k]
	if !ok {
		return Sprite{}, fmt.Errorf("heli: unknown sprite key %q", k)
	}
	return s, nil
}

// Has reports whether a key exists.
func (at *Atlas) Has(k SpriteKey) bool {
	_, ok := at.sprites[k]
	return ok
}

// sectorArrows index counterclockwise from "east", 8 sectors of 45deg.
var sectorArrows = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// AngleSector maps a math angle (radians, counterclockwise, y up) to
// one of 8 directions.
func AngleSector(rad float64) int {
	turn := rad / (2 * math.Pi)
	turn -= math.Floor(turn)
	return int(math.Floor(turn*8+0.5)) % 8
}

// Rotated returns a sprite facing the given angle. Turrets get their
// aim arrow composited into the art; everything else rotates by keeping
// its bounds and art, since the glyphs are direction-neutral at cell
// scale. Bounds stay centered on the original sprite center.
func (at *Atlas) Rotated(k SpriteKey, rad float64) (Sprite, error) {
	s, err := at.Get(k)
	if err != nil {
		return Sprite{}, err
	}
	if k != SpriteGunTurret && k != SpriteMissileTurret {
		return s, nil
	}

	arrow := sectorArrows[AngleSector(rad)]
	art := make([]string, len(s.Art))
	copy(art, s.Art)
	row := []rune(art[0])
	row[1] = arrow
	art[0] = string(row)
	s.Art = art
	return s, nil
}
