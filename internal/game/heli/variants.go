package heli

import (
	"math"
	"time"

	"github.com/vovakirdan/heli-strike/internal/audio"
	"github.com/vovakirdan/heli-strike/internal/config"
	"github.com/vovakirdan/heli-strike/internal/core"
)

// ShotSpec describes the projectile a variant fires.
type ShotSpec struct {
	Sprite SpriteKey
	Speed  float64
	Period int // Fire every N ticks (turrets)
	Damage int
}

// Variant is the per-kind behavior record for actors. Instead of a
// class hierarchy there is one concrete Actor type; the variant
// supplies its stats and behavior functions.
type Variant struct {
	Name            string
	Sprite          SpriteKey
	Group           Group
	Attacks         Group
	HitPoints       int
	ContactDamage   int
	InvincibleTicks int
	KillScore       int

	// QuietDeath removes the actor on fatal damage with no explosion,
	// score, or sound. Projectiles die this way.
	QuietDeath bool

	// Update runs once per tick before collision resolution.
	Update func(*World, *Actor)

	// Animate picks the sprite while the actor is in its normal state.
	// Nil keeps the sprite fixed at spawn time.
	Animate func(*World, *Actor)

	// AfterDestroyed runs once the explosion sequence has played out.
	// Nil removes the actor.
	AfterDestroyed func(*World, *Actor)
}

// Shots deal the artillery default unless the variant overrides it.
const defaultShotDamage = 1

// Non-player actors flicker only briefly when damaged.
const defaultInvincibleTicks = 5

// Catalog holds the variant records for one level, built from config.
// Tile codes in level assets map into it through SpawnTable.
type Catalog struct {
	Player        *Variant
	EnemyHeli     *Variant
	GunTurret     *Variant
	MissileTurret *Variant

	// projectile is shared by all shots; group, damage, and sprite are
	// stamped onto the actor at launch.
	projectile *Variant

	playerShot ShotSpec
	enemyShot  ShotSpec

	playerSpeed  int
	fireCooldown int
	fireChance   int
}

// SpawnSpec ties a tile code to a variant and an optional movement
// strategy.
type SpawnSpec struct {
	Variant *Variant
	Move    MoveFunc
}

// NewCatalog builds the variant records from the given configuration.
func NewCatalog(cfg *config.HeliConfig) *Catalog {
	c := &Catalog{
		playerSpeed:  cfg.Player.MoveSpeed,
		fireCooldown: cfg.Player.FireCooldown,
		fireChance:   cfg.EnemyHeli.FireChance,
	}

	c.playerShot = ShotSpec{
		Sprite: SpriteShot,
		Speed:  cfg.Player.ShotSpeed,
		Damage: defaultShotDamage,
	}
	c.enemyShot = ShotSpec{
		Sprite: SpriteEnemyShot,
		Speed:  cfg.EnemyHeli.ShotSpeed,
		Damage: defaultShotDamage,
	}
	gunShot := ShotSpec{
		Sprite: SpriteGunBullet,
		Speed:  cfg.GunTurret.ShotSpeed,
		Period: cfg.GunTurret.FirePeriod,
		Damage: cfg.GunTurret.ContactDamage,
	}
	missileShot := ShotSpec{
		Sprite: SpriteMissile,
		Speed:  cfg.MissileTurret.ShotSpeed,
		Period: cfg.MissileTurret.FirePeriod,
		Damage: cfg.MissileTurret.ContactDamage,
	}

	c.Player = &Variant{
		Name:            "player",
		Sprite:          SpritePlayerHeli0,
		Group:           GroupPlayer,
		Attacks:         GroupEnemy,
		HitPoints:       cfg.Player.HitPoints,
		ContactDamage:   cfg.Player.ContactDamage,
		InvincibleTicks: cfg.Player.InvincibleTicks,
		Update:          c.playerUpdate,
		Animate:         heliAnimate(SpritePlayerHeli0, SpritePlayerHeli1),
		AfterDestroyed:  playerAfterDestroyed,
	}

	c.EnemyHeli = &Variant{
		Name:            "enemy_heli",
		Sprite:          SpriteEnemyHeli0,
		Group:           GroupEnemy,
		Attacks:         GroupPlayer,
		HitPoints:       cfg.EnemyHeli.HitPoints,
		ContactDamage:   cfg.EnemyHeli.ContactDamage,
		InvincibleTicks: defaultInvincibleTicks,
		KillScore:       cfg.EnemyHeli.KillScore,
		Update:          c.enemyHeliUpdate,
		Animate:         heliAnimate(SpriteEnemyHeli0, SpriteEnemyHeli1),
	}

	c.GunTurret = &Variant{
		Name:            "gun_turret",
		Sprite:          SpriteGunTurret,
		Group:           GroupEnemy,
		Attacks:         GroupPlayer,
		HitPoints:       cfg.GunTurret.HitPoints,
		ContactDamage:   cfg.GunTurret.ContactDamage,
		InvincibleTicks: defaultInvincibleTicks,
		KillScore:       cfg.GunTurret.KillScore,
		Update:          turretUpdate(gunShot),
		Animate:         turretAnimate,
		AfterDestroyed:  turretAfterDestroyed,
	}

	c.MissileTurret = &Variant{
		Name:            "missile_turret",
		Sprite:          SpriteMissileTurret,
		Group:           GroupEnemy,
		Attacks:         GroupPlayer,
		HitPoints:       cfg.MissileTurret.HitPoints,
		ContactDamage:   cfg.MissileTurret.ContactDamage,
		InvincibleTicks: defaultInvincibleTicks,
		KillScore:       cfg.MissileTurret.KillScore,
		Update:          turretUpdate(missileShot),
		Animate:         turretAnimate,
		AfterDestroyed:  turretAfterDestroyed,
	}

	c.projectile = &Variant{
		Name:            "projectile",
		HitPoints:       1,
		InvincibleTicks: defaultInvincibleTicks,
		QuietDeath:      true,
		Update:          projectileUpdate,
	}

	return c
}

// SpawnTable maps level tile codes to spawn specs.
func (c *Catalog) SpawnTable() map[int]SpawnSpec {
	return map[int]SpawnSpec{
		1: {Variant: c.Player},
		2: {Variant: c.EnemyHeli, Move: MoveLine},
		3: {Variant: c.EnemyHeli, Move: MoveSine},
		4: {Variant: c.EnemyHeli, Move: MoveCircle},
		5: {Variant: c.GunTurret},
		6: {Variant: c.MissileTurret},
	}
}

// playerUpdate rides the scroll, applies held directions, clamps to
// the viewport, and fires the cannon on a cooldown. Once the viewport
// has reached the top of the level the scroll stops, the red alert
// starts, and every tick checks whether all enemies are down.
func (c *Catalog) playerUpdate(w *World, a *Actor) {
	if w.view.Y >= w.tileSize {
		a.Y -= float64(w.scrollSpeed)
	} else {
		if !a.alerted {
			a.alerted = true
			w.audio.Loop(audio.CueRedAlert)
		}
		w.checkWin()
	}

	var dx, dy int
	if w.input.Has(core.ActionUp) {
		dy--
	}
	if w.input.Has(core.ActionDown) {
		dy++
	}
	if w.input.Has(core.ActionLeft) {
		dx--
	}
	if w.input.Has(core.ActionRight) {
		dx++
	}
	a.X += float64(dx * c.playerSpeed)
	a.Y += float64(dy * c.playerSpeed)
	clampToView(a, w.view)

	if w.input.Has(core.ActionFire) && w.frame >= a.fireAt {
		a.fireAt = w.frame + c.fireCooldown
		r := a.Rect()
		cx, _ := r.Center()
		w.SpawnProjectile(a, float64(cx-6), float64(r.Y-2), 0.5*math.Pi, c.playerShot)
		w.audio.Play(audio.CueShot, 20*time.Millisecond)
	}
}

// enemyHeliUpdate follows the movement strategy and fires downward at
// random. Dying helicopters hold their fire.
func (c *Catalog) enemyHeliUpdate(w *World, a *Actor) {
	if a.Move != nil {
		a.X, a.Y = a.Move(a.Origin, a.Age(w.frame), w.scrollSpeed)
	}
	if w.rng.Intn(c.fireChance) == 0 && a.HP > 0 {
		r := a.Rect()
		cx, _ := r.Center()
		w.SpawnProjectile(a, float64(cx-6), float64(r.Bottom()+2), 1.5*math.Pi, c.enemyShot)
	}
}

// turretUpdate tracks the player and fires along the aim on a fixed
// period, starting with the spawn tick.
func turretUpdate(shot ShotSpec) func(*World, *Actor) {
	return func(w *World, a *Actor) {
		p := w.Player()
		if p == nil {
			return
		}
		a.aim = math.Atan2(-(p.Y - a.Y), p.X-a.X)
		if a.Age(w.frame)%shot.Period == 0 && a.HP > 0 {
			cx, cy := a.Rect().Center()
			w.SpawnProjectile(a, float64(cx), float64(cy), a.aim, shot)
		}
	}
}

// projectileUpdate applies the launch velocity. The vertical term
// subtracts the scroll speed so shots travel relative to the moving
// world, exactly like every other actor riding the viewport.
func projectileUpdate(w *World, a *Actor) {
	a.X += a.vx
	a.Y += a.vy - float64(w.scrollSpeed)
}

// heliAnimate alternates the two rotor frames, two ticks each.
func heliAnimate(frame0, frame1 SpriteKey) func(*World, *Actor) {
	return func(w *World, a *Actor) {
		if (a.Age(w.frame)%4)/2 == 0 {
			a.sprite = frame0
		} else {
			a.sprite = frame1
		}
	}
}

// turretAnimate keeps the base sprite and marks the actor for
// aim-rotated rendering.
func turretAnimate(w *World, a *Actor) {
	a.rotates = true
	a.sprite = a.Variant.Sprite
}

// turretAfterDestroyed freezes the turret into a smoking wreck instead
// of removing it. The wreck stays invincible, so it no longer blocks
// the winner check.
func turretAfterDestroyed(w *World, a *Actor) {
	a.Anim = AnimWreck
	a.animTick = 0
}

// playerAfterDestroyed removes the player and ends the level once the
// explosion has played out.
func playerAfterDestroyed(w *World, a *Actor) {
	w.Remove(a)
	w.setOutcome(OutcomeGameOver)
}

// clampToView keeps the actor's rectangle inside the viewport.
func clampToView(a *Actor, view core.Rect) {
	a.X = core.ClampF(a.X, float64(view.X), float64(view.Right()-a.W))
	a.Y = core.ClampF(a.Y, float64(view.Y), float64(view.Bottom()-a.H))
}
