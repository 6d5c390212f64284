// Package heli implements the helicopter shooter: a tile-scrolling
// world of actors (player, enemy helicopters, turrets, projectiles)
// with group-based collision damage, driven by a fixed simulation tick
// and wrapped in a splash / level / game-over screen machine.
package heli

import (
	"github.com/vovakirdan/heli-strike/internal/audio"
	"github.com/vovakirdan/heli-strike/internal/core"
)

// Group is an actor's faction tag.
type Group int

const (
	GroupNone Group = iota
	GroupPlayer
	GroupEnemy
)

// String returns a human-readable group name.
func (g Group) String() string {
	switch g {
	case GroupPlayer:
		return "player"
	case GroupEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// AnimState is an actor's animation state. Exactly one state is active
// at a time; animTick is the per-state counter.
type AnimState int

const (
	// AnimNormal shows the variant's canonical sprite (or the
	// aim-tracking sprite for turrets).
	AnimNormal AnimState = iota

	// AnimDamaged flickers the sprite for the invincibility window,
	// then returns to AnimNormal.
	AnimDamaged

	// AnimDestroyed plays the explosion sequence, then runs the
	// variant's after-destroyed hook (removal, or wreck-freeze).
	AnimDestroyed

	// AnimWreck is the terminal frozen state of destroyed turrets.
	AnimWreck
)

// Explosion frames advance every explosionFrameTicks ticks; the
// sequence is three frames long, so destruction takes 9 ticks total.
const (
	explosionFrames     = 3
	explosionFrameTicks = 3
)

// flickerPeriod blanks the sprite every Nth tick of the damage window.
const flickerPeriod = 3

var explosionSprites = [explosionFrames]SpriteKey{
	SpriteExplosion0, SpriteExplosion1, SpriteExplosion2,
}

// Actor is a simulated entity. There is no subclassing: a single
// concrete record carries a variant tag whose behavior functions give
// each kind of actor its semantics.
type Actor struct {
	Variant *Variant

	// Position is the top-left corner in world pixels; W and H are the
	// collision bounds. Sub-pixel precision matters for slow shots.
	X, Y float64
	W, H int

	// Origin is the spawn-time rectangle. Movement strategies derive
	// positions from it, never from accumulated state.
	Origin core.Rect

	Group   Group // Faction this actor belongs to
	Attacks Group // Faction whose collisions this actor reacts to

	HP     int
	Damage int // Damage dealt to whatever this actor hits

	// Invincible actors neither take nor deal damage. The flag is set
	// by a post-frame task, so it takes effect the tick after the hit
	// that caused it.
	Invincible bool

	Anim     AnimState
	animTick int

	Move MoveFunc // Trajectory for enemy helicopters, nil otherwise

	firstFrame int
	prevRect   core.Rect // Rect at tick start, for swept tile blocking
	removed    bool

	// Projectile velocity in pixels per tick.
	vx, vy float64

	// Turret aim in radians (math convention, y up).
	aim     float64
	rotates bool

	// Rendering state owned by the animation step.
	sprite  SpriteKey
	visible bool

	// Player bookkeeping.
	fireAt  int // Earliest frame the cannon may fire again
	alerted bool
}

// Rect returns the actor's current bounding rectangle in world pixels.
func (a *Actor) Rect() core.Rect {
	return core.Rect{X: int(a.X), Y: int(a.Y), W: a.W, H: a.H}
}

// Age returns how many ticks the actor has been alive at the given frame.
func (a *Actor) Age(frame int) int {
	return frame - a.firstFrame
}

// Removed reports whether the actor has been removed from the world.
func (a *Actor) Removed() bool {
	return a.removed
}

// Sprite returns the sprite key chosen by the last animation step.
func (a *Actor) Sprite() SpriteKey {
	return a.sprite
}

// Visible reports whether the actor should be drawn this tick (false
// during damage-flicker blank frames).
func (a *Actor) Visible() bool {
	return a.visible
}

// hitBy applies damage from attacker to a. Destroyed and wrecked actors
// ignore damage entirely; so do hits involving an invincible party.
func (a *Actor) hitBy(w *World, attacker *Actor) {
	if a.Anim == AnimDestroyed || a.Anim == AnimWreck {
		return
	}
	if a.Invincible || attacker.Invincible {
		return
	}

	a.HP -= attacker.Damage
	if a.HP > 0 {
		a.damaged(w)
	} else {
		a.destroyed(w)
	}
}

// damaged starts the flicker window. Invincibility applies from the
// next tick so a second overlap in the same resolution pass still counts.
func (a *Actor) damaged(w *World) {
	a.Anim = AnimDamaged
	a.animTick = a.Variant.InvincibleTicks
	if a.Group == GroupPlayer {
		w.audio.Play(audio.CueDamaged, 0)
	}
	w.Defer(func() { a.Invincible = true })
}

// destroyed starts the explosion, or removes the actor outright for
// quiet-death variants (projectiles).
func (a *Actor) destroyed(w *World) {
	if a.Variant.QuietDeath {
		w.Remove(a)
		return
	}

	a.Anim = AnimDestroyed
	a.animTick = 0
	w.audio.Play(audio.CueExplosion, 0)
	if a.Variant.KillScore > 0 {
		w.score += a.Variant.KillScore
	}
	w.Defer(func() { a.Invincible = true })
}

// stepAnim advances the active animation state by one tick.
func (a *Actor) stepAnim(w *World) {
	switch a.Anim {
	case AnimNormal:
		a.visible = true
		a.animateNormal(w)

	case AnimDamaged:
		a.animTick--
		if a.animTick%flickerPeriod == 0 {
			a.visible = false
		} else {
			a.visible = true
			a.animateNormal(w)
		}
		if a.animTick <= 0 {
			a.Anim = AnimNormal
			a.Invincible = false
			a.visible = true
		}

	case AnimDestroyed:
		a.visible = true
		a.rotates = false
		n := a.animTick / explosionFrameTicks
		a.animTick++
		if n < explosionFrames {
			a.sprite = explosionSprites[n]
		} else if a.Variant.AfterDestroyed != nil {
			a.Variant.AfterDestroyed(w, a)
		} else {
			w.Remove(a)
		}

	case AnimWreck:
		a.visible = true
		a.sprite = wreckSprite(a.Age(w.frame))
	}
}

// animateNormal runs the variant's default animator, falling back to
// the sprite fixed at spawn time (projectiles keep their launch sprite).
func (a *Actor) animateNormal(w *World) {
	if a.Variant.Animate != nil {
		a.Variant.Animate(w, a)
		return
	}
	if a.sprite == "" {
		a.sprite = a.Variant.Sprite
	}
}

// wreckSprite alternates the two wreck frames, four ticks each.
func wreckSprite(age int) SpriteKey {
	if (age%8)/4 == 0 {
		return SpriteTurretWreck0
	}
	return SpriteTurretWreck1
}

// cull removes the actor once it leaves the tracked bounds. Actors are
// allowed one tile of headroom above the viewport so a fresh spawn one
// row ahead of the scroll is not wiped the instant it appears.
func (a *Actor) cull(w *World) {
	r := a.Rect()
	v := w.view
	if r.X < v.X || r.Right() > v.Right() ||
		r.Y > v.Bottom() || r.Bottom() < v.Y-cullGraceTiles*w.tileSize {
		w.Remove(a)
	}
}
