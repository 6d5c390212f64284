package heli

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/heli-strike/internal/audio"
	"github.com/vovakirdan/heli-strike/internal/config"
	"github.com/vovakirdan/heli-strike/internal/core"
	"github.com/vovakirdan/heli-strike/internal/level"
)

// Outcome is a terminal game event raised by the simulation and
// consumed by the screen machine after the tick that produced it.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeGameOver
	OutcomeWinner
)

// cullGraceTiles is the headroom above the viewport, in tiles, before
// an actor is culled. One tile keeps fresh spawns alive: codes run one
// row ahead of the scroll, so a stricter margin would wipe every enemy
// the tick it appears.
const cullGraceTiles = 1

// World owns one level run: the scrolling viewport, the live actors,
// spawning, collision resolution, and the deferred post-frame tasks.
// It is single-threaded; Step is the only mutator.
type World struct {
	cfg    *config.HeliConfig
	cat    *Catalog
	level  *level.Level
	atlas  *Atlas
	audio  audio.Player
	rng    *rand.Rand
	spawns map[int]SpawnSpec

	view  core.Rect
	frame int

	actors []*Actor
	post   []func()

	score   int
	paused  bool
	outcome Outcome
	won     bool
	player  *Actor

	input core.InputFrame

	tileSize    int
	scrollSpeed int
}

// NewWorld builds a world over a fresh copy of the level, validates the
// spawn-code mapping and sprite references, positions the viewport at
// the bottom, and runs the codes for the initially visible rows. A
// failed validation aborts the level start.
func NewWorld(cfg *config.HeliConfig, cat *Catalog, lvl *level.Level, atlas *Atlas, aud audio.Player, seed int64) (*World, error) {
	w := &World{
		cfg:         cfg,
		cat:         cat,
		level:       lvl,
		atlas:       atlas,
		audio:       aud,
		rng:         rand.New(rand.NewSource(seed)),
		spawns:      cat.SpawnTable(),
		tileSize:    cfg.World.TileSize,
		scrollSpeed: cfg.World.ScrollSpeed,
	}
	if err := w.validate(); err != nil {
		return nil, err
	}

	worldH := lvl.Height * w.tileSize
	w.view = core.Rect{
		X: 0, Y: worldH - cfg.World.ViewHeight,
		W: cfg.World.ViewWidth, H: cfg.World.ViewHeight,
	}

	// Codes for every visible row, plus the grace row above, fire
	// before the first tick.
	for ty := w.view.Y/w.tileSize - 1; ty < lvl.Height; ty++ {
		w.runCodes(ty)
	}
	if w.player == nil {
		return nil, fmt.Errorf("heli: level %q has no player spawn in the opening view", lvl.Name)
	}
	return w, nil
}

// validate cross-checks the level's spawn codes against the catalog
// and every sprite key the run can reach against the atlas.
func (w *World) validate() error {
	for _, code := range w.level.UsedCodes() {
		spec, ok := w.spawns[code]
		if !ok {
			return fmt.Errorf("heli: level %q uses unmapped spawn code %d", w.level.Name, code)
		}
		if !w.atlas.Has(spec.Variant.Sprite) {
			return fmt.Errorf("heli: variant %q references unknown sprite %q", spec.Variant.Name, spec.Variant.Sprite)
		}
	}
	for _, k := range []SpriteKey{
		SpritePlayerHeli1, SpriteEnemyHeli1,
		SpriteTurretWreck0, SpriteTurretWreck1,
		SpriteExplosion0, SpriteExplosion1, SpriteExplosion2,
		w.cat.playerShot.Sprite, w.cat.enemyShot.Sprite,
		SpriteGunBullet, SpriteMissile,
	} {
		if !w.atlas.Has(k) {
			return fmt.Errorf("heli: atlas is missing sprite %q", k)
		}
	}
	return nil
}

// Step advances the simulation one tick: toggle pause, scroll, spawn
// the newly revealed row, update and animate every actor, resolve
// collisions and tile blocking, then run the deferred tasks queued
// during the tick.
func (w *World) Step(in core.InputFrame) {
	w.post = w.post[:0]
	w.input = in

	if in.Has(core.ActionConfirm) {
		w.paused = !w.paused
	}
	if w.paused {
		return
	}

	if w.view.Y > 0 {
		w.view.Y -= w.scrollSpeed
		if w.view.Y < 0 {
			w.view.Y = 0
		}
	}
	w.runCodes(w.view.Y/w.tileSize - 1)

	snapshot := append([]*Actor(nil), w.actors...)
	for _, a := range snapshot {
		if a.removed {
			continue
		}
		a.prevRect = a.Rect()
		if a.Variant.Update != nil {
			a.Variant.Update(w, a)
		}
		a.stepAnim(w)
		a.cull(w)
	}

	w.resolveCollisions()
	w.resolveTileBlocking()

	for _, f := range w.post {
		f()
	}
	w.compact()
	w.frame++
}

// runCodes spawns an actor for every non-zero code in the given tile
// row and clears the codes so they never fire twice. Rows outside the
// level are a no-op.
func (w *World) runCodes(ty int) {
	if ty < 0 || ty >= w.level.Height {
		return
	}
	for tx := 0; tx < w.level.Width; tx++ {
		code := w.level.CodeAt(tx, ty)
		if code == 0 {
			continue
		}
		w.spawn(w.spawns[code], tx, ty)
		w.level.ClearCode(tx, ty)
	}
}

// spawn places a variant's actor on the given tile.
func (w *World) spawn(spec SpawnSpec, tx, ty int) *Actor {
	spr, _ := w.atlas.Get(spec.Variant.Sprite)
	v := spec.Variant
	a := &Actor{
		Variant:    v,
		X:          float64(tx * w.tileSize),
		Y:          float64(ty * w.tileSize),
		W:          spr.W,
		H:          spr.H,
		Group:      v.Group,
		Attacks:    v.Attacks,
		HP:         v.HitPoints,
		Damage:     v.ContactDamage,
		Move:       spec.Move,
		firstFrame: w.frame,
		sprite:     v.Sprite,
		visible:    true,
	}
	a.Origin = a.Rect()
	a.prevRect = a.Origin
	w.actors = append(w.actors, a)
	if v == w.cat.Player {
		w.player = a
	}
	return a
}

// SpawnProjectile launches a shot from the given world position along
// angle (radians, math convention). The projectile inherits the
// shooter's group and attackable group.
func (w *World) SpawnProjectile(shooter *Actor, x, y, angle float64, shot ShotSpec) *Actor {
	spr, _ := w.atlas.Get(shot.Sprite)
	a := &Actor{
		Variant:    w.cat.projectile,
		X:          x,
		Y:          y,
		W:          spr.W,
		H:          spr.H,
		Group:      shooter.Group,
		Attacks:    shooter.Attacks,
		HP:         w.cat.projectile.HitPoints,
		Damage:     shot.Damage,
		firstFrame: w.frame,
		sprite:     shot.Sprite,
		visible:    true,
		vx:         math.Cos(angle) * shot.Speed,
		vy:         -math.Sin(angle) * shot.Speed,
	}
	a.Origin = a.Rect()
	a.prevRect = a.Origin
	w.actors = append(w.actors, a)
	return a
}

// Remove marks the actor as gone. Removing an actor twice is a no-op;
// the return value reports whether this call did the removal. The
// slice itself is compacted at the end of the tick.
func (w *World) Remove(a *Actor) bool {
	if a.removed {
		return false
	}
	a.removed = true
	return true
}

// Defer queues f to run after collision resolution this tick.
func (w *World) Defer(f func()) {
	w.post = append(w.post, f)
}

// compact drops removed actors from the collection.
func (w *World) compact() {
	kept := w.actors[:0]
	for _, a := range w.actors {
		if !a.removed {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(w.actors); i++ {
		w.actors[i] = nil
	}
	w.actors = kept
}

// checkWin raises the winner outcome once the scroll has stopped and
// every remaining enemy is invincible, which is what turret wrecks
// are. Live enemies still fighting block the win; the outcome fires
// exactly once per run.
func (w *World) checkWin() {
	if w.won {
		return
	}
	for _, a := range w.actors {
		if !a.removed && a.Group == GroupEnemy && !a.Invincible {
			return
		}
	}
	w.won = true
	w.setOutcome(OutcomeWinner)
}

// setOutcome records a terminal event. Only the first one sticks, so a
// tick that somehow produces both a win and a death resolves to
// whichever fired first.
func (w *World) setOutcome(o Outcome) {
	if w.outcome == OutcomeNone {
		w.outcome = o
	}
}

// TakeOutcome returns the pending terminal event and clears it.
func (w *World) TakeOutcome() Outcome {
	o := w.outcome
	w.outcome = OutcomeNone
	return o
}

// Score returns the player's accumulated score.
func (w *World) Score() int { return w.score }

// Frame returns the current tick number.
func (w *World) Frame() int { return w.frame }

// View returns the current viewport rectangle in world pixels.
func (w *World) View() core.Rect { return w.view }

// Paused reports whether the simulation is paused.
func (w *World) Paused() bool { return w.paused }

// Player returns the player actor, nil once it has been removed.
func (w *World) Player() *Actor {
	if w.player != nil && w.player.removed {
		return nil
	}
	return w.player
}

// Actors returns the live actor collection. Callers must not mutate it.
func (w *World) Actors() []*Actor { return w.actors }

// Level returns the level this world is running.
func (w *World) Level() *level.Level { return w.level }
