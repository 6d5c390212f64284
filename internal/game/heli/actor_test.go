package heli

import (
	"testing"
)

func TestDamageWindowFlickersAndRecovers(t *testing.T) {
	w, cat := newTestWorld(t, tallRows())
	p := w.Player()

	shot := &Actor{Variant: cat.projectile, Damage: 1}
	p.hitBy(w, shot)
	flushPost(w)

	if p.Anim != AnimDamaged || !p.Invincible {
		t.Fatalf("anim=%v invincible=%v after hit, want AnimDamaged/true", p.Anim, p.Invincible)
	}

	blanks := 0
	ticks := 0
	for p.Anim == AnimDamaged && ticks < 100 {
		w.Step(emptyInput())
		ticks++
		if !p.Visible() {
			blanks++
		}
		// Hits during the window never land.
		if p.Invincible {
			hp := p.HP
			p.hitBy(w, shot)
			if p.HP != hp {
				t.Fatalf("HP dropped from %d to %d during invincibility", hp, p.HP)
			}
		}
	}

	if ticks != p.Variant.InvincibleTicks {
		t.Errorf("damage window lasted %d ticks, want %d", ticks, p.Variant.InvincibleTicks)
	}
	if blanks == 0 {
		t.Error("sprite never blanked during the flicker window")
	}
	if p.Anim != AnimNormal || p.Invincible || !p.Visible() {
		t.Errorf("anim=%v invincible=%v visible=%v after window, want AnimNormal/false/true",
			p.Anim, p.Invincible, p.Visible())
	}
}

func TestExplosionSequenceRemovesEnemy(t *testing.T) {
	w, cat := newTestWorld(t, tallRows())

	e := w.spawn(SpawnSpec{Variant: cat.EnemyHeli}, 0, 0)
	v := w.View()
	e.X, e.Y = float64(v.X+64), float64(v.Y+64)
	e.Origin = e.Rect()

	shot := &Actor{Variant: cat.projectile, Damage: 1}
	e.hitBy(w, shot)
	flushPost(w)
	if e.Anim != AnimDestroyed {
		t.Fatalf("anim = %v, want AnimDestroyed", e.Anim)
	}

	want := []SpriteKey{
		SpriteExplosion0, SpriteExplosion0, SpriteExplosion0,
		SpriteExplosion1, SpriteExplosion1, SpriteExplosion1,
		SpriteExplosion2, SpriteExplosion2, SpriteExplosion2,
	}
	for i, k := range want {
		w.Step(emptyInput())
		if e.Sprite() != k {
			t.Fatalf("tick %d: sprite = %q, want %q", i, e.Sprite(), k)
		}
		if e.Removed() {
			t.Fatalf("tick %d: enemy removed before the sequence finished", i)
		}
	}
	w.Step(emptyInput())
	if !e.Removed() {
		t.Error("enemy not removed after the explosion")
	}
}

func TestNoDamageWhileDestroyed(t *testing.T) {
	w, cat := newTestWorld(t, tallRows())
	e := w.spawn(SpawnSpec{Variant: cat.EnemyHeli}, 0, 0)

	shot := &Actor{Variant: cat.projectile, Damage: 1}
	e.hitBy(w, shot)
	if e.Anim != AnimDestroyed {
		t.Fatalf("anim = %v, want AnimDestroyed", e.Anim)
	}

	hp := e.HP
	e.Invincible = false
	e.hitBy(w, shot)
	if e.HP != hp {
		t.Errorf("HP changed from %d to %d while destroyed", hp, e.HP)
	}
}

func TestWreckSpriteAlternates(t *testing.T) {
	for age := 0; age < 16; age++ {
		want := SpriteTurretWreck0
		if (age%8)/4 == 1 {
			want = SpriteTurretWreck1
		}
		if got := wreckSprite(age); got != want {
			t.Errorf("age %d: sprite = %q, want %q", age, got, want)
		}
	}
}

func TestRotorFramesAlternate(t *testing.T) {
	w, _ := newTestWorld(t, tallRows())
	p := w.Player()

	seen := map[SpriteKey]bool{}
	for i := 0; i < 8; i++ {
		w.Step(emptyInput())
		seen[p.Sprite()] = true
	}
	if !seen[SpritePlayerHeli0] || !seen[SpritePlayerHeli1] {
		t.Errorf("rotor animation stuck, saw %v", seen)
	}
}

func TestCullGraceAboveView(t *testing.T) {
	w, cat := newTestWorld(t, tallRows())
	v := w.View()

	// One tile above the top survives the cull.
	e := w.spawn(SpawnSpec{Variant: cat.EnemyHeli}, 0, 0)
	e.X = float64(v.X + 64)
	e.Y = float64(v.Y - 16)
	e.cull(w)
	if e.Removed() {
		t.Error("actor within the grace margin was culled")
	}

	// Beyond the margin it goes.
	e.Y = float64(v.Y - 16 - e.H - 1)
	e.cull(w)
	if !e.Removed() {
		t.Error("actor above the grace margin survived the cull")
	}
}
