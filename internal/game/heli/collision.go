package heli

import (
	"github.com/vovakirdan/heli-strike/internal/core"
	"github.com/vovakirdan/heli-strike/internal/level"
)

// resolveCollisions fires the hit handlers for every intersecting pair
// of opposed actors. Both sides test the other against their own
// attackable group independently, so an asymmetric matchup can damage
// just one party.
//
// The pair list is computed up front from a snapshot of the actor
// collection. A projectile overlapping two targets therefore hits both
// in the same pass even though the first hit removes it; the damage
// protocol tolerates that because removal is idempotent and removed
// actors keep their final state.
func (w *World) resolveCollisions() {
	live := make([]*Actor, 0, len(w.actors))
	for _, a := range w.actors {
		if !a.removed {
			live = append(live, a)
		}
	}

	type pair struct{ a, b *Actor }
	var pairs []pair
	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			if live[i].Rect().Intersects(live[j].Rect()) {
				pairs = append(pairs, pair{live[i], live[j]})
			}
		}
	}

	for _, p := range pairs {
		if p.a.Attacks != GroupNone && p.b.Group == p.a.Attacks {
			p.a.hitBy(w, p.b)
		}
		if p.b.Attacks != GroupNone && p.a.Group == p.b.Attacks {
			p.b.hitBy(w, p.a)
		}
	}
}

// resolveTileBlocking clamps every live actor against the solid tiles
// its rectangle overlaps. The check is swept: an actor is pushed back
// only across edges its start-of-tick rectangle was strictly on the
// open side of, so fast movers cannot tunnel through a blocking edge
// and actors that spawn inside a solid tile are left alone.
func (w *World) resolveTileBlocking() {
	for _, a := range w.actors {
		if a.removed {
			continue
		}
		r := a.Rect()
		tx0 := r.X / w.tileSize
		ty0 := r.Y / w.tileSize
		tx1 := (r.Right() - 1) / w.tileSize
		ty1 := (r.Bottom() - 1) / w.tileSize
		for ty := ty0; ty <= ty1; ty++ {
			for tx := tx0; tx <= tx1; tx++ {
				flags, ok := w.level.Solid(tx, ty)
				if !ok || !flags.Any() {
					continue
				}
				tile := core.Rect{
					X: tx * w.tileSize, Y: ty * w.tileSize,
					W: w.tileSize, H: w.tileSize,
				}
				tileBlock(a, tile, flags)
			}
		}
	}
}

// tileBlock pushes the actor back across each blocked edge it crossed
// this tick. prevRect is the rectangle captured before the actor moved.
func tileBlock(a *Actor, tile core.Rect, flags level.BlockFlags) {
	prev := a.prevRect
	cur := a.Rect()

	if flags.Top && prev.Bottom() <= tile.Y && cur.Bottom() > tile.Y {
		a.Y = float64(tile.Y - a.H)
	}
	if flags.Left && prev.Right() <= tile.X && cur.Right() > tile.X {
		a.X = float64(tile.X - a.W)
	}
	if flags.Right && prev.X >= tile.Right() && cur.X < tile.Right() {
		a.X = float64(tile.Right())
	}
	if flags.Bottom && prev.Y >= tile.Bottom() && cur.Y < tile.Bottom() {
		a.Y = float64(tile.Bottom())
	}
}
