package heli

import (
	"math"

	"github.com/vovakirdan/heli-strike/internal/core"
)

// MoveFunc computes an enemy helicopter's world position for a given
// age. Strategies are pure: the same arguments always produce the same
// position, which is what keeps replays with a fixed seed
// deterministic. Positions are in world pixels; the viewport scrolls
// toward lower Y, so a positive drift flies the enemy down the level
// toward the player.
type MoveFunc func(origin core.Rect, age, scrollSpeed int) (x, y float64)

// Flight pattern shape: the sine weave spans 65 pixels either side of
// the spawn column, the loop has a 50 pixel radius, and both advance
// one radian per 10 world ticks.
const (
	sineAmplitude = 65
	circleRadius  = 50
	wavePeriod    = 10
)

// MoveLine dives straight down at the scroll speed.
func MoveLine(origin core.Rect, age, scrollSpeed int) (float64, float64) {
	return float64(origin.X), float64(origin.Y + age*scrollSpeed)
}

// MoveSine dives at the scroll speed while weaving horizontally around
// the spawn column.
func MoveSine(origin core.Rect, age, scrollSpeed int) (float64, float64) {
	x := float64(origin.X) + sineAmplitude*math.Sin(float64(age)/wavePeriod)
	return x, float64(origin.Y + age*scrollSpeed)
}

// MoveCircle flies a loop around the spawn point, holding position in
// the world so the viewport catches up to it.
func MoveCircle(origin core.Rect, age, scrollSpeed int) (float64, float64) {
	t := float64(age) / wavePeriod
	x := float64(origin.X) + circleRadius*math.Cos(t)
	y := float64(origin.Y) + circleRadius*math.Sin(t)
	return x, y
}
