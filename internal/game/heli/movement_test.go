package heli

import (
	"math"
	"testing"

	"github.com/vovakirdan/heli-strike/internal/core"
)

func TestMovementStrategiesArePure(t *testing.T) {
	origin := core.NewRect(96, 160, 26, 30)
	for name, move := range map[string]MoveFunc{
		"line":   MoveLine,
		"sine":   MoveSine,
		"circle": MoveCircle,
	} {
		for age := 0; age < 200; age++ {
			x1, y1 := move(origin, age, 2)
			x2, y2 := move(origin, age, 2)
			if x1 != x2 || y1 != y2 {
				t.Fatalf("%s: age %d not deterministic: (%v,%v) vs (%v,%v)",
					name, age, x1, y1, x2, y2)
			}
		}
	}
}

func TestMoveLineDives(t *testing.T) {
	origin := core.NewRect(96, 160, 26, 30)
	for age := 0; age < 50; age++ {
		x, y := MoveLine(origin, age, 2)
		if x != 96 {
			t.Fatalf("age %d: x = %v, want 96", age, x)
		}
		if y != float64(160+age*2) {
			t.Fatalf("age %d: y = %v, want %v", age, y, 160+age*2)
		}
	}
}

func TestMoveSineStaysInsideAmplitude(t *testing.T) {
	origin := core.NewRect(96, 160, 26, 30)
	for age := 0; age < 200; age++ {
		x, y := MoveSine(origin, age, 2)
		if math.Abs(x-96) > sineAmplitude {
			t.Fatalf("age %d: x = %v, beyond amplitude %d around 96", age, x, sineAmplitude)
		}
		if y != float64(160+age*2) {
			t.Fatalf("age %d: y = %v, want %v", age, y, 160+age*2)
		}
	}
}

func TestMoveCircleOrbitsOrigin(t *testing.T) {
	origin := core.NewRect(96, 160, 26, 30)

	x, y := MoveCircle(origin, 0, 2)
	if x != 96+circleRadius || y != 160 {
		t.Fatalf("age 0: got (%v,%v), want (%v,160)", x, y, 96+circleRadius)
	}

	for age := 0; age < 200; age++ {
		x, y := MoveCircle(origin, age, 2)
		dx, dy := x-96, y-160
		r := math.Sqrt(dx*dx + dy*dy)
		if math.Abs(r-circleRadius) > 1e-9 {
			t.Fatalf("age %d: radius = %v, want %d", age, r, circleRadius)
		}
	}
}
