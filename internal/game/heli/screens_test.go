package heli

import (
	"testing"

	"github.com/vovakirdan/heli-strike/internal/audio"
	"github.com/vovakirdan/heli-strike/internal/config"
	"github.com/vovakirdan/heli-strike/internal/core"
)

func newTestDirector(t *testing.T, rows []string) *Director {
	t.Helper()
	cfg := config.DefaultHeliConfig()
	cfg.Audio.Enabled = false
	return NewDirector(&cfg, testLevel(t, rows), DefaultAtlas(), audio.Nop{}, 1)
}

func confirmInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	return in
}

func TestDirectorSplashToLevel(t *testing.T) {
	d := newTestDirector(t, tallRows())

	if d.Current() != ScreenSplash {
		t.Fatalf("start screen = %v, want splash", d.Current())
	}
	d.Step(emptyInput())
	if d.Current() != ScreenSplash {
		t.Fatal("splash advanced without confirm")
	}

	d.Step(confirmInput())
	if d.Current() != ScreenLevel {
		t.Fatalf("screen = %v after confirm, want level", d.Current())
	}
	if d.World() == nil {
		t.Fatal("no world on the level screen")
	}
}

func TestDirectorWinnerCycle(t *testing.T) {
	d := newTestDirector(t, shortRows())
	d.Step(confirmInput())

	for i := 0; i < 100 && d.Current() == ScreenLevel; i++ {
		d.Step(emptyInput())
	}
	if d.Current() != ScreenWinner {
		t.Fatalf("screen = %v, want winner", d.Current())
	}
	if d.World() != nil {
		t.Error("world should be dropped on the terminal screen")
	}

	d.Step(confirmInput())
	if d.Current() != ScreenSplash {
		t.Fatalf("screen = %v after confirm, want splash", d.Current())
	}

	// The pristine level is cloned per run, so starting again works.
	d.Step(confirmInput())
	if d.Current() != ScreenLevel {
		t.Fatalf("screen = %v on restart, want level", d.Current())
	}
	if d.World().Player() == nil {
		t.Error("restarted run has no player")
	}
}

func TestDirectorGameOver(t *testing.T) {
	d := newTestDirector(t, tallRows())
	d.Step(confirmInput())

	d.World().setOutcome(OutcomeGameOver)
	d.World().score = 700
	d.Step(emptyInput())

	if d.Current() != ScreenGameOver {
		t.Fatalf("screen = %v, want game over", d.Current())
	}
	if d.LastScore() != 700 {
		t.Errorf("last score = %d, want 700", d.LastScore())
	}

	d.Step(confirmInput())
	if d.Current() != ScreenSplash {
		t.Fatalf("screen = %v after confirm, want splash", d.Current())
	}
}

func TestDirectorLevelLoadFailureStaysOnSplash(t *testing.T) {
	rows := flatRows(16)
	rows[13] = "......1........"
	rows[12] = "....9.........."
	d := newTestDirector(t, rows)

	d.Step(confirmInput())
	if d.Current() != ScreenSplash {
		t.Fatalf("screen = %v after failed start, want splash", d.Current())
	}
	if d.LoadErr() == nil {
		t.Fatal("no load error recorded")
	}
}
