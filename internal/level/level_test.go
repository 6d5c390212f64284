package level

import (
	"testing"
)

const sampleLevel = `
id: "test"
name: "Test Strip"
legend:
  - glyph: "#"
    solid: {top: true, left: true, right: true, bottom: true}
  - glyph: "~"
    color: blue
rows:
  - "....."
  - "..2.."
  - "#~~~#"
  - "..1.."
`

func mustParse(t *testing.T, src string) *Level {
	t.Helper()
	lvl, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return lvl
}

func TestParseSample(t *testing.T) {
	lvl := mustParse(t, sampleLevel)

	if lvl.Width != 5 || lvl.Height != 4 {
		t.Fatalf("size = %dx%d, expected 5x4", lvl.Width, lvl.Height)
	}
	if lvl.CodeAt(2, 1) != 2 {
		t.Errorf("CodeAt(2,1) = %d, expected 2", lvl.CodeAt(2, 1))
	}
	if lvl.CodeAt(2, 3) != 1 {
		t.Errorf("CodeAt(2,3) = %d, expected 1", lvl.CodeAt(2, 3))
	}
	// A spawn-code cell reads as plain ground in the tile layer.
	if lvl.Glyph(2, 1) != '.' {
		t.Errorf("Glyph(2,1) = %q, expected '.'", lvl.Glyph(2, 1))
	}

	flags, solid := lvl.Solid(0, 2)
	if !solid || !flags.Top || !flags.Bottom || !flags.Left || !flags.Right {
		t.Errorf("rock at (0,2) should block on all sides, got %+v solid=%v", flags, solid)
	}
	if _, solid := lvl.Solid(1, 2); solid {
		t.Error("water should not be solid")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty rows", `{id: "x", rows: []}`},
		{"ragged rows", "id: \"x\"\nrows:\n  - \"...\"\n  - \"....\"\n"},
		{"unknown glyph", "id: \"x\"\nrows:\n  - \".@.\"\n"},
		{"multi-rune legend glyph", "id: \"x\"\nlegend:\n  - glyph: \"##\"\nrows:\n  - \"...\"\n"},
		{"not yaml", `{{{{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.src)); err == nil {
				t.Errorf("Parse accepted %s", tc.name)
			}
		})
	}
}

func TestClearCodeIsOneShot(t *testing.T) {
	lvl := mustParse(t, sampleLevel)

	lvl.ClearCode(2, 1)
	if lvl.CodeAt(2, 1) != 0 {
		t.Error("code should be gone after ClearCode")
	}
	// Clearing again, or clearing nonsense cells, must be a no-op.
	lvl.ClearCode(2, 1)
	lvl.ClearCode(-1, 0)
	lvl.ClearCode(0, 99)
}

func TestUsedCodes(t *testing.T) {
	lvl := mustParse(t, sampleLevel)
	codes := lvl.UsedCodes()
	if len(codes) != 2 {
		t.Fatalf("UsedCodes = %v, expected two distinct codes", codes)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	lvl := mustParse(t, sampleLevel)
	clone := lvl.Clone()

	lvl.ClearCode(2, 1)
	if clone.CodeAt(2, 1) != 2 {
		t.Error("mutating the original should not affect the clone")
	}
}

func TestBuiltinLevels(t *testing.T) {
	all, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	if len(all) < 2 {
		t.Fatalf("expected at least 2 bundled levels, got %d", len(all))
	}

	for _, lvl := range all {
		if lvl.Width == 0 || lvl.Height == 0 {
			t.Errorf("level %q has zero size", lvl.ID)
		}
		// Every bundled level must place exactly one player spawn.
		players := 0
		for ty := 0; ty < lvl.Height; ty++ {
			for tx := 0; tx < lvl.Width; tx++ {
				if lvl.CodeAt(tx, ty) == 1 {
					players++
				}
			}
		}
		if players != 1 {
			t.Errorf("level %q has %d player spawns, expected 1", lvl.ID, players)
		}
	}
}

func TestBuiltinByIndex(t *testing.T) {
	if _, err := BuiltinByIndex(0); err != nil {
		t.Errorf("BuiltinByIndex(0): %v", err)
	}
	if _, err := BuiltinByIndex(99); err == nil {
		t.Error("BuiltinByIndex(99) should fail")
	}
}
