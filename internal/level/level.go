// Package level provides the tile-map model for Heli Strike: a grid of
// background tiles, per-tile solidity flags, and a one-shot spawn-code
// layer consumed as the viewport scrolls.
// This package depends on nothing above core so the simulation stays testable.
package level

// BlockFlags marks which edges of a solid tile push actors back.
type BlockFlags struct {
	Top    bool `yaml:"top"`
	Left   bool `yaml:"left"`
	Right  bool `yaml:"right"`
	Bottom bool `yaml:"bottom"`
}

// Any returns true if at least one edge blocks.
func (b BlockFlags) Any() bool {
	return b.Top || b.Left || b.Right || b.Bottom
}

// TileDef describes one legend entry of a level file.
type TileDef struct {
	Glyph rune
	Solid *BlockFlags // nil means the tile is pure scenery
	Color string      // Renderer color name, empty for default
}

// Level is a parsed, playable tile map.
// The code layer is mutable: a consumed spawn cell is cleared so it is
// never processed twice. Everything else is read-only after parsing.
type Level struct {
	ID     string
	Name   string
	Width  int // Tiles per row
	Height int // Rows

	codes [][]int    // Spawn codes, 0 = none
	tiles [][]rune   // Background glyph per cell
	defs  map[rune]TileDef
}

// CodeAt returns the spawn code at the given tile cell, 0 if none or
// out of bounds.
func (l *Level) CodeAt(tx, ty int) int {
	if ty < 0 || ty >= l.Height || tx < 0 || tx >= l.Width {
		return 0
	}
	return l.codes[ty][tx]
}

// ClearCode erases the spawn code at the given cell. Clearing an empty
// or out-of-bounds cell is a no-op.
func (l *Level) ClearCode(tx, ty int) {
	if ty < 0 || ty >= l.Height || tx < 0 || tx >= l.Width {
		return
	}
	l.codes[ty][tx] = 0
}

// Glyph returns the background glyph at the given cell, space if out of
// bounds.
func (l *Level) Glyph(tx, ty int) rune {
	if ty < 0 || ty >= l.Height || tx < 0 || tx >= l.Width {
		return ' '
	}
	return l.tiles[ty][tx]
}

// Def returns the legend entry for the cell's glyph.
func (l *Level) Def(tx, ty int) (TileDef, bool) {
	d, ok := l.defs[l.Glyph(tx, ty)]
	return d, ok
}

// Solid returns the blocking flags for the given cell, false if the
// cell is passable.
func (l *Level) Solid(tx, ty int) (BlockFlags, bool) {
	d, ok := l.defs[l.Glyph(tx, ty)]
	if !ok || d.Solid == nil {
		return BlockFlags{}, false
	}
	return *d.Solid, true
}

// UsedCodes returns the distinct spawn codes present in the level.
// The world validates these against its spawn table at load time.
func (l *Level) UsedCodes() []int {
	seen := make(map[int]bool)
	var out []int
	for _, row := range l.codes {
		for _, c := range row {
			if c != 0 && !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// Clone creates a deep copy of the level (for level restart).
func (l *Level) Clone() *Level {
	clone := &Level{
		ID:     l.ID,
		Name:   l.Name,
		Width:  l.Width,
		Height: l.Height,
		codes:  make([][]int, len(l.codes)),
		tiles:  make([][]rune, len(l.tiles)),
		defs:   l.defs, // legend is immutable, share it
	}
	for i, row := range l.codes {
		clone.codes[i] = make([]int, len(row))
		copy(clone.codes[i], row)
	}
	for i, row := range l.tiles {
		clone.tiles[i] = make([]rune, len(row))
		copy(clone.tiles[i], row)
	}
	return clone
}
