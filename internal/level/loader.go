package level

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed levels/*.yaml
var builtinFS embed.FS

// yamlLevel is the on-disk YAML structure of a level file.
type yamlLevel struct {
	ID     string       `yaml:"id"`
	Name   string       `yaml:"name"`
	Legend []yamlLegend `yaml:"legend"`
	Rows   []string     `yaml:"rows"`
}

// yamlLegend describes one background glyph.
type yamlLegend struct {
	Glyph string      `yaml:"glyph"`
	Solid *BlockFlags `yaml:"solid,omitempty"`
	Color string      `yaml:"color,omitempty"`
}

// Parse parses a YAML level. Rows are strings of glyphs; the digits
// '1'-'9' are spawn codes, '.' is empty ground, and every other rune
// must appear in the legend. Malformed maps are load-time fatal per the
// error design: a level either parses completely or not at all.
func Parse(data []byte) (*Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("level: yaml unmarshal: %w", err)
	}
	if len(yl.Rows) == 0 {
		return nil, fmt.Errorf("level %q: no rows", yl.ID)
	}

	defs := map[rune]TileDef{
		'.': {Glyph: '.'},
	}
	for _, le := range yl.Legend {
		runes := []rune(le.Glyph)
		if len(runes) != 1 {
			return nil, fmt.Errorf("level %q: legend glyph %q must be a single rune", yl.ID, le.Glyph)
		}
		g := runes[0]
		if _, dup := defs[g]; dup && g != '.' {
			return nil, fmt.Errorf("level %q: duplicate legend glyph %q", yl.ID, le.Glyph)
		}
		defs[g] = TileDef{Glyph: g, Solid: le.Solid, Color: le.Color}
	}

	width := len([]rune(yl.Rows[0]))
	lvl := &Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Width:  width,
		Height: len(yl.Rows),
		codes:  make([][]int, len(yl.Rows)),
		tiles:  make([][]rune, len(yl.Rows)),
		defs:   defs,
	}

	for y, row := range yl.Rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("level %q: row %d is %d runes wide, expected %d", yl.ID, y, len(runes), width)
		}
		lvl.codes[y] = make([]int, width)
		lvl.tiles[y] = make([]rune, width)
		for x, g := range runes {
			if g >= '1' && g <= '9' {
				lvl.codes[y][x] = int(g - '0')
				lvl.tiles[y][x] = '.'
				continue
			}
			if _, ok := defs[g]; !ok {
				return nil, fmt.Errorf("level %q: unknown glyph %q at row %d col %d", yl.ID, string(g), y, x)
			}
			lvl.tiles[y][x] = g
		}
	}

	return lvl, nil
}

// LoadFile parses a level from a file on disk.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level: parse %s: %w", filepath.Base(path), err)
	}
	return lvl, nil
}

// Builtin returns the bundled levels, sorted by ID for deterministic
// ordering.
func Builtin() ([]*Level, error) {
	entries, err := builtinFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("level: read embedded levels: %w", err)
	}

	var out []*Level
	for _, e := range entries {
		data, err := builtinFS.ReadFile("levels/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("level: read embedded %s: %w", e.Name(), err)
		}
		lvl, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("level: parse embedded %s: %w", e.Name(), err)
		}
		out = append(out, lvl)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// BuiltinByIndex returns the n-th bundled level.
func BuiltinByIndex(n int) (*Level, error) {
	all, err := Builtin()
	if err != nil {
		return nil, err
	}
	if n < 0 || n >= len(all) {
		return nil, fmt.Errorf("level: index %d out of range, have %d bundled levels", n, len(all))
	}
	return all[n], nil
}
