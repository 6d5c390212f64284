package heli

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/heli-strike/internal/core"
)

// World pixels per terminal cell. A 16px tile is two cells wide and
// one cell tall, which keeps the playfield roughly square on screen.
const (
	cellPxW = 8
	cellPxH = 16
)

// Render draws the active screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.dir == nil {
		g.drawCenteredMessage(dst, "HELI STRIKE", errLine(g.loadErr))
		return
	}

	switch g.dir.Current() {
	case ScreenSplash:
		sub := "Press Enter to start"
		if g.dir.LoadErr() != nil {
			sub = errLine(g.dir.LoadErr())
		}
		g.drawCenteredMessage(dst, "HELI STRIKE", sub)

	case ScreenLevel:
		g.renderWorld(dst, g.dir.World())

	case ScreenGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press Enter to continue", g.dir.LastScore()))

	case ScreenWinner:
		g.drawCenteredMessage(dst, "YOU WIN!",
			fmt.Sprintf("Score: %d  |  Press Enter to continue", g.dir.LastScore()))
	}
}

// renderWorld draws the viewport: tiles first, then actors, then the
// HUD, all inside a centered bordered field.
func (g *Game) renderWorld(dst *core.Screen, w *World) {
	fieldW := g.cfg.World.ViewWidth / cellPxW
	fieldH := g.cfg.World.ViewHeight / cellPxH
	if dst.Width() < fieldW+2 || dst.Height() < fieldH+2 {
		dst.DrawTextCentered(dst.Height()/2,
			fmt.Sprintf("Need at least %dx%d, have %dx%d", fieldW+2, fieldH+2, dst.Width(), dst.Height()))
		return
	}
	fx := (dst.Width() - fieldW) / 2
	fy := (dst.Height() - fieldH) / 2
	dst.DrawBox(core.NewRect(fx-1, fy-1, fieldW+2, fieldH+2))

	g.drawTiles(dst, w, fx, fy, fieldW, fieldH)
	for _, a := range w.Actors() {
		g.drawActor(dst, w, a, fx, fy, fieldW, fieldH)
	}
	g.drawHUD(dst, w, fx, fy, fieldW, fieldH)

	if w.Paused() {
		g.drawCenteredMessage(dst, "PAUSED", "Press Enter to resume")
	}
}

// drawTiles paints the visible background tiles. Each tile covers two
// cells horizontally.
func (g *Game) drawTiles(dst *core.Screen, w *World, fx, fy, fieldW, fieldH int) {
	view := w.View()
	lvl := w.Level()
	ty0 := view.Y / w.tileSize
	ty1 := (view.Bottom() - 1) / w.tileSize
	for ty := ty0; ty <= ty1; ty++ {
		for tx := 0; tx < lvl.Width; tx++ {
			glyph := lvl.Glyph(tx, ty)
			if glyph == 0 || glyph == ' ' {
				continue
			}
			color := core.ColorDefault
			if def, ok := lvl.Def(tx, ty); ok {
				color = tileColor(def.Color)
			}
			cx := (tx*w.tileSize - view.X) / cellPxW
			cy := (ty*w.tileSize - view.Y) / cellPxH
			for dx := 0; dx < w.tileSize/cellPxW; dx++ {
				putCell(dst, fx, fy, fieldW, fieldH, cx+dx, cy, glyph, color)
			}
		}
	}
}

// drawActor blits the actor's sprite art at its viewport cell position.
func (g *Game) drawActor(dst *core.Screen, w *World, a *Actor, fx, fy, fieldW, fieldH int) {
	if !a.Visible() {
		return
	}
	spr, err := g.atlas.Get(a.Sprite())
	if err != nil {
		return
	}
	if a.rotates {
		if rs, rerr := g.atlas.Rotated(a.Sprite(), a.aim); rerr == nil {
			spr = rs
		}
	}

	view := w.View()
	r := a.Rect().Translated(-view.X, -view.Y)
	cx := r.X / cellPxW
	cy := r.Y / cellPxH
	for dy, line := range spr.Art {
		for dx, ch := range []rune(line) {
			if ch == ' ' {
				continue
			}
			putCell(dst, fx, fy, fieldW, fieldH, cx+dx, cy+dy, ch, spr.Color)
		}
	}
}

// drawHUD paints the score in the bottom-left corner of the field and
// the remaining hit points as a red bar in the bottom-right.
func (g *Game) drawHUD(dst *core.Screen, w *World, fx, fy, fieldW, fieldH int) {
	score := fmt.Sprintf("%05d", w.Score())
	dst.DrawTextColored(fx, fy+fieldH-1, score, core.ColorBrightWhite)

	if p := w.Player(); p != nil && p.HP > 0 {
		bar := strings.Repeat("#", p.HP)
		dst.DrawTextColored(fx+fieldW-len(bar), fy+fieldH-1, bar, core.ColorBrightRed)
	}
}

// putCell writes one rune clipped to the playfield.
func putCell(dst *core.Screen, fx, fy, fieldW, fieldH, cx, cy int, r rune, c core.Color) {
	if cx < 0 || cx >= fieldW || cy < 0 || cy >= fieldH {
		return
	}
	dst.SetCell(fx+cx, fy+cy, r, c)
}

// tileColor maps a legend color name to a screen color.
func tileColor(name string) core.Color {
	switch name {
	case "red":
		return core.ColorRed
	case "green":
		return core.ColorGreen
	case "yellow":
		return core.ColorYellow
	case "blue":
		return core.ColorBlue
	case "magenta":
		return core.ColorMagenta
	case "cyan":
		return core.ColorCyan
	case "white":
		return core.ColorWhite
	case "orange":
		return core.ColorOrange
	case "gray":
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	inner := box.Inset(1)
	dst.DrawText(inner.X+(inner.W-len(title))/2, inner.Y, title)
	dst.DrawText(inner.X+(inner.W-len(subtitle))/2, inner.Y+2, subtitle)
}

func errLine(err error) string {
	if err == nil {
		return ""
	}
	return "Level failed to load: " + err.Error()
}
