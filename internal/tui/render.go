package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/zaptastic/core/internal/physics"
	"github.com/zaptastic/core/internal/sim"
)

var (
	styleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	stylePlayer    = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleShot      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnemyShot = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleDebris    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFlash     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleOver      = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
)

// Enemy glyphs by tier, weakest first; tiers past the end reuse the last.
var enemyGlyphs = []rune{'<', '{', '[', '(', '@'}

var tierColors = []tcell.Color{tcell.ColorGreen, tcell.ColorLime, tcell.ColorOlive, tcell.ColorOrange, tcell.ColorMaroon}

func glyph(v sim.EntityView) (rune, tcell.Style) {
	switch v.Category {
	case physics.CategoryPlayer:
		return '>', stylePlayer
	case physics.CategoryPlayerWeapon:
		return '-', styleShot
	case physics.CategoryEnemyWeapon:
		return '~', styleEnemyShot
	case physics.CategoryEnemy:
		i := min(v.Tier, len(enemyGlyphs)-1)
		return enemyGlyphs[i], tcell.StyleDefault.Foreground(tierColors[i])
	}
	return '#', styleDebris
}

// cell maps a scene position to a terminal cell below the HUD. ok is false
// when the position is outside the playfield.
func (h *Host) cell(x, y float64) (col, row int, ok bool) {
	w, ht := h.screen.Size()
	rows := ht - hudRows
	if w <= 0 || rows <= 0 {
		return 0, 0, false
	}
	if x < h.pf.MinX || x > h.pf.MaxX || y < h.pf.MinY || y > h.pf.MaxY {
		return 0, 0, false
	}
	col = int((x - h.pf.MinX) / h.pf.Width() * float64(w-1))
	row = hudRows + int((h.pf.MaxY-y)/h.pf.Height()*float64(rows-1))
	return col, row, true
}

// Draw renders snap plus any live explosion flashes.
func (h *Host) Draw(snap sim.Snapshot) {
	h.screen.Clear()
	for _, v := range snap.Entities {
		col, row, ok := h.cell(v.Position.X, v.Position.Y)
		if !ok {
			continue
		}
		r, style := glyph(v)
		h.screen.SetContent(col, row, r, nil, style)
	}
	for _, f := range h.flashes {
		if col, row, ok := h.cell(f.pos.X, f.pos.Y); ok {
			h.screen.SetContent(col, row, '*', nil, styleFlash)
		}
	}
	h.drawHUD(snap)
	if h.over {
		h.drawGameOver()
	}
	h.screen.Show()
}

func (h *Host) drawHUD(snap sim.Snapshot) {
	line := h.printer.Sprintf("Level %d  Wave %d/%d  Shields %d  Kills %d",
		snap.Level+1, h.wave+1, snap.WaveCount, snap.PlayerShields, h.kills)
	if h.lastKill != "" {
		line += "  Last: " + h.lastKill
	}
	h.text(0, 0, line, styleHUD)
}

func (h *Host) drawGameOver() {
	w, ht := h.screen.Size()
	mid := ht / 2
	h.text((w-len(gameOverTitle))/2, mid, gameOverTitle, styleOver)
	h.text((w-len(gameOverHint))/2, mid+1, gameOverHint, styleHUD)
}

func (h *Host) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
