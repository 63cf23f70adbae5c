package galaga

import (
	"fmt"

	"github.com/galago-arcade/galago/internal/core"
)

// Glyphs for the playfield.
const (
	glyphPlayer     = '▲'
	glyphBee        = 'w'
	glyphButterfly  = 'W'
	glyphBoss       = '@'
	glyphPlayerShot = '|'
	glyphEnemyShot  = '•'
	glyphSeparator  = '─'
)

// Render draws the last committed snapshot onto the screen buffer. It never
// touches live simulation state, so a panicking tick still leaves a
// consistent frame to show.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderEntities(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and wave indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	snap := &g.lastSnap

	scoreText := fmt.Sprintf("Score: %d", snap.Score)
	dst.DrawText(1, 0, scoreText)

	livesText := fmt.Sprintf("Lives: %d", snap.Lives)
	dst.DrawTextCentered(0, livesText)

	waveText := fmt.Sprintf("Wave: %d", snap.Wave)
	dst.DrawText(dst.Width()-len(waveText)-1, 0, waveText)

	for x := range dst.Width() {
		dst.Set(x, 1, glyphSeparator)
	}
}

func (g *Game) renderEntities(dst *core.Screen) {
	for _, e := range g.lastSnap.Entities {
		x, y := e.CellX(), e.CellY()

		switch Kind(e.Kind) {
		case KindPlayer:
			color := core.ColorCyan
			if e.Grace && g.lastSnap.Tick%8 < 4 {
				color = core.ColorGray
			}
			dst.SetColored(x, y, glyphPlayer, color)

		case KindEnemy:
			switch EnemyKind(e.Enemy) {
			case EnemyBoss:
				dst.SetColored(x, y, glyphBoss, core.ColorRed)
			case EnemyButterfly:
				dst.SetColored(x, y, glyphButterfly, core.ColorMagenta)
			default:
				dst.SetColored(x, y, glyphBee, core.ColorYellow)
			}

		case KindProjectile:
			if Owner(e.Owner) == OwnerPlayer {
				dst.SetColored(x, y, glyphPlayerShot, core.ColorBrightWhite)
			} else {
				dst.SetColored(x, y, glyphEnemyShot, core.ColorOrange)
			}
		}
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.lastSnap.Phase {
	case PhaseIntermission:
		title := fmt.Sprintf("WAVE %d", g.lastSnap.Wave+1)
		dst.DrawTextCentered(dst.Height()/2-1, title)
		dst.DrawTextCentered(dst.Height()/2+1, "Get ready...")

	case PhasePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.lastSnap.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a bordered message box in the center of the screen.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
