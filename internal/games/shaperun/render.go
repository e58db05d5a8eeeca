package shaperun

import (
	"fmt"
	"math"

	"github.com/vovakirdan/shaperun/internal/core"
)

const (
	backgroundColor = core.ColorLightBlue
	playerColor     = core.ColorLightGreen
	obstacleColor   = core.ColorLightPink
	hudColor        = core.ColorInk
	panelColor      = core.ColorLightYellow
)

// HUD and overlay layout, in logical units.
const (
	hudMargin     = 10
	hudTimeInset  = 100
	panelPadding  = 20
	panelLineSkip = 1.5
)

// Render draws the current frame. It never changes simulation state.
func (l *Loop) Render(c core.Canvas) {
	c.Clear(backgroundColor)

	if l.world == nil {
		drawMessage(c, "SHAPE RUN", "Press Enter to start, Space to jump")
		return
	}

	l.world.Player.Draw(c)
	for _, o := range l.world.Obstacles {
		o.Draw(c)
	}

	w, _ := c.Size()
	c.FillText(hudMargin, hudMargin, fmt.Sprintf("Score: %d", l.world.Score), hudColor)
	c.FillText(w-hudTimeInset, hudMargin, fmt.Sprintf("Time: %d", int(l.Elapsed().Seconds())), hudColor)

	switch {
	case l.phase == core.PhaseGameOver:
		drawMessage(c, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to retry", l.world.Score))
	case l.paused:
		drawMessage(c, "PAUSED", "Press P to resume")
	}
}

// drawMessage draws a two-line panel in the middle of the canvas.
func drawMessage(c core.Canvas, title, subtitle string) {
	w, h := c.Size()
	line := c.LineHeight()

	textW := math.Max(c.MeasureText(title), c.MeasureText(subtitle))
	panelW := textW + 2*panelPadding
	panelH := line*(1+panelLineSkip) + line + 2*panelPadding
	panelX := (w - panelW) / 2
	panelY := (h - panelH) / 2

	c.FillRect(core.NewRect(panelX, panelY, panelW, panelH), panelColor)

	titleY := panelY + panelPadding
	c.FillText((w-c.MeasureText(title))/2, titleY, title, hudColor)
	c.FillText((w-c.MeasureText(subtitle))/2, titleY+line*(1+panelLineSkip), subtitle, hudColor)
}
