package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawHUD renders the last messages at the bottom of the screen.
func (r *Renderer) drawHUD(f Frame) {
	w, h := r.screen.Size()
	top := h - hudRows
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, top, '─', nil, styleDim)
	}
	start := max(0, len(f.Messages)-(hudRows-1))
	for i, msg := range f.Messages[start:] {
		r.drawText(0, top+1+i, runewidth.Truncate(msg, w, "…"), styleMessage)
	}
}

// drawFPS shows the averaged frame rate in the top-left corner.
func (r *Renderer) drawFPS(f Frame) {
	fps := max(1, int(math.Round(f.FPS)))
	style := styleDefault.Foreground(tcell.ColorGreen)
	if fps < f.TargetFPS {
		style = styleDefault.Foreground(tcell.ColorRed)
	}
	r.drawText(0, 0, fmt.Sprint(fps), style)
}
