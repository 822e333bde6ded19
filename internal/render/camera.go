package render

// Camera translates between map coordinates and screen coordinates. When the
// map fits the viewport the camera stays at the origin.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Follow keeps (cx, cy) in the middle of the viewport, clamped so the map
// edge never scrolls past the screen edge.
func (c *Camera) Follow(cx, cy, mapW, mapH int) {
	c.OffsetX = clampOffset(cx-c.ViewWidth/2, mapW, c.ViewWidth)
	c.OffsetY = clampOffset(cy-c.ViewHeight/2, mapH, c.ViewHeight)
}

func clampOffset(off, size, view int) int {
	if size <= view {
		return 0
	}
	return max(0, min(off, size-view))
}

// WorldToScreen converts map (wx, wy) to screen (sx, sy). visible is false
// when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
