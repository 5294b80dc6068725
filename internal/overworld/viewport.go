package overworld

import (
	"image"
	"image/draw"

	"github.com/vovakirdan/tile-puzzles/internal/core"
)

// Viewport is a window of Size cells starting at Start, over a map image
// drawn CellPixels pixels per cell.
type Viewport struct {
	Start      core.Point
	Size       core.Point
	CellPixels int
}

// Shift moves the window by delta cells.
func (v *Viewport) Shift(delta core.Point) {
	v.Start = v.Start.Add(delta)
}

// CenterOn moves the window so p sits in its middle.
func (v *Viewport) CenterOn(p core.Point) {
	v.Start = core.Pt(p.X-v.Size.X/2, p.Y-v.Size.Y/2)
}

// Rect returns the window in map image pixels. It may extend past the image.
func (v *Viewport) Rect() image.Rectangle {
	origin := image.Pt(v.Start.X*v.CellPixels, v.Start.Y*v.CellPixels)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(v.Size.X*v.CellPixels, v.Size.Y*v.CellPixels))}
}

// Extract copies the window out of src. Pixels outside src are zero.
func (v *Viewport) Extract(src *image.RGBA) *image.RGBA {
	r := v.Rect()
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	visible := r.Intersect(src.Bounds())
	if visible.Empty() {
		return dst
	}
	draw.Draw(dst, visible.Sub(r.Min), src, visible.Min, draw.Src)
	return dst
}

// ToScreen converts a map cell to its pixel position inside the window.
func (v *Viewport) ToScreen(cell core.Point) core.Point {
	d := cell.Sub(v.Start)
	return core.Pt(d.X*v.CellPixels, d.Y*v.CellPixels)
}
