package overworld

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/vovakirdan/tile-puzzles/internal/core"
)

var (
	floorColor  = color.RGBA{R: 74, G: 128, B: 66, A: 255}
	floorAlt    = color.RGBA{R: 68, G: 118, B: 60, A: 255}
	wallColor   = color.RGBA{R: 72, G: 70, B: 84, A: 255}
	bridgeColor = color.RGBA{R: 150, G: 104, B: 58, A: 255}
	doneColor   = color.RGBA{R: 120, G: 120, B: 120, A: 255}

	triggerColors = []color.RGBA{
		{R: 230, G: 70, B: 70, A: 255},
		{R: 70, G: 140, B: 230, A: 255},
		{R: 240, G: 200, B: 60, A: 255},
		{R: 190, G: 90, B: 220, A: 255},
		{R: 60, G: 210, B: 200, A: 255},
	}

	playerColor      = color.RGBA{R: 250, G: 235, B: 200, A: 255}
	playerUpperColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	playerFaceColor  = color.RGBA{R: 30, G: 30, B: 40, A: 255}
)

// RenderMap draws the collision map as a picture, cellPx pixels per cell.
// Triggers in solved are greyed out.
func RenderMap(m *CollisionMap, cellPx int, solved map[string]bool) *image.RGBA {
	size := m.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.X*cellPx, size.Y*cellPx))
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			c := m.At(core.Pt(x, y))
			var col color.RGBA
			switch c.Kind {
			case CellWall:
				col = wallColor
			case CellBridge:
				col = bridgeColor
			case CellTrigger:
				col = triggerColor(c.Trigger)
				if solved[c.Trigger] {
					col = doneColor
				}
			default:
				col = floorColor
				if (x+y)%2 == 1 {
					col = floorAlt
				}
			}
			r := image.Rect(x*cellPx, y*cellPx, (x+1)*cellPx, (y+1)*cellPx)
			draw.Draw(img, r, &image.Uniform{C: col}, image.Point{}, draw.Src)
		}
	}
	return img
}

func triggerColor(key string) color.RGBA {
	h := 0
	for i := 0; i < len(key); i++ {
		h = h*31 + int(key[i])
	}
	return triggerColors[h%len(triggerColors)]
}

// DrawPlayer paints the player sprite with its top-left corner at at.
// The cell edge the player faces is marked.
func DrawPlayer(dst *image.RGBA, at core.Point, p *Player, cellPx int) {
	body := playerColor
	if p.Layer > 0 {
		body = playerUpperColor
	}
	r := image.Rect(at.X, at.Y, at.X+cellPx, at.Y+cellPx)
	draw.Draw(dst, r, &image.Uniform{C: body}, image.Point{}, draw.Src)

	var face image.Rectangle
	switch p.Facing {
	case core.DirUp:
		face = image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1)
	case core.DirLeft:
		face = image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y)
	case core.DirRight:
		face = image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y)
	default:
		face = image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y)
	}
	draw.Draw(dst, face, &image.Uniform{C: playerFaceColor}, image.Point{}, draw.Src)
}
