package main

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/llgcode/draw2d/draw2dimg"
)

// Draws ground-truth boxes onto a copy of img.
// Boxes are zero-based inclusive [x1 y1 x2 y2].
func drawBoxes(img image.Image, boxes [][4]float32) *image.RGBA {
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)

	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetStrokeColor(color.RGBA{255, 255, 0, 255})
	gc.SetLineWidth(2)
	for _, b := range boxes {
		x1, y1 := float64(b[0]), float64(b[1])
		// Inclusive coordinates name the last pixel of the box.
		x2, y2 := float64(b[2])+1, float64(b[3])+1
		gc.MoveTo(x1, y1)
		gc.LineTo(x2, y1)
		gc.LineTo(x2, y2)
		gc.LineTo(x1, y2)
		gc.Close()
		gc.Stroke()
	}
	return dst
}
