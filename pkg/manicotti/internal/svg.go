package internal

import (
	"image"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// RasterizeSVG renders an SVG file into an RGBA image. A non-positive
// width or height falls back to the icon's own view box dimensions.
func RasterizeSVG(path string, width, height int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return nil, err
	}

	if width <= 0 {
		width = int(icon.ViewBox.W)
	}
	if height <= 0 {
		height = int(icon.ViewBox.H)
	}
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return rgba, nil
}
