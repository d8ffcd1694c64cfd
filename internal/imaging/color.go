package imaging

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// AverageColor computes the mean color of an image and returns it in hex
// "#RRGGBB" form. Alpha is ignored; pixels contribute their raw RGB values.
//
// Large images are sampled on a stride so the cost stays proportional to a
// bounded number of pixels rather than the full raster.
func AverageColor(img image.Image) string {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return "#000000"
	}

	// Cap the sample grid at roughly 256x256 points.
	stride := 1
	if w > 256 || h > 256 {
		stride = w / 256
		if h/256 > stride {
			stride = h / 256
		}
	}

	var rSum, gSum, bSum, n uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stride {
		for x := bounds.Min.X; x < bounds.Max.X; x += stride {
			r, g, b, _ := img.At(x, y).RGBA()
			rSum += uint64(r >> 8)
			gSum += uint64(g >> 8)
			bSum += uint64(b >> 8)
			n++
		}
	}

	avg := colorful.Color{
		R: float64(rSum) / float64(n) / 255.0,
		G: float64(gSum) / float64(n) / 255.0,
		B: float64(bSum) / float64(n) / 255.0,
	}
	return avg.Hex()
}
