package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

var (
	// ErrUnsupportedOrientation indicates an orientation value outside the
	// defined enum. The call produces no output and retrying cannot succeed.
	ErrUnsupportedOrientation = errors.New("unsupported merge orientation")

	// ErrInvalidImage indicates an input image with a zero-width or
	// zero-height bounds rectangle.
	ErrInvalidImage = errors.New("invalid image dimensions")
)

// Merge combines two images into one by concatenating them along the axis
// selected by orientation.
//
// For a vertical merge, both images are resized to the larger of the two
// widths; for a horizontal merge, to the larger of the two heights. The other
// dimension scales proportionally so aspect ratio is preserved. Resampling
// uses the Lanczos filter. Scaled dimensions are rounded half-up
// (math.Round), so the result may differ from the exact aspect ratio by at
// most one pixel.
//
// The first image is always placed at the origin; the second immediately
// after it along the concatenation axis, edge to edge with no overlap or gap.
// The canvas is opaque black, fully covered by the two pasted images.
//
// Parameters:
//   - img1: The first image (top for vertical, left for horizontal).
//   - img2: The second image (bottom for vertical, right for horizontal).
//   - orientation: OrientationHorizontal or OrientationVertical.
//
// Returns:
//   - *image.NRGBA: A freshly allocated canvas owned by the caller. Alpha is
//     fully opaque; inputs with transparency are not composited against a
//     background.
//   - error: ErrUnsupportedOrientation for an unknown orientation,
//     ErrInvalidImage if either input has a zero dimension.
//
// Inputs are never mutated.
func Merge(img1, img2 image.Image, orientation Orientation) (*image.NRGBA, error) {
	if !orientation.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOrientation, orientation)
	}
	if err := validateBounds(img1, "first"); err != nil {
		return nil, err
	}
	if err := validateBounds(img2, "second"); err != nil {
		return nil, err
	}

	// The two orientations are mirror images of each other, so both run
	// through one routine parameterized on the concatenation axis.
	vertical := orientation == OrientationVertical

	span1 := spanOf(img1, vertical)
	span2 := spanOf(img2, vertical)
	target := span1
	if span2 > target {
		target = span2
	}

	scaled1 := scaleToSpan(img1, target, vertical)
	scaled2 := scaleToSpan(img2, target, vertical)

	run1 := runOf(scaled1, vertical)
	run2 := runOf(scaled2, vertical)

	var canvas *image.NRGBA
	if vertical {
		canvas = imaging.New(target, run1+run2, color.NRGBA{A: 255})
		canvas = imaging.Paste(canvas, scaled1, image.Pt(0, 0))
		canvas = imaging.Paste(canvas, scaled2, image.Pt(0, run1))
	} else {
		canvas = imaging.New(run1+run2, target, color.NRGBA{A: 255})
		canvas = imaging.Paste(canvas, scaled1, image.Pt(0, 0))
		canvas = imaging.Paste(canvas, scaled2, image.Pt(run1, 0))
	}

	return canvas, nil
}

// validateBounds rejects images with a zero-area bounds rectangle before any
// scaling arithmetic can divide by zero.
func validateBounds(img image.Image, which string) error {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("%w: %s image is %dx%d", ErrInvalidImage, which, b.Dx(), b.Dy())
	}
	return nil
}

// spanOf returns the dimension along the shared axis: width for a vertical
// merge, height for a horizontal one.
func spanOf(img image.Image, vertical bool) int {
	if vertical {
		return img.Bounds().Dx()
	}
	return img.Bounds().Dy()
}

// runOf returns the dimension along the concatenation axis, the complement
// of spanOf.
func runOf(img image.Image, vertical bool) int {
	if vertical {
		return img.Bounds().Dy()
	}
	return img.Bounds().Dx()
}

// scaleToSpan resizes img so its shared-axis dimension equals span, scaling
// the other dimension proportionally with half-up rounding.
//
// The caller passes span = max of the two inputs, so the scale factor is
// always >= 1 and the rounded run dimension can never collapse to zero.
// An image already at the target span is still run through Resize, which
// returns a copy; inputs are never aliased into the result.
func scaleToSpan(img image.Image, span int, vertical bool) *image.NRGBA {
	b := img.Bounds()
	if vertical {
		h := int(math.Round(float64(b.Dy()) * float64(span) / float64(b.Dx())))
		return imaging.Resize(img, span, h, imaging.Lanczos)
	}
	w := int(math.Round(float64(b.Dx()) * float64(span) / float64(b.Dy())))
	return imaging.Resize(img, w, span, imaging.Lanczos)
}
