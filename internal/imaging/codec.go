package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/anthonynsimon/bild/imgio"
)

// JPEGQuality is the fixed quality setting used for all encoded output.
//
// It is a constant rather than a parameter so that merge output is
// reproducible: identical inputs always produce identical output bytes.
const JPEGQuality = 85

// Decode parses encoded image bytes into an in-memory raster.
//
// Supported formats are PNG, JPEG, and GIF. The concrete image type depends
// on the source format (e.g., *image.NRGBA for PNG, *image.YCbCr for JPEG).
//
// Returns an error if the bytes are not a valid image in a supported format.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// EncodeJPEG encodes an image as JPEG at the fixed quality setting.
//
// JPEG carries three channels; any alpha in the input is discarded.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imgio.JPEGEncoder(JPEGQuality)(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// MergeEncoded is the bytes-in, bytes-out form of Merge.
//
// Both inputs are decoded, merged along the given orientation, and the result
// is re-encoded as JPEG at the fixed quality setting. Decode and encode
// failures are propagated to the caller unchanged; all errors are terminal
// for the call and no partial output is produced.
func MergeEncoded(first, second []byte, orientation Orientation) ([]byte, error) {
	img1, err := Decode(first)
	if err != nil {
		return nil, fmt.Errorf("first image: %w", err)
	}
	img2, err := Decode(second)
	if err != nil {
		return nil, fmt.Errorf("second image: %w", err)
	}

	merged, err := Merge(img1, img2, orientation)
	if err != nil {
		return nil, err
	}

	return EncodeJPEG(merged)
}
