// Package imaging provides the core image merge operation and its codec boundary.
//
// The central operation is Merge, which combines two decoded images into one by
// concatenating them along an axis selected by an Orientation. Before
// concatenation each input is resized so the shared axis matches, preserving
// aspect ratio, using Lanczos resampling.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward. A vertical merge stacks the
// first image above the second; a horizontal merge places the first image to
// the left of the second.
//
// # Ownership
//
// Merge never mutates its inputs. Resizing and compositing allocate fresh
// buffers, and the returned canvas is owned exclusively by the caller.
//
// # Thread Safety
//
// Merge and the codec functions are stateless and safe to call concurrently
// from independent goroutines. The ImageCache type is safe for concurrent use.
//
// # Error Handling
//
// Functions return errors for invalid inputs:
//   - Orientation values outside {horizontal, vertical} (ErrUnsupportedOrientation)
//   - Images with a zero-area bounds rectangle (ErrInvalidImage)
//   - Malformed encoded bytes during decoding
//   - Encoding failures when producing output bytes
package imaging
