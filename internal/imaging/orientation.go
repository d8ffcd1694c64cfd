package imaging

import (
	"encoding/json"
	"fmt"
)

// Orientation selects the axis along which two images are concatenated.
//
// The string values ("horizontal", "vertical") are the wire format used by
// the service surface and the CLI.
type Orientation string

const (
	// OrientationHorizontal places the first image to the left of the second.
	OrientationHorizontal Orientation = "horizontal"

	// OrientationVertical stacks the first image above the second.
	OrientationVertical Orientation = "vertical"
)

// Valid reports whether o is one of the two defined orientations.
func (o Orientation) Valid() bool {
	return o == OrientationHorizontal || o == OrientationVertical
}

// String returns the wire value of the orientation.
func (o Orientation) String() string {
	return string(o)
}

// ParseOrientation converts a wire value into an Orientation.
//
// Matching is exact and case-sensitive. Any value other than "horizontal" or
// "vertical" returns ErrUnsupportedOrientation.
func ParseOrientation(s string) (Orientation, error) {
	o := Orientation(s)
	if !o.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOrientation, s)
	}
	return o, nil
}

// MarshalJSON encodes the orientation as its wire string.
func (o Orientation) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(o))
}

// UnmarshalJSON decodes an orientation from its wire string.
//
// Unknown values are accepted here and rejected later by Merge, so that a
// request with a bad orientation produces ErrUnsupportedOrientation rather
// than a generic JSON error.
func (o *Orientation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*o = Orientation(s)
	return nil
}
