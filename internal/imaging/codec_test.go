package imaging

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, width, height int, c color.Color) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, createInMemoryImage(width, height, c)); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	data := encodePNG(t, 64, 48, color.RGBA{255, 0, 0, 255})

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("dimensions: got %dx%d, want 64x48", b.Dx(), b.Dy())
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("not an image at all")},
		{"truncated png header", []byte{0x89, 0x50, 0x4E}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); err == nil {
				t.Error("Decode should fail for malformed bytes")
			}
		})
	}
}

func TestEncodeJPEG(t *testing.T) {
	img := createInMemoryImage(50, 30, color.RGBA{0, 128, 255, 255})

	data, err := EncodeJPEG(img)
	if err != nil {
		t.Fatalf("EncodeJPEG failed: %v", err)
	}

	// JPEG SOI marker
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		t.Error("output does not start with a JPEG SOI marker")
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("failed to decode encoded output: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 50 || b.Dy() != 30 {
		t.Errorf("round-trip dimensions: got %dx%d, want 50x30", b.Dx(), b.Dy())
	}
}

func TestMergeEncoded_Vertical(t *testing.T) {
	first := encodePNG(t, 100, 200, color.RGBA{255, 0, 0, 255})
	second := encodePNG(t, 50, 50, color.RGBA{0, 0, 255, 255})

	out, err := MergeEncoded(first, second, OrientationVertical)
	if err != nil {
		t.Fatalf("MergeEncoded failed: %v", err)
	}

	decoded, err := Decode(out)
	if err != nil {
		t.Fatalf("failed to decode merged output: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 100 || b.Dy() != 300 {
		t.Errorf("dimensions: got %dx%d, want 100x300", b.Dx(), b.Dy())
	}
}

func TestMergeEncoded_Horizontal(t *testing.T) {
	first := encodePNG(t, 100, 200, color.RGBA{255, 0, 0, 255})
	second := encodePNG(t, 50, 50, color.RGBA{0, 0, 255, 255})

	out, err := MergeEncoded(first, second, OrientationHorizontal)
	if err != nil {
		t.Fatalf("MergeEncoded failed: %v", err)
	}

	decoded, err := Decode(out)
	if err != nil {
		t.Fatalf("failed to decode merged output: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 300 || b.Dy() != 200 {
		t.Errorf("dimensions: got %dx%d, want 300x200", b.Dx(), b.Dy())
	}
}

func TestMergeEncoded_Deterministic(t *testing.T) {
	first := encodePNG(t, 37, 53, color.RGBA{10, 200, 30, 255})
	second := encodePNG(t, 80, 25, color.RGBA{250, 240, 5, 255})

	out1, err := MergeEncoded(first, second, OrientationVertical)
	if err != nil {
		t.Fatalf("MergeEncoded failed: %v", err)
	}
	out2, err := MergeEncoded(first, second, OrientationVertical)
	if err != nil {
		t.Fatalf("MergeEncoded failed: %v", err)
	}

	if !bytes.Equal(out1, out2) {
		t.Error("identical inputs should produce byte-identical output")
	}
}

func TestMergeEncoded_UnsupportedOrientation(t *testing.T) {
	first := encodePNG(t, 10, 10, color.RGBA{255, 0, 0, 255})
	second := encodePNG(t, 10, 10, color.RGBA{0, 0, 255, 255})

	out, err := MergeEncoded(first, second, "diagonal")
	if !errors.Is(err, ErrUnsupportedOrientation) {
		t.Errorf("got err %v, want ErrUnsupportedOrientation", err)
	}
	if out != nil {
		t.Error("no output should be produced for an invalid orientation")
	}
}

func TestMergeEncoded_MalformedInput(t *testing.T) {
	valid := encodePNG(t, 10, 10, color.RGBA{255, 0, 0, 255})
	garbage := []byte("definitely not an image")

	if _, err := MergeEncoded(garbage, valid, OrientationVertical); err == nil {
		t.Error("MergeEncoded should fail when the first input is malformed")
	}
	if _, err := MergeEncoded(valid, garbage, OrientationVertical); err == nil {
		t.Error("MergeEncoded should fail when the second input is malformed")
	}
}
