package tinyjpeg

import (
	"bytes"
	"image/jpeg"
	"testing"
)

func solidRaster(w, h, numComponents int, r, g, b byte) []byte {
	data := make([]byte, w*h*numComponents)
	for i := 0; i < w*h; i++ {
		base := i * numComponents
		data[base+0] = r
		data[base+1] = g
		data[base+2] = b
		if numComponents == 4 {
			data[base+3] = 0xff
		}
	}
	return data
}

func checkJFIFEnvelope(t *testing.T, out []byte) {
	t.Helper()
	if len(out) < 4 {
		t.Fatalf("output too short: %d bytes", len(out))
	}
	if out[0] != 0xff || out[1] != 0xd8 {
		t.Fatalf("output does not start with SOI, got % x", out[:2])
	}
	if out[len(out)-2] != 0xff || out[len(out)-1] != 0xd9 {
		t.Fatalf("output does not end with EOI, got % x", out[len(out)-2:])
	}
}

func TestEncodeAllZeroBlock(t *testing.T) {
	data := solidRaster(8, 8, 3, 0, 0, 0)
	out, err := Encode(8, 8, 3, data, Medium, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkJFIFEnvelope(t, out)
}

func TestEncodeAllWhiteBlock(t *testing.T) {
	data := solidRaster(8, 8, 3, 255, 255, 255)
	out, err := Encode(8, 8, 3, data, Medium, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkJFIFEnvelope(t, out)
}

func TestEncodeVerticalEdge16x16(t *testing.T) {
	const w, h, n = 16, 16, 3
	data := make([]byte, w*h*n)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * n
			v := byte(0)
			if x >= w/2 {
				v = 255
			}
			data[base+0], data[base+1], data[base+2] = v, v, v
		}
	}
	out, err := Encode(w, h, n, data, High, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkJFIFEnvelope(t, out)
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("decoded dims %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}
}

func TestEncodeNonMultipleOf8(t *testing.T) {
	const w, h, n = 7, 7, 3
	data := solidRaster(w, h, n, 128, 64, 200)
	out, err := Encode(w, h, n, data, Medium, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkJFIFEnvelope(t, out)
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("decoded dims %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}
}

func TestEncodeSinglePixel(t *testing.T) {
	data := solidRaster(1, 1, 3, 10, 20, 30)
	out, err := Encode(1, 1, 3, data, Highest, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkJFIFEnvelope(t, out)
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Fatalf("decoded dims %dx%d, want 1x1", b.Dx(), b.Dy())
	}
}

func TestEncodeLargeRGBAWhite(t *testing.T) {
	const w, h, n = 4000, 2000, 4
	data := solidRaster(w, h, n, 255, 255, 255)
	out, err := Encode(w, h, n, data, High, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkJFIFEnvelope(t, out)
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("decoded dims %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}
}

func TestEncodeRejectsBadComponentCount(t *testing.T) {
	data := solidRaster(8, 8, 3, 0, 0, 0)
	if _, err := Encode(8, 8, 5, data, Medium, nil); err == nil {
		t.Fatal("expected InvalidArgumentError for numComponents=5")
	} else if _, ok := err.(InvalidArgumentError); !ok {
		t.Fatalf("got %T, want InvalidArgumentError", err)
	}
}

func TestEncodeRejectsOutOfRangeDimensions(t *testing.T) {
	data := []byte{}
	if _, err := Encode(0, 8, 3, data, Medium, nil); err == nil {
		t.Fatal("expected InvalidArgumentError for w=0")
	}
	if _, err := Encode(65536, 8, 3, data, Medium, nil); err == nil {
		t.Fatal("expected InvalidArgumentError for w=65536")
	}
}

func TestEncodeRejectsShortBuffer(t *testing.T) {
	data := make([]byte, 10)
	if _, err := Encode(8, 8, 3, data, Medium, nil); err == nil {
		t.Fatal("expected InvalidArgumentError for a too-short raster")
	}
}

func TestEncodeCustomComment(t *testing.T) {
	data := solidRaster(8, 8, 3, 1, 2, 3)
	out, err := Encode(8, 8, 3, data, Medium, &Options{Comment: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out, []byte("hello")) {
		t.Fatal("custom comment not found in output")
	}
}
