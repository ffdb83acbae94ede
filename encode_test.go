package qoi_test

import (
	"errors"
	"testing"

	"github.com/makapu-go/qoi"
)

func TestEncodeNotEnoughPixelData(t *testing.T) {
	d := qoi.Descriptor{Width: 4, Height: 4, Channels: 3, ColorSpace: 0}
	_, err := qoi.EncodeAlloc(d, make([]byte, 4*4*3-1))
	if !errors.Is(err, qoi.ErrNotEnoughPixelData) {
		t.Fatalf("EncodeAlloc error = %v, want ErrNotEnoughPixelData", err)
	}
}

func TestEncodeOutputTooSmall(t *testing.T) {
	d := qoi.Descriptor{Width: 8, Height: 8, Channels: 4, ColorSpace: 0}
	pixels := make([]byte, d.DecodedSize())
	for i := range pixels {
		pixels[i] = byte(i)
	}

	dst := make([]byte, d.EncodedSizeUpperBound()-1)
	if _, err := qoi.Encode(d, pixels, dst); !errors.Is(err, qoi.ErrOutputTooSmall) {
		t.Fatalf("Encode with undersized dst error = %v, want ErrOutputTooSmall", err)
	}

	tooSmall := make([]byte, 13)
	if _, err := qoi.Encode(d, pixels, tooSmall); !errors.Is(err, qoi.ErrOutputTooSmall) {
		t.Fatalf("Encode with sub-header dst error = %v, want ErrOutputTooSmall", err)
	}
}

// TestEncodeNeverGrowsPastCapacity confirms Encode honors the caller's
// buffer as a hard ceiling: given a dst whose capacity exactly matches
// the worst-case bound but whose backing array is pre-filled with a
// sentinel beyond where a correct encoding ends, nothing is written
// past what Encode reports it wrote.
func TestEncodeNeverGrowsPastCapacity(t *testing.T) {
	// A solid 4x4 black image collapses into a single RUN chunk, so its
	// encoded length sits far below EncodedSizeUpperBound's worst-case
	// estimate, leaving plenty of untouched sentinel bytes to check.
	d := qoi.Descriptor{Width: 4, Height: 4, Channels: 3, ColorSpace: 0}
	pixels := make([]byte, d.DecodedSize())

	dst := make([]byte, d.EncodedSizeUpperBound())
	for i := range dst {
		dst[i] = 0xAA
	}
	n, err := qoi.Encode(d, pixels, dst)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for i := n; i < len(dst); i++ {
		if dst[i] != 0xAA {
			t.Fatalf("byte %d beyond reported length %d was overwritten", i, n)
		}
	}
}

func TestEncodeRunNeverExceeds62(t *testing.T) {
	d := qoi.Descriptor{Width: 200, Height: 1, Channels: 3, ColorSpace: 0}
	pixels := make([]byte, d.DecodedSize())

	out, err := qoi.EncodeAlloc(d, pixels)
	if err != nil {
		t.Fatalf("EncodeAlloc: %v", err)
	}

	body := out[14 : len(out)-8]
	for _, b := range body {
		if b&0xC0 == 0xC0 && b != 0xFE && b != 0xFF {
			if run := int(b&0x3F) + 1; run > 62 {
				t.Fatalf("RUN chunk encodes run length %d, want <= 62", run)
			}
		}
	}
}
