package qoi_test

import (
	"bytes"
	"testing"

	"github.com/makapu-go/qoi"
)

// roundTripCase builds a Descriptor and a deterministic pixel buffer
// from a small generator so a single helper can drive both the table
// tests below and the fuzz seed corpus.
type roundTripCase struct {
	name     string
	width    uint32
	height   uint32
	channels uint8
	gen      func(i int) byte
}

var roundTripCases = []roundTripCase{
	{"solid", 16, 16, 3, func(i int) byte { return 42 }},
	{"gradient", 32, 8, 4, func(i int) byte { return byte(i) }},
	{"alternating", 9, 9, 3, func(i int) byte {
		if i%2 == 0 {
			return 0
		}
		return 255
	}},
	{"alpha_edges", 4, 4, 4, func(i int) byte {
		if i%4 == 3 {
			return byte(i % 2 * 255)
		}
		return byte(i)
	}},
	{"single_pixel", 1, 1, 3, func(i int) byte { return 200 }},
	{"single_row", 64, 1, 4, func(i int) byte { return byte(i * 7) }},
	{"empty", 0, 0, 3, func(i int) byte { return 0 }},
}

func (c roundTripCase) descriptor() qoi.Descriptor {
	return qoi.Descriptor{Width: c.width, Height: c.height, Channels: c.channels, ColorSpace: 0}
}

func (c roundTripCase) pixels() []byte {
	d := c.descriptor()
	buf := make([]byte, d.DecodedSize())
	for i := range buf {
		buf[i] = c.gen(i)
	}
	return buf
}

// TestRoundTrip covers property 1 (Decode(Encode(p)) == p for any
// valid input) and property 3 (decoded Descriptor matches the one
// encoded), and checks that Encode is deterministic.
func TestRoundTrip(t *testing.T) {
	for _, c := range roundTripCases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			d := c.descriptor()
			pixels := c.pixels()

			encoded1, err := qoi.EncodeAlloc(d, pixels)
			if err != nil {
				t.Fatalf("EncodeAlloc: %v", err)
			}
			encoded2, err := qoi.EncodeAlloc(d, pixels)
			if err != nil {
				t.Fatalf("EncodeAlloc (second call): %v", err)
			}
			if !bytes.Equal(encoded1, encoded2) {
				t.Fatalf("Encode is not deterministic: % x vs % x", encoded1, encoded2)
			}

			gotDescriptor, decoded, err := qoi.DecodeAlloc(encoded1)
			if err != nil {
				t.Fatalf("DecodeAlloc: %v", err)
			}
			if gotDescriptor != d {
				t.Fatalf("decoded descriptor = %+v, want %+v", gotDescriptor, d)
			}
			if !bytes.Equal(decoded, pixels) {
				t.Fatalf("round trip mismatch\ngot:  % x\nwant: % x", decoded, pixels)
			}
		})
	}
}

func TestEncodeWithinUpperBound(t *testing.T) {
	for _, c := range roundTripCases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			d := c.descriptor()
			encoded, err := qoi.EncodeAlloc(d, c.pixels())
			if err != nil {
				t.Fatalf("EncodeAlloc: %v", err)
			}
			if len(encoded) > d.EncodedSizeUpperBound() {
				t.Fatalf("encoded length %d exceeds EncodedSizeUpperBound %d", len(encoded), d.EncodedSizeUpperBound())
			}
		})
	}
}

func addRoundTripSeeds(f *testing.F) {
	f.Helper()
	for _, c := range roundTripCases {
		d := c.descriptor()
		encoded, err := qoi.EncodeAlloc(d, c.pixels())
		if err != nil {
			continue
		}
		f.Add(encoded)
	}
}

// FuzzRoundTrip ensures Decode never panics on arbitrary bytes, and
// that whenever it does succeed, re-encoding its output and decoding
// again reaches a fixed point (idempotent re-encode of decoder
// output).
func FuzzRoundTrip(f *testing.F) {
	addRoundTripSeeds(f)

	f.Fuzz(func(t *testing.T, data []byte) {
		descriptor, decoded, err := qoi.DecodeAlloc(data)
		if err != nil {
			return
		}

		reencoded, err := qoi.EncodeAlloc(descriptor, decoded)
		if err != nil {
			t.Fatalf("EncodeAlloc on decoder output: %v", err)
		}
		_, redecoded, err := qoi.DecodeAlloc(reencoded)
		if err != nil {
			t.Fatalf("DecodeAlloc on re-encoded output: %v", err)
		}
		if !bytes.Equal(decoded, redecoded) {
			t.Fatalf("re-encode/decode not idempotent\nfirst:  % x\nsecond: % x", decoded, redecoded)
		}
	})
}
