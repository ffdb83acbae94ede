package qoi

// Chunk tags. QOI_OP_RGB and QOI_OP_RGBA are full 8-bit tags; the
// remaining four share the top 2 bits of the tag byte.
const (
	tagRGB   byte = 0xFE
	tagRGBA  byte = 0xFF
	tagIndex byte = 0x00
	tagDiff  byte = 0x40
	tagLuma  byte = 0x80
	tagRun   byte = 0xC0
)

// maxChunkBytes is the largest number of bytes a single pixel can ever
// produce: a pending RUN flush (1 byte) immediately followed by an
// RGBA chunk (5 bytes). One capacity check per loop iteration against
// this bound replaces a check per write.
const maxChunkBytes = 6

// Encode writes the QOI encoding of pixels (exactly
// descriptor.DecodedSize() raw channel bytes, row-major, top to
// bottom) into dst and returns the number of bytes written. dst must
// be at least descriptor.EncodedSizeUpperBound() bytes long to be
// guaranteed to fit; Encode never grows dst past its capacity, instead
// failing with ErrOutputTooSmall.
func Encode(descriptor Descriptor, pixels []byte, dst []byte) (int, error) {
	if len(pixels) < descriptor.DecodedSize() {
		return 0, ErrNotEnoughPixelData
	}
	if len(dst) < headerSize {
		return 0, ErrOutputTooSmall
	}

	out := appendHeader(dst[:0], descriptor)

	var err error
	if descriptor.hasAlpha() {
		out, err = encodeBody4(out, pixels, descriptor.Width, descriptor.Height)
	} else {
		out, err = encodeBody3(out, pixels, descriptor.Width, descriptor.Height)
	}
	if err != nil {
		return 0, err
	}

	if cap(out)-len(out) < len(endMarker) {
		return 0, ErrOutputTooSmall
	}
	out = append(out, endMarker[:]...)

	return len(out), nil
}

// EncodeAlloc is the allocating convenience form of Encode: it sizes a
// fresh buffer at Descriptor.EncodedSizeUpperBound, encodes into it and
// trims to the actual length.
func EncodeAlloc(descriptor Descriptor, pixels []byte) ([]byte, error) {
	dst := make([]byte, descriptor.EncodedSizeUpperBound())
	n, err := Encode(descriptor, pixels, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// appendOperator chooses and appends exactly one of DIFF, LUMA, RGB or
// RGBA for cur given prev, in priority order, assuming an INDEX hit has
// already been ruled out by the caller. hasAlpha selects whether an
// alpha change can ever be observed (it cannot for 3-channel images,
// since readPixel3 always reports alpha 255).
func appendOperator(dst []byte, cur, prev pixel, hasAlpha bool) []byte {
	if hasAlpha && cur.a != prev.a {
		return append(dst, tagRGBA, cur.r, cur.g, cur.b, cur.a)
	}

	dr := cur.r - prev.r
	dg := cur.g - prev.g
	db := cur.b - prev.b

	if diffInRange(dr) && diffInRange(dg) && diffInRange(db) {
		return append(dst, tagDiff|((dr+2)<<4)|((dg+2)<<2)|(db+2))
	}

	dgLuma := dg + 32
	drmdg := dr - dg + 8
	dbmdg := db - dg + 8
	if dgLuma < 64 && drmdg < 16 && dbmdg < 16 {
		return append(dst, tagLuma|dgLuma, (drmdg<<4)|dbmdg)
	}

	return append(dst, tagRGB, cur.r, cur.g, cur.b)
}

func encodeBody3(dst []byte, pixels []byte, width, height uint32) ([]byte, error) {
	n := int(width) * int(height)
	if len(pixels) < n*3 {
		return dst, ErrNotEnoughPixelData
	}

	var table [64]pixel
	prev := opaqueBlack
	run := 0

	for i := 0; i < n; i++ {
		if cap(dst)-len(dst) < maxChunkBytes {
			return dst, ErrOutputTooSmall
		}

		off := i * 3
		cur := readPixel3(pixels[off : off+3])

		if cur == prev {
			run++
			if run == 62 || i == n-1 {
				dst = append(dst, tagRun|byte(run-1))
				run = 0
			}
			continue
		}

		if run > 0 {
			dst = append(dst, tagRun|byte(run-1))
			run = 0
		}

		h := cur.hash()
		if table[h] == cur {
			dst = append(dst, tagIndex|h)
		} else {
			table[h] = cur
			dst = appendOperator(dst, cur, prev, false)
		}
		prev = cur
	}

	return dst, nil
}

func encodeBody4(dst []byte, pixels []byte, width, height uint32) ([]byte, error) {
	n := int(width) * int(height)
	if len(pixels) < n*4 {
		return dst, ErrNotEnoughPixelData
	}

	var table [64]pixel
	prev := opaqueBlack
	run := 0

	for i := 0; i < n; i++ {
		if cap(dst)-len(dst) < maxChunkBytes {
			return dst, ErrOutputTooSmall
		}

		off := i * 4
		cur := readPixel4(pixels[off : off+4])

		if cur == prev {
			run++
			if run == 62 || i == n-1 {
				dst = append(dst, tagRun|byte(run-1))
				run = 0
			}
			continue
		}

		if run > 0 {
			dst = append(dst, tagRun|byte(run-1))
			run = 0
		}

		h := cur.hash()
		if table[h] == cur {
			dst = append(dst, tagIndex|h)
		} else {
			table[h] = cur
			dst = appendOperator(dst, cur, prev, true)
		}
		prev = cur
	}

	return dst, nil
}
