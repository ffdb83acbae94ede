package qoi

const mask2 byte = 0xC0

// DecodeHeader parses just the 14-byte preamble of src, without
// decoding the body. It is a peek: src may contain more than the
// header.
func DecodeHeader(src []byte) (Descriptor, error) {
	return decodeHeader(src)
}

// Decode verifies and parses src's header, decodes its body into dst
// and returns the parsed descriptor. dst must be at least
// descriptor.DecodedSize() bytes long. Trailing bytes in src beyond
// the declared pixel count, including the end marker, are never read
// and never cause an error.
func Decode(src []byte, dst []byte) (Descriptor, error) {
	descriptor, err := decodeHeader(src)
	if err != nil {
		return Descriptor{}, err
	}

	// Each body byte yields at most 62 pixels (one maximal RUN chunk),
	// so a declared pixel count beyond that cannot be met by src.
	if uint64(descriptor.Width)*uint64(descriptor.Height) > uint64(len(src)-headerSize)*62 {
		return Descriptor{}, ErrNotEnoughData
	}

	size := descriptor.DecodedSize()
	if len(dst) < size {
		return Descriptor{}, ErrOutputTooSmall
	}

	body := src[headerSize:]
	if descriptor.hasAlpha() {
		err = decodeBody4(dst, body, descriptor.Width, descriptor.Height)
	} else {
		err = decodeBody3(dst, body, descriptor.Width, descriptor.Height)
	}
	if err != nil {
		return Descriptor{}, err
	}
	return descriptor, nil
}

// DecodeAlloc is the allocating convenience form of Decode: it sizes a
// fresh buffer at Descriptor.DecodedSize and decodes into it.
func DecodeAlloc(src []byte) (Descriptor, []byte, error) {
	descriptor, err := decodeHeader(src)
	if err != nil {
		return Descriptor{}, nil, err
	}
	// Same pixel-count bound as Decode, checked before allocating.
	if uint64(descriptor.Width)*uint64(descriptor.Height) > uint64(len(src)-headerSize)*62 {
		return Descriptor{}, nil, ErrNotEnoughData
	}
	dst := make([]byte, descriptor.DecodedSize())
	descriptor, err = Decode(src, dst)
	if err != nil {
		return Descriptor{}, nil, err
	}
	return descriptor, dst, nil
}

func decodeBody3(dst []byte, body []byte, width, height uint32) error {
	n := int(width) * int(height)
	var table [64]pixel
	prev := opaqueBlack

	si := 0
	for pos := 0; pos < n; {
		if si >= len(body) {
			return ErrNotEnoughData
		}
		b1 := body[si]

		switch {
		case b1 == tagRGB:
			if len(body)-si < 4 {
				return ErrNotEnoughData
			}
			cur := pixel{r: body[si+1], g: body[si+2], b: body[si+3], a: prev.a}
			si += 4
			table[cur.hash()] = cur
			cur.writeRGB(dst[pos*3 : pos*3+3])
			prev = cur
			pos++

		case b1 == tagRGBA:
			// A 3-channel descriptor has no alpha byte to carry: this
			// accepts the legacy-producer tolerance of §4.4 and treats
			// the chunk as RGB, still consuming all 5 bytes.
			if len(body)-si < 5 {
				return ErrNotEnoughData
			}
			cur := pixel{r: body[si+1], g: body[si+2], b: body[si+3], a: prev.a}
			si += 5
			table[cur.hash()] = cur
			cur.writeRGB(dst[pos*3 : pos*3+3])
			prev = cur
			pos++

		case b1&mask2 == tagIndex:
			cur := table[b1&0x3F]
			si++
			cur.writeRGB(dst[pos*3 : pos*3+3])
			prev = cur
			pos++

		case b1&mask2 == tagDiff:
			dr := ((b1 >> 4) & 0x03) - 2
			dg := ((b1 >> 2) & 0x03) - 2
			db := (b1 & 0x03) - 2
			cur := pixel{r: prev.r + dr, g: prev.g + dg, b: prev.b + db, a: prev.a}
			si++
			table[cur.hash()] = cur
			cur.writeRGB(dst[pos*3 : pos*3+3])
			prev = cur
			pos++

		case b1&mask2 == tagLuma:
			if len(body)-si < 2 {
				return ErrNotEnoughData
			}
			b2 := body[si+1]
			dg := (b1 & 0x3F) - 32
			dr := ((b2>>4)&0x0F) - 8 + dg
			db := (b2&0x0F) - 8 + dg
			cur := pixel{r: prev.r + dr, g: prev.g + dg, b: prev.b + db, a: prev.a}
			si += 2
			table[cur.hash()] = cur
			cur.writeRGB(dst[pos*3 : pos*3+3])
			prev = cur
			pos++

		default: // b1&mask2 == tagRun
			count := int(b1&0x3F) + 1
			si++
			for k := 0; k < count && pos < n; k++ {
				prev.writeRGB(dst[pos*3 : pos*3+3])
				pos++
			}
		}
	}

	return nil
}

func decodeBody4(dst []byte, body []byte, width, height uint32) error {
	n := int(width) * int(height)
	var table [64]pixel
	prev := opaqueBlack

	si := 0
	for pos := 0; pos < n; {
		if si >= len(body) {
			return ErrNotEnoughData
		}
		b1 := body[si]

		switch {
		case b1 == tagRGB:
			if len(body)-si < 4 {
				return ErrNotEnoughData
			}
			cur := pixel{r: body[si+1], g: body[si+2], b: body[si+3], a: prev.a}
			si += 4
			table[cur.hash()] = cur
			cur.writeRGBA(dst[pos*4 : pos*4+4])
			prev = cur
			pos++

		case b1 == tagRGBA:
			if len(body)-si < 5 {
				return ErrNotEnoughData
			}
			cur := pixel{r: body[si+1], g: body[si+2], b: body[si+3], a: body[si+4]}
			si += 5
			table[cur.hash()] = cur
			cur.writeRGBA(dst[pos*4 : pos*4+4])
			prev = cur
			pos++

		case b1&mask2 == tagIndex:
			cur := table[b1&0x3F]
			si++
			cur.writeRGBA(dst[pos*4 : pos*4+4])
			prev = cur
			pos++

		case b1&mask2 == tagDiff:
			dr := ((b1 >> 4) & 0x03) - 2
			dg := ((b1 >> 2) & 0x03) - 2
			db := (b1 & 0x03) - 2
			cur := pixel{r: prev.r + dr, g: prev.g + dg, b: prev.b + db, a: prev.a}
			si++
			table[cur.hash()] = cur
			cur.writeRGBA(dst[pos*4 : pos*4+4])
			prev = cur
			pos++

		case b1&mask2 == tagLuma:
			if len(body)-si < 2 {
				return ErrNotEnoughData
			}
			b2 := body[si+1]
			dg := (b1 & 0x3F) - 32
			dr := ((b2>>4)&0x0F) - 8 + dg
			db := (b2&0x0F) - 8 + dg
			cur := pixel{r: prev.r + dr, g: prev.g + dg, b: prev.b + db, a: prev.a}
			si += 2
			table[cur.hash()] = cur
			cur.writeRGBA(dst[pos*4 : pos*4+4])
			prev = cur
			pos++

		default: // b1&mask2 == tagRun
			count := int(b1&0x3F) + 1
			si++
			for k := 0; k < count && pos < n; k++ {
				prev.writeRGBA(dst[pos*4 : pos*4+4])
				pos++
			}
		}
	}

	return nil
}
