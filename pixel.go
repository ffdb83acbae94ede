package qoi

// pixel is the codec's working representation of a single sample: four
// 8-bit channels. For 3-channel (RGB) images the alpha field is always
// held at 255 so that hashing, equality and delta arithmetic behave as
// if a constant opaque alpha channel were present, per the data model's
// definition of a pixel.
type pixel struct {
	r, g, b, a uint8
}

// opaqueBlack is the previous-pixel register's initial value for both
// encode and decode: (0, 0, 0, 255), never (0, 0, 0, 0).
var opaqueBlack = pixel{r: 0, g: 0, b: 0, a: 255}

// hash addresses the 64-slot recent-colors table. All arithmetic wraps
// at 8 bits, matching the table's indexing rule.
func (p pixel) hash() uint8 {
	return (p.r*3 + p.g*5 + p.b*7 + p.a*11) % 64
}

func readPixel3(b []byte) pixel {
	return pixel{r: b[0], g: b[1], b: b[2], a: 255}
}

func readPixel4(b []byte) pixel {
	return pixel{r: b[0], g: b[1], b: b[2], a: b[3]}
}

func (p pixel) writeRGB(b []byte) {
	b[0], b[1], b[2] = p.r, p.g, p.b
}

func (p pixel) writeRGBA(b []byte) {
	b[0], b[1], b[2], b[3] = p.r, p.g, p.b, p.a
}

// diffInRange reports whether a wrap-around channel delta falls in
// {-2, -1, 0, 1}, i.e. whether (delta+2) lands in 0..3 once biased and
// wrapped back into a uint8.
func diffInRange(delta uint8) bool {
	return delta+2 < 4
}
