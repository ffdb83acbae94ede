package qoi

import "errors"

// Encoding errors. This is the complete set; Encode never returns
// anything else, and never wraps one of these in another error.
var (
	// ErrNotEnoughPixelData is returned when the input pixel buffer is
	// shorter than Descriptor.DecodedSize().
	ErrNotEnoughPixelData = errors.New("qoi: not enough pixel data")

	// ErrOutputTooSmall is returned by both Encode and Decode when the
	// destination buffer cannot hold what was or would have been
	// produced. Callers should size encode output with
	// Descriptor.EncodedSizeUpperBound and decode output with
	// Descriptor.DecodedSize.
	ErrOutputTooSmall = errors.New("qoi: output buffer too small")
)

// Decoding errors. Together with ErrOutputTooSmall above, this is the
// complete set; Decode and DecodeHeader never return anything else, and
// never wrap one of these in another error.
var (
	// ErrNotEnoughData is returned when the source buffer runs out
	// before the header, or the declared pixel count, is satisfied.
	ErrNotEnoughData = errors.New("qoi: not enough data")

	// ErrInvalidMagic is returned when the first four header bytes are
	// not "qoif".
	ErrInvalidMagic = errors.New("qoi: invalid magic bytes")

	// ErrInvalidChannelsValue is returned when the header's channels
	// byte is not 3 or 4.
	ErrInvalidChannelsValue = errors.New("qoi: invalid channels value")

	// ErrInvalidColorSpaceValue is returned when the header's
	// color-space byte is not 0 or 1.
	ErrInvalidColorSpaceValue = errors.New("qoi: invalid color space value")
)
