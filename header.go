package qoi

import "encoding/binary"

// headerSize is the fixed byte length of a QOI preamble: 4-byte magic,
// two big-endian uint32 dimensions, a channels byte and a color-space
// byte.
const headerSize = 14

// magic is the four leading bytes of every QOI stream.
const magic = "qoif"

// endMarker terminates the chunk stream: seven zero bytes followed by
// a single 0x01 byte.
var endMarker = [8]byte{0, 0, 0, 0, 0, 0, 0, 1}

// Descriptor is the parsed form of a QOI header: image dimensions,
// channel count (3 for RGB, 4 for RGBA) and the color-space byte. The
// color-space byte is preserved and validated but never interpreted —
// this codec does no color management.
type Descriptor struct {
	Width      uint32
	Height     uint32
	Channels   uint8
	ColorSpace uint8
}

func (d Descriptor) hasAlpha() bool {
	return d.Channels == 4
}

// DecodedSize returns the number of raw pixel bytes this descriptor's
// image decodes to: Width * Height * Channels.
func (d Descriptor) DecodedSize() int {
	return int(d.Width) * int(d.Height) * int(d.Channels)
}

// EncodedSizeUpperBound returns a safe upper bound on the number of
// bytes Encode can produce for this descriptor: the worst case where
// every pixel needs its own RGB/RGBA chunk, plus header and end
// marker.
func (d Descriptor) EncodedSizeUpperBound() int {
	return int(d.Width)*int(d.Height)*(int(d.Channels)+1) + headerSize + len(endMarker)
}

func decodeHeader(src []byte) (Descriptor, error) {
	if len(src) < headerSize {
		return Descriptor{}, ErrNotEnoughData
	}
	if string(src[0:4]) != magic {
		return Descriptor{}, ErrInvalidMagic
	}
	channels := src[12]
	if channels != 3 && channels != 4 {
		return Descriptor{}, ErrInvalidChannelsValue
	}
	colorSpace := src[13]
	if colorSpace != 0 && colorSpace != 1 {
		return Descriptor{}, ErrInvalidColorSpaceValue
	}
	return Descriptor{
		Width:      binary.BigEndian.Uint32(src[4:8]),
		Height:     binary.BigEndian.Uint32(src[8:12]),
		Channels:   channels,
		ColorSpace: colorSpace,
	}, nil
}

func appendHeader(dst []byte, d Descriptor) []byte {
	dst = append(dst, magic...)
	dst = binary.BigEndian.AppendUint32(dst, d.Width)
	dst = binary.BigEndian.AppendUint32(dst, d.Height)
	dst = append(dst, d.Channels, d.ColorSpace)
	return dst
}
