package qoi

import (
	"image"
	"image/color"
	"io"
)

func init() {
	image.RegisterFormat("qoi", magic, DecodeImage, DecodeConfig)
}

// Image is a decoded QOI image, satisfying image.Image directly over
// the raw channel bytes Decode produced — no conversion to
// image.NRGBA is performed.
type Image struct {
	Pix        []byte
	Width      int
	Height     int
	Channels   uint8
	ColorSpace uint8
}

func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

func (img *Image) At(x, y int) color.Color {
	off := (y*img.Width + x) * int(img.Channels)
	if img.Channels == 4 {
		return color.NRGBA{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2], A: img.Pix[off+3]}
	}
	return color.NRGBA{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2], A: 255}
}

// DecodeImage reads a full QOI stream from r and returns it as an
// image.Image. It is registered with the standard library's image
// package under the format name "qoi", so image.Decode recognizes QOI
// streams automatically; it adds no decoding logic of its own beyond
// adapting Decode's buffer contract to io.Reader.
func DecodeImage(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	descriptor, pix, err := DecodeAlloc(data)
	if err != nil {
		return nil, err
	}
	return &Image{
		Pix:        pix,
		Width:      int(descriptor.Width),
		Height:     int(descriptor.Height),
		Channels:   descriptor.Channels,
		ColorSpace: descriptor.ColorSpace,
	}, nil
}

// DecodeConfig returns the color model and dimensions of a QOI image
// without decoding its body, by reading only the header.
func DecodeConfig(r io.Reader) (image.Config, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return image.Config{}, err
	}
	descriptor, err := DecodeHeader(header)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(descriptor.Width),
		Height:     int(descriptor.Height),
	}, nil
}

// EncodeImage writes m to w in QOI format, choosing the 3-channel path
// when m is fully opaque and the 4-channel path otherwise. The
// color-space byte is always written as 0 (sRGB); this adapter does
// no color management.
func EncodeImage(w io.Writer, m image.Image) error {
	bounds := m.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	channels := uint8(4)
	if isOpaqueImage(m) {
		channels = 3
	}

	pixels := make([]byte, width*height*int(channels))
	off := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := m.At(x, y).RGBA()
			pixels[off] = byte(r >> 8)
			pixels[off+1] = byte(g >> 8)
			pixels[off+2] = byte(b >> 8)
			if channels == 4 {
				pixels[off+3] = byte(a >> 8)
			}
			off += int(channels)
		}
	}

	descriptor := Descriptor{Width: uint32(width), Height: uint32(height), Channels: channels, ColorSpace: 0}
	out, err := EncodeAlloc(descriptor, pixels)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
