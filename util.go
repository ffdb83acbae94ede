package qoi

import "image"

// isOpaqueImage reports whether every pixel in im has full alpha,
// which decides whether Image can be encoded with the cheaper
// 3-channel path.
func isOpaqueImage(im image.Image) bool {
	if oim, ok := im.(interface{ Opaque() bool }); ok {
		return oim.Opaque()
	}

	rect := im.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if _, _, _, a := im.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
