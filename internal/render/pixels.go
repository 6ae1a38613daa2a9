package render

import "image/color"

// rgba8 converts a color to 8-bit premultiplied RGBA components.
func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBinaryRGBA converts binary cell data into RGBA pixels in buf. Any
// non-zero cell is painted with on.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx, offPx := rgba8(on), rgba8(off)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
