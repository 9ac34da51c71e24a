package font

import (
	"image"
	"image/draw"
)

// Unpack expands 2-bit samples into a width by height grayscale image,
// scaling each sample to 0, 85, 170 or 255. Missing trailing samples are
// left as zero.
func Unpack(b []byte, width, height int) *image.Gray {
	m := image.NewGray(image.Rect(0, 0, width, height))
	for i := range m.Pix {
		if i/samplesPerByte >= len(b) {
			break
		}
		shift := 6 - 2*uint(i%samplesPerByte)
		m.Pix[i] = (b[i/samplesPerByte] >> shift & 0x03) * levelStep
	}
	return m
}

// Pack packs the low two bits of every sample of m, four to a byte, most
// significant first. A partial final byte is zero filled.
func Pack(m *image.Gray) []byte {
	r := m.Bounds()
	b := make([]byte, packedSize(r.Dx(), r.Dy()))
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			shift := 6 - 2*uint(i%samplesPerByte)
			b[i/samplesPerByte] |= m.GrayAt(x, y).Y & 0x03 << shift
			i++
		}
	}
	return b
}

// Quantize converts m to grayscale and snaps every sample to the nearest of
// the four levels Pack can represent.
func Quantize(m image.Image) *image.Gray {
	r := m.Bounds()
	g := image.NewGray(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(g, g.Bounds(), m, r.Min, draw.Src)
	for i, v := range g.Pix {
		g.Pix[i] = uint8((int(v) + levelStep/2) / levelStep * levelStep)
	}
	return g
}
