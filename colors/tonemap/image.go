// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tonemap

import (
	"image"
	"image/color"

	"cogentcore.org/tonemap/colors/aces"
	"cogentcore.org/tonemap/math32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/tmo"
)

// Image tone maps an HDR image with a [Mapper].
// It implements [tmo.ToneMappingOperator].
type Image struct {

	// Input is the HDR image, with linear sRGB values.
	Input hdr.Image

	// Mapper is the resolved tone mapping operator.
	Mapper *Mapper

	// Exposure is the exposure adjustment in stops: each pixel is
	// multiplied by 2^Exposure before tone mapping.
	Exposure float32
}

var _ tmo.ToneMappingOperator = (*Image)(nil)

// NewImage returns a new [Image] tone mapping the given image with the
// given mapper, with no exposure adjustment.
func NewImage(input hdr.Image, m *Mapper) *Image {
	return &Image{Input: input, Mapper: m}
}

// Perform returns the tone mapped, display encoded image.
func (im *Image) Perform() image.Image {
	b := im.Input.Bounds()
	out := image.NewRGBA64(b)
	scale := math32.Pow(2, im.Exposure)
	bakes := im.Mapper.BakesGamma()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := im.Input.HDRAt(x, y).HDRRGBA()
			c := aces.SRGB(float32(r), float32(g), float32(bl))
			c = aces.SRGBFromVector(c.V().MulScalar(scale))
			out.SetRGBA64(x, y, Encode(im.Mapper.Map(c), bakes))
		}
	}
	return out
}

// Colorful returns the tone mapped color c as a display encoded
// [colorful.Color], clamped to [0, 1], with NaN as black. Unless bakesGamma is set,
// c is encoded with the sRGB transfer function.
func Colorful(c aces.LinearSRGB, bakesGamma bool) colorful.Color {
	if c.V().HasNaN() {
		return colorful.Color{}
	}
	if bakesGamma {
		return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped()
	}
	return colorful.LinearRgb(float64(c.R), float64(c.G), float64(c.B)).Clamped()
}

// Encode returns the tone mapped color c as an opaque [color.RGBA64].
// See [Colorful] for the encoding.
func Encode(c aces.LinearSRGB, bakesGamma bool) color.RGBA64 {
	r, g, b, _ := Colorful(c, bakesGamma).RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xffff}
}

// Hex returns the tone mapped color c as a #rrggbb hex string.
// See [Colorful] for the encoding.
func Hex(c aces.LinearSRGB, bakesGamma bool) string {
	return Colorful(c, bakesGamma).Hex()
}
