/*
DESCRIPTION
  colorspace.go implements the RGB <-> component-video (Y/Pb/Pr) per-pixel
  transform. Coefficients are the standard JPEG Y'CbCr coefficients,
  matching original_source/transformPixels.c exactly so independently
  decoded streams agree bit-for-bit.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package comp40

// CVImage is a row-major width x height grid of component-video pixels.
type CVImage struct {
	Width, Height int
	Pixels        [][]CVPixel
}

// rgbToCV converts every pixel of image from RGB to component video,
// dividing each channel by the image's denominator first.
func rgbToCV(image *RGBImage) *CVImage {
	out := &CVImage{
		Width:  image.Width,
		Height: image.Height,
		Pixels: make([][]CVPixel, image.Height),
	}
	d := float64(image.Denominator)
	for row := 0; row < image.Height; row++ {
		out.Pixels[row] = make([]CVPixel, image.Width)
		for col := 0; col < image.Width; col++ {
			p := image.at(col, row)
			out.Pixels[row][col] = rgbPixelToCV(p, d)
		}
	}
	return out
}

// rgbPixelToCV converts one RGB pixel to component video given the
// channel denominator d.
func rgbPixelToCV(p RGBPixel, d float64) CVPixel {
	r := float64(p.Red) / d
	g := float64(p.Green) / d
	b := float64(p.Blue) / d

	return CVPixel{
		Y:  0.299*r + 0.587*g + 0.114*b,
		Pb: -0.168736*r - 0.331264*g + 0.5*b,
		Pr: 0.5*r - 0.418688*g - 0.081312*b,
	}
}

// cvToRGB converts every pixel of image from component video back to RGB
// with the given output denominator, clamping each channel to [0,1]
// before scaling. Clamping is mandatory here: the inverse DCT plus
// quantization can produce slightly out-of-gamut component-video values.
func cvToRGB(image *CVImage, denominator uint16) *RGBImage {
	out := &RGBImage{
		Width:       image.Width,
		Height:      image.Height,
		Denominator: denominator,
		Pixels:      make([][]RGBPixel, image.Height),
	}
	d := float64(denominator)
	for row := 0; row < image.Height; row++ {
		out.Pixels[row] = make([]RGBPixel, image.Width)
		for col := 0; col < image.Width; col++ {
			out.Pixels[row][col] = cvPixelToRGB(image.Pixels[row][col], d)
		}
	}
	return out
}

// cvPixelToRGB converts one component-video pixel back to RGB, clamping
// each channel to [0,1] before scaling by d and truncating toward zero,
// matching the behaviour of a float-to-integer conversion of a
// non-negative value.
func cvPixelToRGB(p CVPixel, d float64) RGBPixel {
	r := p.Y + 1.402*p.Pr
	g := p.Y - 0.344136*p.Pb - 0.714136*p.Pr
	b := p.Y + 1.772*p.Pb

	return RGBPixel{
		Red:   uint16(clamp01(r) * d),
		Green: uint16(clamp01(g) * d),
		Blue:  uint16(clamp01(b) * d),
	}
}

// clamp01 clamps x to [0,1].
func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
