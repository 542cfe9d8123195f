/*
DESCRIPTION
  trim.go drops a trailing column and/or row so that an image's width and
  height are both even, which the block DCT stage requires. Grounded on
  original_source/readOrWrite.c's trim/makeNewImage.

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

// trim returns image with at most one trailing column and one trailing
// row dropped so both dimensions are even. If image is already
// even-dimensioned, the input is returned unchanged (no copy is made).
func trim(image *RGBImage) *RGBImage {
	width := image.Width &^ 1
	height := image.Height &^ 1

	if width == image.Width && height == image.Height {
		return image
	}

	out := &RGBImage{
		Width:       width,
		Height:      height,
		Denominator: image.Denominator,
		Pixels:      make([][]RGBPixel, height),
	}
	for row := 0; row < height; row++ {
		out.Pixels[row] = append([]RGBPixel(nil), image.Pixels[row][:width]...)
	}
	return out
}
