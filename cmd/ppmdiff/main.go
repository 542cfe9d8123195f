/*
DESCRIPTION
  ppmdiff reports the RMS per-channel distortion between two binary PPM
  images, normalised by each image's own denominator so that it can
  compare an original against a comp40 round trip of itself. Either
  argument may be "-" to read that image from standard input.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main is the ppmdiff CLI driver, comparing two PPM images.
package main

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/stat"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/comp40/codec/comp40"
	"github.com/ausocean/comp40/image/ppm"
)

const logVerbosity = logging.Debug

var log = logging.New(logVerbosity, os.Stderr, true)

func main() {
	if len(os.Args) != 3 {
		log.Fatal("usage: ppmdiff <image1|-> <image2|->")
	}

	img1, err := readArg(os.Args[1])
	if err != nil {
		log.Fatal("could not read first image", "error", err.Error())
	}
	img2, err := readArg(os.Args[2])
	if err != nil {
		log.Fatal("could not read second image", "error", err.Error())
	}

	if abs(img1.Height-img2.Height) > 1 || abs(img1.Width-img2.Width) > 1 {
		fmt.Println("1.0")
		log.Fatal("images differ in width or height by more than one", "error", "dimension mismatch")
	}

	height := img1.Height
	if img2.Height < height {
		height = img2.Height
	}
	width := img1.Width
	if img2.Width < width {
		width = img2.Width
	}

	squares := make([]float64, 0, height*width*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p1 := img1.Pixels[y][x]
			p2 := img2.Pixels[y][x]
			squares = append(squares,
				channelSquareDiff(p1.Red, img1.Denominator, p2.Red, img2.Denominator),
				channelSquareDiff(p1.Green, img1.Denominator, p2.Green, img2.Denominator),
				channelSquareDiff(p1.Blue, img1.Denominator, p2.Blue, img2.Denominator),
			)
		}
	}

	rms := math.Sqrt(stat.Mean(squares, nil))
	fmt.Printf("%.4f\n", rms)
}

func channelSquareDiff(c1, d1, c2, d2 uint16) float64 {
	diff := float64(c1)/float64(d1) - float64(c2)/float64(d2)
	return diff * diff
}

func readArg(arg string) (*comp40.RGBImage, error) {
	r := os.Stdin
	if arg != "-" {
		f, err := os.Open(arg)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return ppm.Read(bufio.NewReader(r))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
