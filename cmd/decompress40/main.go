/*
DESCRIPTION
  decompress40 reads a comp40 compressed stream from a named file or from
  standard input, decompresses it, and writes a binary PPM image to
  standard output.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main is the decompress40 CLI driver: comp40 stream in, PPM out.
// There are no flags or environment variables; the only optional argument
// is a path to read from instead of standard input.
package main

import (
	"bufio"
	"os"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/comp40/codec/comp40"
	"github.com/ausocean/comp40/image/ppm"
)

const logVerbosity = logging.Debug

var log = logging.New(logVerbosity, os.Stderr, true)

func main() {
	src := os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatal("could not open input file", "path", os.Args[1], "error", err.Error())
		}
		defer f.Close()
		src = f
	}

	image, err := comp40.Decompress(bufio.NewReader(src))
	if err != nil {
		log.Fatal("could not decompress stream", "error", err.Error())
	}

	out := bufio.NewWriter(os.Stdout)
	if err := ppm.Write(out, image); err != nil {
		log.Fatal("could not write PPM image", "error", err.Error())
	}
	if err := out.Flush(); err != nil {
		log.Fatal("could not flush output", "error", err.Error())
	}
}
