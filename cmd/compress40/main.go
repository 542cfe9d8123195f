/*
DESCRIPTION
  compress40 reads a binary PPM image from a named file or from standard
  input, compresses it with the comp40 codec, and writes the compressed
  stream to standard output.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main is the compress40 CLI driver: PPM in, comp40 stream out.
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

	image, err := ppm.Read(bufio.NewReader(src))
	if err != nil {
		log.Fatal("could not read PPM image", "error", err.Error())
	}

	out := bufio.NewWriter(os.Stdout)
	if err := comp40.Compress(image, out); err != nil {
		log.Fatal("could not compress image", "error", err.Error())
	}
	if err := out.Flush(); err != nil {
		log.Fatal("could not flush output", "error", err.Error())
	}
}
