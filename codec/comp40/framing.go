/*
DESCRIPTION
  framing.go implements the comp40 wire format: a textual header followed
  by a row-major grid of big-endian 32-bit codewords. Grounded on
  original_source/readOrWrite.c's writeCompressed/readCompressed for the
  wire layout, and on the delimiter-scanning technique of the av tree's
  codec/codecutil.ByteScanner (adapted in place here, since the header
  grammar below is specific to this codec and not a generic byte-scanning
  concern worth sharing across packages).

  Reading a stream is a three-state parser: HEADER (magic + format line) ->
  NEWLINE (the width/height line) -> PAYLOAD (codewords), with PAYLOAD
  terminating once the expected codeword count has been read.

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

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// headerMagic is the literal first line of every comp40 stream.
const headerMagic = "COMP40 Compressed image format 2\n"

// frameState names the three states of the framing reader, for
// diagnostics only; reading itself is driven by the scanner below rather
// than an explicit state field, since each state's work is a single
// linear step with no branching back.
type frameState int

const (
	stateHeader frameState = iota
	stateNewline
	statePayload
)

func (s frameState) String() string {
	switch s {
	case stateHeader:
		return "HEADER"
	case stateNewline:
		return "NEWLINE"
	case statePayload:
		return "PAYLOAD"
	default:
		return "UNKNOWN"
	}
}

// writeCompressed writes words to dst in the comp40 wire format: the
// textual header naming the trimmed pixel dimensions, followed by
// words.Width*words.Height big-endian codewords in row-major order.
func writeCompressed(dst io.Writer, words *CodewordImage) error {
	pixelWidth := words.Width * blockSize
	pixelHeight := words.Height * blockSize

	header := fmt.Sprintf("%s%d %d\n", headerMagic, pixelWidth, pixelHeight)
	if _, err := io.WriteString(dst, header); err != nil {
		return errors.Wrap(err, "write header")
	}

	buf := make([]byte, 4)
	for row := 0; row < words.Height; row++ {
		for col := 0; col < words.Width; col++ {
			binary.BigEndian.PutUint32(buf, uint32(words.Words[row][col]))
			if _, err := dst.Write(buf); err != nil {
				return errors.Wrapf(err, "write codeword (%d,%d)", col, row)
			}
		}
	}
	return nil
}

// readCompressed parses a comp40 stream from src: the HEADER state reads
// and validates the magic line, NEWLINE reads the "<width> <height>\n"
// line, and PAYLOAD reads exactly width/2 * height/2 big-endian
// codewords. Any failure in any state is fatal, per the codec's error
// handling policy for malformed input.
func readCompressed(src io.Reader) (*CodewordImage, error) {
	r := bufio.NewReader(src)

	// HEADER.
	magic := make([]byte, len(headerMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, errors.Wrapf(err, "%s: read magic", stateHeader)
	}
	if string(magic) != headerMagic {
		return nil, errors.Errorf("%s: unexpected magic %q", stateHeader, magic)
	}

	// NEWLINE: "<width> <height>\n".
	var pixelWidth, pixelHeight int
	line, err := r.ReadString('\n')
	if err != nil {
		return nil, errors.Wrapf(err, "%s: read dimensions line", stateNewline)
	}
	if _, err := fmt.Sscanf(line, "%d %d\n", &pixelWidth, &pixelHeight); err != nil {
		return nil, errors.Wrapf(err, "%s: parse dimensions %q", stateNewline, line)
	}
	if pixelWidth < 0 || pixelHeight < 0 || pixelWidth%blockSize != 0 || pixelHeight%blockSize != 0 {
		return nil, errors.Errorf("%s: invalid dimensions %d %d", stateNewline, pixelWidth, pixelHeight)
	}

	// PAYLOAD.
	width, height := pixelWidth/blockSize, pixelHeight/blockSize
	words := &CodewordImage{
		Width:  width,
		Height: height,
		Words:  make([][]Codeword, height),
	}

	buf := make([]byte, 4)
	for row := 0; row < height; row++ {
		words.Words[row] = make([]Codeword, width)
		for col := 0; col < width; col++ {
			if _, err := io.ReadFull(r, buf); err != nil {
				if err == io.EOF {
					err = io.ErrUnexpectedEOF
				}
				return nil, errors.Wrapf(err, "%s: read codeword (%d,%d)", statePayload, col, row)
			}
			words.Words[row][col] = Codeword(binary.BigEndian.Uint32(buf))
		}
	}

	return words, nil
}
