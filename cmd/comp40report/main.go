/*
DESCRIPTION
  comp40report walks a directory of binary PPM images, compresses and
  decompresses each through the comp40 codec, and plots reconstruction
  quality (RMS distortion) against compression ratio across the whole
  batch. It is the one long-running tool in this fleet, so it rotates
  its log file the way looper does.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main is the comp40report CLI driver: a batch quality report
// over a directory of PPM images, rendered as a PNG scatter chart.
package main

import (
	"bytes"
	"flag"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/comp40/codec/comp40"
	"github.com/ausocean/comp40/image/ppm"
)

// Logging related constants.
const (
	logPath      = "/var/log/comp40report/comp40report.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Debug
	logSuppress  = true
)

func main() {
	dir := flag.String("dir", ".", "directory of .ppm images to report on")
	out := flag.String("out", "comp40report.png", "path to write the report chart to")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, fileLog, logSuppress)

	samples, err := report(*dir, log)
	if err != nil {
		log.Fatal("report failed", "error", err.Error())
	}
	if len(samples) == 0 {
		log.Fatal("no .ppm images found", "dir", *dir)
	}

	if err := renderChart(samples, *out); err != nil {
		log.Fatal("could not render chart", "error", err.Error())
	}

	log.Info("report complete", "images", len(samples), "out", *out)
}

// sample holds one image's compression ratio and reconstruction distortion.
type sample struct {
	name  string
	ratio float64
	rms   float64
}

// report compresses and decompresses every *.ppm file directly under dir,
// returning one sample per image that round trips successfully.
func report(dir string, log logging.Logger) ([]sample, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "read directory")
	}

	var samples []sample
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".ppm" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		s, err := reportOne(path)
		if err != nil {
			log.Warning("skipping image", "path", path, "error", err.Error())
			continue
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func reportOne(path string) (sample, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return sample{}, errors.Wrap(err, "read file")
	}

	original, err := ppm.Read(bytes.NewReader(raw))
	if err != nil {
		return sample{}, errors.Wrap(err, "decode ppm")
	}

	var compressed bytes.Buffer
	if err := comp40.Compress(original, &compressed); err != nil {
		return sample{}, errors.Wrap(err, "compress")
	}

	reconstructed, err := comp40.Decompress(bytes.NewReader(compressed.Bytes()))
	if err != nil {
		return sample{}, errors.Wrap(err, "decompress")
	}

	rms, err := rmsDistortion(original, reconstructed)
	if err != nil {
		return sample{}, errors.Wrap(err, "compute distortion")
	}

	ratio := float64(len(raw)) / float64(compressed.Len())
	return sample{name: filepath.Base(path), ratio: ratio, rms: rms}, nil
}

func rmsDistortion(a, b *comp40.RGBImage) (float64, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return 0, errors.New("dimension mismatch between original and reconstructed image")
	}
	squares := make([]float64, 0, a.Width*a.Height*3)
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			p1 := a.Pixels[y][x]
			p2 := b.Pixels[y][x]
			squares = append(squares,
				channelSquareDiff(p1.Red, a.Denominator, p2.Red, b.Denominator),
				channelSquareDiff(p1.Green, a.Denominator, p2.Green, b.Denominator),
				channelSquareDiff(p1.Blue, a.Denominator, p2.Blue, b.Denominator),
			)
		}
	}
	return math.Sqrt(stat.Mean(squares, nil)), nil
}

func channelSquareDiff(c1, d1, c2, d2 uint16) float64 {
	diff := float64(c1)/float64(d1) - float64(c2)/float64(d2)
	return diff * diff
}

// renderChart plots RMS distortion (y) against compression ratio (x) for
// every sample, one point per image.
func renderChart(samples []sample, out string) error {
	p := plot.New()
	p.Title.Text = "comp40 quality vs. compression ratio"
	p.X.Label.Text = "compression ratio (original bytes / compressed bytes)"
	p.Y.Label.Text = "RMS distortion"

	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i].X = s.ratio
		pts[i].Y = s.rms
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "build scatter plot")
	}
	p.Add(scatter)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
		return errors.Wrap(err, "save chart")
	}
	return nil
}
