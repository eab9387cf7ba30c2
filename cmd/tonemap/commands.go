// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/tonemap/base/errors"
	"cogentcore.org/tonemap/colors/aces"
	"cogentcore.org/tonemap/colors/tonemap"
	"cogentcore.org/tonemap/math32"
	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/muesli/termenv"
	"golang.org/x/image/tiff"
)

func colorFlags(fs *flag.FlagSet, o *options) {
	fs.StringVar(&o.rgb, "rgb", "0.18,0.18,0.18", "linear sRGB color as r,g,b, or a single gray value")
}

func rampFlags(fs *flag.FlagSet, o *options) {
	fs.Float64Var(&o.from, "from", -5, "first exposure stop relative to middle gray")
	fs.Float64Var(&o.to, "to", 10, "last exposure stop relative to middle gray")
	fs.Float64Var(&o.step, "step", 1, "stops between lines")
}

func imageFlags(fs *flag.FlagSet, o *options) {
	fs.StringVar(&o.in, "in", "", "input Radiance RGBE (.hdr) file")
	fs.StringVar(&o.out, "out", "", "output .png or .tiff file")
}

// ParseRGB parses a color given as "r,g,b", or as a single gray value.
func ParseRGB(s string) (aces.LinearSRGB, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 1 && len(fields) != 3 {
		return aces.LinearSRGB{}, fmt.Errorf("color %q must have 1 or 3 components", s)
	}
	var v [3]float32
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return aces.LinearSRGB{}, fmt.Errorf("color %q: %w", s, err)
		}
		v[i] = float32(x)
	}
	if len(fields) == 1 {
		v[1], v[2] = v[0], v[0]
	}
	return aces.SRGB(v[0], v[1], v[2]), nil
}

// exposed returns c scaled by 2^ev.
func exposed(c aces.LinearSRGB, ev float32) aces.LinearSRGB {
	return aces.SRGBFromVector(c.V().MulScalar(math32.Pow(2, ev)))
}

// swatch returns a block of the given display color for terminals
// that support color, and an empty string otherwise.
func swatch(out *termenv.Output, hex string) string {
	if out.Profile == termenv.Ascii {
		return ""
	}
	return out.String("      ").Background(out.Color(hex)).String()
}

func printMapped(w io.Writer, out *termenv.Output, label string, in aces.LinearSRGB, m *tonemap.Mapper) {
	res := m.Map(in)
	hex := tonemap.Hex(res, m.BakesGamma())
	fmt.Fprintf(w, "%s  %v -> %v  %s %s\n", label, in.V(), res.V(), hex, swatch(out, hex))
}

func runColor(o *options, m *tonemap.Mapper, w io.Writer) error {
	c, err := ParseRGB(o.rgb)
	if err != nil {
		return err
	}
	out := termenv.NewOutput(w)
	printMapped(w, out, m.Operator().String(), exposed(c, o.Exposure), m)
	return nil
}

func runRamp(o *options, m *tonemap.Mapper, w io.Writer) error {
	if o.step <= 0 {
		return fmt.Errorf("ramp step %g must be positive", o.step)
	}
	if o.to < o.from {
		return fmt.Errorf("ramp end %g is before start %g", o.to, o.from)
	}
	out := termenv.NewOutput(w)
	fmt.Fprintf(w, "%s ramp of middle gray\n", m.Operator())
	for ev := o.from; ev <= o.to+1e-9; ev += o.step {
		in := exposed(aces.SRGB(tonemap.MiddleGray, tonemap.MiddleGray, tonemap.MiddleGray), float32(ev)+o.Exposure)
		printMapped(w, out, fmt.Sprintf("%+6.2f", ev), in, m)
	}
	return nil
}

func runOps(o *options, m *tonemap.Mapper, w io.Writer) error {
	for _, op := range tonemap.OperatorsValues() {
		mark := " "
		if op == m.Operator() {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-13s %s\n", mark, op, op.Desc())
	}
	return nil
}

func runImage(o *options, m *tonemap.Mapper, w io.Writer) error {
	if o.in == "" || o.out == "" {
		return fmt.Errorf("image requires -in and -out files")
	}
	src, err := OpenHDR(o.in)
	if err != nil {
		return err
	}
	st := time.Now()
	im := tonemap.NewImage(src, m)
	im.Exposure = o.Exposure
	res := im.Perform()
	slog.Info("tone mapped image", "operator", m.Operator(), "size", src.Bounds().Size(), "time", time.Since(st))
	if err := SaveImage(res, o.out); err != nil {
		return err
	}
	fmt.Fprintf(w, "wrote %s\n", o.out)
	return nil
}

// OpenHDR decodes the Radiance RGBE image file at path.
func OpenHDR(path string) (hdr.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := rgbe.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	h, ok := img.(hdr.Image)
	if !ok {
		return nil, fmt.Errorf("decoding %q: not an HDR image", path)
	}
	return h, nil
}

// SaveImage encodes img to the file at path, as TIFF for a .tif or
// .tiff extension and as PNG otherwise. Both keep 16 bits per channel.
func SaveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		err = tiff.Encode(bw, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(bw, img)
	}
	if err == nil {
		err = bw.Flush()
	}
	return errors.Join(err, f.Close())
}
