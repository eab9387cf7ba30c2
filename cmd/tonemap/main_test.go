// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/tonemap/colors/aces"
	"cogentcore.org/tonemap/colors/tonemap"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestOpenConfig(t *testing.T) {
	toml := writeFile(t, "tonemap.toml", `
exposure = 1.5

[tonemap]
tier = "Mobile"
brightness_match = false
`)
	c := &Config{}
	c.Defaults()
	require.NoError(t, OpenConfig(c, toml))
	assert.Equal(t, tonemap.Mobile, c.Tonemap.Tier)
	assert.False(t, c.Tonemap.BrightnessMatch)
	assert.False(t, c.Tonemap.Override)
	assert.Equal(t, float32(1.5), c.Exposure)

	yml := writeFile(t, "tonemap.yaml", `
tonemap:
  operator: reinhard
  override: true
`)
	c = &Config{}
	c.Defaults()
	require.NoError(t, OpenConfig(c, yml))
	assert.Equal(t, tonemap.Reinhard, c.Tonemap.Operator)
	assert.True(t, c.Tonemap.Override)
	assert.True(t, c.Tonemap.BrightnessMatch)
	assert.Equal(t, tonemap.Desktop, c.Tonemap.Tier)

	bad := writeFile(t, "bad.toml", "[tonemap]\noperator = \"Hable\"\n")
	assert.Error(t, OpenConfig(c, bad))

	assert.Error(t, OpenConfig(c, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestParseRGB(t *testing.T) {
	c, err := ParseRGB("0.5, 0.2,0.1")
	require.NoError(t, err)
	assert.Equal(t, aces.SRGB(0.5, 0.2, 0.1), c)

	c, err = ParseRGB("0.18")
	require.NoError(t, err)
	assert.Equal(t, aces.SRGB(0.18, 0.18, 0.18), c)

	_, err = ParseRGB("1,2")
	assert.Error(t, err)
	_, err = ParseRGB("1,x,2")
	assert.Error(t, err)
}

func TestFlags(t *testing.T) {
	cfg := writeFile(t, "tonemap.toml", "[tonemap]\ntier = \"Mobile\"\n")

	o, err := parseFlags(commands[0], []string{"-config", cfg})
	require.NoError(t, err)
	assert.Equal(t, tonemap.Unreal, o.Tonemap.SelectedOperator())

	// flags override the file
	o, err = parseFlags(commands[0], []string{"-config", cfg, "-tier", "desktop", "-brightness-match=false", "-ev", "2"})
	require.NoError(t, err)
	assert.Equal(t, tonemap.ACES, o.Tonemap.SelectedOperator())
	assert.False(t, o.Tonemap.BrightnessMatch)
	assert.Equal(t, float32(2), o.Exposure)

	o, err = parseFlags(commands[0], []string{"-op", "FilmicALU"})
	require.NoError(t, err)
	assert.Equal(t, tonemap.FilmicALU, o.Tonemap.SelectedOperator())

	_, err = parseFlags(commands[0], []string{"-op", "hable"})
	assert.Error(t, err)
}

func TestRunColor(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, run([]string{"color", "-op", "ACESSRGB", "-rgb", "0.18"}, &b))
	want := tonemap.Hex(tonemap.ACESSRGBOp(aces.SRGB(0.18, 0.18, 0.18)), false)
	assert.Contains(t, b.String(), "ACESSRGB")
	assert.Contains(t, b.String(), want)

	assert.Error(t, run([]string{"color", "-rgb", "red"}, &b))
	assert.Error(t, run([]string{"paint"}, &b))
}

func TestRunRamp(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, run([]string{"ramp", "-op", "DisplayRange", "-from", "-5", "-to", "10"}, &b))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 17)
	assert.Contains(t, lines[1], "#000000")
	assert.Contains(t, lines[16], "#ffffff")

	assert.Error(t, run([]string{"ramp", "-step", "0"}, &b))
	assert.Error(t, run([]string{"ramp", "-from", "2", "-to", "1"}, &b))
}

func TestRunOps(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, run([]string{"ops", "-tier", "Mobile"}, &b))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, int(tonemap.OperatorsN))
	assert.True(t, strings.HasPrefix(lines[tonemap.Unreal], "* Unreal"))
}

// hdrImage is a small in-memory hdr.Image.
type hdrImage struct {
	rect image.Rectangle
}

func (im *hdrImage) ColorModel() color.Model { return hdrcolor.RGBModel }
func (im *hdrImage) Bounds() image.Rectangle { return im.rect }
func (im *hdrImage) At(x, y int) color.Color { return im.HDRAt(x, y) }
func (im *hdrImage) Size() int               { return im.rect.Dx() * im.rect.Dy() }

func (im *hdrImage) HDRAt(x, y int) hdrcolor.Color {
	v := 0.01 * float64(1+x+4*y)
	return hdrcolor.RGB{R: v, G: v / 2, B: v / 4}
}

func TestRunImage(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scene.hdr")
	f, err := os.Create(in)
	require.NoError(t, err)
	require.NoError(t, rgbe.Encode(f, &hdrImage{rect: image.Rect(0, 0, 4, 3)}))
	require.NoError(t, f.Close())

	src, err := OpenHDR(in)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), src.Bounds())

	for _, name := range []string{"out.png", "out.tiff"} {
		out := filepath.Join(dir, name)
		var b bytes.Buffer
		require.NoError(t, run([]string{"image", "-in", in, "-out", out, "-ev", "1"}, &b))
		assert.Contains(t, b.String(), out)
		st, err := os.Stat(out)
		require.NoError(t, err)
		assert.Greater(t, st.Size(), int64(0))
	}

	pf, err := os.Open(filepath.Join(dir, "out.png"))
	require.NoError(t, err)
	defer pf.Close()
	img, err := png.Decode(pf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())

	assert.Error(t, run([]string{"image", "-in", in}, &bytes.Buffer{}))
	assert.Error(t, run([]string{"image", "-in", filepath.Join(dir, "missing.hdr"), "-out", "x.png"}, &bytes.Buffer{}))
}
