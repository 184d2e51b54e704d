// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package preproc

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalise(t *testing.T) {
	s := Normalise(Uniform(SampleSize, SampleSize, 51))
	for y := range s {
		for x := range s[y] {
			if s[y][x][0] != float32(51)/255 {
				t.Fatalf("pixel %d,%d: got %v", x, y, s[y][x][0])
			}
		}
	}

	big := Normalise(Uniform(80, 120, 255))
	assert.Equal(t, float32(1), big[0][0][0])
	assert.Equal(t, float32(1), big[SampleSize-1][SampleSize-1][0])
}

func TestNormaliseDrawing(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, SampleSize, SampleSize))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.Set(3, 4, color.RGBA{255, 0, 0, 255})

	s := NormaliseDrawing(img)
	assert.Equal(t, float32(0), s[4][3][0], "coloured stroke should count as ink")
	assert.Equal(t, float32(1), s[3][4][0])
}

func TestSampleImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, SampleSize, SampleSize))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}
	assert.True(t, imgsequal(img, Normalise(img).Image()))
}

func TestCanonical(t *testing.T) {
	c := Canonical(Uniform(200, 100, 255))
	assert.True(t, imgsequal(Uniform(SampleSize, SampleSize, 255), c))
}
