// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package preproc

import (
	"image"
	"image/color"
	"math"
)

// SampleSize is the width and height every sample is scaled to.
const SampleSize = 50

// Sample is a normalised character image, indexed [y][x][channel],
// with values in the range 0 to 1.
type Sample [SampleSize][SampleSize][1]float32

// BlurRadius is the radius of the blur applied to source images
// before they are scaled down.
const BlurRadius = 1

// Canonical turns a source image into a cleaned SampleSize square
// image, ready to be perturbed or normalised.
func Canonical(img image.Image) *image.Gray {
	gray := Blur(ToGray(img), BlurRadius)
	return Clean(Resize(gray, SampleSize, SampleSize))
}

// Normalise converts an image to a Sample, scaling it to SampleSize
// first if needed.
func Normalise(img *image.Gray) Sample {
	b := img.Bounds()
	if b.Dx() != SampleSize || b.Dy() != SampleSize {
		img = Resize(img, SampleSize, SampleSize)
		b = img.Bounds()
	}
	var s Sample
	for y := 0; y < SampleSize; y++ {
		for x := 0; x < SampleSize; x++ {
			s[y][x][0] = float32(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y) / 255
		}
	}
	return s
}

// NormaliseDrawing converts a drawing, such as a canvas snapshot, to
// a Sample. Each pixel is reduced to its darkest colour channel
// before scaling, so coloured strokes on white count as ink.
func NormaliseDrawing(img image.Image) Sample {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			gray.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{min(c.R, c.G, c.B)})
		}
	}
	return Normalise(gray)
}

// Image converts a Sample back into an image, for inspection.
func (s Sample) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, SampleSize, SampleSize))
	for y := 0; y < SampleSize; y++ {
		for x := 0; x < SampleSize; x++ {
			v := math.Round(float64(s[y][x][0]) * 255)
			img.SetGray(x, y, color.Gray{clamp(v)})
		}
	}
	return img
}
