// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package preproc

import (
	"image"
	"image/color"
	"math"
)

const (
	// NoiseThreshold is how close to the estimated background a
	// pixel must be to be wiped to white.
	NoiseThreshold = 60
	// patchSize is the width and height of each corner patch used
	// to estimate the background.
	patchSize = 3
)

// cornerPatches returns the four rectangles, relative to the image
// origin, whose means are used to estimate the background. The far
// patches start patchSize+1 pixels from the far edge.
func cornerPatches(w, h int) []image.Rectangle {
	farx, fary := w-patchSize-1, h-patchSize-1
	return []image.Rectangle{
		image.Rect(0, 0, patchSize, patchSize),
		image.Rect(farx, fary, farx+patchSize, fary+patchSize),
		image.Rect(0, fary, patchSize, fary+patchSize),
		image.Rect(farx, 0, farx+patchSize, patchSize),
	}
}

// NoiseLevel estimates the background intensity of an image as
// the brightest of the means of its four corner patches.
func NoiseLevel(img *image.Gray) float64 {
	b := img.Bounds()
	integral := ToIntegralImg(img)
	var noise float64
	for _, r := range cornerPatches(b.Dx(), b.Dy()) {
		noise = math.Max(noise, integral.MeanRect(r))
	}
	return noise
}

// Clean removes uniform background noise from a scanned character.
// The image is sharpened, every pixel within NoiseThreshold of the
// estimated background is set to white, and the result is smoothed.
// Images too small to hold the corner patches are returned as a
// copy.
func Clean(img *image.Gray) *image.Gray {
	b := img.Bounds()
	if b.Dx() < patchSize+1 || b.Dy() < patchSize+1 {
		return Copy(img)
	}

	sharp := Convolve(img, EdgeEnhanceMore)
	noise := NoiseLevel(sharp)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := float64(sharp.GrayAt(x, y).Y)
			if math.Abs(v-noise) < NoiseThreshold {
				sharp.SetGray(x, y, color.Gray{255})
			}
		}
	}

	return Convolve(sharp, SmoothKernel)
}
