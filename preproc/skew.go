// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package preproc

import (
	"image"
	"image/color"
	"math"
)

// Smoothing selects the filter applied after skewing.
type Smoothing int

const (
	NoSmoothing Smoothing = iota
	Smooth
	SmoothMore
)

func (s Smoothing) String() string {
	switch s {
	case NoSmoothing:
		return "none"
	case Smooth:
		return "smooth"
	case SmoothMore:
		return "smoothmore"
	}
	return "unknown"
}

// skewOffsets returns the displacement of the pixel at x, y for
// an image of size w by h.
func skewOffsets(x, y, w, h int, intensity float64) (int, int) {
	ox := math.Floor(intensity * math.Sin(2*math.Pi*float64(y)/(float64(w)*1.25)))
	oy := math.Floor(intensity * math.Cos(2*math.Pi*float64(x)/(float64(h)*1.25)))
	return int(ox), int(oy)
}

// scatter moves every pixel of img to its skewed position in new,
// recording which positions were written in covered. Pixels that
// land outside the image are dropped; later pixels in scan order
// overwrite earlier ones.
func scatter(img, new *image.Gray, covered [][]bool, intensity float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ox, oy := skewOffsets(x, y, w, h, intensity)
			nx, ny := x+ox, y+oy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			new.SetGray(b.Min.X+nx, b.Min.Y+ny, img.GrayAt(b.Min.X+x, b.Min.Y+y))
			covered[ny][nx] = true
		}
	}
}

// fillGaps sets every position not covered by scatter to fill.
func fillGaps(new *image.Gray, covered [][]bool, fill uint8) {
	b := new.Bounds()
	c := color.Gray{fill}
	for y, row := range covered {
		for x, ok := range row {
			if !ok {
				new.SetGray(b.Min.X+x, b.Min.Y+y, c)
			}
		}
	}
}

// Skew warps an image along sine and cosine waves whose amplitude
// is intensity pixels, returning a new image of the same size.
// Positions which no source pixel maps onto are set to fill, and
// the result is then smoothed as requested.
func Skew(img *image.Gray, intensity float64, fill uint8, smoothing Smoothing) *image.Gray {
	b := img.Bounds()
	new := image.NewGray(b)

	covered := make([][]bool, b.Dy())
	for i := range covered {
		covered[i] = make([]bool, b.Dx())
	}

	scatter(img, new, covered, intensity)
	fillGaps(new, covered, fill)

	switch smoothing {
	case Smooth:
		return Convolve(new, SmoothKernel)
	case SmoothMore:
		return Convolve(new, SmoothMoreKernel)
	}
	return new
}
