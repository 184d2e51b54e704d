// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package preproc

import (
	"image"
)

// I is the Integral Image. It has one more row and column than the
// image it was made from, with the first row and column all zero,
// so that I[y][x] is the sum of all pixels above and to the left
// of (x, y).
type I [][]uint64

// Window is a part of an Integral Image
type Window struct {
	topleft     uint64
	topright    uint64
	bottomleft  uint64
	bottomright uint64
	width       int
	height      int
}

// ToIntegralImg creates an integral image
func ToIntegralImg(img *image.Gray) I {
	b := img.Bounds()
	integral := make(I, b.Dy()+1)
	integral[0] = make([]uint64, b.Dx()+1)
	for y := 1; y <= b.Dy(); y++ {
		row := make([]uint64, b.Dx()+1)
		var rowsum uint64
		for x := 1; x <= b.Dx(); x++ {
			rowsum += uint64(img.GrayAt(b.Min.X+x-1, b.Min.Y+y-1).Y)
			row[x] = integral[y-1][x] + rowsum
		}
		integral[y] = row
	}
	return integral
}

// GetRect gets the corner values of a rectangle of an Integral
// Image, clipped to the image. The rectangle is relative to the
// top left of the image the Integral Image was made from.
func (i I) GetRect(r image.Rectangle) Window {
	maxy := len(i) - 1
	maxx := 0
	if maxy >= 0 {
		maxx = len(i[0]) - 1
	}
	r = r.Intersect(image.Rect(0, 0, maxx, maxy))
	if r.Empty() {
		return Window{}
	}
	return Window{
		i[r.Min.Y][r.Min.X], i[r.Min.Y][r.Max.X],
		i[r.Max.Y][r.Min.X], i[r.Max.Y][r.Max.X],
		r.Dx(), r.Dy(),
	}
}

// Sum returns the sum of all pixels in a Window
func (w Window) Sum() uint64 {
	return w.bottomright + w.topleft - w.topright - w.bottomleft
}

// Size returns the total size of a Window
func (w Window) Size() int {
	return w.width * w.height
}

// Mean returns the average value of pixels in a Window, or 0 for
// an empty Window
func (w Window) Mean() float64 {
	if w.Size() == 0 {
		return 0
	}
	return float64(w.Sum()) / float64(w.Size())
}

// MeanRect calculates the mean value of a rectangle of an Integral
// Image
func (i I) MeanRect(r image.Rectangle) float64 {
	return i.GetRect(r).Mean()
}
