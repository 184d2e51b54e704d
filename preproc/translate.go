// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package preproc

import (
	"image"
	"image/color"
)

// Translate shifts an image by dx pixels right and dy pixels down,
// returning a new image of the same size. The strips exposed by
// the shift are set to fill.
func Translate(img *image.Gray, dx, dy int, fill uint8) *image.Gray {
	b := img.Bounds()
	new := image.NewGray(b)
	c := color.Gray{fill}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sx, sy := x-dx, y-dy
			if sx < b.Min.X || sx >= b.Max.X || sy < b.Min.Y || sy >= b.Max.Y {
				new.SetGray(x, y, c)
				continue
			}
			new.SetGray(x, y, img.GrayAt(sx, sy))
		}
	}

	return new
}
