// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package preproc

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Kernel is a square convolution kernel. Each output pixel is the
// weighted sum of its neighbourhood divided by Scale, plus Offset.
type Kernel struct {
	Size    int
	Weights []float64
	Scale   float64
	Offset  float64
}

// EdgeEnhanceMore strongly sharpens edges.
var EdgeEnhanceMore = Kernel{
	Size: 3,
	Weights: []float64{
		-1, -1, -1,
		-1, 9, -1,
		-1, -1, -1,
	},
	Scale: 1,
}

// SmoothKernel is a light 3x3 smoothing filter.
var SmoothKernel = Kernel{
	Size: 3,
	Weights: []float64{
		1, 1, 1,
		1, 5, 1,
		1, 1, 1,
	},
	Scale: 13,
}

// SmoothMoreKernel is a heavier 5x5 smoothing filter.
var SmoothMoreKernel = Kernel{
	Size: 5,
	Weights: []float64{
		1, 1, 1, 1, 1,
		1, 5, 5, 5, 1,
		1, 5, 44, 5, 1,
		1, 5, 5, 5, 1,
		1, 1, 1, 1, 1,
	},
	Scale: 100,
}

// clamp rounds v half up and limits it to the range of a gray pixel
func clamp(v float64) uint8 {
	v = math.Floor(v + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Convolve applies a kernel to an image, returning a new image.
// Pixels closer to the edge than half the kernel size are copied
// unchanged.
func Convolve(img *image.Gray, k Kernel) *image.Gray {
	b := img.Bounds()
	new := image.NewGray(b)
	r := k.Size / 2
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if x < b.Min.X+r || x >= b.Max.X-r || y < b.Min.Y+r || y >= b.Max.Y-r {
				new.SetGray(x, y, img.GrayAt(x, y))
				continue
			}
			var sum float64
			i := 0
			for ky := -r; ky <= r; ky++ {
				for kx := -r; kx <= r; kx++ {
					sum += k.Weights[i] * float64(img.GrayAt(x+kx, y+ky).Y)
					i++
				}
			}
			new.SetGray(x, y, color.Gray{clamp(sum/k.Scale + k.Offset)})
		}
	}
	return new
}

// gaussian returns a normalised one dimensional gaussian kernel
// with a standard deviation of radius, reaching out 3 standard
// deviations either side.
func gaussian(radius float64) []float64 {
	n := int(math.Ceil(radius * 3))
	k := make([]float64, n*2+1)
	var sum float64
	for i := -n; i <= n; i++ {
		v := math.Exp(-float64(i*i) / (2 * radius * radius))
		k[i+n] = v
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// Blur applies a gaussian blur of the given radius to an image,
// returning a new image. Pixels beyond the edge are treated as
// copies of the nearest edge pixel.
func Blur(img *image.Gray, radius float64) *image.Gray {
	b := img.Bounds()
	if radius <= 0 || b.Empty() {
		return Copy(img)
	}
	k := gaussian(radius)
	n := len(k) / 2
	w, h := b.Dx(), b.Dy()

	at := func(v, max int) int {
		if v < 0 {
			return 0
		}
		if v >= max {
			return max - 1
		}
		return v
	}

	horiz := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for i := -n; i <= n; i++ {
				sum += k[i+n] * float64(img.GrayAt(b.Min.X+at(x+i, w), b.Min.Y+y).Y)
			}
			horiz[y*w+x] = sum
		}
	}

	new := image.NewGray(b)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for i := -n; i <= n; i++ {
				sum += k[i+n] * horiz[at(y+i, h)*w+x]
			}
			new.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{clamp(sum)})
		}
	}
	return new
}

// Resize scales an image to w by h pixels using Catmull-Rom
// interpolation, returning a gray image with its origin at 0,0.
func Resize(img image.Image, w, h int) *image.Gray {
	new := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(new, new.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return new
}

// ToGray converts any image to a gray image with its origin at 0,0.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Bounds().Min == image.ZP {
		return g
	}
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// Copy returns a copy of a gray image.
func Copy(img *image.Gray) *image.Gray {
	b := img.Bounds()
	new := image.NewGray(b)
	draw.Draw(new, b, img, b.Min, draw.Src)
	return new
}

// Uniform returns a w by h image filled with a single value.
func Uniform(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}
