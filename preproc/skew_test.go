// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package preproc

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkew(t *testing.T) {
	img := stroke(SampleSize, SampleSize, 30, image.Rect(10, 20, 40, 30), 0)

	cases := []struct {
		intensity float64
		smoothing Smoothing
	}{
		{0, NoSmoothing},
		{3, NoSmoothing},
		{-5, NoSmoothing},
		{5, Smooth},
		{-2, SmoothMore},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%0.0f_%s", c.intensity, c.smoothing), func(t *testing.T) {
			a := Skew(img, c.intensity, 255, c.smoothing)
			b := Skew(img, c.intensity, 255, c.smoothing)
			assert.Equal(t, img.Bounds(), a.Bounds())
			assert.True(t, imgsequal(a, b), "skew should be deterministic")

			if c.smoothing != NoSmoothing {
				return
			}
			for _, v := range a.Pix {
				assert.Contains(t, []uint8{0, 30, 255}, v, "unsmoothed pixels should be source or fill values")
			}
		})
	}
}

func TestSkewIdentity(t *testing.T) {
	img := stroke(20, 20, 200, image.Rect(5, 5, 15, 8), 10)
	assert.True(t, imgsequal(img, Skew(img, 0, 255, NoSmoothing)), "zero intensity should not move anything")
}

func TestSkewOffsets(t *testing.T) {
	// floor rather than truncation, so negative displacements round away from zero
	ox, oy := skewOffsets(0, 40, 50, 50, 5)
	assert.Equal(t, -4, ox) // 5*sin(2π*40/62.5) = -3.85
	assert.Equal(t, 5, oy)
}

func TestSkewGaps(t *testing.T) {
	img := Uniform(SampleSize, SampleSize, 0)
	skewed := Skew(img, 5, 255, NoSmoothing)
	var filled int
	for _, v := range skewed.Pix {
		if v == 255 {
			filled++
		}
	}
	assert.Greater(t, filled, 0, "a strong skew should leave gaps to fill")
	assert.Less(t, filled, SampleSize*SampleSize)
}
