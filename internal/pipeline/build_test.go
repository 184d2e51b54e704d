// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rescribe.xyz/charpipeline/charset"
	"rescribe.xyz/charpipeline/dataset"
	"rescribe.xyz/charpipeline/pathindex"
	"rescribe.xyz/charpipeline/preproc"
)

// charimg draws a dark bar on a noisy light background, varying
// with n so that different images differ
func charimg(n int) *image.Gray {
	r := rand.New(rand.NewSource(int64(n)))
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for i := range img.Pix {
		img.Pix[i] = uint8(190 + r.Intn(20))
	}
	for y := 10 + n%7; y < 50; y++ {
		for x := 20 + n%5; x < 30+n%9; x++ {
			img.SetGray(x, y, color.Gray{uint8(r.Intn(30))})
		}
	}
	return img
}

// mkarchive creates an archive with n images of each glyph, with
// one sample directory per glyph
func mkarchive(t *testing.T, glyphs []string, n int) string {
	root := t.TempDir()
	i := 0
	for gi, g := range glyphs {
		dir := filepath.Join(root, "collection", string(rune('a'+gi)))
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, pathindex.LabelFile), []byte(g), 0644))
		for j := 0; j < n; j++ {
			f, err := os.Create(filepath.Join(dir, string(rune('a'+j))+".png"))
			require.NoError(t, err)
			require.NoError(t, png.Encode(f, charimg(i)))
			require.NoError(t, f.Close())
			i++
		}
	}
	return root
}

func mkindex(t *testing.T, root string, set charset.Set) pathindex.Index {
	idx, err := pathindex.Scan(root, set)
	require.NoError(t, err)
	return idx
}

func TestProgress(t *testing.T) {
	p := Progress{Glyph: "一", N: 1, Total: 80}
	assert.Equal(t, "Generating 一 - 0001/0080 (001.25%)", p.String())
}

func TestPermutations(t *testing.T) {
	clean := preproc.Canonical(charimg(1))
	p := dataset.DefaultPolicy()

	a := Permutations(clean, p, rand.New(rand.NewSource(5)))
	b := Permutations(clean, p, rand.New(rand.NewSource(5)))
	require.Len(t, a, p.GenerationFactor)
	assert.Same(t, clean, a[0], "first permutation should be the clean image")
	for i := range a {
		assert.Equal(t, a[i].Pix, b[i].Pix, "permutation %d should be deterministic", i)
		assert.Equal(t, clean.Bounds(), a[i].Bounds())
	}

	p.GenerationFactor = 1
	assert.Len(t, Permutations(clean, p, rand.New(rand.NewSource(5))), 1)
}

func TestRandint(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := randint(r, 2)
		assert.True(t, v >= -2 && v <= 2)
		seen[v] = true
	}
	assert.Len(t, seen, 5, "both ends should be reachable")
	assert.Equal(t, 0, randint(r, 0))
}

// TestBuildTwoGlyphs builds from one image of each of two glyphs,
// with two unperturbed samples per image and an even split.
func TestBuildTwoGlyphs(t *testing.T) {
	set := charset.Set{Name: "two", Glyphs: []string{"あ", "い"}}
	root := mkarchive(t, set.Glyphs, 1)
	policy := dataset.Policy{GenerationFactor: 2, MaxMovementForce: 0, MaxSkewForce: 0, TrainingSplit: 0.5, Seed: 1}

	d, err := Build(context.Background(), set, mkindex(t, root, set), policy, Options{})
	require.NoError(t, err)

	// samples 0 to 3 all fall in the first half of each run of 10
	assert.Equal(t, []int64{0, 0, 1, 1}, d.TrainLabels)
	assert.Empty(t, d.TestLabels)
	assert.Empty(t, d.TestImages)
	require.Len(t, d.TrainImages, 4)

	for i := 0; i < 2; i++ {
		clean := preproc.Canonical(charimg(i))
		again := preproc.Clean(preproc.Skew(preproc.Translate(clean, 0, 0, Fill), 0, Fill, preproc.SmoothMore))
		assert.Equal(t, preproc.Normalise(clean), d.TrainImages[i*2])
		assert.Equal(t, preproc.Normalise(again), d.TrainImages[i*2+1])
	}
}

func TestBuildSplit(t *testing.T) {
	set := charset.Set{Name: "split", Glyphs: []string{"一", "二"}}
	root := mkarchive(t, set.Glyphs, 10)
	policy := dataset.Policy{GenerationFactor: 5, MaxMovementForce: 0, MaxSkewForce: 0, TrainingSplit: 0.8, Seed: 1}

	d, err := Build(context.Background(), set, mkindex(t, root, set), policy, Options{Workers: 3})
	require.NoError(t, err)
	assert.Len(t, d.TrainImages, 80)
	assert.Len(t, d.TestImages, 20)
	assert.NoError(t, d.Validate(set.Len()))
	assert.Equal(t, []dataset.Count{{Label: 0, Train: 40, Test: 10}, {Label: 1, Train: 40, Test: 10}}, d.Counts(2))
}

func TestBuildWorkers(t *testing.T) {
	set := charset.Set{Name: "workers", Glyphs: []string{"一", "二", "三"}}
	root := mkarchive(t, set.Glyphs, 3)
	idx := mkindex(t, root, set)
	policy := dataset.DefaultPolicy()
	policy.Seed = 42

	var progress []Progress
	one, err := Build(context.Background(), set, idx, policy, Options{Workers: 1, Progress: func(p Progress) { progress = append(progress, p) }})
	require.NoError(t, err)
	many, err := Build(context.Background(), set, idx, policy, Options{Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, one, many, "dataset should not depend on the number of workers")
	assert.Equal(t, 3*3*policy.GenerationFactor, one.Len())
	assert.Equal(t, []Progress{{"一", 1, 3}, {"二", 2, 3}, {"三", 3, 3}}, progress)

	policy.Seed = 43
	other, err := Build(context.Background(), set, idx, policy, Options{Workers: 4})
	require.NoError(t, err)
	assert.NotEqual(t, one.TrainImages, other.TrainImages, "a different seed should perturb differently")
}

func TestBuildMissingGlyph(t *testing.T) {
	root := mkarchive(t, []string{"一"}, 1)
	set := charset.Set{Name: "missing", Glyphs: []string{"二", "一"}}

	d, err := Build(context.Background(), set, mkindex(t, root, set), dataset.DefaultPolicy(), Options{})
	require.NoError(t, err)
	for _, l := range append(d.TrainLabels, d.TestLabels...) {
		assert.Equal(t, int64(1), l)
	}
}

func TestBuildErrors(t *testing.T) {
	set := charset.Set{Name: "errors", Glyphs: []string{"一", "二"}}

	t.Run("noimages", func(t *testing.T) {
		root := mkarchive(t, []string{"三"}, 1)
		_, err := Build(context.Background(), set, mkindex(t, root, set), dataset.DefaultPolicy(), Options{})
		assert.True(t, errors.Is(err, ErrNoImages))
	})

	t.Run("badimage", func(t *testing.T) {
		root := mkarchive(t, set.Glyphs, 4)
		require.NoError(t, os.WriteFile(filepath.Join(root, "collection", "b", "c.png"), []byte("not an image"), 0644))
		_, err := Build(context.Background(), set, mkindex(t, root, set), dataset.DefaultPolicy(), Options{Workers: 2})
		assert.Error(t, err)
	})

	t.Run("vanished", func(t *testing.T) {
		root := mkarchive(t, set.Glyphs, 1)
		idx := mkindex(t, root, set)
		require.NoError(t, os.RemoveAll(filepath.Join(root, "collection", "a")))
		_, err := Build(context.Background(), set, idx, dataset.DefaultPolicy(), Options{})
		assert.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		root := mkarchive(t, set.Glyphs, 2)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Build(ctx, set, mkindex(t, root, set), dataset.DefaultPolicy(), Options{Workers: 2})
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("badpolicy", func(t *testing.T) {
		root := mkarchive(t, set.Glyphs, 1)
		p := dataset.DefaultPolicy()
		p.TrainingSplit = 0
		_, err := Build(context.Background(), set, mkindex(t, root, set), p, Options{})
		assert.Error(t, err)
	})
}
