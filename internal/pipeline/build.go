// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"fmt"
	"image"
	"log"
	"math/rand"
	"sync"

	"rescribe.xyz/charpipeline/charset"
	"rescribe.xyz/charpipeline/dataset"
	"rescribe.xyz/charpipeline/pathindex"
	"rescribe.xyz/charpipeline/preproc"
)

// Fill is the value of pixels exposed by moving or skewing an image.
const Fill = 255

type job struct {
	seq   int
	label int
	path  string
}

type result struct {
	seq     int
	samples []preproc.Sample
}

// imageSeed derives the seed for the random source of a single
// image, so that the perturbations of an image do not depend on
// which worker processes it or in what order.
func imageSeed(seed int64, seq int) int64 {
	h := uint64(seed) ^ (uint64(seq)+1)*0x9e3779b97f4a7c15
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return int64(h)
}

// randint returns a random integer between -max and max inclusive
func randint(r *rand.Rand, max int) int {
	return r.Intn(max*2+1) - max
}

// Permutations generates policy.GenerationFactor images from a
// clean one. The first is the clean image itself; each of the rest
// is moved and skewed by random amounts within the limits of the
// policy, then cleaned again.
func Permutations(clean *image.Gray, policy dataset.Policy, r *rand.Rand) []*image.Gray {
	perms := []*image.Gray{clean}
	for i := 1; i < policy.GenerationFactor; i++ {
		dx := randint(r, policy.MaxMovementForce)
		dy := randint(r, policy.MaxMovementForce)
		moved := preproc.Translate(clean, dx, dy, Fill)

		force := randint(r, policy.MaxSkewForce)
		skewed := preproc.Skew(moved, float64(force), Fill, preproc.SmoothMore)
		perms = append(perms, preproc.Clean(skewed))
	}
	return perms
}

// feed sends every job to the in channel, character by character,
// reporting progress as each character is started. It closes the
// channel once done, or as soon as the context is cancelled.
func feed(ctx context.Context, set charset.Set, jobs [][]job, in chan job, progress func(Progress)) {
	defer close(in)
	for label, js := range jobs {
		if progress != nil {
			progress(Progress{Glyph: set.Glyphs[label], N: label + 1, Total: set.Len()})
		}
		for _, j := range js {
			select {
			case <-ctx.Done():
				return
			case in <- j:
			}
		}
	}
}

// augment reads jobs from a channel, loading, cleaning and
// perturbing each image, and sends the normalised samples to the
// out channel. If an error occurs it is sent to the errc channel
// and the function returns early.
func augment(ctx context.Context, policy dataset.Policy, in chan job, out chan result, errc chan error, logger *log.Logger) {
	for j := range in {
		select {
		case <-ctx.Done():
			for range in {
			} // consume the rest of the receiving channel so it isn't blocked
			errc <- ctx.Err()
			return
		default:
		}

		logger.Println("Processing", j.path)
		img, err := preproc.Load(j.path)
		if err != nil {
			for range in {
			} // consume the rest of the receiving channel so it isn't blocked
			errc <- err
			return
		}

		r := rand.New(rand.NewSource(imageSeed(policy.Seed, j.seq)))
		perms := Permutations(preproc.Canonical(img), policy, r)

		res := result{seq: j.seq}
		for _, p := range perms {
			res.samples = append(res.samples, preproc.Normalise(p))
		}

		select {
		case <-ctx.Done():
			for range in {
			} // consume the rest of the receiving channel so it isn't blocked
			errc <- ctx.Err()
			return
		case out <- res:
		}
	}
}

// Build generates a dataset for a character set from the images
// listed in an index. Every source image yields policy.GenerationFactor
// samples, which are split between training and testing by their
// position in the overall sequence of samples. The result is the
// same whatever the number of workers.
func Build(ctx context.Context, set charset.Set, index pathindex.Index, policy dataset.Policy, opts Options) (dataset.Dataset, error) {
	var d dataset.Dataset

	err := set.Validate()
	if err != nil {
		return d, err
	}
	err = policy.Validate()
	if err != nil {
		return d, err
	}
	logger := opts.logger()

	jobs, njobs, err := jobsFor(set, index)
	if err != nil {
		return d, err
	}
	if njobs == 0 {
		return d, ErrNoImages
	}
	logger.Printf("Building %s dataset from %d images\n", set.Name, njobs)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := opts.workers()
	in := make(chan job)
	out := make(chan result)
	errc := make(chan error, workers)

	go feed(ctx, set, jobs, in, opts.Progress)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			augment(ctx, policy, in, out, errc, logger)
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([][]preproc.Sample, njobs)
	for done := false; !done; {
		select {
		case err := <-errc:
			cancel()
			for range out {
			} // consume the rest of the receiving channel so it isn't blocked
			return dataset.Dataset{}, err
		case r, ok := <-out:
			if !ok {
				done = true
				break
			}
			results[r.seq] = r.samples
		}
	}

	select {
	case err := <-errc:
		return dataset.Dataset{}, err
	default:
	}
	if ctx.Err() != nil {
		return dataset.Dataset{}, ctx.Err()
	}

	for _, js := range jobs {
		for _, j := range js {
			if len(results[j.seq]) != policy.GenerationFactor {
				return dataset.Dataset{}, fmt.Errorf("Missing samples for %s", j.path)
			}
			for k, s := range results[j.seq] {
				c := j.seq*policy.GenerationFactor + k
				d.Add(policy.Route(c), s, j.label)
			}
		}
	}

	return d, nil
}
