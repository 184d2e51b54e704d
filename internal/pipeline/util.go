// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"fmt"

	"rescribe.xyz/charpipeline/charset"
	"rescribe.xyz/charpipeline/pathindex"
	"rescribe.xyz/charpipeline/preproc"
)

// null writer to enable non-verbose logging to be discarded
type NullWriter bool

func (w NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// CheckImages checks that every image listed for every character of
// a set can be decoded, returning the number of images found.
func CheckImages(ctx context.Context, set charset.Set, index pathindex.Index) (int, error) {
	n := 0
	for _, g := range set.Glyphs {
		paths, err := index.Images(g)
		if err != nil {
			return n, err
		}
		for _, path := range paths {
			select {
			case <-ctx.Done():
				return n, ctx.Err()
			default:
			}
			_, err = preproc.Load(path)
			if err != nil {
				return n, err
			}
			n++
		}
	}

	if n == 0 {
		return 0, ErrNoImages
	}

	return n, nil
}

// jobsFor lists every image of every character of a set, in order
func jobsFor(set charset.Set, index pathindex.Index) ([][]job, int, error) {
	bylabel := make([][]job, set.Len())
	seq := 0
	for label, g := range set.Glyphs {
		paths, err := index.Images(g)
		if err != nil {
			return nil, 0, fmt.Errorf("Error listing images for %s: %v", g, err)
		}
		for _, p := range paths {
			bylabel[label] = append(bylabel[label], job{seq: seq, label: label, path: p})
			seq++
		}
	}
	return bylabel, seq, nil
}
