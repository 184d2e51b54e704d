// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package dataset holds the normalised samples and labels used to
// train and test a character classifier, and stores them as NumPy
// arrays.
package dataset

import (
	"fmt"

	"rescribe.xyz/charpipeline/preproc"
)

// Sample is a single normalised character image.
type Sample = preproc.Sample

// Dataset holds the training and testing samples along with their
// labels. Each label is the position of the sample's character in
// the character set the dataset was built from.
type Dataset struct {
	TrainImages []Sample
	TrainLabels []int64
	TestImages  []Sample
	TestLabels  []int64
}

// Add appends a sample to a split.
func (d *Dataset) Add(s Split, img Sample, label int) {
	if s == Train {
		d.TrainImages = append(d.TrainImages, img)
		d.TrainLabels = append(d.TrainLabels, int64(label))
		return
	}
	d.TestImages = append(d.TestImages, img)
	d.TestLabels = append(d.TestLabels, int64(label))
}

// Len returns the total number of samples.
func (d Dataset) Len() int {
	return len(d.TrainImages) + len(d.TestImages)
}

// Validate checks that every sample has a label, and that every
// label is below nlabels.
func (d Dataset) Validate(nlabels int) error {
	if len(d.TrainImages) != len(d.TrainLabels) {
		return fmt.Errorf("%d training images but %d labels", len(d.TrainImages), len(d.TrainLabels))
	}
	if len(d.TestImages) != len(d.TestLabels) {
		return fmt.Errorf("%d testing images but %d labels", len(d.TestImages), len(d.TestLabels))
	}
	for _, labels := range [][]int64{d.TrainLabels, d.TestLabels} {
		for i, l := range labels {
			if l < 0 || l >= int64(nlabels) {
				return fmt.Errorf("Label %d at %d is out of range for %d characters", l, i, nlabels)
			}
		}
	}
	return nil
}

// Count is the number of samples of a label in each split.
type Count struct {
	Label int
	Train int
	Test  int
}

// Counts returns the number of samples of each label, for labels
// below nlabels.
func (d Dataset) Counts(nlabels int) []Count {
	counts := make([]Count, nlabels)
	for i := range counts {
		counts[i].Label = i
	}
	for _, l := range d.TrainLabels {
		if l >= 0 && l < int64(nlabels) {
			counts[l].Train++
		}
	}
	for _, l := range d.TestLabels {
		if l >= 0 && l < int64(nlabels) {
			counts[l].Test++
		}
	}
	return counts
}

// Samples returns up to n samples of a label, training samples first.
func (d Dataset) Samples(label int, n int) []Sample {
	var s []Sample
	for _, split := range []struct {
		imgs   []Sample
		labels []int64
	}{{d.TrainImages, d.TrainLabels}, {d.TestImages, d.TestLabels}} {
		for i, l := range split.labels {
			if len(s) >= n {
				return s
			}
			if l == int64(label) {
				s = append(s, split.imgs[i])
			}
		}
	}
	return s
}
