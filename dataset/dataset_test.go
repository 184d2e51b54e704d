// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	d := testDataset(6, 3)
	assert.NoError(t, d.Validate(3))
	assert.Error(t, d.Validate(2), "label 2 should be out of range")

	d.TestLabels = d.TestLabels[1:]
	assert.Error(t, d.Validate(3))

	d = testDataset(1, 0)
	d.TrainLabels[0] = -1
	assert.Error(t, d.Validate(3))
}

func TestCounts(t *testing.T) {
	d := testDataset(7, 2)
	assert.Equal(t, []Count{
		{Label: 0, Train: 3, Test: 1},
		{Label: 1, Train: 2, Test: 1},
		{Label: 2, Train: 2, Test: 0},
	}, d.Counts(3))
	assert.Equal(t, 9, d.Len())
}

func TestSamples(t *testing.T) {
	d := testDataset(7, 2)
	assert.Len(t, d.Samples(0, 10), 4)
	assert.Len(t, d.Samples(0, 2), 2)
	assert.Equal(t, d.TrainImages[1], d.Samples(1, 1)[0])
	assert.Equal(t, d.TestImages[0], d.Samples(0, 4)[3])
	assert.Empty(t, d.Samples(5, 3))
}
