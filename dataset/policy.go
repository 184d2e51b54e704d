// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// PolicyFile records the policy a dataset was built with, alongside
// its arrays.
const PolicyFile = "policy.toml"

// Policy controls how many perturbed samples are generated from each
// source image, how strongly they are perturbed, and how they are
// split between training and testing.
type Policy struct {
	// GenerationFactor is the number of samples made from each
	// source image, including the unperturbed one.
	GenerationFactor int `toml:"generation_factor"`
	// MaxMovementForce is the largest shift, in pixels, in either
	// direction along either axis.
	MaxMovementForce int `toml:"max_movement_force"`
	// MaxSkewForce is the largest skew intensity in either direction.
	MaxSkewForce int `toml:"max_skew_force"`
	// TrainingSplit is the proportion of samples used for training.
	TrainingSplit float64 `toml:"training_split"`
	// Seed seeds the random perturbations.
	Seed int64 `toml:"seed"`
}

// DefaultPolicy returns the policy datasets are normally built with.
func DefaultPolicy() Policy {
	return Policy{
		GenerationFactor: 6,
		MaxMovementForce: 5,
		MaxSkewForce:     5,
		TrainingSplit:    0.8,
		Seed:             1,
	}
}

// Validate checks that a policy is within range.
func (p Policy) Validate() error {
	if p.GenerationFactor < 1 {
		return fmt.Errorf("Generation factor must be at least 1, not %d", p.GenerationFactor)
	}
	if p.MaxMovementForce < 0 {
		return fmt.Errorf("Max movement force must not be negative, not %d", p.MaxMovementForce)
	}
	if p.MaxSkewForce < 0 {
		return fmt.Errorf("Max skew force must not be negative, not %d", p.MaxSkewForce)
	}
	if p.TrainingSplit <= 0 || p.TrainingSplit >= 1 {
		return fmt.Errorf("Training split must be between 0 and 1, not %g", p.TrainingSplit)
	}
	return nil
}

// Split is one of the two parts of a dataset.
type Split int

const (
	Train Split = iota
	Test
)

func (s Split) String() string {
	if s == Train {
		return "train"
	}
	return "test"
}

// Route decides which split the sample with interleave index c
// belongs to. The index counts every sample generated for a
// dataset in order, so each run of 10 consecutive samples is split
// the same way.
func (p Policy) Route(c int) Split {
	if float64(c%10) < p.TrainingSplit*10 {
		return Train
	}
	return Test
}

// Key returns a short hash identifying the policy, so that datasets
// built with different policies are cached separately.
func (p Policy) Key() string {
	h := fnv.New32a()
	fmt.Fprintf(h, "%d/%d/%d/%g/%d", p.GenerationFactor, p.MaxMovementForce, p.MaxSkewForce, p.TrainingSplit, p.Seed)
	return fmt.Sprintf("%08x", h.Sum32())
}

// SavePolicy records the policy a dataset in dir was built with.
func SavePolicy(dir string, p Policy) error {
	var buf bytes.Buffer
	err := toml.NewEncoder(&buf).Encode(p)
	if err != nil {
		return fmt.Errorf("Error encoding policy: %v", err)
	}
	err = os.WriteFile(filepath.Join(dir, PolicyFile), buf.Bytes(), 0644)
	if err != nil {
		return fmt.Errorf("Error saving policy to %s: %v", dir, err)
	}
	return nil
}

// CheckPolicy returns an error unless the dataset in dir was built
// with policy p.
func CheckPolicy(dir string, p Policy) error {
	path := filepath.Join(dir, PolicyFile)
	var recorded Policy
	_, err := toml.DecodeFile(path, &recorded)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("No policy recorded for dataset %s", dir)
	}
	if err != nil {
		return fmt.Errorf("Error reading policy of dataset %s: %v", dir, err)
	}
	if recorded != p {
		return fmt.Errorf("Dataset %s was built with a different policy (%+v, not %+v)", dir, recorded, p)
	}
	return nil
}
