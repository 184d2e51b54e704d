// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sbinet/npyio"

	"rescribe.xyz/charpipeline/preproc"
)

// The files a dataset is stored as, in the NumPy format.
const (
	TrainImagesFile = "trainImgs.npy"
	TrainLabelsFile = "trainLabels.npy"
	TestImagesFile  = "testImgs.npy"
	TestLabelsFile  = "testLabels.npy"
)

// Files lists every file a dataset is stored as.
var Files = []string{TrainImagesFile, TrainLabelsFile, TestImagesFile, TestLabelsFile}

// Exists reports whether every file of a dataset is present in dir.
func Exists(dir string) bool {
	for _, f := range Files {
		_, err := os.Stat(filepath.Join(dir, f))
		if err != nil {
			return false
		}
	}
	return true
}

// writeAtomic writes val in NumPy format to path, via a temporary
// file in the same directory so that path is never left partially
// written.
func writeAtomic(path string, val interface{}) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("Error creating temporary file for %s: %v", path, err)
	}

	w := bufio.NewWriter(f)
	err = npyio.Write(w, val)
	if err == nil {
		err = w.Flush()
	}
	if err == nil {
		err = f.Close()
	} else {
		f.Close()
	}
	if err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("Error writing %s: %v", path, err)
	}

	err = os.Rename(f.Name(), path)
	if err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("Error saving %s: %v", path, err)
	}
	return nil
}

// Save writes a dataset to dir, creating it if necessary.
func Save(dir string, d Dataset) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("Error creating dataset directory %s: %v", dir, err)
	}

	for _, f := range []struct {
		name string
		val  interface{}
	}{
		{TrainImagesFile, d.TrainImages},
		{TrainLabelsFile, d.TrainLabels},
		{TestImagesFile, d.TestImages},
		{TestLabelsFile, d.TestLabels},
	} {
		err = writeAtomic(filepath.Join(dir, f.name), f.val)
		if err != nil {
			return err
		}
	}
	return nil
}

// openNpy reads the header of a NumPy file, checking that its data
// type is dtype and that exactly the data its shape describes
// follows.
func openNpy(path, dtype string, size int) (*npyio.Reader, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Error reading %s: %v", path, err)
	}
	br := bytes.NewReader(b)
	r, err := npyio.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("Error decoding %s: %v", path, err)
	}
	if r.Header.Descr.Type != dtype {
		return nil, fmt.Errorf("Error decoding %s: data type is %s, expected %s", path, r.Header.Descr.Type, dtype)
	}
	if r.Header.Descr.Fortran {
		return nil, fmt.Errorf("Error decoding %s: data is in Fortran order", path)
	}
	n := 1
	for _, v := range r.Header.Descr.Shape {
		n *= v
	}
	if br.Len() != n*size {
		return nil, fmt.Errorf("Error decoding %s: %d bytes of data for shape %v", path, br.Len(), r.Header.Descr.Shape)
	}
	return r, nil
}

// loadImages reads an array of samples, which must have the shape
// (n, SampleSize, SampleSize, 1), or (0,) if empty.
func loadImages(path string) ([]Sample, error) {
	r, err := openNpy(path, "<f4", 4)
	if err != nil {
		return nil, err
	}
	shape := r.Header.Descr.Shape
	if len(shape) == 1 && shape[0] == 0 {
		return nil, nil
	}
	if len(shape) != 4 || shape[1] != preproc.SampleSize || shape[2] != preproc.SampleSize || shape[3] != 1 {
		return nil, fmt.Errorf("Error decoding %s: unexpected shape %v", path, shape)
	}
	if shape[0] == 0 {
		return nil, nil
	}

	var flat []float32
	err = r.Read(&flat)
	if err != nil {
		return nil, fmt.Errorf("Error decoding %s: %v", path, err)
	}

	imgs := make([]Sample, shape[0])
	i := 0
	for n := range imgs {
		for y := 0; y < preproc.SampleSize; y++ {
			for x := 0; x < preproc.SampleSize; x++ {
				imgs[n][y][x][0] = flat[i]
				i++
			}
		}
	}
	return imgs, nil
}

// loadLabels reads a one dimensional array of labels.
func loadLabels(path string) ([]int64, error) {
	r, err := openNpy(path, "<i8", 8)
	if err != nil {
		return nil, err
	}
	shape := r.Header.Descr.Shape
	if len(shape) != 1 {
		return nil, fmt.Errorf("Error decoding %s: unexpected shape %v", path, shape)
	}
	if shape[0] == 0 {
		return nil, nil
	}

	var labels []int64
	err = r.Read(&labels)
	if err != nil {
		return nil, fmt.Errorf("Error decoding %s: %v", path, err)
	}
	return labels, nil
}

// Load reads a dataset from dir. Any missing or malformed file, or
// a mismatch between the number of images and labels, is an error.
func Load(dir string) (Dataset, error) {
	var d Dataset
	var err error

	d.TrainImages, err = loadImages(filepath.Join(dir, TrainImagesFile))
	if err != nil {
		return d, err
	}
	d.TrainLabels, err = loadLabels(filepath.Join(dir, TrainLabelsFile))
	if err != nil {
		return d, err
	}
	d.TestImages, err = loadImages(filepath.Join(dir, TestImagesFile))
	if err != nil {
		return d, err
	}
	d.TestLabels, err = loadLabels(filepath.Join(dir, TestLabelsFile))
	if err != nil {
		return d, err
	}

	if len(d.TrainImages) != len(d.TrainLabels) || len(d.TestImages) != len(d.TestLabels) {
		return d, fmt.Errorf("Error loading dataset %s: %d/%d training and %d/%d testing images/labels",
			dir, len(d.TrainImages), len(d.TrainLabels), len(d.TestImages), len(d.TestLabels))
	}
	return d, nil
}

// SaveSample writes a single sample as an array of shape
// (1, SampleSize, SampleSize, 1), ready for a classifier to predict.
func SaveSample(path string, s Sample) error {
	return writeAtomic(path, []Sample{s})
}
