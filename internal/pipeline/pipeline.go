// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// pipeline is a package used by the mkdataset command, which
// handles the core functionality of building a dataset, using
// channels heavily to coordinate jobs. Note that it is considered
// an "internal" package, not intended for external use, and no
// guarantee is made of the stability of any interfaces provided.
package pipeline

import (
	"errors"
	"fmt"
	"log"
)

// ErrNoImages is returned when there are no source images for any
// character of a set.
var ErrNoImages = errors.New("No images found for any character")

type Downloader interface {
	Download(bucket string, key string, fn string) error
	Log(v ...interface{})
	StorageId() string
}

type DownloadLister interface {
	Download(bucket string, key string, fn string) error
	ListObjects(bucket string, prefix string) ([]string, error)
	Log(v ...interface{})
	StorageId() string
}

type Uploader interface {
	Log(v ...interface{})
	Upload(bucket string, key string, path string) error
	StorageId() string
}

// Store can hold copies of built datasets, so they can be fetched
// rather than built again.
type Store interface {
	Download(bucket string, key string, fn string) error
	ListObjects(bucket string, prefix string) ([]string, error)
	Log(v ...interface{})
	StorageId() string
	Upload(bucket string, key string, path string) error
}

// Progress describes how far through its character set a build is.
type Progress struct {
	Glyph string
	N     int
	Total int
}

func (p Progress) String() string {
	return fmt.Sprintf("Generating %s - %04d/%04d (%06.2f%%)", p.Glyph, p.N, p.Total, float64(p.N)/float64(p.Total)*100)
}

// Options controls how a dataset is built.
type Options struct {
	// Workers is the number of images processed at once. Values
	// below 1 are treated as 1.
	Workers int
	// Logger receives details of the build. If nil, nothing is logged.
	Logger *log.Logger
	// Progress, if set, is called as each character is started.
	Progress func(Progress)
	// Store, if set, is checked for a copy of a dataset before
	// building it, and is sent a copy of any dataset built.
	Store Store
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		var n NullWriter
		return log.New(n, "", 0)
	}
	return o.Logger
}

func (o Options) workers() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}
