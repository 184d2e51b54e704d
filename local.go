// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package charpipeline

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LocalConn is a simple implementation of the store interface that
// doesn't rely on any "cloud" services, instead keeping everything
// in a directory on the local machine, with a subdirectory for each
// bucket. This is particularly useful for testing, and for sharing
// datasets over a network filesystem.
type LocalConn struct {
	// these should be set before running Init(), or left to defaults
	TempDir string
	Logger  *log.Logger
}

// Init creates the storage directory if necessary
func (a *LocalConn) Init() error {
	var err error
	if a.TempDir == "" {
		a.TempDir = filepath.Join(os.TempDir(), "charpipeline")
	}
	err = os.MkdirAll(a.TempDir, 0700)
	if err != nil {
		return fmt.Errorf("Error creating storage directory: %v", err)
	}

	err = os.Mkdir(filepath.Join(a.TempDir, localStorageId), 0700)
	if err != nil && !os.IsExist(err) {
		return fmt.Errorf("Error creating storage directory: %v", err)
	}

	if a.Logger == nil {
		a.Logger = log.New(os.Stdout, "", 0)
	}

	return nil
}

func (a *LocalConn) StorageId() string {
	return localStorageId
}

// ListObjects lists the keys in a bucket which start with prefix
func (a *LocalConn) ListObjects(bucket string, prefix string) ([]string, error) {
	var names []string
	dir := filepath.Join(a.TempDir, bucket)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			names = append(names, key)
		}
		return nil
	})
	sort.Strings(names)
	return names, err
}

// ListObjectPrefixes lists the top level directories of a bucket,
// each with a trailing slash, matching the common prefixes S3 gives
func (a *LocalConn) ListObjectPrefixes(bucket string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(a.TempDir, bucket))
	if err != nil {
		return nil, err
	}
	var prefixes []string
	for _, e := range entries {
		if e.IsDir() {
			prefixes = append(prefixes, e.Name()+"/")
		}
	}
	return prefixes, nil
}

// CreateBucket creates the directory for a bucket, if it doesn't
// already exist
func (a *LocalConn) CreateBucket(name string) error {
	err := os.MkdirAll(filepath.Join(a.TempDir, name), 0700)
	if err != nil {
		return fmt.Errorf("Error creating bucket %s: %v", name, err)
	}
	return nil
}

// DeleteObjects removes a list of keys from a bucket
func (a *LocalConn) DeleteObjects(bucket string, keys []string) error {
	for _, k := range keys {
		err := os.Remove(filepath.Join(a.TempDir, bucket, filepath.FromSlash(k)))
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// Download just copies the file from TempDir/bucket/key to path
func (a *LocalConn) Download(bucket string, key string, path string) error {
	fin, err := os.Open(filepath.Join(a.TempDir, bucket, filepath.FromSlash(key)))
	if err != nil {
		return err
	}
	defer fin.Close()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, fin)
	if err != nil {
		_ = os.Remove(path)
	}
	return err
}

// Upload just copies the file from path to TempDir/bucket/key
func (a *LocalConn) Upload(bucket string, key string, path string) error {
	dest := filepath.Join(a.TempDir, bucket, filepath.FromSlash(key))
	err := os.MkdirAll(filepath.Dir(dest), 0700)
	if err != nil {
		return fmt.Errorf("Error creating storage directory: %v", err)
	}

	fin, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fin.Close()

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, fin)
	return err
}

// Log records an item in the with the Logger. Arguments are handled
// as with fmt.Println.
func (a *LocalConn) Log(v ...interface{}) {
	a.Logger.Println(v...)
}
