// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"rescribe.xyz/charpipeline/charset"
	"rescribe.xyz/charpipeline/dataset"
	"rescribe.xyz/charpipeline/pathindex"
)

// LockFile is held in a dataset directory while the dataset is
// being loaded or built, so that two builds never race.
const LockFile = ".lock"

// lockRetry is how often a held lock is retried
const lockRetry = 500 * time.Millisecond

// DatasetName identifies the dataset built for a character set with
// a policy, both in the cache and in a store.
func DatasetName(set charset.Set, policy dataset.Policy) string {
	return set.CacheKey() + "-" + policy.Key()
}

// DatasetDir returns the directory a dataset for a character set and
// policy is cached in.
func DatasetDir(cacheDir string, set charset.Set, policy dataset.Policy) string {
	return filepath.Join(cacheDir, "datasets", DatasetName(set, policy))
}

// loadChecked loads the dataset in dir, checking it was built with
// policy and that its labels fit the set.
func loadChecked(dir string, set charset.Set, policy dataset.Policy) (dataset.Dataset, error) {
	err := dataset.CheckPolicy(dir, policy)
	if err != nil {
		return dataset.Dataset{}, err
	}
	d, err := dataset.Load(dir)
	if err != nil {
		return d, err
	}
	err = d.Validate(set.Len())
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("Dataset %s is invalid for %s: %v", dir, set.Name, err)
	}
	return d, nil
}

// download reads file names from a channel and downloads them into
// dir, putting each successfully downloaded file name into the
// process channel. If an error occurs it is sent to the errc channel
// and the function returns early.
func download(ctx context.Context, dl chan string, process chan string, conn Downloader, dir string, errc chan error, logger *log.Logger) {
	for key := range dl {
		select {
		case <-ctx.Done():
			for range dl {
			} // consume the rest of the receiving channel so it isn't blocked
			errc <- ctx.Err()
			close(process)
			return
		default:
		}
		fn := filepath.Join(dir, filepath.Base(key))
		logger.Println("Downloading", key)
		err := conn.Download(conn.StorageId(), key, fn)
		if err != nil {
			for range dl {
			} // consume the rest of the receiving channel so it isn't blocked
			errc <- err
			close(process)
			return
		}
		process <- fn
	}
	close(process)
}

// up reads file names from a channel and uploads them with the
// name/ prefix. The done channel is then written to to signal
// completion. If an error occurs it is sent to the errc channel
// and the function returns early.
func up(ctx context.Context, c chan string, done chan bool, conn Uploader, name string, errc chan error, logger *log.Logger) {
	for path := range c {
		select {
		case <-ctx.Done():
			for range c {
			} // consume the rest of the receiving channel so it isn't blocked
			errc <- ctx.Err()
			return
		default:
		}
		key := name + "/" + filepath.Base(path)
		logger.Println("Uploading", key)
		err := conn.Upload(conn.StorageId(), key, path)
		if err != nil {
			for range c {
			} // consume the rest of the receiving channel so it isn't blocked
			errc <- err
			return
		}
	}

	done <- true
}

// Fetch downloads a dataset saved under the name/ prefix in a store
// into dir, if every file of the dataset is present. It reports
// whether the dataset was found. Files are only moved into dir once
// all have been downloaded.
func Fetch(ctx context.Context, dir string, name string, conn DownloadLister, logger *log.Logger) (bool, error) {
	objs, err := conn.ListObjects(conn.StorageId(), name+"/")
	if err != nil {
		return false, fmt.Errorf("Error listing %s in store: %v", name, err)
	}
	present := make(map[string]bool)
	for _, o := range objs {
		present[o] = true
	}
	for _, f := range dataset.Files {
		if !present[name+"/"+f] {
			return false, nil
		}
	}

	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return false, fmt.Errorf("Error creating %s: %v", dir, err)
	}
	tmp, err := os.MkdirTemp(dir, ".fetch-")
	if err != nil {
		return false, fmt.Errorf("Error creating temporary directory in %s: %v", dir, err)
	}
	defer os.RemoveAll(tmp)

	dl := make(chan string)
	process := make(chan string)
	errc := make(chan error, 1)

	go download(ctx, dl, process, conn, tmp, errc, logger)
	go func() {
		for _, f := range dataset.Files {
			dl <- name + "/" + f
		}
		close(dl)
	}()

	var got []string
	for fn := range process {
		got = append(got, fn)
	}
	select {
	case err = <-errc:
		return false, fmt.Errorf("Error downloading %s: %v", name, err)
	default:
	}

	for _, fn := range got {
		err = os.Rename(fn, filepath.Join(dir, filepath.Base(fn)))
		if err != nil {
			return false, fmt.Errorf("Error moving %s into %s: %v", fn, dir, err)
		}
	}
	return true, nil
}

// Send uploads every file of the dataset in dir to a store, under
// the name/ prefix.
func Send(ctx context.Context, dir string, name string, conn Uploader, logger *log.Logger) error {
	c := make(chan string)
	done := make(chan bool)
	errc := make(chan error, 1)

	go up(ctx, c, done, conn, name, errc, logger)

	for _, f := range dataset.Files {
		select {
		case c <- filepath.Join(dir, f):
		case err := <-errc:
			return fmt.Errorf("Error uploading %s: %v", name, err)
		}
	}
	close(c)

	select {
	case <-done:
		return nil
	case err := <-errc:
		return fmt.Errorf("Error uploading %s: %v", name, err)
	}
}

// LoadOrBuild returns the dataset cached in dir, if it exists, or
// else fetches it from the store in opts, or else builds it, saves
// it to dir and sends it to the store. A cached or fetched dataset
// must have been built with policy and have labels which fit set.
// resolve is only called if the dataset needs to be built. The
// returned bool reports whether the dataset was built.
func LoadOrBuild(ctx context.Context, dir string, set charset.Set, resolve func() (pathindex.Index, error), policy dataset.Policy, opts Options) (dataset.Dataset, bool, error) {
	var d dataset.Dataset
	logger := opts.logger()

	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return d, false, fmt.Errorf("Error creating dataset directory %s: %v", dir, err)
	}

	lock := flock.New(filepath.Join(dir, LockFile))
	locked, err := lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return d, false, fmt.Errorf("Error locking %s: %v", dir, err)
	}
	if !locked {
		return d, false, fmt.Errorf("Could not lock %s", dir)
	}
	defer lock.Unlock()

	if dataset.Exists(dir) {
		logger.Println("Loading dataset from", dir)
		d, err = loadChecked(dir, set, policy)
		return d, false, err
	}

	name := DatasetName(set, policy)
	if opts.Store != nil {
		err = dataset.SavePolicy(dir, policy)
		if err != nil {
			return d, false, err
		}
		found, err := Fetch(ctx, dir, name, opts.Store, logger)
		if err != nil {
			return d, false, err
		}
		if found {
			logger.Println("Fetched dataset into", dir)
			d, err = loadChecked(dir, set, policy)
			return d, false, err
		}
	}

	index, err := resolve()
	if err != nil {
		return d, false, err
	}

	d, err = Build(ctx, set, index, policy, opts)
	if err != nil {
		return d, false, err
	}
	err = d.Validate(set.Len())
	if err != nil {
		return d, false, fmt.Errorf("Built dataset is invalid: %v", err)
	}

	logger.Println("Saving dataset to", dir)
	err = dataset.SavePolicy(dir, policy)
	if err != nil {
		return d, true, err
	}
	err = dataset.Save(dir, d)
	if err != nil {
		return d, true, err
	}

	if opts.Store != nil {
		err = Send(ctx, dir, name, opts.Store, logger)
		if err != nil {
			return d, true, err
		}
	}

	return d, true, nil
}
