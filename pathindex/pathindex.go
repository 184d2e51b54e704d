// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package pathindex finds which directories of a scanned image
// archive hold samples of which characters, and caches the result.
//
// An archive is laid out as root/collection/sample/, where each
// sample directory contains a label file naming the character its
// images show.
package pathindex

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"rescribe.xyz/charpipeline/charset"
)

// LabelFile is the name of the file in each sample directory which
// contains the character it represents.
const LabelFile = ".char.txt"

// Index maps each character to the directories holding its samples.
// Characters not found in the archive have no entry.
type Index map[string][]string

// CachePath returns where the index for a character set is cached.
func CachePath(cacheDir string, set charset.Set) string {
	return filepath.Join(cacheDir, "paths", set.CacheKey()+".path")
}

// Resolve returns the index for a character set, loading it from
// the cache if present, otherwise scanning the archive and saving
// the result to the cache.
func Resolve(root, cacheDir string, set charset.Set, logger *log.Logger) (Index, error) {
	path := CachePath(cacheDir, set)
	_, err := os.Stat(path)
	if err == nil {
		logger.Println("Loading path index from", path)
		return Load(path)
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("Error checking path index %s: %v", path, err)
	}

	logger.Println("Scanning", root, "for", set.Name)
	idx, err := Scan(root, set)
	if err != nil {
		return nil, err
	}
	logger.Printf("Found %d of %d characters\n", len(idx), set.Len())

	err = Save(path, idx)
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// readLabel returns the first line of a label file, without its
// line ending. No other whitespace is removed.
func readLabel(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	if line == "" {
		return "", fmt.Errorf("label file is empty")
	}
	return norm.NFC.String(line), nil
}

// subdirs returns the names, in order, of the directories in dir
func subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs, nil
}

// Scan walks an archive, matching the label of every sample
// directory against the glyphs of a set.
func Scan(root string, set charset.Set) (Index, error) {
	want := make(map[string]bool)
	for _, g := range set.Glyphs {
		want[g] = true
	}

	collections, err := subdirs(root)
	if err != nil {
		return nil, fmt.Errorf("Error listing archive %s: %v", root, err)
	}

	idx := make(Index)
	for _, c := range collections {
		cdir := filepath.Join(root, c)
		samples, err := subdirs(cdir)
		if err != nil {
			return nil, fmt.Errorf("Error listing collection %s: %v", cdir, err)
		}
		for _, s := range samples {
			sdir := filepath.Join(cdir, s)
			label, err := readLabel(filepath.Join(sdir, LabelFile))
			if err != nil {
				return nil, fmt.Errorf("Error reading label for %s: %v", sdir, err)
			}
			if want[label] {
				idx[label] = append(idx[label], sdir)
			}
		}
	}

	return idx, nil
}

// Load reads an index from a cache file.
func Load(path string) (Index, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Error reading path index %s: %v", path, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, fmt.Errorf("Error decoding path index %s: file is empty", path)
	}
	idx := make(Index)
	err = yaml.Unmarshal(b, &idx)
	if err != nil {
		return nil, fmt.Errorf("Error decoding path index %s: %v", path, err)
	}
	return idx, nil
}

// Save writes an index to a cache file, replacing any existing one
// only once it has been completely written.
func Save(path string, idx Index) error {
	b, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("Error encoding path index: %v", err)
	}

	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return fmt.Errorf("Error creating directory for %s: %v", path, err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("Error creating temporary file for %s: %v", path, err)
	}
	_, err = f.Write(b)
	if err == nil {
		err = f.Close()
	} else {
		f.Close()
	}
	if err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("Error writing path index %s: %v", path, err)
	}

	err = os.Rename(f.Name(), path)
	if err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("Error saving path index %s: %v", path, err)
	}
	return nil
}

// Images returns the sorted paths of every image for a character,
// skipping the label file and any other hidden files.
func (idx Index) Images(glyph string) ([]string, error) {
	var paths []string
	for _, dir := range idx[glyph] {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("Error listing %s: %v", dir, err)
		}
		var names []string
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			names = append(names, e.Name())
		}
		for _, n := range names {
			paths = append(paths, filepath.Join(dir, n))
		}
	}
	return paths, nil
}
