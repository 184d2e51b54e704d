// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// Package charset defines the ordered sets of characters which
// datasets are built for. The position of a character in its set
// is the label it is given in a dataset.
package charset

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Set is a named, ordered list of distinct glyphs. Meanings, if
// set, holds a short description of each glyph.
type Set struct {
	Name     string
	Glyphs   []string
	Meanings []string
}

// Builtin lists the sets which can be referred to by name.
var Builtin = []Set{Hiragana, Katakana, N5Kanji, N4Kanji, N3Kanji, N2Kanji, N1Kanji}

// Named returns the built in set with the given name.
func Named(name string) (Set, error) {
	for _, s := range Builtin {
		if s.Name == strings.ToLower(name) {
			return s, nil
		}
	}
	var names []string
	for _, s := range Builtin {
		names = append(names, s.Name)
	}
	return Set{}, fmt.Errorf("Unknown character set %s, expected one of %s", name, strings.Join(names, ", "))
}

// Load reads a custom set from a file with one glyph per line. The
// set is named after the file, without its extension. Blank lines
// are ignored. Glyphs are put in Unicode normal form C, so that for
// example a kana written with a separate combining dakuten matches
// its precomposed form.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("Error opening character set %s: %v", path, err)
	}
	defer f.Close()

	base := filepath.Base(path)
	s := Set{Name: strings.TrimSuffix(base, filepath.Ext(base))}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		g := norm.NFC.String(strings.TrimSpace(scanner.Text()))
		if g == "" {
			continue
		}
		s.Glyphs = append(s.Glyphs, g)
	}
	if err := scanner.Err(); err != nil {
		return Set{}, fmt.Errorf("Error reading character set %s: %v", path, err)
	}
	return s, s.Validate()
}

// Find returns a built in set by name, or if there is no such set,
// loads one from the file at that path.
func Find(nameOrPath string) (Set, error) {
	s, err := Named(nameOrPath)
	if err == nil {
		return s, nil
	}
	if _, statErr := os.Stat(nameOrPath); statErr != nil {
		return Set{}, err
	}
	return Load(nameOrPath)
}

// Validate checks that a set is usable for building a dataset.
func (s Set) Validate() error {
	if s.Name == "" {
		return errors.New("Character set has no name")
	}
	if len(s.Glyphs) == 0 {
		return fmt.Errorf("Character set %s is empty", s.Name)
	}
	if s.Meanings != nil && len(s.Meanings) != len(s.Glyphs) {
		return fmt.Errorf("Character set %s has %d glyphs but %d meanings", s.Name, len(s.Glyphs), len(s.Meanings))
	}
	seen := make(map[string]int)
	for i, g := range s.Glyphs {
		if g == "" {
			return fmt.Errorf("Character set %s has an empty glyph at %d", s.Name, i)
		}
		if j, ok := seen[g]; ok {
			return fmt.Errorf("Character set %s has %s at both %d and %d", s.Name, g, j, i)
		}
		seen[g] = i
	}
	return nil
}

// Label returns the label of a glyph, or -1 if it is not in the set.
func (s Set) Label(glyph string) int {
	for i, g := range s.Glyphs {
		if g == glyph {
			return i
		}
	}
	return -1
}

// Len returns the number of glyphs in the set.
func (s Set) Len() int {
	return len(s.Glyphs)
}

// Caption describes a label, including its meaning if known.
func (s Set) Caption(label int) string {
	if label < 0 || label >= len(s.Glyphs) {
		return fmt.Sprintf("%d", label)
	}
	if s.Meanings == nil {
		return fmt.Sprintf("%d %s", label, s.Glyphs[label])
	}
	return fmt.Sprintf("%d %s (%s)", label, s.Glyphs[label], s.Meanings[label])
}

// CacheKey returns a name for the set which is safe to use in file
// names and object keys. It includes a hash of the glyphs, so sets
// with the same name but different contents never share a key.
func (s Set) CacheKey() string {
	var b strings.Builder
	for _, r := range strings.ToLower(s.Name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	h := fnv.New32a()
	for _, g := range s.Glyphs {
		h.Write([]byte(g))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%s-%08x", b.String(), h.Sum32())
}
