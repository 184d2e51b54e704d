// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package charset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	sizes := map[string]int{
		"hiragana": 46,
		"katakana": 46,
		"n5":       80,
		"n4":       167,
	}
	keys := make(map[string]bool)
	for _, s := range Builtin {
		t.Run(s.Name, func(t *testing.T) {
			assert.NoError(t, s.Validate())
			if n, ok := sizes[s.Name]; ok {
				assert.Equal(t, n, s.Len())
			}
			assert.False(t, keys[s.CacheKey()], "cache key should be unique")
			keys[s.CacheKey()] = true
		})
	}
}

func TestNamed(t *testing.T) {
	s, err := Named("N5")
	require.NoError(t, err)
	assert.Equal(t, "一", s.Glyphs[0])
	assert.Equal(t, "0 一 (One)", s.Caption(0))
	assert.Equal(t, 0, s.Label("一"))
	assert.Equal(t, -1, s.Label("x"))

	_, err = Named("nonexistent")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		set  Set
		ok   bool
	}{
		{"good", Set{Name: "ab", Glyphs: []string{"a", "b"}}, true},
		{"noname", Set{Glyphs: []string{"a"}}, false},
		{"empty", Set{Name: "e"}, false},
		{"duplicate", Set{Name: "d", Glyphs: []string{"a", "b", "a"}}, false},
		{"emptyglyph", Set{Name: "g", Glyphs: []string{"a", ""}}, false},
		{"meanings", Set{Name: "m", Glyphs: []string{"a", "b"}, Meanings: []string{"A"}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.set.Validate()
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCacheKey(t *testing.T) {
	a := Set{Name: "My Set/1", Glyphs: []string{"a", "b"}}
	b := Set{Name: "My Set/1", Glyphs: []string{"ab"}}
	assert.Regexp(t, `^my_set_1-[0-9a-f]{8}$`, a.CacheKey())
	assert.NotEqual(t, a.CacheKey(), b.CacheKey())
	assert.Equal(t, a.CacheKey(), Set{Name: "my set 1", Glyphs: []string{"a", "b"}}.CacheKey())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.txt")
	require.NoError(t, os.WriteFile(path, []byte("あ\n\nい\nう\n"), 0644))

	s, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", s.Name)
	assert.Equal(t, []string{"あ", "い", "う"}, s.Glyphs)

	dup := filepath.Join(dir, "dup.txt")
	require.NoError(t, os.WriteFile(dup, []byte("あ\nあ\n"), 0644))
	_, err = Load(dup)
	assert.Error(t, err)

	_, err = Find(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestLoadDecomposed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kana.txt")
	// か followed by a combining dakuten
	require.NoError(t, os.WriteFile(path, []byte("\u304b\u3099\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"\u304c"}, s.Glyphs)
	assert.Equal(t, 0, s.Label("\u304c"))
}
