// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pathindex

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rescribe.xyz/charpipeline/charset"
)

var testSet = charset.Set{Name: "test", Glyphs: []string{"一", "二", "三"}}

// mkarchive creates an archive from a map of collection/sample
// paths to label file contents
func mkarchive(t *testing.T, samples map[string]string) string {
	root := t.TempDir()
	for dir, label := range samples {
		d := filepath.Join(root, dir)
		require.NoError(t, os.MkdirAll(d, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(d, LabelFile), []byte(label), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(d, "0.png"), []byte{}, 0644))
	}
	return root
}

func TestScan(t *testing.T) {
	root := mkarchive(t, map[string]string{
		"b/s1": "一\n",
		"a/s2": "一",
		"a/s1": "二",
		"a/s3": "四",
		"b/s2": " 二",
	})

	idx, err := Scan(root, testSet)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "a", "s2"), filepath.Join(root, "b", "s1")}, idx["一"])
	assert.Equal(t, []string{filepath.Join(root, "a", "s1")}, idx["二"], "label match should be whitespace sensitive")
	_, ok := idx["三"]
	assert.False(t, ok, "absent character should have no entry")
	assert.Len(t, idx, 2)
}

func TestScanErrors(t *testing.T) {
	cases := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{"noarchive", func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing") }},
		{"emptylabel", func(t *testing.T) string { return mkarchive(t, map[string]string{"a/s1": "\n"}) }},
		{"nolabel", func(t *testing.T) string {
			root := mkarchive(t, map[string]string{"a/s1": "一"})
			require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "s2"), 0755))
			return root
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Scan(c.setup(t), testSet)
			assert.Error(t, err)
		})
	}
}

func TestResolve(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	root := mkarchive(t, map[string]string{"a/s1": "一", "a/s2": "三"})
	cache := t.TempDir()

	idx, err := Resolve(root, cache, testSet, logger)
	require.NoError(t, err)
	assert.FileExists(t, CachePath(cache, testSet))

	// later changes to the archive are not seen while the cache exists
	require.NoError(t, os.RemoveAll(filepath.Join(root, "a", "s2")))
	cached, err := Resolve(root, cache, testSet, logger)
	require.NoError(t, err)
	assert.Equal(t, idx, cached)

	other := charset.Set{Name: "test", Glyphs: []string{"三"}}
	fresh, err := Resolve(root, cache, other, logger)
	require.NoError(t, err)
	assert.Empty(t, fresh, "a different set should not share the cache")

	require.NoError(t, os.WriteFile(CachePath(cache, testSet), []byte("一: [unterminated"), 0644))
	_, err = Resolve(root, cache, testSet, logger)
	assert.Error(t, err, "corrupt cache should be an error")
}

func TestLoadCache(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name     string
		contents string
		ok       bool
	}{
		{"empty", "", false},
		{"whitespace", " \n\t\n", false},
		{"unterminated", "一: [unterminated", false},
		{"nothingfound", "{}\n", true},
		{"entries", "一:\n    - /a/s1\n", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(dir, c.name+".path")
			require.NoError(t, os.WriteFile(path, []byte(c.contents), 0644))
			_, err := Load(path)
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	require.NoError(t, Save(filepath.Join(dir, "saved.path"), Index{}))
	idx, err := Load(filepath.Join(dir, "saved.path"))
	require.NoError(t, err)
	assert.Empty(t, idx, "an index of nothing found should survive a round trip")
}

func TestImages(t *testing.T) {
	root := mkarchive(t, map[string]string{"a/s1": "一", "b/s1": "一"})
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "s1", "1.png"), []byte{}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "s1", ".DS_Store"), []byte{}, 0644))

	idx, err := Scan(root, testSet)
	require.NoError(t, err)
	paths, err := idx.Images("一")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a", "s1", "0.png"),
		filepath.Join(root, "a", "s1", "1.png"),
		filepath.Join(root, "b", "s1", "0.png"),
	}, paths)

	none, err := idx.Images("二")
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, os.RemoveAll(filepath.Join(root, "b")))
	_, err = idx.Images("一")
	assert.Error(t, err, "vanished directory should be an error")
}

func TestScanDecomposedLabel(t *testing.T) {
	set := charset.Set{Name: "kana", Glyphs: []string{"\u304c"}}
	root := mkarchive(t, map[string]string{"a/s1": "\u304b\u3099\n"})

	idx, err := Scan(root, set)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a", "s1")}, idx["\u304c"])
}
