// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rescribe.xyz/charpipeline"
	"rescribe.xyz/charpipeline/charset"
	"rescribe.xyz/charpipeline/dataset"
	"rescribe.xyz/charpipeline/pathindex"
)

func testLogger() *log.Logger {
	var n NullWriter
	return log.New(n, "", 0)
}

func TestLoadOrBuild(t *testing.T) {
	set := charset.Set{Name: "cache", Glyphs: []string{"一", "二"}}
	root := mkarchive(t, set.Glyphs, 2)
	policy := dataset.DefaultPolicy()
	dir := DatasetDir(t.TempDir(), set, policy)

	resolved := 0
	resolve := func() (pathindex.Index, error) {
		resolved++
		return pathindex.Scan(root, set)
	}

	d, built, err := LoadOrBuild(context.Background(), dir, set, resolve, policy, Options{Workers: 2, Logger: testLogger()})
	require.NoError(t, err)
	assert.True(t, built)
	assert.True(t, dataset.Exists(dir))
	assert.Equal(t, 1, resolved)

	cached, built, err := LoadOrBuild(context.Background(), dir, set, resolve, policy, Options{})
	require.NoError(t, err)
	assert.False(t, built)
	assert.Equal(t, 1, resolved, "index should not be needed for a cached dataset")
	assert.Equal(t, d, cached)

	require.NoError(t, os.WriteFile(filepath.Join(dir, dataset.TestLabelsFile), []byte("garbage"), 0644))
	_, _, err = LoadOrBuild(context.Background(), dir, set, resolve, policy, Options{})
	assert.Error(t, err, "a corrupt cache should not be silently rebuilt")
}

func TestLoadOrBuildFailure(t *testing.T) {
	set := charset.Set{Name: "fail", Glyphs: []string{"一"}}
	dir := DatasetDir(t.TempDir(), set, dataset.DefaultPolicy())
	fail := errors.New("no archive")

	_, built, err := LoadOrBuild(context.Background(), dir, set, func() (pathindex.Index, error) { return nil, fail }, dataset.DefaultPolicy(), Options{})
	assert.ErrorIs(t, err, fail)
	assert.False(t, built)
	assert.False(t, dataset.Exists(dir), "nothing should be cached after a failure")
}

func TestLoadOrBuildStore(t *testing.T) {
	set := charset.Set{Name: "store", Glyphs: []string{"一", "二"}}
	root := mkarchive(t, set.Glyphs, 1)
	policy := dataset.DefaultPolicy()

	store := &charpipeline.LocalConn{TempDir: t.TempDir(), Logger: testLogger()}
	require.NoError(t, store.Init())
	opts := Options{Store: store, Logger: testLogger()}

	resolve := func() (pathindex.Index, error) { return pathindex.Scan(root, set) }
	d, built, err := LoadOrBuild(context.Background(), DatasetDir(t.TempDir(), set, policy), set, resolve, policy, opts)
	require.NoError(t, err)
	assert.True(t, built)

	objs, err := store.ListObjects(store.StorageId(), DatasetName(set, policy)+"/")
	require.NoError(t, err)
	assert.Len(t, objs, len(dataset.Files))

	noresolve := func() (pathindex.Index, error) {
		t.Fatal("dataset should have been fetched, not built")
		return nil, nil
	}
	dir := DatasetDir(t.TempDir(), set, policy)
	fetched, built, err := LoadOrBuild(context.Background(), dir, set, noresolve, policy, opts)
	require.NoError(t, err)
	assert.False(t, built)
	assert.Equal(t, d, fetched)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".fetch-", "temporary download directory should be removed")
	}
}

func TestLoadOrBuildPolicies(t *testing.T) {
	set := charset.Set{Name: "policies", Glyphs: []string{"一", "二"}}
	root := mkarchive(t, set.Glyphs, 1)
	resolve := func() (pathindex.Index, error) { return pathindex.Scan(root, set) }
	cache := t.TempDir()

	small := dataset.DefaultPolicy()
	small.GenerationFactor = 2
	large := dataset.DefaultPolicy()
	large.TrainingSplit = 0.5

	assert.NotEqual(t, DatasetDir(cache, set, small), DatasetDir(cache, set, large))

	first, built, err := LoadOrBuild(context.Background(), DatasetDir(cache, set, small), set, resolve, small, Options{})
	require.NoError(t, err)
	assert.True(t, built)
	assert.Equal(t, 4, first.Len())

	second, built, err := LoadOrBuild(context.Background(), DatasetDir(cache, set, large), set, resolve, large, Options{})
	require.NoError(t, err)
	assert.True(t, built, "a different policy should build a new dataset")
	assert.Equal(t, 12, second.Len())

	_, _, err = LoadOrBuild(context.Background(), DatasetDir(cache, set, small), set, resolve, large, Options{})
	assert.Error(t, err, "a dataset built with another policy should not be returned")
}

func TestLoadOrBuildForeignLabels(t *testing.T) {
	set := charset.Set{Name: "foreign", Glyphs: []string{"一"}}
	policy := dataset.DefaultPolicy()
	dir := DatasetDir(t.TempDir(), set, policy)

	var d dataset.Dataset
	d.Add(dataset.Train, dataset.Sample{}, 3)
	require.NoError(t, dataset.Save(dir, d))
	require.NoError(t, dataset.SavePolicy(dir, policy))

	_, built, err := LoadOrBuild(context.Background(), dir, set, func() (pathindex.Index, error) {
		t.Fatal("cached dataset should not be rebuilt")
		return nil, nil
	}, policy, Options{})
	assert.Error(t, err, "labels outside the set should be rejected")
	assert.False(t, built)
}

func TestFetchIncomplete(t *testing.T) {
	store := &charpipeline.LocalConn{TempDir: t.TempDir(), Logger: testLogger()}
	require.NoError(t, store.Init())

	src := filepath.Join(t.TempDir(), dataset.TrainImagesFile)
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))
	require.NoError(t, store.Upload(store.StorageId(), "partial/"+dataset.TrainImagesFile, src))

	dir := t.TempDir()
	found, err := Fetch(context.Background(), dir, "partial", store, testLogger())
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, dataset.Exists(dir))
}

func TestCheckImages(t *testing.T) {
	set := charset.Set{Name: "check", Glyphs: []string{"一", "二"}}
	root := mkarchive(t, set.Glyphs, 2)
	idx := mkindex(t, root, set)

	n, err := CheckImages(context.Background(), set, idx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	require.NoError(t, os.WriteFile(filepath.Join(root, "collection", "a", "z.png"), []byte("bad"), 0644))
	_, err = CheckImages(context.Background(), set, idx)
	assert.Error(t, err)

	_, err = CheckImages(context.Background(), charset.Set{Name: "none", Glyphs: []string{"三"}}, idx)
	assert.ErrorIs(t, err, ErrNoImages)
}
