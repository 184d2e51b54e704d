// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package charpipeline

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalConn(t *testing.T) {
	var n nullWriter
	conn := &LocalConn{TempDir: filepath.Join(t.TempDir(), "store"), Logger: log.New(n, "", 0)}
	require.NoError(t, conn.Init())

	src := filepath.Join(t.TempDir(), "a.npy")
	require.NoError(t, os.WriteFile(src, []byte("contents"), 0644))

	bucket := conn.StorageId()
	require.NoError(t, conn.Upload(bucket, "set1/a.npy", src))
	require.NoError(t, conn.Upload(bucket, "set1/b.npy", src))
	require.NoError(t, conn.Upload(bucket, "set2/a.npy", src))

	list, err := conn.ListObjects(bucket, "set1/")
	require.NoError(t, err)
	assert.Equal(t, []string{"set1/a.npy", "set1/b.npy"}, list)

	dest := filepath.Join(t.TempDir(), "got.npy")
	require.NoError(t, conn.Download(bucket, "set2/a.npy", dest))
	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "contents", string(b))

	assert.Error(t, conn.Download(bucket, "set3/a.npy", dest))

	require.NoError(t, conn.DeleteObjects(bucket, []string{"set1/a.npy", "set1/missing.npy"}))
	list, err = conn.ListObjects(bucket, "set1/")
	require.NoError(t, err)
	assert.Equal(t, []string{"set1/b.npy"}, list)
}

func TestLocalConnBuckets(t *testing.T) {
	var n nullWriter
	conn := &LocalConn{TempDir: t.TempDir(), Logger: log.New(n, "", 0)}
	require.NoError(t, conn.Init())

	_, err := conn.ListObjectPrefixes("other")
	assert.Error(t, err, "a bucket which hasn't been created should not be listable")

	require.NoError(t, conn.CreateBucket("other"))
	require.NoError(t, conn.CreateBucket("other"), "creating an existing bucket should succeed")
	prefixes, err := conn.ListObjectPrefixes("other")
	require.NoError(t, err)
	assert.Empty(t, prefixes)

	src := filepath.Join(t.TempDir(), "a.npy")
	require.NoError(t, os.WriteFile(src, []byte("contents"), 0644))
	require.NoError(t, conn.Upload("other", "set2-0000/a.npy", src))
	require.NoError(t, conn.Upload("other", "set1-0000/a.npy", src))
	require.NoError(t, conn.Upload("other", "set1-0000/b.npy", src))
	require.NoError(t, conn.Upload("other", "loose.npy", src))

	prefixes, err = conn.ListObjectPrefixes("other")
	require.NoError(t, err)
	assert.Equal(t, []string{"set1-0000/", "set2-0000/"}, prefixes)
}

type nullWriter bool

func (w nullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}
