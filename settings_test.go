// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package charpipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rescribe.xyz/charpipeline/dataset"
)

func TestLoadSettings(t *testing.T) {
	cases := []struct {
		name  string
		toml  string
		ok    bool
		check func(t *testing.T, s Settings)
	}{
		{"empty", "", true, func(t *testing.T, s Settings) {
			assert.Equal(t, DefaultSettings(), s)
		}},
		{"partial", "archive = \"/data/chars\"\nworkers = 3\n[policy]\ngeneration_factor = 2\n", true, func(t *testing.T, s Settings) {
			assert.Equal(t, "/data/chars", s.Archive)
			assert.Equal(t, 3, s.Workers)
			p := dataset.DefaultPolicy()
			p.GenerationFactor = 2
			assert.Equal(t, p, s.Policy)
			assert.Equal(t, storageDatasets, s.Bucket)
		}},
		{"store", "store = \"local\"\nstore_dir = \"/tmp/x\"\n", true, func(t *testing.T, s Settings) {
			assert.Equal(t, StoreLocal, s.Store)
		}},
		{"unknownkey", "archiv = \"/data\"\n", false, nil},
		{"badpolicy", "[policy]\ntraining_split = 1.5\n", false, nil},
		{"badstore", "store = \"ftp\"\n", false, nil},
		{"badworkers", "workers = -2\n", false, nil},
		{"syntax", "archive = \n", false, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.toml")
			require.NoError(t, os.WriteFile(path, []byte(c.toml), 0644))
			s, err := LoadSettings(path)
			if !c.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			c.check(t, s)
		})
	}

	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err, "an explicitly given settings file must exist")
}

func TestNewConn(t *testing.T) {
	s := DefaultSettings()
	conn, err := s.NewConn(nil)
	require.NoError(t, err)
	assert.Nil(t, conn)

	s.Store = StoreLocal
	s.StoreDir = t.TempDir()
	conn, err = s.NewConn(nil)
	require.NoError(t, err)
	assert.Equal(t, localStorageId, conn.StorageId())
	assert.DirExists(t, filepath.Join(s.StoreDir, localStorageId))
}
