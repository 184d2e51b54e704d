// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package charpipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"rescribe.xyz/charpipeline/dataset"
)

// SettingsFile is where settings are looked for, relative to the
// XDG config directories.
const SettingsFile = "charpipeline/settings.toml"

// Store types
const (
	StoreNone  = ""
	StoreLocal = "local"
	StoreAws   = "aws"
)

// Settings are the defaults for the command line tools, which can be
// overridden with flags.
type Settings struct {
	// Archive is the root of the scanned image archive.
	Archive string `toml:"archive"`
	// CacheDir holds cached path indexes and datasets.
	CacheDir string `toml:"cache_dir"`
	// Workers is the number of images to process at once; 0 means
	// one per physical cpu core.
	Workers int `toml:"workers"`
	// Store is where built datasets are shared: "", "local" or "aws".
	Store string `toml:"store"`
	// StoreDir is the directory used by the local store.
	StoreDir string `toml:"store_dir"`
	Bucket   string `toml:"bucket"`
	Region   string `toml:"region"`

	Policy dataset.Policy `toml:"policy"`
}

// DefaultSettings returns the settings used when there is no
// settings file.
func DefaultSettings() Settings {
	return Settings{
		Archive:  "images",
		CacheDir: filepath.Join(xdg.CacheHome, "charpipeline"),
		Bucket:   storageDatasets,
		Region:   defaultAwsRegion,
		Policy:   dataset.DefaultPolicy(),
	}
}

// LoadSettings reads settings from path, or if path is empty from
// the first SettingsFile found in the XDG config directories. Any
// setting not in the file keeps its default value. If path is empty
// and there is no settings file the defaults are returned.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path == "" {
		var err error
		path, err = xdg.SearchConfigFile(SettingsFile)
		if err != nil {
			return s, nil
		}
	}

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, fmt.Errorf("Error reading settings from %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return s, fmt.Errorf("Unknown settings in %s: %s", path, strings.Join(keys, ", "))
	}

	return s, s.Validate()
}

// Validate checks that settings are usable.
func (s Settings) Validate() error {
	if s.Workers < 0 {
		return fmt.Errorf("Workers must not be negative, not %d", s.Workers)
	}
	switch s.Store {
	case StoreNone, StoreLocal, StoreAws:
	default:
		return fmt.Errorf("Unknown store %s, expected %s or %s", s.Store, StoreLocal, StoreAws)
	}
	return s.Policy.Validate()
}

// Conn is a connection to a dataset store.
type Conn interface {
	Init() error
	Download(bucket string, key string, fn string) error
	ListObjects(bucket string, prefix string) ([]string, error)
	ListObjectPrefixes(bucket string) ([]string, error)
	CreateBucket(name string) error
	DeleteObjects(bucket string, keys []string) error
	Upload(bucket string, key string, path string) error
	Log(v ...interface{})
	StorageId() string
}

// NewConn creates and initialises a connection to the store the
// settings name, or returns nil if no store is set.
func (s Settings) NewConn(logger *log.Logger) (Conn, error) {
	var conn Conn
	switch s.Store {
	case StoreNone:
		return nil, nil
	case StoreLocal:
		dir := s.StoreDir
		if dir == "" {
			dir = filepath.Join(os.TempDir(), "charpipeline")
		}
		conn = &LocalConn{TempDir: dir, Logger: logger}
	case StoreAws:
		conn = &AwsConn{Region: s.Region, Bucket: s.Bucket, Logger: logger}
	default:
		return nil, fmt.Errorf("Unknown store %s", s.Store)
	}

	err := conn.Init()
	if err != nil {
		return nil, fmt.Errorf("Error setting up %s store: %v", s.Store, err)
	}
	return conn, nil
}
