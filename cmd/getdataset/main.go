// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// getdataset downloads a dataset from the store into the cache
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"

	"rescribe.xyz/charpipeline"
	"rescribe.xyz/charpipeline/charset"
	"rescribe.xyz/charpipeline/dataset"
	"rescribe.xyz/charpipeline/internal/pipeline"
)

const usage = `Usage: getdataset [-settings file] [-cache dir] [-store type] [-send] [-l] [-v] [charset]

Downloads a dataset for a character set from the store into the
cache directory. With -send the cached dataset is uploaded to the
store instead, creating the bucket if needed. With -l, the datasets
in the store are listed.

The dataset is the one built with the policy in the settings file.
`

func main() {
	settingsPath := flag.String("settings", "", "settings file (default: search XDG config directories)")
	cache := flag.String("cache", "", "cache directory")
	store := flag.String("store", "", "store to use: local or aws")
	send := flag.Bool("send", false, "send the cached dataset to the store")
	list := flag.Bool("l", false, "list datasets in the store")
	verbose := flag.Bool("v", false, "verbose")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if (*list && flag.NArg() != 0) || (!*list && flag.NArg() != 1) {
		flag.Usage()
		return
	}

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", log.LstdFlags)
	} else {
		var n pipeline.NullWriter
		verboselog = log.New(n, "", log.LstdFlags)
	}

	settings, err := charpipeline.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatalln(err)
	}
	if *cache != "" {
		settings.CacheDir = *cache
	}
	if *store != "" {
		settings.Store = *store
	}
	if settings.Store == charpipeline.StoreNone {
		log.Fatalln("No store set, use -store or the settings file")
	}

	conn, err := settings.NewConn(verboselog)
	if err != nil {
		log.Fatalln(err)
	}

	if *list {
		prefixes, err := conn.ListObjectPrefixes(conn.StorageId())
		if err != nil {
			log.Fatalln("Failed to list datasets:", err)
		}
		sort.Strings(prefixes)
		for _, p := range prefixes {
			fmt.Println(strings.TrimSuffix(p, "/"))
		}
		return
	}

	set, err := charset.Find(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	dir := pipeline.DatasetDir(settings.CacheDir, set, settings.Policy)
	name := pipeline.DatasetName(set, settings.Policy)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *send {
		if !dataset.Exists(dir) {
			log.Fatalf("No dataset for %s in %s\n", set.Name, dir)
		}
		err = conn.CreateBucket(conn.StorageId())
		if err != nil {
			log.Fatalln(err)
		}
		verboselog.Println("Uploading", dir, "to", conn.StorageId())
		err = pipeline.Send(ctx, dir, name, conn, verboselog)
		if err != nil {
			log.Fatalln(err)
		}
		return
	}

	verboselog.Println("Downloading", name, "to", dir)
	found, err := pipeline.Fetch(ctx, dir, name, conn, verboselog)
	if err != nil {
		log.Fatalln(err)
	}
	if !found {
		log.Fatalf("No complete dataset for %s found in %s\n", set.Name, conn.StorageId())
	}
	err = dataset.SavePolicy(dir, settings.Policy)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println("Downloaded", set.Name, "dataset to", dir)
}
