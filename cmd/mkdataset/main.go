// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// mkdataset builds a dataset for a character set, or loads it from
// the cache if it has already been built.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/fatih/color"
	"github.com/shirou/gopsutil/v3/cpu"

	"rescribe.xyz/charpipeline"
	"rescribe.xyz/charpipeline/charset"
	"rescribe.xyz/charpipeline/internal/pipeline"
	"rescribe.xyz/charpipeline/pathindex"
)

const usage = `Usage: mkdataset [-settings file] [-archive dir] [-cache dir] [-j n]
                 [-g n] [-m n] [-s n] [-split f] [-seed n] [-store type] [-v]
                 charset

Builds a training and testing dataset for a character set from an
archive of scanned character images, saving it as four NumPy files
(trainImgs.npy, trainLabels.npy, testImgs.npy, testLabels.npy) in
the cache directory. If the dataset is already cached it is loaded
instead, and if a store is set it is fetched from there if possible.

charset is the name of a built in set (hiragana, katakana, n5, n4, n3,
n2, n1) or a file containing one character per line.

Flags override the settings file.
`

func main() {
	settingsPath := flag.String("settings", "", "settings file (default: search XDG config directories)")
	archive := flag.String("archive", "", "root directory of the image archive")
	cache := flag.String("cache", "", "cache directory")
	workers := flag.Int("j", 0, "number of images to process at once (0: one per physical cpu core)")
	gen := flag.Int("g", 0, "samples generated per source image")
	move := flag.Int("m", 0, "maximum movement force")
	skew := flag.Int("s", 0, "maximum skew force")
	split := flag.Float64("split", 0, "proportion of samples used for training")
	seed := flag.Int64("seed", 0, "random seed")
	store := flag.String("store", "", "store to fetch and send datasets: local or aws")
	verbose := flag.Bool("v", false, "verbose")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
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
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "archive":
			settings.Archive = *archive
		case "cache":
			settings.CacheDir = *cache
		case "j":
			settings.Workers = *workers
		case "g":
			settings.Policy.GenerationFactor = *gen
		case "m":
			settings.Policy.MaxMovementForce = *move
		case "s":
			settings.Policy.MaxSkewForce = *skew
		case "split":
			settings.Policy.TrainingSplit = *split
		case "seed":
			settings.Policy.Seed = *seed
		case "store":
			settings.Store = *store
		}
	})
	err = settings.Validate()
	if err != nil {
		log.Fatalln(err)
	}

	set, err := charset.Find(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}

	if settings.Workers == 0 {
		n, err := cpu.Counts(false)
		if err != nil || n < 1 {
			n = runtime.NumCPU()
		}
		settings.Workers = n
	}
	verboselog.Println("Using", settings.Workers, "workers")

	conn, err := settings.NewConn(verboselog)
	if err != nil {
		log.Fatalln(err)
	}

	progress := color.New(color.FgCyan)
	opts := pipeline.Options{
		Workers: settings.Workers,
		Logger:  verboselog,
		Progress: func(p pipeline.Progress) {
			progress.Println(p.String())
		},
	}
	if conn != nil {
		err = conn.CreateBucket(conn.StorageId())
		if err != nil {
			log.Fatalln(err)
		}
		opts.Store = conn
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	resolve := func() (pathindex.Index, error) {
		return pathindex.Resolve(settings.Archive, settings.CacheDir, set, verboselog)
	}
	dir := pipeline.DatasetDir(settings.CacheDir, set, settings.Policy)
	d, built, err := pipeline.LoadOrBuild(ctx, dir, set, resolve, settings.Policy, opts)
	if err != nil {
		log.Fatalln("Error making dataset:", err)
	}

	action := "Loaded"
	if built {
		action = "Built"
	}
	color.New(color.FgGreen).Printf("%s %s dataset in %s\n", action, set.Name, dir)
	fmt.Printf("%d training samples, %d testing samples\n", len(d.TrainImages), len(d.TestImages))
}
