// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// mkpathindex finds which directories of an image archive hold which
// characters of a character set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"rescribe.xyz/charpipeline"
	"rescribe.xyz/charpipeline/charset"
	"rescribe.xyz/charpipeline/internal/pipeline"
	"rescribe.xyz/charpipeline/pathindex"
)

const usage = `Usage: mkpathindex [-settings file] [-archive dir] [-cache dir] [-check] [-v] charset

Scans an archive of scanned character images for samples of each
character of a character set, and saves the result in the cache
directory, so later dataset builds don't need to scan the archive
again. If the index is already cached it is loaded instead.

Prints the number of sample directories and images found for each
character. With -check, every image is also decoded to check it is
readable.
`

func main() {
	settingsPath := flag.String("settings", "", "settings file (default: search XDG config directories)")
	archive := flag.String("archive", "", "root directory of the image archive")
	cache := flag.String("cache", "", "cache directory")
	check := flag.Bool("check", false, "check that every image can be decoded")
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
	if *archive != "" {
		settings.Archive = *archive
	}
	if *cache != "" {
		settings.CacheDir = *cache
	}

	set, err := charset.Find(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}

	idx, err := pathindex.Resolve(settings.Archive, settings.CacheDir, set, verboselog)
	if err != nil {
		log.Fatalln("Error making path index:", err)
	}

	missing := color.New(color.FgYellow)
	for label, g := range set.Glyphs {
		imgs, err := idx.Images(g)
		if err != nil {
			log.Fatalln(err)
		}
		line := fmt.Sprintf("%s\t%d directories\t%d images", set.Caption(label), len(idx[g]), len(imgs))
		if len(imgs) == 0 {
			missing.Println(line)
			continue
		}
		fmt.Println(line)
	}

	if *check {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		n, err := pipeline.CheckImages(ctx, set, idx)
		if err != nil {
			log.Fatalln("Error checking images:", err)
		}
		color.New(color.FgGreen).Printf("All %d images are readable\n", n)
	}
}
