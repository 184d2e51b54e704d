// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// samplesheet creates a PDF showing samples from each label of a
// dataset
package main

import (
	"flag"
	"fmt"
	"log"

	"rescribe.xyz/charpipeline"
	"rescribe.xyz/charpipeline/charset"
	"rescribe.xyz/charpipeline/dataset"
	"rescribe.xyz/charpipeline/internal/pipeline"
)

const usage = `Usage: samplesheet [-settings file] [-cache dir] [-dir dir] [-n num] [-font file.ttf] [-test] charset out.pdf

Creates a PDF with a page for each character of a character set,
showing samples of it from a dataset, so the dataset can be checked
by eye. The dataset is read from the cache directory, or from the
directory given with -dir. The cached dataset used is the one built
with the policy in the settings file.

The characters themselves are only shown if a TTF font which
contains them is given with -font.
`

func main() {
	settingsPath := flag.String("settings", "", "settings file (default: search XDG config directories)")
	cache := flag.String("cache", "", "cache directory")
	dir := flag.String("dir", "", "dataset directory, overriding the cache")
	n := flag.Int("n", 54, "maximum samples to show for each character")
	font := flag.String("font", "", "TTF font to caption pages with")
	test := flag.Bool("test", false, "show testing samples rather than training samples")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		return
	}

	settings, err := charpipeline.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatalln(err)
	}
	if *cache != "" {
		settings.CacheDir = *cache
	}

	set, err := charset.Find(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}
	if *dir == "" {
		*dir = pipeline.DatasetDir(settings.CacheDir, set, settings.Policy)
	}

	d, err := dataset.Load(*dir)
	if err != nil {
		log.Fatalln(err)
	}
	if *test {
		d = dataset.Dataset{TrainImages: d.TestImages, TrainLabels: d.TestLabels}
	}

	var sheet charpipeline.SampleSheet
	err = sheet.Setup(*font)
	if err != nil {
		log.Fatalln("Error setting up PDF:", err)
	}
	for label, g := range set.Glyphs {
		var meaning string
		if label < len(set.Meanings) {
			meaning = set.Meanings[label]
		}
		err = sheet.AddLabel(label, g, meaning, d.Samples(label, *n))
		if err != nil {
			log.Fatalln("Error adding page to PDF:", err)
		}
	}

	err = sheet.Save(flag.Arg(1))
	if err != nil {
		log.Fatalln("Error saving PDF:", err)
	}
	fmt.Printf("Saved %d pages to %s\n", set.Len(), flag.Arg(1))
}
