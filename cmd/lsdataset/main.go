// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// lsdataset summarises a dataset
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"rescribe.xyz/charpipeline"
	"rescribe.xyz/charpipeline/charset"
	"rescribe.xyz/charpipeline/dataset"
	"rescribe.xyz/charpipeline/internal/pipeline"
)

const usage = `Usage: lsdataset [-settings file] [-cache dir] [-dir dir] [-graph out.png] charset

Lists how many training and testing samples a dataset has for each
character of a character set. The dataset is read from the cache
directory, or from the directory given with -dir. The cached dataset used is the one built
with the policy in the settings file.

With -graph, a graph of the proportion of each label's samples used
for training is also saved.
`

func main() {
	settingsPath := flag.String("settings", "", "settings file (default: search XDG config directories)")
	cache := flag.String("cache", "", "cache directory")
	dir := flag.String("dir", "", "dataset directory, overriding the cache")
	graph := flag.String("graph", "", "save a graph of the train / test split to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
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
	err = d.Validate(set.Len())
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("%s: %d training samples, %d testing samples\n", set.Name, len(d.TrainImages), len(d.TestImages))
	empty := color.New(color.FgRed)
	counts := d.Counts(set.Len())
	for _, c := range counts {
		line := fmt.Sprintf("%s\t%d\t%d", set.Caption(c.Label), c.Train, c.Test)
		if c.Train+c.Test == 0 {
			empty.Println(line)
			continue
		}
		fmt.Println(line)
	}

	if *graph == "" {
		return
	}
	f, err := os.Create(*graph)
	if err != nil {
		log.Fatalln("Error creating file", *graph, err)
	}
	defer f.Close()
	title := fmt.Sprintf("Training split of %s", set.Name)
	err = charpipeline.SplitGraph(counts, title, settings.Policy.TrainingSplit, f)
	if err != nil {
		log.Fatalln("Error creating graph", err)
	}
}
