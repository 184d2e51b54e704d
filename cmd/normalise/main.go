// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// normalise converts an image of a character into a sample ready for
// a classifier to predict.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"rescribe.xyz/charpipeline/dataset"
	"rescribe.xyz/charpipeline/preproc"
)

const usage = `Usage: normalise [-scan] [-png preview.png] in.png out.npy

Converts an image of a single character into a sample of the same
form as those in a dataset, saved as a NumPy array of shape
(1, 50, 50, 1).

By default the image is treated as a drawing, such as a snapshot of
a canvas, with dark or coloured strokes on a light background. With
-scan it is treated as a scanned source image, and cleaned in the
same way as images in a dataset are.
`

func main() {
	scan := flag.Bool("scan", false, "treat the image as a scanned source image")
	preview := flag.String("png", "", "also save the sample as a png image")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		return
	}

	img, err := preproc.Load(flag.Arg(0))
	if err != nil {
		log.Fatalln(err)
	}

	var s preproc.Sample
	if *scan {
		s = preproc.Normalise(preproc.Canonical(img))
	} else {
		s = preproc.NormaliseDrawing(img)
	}

	err = dataset.SaveSample(flag.Arg(1), s)
	if err != nil {
		log.Fatalln("Error saving sample:", err)
	}

	if *preview == "" {
		return
	}
	f, err := os.Create(*preview)
	if err != nil {
		log.Fatalln("Error creating file", *preview, err)
	}
	defer f.Close()
	err = png.Encode(f, s.Image())
	if err != nil {
		log.Fatalln("Error encoding preview", err)
	}
}
