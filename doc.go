// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The charpipeline package contains tools and functions for building
datasets to train handwritten character classifiers from archives of
scanned character images. It also contains several tools that are useful
standalone.

Introduction

A character archive is a directory of collections, each holding one
directory per scanned sample. Each sample directory contains a hidden
.char.txt file naming the character its images show, for example:
  images/collection1/0001/.char.txt
  images/collection1/0001/0.png
  images/collection1/0001/1.png

Building a dataset for a character set (for example the hiragana, or the
N5 kanji) has several stages. First the archive is scanned to find which
sample directories hold which characters; this index is cached, so the
archive is only scanned once per character set. Then each image is
blurred slightly, scaled to 50x50 pixels and cleaned of scanner
background noise. From each clean image several more are generated by
moving and warping it by random amounts, which makes the classifier
trained on them more tolerant of sloppy handwriting. Finally every image
is normalised and put in either the training or testing part of the
dataset, which is saved as four NumPy arrays ready for a Python
classifier to load.

Presuming you have the go tools installed, you can install the tools
with this command:
  go install rescribe.xyz/charpipeline/cmd/...

All of the tools give information on what they do and how they work
with the '-h' flag, so for example to get usage information on the
mkdataset tool simply run the following:
  mkdataset -h

Settings

Defaults for the tools are read from settings.toml in the charpipeline
directory of the XDG config directory (usually ~/.config/charpipeline/).
For example:
  archive = "/data/characters"
  workers = 4
  store = "aws"

  [policy]
  generation_factor = 6
  max_movement_force = 5
  max_skew_force = 5
  training_split = 0.8
  seed = 1

Sharing datasets

Building a large dataset can take a long time, so built datasets can be
shared through a store, either a local directory or an Amazon S3 bucket.
When a dataset isn't in the local cache, it is fetched from the store if
it is there, and otherwise built and then sent to the store. To use S3
you'll need to change the settings in cloudsettings.go or the settings
file, and set up your ~/.aws/credentials appropriately.

Inspecting datasets

The lsdataset tool prints how many samples there are of each character,
and can draw a graph of this, and the samplesheet tool creates a PDF
showing some samples of each character.
*/
package charpipeline
