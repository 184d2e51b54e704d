// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package charpipeline

// This file contains various cloud account specific stuff; change this if
// you want to share datasets through your own storage. The bucket and
// region can also be set in the settings file.

// Storage bucket names
const (
	storageDatasets = "charpipelinedatasets"
	localStorageId  = "datasets"
)

const defaultAwsRegion = `eu-west-2`
