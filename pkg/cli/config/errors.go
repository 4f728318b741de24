package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for dataset loading. All of them are fatal at startup:
// a process with a broken dataset never begins serving.
var (
	ErrDatasetNotFound   = goerr.New("dataset file not found")
	ErrUnsupportedFormat = goerr.New("unsupported dataset format")
)

// Context keys for error values
const (
	DatasetPathKey = "dataset_path"
)
