package dataset

import "errors"

// Dataset-related errors
var (
	// ErrEmptyDatasetName indicates an operation without a dataset name
	ErrEmptyDatasetName = errors.New("dataset name cannot be empty")

	// ErrDatasetNotFound indicates the named dataset does not exist
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrEmptyForest indicates an import with no options
	ErrEmptyForest = errors.New("cannot import an empty option forest")
)
