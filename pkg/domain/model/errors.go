package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the domain model
var (
	// ErrInvalidSelection is returned when a control event references a year
	// or category that is not present in the dataset. It is recoverable: the
	// prior view state is retained and the error is surfaced to the UI layer.
	ErrInvalidSelection = goerr.New("invalid selection")

	// ErrInvalidDataset is returned when dataset invariants are violated at
	// load time. It is fatal at startup.
	ErrInvalidDataset = goerr.New("invalid dataset")
)

// Context keys for error values
const (
	YearKey     = "year"
	CategoryKey = "category"
)
