package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// Year represents an assessment year (baseline or projection)
type Year string

var yearPattern = regexp.MustCompile(`^[0-9]{4}$`)

// Validate checks if the Year is well-formed. Whether the year is actually
// part of the supported set is decided by the loaded dataset, not here.
func (y Year) Validate() error {
	if y == "" {
		return goerr.New("year cannot be empty")
	}
	if !yearPattern.MatchString(string(y)) {
		return goerr.New("year must be a four digit value", goerr.V("year", y))
	}
	return nil
}

// String returns the string representation of Year
func (y Year) String() string {
	return string(y)
}
