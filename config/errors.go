package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrAlreadyParsed is returned when attempting to parse
// the configuration more than once
var ErrAlreadyParsed = errors.New("configuration already parsed")

// ErrParseFlags is returned when the command line flags
// cannot be parsed
type ErrParseFlags struct {
	Cause error
}

// Error implementation of error for ErrParseFlags
func (e ErrParseFlags) Error() string {
	return fmt.Sprintf("failed to parse flags: %s", e.Cause.Error())
}

// Unwrap returns the error returned by the flag parser
func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}
