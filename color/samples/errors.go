package samples

import "errors"

var (
	// ErrInvalidArgument reports a malformed range, count or source table.
	ErrInvalidArgument = errors.New("samples: invalid argument")

	// ErrUnsupportedCCT reports a correlated color temperature outside
	// the CIE daylight locus [4000, 25000] K.
	ErrUnsupportedCCT = errors.New("samples: unsupported CCT")
)
