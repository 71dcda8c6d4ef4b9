package winpath

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a missing required input, such as a nil
	// current-directory capability when one is needed.
	ErrInvalidArgument = errors.New("winpath: invalid argument")

	// ErrSyntax reports a malformed path: an incomplete UNC root, a
	// disallowed character, or a wildcard outside the final segment.
	ErrSyntax = errors.New("winpath: invalid path syntax")

	// ErrTooLong reports a path exceeding a caller-imposed limit. Parse
	// itself never enforces a length; only CheckLen returns this.
	ErrTooLong = errors.New("winpath: path too long")
)

// CheckLen returns ErrTooLong when the normalized path exceeds max bytes.
// Callers targeting legacy APIs typically pass 260.
func CheckLen(p Path, max int) error {
	if n := len(p.String()); n > max {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrTooLong, n, max)
	}
	return nil
}
