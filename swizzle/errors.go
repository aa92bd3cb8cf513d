package swizzle

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrNotEnoughData is the sentinel for the library's single defined error
// condition: the source buffer is smaller than the size an operation
// expects (the swizzled size for a deswizzle, the deswizzled size for a
// swizzle). Callers should compare against it with errors.Is; the error
// returned by this package's public functions wraps it with the expected
// and actual byte counts via [*Error].
var ErrNotEnoughData = errors.New("swizzle: not enough data")

// Error carries the expected and actual byte counts for an
// [ErrNotEnoughData] failure. Use errors.As to recover it, or errors.Is to
// just check the sentinel.
type Error struct {
	Expected uint64
	Got      uint64
	cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("swizzle: not enough data: want %d bytes, got %d", e.Expected, e.Got)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// notEnoughData builds a wrapped [*Error] for a source of length got where
// expected bytes were required, with ctx describing the operation for the
// wrapped error chain (following the wrapping idiom this corpus uses for
// texture decode failures).
func notEnoughData(expected, got uint64, ctx string) error {
	err := &Error{Expected: expected, Got: got, cause: ErrNotEnoughData}
	return pkgerrors.Wrapf(err, "%s", ctx)
}
