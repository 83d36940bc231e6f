package fn

import "errors"

// All failures here are synchronous and non-retryable: they indicate a
// malformed query, not a transient condition. Call sites wrap them with
// the function name and the offending argument's index/type so the engine
// can render a user-facing diagnostic.
var (
	ErrArityMismatch         = errors.New("fn: number of arguments doesn't match")
	ErrIllegalArgumentType   = errors.New("fn: illegal type of argument")
	ErrIllegalTimezoneOnDate = errors.New("fn: timezone argument allowed only when the 1st argument has a time component")
	ErrNonConstantTimezone   = errors.New("fn: timezone argument must be a constant string")
	ErrUnsupportedColumnType = errors.New("fn: unsupported column type")
)
