package async

import "errors"

// ErrNotComplete is returned by Result when the operation is still running.
var ErrNotComplete = errors.New("async: operation not complete")
