package errors

import "errors"

// ErrOptimisticLock signals that a record was modified by another operation
// between read and write; callers should re-read and retry.
var ErrOptimisticLock = errors.New("record was modified by another operation, refresh and retry")
