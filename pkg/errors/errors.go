package errors

import "errors"

// ErrOptimisticLock indicates the record was modified by another operation.
var ErrOptimisticLock = errors.New("record was modified by another operation, refresh and retry")
