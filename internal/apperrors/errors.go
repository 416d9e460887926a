package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNoPendingRevenue indicates a month validation was requested while no
// pending revenue entries exist for that month.
var ErrNoPendingRevenue = errors.New("no pending revenue for month")

// ErrStorage indicates a key-value storage read or write failure.
var ErrStorage = errors.New("storage error")
