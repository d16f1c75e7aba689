package service

import "errors"

// ErrUnitPanicked wraps a panic recovered from a unit task.
var ErrUnitPanicked = errors.New("sync unit panicked")
