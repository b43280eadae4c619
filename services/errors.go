package services

import "errors"

// ErrNotFound is returned when an update or delete targets an id that
// does not exist in the collection.
var ErrNotFound = errors.New("record not found")
