package model

import "errors"

// ErrNotFound is returned by stores when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists is returned by stores when a unique constraint
// rejects the write.
var ErrAlreadyExists = errors.New("record already exists")
