package repository

import "errors"

var (
	ErrFailedToWrite = errors.New("failed to write store document")
	ErrEmptyPath     = errors.New("store path is empty")
)
