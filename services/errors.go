package services

import "errors"

var (
	// ErrFoodNotFound marks operations that referenced an id with no record.
	ErrFoodNotFound = errors.New("food not found")
	// ErrDuplicateName marks a create or rename to a name already in use
	// (case-insensitive).
	ErrDuplicateName = errors.New("food name already exists")
)
