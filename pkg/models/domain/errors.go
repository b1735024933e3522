package domain

import "errors"

var (
	// ErrDataUnavailable means no customer records could be obtained from any
	// source. Fatal to every computation that needs the collection.
	ErrDataUnavailable = errors.New("customer data unavailable")

	// ErrEmptyDataset means the store was reachable but held zero records.
	// Engines report it instead of dividing by zero; callers decide severity.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrInvalidInput means a caller-supplied scoring request is malformed.
	// It is returned before any scoring work happens.
	ErrInvalidInput = errors.New("invalid input")
)
