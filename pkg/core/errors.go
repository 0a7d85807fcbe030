package core

import "errors"

// Common errors.
var (
	// ErrInvalidMnemonic is returned when a label fails the mnemonic pattern.
	ErrInvalidMnemonic = errors.New("mnemonic must contain only letters, digits, '_' or '-'")

	// ErrDuplicateMnemonic is returned by Create when the label is taken.
	// The existing bookmark is never overwritten.
	ErrDuplicateMnemonic = errors.New("mnemonic already exists")

	// ErrNotFound is returned when no bookmark carries the given mnemonic.
	ErrNotFound = errors.New("bookmark not found")

	// ErrNoDocument is returned by Set when the target document cannot be read.
	ErrNoDocument = errors.New("document is not readable")

	// ErrLineOutOfRange is returned by Set when the requested line does not
	// exist in the document.
	ErrLineOutOfRange = errors.New("line is out of range")
)
