package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Notation Errors.

	// ErrInvalidNotation indicates the parser rejected a line notation string.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrParserUnavailable indicates no chemistry backend was compiled in.
	// Build with -tags rdkit and CGO enabled to link RDKit.
	ErrParserUnavailable = errors.New("molecule parser unavailable")

	// ErrParserClosed indicates the parser has been closed.
	ErrParserClosed = errors.New("molecule parser closed")

	// Storage Errors.

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("store closed")
)
