package types

import "errors"

// Domain errors for catalog and report validation
var (
	// Fixture catalog errors
	ErrEmptyFixtureName   = errors.New("fixture name is required")
	ErrInvalidFixtureName = errors.New("fixture name must not contain path separators")
	ErrEmptyFixturePath   = errors.New("fixture path is required")
	ErrInvalidLanguage    = errors.New("invalid fixture language")
	ErrInvalidDigest      = errors.New("digest must be 64 hex characters (SHA-256)")
	ErrInvalidSize        = errors.New("fixture size must be positive")

	// Lookup errors
	ErrFixtureNotFound = errors.New("fixture not found")
	ErrDuplicateName   = errors.New("duplicate fixture name in manifest")

	// Verification errors
	ErrInvalidStatus = errors.New("invalid verify status")
)
