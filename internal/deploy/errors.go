package deploy

import "errors"

var (
	// ErrInvalidDescriptor is returned when a deploy function is missing required fields.
	ErrInvalidDescriptor = errors.New("invalid deploy function")

	// ErrDuplicateID is returned when a deploy function id is registered twice.
	ErrDuplicateID = errors.New("duplicate deploy function id")

	// ErrMissingABI is returned when constructor arguments are supplied for a contract without an ABI.
	ErrMissingABI = errors.New("constructor arguments supplied without contract abi")
)
