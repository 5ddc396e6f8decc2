package service

import "errors"

var (
	// ErrUnknownNetwork is returned when no network definition exists for a name.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrChainIDMismatch is returned when the node reports a chain id other than the configured one.
	ErrChainIDMismatch = errors.New("chain id mismatch")
)
