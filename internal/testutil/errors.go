// Package testutil provides testing utilities for signet.
//
// This package contains mock errors, deterministic entropy sources and a
// scripted digest provider used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
var (
	// ErrMockEntropy indicates a mock random source failed (used in tests).
	ErrMockEntropy = errors.New("entropy device unavailable")

	// ErrMockDigestUnavailable indicates a mock digest service is down (used in tests).
	ErrMockDigestUnavailable = errors.New("digest service unavailable")

	// ErrMockDigestRejected indicates a mock digest service rejected the input (used in tests).
	ErrMockDigestRejected = errors.New("digest service rejected input")
)
