// Package testutil provides shared test utilities for integration tests.
//
// This package contains assertion helpers that check the structural
// guarantees of a Partition, so every integration scenario verifies them the
// same way regardless of which source, sink or seed it exercises.
//
// Note: For roster fixtures and roster files, use the
// github.com/sanodmendis/ShuffleRooster/testing package.
package testutil
