// Package integration holds tests that cross foundation module boundaries.
//
// Package: integration
// Title: calword Foundation Integration Tests
// Description: Verifies that errors, logging, configuration, string and time
//              utilities work together: module error codes survive logging,
//              configuration drives working-day schedules, and spoken dates
//              agree with the ordinal helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Running:
//
//	go test -v ./test/integration/
package integration
