// Package harness provides utilities for integration testing the convobar CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - CONVOBAR_HOME: Isolated per test (temp directory)
//   - CONVOBAR_DEBUG: Disabled to reduce noise
package harness
