// Package harness provides utilities for integration testing the tessera CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - TESSERA_HOME: Isolated per test (temp directory)
//   - TESSERA_DEBUG: Disabled to reduce noise
//   - TESSERA_DB: Cleared so the database lives under TESSERA_HOME
package harness
