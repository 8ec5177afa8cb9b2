// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - Fetcher: Downloads a source's bytes
//   - Decoder: Turns raw bytes into long Records
//   - DecoderRegistry: Selects the decoder for a source format
//   - Frames: Row filtering and reshaping of Records
//   - TableTransform: A step applied to a wide Table
//   - ExclusionStore: Excluded countries of the current run
//   - ConfigStore: Application configuration
//   - SettingsValidator: Structural validation of settings
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, decoder, or transform package
package driven
