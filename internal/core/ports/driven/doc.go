// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigStore: Application configuration
//   - NormaliserRegistry: Selects a Normaliser for a file's MIME type
//   - Normaliser: Turns file bytes into plain text
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Stemmer: Groups word forms for stemmed common words. Without it,
//     stemmed requests fall back to exact-word counting.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
