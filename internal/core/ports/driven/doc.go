// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DirectoryClient: Persons, calendars, appointments, events, groups
//   - TableSource: Spreadsheet rows for calendar import
//   - ConfigStore: Application configuration
//   - TokenProvider: Login token for the platform API
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ImportLogStore: Without it, rows without an id cell are always created.
//   - SongClient / FileClient: Without them, song and file commands are disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
