// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services never talk HTTP or touch configuration files directly; the
// directory client, tables and stores are injected as driven ports.
package services
