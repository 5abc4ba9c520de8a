// Package connectors holds the clients for remote systems the CLI drives.
// Each subpackage implements one or more driven ports for a single
// platform; see churchtools for the ChurchTools REST API.
package connectors
