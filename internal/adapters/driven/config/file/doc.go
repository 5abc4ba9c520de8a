// Package file provides the TOML-backed configuration store.
//
// The file lives at ~/.churchtools/config.toml unless another directory is
// given. Tables are flattened into dot-notation keys on load, so
//
//	[churchtools]
//	domain = "https://example.church.tools"
//
// is read as "churchtools.domain", and nested back into tables on save.
package file
