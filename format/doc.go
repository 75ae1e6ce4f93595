// Package format identifies configuration formats by name and by file
// extension.
//
// # Usage
//
//	// From a user-supplied name ("json", "y", "toml", ...)
//	f, err := format.ParseFormat("yaml")
//
//	// From a file path (case-insensitive extension)
//	f, err := format.FromPath("deploy/values.YAML")
//
// ParseFormat rejects unknown names with ErrBadFormat; FromPath rejects
// paths whose extension is not one of .json, .yaml, .yml, .toml or .env
// with ErrUnsupported.
//
// # Related Packages
//
//   - github.com/strata-config/strata/codec - Decode and encode trees
//   - github.com/strata-config/strata/file - Load and dump files by path
package format
