// Package internal contains the core implementation packages for dotspec.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the dotspec CLI tool.
//
// The internal packages are organized by functional domain:
//
//   - dottedname: the immutable dotted-name value type
//   - model: documentation tree, root index and name resolution
//   - visitor: generic tree traversal with pruning
//   - loader: YAML spec file loading and discovery
//   - config: configuration management via viper
//   - logging: structured leveled logging
//   - errors: structured error types for loader and CLI layers
//   - watcher: debounced file watching for watch mode
//   - version: build-time version information
package internal
