// Package cli defines the Cobra command tree for the elmkit CLI. Each file
// in this package registers one top-level command (validate, show, fmt,
// cache, version) with the root command. Command implementations delegate to
// internal packages for manifest logic and only handle flag parsing, I/O
// formatting, and user interaction.
package cli
