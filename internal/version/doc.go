// Package version implements the two version grammars that appear in a
// project manifest: exact versions ("2.0.1") and constraint ranges
// ("1.0.0 <= v < 2.0.0"). Parsing and range checks are backed by
// Masterminds/semver; the manifest grammar is stricter than full semver
// (exactly three numeric parts, no prerelease or build metadata).
package version
