// Package outline handles parsing, validation, and encoding of the elm.json
// project manifest. A manifest describes either an application (pinned
// dependency versions) or a package (dependency constraints plus publishing
// metadata); the two shapes share one file name and are told apart by the
// "type" field.
//
// The package offers two codecs over the same data model: the JSON codec for
// the manifest file itself, and a compact binary codec used by the cache
// layer for fast reloads. The JSON decoder reports structured, recoverable
// errors; the binary decoder trusts its input and treats any malformation as
// cache corruption, which is fatal.
package outline
