// Package bincode provides the self-delimiting binary primitives used by the
// outline cache codec. The format is consumed only by the process that wrote
// it, so the Reader does not report malformed input as an error: any
// truncation or unknown tag byte means the cache on disk is corrupt, and the
// Reader panics with a Corrupt value instead of returning.
package bincode
