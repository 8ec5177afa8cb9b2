// Package decoders turns fetched source bytes into long Records.
//
// Each sub-package handles one source format. The Registry selects the
// decoder by the format configured for a source.
package decoders
