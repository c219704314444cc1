// Package keys is a test-fixture helper, not a production facade: it turns
// human-readable strings into normalized byte keys. No other package in
// this module imports it.
//
// Grounded on TomTonic-multimap's key.go, which normalizes to NFC before
// treating a Go string as map key bytes so that visually identical strings
// built from different combining-character sequences compare equal and
// sort consistently.
package keys

import "golang.org/x/text/unicode/norm"

// FromString returns the UTF-8 encoding of s after normalizing it to
// Unicode NFC.
func FromString(s string) []byte {
	return []byte(norm.NFC.String(s))
}
