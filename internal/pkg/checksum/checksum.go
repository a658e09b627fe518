// Package checksum provides stable string keys derived from input values.
// Keys are deterministic: equal inputs always produce equal keys, across
// processes and restarts.
package checksum

import (
	"crypto/md5" //nolint:gosec // not used for security, only as a stable key
	"encoding/hex"
)

// MD5Hex returns the lowercase hexadecimal MD5 digest of s.
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s)) //nolint:gosec // stable key, not a credential
	return hex.EncodeToString(sum[:])
}
