// Package hexutil formats integers as lowercase hexadecimal, matching the
// original runtime's "0x%x"-style heap-id rendering for AlreadySeen nodes.
package hexutil

import "strconv"

// HexLower formats n as lowercase hexadecimal digits, without a "0x" prefix.
func HexLower(n int) string {
	return strconv.FormatInt(int64(n), 16)
}
