package services

import (
	"strconv"
	"unicode/utf16"
)

// HashPassword is the DJB2-xor string hash used for stored credentials, computed over
// UTF-16 code units with 32-bit wraparound and rendered as unpadded hex.
// It is not a password hashing function and offers no protection against a stolen table.
func HashPassword(password string) string {
	var hash uint32 = 5381
	for _, unit := range utf16.Encode([]rune(password)) {
		hash = (hash * 33) ^ uint32(unit)
	}
	return strconv.FormatUint(uint64(hash), 16)
}
