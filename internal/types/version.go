package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Version is a table version as clients send it back: a JSON number, a numeric string
// or null (version 0, a table that was never written). It renders as a string.
type Version uint64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (v *Version) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*v = 0
		return nil
	}

	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Version(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("version: expected number or string, got %s", string(data))
	}
	if s == "" {
		*v = 0
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("version: invalid value %q: %w", s, err)
	}
	*v = Version(n)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v Version) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Uint64 converts Version back to uint64.
func (v Version) Uint64() uint64 {
	return uint64(v)
}
