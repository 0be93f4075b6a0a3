// Package credentials loads AWS-style credentials from CSV files and
// environment variables and merges them across precedence layers.
package credentials

import "fmt"

// Canonical credential field names. Every source normalizes to these keys.
const (
	KeyAccessKeyID     = "access_key_id"
	KeySecretAccessKey = "secret_access_key"
	KeySessionToken    = "session_token"
	KeyRegion          = "region"
)

// Mapping is a flat credential/config mapping keyed by canonical field name.
type Mapping map[string]string

// Clone returns a copy of the mapping.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Validate checks that the required fields are present and non-empty.
func (m Mapping) Validate() error {
	for _, key := range []string{KeyAccessKeyID, KeySecretAccessKey} {
		if m[key] == "" {
			return fmt.Errorf("missing required field %q: %w", key, ErrValidation)
		}
	}
	return nil
}
