package credentials

import (
	"os"
	"strings"
)

// DefaultEnvPrefix is the environment variable prefix scanned by FromEnv.
const DefaultEnvPrefix = "AWS_"

// FromEnv reads every environment variable starting with prefix into a
// mapping. The prefix is stripped and the remainder lowercased, so
// AWS_SECRET_ACCESS_KEY becomes secret_access_key. Values are taken verbatim
// and no validation is performed; missing required fields only surface when a
// client is built from the resolved mapping.
func FromEnv(prefix string) Mapping {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}

	out := Mapping{}
	for _, entry := range os.Environ() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, prefix))
		if key == "" {
			continue
		}
		out[key] = value
	}

	// AWS_DEFAULT_REGION is the legacy spelling of AWS_REGION.
	if out[KeyRegion] == "" && out["default_region"] != "" {
		out[KeyRegion] = out["default_region"]
	}

	return out
}
