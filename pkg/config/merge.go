package config

// Merge folds mappings left to right into a fresh mapping. Later mappings
// win, key by key, but nil and empty-string values never overwrite: a key a
// caller left blank means "not set", not "erase". Unlike credential
// resolution there is no allow-set; every key passes through.
func Merge(layers ...map[string]any) map[string]any {
	out := map[string]any{}
	for _, layer := range layers {
		for key, value := range layer {
			if value == nil {
				continue
			}
			if s, ok := value.(string); ok && s == "" {
				continue
			}
			out[key] = value
		}
	}
	return out
}
