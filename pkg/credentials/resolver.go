package credentials

// resolvableKeys is the allow-set of fields that participate in credential
// resolution. Unrecognized keys in any layer are dropped during the merge.
var resolvableKeys = map[string]bool{
	KeyAccessKeyID:     true,
	KeySecretAccessKey: true,
	KeySessionToken:    true,
	KeyRegion:          true,
}

// Resolve merges credential layers in ascending precedence order, with
// overrides applied last. A key only takes effect when its value is
// non-empty: an empty string in a higher layer never blanks out a real value
// from a lower one. Nil layers contribute nothing. The input mappings are
// never mutated; each call returns a fresh mapping.
func Resolve(layers []Mapping, overrides Mapping) Mapping {
	out := make(Mapping, len(resolvableKeys))
	for _, layer := range layers {
		mergeLayer(out, layer)
	}
	mergeLayer(out, overrides)
	return out
}

func mergeLayer(dst, layer Mapping) {
	for key, value := range layer {
		if !resolvableKeys[key] || value == "" {
			continue
		}
		dst[key] = value
	}
}
