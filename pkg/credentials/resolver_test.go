package credentials_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fenceai/s3kit/pkg/credentials"
)

func TestResolve(t *testing.T) {
	t.Run("highest_non_empty_layer_wins", func(t *testing.T) {
		file := credentials.Mapping{"access_key_id": "F"}
		env := credentials.Mapping{}
		ctor := credentials.Mapping{"access_key_id": "C"}
		overrides := credentials.Mapping{"access_key_id": ""}

		result := credentials.Resolve([]credentials.Mapping{file, env, ctor}, overrides)

		assert.Equal(t, "C", result["access_key_id"])
	})

	t.Run("override_layer_wins_when_set", func(t *testing.T) {
		file := credentials.Mapping{"access_key_id": "F", "secret_access_key": "FS"}
		ctor := credentials.Mapping{"access_key_id": "C"}
		overrides := credentials.Mapping{"access_key_id": "O"}

		result := credentials.Resolve([]credentials.Mapping{file, nil, ctor}, overrides)

		assert.Equal(t, "O", result["access_key_id"])
		assert.Equal(t, "FS", result["secret_access_key"])
	})

	t.Run("empty_string_does_not_override", func(t *testing.T) {
		lower := credentials.Mapping{"region": "real"}
		higher := credentials.Mapping{"region": ""}

		result := credentials.Resolve([]credentials.Mapping{lower, higher}, nil)

		assert.Equal(t, "real", result["region"])
	})

	t.Run("unrecognized_keys_dropped", func(t *testing.T) {
		layer := credentials.Mapping{
			"access_key_id": "A",
			"endpoint":      "http://localhost:9000",
			"bucket":        "stuff",
		}

		result := credentials.Resolve([]credentials.Mapping{layer}, nil)

		assert.Equal(t, credentials.Mapping{"access_key_id": "A"}, result)
	})

	t.Run("absent_layers_contribute_nothing", func(t *testing.T) {
		result := credentials.Resolve([]credentials.Mapping{nil, nil}, nil)
		assert.Empty(t, result)
	})

	t.Run("idempotent", func(t *testing.T) {
		layers := []credentials.Mapping{
			{"access_key_id": "A", "region": "us-east-1"},
			{"secret_access_key": "B"},
		}
		overrides := credentials.Mapping{"region": "eu-west-1"}

		first := credentials.Resolve(layers, overrides)
		second := credentials.Resolve(layers, overrides)

		assert.Equal(t, first, second)
	})

	t.Run("inputs_not_mutated", func(t *testing.T) {
		layer := credentials.Mapping{"access_key_id": "A"}
		overrides := credentials.Mapping{"access_key_id": "B"}

		result := credentials.Resolve([]credentials.Mapping{layer}, overrides)
		result["access_key_id"] = "mutated"

		assert.Equal(t, "A", layer["access_key_id"])
		assert.Equal(t, "B", overrides["access_key_id"])
	})
}

func TestMappingValidate(t *testing.T) {
	tests := []struct {
		name    string
		mapping credentials.Mapping
		wantErr bool
	}{
		{
			name:    "complete",
			mapping: credentials.Mapping{"access_key_id": "A", "secret_access_key": "B"},
			wantErr: false,
		},
		{
			name:    "missing_secret",
			mapping: credentials.Mapping{"access_key_id": "A"},
			wantErr: true,
		},
		{
			name:    "empty_access_key",
			mapping: credentials.Mapping{"access_key_id": "", "secret_access_key": "B"},
			wantErr: true,
		},
		{
			name:    "empty_mapping",
			mapping: credentials.Mapping{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mapping.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, credentials.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
