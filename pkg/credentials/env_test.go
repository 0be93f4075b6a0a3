package credentials_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fenceai/s3kit/pkg/credentials"
)

func TestFromEnv(t *testing.T) {
	t.Run("prefix_stripped_and_lowercased", func(t *testing.T) {
		t.Setenv("S3KITTEST_ACCESS_KEY_ID", "AKIAENV")
		t.Setenv("S3KITTEST_SECRET_ACCESS_KEY", "envsecret")
		t.Setenv("S3KITTEST_SESSION_TOKEN", "envtoken")

		creds := credentials.FromEnv("S3KITTEST_")

		assert.Equal(t, "AKIAENV", creds["access_key_id"])
		assert.Equal(t, "envsecret", creds["secret_access_key"])
		assert.Equal(t, "envtoken", creds["session_token"])
	})

	t.Run("unrelated_variables_ignored", func(t *testing.T) {
		t.Setenv("S3KITTEST_ACCESS_KEY_ID", "AKIAENV")
		t.Setenv("OTHERPREFIX_ACCESS_KEY_ID", "nope")

		creds := credentials.FromEnv("S3KITTEST_")

		assert.Equal(t, "AKIAENV", creds["access_key_id"])
		assert.Len(t, creds, 1)
	})

	t.Run("default_region_fallback", func(t *testing.T) {
		t.Setenv("S3KITTEST_DEFAULT_REGION", "eu-central-1")

		creds := credentials.FromEnv("S3KITTEST_")

		assert.Equal(t, "eu-central-1", creds["region"])
	})

	t.Run("region_beats_default_region", func(t *testing.T) {
		t.Setenv("S3KITTEST_REGION", "us-east-2")
		t.Setenv("S3KITTEST_DEFAULT_REGION", "eu-central-1")

		creds := credentials.FromEnv("S3KITTEST_")

		assert.Equal(t, "us-east-2", creds["region"])
	})

	t.Run("default_prefix_is_aws", func(t *testing.T) {
		t.Setenv("AWS_ACCESS_KEY_ID", "AKIADEFAULT")

		creds := credentials.FromEnv("")

		assert.Equal(t, "AKIADEFAULT", creds["access_key_id"])
	})
}
