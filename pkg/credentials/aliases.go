package credentials

import "strings"

// headerAliases maps normalized header variants to canonical field names.
// Lookup is case-insensitive and whitespace-trimmed; see normalizeHeader.
var headerAliases = map[string]string{
	"access key id":     KeyAccessKeyID,
	"access key":        KeyAccessKeyID,
	"accesskeyid":       KeyAccessKeyID,
	"access_key_id":     KeyAccessKeyID,
	"access-key-id":     KeyAccessKeyID,
	"aws access key id": KeyAccessKeyID,
	"aws_access_key_id": KeyAccessKeyID,

	"secret access key":     KeySecretAccessKey,
	"secret key":            KeySecretAccessKey,
	"secretaccesskey":       KeySecretAccessKey,
	"secret_access_key":     KeySecretAccessKey,
	"secret-access-key":     KeySecretAccessKey,
	"aws secret access key": KeySecretAccessKey,
	"aws_secret_access_key": KeySecretAccessKey,

	"session token":     KeySessionToken,
	"sessiontoken":      KeySessionToken,
	"session_token":     KeySessionToken,
	"aws session token": KeySessionToken,
	"aws_session_token": KeySessionToken,

	"region":         KeyRegion,
	"region name":    KeyRegion,
	"region_name":    KeyRegion,
	"aws_region":     KeyRegion,
	"default region": KeyRegion,
	"default_region": KeyRegion,
}

// userHeaders are username-like columns. They carry no credential data but
// mark the file as an IAM user export.
var userHeaders = map[string]bool{
	"user name": true,
	"username":  true,
	"user":      true,
	"iam user":  true,
	"iam_user":  true,
}

// ignoredHeaders are recognized columns that never map to a credential field.
var ignoredHeaders = map[string]bool{
	"arn":                true,
	"account id":         true,
	"account_id":         true,
	"password":           true,
	"console login link": true,
	"mfa":                true,
	"key status":         true,
	"status":             true,
	"create date":        true,
}

// normalizeHeader prepares a raw header cell for alias lookup. The first
// column may carry a UTF-8 byte-order mark, which must not defeat the lookup.
func normalizeHeader(raw string, first bool) string {
	if first {
		raw = strings.TrimPrefix(raw, "\ufeff")
	}
	return strings.ToLower(strings.TrimSpace(raw))
}
