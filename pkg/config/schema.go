package config

// Schema is the JSON schema for validating credential configuration files
const Schema = `{
    "$schema": "http://json-schema.org/draft-07/schema#",
    "type": "object",
    "properties": {
        "access_key_id": {
            "type": "string",
            "minLength": 1,
            "description": "AWS access key id"
        },
        "secret_access_key": {
            "type": "string",
            "minLength": 1,
            "description": "AWS secret access key"
        },
        "session_token": {
            "type": "string",
            "description": "Optional STS session token"
        },
        "region": {
            "type": "string",
            "description": "Optional AWS region"
        }
    },
    "required": ["access_key_id", "secret_access_key"],
    "additionalProperties": true
}`
