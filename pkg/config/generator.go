package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fenceai/s3kit/pkg/credentials"
	"github.com/fenceai/s3kit/pkg/logger"
)

// securePerm is applied to generated config files when Secure is set.
const securePerm = os.FileMode(0o600)

// GenerateOptions controls config file generation.
type GenerateOptions struct {
	Format          string         // "json" or "yaml"
	Region          string         // fallback region when credentials carry none
	Secure          bool           // tighten file permissions to owner-only
	IncludeOptional bool           // emit session_token/region and extra fields
	Indent          int            // indentation width
	ExtraFields     map[string]any // caller-supplied additions, nil values dropped
}

// DefaultGenerateOptions returns the defaults used by the CLI converter.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Format:          "json",
		Region:          "us-east-1",
		Secure:          true,
		IncludeOptional: true,
		Indent:          2,
	}
}

// Generate writes the resolved credentials to a config file and returns its
// path. Required fields are always emitted; optional and extra fields only
// when IncludeOptional is set. Parent directories are created as needed.
func Generate(creds credentials.Mapping, outputPath string, opts GenerateOptions) (string, error) {
	format := strings.ToLower(opts.Format)
	if format != "json" && format != "yaml" {
		return "", fmt.Errorf("output format %q: %w", opts.Format, ErrUnsupportedFormat)
	}
	if err := creds.Validate(); err != nil {
		return "", err
	}

	doc := map[string]any{
		credentials.KeyAccessKeyID:     creds[credentials.KeyAccessKeyID],
		credentials.KeySecretAccessKey: creds[credentials.KeySecretAccessKey],
	}
	if opts.IncludeOptional {
		if token := creds[credentials.KeySessionToken]; token != "" {
			doc[credentials.KeySessionToken] = token
		}
		region := creds[credentials.KeyRegion]
		if region == "" {
			region = opts.Region
		}
		if region != "" {
			doc[credentials.KeyRegion] = region
		}
		for key, value := range opts.ExtraFields {
			if value == nil {
				continue
			}
			doc[key] = value
		}
	}

	indent := opts.Indent
	if indent <= 0 {
		indent = 2
	}
	data, err := encode(doc, format, indent)
	if err != nil {
		return "", fmt.Errorf("encode %s config: %w", format, err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}

	if opts.Secure {
		if err := os.Chmod(outputPath, securePerm); err != nil {
			logger.Get().Warn().
				Err(err).
				Str("path", outputPath).
				Msg("could not tighten config file permissions")
		}
	}

	return outputPath, nil
}

func encode(doc map[string]any, format string, indent int) ([]byte, error) {
	if format == "json" {
		data, err := json.MarshalIndent(doc, "", strings.Repeat(" ", indent))
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
