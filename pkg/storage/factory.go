package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fenceai/s3kit/pkg/config"
	"github.com/fenceai/s3kit/pkg/credentials"
)

// Options carries everything a ClientBuilder needs to construct a client.
type Options struct {
	Credentials    credentials.Mapping
	Region         string
	Endpoint       string // optional, for S3-compatible services
	ForcePathStyle bool
}

// ClientBuilder constructs a storage client from resolved options. Builders
// are wired explicitly at startup; there is no global registry.
type ClientBuilder func(ctx context.Context, opts Options) (Client, error)

// Factory resolves credentials across precedence layers and builds storage
// clients. Layers, lowest to highest: config file, environment variables,
// constructor mapping, per-call overrides. A Factory holds only read-only
// state captured at construction and is safe for concurrent use.
type Factory struct {
	builder        ClientBuilder
	ctorConfig     credentials.Mapping
	fileConfig     credentials.Mapping
	envPrefix      string
	endpoint       string
	forcePathStyle bool
	logger         zerolog.Logger
}

// FactoryOption customizes a Factory.
type FactoryOption func(*factorySettings)

type factorySettings struct {
	configFile     string
	envPrefix      string
	endpoint       string
	forcePathStyle bool
	logger         zerolog.Logger
}

// WithConfigFile adds a config file as the lowest-precedence credential
// layer. A missing or malformed file degrades to an empty contribution.
func WithConfigFile(path string) FactoryOption {
	return func(s *factorySettings) { s.configFile = path }
}

// WithEnvPrefix overrides the environment variable prefix (default "AWS_").
func WithEnvPrefix(prefix string) FactoryOption {
	return func(s *factorySettings) { s.envPrefix = prefix }
}

// WithEndpoint points clients at an S3-compatible endpoint (MinIO,
// LocalStack). Path-style addressing is usually required for those.
func WithEndpoint(endpoint string, forcePathStyle bool) FactoryOption {
	return func(s *factorySettings) {
		s.endpoint = endpoint
		s.forcePathStyle = forcePathStyle
	}
}

// WithLogger sets the factory logger.
func WithLogger(logger zerolog.Logger) FactoryOption {
	return func(s *factorySettings) { s.logger = logger }
}

// NewFactory creates a factory. ctorConfig is the constructor-supplied
// credential layer and may be nil.
func NewFactory(builder ClientBuilder, ctorConfig credentials.Mapping, opts ...FactoryOption) *Factory {
	settings := factorySettings{
		envPrefix: credentials.DefaultEnvPrefix,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&settings)
	}

	f := &Factory{
		builder:        builder,
		ctorConfig:     ctorConfig.Clone(),
		envPrefix:      settings.envPrefix,
		endpoint:       settings.endpoint,
		forcePathStyle: settings.forcePathStyle,
		logger:         settings.logger,
	}

	if settings.configFile != "" {
		fileConfig, err := config.LoadCredentials(settings.configFile)
		if err != nil {
			// The file layer is best-effort: unreadable or malformed
			// config contributes nothing instead of failing.
			f.logger.Debug().
				Err(err).
				Str("path", settings.configFile).
				Msg("ignoring unreadable config file")
		} else {
			f.fileConfig = fileConfig
		}
	}

	return f
}

// Resolve merges all credential layers with the given per-call overrides and
// returns the effective mapping. It never fails; incomplete results are only
// rejected when a client is built.
func (f *Factory) Resolve(overrides credentials.Mapping) credentials.Mapping {
	layers := []credentials.Mapping{
		f.fileConfig,
		credentials.FromEnv(f.envPrefix),
		f.ctorConfig,
	}
	return credentials.Resolve(layers, overrides)
}

// Client resolves credentials and builds a storage client. Overrides take
// precedence over every configured layer.
func (f *Factory) Client(ctx context.Context, overrides credentials.Mapping) (Client, error) {
	creds := f.Resolve(overrides)
	if creds[credentials.KeyAccessKeyID] == "" || creds[credentials.KeySecretAccessKey] == "" {
		return nil, fmt.Errorf("resolved configuration incomplete: %w", ErrMissingCredentials)
	}

	f.logger.Debug().
		Str("region", creds[credentials.KeyRegion]).
		Bool("session_token", creds[credentials.KeySessionToken] != "").
		Msg("building storage client")

	return f.builder(ctx, Options{
		Credentials:    creds,
		Region:         creds[credentials.KeyRegion],
		Endpoint:       f.endpoint,
		ForcePathStyle: f.forcePathStyle,
	})
}
