// Package cmd wires the s3kit command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fenceai/s3kit/pkg/credentials"
	"github.com/fenceai/s3kit/pkg/logger"
	"github.com/fenceai/s3kit/pkg/storage"
	"github.com/fenceai/s3kit/pkg/storage/s3"
)

var (
	configFile string
	region     string
	endpoint   string
	pathStyle  bool
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "s3kit",
	Short: "Credential resolution and S3 convenience tooling",
	Long: `s3kit resolves AWS credentials from config files, environment variables
and CSV exports, and exposes simple S3 upload/download/list/remove operations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Best-effort .env preload so environment-sourced credentials
		// work the same in and out of containers.
		_ = godotenv.Load()
		logger.Init(logLevel, logFormat)
	},
}

// Execute runs the root command and prints a one-line diagnostic on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "s3kit: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "credential config file (json or yaml)")
	rootCmd.PersistentFlags().StringVar(&region, "region", "", "AWS region override")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL")
	rootCmd.PersistentFlags().BoolVar(&pathStyle, "path-style", false, "use path-style addressing (MinIO, LocalStack)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (json, console)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(removeCmd)
}

// newClient builds an S3 client from the global flags, with flag values as
// the highest-precedence override layer.
func newClient(ctx context.Context) (storage.Client, error) {
	overrides := credentials.Mapping{}
	if region != "" {
		overrides[credentials.KeyRegion] = region
	}

	opts := []storage.FactoryOption{storage.WithLogger(*logger.Get())}
	if configFile != "" {
		opts = append(opts, storage.WithConfigFile(configFile))
	}
	if endpoint != "" {
		opts = append(opts, storage.WithEndpoint(endpoint, pathStyle))
	}

	factory := storage.NewFactory(s3.Build, nil, opts...)
	return factory.Client(ctx, overrides)
}
