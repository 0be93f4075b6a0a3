package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fenceai/s3kit/pkg/logger"
)

var downloadCmd = &cobra.Command{
	Use:   "download <bucket> <key> <dest>",
	Short: "Download an object to a local file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		path, err := client.Download(ctx, args[0], args[1], args[2])
		if err != nil {
			return err
		}

		logger.Get().Info().Str("bucket", args[0]).Str("key", args[1]).Str("path", path).Msg("download completed")
		return nil
	},
}
