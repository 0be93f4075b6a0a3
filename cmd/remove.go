package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fenceai/s3kit/pkg/logger"
)

var removeCmd = &cobra.Command{
	Use:   "remove <bucket> <key>",
	Short: "Delete an object from a bucket",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Delete(ctx, args[0], args[1]); err != nil {
			return err
		}

		logger.Get().Info().Str("bucket", args[0]).Str("key", args[1]).Msg("object removed")
		return nil
	},
}
