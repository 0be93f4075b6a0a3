package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fenceai/s3kit/pkg/logger"
	"github.com/fenceai/s3kit/pkg/storage"
)

var uploadConcurrency int

var uploadCmd = &cobra.Command{
	Use:   "upload <bucket> <key> <file> [<key> <file>...]",
	Short: "Upload one or more local files to a bucket",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 3 || len(args)%2 == 0 {
			return fmt.Errorf("requires <bucket> followed by one or more <key> <file> pairs")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		bucket := args[0]
		if len(args) == 3 {
			if err := client.Upload(ctx, bucket, args[1], args[2]); err != nil {
				return err
			}
			logger.Get().Info().Str("bucket", bucket).Str("key", args[1]).Msg("upload completed")
			return nil
		}

		files := make(map[string]string, (len(args)-1)/2)
		for i := 1; i < len(args); i += 2 {
			files[args[i+1]] = args[i]
		}

		uploader := storage.NewBatchUploader(*logger.Get(), uploadConcurrency)
		results := uploader.Upload(ctx, client, bucket, files)

		var firstErr error
		for _, result := range results {
			if !result.Success && firstErr == nil {
				firstErr = result.Error
			}
		}
		return firstErr
	},
}

func init() {
	uploadCmd.Flags().IntVar(&uploadConcurrency, "concurrency", 3, "max parallel uploads")
}
