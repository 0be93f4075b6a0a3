package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fenceai/s3kit/pkg/config"
	"github.com/fenceai/s3kit/pkg/logger"
)

var (
	convertFormat   string
	convertIndent   int
	convertInsecure bool
	convertMinimal  bool
	convertExtra    map[string]string
)

var convertCmd = &cobra.Command{
	Use:   "convert <csv-file> <output-file>",
	Short: "Convert an AWS credential CSV export to a config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := config.DefaultGenerateOptions()
		opts.Format = convertFormat
		opts.Indent = convertIndent
		opts.Secure = !convertInsecure
		opts.IncludeOptional = !convertMinimal
		if region != "" {
			opts.Region = region
		}
		if len(convertExtra) > 0 {
			opts.ExtraFields = make(map[string]any, len(convertExtra))
			for k, v := range convertExtra {
				opts.ExtraFields[k] = v
			}
		}

		path, err := config.ConvertCSV(args[0], args[1], opts)
		if err != nil {
			return err
		}

		logger.Get().Info().Str("path", path).Str("format", opts.Format).Msg("config file generated")
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertFormat, "format", "json", "output format (json, yaml)")
	convertCmd.Flags().IntVar(&convertIndent, "indent", 2, "indentation width")
	convertCmd.Flags().BoolVar(&convertInsecure, "insecure", false, "skip tightening file permissions to 0600")
	convertCmd.Flags().BoolVar(&convertMinimal, "required-only", false, "emit only the required credential fields")
	convertCmd.Flags().StringToStringVar(&convertExtra, "extra", nil, "extra key=value fields to include")
}
