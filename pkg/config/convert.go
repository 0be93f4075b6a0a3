package config

import "github.com/fenceai/s3kit/pkg/credentials"

// ConvertCSV parses an AWS credential CSV export and writes it back out as a
// config file, returning the generated path.
func ConvertCSV(csvPath, outputPath string, opts GenerateOptions) (string, error) {
	creds, err := credentials.ParseCSV(csvPath)
	if err != nil {
		return "", err
	}
	return Generate(creds, outputPath, opts)
}
