package credentials

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fenceai/s3kit/pkg/logger"
)

// Format is a coarse classification of a credential CSV file, detected from
// its header set. It is diagnostic only and does not change how values are
// extracted, except that FormatSimple enables the positional fallback.
type Format string

const (
	FormatStandard Format = "standard"
	FormatIAMUser  Format = "iam_user"
	FormatExtended Format = "extended"
	FormatSimple   Format = "simple"
	FormatUnknown  Format = "unknown"
)

// sniffSampleSize bounds how much of the file the dialect sniffer inspects.
const sniffSampleSize = 4096

// ParseCSV reads an AWS-style credential CSV file and returns the canonical
// credential mapping. The file must contain a header row and exactly one data
// row; additional rows are ignored.
func ParseCSV(path string) (Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("credential file %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("open credential file %s: %w", path, err)
	}
	defer f.Close()

	sample := make([]byte, sniffSampleSize)
	n, err := f.Read(sample)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read credential file %s: %w", path, err)
	}
	delimiter := sniffDelimiter(string(sample[:n]))

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind credential file %s: %w", path, err)
	}

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: no header row detected: %w", path, ErrFormat)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%s: expected at least two columns, got %d: %w", path, len(header), ErrFormat)
	}
	if !looksLikeHeader(header) {
		return nil, fmt.Errorf("%s: no header row detected: %w", path, ErrFormat)
	}

	row, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: missing data row: %w", path, ErrFormat)
	}

	format, columns := classifyHeaders(header)
	logger.Get().Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("columns", len(header)).
		Msg("parsed credential CSV header")

	creds := make(Mapping, len(columns))
	for idx, field := range columns {
		if idx >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[idx])
		if value == "" {
			continue
		}
		creds[field] = value
	}

	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("credential file %s: %w", path, err)
	}

	if ak := creds[KeyAccessKeyID]; !strings.HasPrefix(ak, "AKIA") && !strings.HasPrefix(ak, "ASIA") {
		logger.Get().Warn().
			Str("path", path).
			Msg("access key id does not match a known AWS key prefix")
	}

	return creds, nil
}

// DetectFormat classifies a header set without parsing any data.
func DetectFormat(header []string) Format {
	format, _ := classifyHeaders(header)
	return format
}

// classifyHeaders resolves each header to a canonical field via the alias
// table and tags the overall file format. The returned map is column index to
// canonical field for every recognized column.
func classifyHeaders(header []string) (Format, map[int]string) {
	columns := make(map[int]string)
	hasUser := false
	hasExtended := false

	for i, raw := range header {
		key := normalizeHeader(raw, i == 0)
		if field, ok := headerAliases[key]; ok {
			columns[i] = field
			if field == KeySessionToken || field == KeyRegion {
				hasExtended = true
			}
			continue
		}
		if userHeaders[key] {
			hasUser = true
			continue
		}
		if !ignoredHeaders[key] {
			logger.Get().Debug().Str("header", raw).Msg("ignoring unrecognized CSV column")
		}
	}

	hasAccess := false
	hasSecret := false
	for _, field := range columns {
		switch field {
		case KeyAccessKeyID:
			hasAccess = true
		case KeySecretAccessKey:
			hasSecret = true
		}
	}

	switch {
	case hasUser:
		return FormatIAMUser, columns
	case hasExtended:
		return FormatExtended, columns
	case len(header) == 2 && hasAccess && hasSecret:
		return FormatStandard, columns
	case len(header) == 2 && len(columns) == 0:
		// Simple two-column fallback: assume access key then secret key.
		return FormatSimple, map[int]string{0: KeyAccessKeyID, 1: KeySecretAccessKey}
	default:
		return FormatUnknown, columns
	}
}

// sniffDelimiter picks the delimiter that occurs most often in the first line
// of the sample. Comma wins ties and empty samples.
func sniffDelimiter(sample string) rune {
	line := sample
	if idx := strings.IndexAny(sample, "\r\n"); idx >= 0 {
		line = sample[:idx]
	}

	best := ','
	bestCount := strings.Count(line, ",")
	for _, candidate := range []rune{';', '\t', '|'} {
		if count := strings.Count(line, string(candidate)); count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	return best
}

// looksLikeHeader reports whether the first row reads as column names rather
// than credential data. Key material in row 0 means the header is absent.
func looksLikeHeader(row []string) bool {
	for i, raw := range row {
		cell := normalizeHeader(raw, i == 0)
		if cell == "" {
			return false
		}
		if strings.HasPrefix(raw, "AKIA") || strings.HasPrefix(raw, "ASIA") {
			return false
		}
		if !strings.ContainsFunc(cell, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
			return false
		}
	}
	return true
}
