package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading gzipped seed files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a gzipped seed file. The file is expected to contain one JSON
// item record per line.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]ItemRecord, error) {
	l.logger.Info().Str("file", filePath).Msg("loading seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", filePath, err)
	}
	defer file.Close()

	records, err := decodeRecords(ctx, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode seed file")
		return nil, fmt.Errorf("failed to decode seed file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("count", len(records)).
		Msg("seed file loaded")

	return records, nil
}

// decodeRecords reads gzipped JSON-lines item records. Blank lines are
// skipped; any malformed line aborts the load.
func decodeRecords(ctx context.Context, r io.Reader) ([]ItemRecord, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	var records []ItemRecord

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var record ItemRecord
		if err := json.Unmarshal([]byte(text), &record); err != nil {
			return nil, fmt.Errorf("invalid record on line %d: %w", line, err)
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seed data: %w", err)
	}

	return records, nil
}
