package tabular

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/Gamax42/tautulli-to-senscritique/internal/catalog"
)

// Write serializes records to path: one header line, then one line per
// record in the fixed output column order. An empty record sequence leaves
// the destination untouched and reports zero records written.
func Write(path string, records []catalog.Record) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create output file %q: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(catalog.OutputHeader()); err != nil {
		file.Close()
		return 0, fmt.Errorf("write header to %q: %w", path, err)
	}
	for _, record := range records {
		if err := writer.Write(record.Fields()); err != nil {
			file.Close()
			return 0, fmt.Errorf("write record to %q: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return 0, fmt.Errorf("flush output file %q: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("close output file %q: %w", path, err)
	}
	return len(records), nil
}
