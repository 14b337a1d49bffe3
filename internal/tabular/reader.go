package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/Gamax42/tautulli-to-senscritique/internal/catalog"
)

// ReadTable reads one source table into memory. Row line numbers start at 2;
// the header occupies line 1. Ragged rows are tolerated: missing trailing
// cells read as empty text.
func ReadTable(path string) ([]catalog.Row, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("input file %q does not exist", path)
		}
		return nil, fmt.Errorf("inspect input file %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%q is not a regular file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file %q: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("input file %q has no header row", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %q: %w", path, err)
	}

	index, err := mapColumns(path, header)
	if err != nil {
		return nil, err
	}

	var rows []catalog.Row
	for line := 2; ; line++ {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %q line %d: %w", path, line, err)
		}
		rows = append(rows, catalog.Row{
			Line:       line,
			Title:      cell(cells, index[catalog.ColumnTitle]),
			UserRating: cell(cells, index[catalog.ColumnUserRating]),
			ViewCount:  cell(cells, index[catalog.ColumnViewCount]),
			Year:       cell(cells, index[catalog.ColumnYear]),
		})
	}
	return rows, nil
}

func mapColumns(path string, header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	var missing []string
	for _, column := range catalog.RequiredColumns() {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("input file %q is missing required columns: %s", path, strings.Join(missing, ", "))
	}
	return index, nil
}

func cell(cells []string, index int) string {
	if index < 0 || index >= len(cells) {
		return ""
	}
	return cells[index]
}
