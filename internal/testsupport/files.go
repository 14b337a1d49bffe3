// Package testsupport provides shared fixtures for converter tests.
package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// WriteCSV writes a CSV file with the given header and rows into dir and
// returns its path.
func WriteCSV(t testing.TB, dir, name string, header []string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		t.Fatalf("write header to %s: %v", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			t.Fatalf("write row to %s: %v", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		t.Fatalf("flush %s: %v", path, err)
	}
	return path
}

// Chdir changes the working directory to dir for the duration of the test,
// restoring the previous directory on cleanup. It stands in for t.Chdir,
// which needs Go 1.24.
func Chdir(t testing.TB, dir string) {
	t.Helper()

	previous, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(previous); err != nil {
			t.Fatalf("restore chdir %s: %v", previous, err)
		}
	})
}

// SourceHeader is the canonical source column order used by fixtures.
func SourceHeader() []string {
	return []string{"title", "userRating", "viewCount", "year"}
}

// WriteSourceCSV writes a source table with the canonical header. Each row
// is title, userRating, viewCount, year.
func WriteSourceCSV(t testing.TB, dir, name string, rows [][]string) string {
	t.Helper()
	return WriteCSV(t, dir, name, SourceHeader(), rows)
}
