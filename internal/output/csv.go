// Package output writes the generated datasets to disk: delimited tables,
// nested record collections, and the run's data dictionary and log. Writing
// is a side effect of the pipeline; stages hand data to each other in
// memory.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// WriteCSV writes a header row plus records to a delimited file under dir,
// creating dir if absent.
func WriteCSV(dir, filename string, headers []string, records [][]string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return "", fmt.Errorf("write header to %s: %w", path, err)
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write record to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w", path, err)
	}
	return path, nil
}
